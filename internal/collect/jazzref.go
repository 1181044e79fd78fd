// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/pdiddy/jazzdb/internal/httputil"
	"github.com/pdiddy/jazzdb/pkg/types"
)

// Package-level so tests can point it at a local server.
var jazzRefBase = "https://www.jazzstandards.com"

// jazzRefMaxBody caps how much of a page is parsed.
const jazzRefMaxBody = 1 << 20

// JazzRefSource scrapes song pages on jazzstandards.com. Pages live
// under /compositions-0/ named by the title with everything but letters
// and digits removed, so "All of Me" becomes allofme.htm. The page text
// is mined with the same prose patterns the Wikipedia source uses.
type JazzRefSource struct {
	Client    *http.Client
	UserAgent string

	delay time.Duration
}

// NewJazzRefSource builds the source from the collect configuration.
func NewJazzRefSource(client *http.Client, cfg types.CollectConfig) *JazzRefSource {
	return &JazzRefSource{
		Client:    client,
		UserAgent: httputil.UserAgent(cfg.UserAgent, cfg.Contact),
		delay:     cfg.JazzRefDelay,
	}
}

// Name implements Source.
func (s *JazzRefSource) Name() string { return "jazzstandards" }

// Delay implements Source.
func (s *JazzRefSource) Delay() time.Duration { return s.delay }

// Lookup implements Source.
func (s *JazzRefSource) Lookup(ctx context.Context, title string) (*Finding, error) {
	slug := slugify(title)
	if slug == "" {
		return nil, ErrNotFound
	}

	u := jazzRefBase + "/compositions-0/" + slug + ".htm"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build jazzstandards request: %w", err)
	}
	req.Header.Set("User-Agent", s.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, s.Client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("jazzstandards: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jazzstandards: unexpected status %s", resp.Status)
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, jazzRefMaxBody))
	if err != nil {
		return nil, fmt.Errorf("parse jazzstandards page: %w", err)
	}

	text := pageText(doc)
	// The site answers some missing songs with a 200 error page.
	if strings.Contains(strings.ToLower(text), "page not found") {
		return nil, ErrNotFound
	}

	f := parseExtract(text)
	if f.Empty() {
		return nil, ErrNotFound
	}
	return f, nil
}

// slugify reduces a title to the site's page-name form: lowercase
// letters and digits only.
func slugify(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// pageText collects the visible text of a parsed page with whitespace
// collapsed, skipping script and style subtrees.
func pageText(doc *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return strings.Join(strings.Fields(sb.String()), " ")
}
