// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/jazzdb/internal/httputil"
	"github.com/pdiddy/jazzdb/pkg/types"
)

// Package-level so tests can point it at a local server.
var wikipediaAPIBase = "https://en.wikipedia.org/api/rest_v1/page/summary"

// WikipediaSource reads the REST summary of a song's Wikipedia page and
// mines the intro prose for composer, key, feel, and meter. Song pages
// are often qualified ("(song)", "(jazz standard)"), so several page
// titles are tried before giving up.
type WikipediaSource struct {
	Client    *http.Client
	UserAgent string

	delay time.Duration
}

// NewWikipediaSource builds the source from the collect configuration.
func NewWikipediaSource(client *http.Client, cfg types.CollectConfig) *WikipediaSource {
	return &WikipediaSource{
		Client:    client,
		UserAgent: httputil.UserAgent(cfg.UserAgent, cfg.Contact),
		delay:     cfg.WikipediaDelay,
	}
}

// Name implements Source.
func (s *WikipediaSource) Name() string { return "wikipedia" }

// Delay implements Source.
func (s *WikipediaSource) Delay() time.Duration { return s.delay }

// Lookup implements Source.
func (s *WikipediaSource) Lookup(ctx context.Context, title string) (*Finding, error) {
	for _, page := range pageCandidates(title) {
		summary, err := s.fetchSummary(ctx, page)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if summary.Type == "disambiguation" {
			continue
		}
		if f := parseExtract(summary.Extract); !f.Empty() {
			return f, nil
		}
	}
	return nil, ErrNotFound
}

// pageCandidates orders the page titles to try. Qualified titles come
// first so a bare hit on an unrelated topic does not shadow the song
// page.
func pageCandidates(title string) []string {
	return []string{
		title + " (song)",
		title + " (jazz standard)",
		title + " (composition)",
		title,
	}
}

type pageSummary struct {
	Title   string `json:"title"`
	Type    string `json:"type"`
	Extract string `json:"extract"`
}

func (s *WikipediaSource) fetchSummary(ctx context.Context, page string) (*pageSummary, error) {
	u := wikipediaAPIBase + "/" + url.PathEscape(strings.ReplaceAll(page, " ", "_"))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build wikipedia request: %w", err)
	}
	req.Header.Set("User-Agent", s.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := httputil.DoWithRetry(ctx, s.Client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("wikipedia: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wikipedia: unexpected status %s", resp.Status)
	}

	var summary pageSummary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return nil, fmt.Errorf("decode wikipedia summary: %w", err)
	}
	return &summary, nil
}

var (
	composerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bcomposed (?:in \d{4} )?by ([^,.;(]+)`),
		regexp.MustCompile(`(?i)\bwritten (?:in \d{4} )?by ([^,.;(]+)`),
		regexp.MustCompile(`(?i)\bmusic by ([^,.;(]+)`),
	}

	keyOfPattern = regexp.MustCompile(`(?i)\b(?:in )?the key of ([a-g][b#♭♯]?(?:[ -]?(?:flat|sharp))?(?: (?:major|minor))?)`)
	inKeyPattern = regexp.MustCompile(`(?i)\bin ([a-g][b#♭♯]?(?:[ -]?(?:flat|sharp))?) (major|minor)\b`)

	timePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(\d{1,2}/\d{1,2})\s+(?:time|meter)\b`),
		regexp.MustCompile(`(?i)\bin\s+(\d{1,2}/\d{1,2})\b`),
	}
)

// parseExtract mines the page intro for the four dataset fields. Any
// field the prose does not state stays nil.
func parseExtract(extract string) *Finding {
	f := &Finding{}

	for _, pat := range composerPatterns {
		m := pat.FindStringSubmatch(extract)
		if m == nil {
			continue
		}
		if name := trimCredit(m[1]); name != "" {
			f.Composer = &name
			break
		}
	}

	if m := keyOfPattern.FindStringSubmatch(extract); m != nil {
		if key, ok := NormalizeKey(m[1]); ok {
			f.Key = &key
		}
	}
	if f.Key == nil {
		if m := inKeyPattern.FindStringSubmatch(extract); m != nil {
			if key, ok := NormalizeKey(m[1] + " " + m[2]); ok {
				f.Key = &key
			}
		}
	}

	if feel, ok := InferRhythm(extract); ok {
		f.Rhythm = &feel
	}

	for _, pat := range timePatterns {
		m := pat.FindStringSubmatch(extract)
		if m == nil {
			continue
		}
		if sig, ok := validTimeSignature(m[1]); ok {
			f.TimeSignature = &sig
			break
		}
	}

	return f
}

// trimCredit reduces a regex capture to a plausible composer credit.
// Leading role words ("pianist", "jazz saxophonist") are dropped. Prose
// captures ("by far the most recorded...") are rejected: credits start
// with a capital and run at most a few words.
func trimCredit(s string) string {
	s = strings.TrimSpace(s)
	for _, cut := range []string{" in 1", " in 2", " for ", " as ", " that ", " which ", " during "} {
		if i := strings.Index(s, cut); i > 0 {
			s = s[:i]
		}
	}

	fields := strings.Fields(s)
	for len(fields) > 1 && fields[0][0] >= 'a' && fields[0][0] <= 'z' {
		fields = fields[1:]
	}
	s = strings.Join(fields, " ")

	if s == "" || s[0] < 'A' || s[0] > 'Z' {
		return ""
	}
	if len(fields) > 6 {
		return ""
	}
	return CleanComposer(s)
}

// validTimeSignature checks that a captured fraction reads as a meter,
// not a date or a chapter number.
func validTimeSignature(s string) (string, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return "", false
	}
	beats, err := strconv.Atoi(parts[0])
	if err != nil || beats < 2 || beats > 12 {
		return "", false
	}
	switch parts[1] {
	case "2", "4", "8", "16":
		return s, true
	}
	return "", false
}
