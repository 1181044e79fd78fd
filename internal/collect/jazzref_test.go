// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/pdiddy/jazzdb/pkg/types"
)

const allOfMeHTML = `<html>
<head>
  <title>Jazz Standards - All of Me</title>
  <style>body { color: black; }</style>
  <script>var leak = "in 9/8 time";</script>
</head>
<body>
  <h1>All of Me</h1>
  <p>Music by Gerald Marks and Seymour Simons.</p>
  <p>This medium swing favorite is usually played in the key of C major.</p>
</body>
</html>`

func jazzRefTestSource(ts *httptest.Server) *JazzRefSource {
	cfg := types.CollectConfig{}
	cfg.UserAgent = "jazzdb-test/1"
	return NewJazzRefSource(ts.Client(), cfg)
}

// --- JazzRefSource.Lookup ---

func TestJazzRefLookup(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, allOfMeHTML)
	}))
	defer ts.Close()

	old := jazzRefBase
	jazzRefBase = ts.URL
	defer func() { jazzRefBase = old }()

	f, err := jazzRefTestSource(ts).Lookup(context.Background(), "All of Me")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	if gotPath != "/compositions-0/allofme.htm" {
		t.Errorf("requested path = %q, want /compositions-0/allofme.htm", gotPath)
	}
	if f.Composer == nil || *f.Composer != "Gerald Marks and Seymour Simons" {
		t.Errorf("Composer = %v, want Gerald Marks and Seymour Simons", f.Composer)
	}
	if f.Key == nil || *f.Key != "C" {
		t.Errorf("Key = %v, want C", f.Key)
	}
	if f.Rhythm == nil || *f.Rhythm != "Medium Swing" {
		t.Errorf("Rhythm = %v, want Medium Swing", f.Rhythm)
	}
	if f.TimeSignature != nil {
		t.Errorf("TimeSignature = %q, want absent (script text must not be mined)", *f.TimeSignature)
	}
}

func TestJazzRefLookup_NotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	old := jazzRefBase
	jazzRefBase = ts.URL
	defer func() { jazzRefBase = old }()

	_, err := jazzRefTestSource(ts).Lookup(context.Background(), "No Such Song")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Lookup error = %v, want ErrNotFound", err)
	}
}

func TestJazzRefLookup_SoftErrorPage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html><body><h1>Page Not Found</h1></body></html>`)
	}))
	defer ts.Close()

	old := jazzRefBase
	jazzRefBase = ts.URL
	defer func() { jazzRefBase = old }()

	_, err := jazzRefTestSource(ts).Lookup(context.Background(), "No Such Song")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Lookup error = %v, want ErrNotFound for the site's soft 404", err)
	}
}

func TestJazzRefLookup_PageWithoutFacts(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html><body><p>Subscribe to our newsletter.</p></body></html>`)
	}))
	defer ts.Close()

	old := jazzRefBase
	jazzRefBase = ts.URL
	defer func() { jazzRefBase = old }()

	_, err := jazzRefTestSource(ts).Lookup(context.Background(), "All of Me")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Lookup error = %v, want ErrNotFound when the page has nothing to mine", err)
	}
}

func TestJazzRefLookup_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	old := jazzRefBase
	jazzRefBase = ts.URL
	defer func() { jazzRefBase = old }()

	_, err := jazzRefTestSource(ts).Lookup(context.Background(), "All of Me")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("Lookup error = %v, want a transport error", err)
	}
}

// --- slugify ---

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"All of Me", "allofme"},
		{"Take Five", "takefive"},
		{"'Round Midnight", "roundmidnight"},
		{"St. Thomas", "stthomas"},
		{"A Night in Tunisia", "anightintunisia"},
		{"26-2", "262"},
		{"???", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := slugify(tt.in); got != tt.want {
				t.Errorf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// --- pageText ---

func TestPageText(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(
		`<html><head><script>hidden()</script><style>.x{}</style></head>` +
			`<body><p>First   line</p><p>Second
line</p></body></html>`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got := pageText(doc)
	want := "First line Second line"
	if got != want {
		t.Errorf("pageText() = %q, want %q", got, want)
	}
	if strings.Contains(got, "hidden") {
		t.Errorf("pageText() = %q, script text must be skipped", got)
	}
}
