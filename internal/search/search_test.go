package search

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type fakeSource struct {
	name       string
	candidates []Candidate
	err        error
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Search(person string, day time.Time) ([]Candidate, error) {
	return f.candidates, f.err
}

func testDay() time.Time {
	return time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
}

func TestCollect_DeduplicatesAcrossSources(t *testing.T) {
	a := &fakeSource{name: "a", candidates: []Candidate{
		{URL: "https://example.com/story", Title: ""},
		{URL: "https://example.com/other"},
	}}
	b := &fakeSource{name: "b", candidates: []Candidate{
		{URL: "https://example.com/story", Title: "The Story"},
	}}

	got := Collect([]Source{a, b}, "Jane Doe", testDay())
	if len(got) != 2 {
		t.Fatalf("expected 2 unique candidates, got %d: %+v", len(got), got)
	}
	// Ordered by URL: /other before /story.
	if got[1].URL != "https://example.com/story" || got[1].Title != "The Story" {
		t.Errorf("duplicate should keep the non-empty title: %+v", got[1])
	}
}

func TestCollect_FailingSourceContributesNothing(t *testing.T) {
	ok := &fakeSource{name: "ok", candidates: []Candidate{{URL: "https://example.com/a"}}}
	bad := &fakeSource{name: "bad", err: errors.New("boom")}

	got := Collect([]Source{bad, ok}, "Jane Doe", testDay())
	if len(got) != 1 || got[0].URL != "https://example.com/a" {
		t.Errorf("expected only the healthy source's candidate, got %+v", got)
	}
}

func TestCollect_SkipsEmptyURLs(t *testing.T) {
	src := &fakeSource{name: "a", candidates: []Candidate{{URL: ""}, {URL: "https://example.com/a"}}}
	got := Collect([]Source{src}, "Jane Doe", testDay())
	if len(got) != 1 {
		t.Errorf("empty URLs must be dropped, got %+v", got)
	}
}

func TestGoogleRSS_QueryURL(t *testing.T) {
	g := NewGoogleRSS(GoogleRSSConfig{
		BaseURL:  "https://news.google.com/rss/search",
		Language: "en-US",
		Country:  "US",
	})

	raw := g.queryURL("Jane Doe", testDay())
	for _, want := range []string{
		"%22Jane+Doe%22",
		"after%3A2024-05-10",
		"before%3A2024-05-11",
		"hl=en-US",
		"gl=US",
		"ceid=US%3Aen",
	} {
		if !strings.Contains(raw, want) {
			t.Errorf("query URL missing %q: %s", want, raw)
		}
	}
}

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>"Jane Doe" - Google News</title>
    <item>
      <title>Jane Doe opens community center</title>
      <link>https://example.com/center</link>
    </item>
    <item>
      <title>Interview with Jane Doe</title>
      <link>https://example.com/interview</link>
    </item>
  </channel>
</rss>`

func TestGoogleRSS_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if q := r.URL.Query().Get("q"); !strings.Contains(q, `"Jane Doe"`) {
			t.Errorf("unexpected query: %q", q)
		}
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	g := NewGoogleRSS(GoogleRSSConfig{BaseURL: srv.URL, Language: "en-US", Country: "US"})
	got, err := g.Search("Jane Doe", testDay())
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}
	if got[0].URL != "https://example.com/center" || got[0].Title != "Jane Doe opens community center" {
		t.Errorf("unexpected first candidate: %+v", got[0])
	}
}

func TestNewsAPI_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Api-Key"); got != "test-key" {
			t.Errorf("missing API key header, got %q", got)
		}
		q := r.URL.Query()
		if q.Get("q") != `"Jane Doe"` {
			t.Errorf("unexpected q param: %q", q.Get("q"))
		}
		if q.Get("from") != "2024-05-10" || q.Get("to") != "2024-05-11" {
			t.Errorf("unexpected window: from=%q to=%q", q.Get("from"), q.Get("to"))
		}
		if q.Get("language") != "en" || q.Get("sortBy") != "relevancy" {
			t.Errorf("unexpected params: %v", q)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","totalResults":1,"articles":[{"source":{"id":"x","name":"Example"},"title":"Jane Doe profiled","url":"https://example.com/profile"}]}`))
	}))
	defer srv.Close()

	n := NewNewsAPI(NewsAPIConfig{BaseURL: srv.URL, Language: "en", SortBy: "relevancy"}, "test-key", 5*time.Second)
	got, err := n.Search("Jane Doe", testDay())
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(got) != 1 || got[0].URL != "https://example.com/profile" || got[0].Title != "Jane Doe profiled" {
		t.Errorf("unexpected candidates: %+v", got)
	}
}

func TestNewsAPI_SearchUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	n := NewNewsAPI(NewsAPIConfig{BaseURL: srv.URL}, "bad-key", 5*time.Second)
	if _, err := n.Search("Jane Doe", testDay()); err == nil {
		t.Error("expected error for 401 response")
	}
}

func TestNewsAPI_SearchMissingKey(t *testing.T) {
	n := NewNewsAPI(NewsAPIConfig{BaseURL: "https://newsapi.org/v2/everything"}, "", 5*time.Second)
	if _, err := n.Search("Jane Doe", testDay()); err == nil {
		t.Error("expected error when API key is missing")
	}
}
