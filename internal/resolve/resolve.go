// Package resolve turns Google News redirect links into their final
// destination URLs.
package resolve

import (
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/deusflow/mentions/internal/search"
)

type Resolver struct {
	client    *http.Client
	userAgent string
}

func New(timeout time.Duration, userAgent string) *Resolver {
	return &Resolver{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Resolve returns the destination URL behind a Google News link. Non-Google
// URLs pass through unchanged. On any failure the original URL is kept so
// the pipeline can still try to fetch it.
func (r *Resolver) Resolve(rawURL string) string {
	if !isGoogleHost(rawURL) {
		return rawURL
	}

	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		slog.Warn("could not resolve google link", "url", rawURL, "error", err)
		return rawURL
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		slog.Warn("could not resolve google link", "url", rawURL, "error", err)
		return rawURL
	}
	defer resp.Body.Close()

	// HTTP-level redirects may already have left google.com.
	if final := resp.Request.URL.String(); !isGoogleHost(final) {
		return final
	}

	if resp.StatusCode != http.StatusOK {
		slog.Warn("could not resolve google link", "url", rawURL, "status", resp.StatusCode)
		return rawURL
	}

	// Otherwise the page body usually carries an anchor to the article.
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		slog.Warn("could not parse google redirect page", "url", rawURL, "error", err)
		return rawURL
	}

	target := ""
	doc.Find("a[href]").EachWithBreak(func(i int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		if strings.HasPrefix(href, "http") && !isGoogleHost(href) {
			target = href
			return false
		}
		return true
	})
	if target != "" {
		return target
	}

	slog.Warn("google link did not resolve to a destination", "url", rawURL)
	return rawURL
}

// ResolveAll resolves every candidate and collapses duplicates introduced by
// resolution (two raw links may point at the same article).
func (r *Resolver) ResolveAll(candidates []search.Candidate) []search.Candidate {
	seen := make(map[string]search.Candidate)
	for _, c := range candidates {
		resolved := r.Resolve(c.URL)
		if existing, dup := seen[resolved]; dup {
			if existing.Title == "" && c.Title != "" {
				existing.Title = c.Title
				seen[resolved] = existing
			}
			continue
		}
		seen[resolved] = search.Candidate{URL: resolved, Title: c.Title}
	}

	out := make([]search.Candidate, 0, len(seen))
	for _, c := range seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].URL < out[j].URL })
	return out
}

func isGoogleHost(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return false
	}
	host := strings.ToLower(u.Host)
	return host == "google.com" || strings.HasSuffix(host, ".google.com")
}
