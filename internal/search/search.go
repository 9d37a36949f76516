// Package search collects candidate article URLs for a person within a
// one-day window from the configured news sources.
package search

import (
	"log/slog"
	"sort"
	"time"
)

// Candidate is a raw URL from a source, with the title the source supplied
// for it (may be empty).
type Candidate struct {
	URL   string
	Title string
}

// Source yields candidate URLs for a person on a given day.
type Source interface {
	Name() string
	Search(person string, day time.Time) ([]Candidate, error)
}

// Collect queries every source and merges the results. Duplicate URLs across
// sources collapse to one entry; the first non-empty title wins. A failing
// source logs a warning and contributes nothing. The result is ordered by URL
// so runs are deterministic.
func Collect(sources []Source, person string, day time.Time) []Candidate {
	seen := make(map[string]Candidate)

	for _, src := range sources {
		found, err := src.Search(person, day)
		if err != nil {
			slog.Warn("source search failed", "source", src.Name(), "error", err)
			continue
		}
		slog.Info("source search done", "source", src.Name(), "candidates", len(found))

		for _, c := range found {
			if c.URL == "" {
				continue
			}
			if existing, dup := seen[c.URL]; dup {
				if existing.Title == "" && c.Title != "" {
					existing.Title = c.Title
					seen[c.URL] = existing
				}
				continue
			}
			seen[c.URL] = c
		}
	}

	merged := make([]Candidate, 0, len(seen))
	for _, c := range seen {
		merged = append(merged, c)
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].URL < merged[j].URL })
	return merged
}
