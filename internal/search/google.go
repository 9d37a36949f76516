package search

import (
	"fmt"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"
)

// GoogleRSS searches the Google News RSS endpoint for articles mentioning a
// person within a one-day window.
type GoogleRSS struct {
	cfg    GoogleRSSConfig
	parser *gofeed.Parser
}

func NewGoogleRSS(cfg GoogleRSSConfig) *GoogleRSS {
	return &GoogleRSS{
		cfg:    cfg,
		parser: gofeed.NewParser(),
	}
}

func (g *GoogleRSS) Name() string { return "google-rss" }

func (g *GoogleRSS) Search(person string, day time.Time) ([]Candidate, error) {
	feed, err := g.parser.ParseURL(g.queryURL(person, day))
	if err != nil {
		return nil, fmt.Errorf("parsing google news feed: %w", err)
	}

	candidates := make([]Candidate, 0, len(feed.Items))
	for _, item := range feed.Items {
		candidates = append(candidates, Candidate{URL: item.Link, Title: item.Title})
	}
	return candidates, nil
}

// queryURL builds the RSS search URL. The person name is quoted so the feed
// matches the full name, and the window is expressed with after:/before:
// calendar dates.
func (g *GoogleRSS) queryURL(person string, day time.Time) string {
	from := day.Format("2006-01-02")
	to := day.AddDate(0, 0, 1).Format("2006-01-02")
	query := fmt.Sprintf("%q after:%s before:%s", person, from, to)

	params := url.Values{}
	params.Set("q", query)
	params.Set("hl", g.cfg.Language)
	params.Set("gl", g.cfg.Country)
	params.Set("ceid", g.cfg.Country+":"+shortLang(g.cfg.Language))

	return g.cfg.BaseURL + "?" + params.Encode()
}

// shortLang turns "en-US" into "en" for the ceid parameter.
func shortLang(lang string) string {
	for i := 0; i < len(lang); i++ {
		if lang[i] == '-' {
			return lang[:i]
		}
	}
	return lang
}
