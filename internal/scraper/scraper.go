// Package scraper downloads article pages and extracts their title and body
// text.
package scraper

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/russross/blackfriday/v2"
)

// ArticleContent is the extracted content of one article page.
type ArticleContent struct {
	Title   string
	Content string
	URL     string
}

type Scraper struct {
	client    *http.Client
	userAgent string
	converter *md.Converter
}

func New(timeout time.Duration, userAgent string) *Scraper {
	return &Scraper{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
		converter: md.NewConverter("", true, nil),
	}
}

// Extract gets the full text of an article by URL.
func (s *Scraper) Extract(url string) (*ArticleContent, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("loading page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	content := extractParagraphs(doc)
	if content == "" {
		// Selector cascade found nothing; convert the whole page and strip it.
		content = s.markdownFallback(doc)
	}
	content = cleanContent(content)
	if content == "" {
		return nil, fmt.Errorf("can't get content")
	}

	return &ArticleContent{
		Title:   extractTitle(doc),
		Content: content,
		URL:     url,
	}, nil
}

// extractParagraphs tries the most common article body selectors in order.
func extractParagraphs(doc *goquery.Document) string {
	selectors := []string{
		"article p",
		".article-body p",
		".article-content p",
		".post-content p",
		".entry-content p",
		".content p",
		"main p",
		"#content p",
		"p",
	}

	var first []string
	for _, selector := range selectors {
		var paragraphs []string
		doc.Find(selector).Each(func(i int, sel *goquery.Selection) {
			text := strings.TrimSpace(sel.Text())
			if len(text) > 20 {
				paragraphs = append(paragraphs, text)
			}
		})
		if len(paragraphs) >= 3 {
			return strings.Join(paragraphs, "\n\n")
		}
		if len(paragraphs) > 0 && first == nil {
			first = paragraphs
		}
	}

	// A page with fewer than three long paragraphs can still be an article.
	return strings.Join(first, "\n\n")
}

// markdownFallback converts the page body to markdown and strips it back to
// plain text.
func (s *Scraper) markdownFallback(doc *goquery.Document) string {
	body := doc.Find("body")
	if body.Length() == 0 {
		body = doc.Selection
	}

	markdown := s.converter.Convert(body)
	if strings.TrimSpace(markdown) == "" {
		return ""
	}
	return markdownToText(markdown)
}

// markdownToText renders markdown and strips the result to plain text.
func markdownToText(markdown string) string {
	rendered := blackfriday.Run([]byte(markdown), blackfriday.WithNoExtensions())
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(rendered))
	if err != nil {
		return strings.Join(strings.Fields(markdown), " ")
	}

	var parts []string
	doc.Find("p").Each(func(i int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if len(text) > 20 {
			parts = append(parts, text)
		}
	})
	if len(parts) == 0 {
		return strings.TrimSpace(doc.Text())
	}
	return strings.Join(parts, "\n\n")
}

// extractTitle gets the article title from the page. Returns "" when nothing
// usable is found; callers fall back to the source-supplied title.
func extractTitle(doc *goquery.Document) string {
	selectors := []string{
		"h1",
		".article-title",
		".headline",
		".entry-title",
		"title",
	}

	for _, selector := range selectors {
		title := strings.TrimSpace(doc.Find(selector).First().Text())
		if title != "" {
			return title
		}
	}
	return ""
}

// Lines containing these markers are boilerplate, not article text.
var junkIndicators = []string{
	"cookie", "gdpr", "privacy policy", "subscribe", "newsletter",
	"sign in", "log in", "advertisement", "read more", "follow us",
	"share this", "all rights reserved",
}

// cleanContent normalizes whitespace and drops boilerplate lines.
func cleanContent(content string) string {
	if content == "" {
		return ""
	}

	lines := strings.Split(content, "\n")
	var cleanLines []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lower := strings.ToLower(line)
		isJunk := false
		for _, indicator := range junkIndicators {
			if strings.Contains(lower, indicator) {
				isJunk = true
				break
			}
		}
		if isJunk {
			continue
		}
		cleanLines = append(cleanLines, strings.Join(strings.Fields(line), " "))
	}

	result := strings.Join(cleanLines, "\n\n")
	for strings.Contains(result, "\n\n\n") {
		result = strings.ReplaceAll(result, "\n\n\n", "\n\n")
	}
	return strings.TrimSpace(result)
}
