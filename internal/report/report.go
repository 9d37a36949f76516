// Package report holds the per-run report model and its plain-text
// rendering.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/deusflow/mentions/internal/llm"
)

// Article is one fully analyzed article.
type Article struct {
	URL       string
	Title     string
	Text      string
	Mentions  []string
	Summary   string
	Sentiment llm.Sentiment
}

// Item is a title+URL pair for articles that were not analyzed.
type Item struct {
	Title string
	URL   string
}

// Report is the compiled result of one query.
type Report struct {
	Person string
	Day    time.Time

	Articles     []Article
	Unanalyzable []Item // fetch or extraction failed
	MentionOnly  []Item // skipped once the per-run article cap was reached
}

// Filename is the attachment name for the emailed report.
func (r *Report) Filename() string {
	name := strings.ReplaceAll(r.Person, " ", "_")
	return fmt.Sprintf("Report-%s-%s.txt", name, r.Day.Format("2006-01-02"))
}

// Subject is the email subject line.
func (r *Report) Subject() string {
	return fmt.Sprintf("News & Sentiment Report for %s on %s", r.Person, r.Day.Format("2006-01-02"))
}

// EmailBody is the plain-text email body accompanying the attachment.
func (r *Report) EmailBody() string {
	return fmt.Sprintf("Hi,\n\nPlease find the attached news summary and sentiment report for %s covering %s.\n\nBest wishes,\nYour Friendly News Bot\n", r.Person, r.Day.Format("2006-01-02"))
}

// Render produces the human-readable text report.
func (r *Report) Render() string {
	var b strings.Builder

	b.WriteString("News Mention, Summary & Sentiment Report\n")
	b.WriteString("=========================================\n")
	fmt.Fprintf(&b, "Person: %s\n", r.Person)
	fmt.Fprintf(&b, "Date: %s\n\n", r.Day.Format("Monday, January 02, 2006"))

	if len(r.Articles) == 0 {
		b.WriteString("No articles could be successfully analyzed.\n\n")
	} else {
		b.WriteString("--- Analyzed Articles ---\n\n")
		for i, a := range r.Articles {
			title := a.Title
			if title == "" {
				title = "Title Not Found"
			}
			fmt.Fprintf(&b, "%d. Title: %s\n", i+1, title)
			fmt.Fprintf(&b, "   URL: %s\n\n", a.URL)
			fmt.Fprintf(&b, "   AI Summary: %s\n\n", a.Summary)
			fmt.Fprintf(&b, "   Sentiment: %s. Justification: %s\n", a.Sentiment.Label, a.Sentiment.Justification)

			if len(a.Mentions) > 0 {
				b.WriteString("   Mentions Found:\n")
				for _, sentence := range a.Mentions {
					fmt.Fprintf(&b, "   - %q\n", sentence)
				}
			} else {
				b.WriteString("   Mentions Found: None\n")
			}
			b.WriteString("\n" + strings.Repeat("=", 50) + "\n\n")
		}
	}

	writeItemSection(&b, "--- Unanalyzable Articles ---", r.Unanalyzable)
	writeItemSection(&b, "--- Not Analyzed (mention only) ---", r.MentionOnly)

	return b.String()
}

func writeItemSection(b *strings.Builder, header string, items []Item) {
	if len(items) == 0 {
		return
	}
	b.WriteString(header + "\n\n")
	for _, item := range items {
		title := item.Title
		if title == "" {
			title = "Title Not Found"
		}
		fmt.Fprintf(b, "- %s\n  %s\n", title, item.URL)
	}
	b.WriteString("\n")
}
