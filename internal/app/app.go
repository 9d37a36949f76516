// Package app wires the sequential pipeline: collect URLs, resolve, extract,
// filter mentions, analyze, render, email.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/deusflow/mentions/internal/config"
	"github.com/deusflow/mentions/internal/llm"
	"github.com/deusflow/mentions/internal/mailer"
	"github.com/deusflow/mentions/internal/mention"
	"github.com/deusflow/mentions/internal/metrics"
	"github.com/deusflow/mentions/internal/report"
	"github.com/deusflow/mentions/internal/resolve"
	"github.com/deusflow/mentions/internal/scraper"
	"github.com/deusflow/mentions/internal/search"
)

// Query is one report request. Everything derived from it is discarded when
// the run ends.
type Query struct {
	Person    string
	Day       time.Time
	Recipient string // optional
}

type urlResolver interface {
	ResolveAll([]search.Candidate) []search.Candidate
}

type extractor interface {
	Extract(url string) (*scraper.ArticleContent, error)
}

type reportSender interface {
	Enabled() bool
	SendReport(recipient, subject, body, filename, attachment string) error
}

type App struct {
	cfg      *config.Config
	sources  []search.Source
	resolver urlResolver
	scraper  extractor
	model    llm.Client
	mailer   reportSender
}

func New(cfg *config.Config) (*App, error) {
	srcCfg, err := search.LoadSources(cfg.SourcesConfigPath)
	if err != nil {
		slog.Warn("sources config not loaded, using defaults", "path", cfg.SourcesConfigPath, "error", err)
	}

	sources := []search.Source{search.NewGoogleRSS(srcCfg.GoogleRSS)}
	if cfg.NewsAPIKey != "" {
		sources = append(sources, search.NewNewsAPI(srcCfg.NewsAPI, cfg.NewsAPIKey, cfg.RequestTimeout))
	} else {
		slog.Warn("NEWSAPI_KEY not set, searching Google News RSS only")
	}

	model, err := llm.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating language model client: %w", err)
	}

	return &App{
		cfg:      cfg,
		sources:  sources,
		resolver: resolve.New(cfg.RequestTimeout, cfg.UserAgent),
		scraper:  scraper.New(cfg.RequestTimeout, cfg.UserAgent),
		model:    model,
		mailer:   mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SenderEmail, cfg.SenderPassword),
	}, nil
}

func (a *App) Close() {
	if a.model != nil {
		a.model.Close()
	}
}

// Run executes the pipeline for one query and returns the compiled report.
// External call failures are logged and the run continues with the
// remaining items; only an empty candidate set is an error.
func (a *App) Run(q Query) (*report.Report, error) {
	start := time.Now()
	defer func() {
		metrics.Global.RecordRunDuration(time.Since(start))
	}()

	slog.Info("searching for articles", "person", q.Person, "date", q.Day.Format("2006-01-02"))
	candidates := search.Collect(a.sources, q.Person, q.Day)
	metrics.Global.AddCandidates(len(candidates))

	if len(candidates) == 0 {
		err := fmt.Errorf("no articles found for %q on %s", q.Person, q.Day.Format("2006-01-02"))
		metrics.Global.SetError(err.Error())
		return nil, err
	}
	slog.Info("candidate URLs collected", "count", len(candidates))

	if a.cfg.ResolveLinks {
		candidates = a.resolver.ResolveAll(candidates)
		slog.Info("links resolved", "count", len(candidates))
	}

	rep := &report.Report{Person: q.Person, Day: q.Day}

	if len(candidates) > a.cfg.MaxArticles {
		for _, c := range candidates[a.cfg.MaxArticles:] {
			rep.MentionOnly = append(rep.MentionOnly, report.Item{Title: c.Title, URL: c.URL})
		}
		slog.Warn("candidate list truncated", "cap", a.cfg.MaxArticles, "skipped", len(candidates)-a.cfg.MaxArticles)
		candidates = candidates[:a.cfg.MaxArticles]
	}

	for i, c := range candidates {
		slog.Info("analyzing article", "index", i+1, "total", len(candidates), "url", c.URL)
		article, ok := a.processCandidate(q.Person, c)
		if !ok {
			rep.Unanalyzable = append(rep.Unanalyzable, report.Item{Title: c.Title, URL: c.URL})
			continue
		}
		rep.Articles = append(rep.Articles, article)
	}

	a.emailReport(q, rep)
	metrics.Global.SetLastRun()
	return rep, nil
}

// processCandidate downloads and analyzes one article. ok is false when the
// article could not be fetched or yielded no meaningful text.
func (a *App) processCandidate(person string, c search.Candidate) (article report.Article, ok bool) {
	content, err := a.scraper.Extract(c.URL)
	if err != nil {
		slog.Warn("could not process article", "url", c.URL, "error", err)
		metrics.Global.IncrementExtractionFailures()
		return report.Article{}, false
	}
	if len(content.Content) < a.cfg.MinArticleChars {
		slog.Warn("failed to extract meaningful text", "url", c.URL, "chars", len(content.Content))
		metrics.Global.IncrementExtractionFailures()
		return report.Article{}, false
	}

	title := content.Title
	if title == "" {
		title = c.Title
	}

	mentions := mention.Filter(content.Content, person)

	metrics.Global.IncrementModelCalls()
	summary, err := a.model.Summarize(content.Content)
	if err != nil {
		slog.Warn("summary generation failed", "url", c.URL, "error", err)
		metrics.Global.IncrementModelFailures()
		summary = fmt.Sprintf("Summary generation failed: %v", err)
	}

	sentiment := llm.NoMentions
	if len(mentions) > 0 {
		metrics.Global.IncrementModelCalls()
		sentiment, err = a.model.AnalyzeSentiment(person, mentions)
		if err != nil {
			slog.Warn("sentiment analysis failed, using lexicon fallback", "url", c.URL, "error", err)
			metrics.Global.IncrementModelFailures()
			sentiment = llm.FallbackSentiment(mentions)
		}
	}

	metrics.Global.IncrementArticlesAnalyzed()
	return report.Article{
		URL:       c.URL,
		Title:     title,
		Text:      content.Content,
		Mentions:  mentions,
		Summary:   summary,
		Sentiment: sentiment,
	}, true
}

func (a *App) emailReport(q Query, rep *report.Report) {
	if q.Recipient == "" || len(rep.Articles) == 0 {
		return
	}
	if !a.mailer.Enabled() {
		slog.Warn("email requested but mail credentials are missing, skipping")
		return
	}

	err := a.mailer.SendReport(q.Recipient, rep.Subject(), rep.EmailBody(), rep.Filename(), rep.Render())
	if err != nil {
		slog.Error("failed to send report email", "recipient", q.Recipient, "error", err)
		return
	}
	metrics.Global.IncrementReportsEmailed()
	slog.Info("report emailed", "recipient", q.Recipient)
}
