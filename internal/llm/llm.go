// Package llm asks a language model for article summaries and sentiment
// judgments about a person's news mentions.
package llm

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/deusflow/mentions/internal/config"
	"github.com/jonreiter/govader"
)

// Label is the model's sentiment judgment of the mentions.
type Label string

const (
	LabelPositive Label = "Positive"
	LabelNegative Label = "Negative"
	LabelNeutral  Label = "Neutral"
	LabelUnknown  Label = "Unknown"
)

type Sentiment struct {
	Label         Label
	Justification string
}

// NoMentions is the fixed result produced without a model call when an
// article has no mention sentences.
var NoMentions = Sentiment{
	Label:         LabelUnknown,
	Justification: "No mentions found; sentiment not analyzed.",
}

// EmptyTextSummary is produced without a model call when there is no text
// to summarize.
const EmptyTextSummary = "Article text was empty; summary could not be generated."

// Client produces summaries and sentiment judgments.
type Client interface {
	Summarize(text string) (string, error)
	AnalyzeSentiment(person string, sentences []string) (Sentiment, error)
	Close()
}

// New selects a provider from the configuration.
func New(cfg *config.Config) (Client, error) {
	switch cfg.LLMProvider {
	case "gemini":
		return NewGemini(cfg.GeminiAPIKey)
	case "openai":
		return NewOpenAI(cfg.OpenAIAPIKey)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLMProvider)
	}
}

const (
	summarySystemPrompt = "You are an expert news editor. Create a concise, neutral, two-sentence summary of the provided news article text."

	sentimentSystemPrompt = "You are an expert news analyst. Determine if the sentiment of a news mention towards a person is Positive, Negative, or Neutral. Base your judgment ONLY on the provided text."
)

func summaryUserPrompt(text string) string {
	return "Please summarize the following article text:\n\n---\n\n" + truncate(text, 6000)
}

func sentimentUserPrompt(person string, sentences []string) string {
	context := strings.Join(sentences, " ")
	return fmt.Sprintf("Person: %s\nSentences: %q\n\nFormat your response as: Sentiment: [Positive/Negative/Neutral]. Justification: [A brief, one-sentence explanation.]", person, truncate(context, 6000))
}

// truncate limits prompt size on a rune boundary, preferring to end at a
// sentence.
func truncate(text string, maxRunes int) string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r", ""))
	text = strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(text) <= maxRunes {
		return text
	}

	runes := []rune(text)
	trimmed := string(runes[:maxRunes])
	if idx := strings.LastIndex(trimmed, ". "); idx > 1200 {
		trimmed = trimmed[:idx+1]
	}
	return trimmed + "\n[TRUNCATED]"
}

var (
	sentimentLabelRe = regexp.MustCompile(`(?i)sentiment\s*:?\s*\[?\s*(positive|negative|neutral)`)
	justificationRe  = regexp.MustCompile(`(?i)justification\s*:?\s*(.+)`)
)

// parseSentiment reads the model's "Sentiment: ... Justification: ..."
// response leniently. A response with no recognizable label yields Unknown
// with the raw response as justification.
func parseSentiment(response string) Sentiment {
	response = strings.TrimSpace(response)

	result := Sentiment{Label: LabelUnknown, Justification: response}
	if m := sentimentLabelRe.FindStringSubmatch(response); m != nil {
		switch strings.ToLower(m[1]) {
		case "positive":
			result.Label = LabelPositive
		case "negative":
			result.Label = LabelNegative
		case "neutral":
			result.Label = LabelNeutral
		}
	}
	if m := justificationRe.FindStringSubmatch(response); m != nil {
		result.Justification = strings.TrimSpace(m[1])
	}
	return result
}

var vaderAnalyzer = govader.NewSentimentIntensityAnalyzer()

// FallbackSentiment scores the mention sentences locally with VADER. Used
// when the model call fails so the pipeline can continue with a judgment
// instead of a sentinel.
func FallbackSentiment(sentences []string) Sentiment {
	text := strings.Join(sentences, " ")
	score := vaderAnalyzer.PolarityScores(text).Compound

	label := LabelNeutral
	if score >= 0.20 {
		label = LabelPositive
	} else if score <= -0.20 {
		label = LabelNegative
	}

	return Sentiment{
		Label:         label,
		Justification: fmt.Sprintf("Lexicon-based fallback judgment (model unavailable; compound score %.2f).", score),
	}
}
