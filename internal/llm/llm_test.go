package llm

import (
	"strings"
	"testing"
)

func TestParseSentiment_StandardFormat(t *testing.T) {
	got := parseSentiment("Sentiment: Positive. Justification: The coverage praises her leadership.")
	if got.Label != LabelPositive {
		t.Errorf("label = %q, want Positive", got.Label)
	}
	if got.Justification != "The coverage praises her leadership." {
		t.Errorf("justification = %q", got.Justification)
	}
}

func TestParseSentiment_BracketedLabel(t *testing.T) {
	got := parseSentiment("Sentiment: [Negative]. Justification: The sentences describe accusations.")
	if got.Label != LabelNegative {
		t.Errorf("label = %q, want Negative", got.Label)
	}
}

func TestParseSentiment_CaseInsensitive(t *testing.T) {
	got := parseSentiment("sentiment: neutral. justification: factual mention only.")
	if got.Label != LabelNeutral {
		t.Errorf("label = %q, want Neutral", got.Label)
	}
	if got.Justification != "factual mention only." {
		t.Errorf("justification = %q", got.Justification)
	}
}

func TestParseSentiment_Unrecognized(t *testing.T) {
	raw := "The model rambled about something else entirely."
	got := parseSentiment(raw)
	if got.Label != LabelUnknown {
		t.Errorf("label = %q, want Unknown", got.Label)
	}
	if got.Justification != raw {
		t.Errorf("raw response should be kept as justification, got %q", got.Justification)
	}
}

func TestTruncate_ShortTextUnchanged(t *testing.T) {
	if got := truncate("A short text.", 6000); got != "A short text." {
		t.Errorf("short text modified: %q", got)
	}
}

func TestTruncate_CollapsesWhitespace(t *testing.T) {
	if got := truncate("spaced \r\n  out\ttext", 6000); got != "spaced out text" {
		t.Errorf("whitespace not collapsed: %q", got)
	}
}

func TestTruncate_LongTextMarked(t *testing.T) {
	long := strings.Repeat("This sentence repeats to fill space. ", 400)
	got := truncate(long, 6000)
	if !strings.HasSuffix(got, "[TRUNCATED]") {
		t.Errorf("expected truncation marker, got tail %q", got[len(got)-30:])
	}
	if len([]rune(got)) > 6000+len("\n[TRUNCATED]") {
		t.Errorf("truncated text too long: %d runes", len([]rune(got)))
	}
}

func TestNoMentionsSentinel(t *testing.T) {
	if NoMentions.Label != LabelUnknown {
		t.Errorf("NoMentions label = %q", NoMentions.Label)
	}
	if NoMentions.Justification != "No mentions found; sentiment not analyzed." {
		t.Errorf("NoMentions justification = %q", NoMentions.Justification)
	}
}

func TestFallbackSentiment_Labels(t *testing.T) {
	pos := FallbackSentiment([]string{"Jane Doe was praised for her wonderful, generous and inspiring work."})
	if pos.Label != LabelPositive {
		t.Errorf("positive text labeled %q (%s)", pos.Label, pos.Justification)
	}

	neg := FallbackSentiment([]string{"Jane Doe was condemned for the terrible, dishonest and harmful scandal."})
	if neg.Label != LabelNegative {
		t.Errorf("negative text labeled %q (%s)", neg.Label, neg.Justification)
	}

	neu := FallbackSentiment([]string{"Jane Doe attended the quarterly budget meeting on Tuesday."})
	if neu.Label != LabelNeutral {
		t.Errorf("neutral text labeled %q (%s)", neu.Label, neu.Justification)
	}
}
