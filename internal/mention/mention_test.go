package mention

import (
	"reflect"
	"testing"
)

func TestSentences_SplitsOnTerminators(t *testing.T) {
	text := "Jane Doe visited Paris. She spoke at the summit! Was it well received? Yes."
	got := Sentences(text)
	want := []string{
		"Jane Doe visited Paris.",
		"She spoke at the summit!",
		"Was it well received?",
		"Yes.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sentences() = %q, want %q", got, want)
	}
}

func TestSentences_KeepsAbbreviationsTogether(t *testing.T) {
	text := "Dr. Smith met Jane Doe at the hospital. The visit went well."
	got := Sentences(text)
	if len(got) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %q", len(got), got)
	}
	if got[0] != "Dr. Smith met Jane Doe at the hospital." {
		t.Errorf("abbreviation split the sentence: %q", got[0])
	}
}

func TestSentences_KeepsInitialsTogether(t *testing.T) {
	got := Sentences("J. Doe arrived early. Everyone noticed.")
	if len(got) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %q", len(got), got)
	}
	if got[0] != "J. Doe arrived early." {
		t.Errorf("initial split the sentence: %q", got[0])
	}
}

func TestSentences_TrailingTextWithoutTerminator(t *testing.T) {
	got := Sentences("First sentence. And a trailing fragment")
	if len(got) != 2 || got[1] != "And a trailing fragment" {
		t.Errorf("trailing fragment not preserved: %q", got)
	}
}

func TestFilter_CaseInsensitiveSubstring(t *testing.T) {
	text := "JANE DOE won the award. The ceremony was long. Critics praised jane doe warmly."
	got := Filter(text, "Jane Doe")
	if len(got) != 2 {
		t.Fatalf("expected 2 mention sentences, got %d: %q", len(got), got)
	}
}

func TestFilter_MatchesNameFragments(t *testing.T) {
	// Substring containment is the specified behavior, fragments included.
	got := Filter("Doe season opened today.", "Doe")
	if len(got) != 1 {
		t.Errorf("fragment match expected, got %q", got)
	}
}

func TestFilter_NormalizesWhitespaceInMatches(t *testing.T) {
	got := Filter("Jane Doe spoke\tat the   summit yesterday evening.", "Jane Doe")
	if len(got) != 1 {
		t.Fatalf("expected 1 mention, got %q", got)
	}
	if got[0] != "Jane Doe spoke at the summit yesterday evening." {
		t.Errorf("whitespace not normalized: %q", got[0])
	}
}

func TestFilter_EmptyInputs(t *testing.T) {
	if got := Filter("", "Jane Doe"); got != nil {
		t.Errorf("expected nil for empty text, got %q", got)
	}
	if got := Filter("Some text here.", ""); got != nil {
		t.Errorf("expected nil for empty name, got %q", got)
	}
	if got := Filter("Nothing about anybody relevant.", "Jane Doe"); got != nil {
		t.Errorf("expected nil when name absent, got %q", got)
	}
}
