// Package mention splits article text into sentences and filters for
// sentences mentioning a person.
package mention

import (
	"strings"
	"unicode"
)

// Abbreviations that end with a period but do not end a sentence.
var abbreviations = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	"sr": true, "jr": true, "st": true, "gen": true, "sen": true,
	"rep": true, "gov": true, "vs": true, "etc": true, "inc": true,
	"ltd": true, "co": true, "corp": true, "no": true, "approx": true,
}

// Sentences splits text into sentences. A sentence ends at '.', '!' or '?'
// followed by whitespace, unless the period belongs to a known abbreviation,
// an initial ("J. Doe") or a number ("3.5").
func Sentences(text string) []string {
	var sentences []string
	runes := []rune(text)
	start := 0

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		// Consume runs like "?!" or "..." as one terminator.
		for i+1 < len(runes) && (runes[i+1] == '.' || runes[i+1] == '!' || runes[i+1] == '?') {
			i++
		}
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if r == '.' && !endsSentence(runes, i) {
			continue
		}

		s := strings.TrimSpace(string(runes[start : i+1]))
		if s != "" {
			sentences = append(sentences, s)
		}
		start = i + 1
	}

	if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}

// endsSentence reports whether the period at position i terminates a
// sentence rather than an abbreviation, initial or number.
func endsSentence(runes []rune, i int) bool {
	// Word immediately before the period.
	end := i
	begin := end
	for begin > 0 && (unicode.IsLetter(runes[begin-1]) || unicode.IsDigit(runes[begin-1])) {
		begin--
	}
	word := string(runes[begin:end])

	if len(word) == 1 && unicode.IsUpper([]rune(word)[0]) {
		return false // initial, e.g. "J."
	}
	if abbreviations[strings.ToLower(word)] {
		return false
	}
	// "3." followed by a digit is a decimal split across whitespace-less text,
	// handled above; a bare trailing number is a list marker.
	if word != "" && isAllDigits(word) && begin > 0 && runes[begin-1] == '\n' {
		return false
	}
	return true
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

// Filter returns the sentences of text that contain name as a
// case-insensitive substring. Matches on name fragments are accepted
// behavior. Internal newlines are replaced with spaces.
func Filter(text, name string) []string {
	if strings.TrimSpace(name) == "" {
		return nil
	}
	needle := strings.ToLower(name)

	var found []string
	for _, s := range Sentences(text) {
		if strings.Contains(strings.ToLower(s), needle) {
			found = append(found, strings.Join(strings.Fields(s), " "))
		}
	}
	return found
}
