package quiz

import (
	"strings"
	"unicode"

	"github.com/marksaft/gramiz/internal/bank"
)

// properNouns is the fixed allow-list of tokens that keep their casing when
// echoed into a mid-sentence gap.
var properNouns = map[string]bool{
	"I":           true,
	"I'm":         true,
	"I've":        true,
	"English":     true,
	"NASA":        true,
	"Oxford":      true,
	"Shakespeare": true,
	"Grandma":     true,
}

// FillGaps echoes the selected answer into the sentence's gap markers.
// Compound answers are split on "/" and trimmed, one part per gap. A gap at
// the very start of the sentence shows its part verbatim (it is assumed
// capitalized); later gaps are lower-cased unless the token looks like a
// proper noun. Missing parts leave the marker in place.
func FillGaps(sentence, answer string) string {
	if answer == "" || answer == AnswerSkip || answer == AnswerTimeout {
		return sentence
	}

	parts := strings.Split(answer, "/")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	segments := strings.Split(sentence, bank.GapMarker)
	var b strings.Builder
	for i, seg := range segments {
		b.WriteString(seg)
		if i >= len(segments)-1 {
			break
		}
		if i >= len(parts) {
			b.WriteString(bank.GapMarker)
			continue
		}
		part := parts[i]
		atSentenceStart := i == 0 && seg == ""
		if !atSentenceStart && !isProperNoun(part) {
			part = strings.ToLower(part)
		}
		b.WriteString(part)
	}
	return b.String()
}

// isProperNoun reports whether a token should keep its casing: either it is
// on the allow-list, or any character after the first is upper-case (an
// acronym or mid-cap name). The heuristic is deliberately literal and can
// misfire on unusual tokens.
func isProperNoun(token string) bool {
	if properNouns[token] {
		return true
	}
	runes := []rune(token)
	for _, r := range runes[min(len(runes), 1):] {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
