package bank

import (
	"fmt"
	"strings"
)

// GapMarker is the blank placeholder inside a question sentence.
const GapMarker = "________"

// FallbackImage replaces a question image that fails to load.
const FallbackImage = "https://images.unsplash.com/photo-1552519507-da3b142c6e3d?auto=format&fit=crop&q=80&w=800"

// Question is one multiple-choice grammar question. Records are immutable
// once loaded from the bank.
type Question struct {
	// Sentence contains one or more gap markers to fill.
	Sentence string `json:"sentence"`

	// Options are the answer choices in display order.
	Options []string `json:"options"`

	// Correct is the right answer; always one of Options.
	Correct string `json:"correct"`

	// Rule is the grammar rule name shown as a category tag.
	Rule string `json:"rule"`

	// Explanation is shown after the question is answered.
	Explanation string `json:"explanation"`

	// Image is an optional illustration URL.
	Image string `json:"image,omitempty"`

	// IsLegendary marks questions with a celebratory cue on a correct
	// answer; legendary questions also supply checkpoint factoids.
	IsLegendary bool `json:"isLegendary,omitempty"`

	// IsElite restricts the question to supporters.
	IsElite bool `json:"isElite,omitempty"`

	// SarcasticComment overrides the stock incorrect-answer commentary.
	SarcasticComment string `json:"sarcastic_comment,omitempty"`
}

// GapCount returns the number of gap markers in the sentence.
func (q Question) GapCount() int {
	return strings.Count(q.Sentence, GapMarker)
}

// Validate checks the structural invariants a question must satisfy to be
// served: at least two options, the correct answer among them, and one gap
// marker per compound answer part.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Sentence) == "" {
		return fmt.Errorf("empty sentence")
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("question %q: %d options, need at least 2", q.Rule, len(q.Options))
	}

	found := false
	for _, opt := range q.Options {
		if opt == q.Correct {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("question %q: correct answer %q not among options", q.Rule, q.Correct)
	}

	gaps := q.GapCount()
	if gaps == 0 {
		return fmt.Errorf("question %q: sentence has no gap marker", q.Rule)
	}
	if parts := len(strings.Split(q.Correct, "/")); parts != gaps {
		return fmt.Errorf("question %q: %d gaps but answer has %d parts", q.Rule, gaps, parts)
	}

	return nil
}
