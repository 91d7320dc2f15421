package quiz

import "math/rand/v2"

// StockCommentary is the pool of incorrect-answer remarks used when a
// question carries no sarcastic_comment of its own.
var StockCommentary = []string{
	"Bold choice. Wrong, but bold.",
	"The English language just sighed.",
	"Even autocorrect would have saved you there.",
	"Your old English teacher felt a disturbance.",
	"Somewhere, a semicolon is weeping.",
	"Confidently incorrect. A classic.",
	"We'll pretend that was a typo.",
	"The dictionary would like a word.",
	"That sentence deserved better.",
	"Grammar is hard. Apparently.",
}

// SkipCommentary is shown when the player skips instead of answering.
const SkipCommentary = "Coward's way out? Okay."

// TimeoutCommentary is shown when the countdown resolves the turn.
const TimeoutCommentary = "Time's up. The clock answered for you."

// incorrectCommentary picks the remark for a wrong answer, honoring the
// question's own override when present.
func incorrectCommentary(override string) string {
	if override != "" {
		return override
	}
	return StockCommentary[rand.IntN(len(StockCommentary))]
}
