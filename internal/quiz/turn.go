package quiz

import (
	"github.com/marksaft/gramiz/internal/bank"
	"github.com/marksaft/gramiz/internal/effects"
)

// TurnSeconds is the countdown budget for one question.
const TurnSeconds = 15

// Sentinel answers. Neither is ever a member of a question's options.
const (
	AnswerSkip    = "SKIP"
	AnswerTimeout = "TIMEOUT"
)

// Turn is the lifecycle of one displayed question: Active (timer running,
// nothing selected) until a selection, skip, or timeout resolves it.
// A resolved turn is frozen; late ticks and repeat selections are no-ops.
type Turn struct {
	question bank.Question
	fx       effects.Player

	timeRemaining int
	selected      string
	resolved      bool
	correct       bool
	commentary    string
}

// NewTurn starts a turn for q with a full countdown.
func NewTurn(q bank.Question, fx effects.Player) *Turn {
	if fx == nil {
		fx = effects.Nop{}
	}
	return &Turn{
		question:      q,
		fx:            fx,
		timeRemaining: TurnSeconds,
	}
}

// Question returns the question this turn is serving.
func (t *Turn) Question() bank.Question { return t.question }

// TimeRemaining returns the seconds left on the countdown. It stops moving
// once the turn resolves.
func (t *Turn) TimeRemaining() int { return t.timeRemaining }

// Resolved reports whether a selection, skip, or timeout has landed.
func (t *Turn) Resolved() bool { return t.resolved }

// Correct reports the outcome. Meaningful only once resolved.
func (t *Turn) Correct() bool { return t.correct }

// Selected returns the resolving answer: an option, AnswerSkip, or
// AnswerTimeout. Empty while the turn is active.
func (t *Turn) Selected() string { return t.selected }

// Commentary returns the remark to show for a non-correct resolution.
func (t *Turn) Commentary() string { return t.commentary }

// Tick advances the countdown by one second. When it reaches zero the turn
// resolves as a timeout: selected becomes AnswerTimeout, the outcome is
// incorrect, and the incorrect cue plays. Ticks after resolution are
// ignored, so a stale timer can never touch a finished turn.
func (t *Turn) Tick() {
	if t.resolved {
		return
	}
	t.timeRemaining--
	if t.timeRemaining > 0 {
		return
	}
	t.timeRemaining = 0
	t.resolved = true
	t.selected = AnswerTimeout
	t.correct = false
	t.commentary = TimeoutCommentary
	t.fx.Incorrect()
}

// Select resolves the turn with the player's answer. The first selection
// wins; anything after is a no-op. A click cue always plays, followed by
// the outcome cue (fanfare when a legendary question is answered
// correctly). AnswerSkip resolves as incorrect without consulting the
// options and gets its fixed commentary.
func (t *Turn) Select(answer string) {
	if t.resolved {
		return
	}
	t.resolved = true
	t.selected = answer
	t.fx.Click()

	if answer == AnswerSkip {
		t.correct = false
		t.commentary = SkipCommentary
		t.fx.Incorrect()
		return
	}

	t.correct = answer == t.question.Correct
	if t.correct {
		if t.question.IsLegendary {
			t.fx.Fanfare()
		} else {
			t.fx.Correct()
		}
		return
	}

	t.commentary = incorrectCommentary(t.question.SarcasticComment)
	t.fx.Incorrect()
}

// Skip resolves the turn as a skip.
func (t *Turn) Skip() {
	t.Select(AnswerSkip)
}
