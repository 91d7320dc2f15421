package quiz

import (
	"slices"
	"testing"

	"github.com/marksaft/gramiz/internal/bank"
)

// cueRecorder captures sound cues in the order they were requested.
type cueRecorder struct {
	cues []string
}

func (r *cueRecorder) Click()     { r.cues = append(r.cues, "click") }
func (r *cueRecorder) Correct()   { r.cues = append(r.cues, "correct") }
func (r *cueRecorder) Incorrect() { r.cues = append(r.cues, "incorrect") }
func (r *cueRecorder) Fanfare()   { r.cues = append(r.cues, "fanfare") }

func turnQuestion() bank.Question {
	return bank.Question{
		Sentence:    "She ________ to the store every day.",
		Options:     []string{"goes", "go"},
		Correct:     "goes",
		Rule:        "Subject-Verb Agreement",
		Explanation: "A singular subject takes a singular verb.",
	}
}

func TestTurnSelectCorrect(t *testing.T) {
	rec := &cueRecorder{}
	turn := NewTurn(turnQuestion(), rec)

	turn.Select("goes")

	if !turn.Resolved() || !turn.Correct() {
		t.Fatalf("Resolved=%v Correct=%v, want resolved correct", turn.Resolved(), turn.Correct())
	}
	if turn.Selected() != "goes" {
		t.Errorf("Selected = %q, want %q", turn.Selected(), "goes")
	}
	if turn.Commentary() != "" {
		t.Errorf("Commentary = %q, want empty on a correct answer", turn.Commentary())
	}
	if want := []string{"click", "correct"}; !slices.Equal(rec.cues, want) {
		t.Errorf("cues = %v, want %v", rec.cues, want)
	}
}

func TestTurnSelectCorrectLegendaryPlaysFanfare(t *testing.T) {
	q := turnQuestion()
	q.IsLegendary = true
	rec := &cueRecorder{}
	turn := NewTurn(q, rec)

	turn.Select("goes")

	if want := []string{"click", "fanfare"}; !slices.Equal(rec.cues, want) {
		t.Errorf("cues = %v, want %v", rec.cues, want)
	}
}

func TestTurnSelectIncorrectUsesOverride(t *testing.T) {
	q := turnQuestion()
	q.SarcasticComment = "The store is closed to you now."
	rec := &cueRecorder{}
	turn := NewTurn(q, rec)

	turn.Select("go")

	if turn.Correct() {
		t.Fatal("Correct = true for a wrong answer")
	}
	if turn.Commentary() != q.SarcasticComment {
		t.Errorf("Commentary = %q, want the question's own remark", turn.Commentary())
	}
	if want := []string{"click", "incorrect"}; !slices.Equal(rec.cues, want) {
		t.Errorf("cues = %v, want %v", rec.cues, want)
	}
}

func TestTurnSelectIncorrectDrawsStockCommentary(t *testing.T) {
	turn := NewTurn(turnQuestion(), nil)

	turn.Select("go")

	if !slices.Contains(StockCommentary, turn.Commentary()) {
		t.Errorf("Commentary = %q, not in the stock pool", turn.Commentary())
	}
}

func TestTurnSkip(t *testing.T) {
	rec := &cueRecorder{}
	turn := NewTurn(turnQuestion(), rec)

	turn.Skip()

	if !turn.Resolved() || turn.Correct() {
		t.Fatalf("Resolved=%v Correct=%v, want resolved incorrect", turn.Resolved(), turn.Correct())
	}
	if turn.Selected() != AnswerSkip {
		t.Errorf("Selected = %q, want %q", turn.Selected(), AnswerSkip)
	}
	if turn.Commentary() != SkipCommentary {
		t.Errorf("Commentary = %q, want %q", turn.Commentary(), SkipCommentary)
	}
	if want := []string{"click", "incorrect"}; !slices.Equal(rec.cues, want) {
		t.Errorf("cues = %v, want %v", rec.cues, want)
	}
}

func TestTurnTimeout(t *testing.T) {
	rec := &cueRecorder{}
	turn := NewTurn(turnQuestion(), rec)

	for i := 0; i < TurnSeconds; i++ {
		turn.Tick()
	}

	if !turn.Resolved() || turn.Correct() {
		t.Fatalf("Resolved=%v Correct=%v, want resolved incorrect", turn.Resolved(), turn.Correct())
	}
	if turn.Selected() != AnswerTimeout {
		t.Errorf("Selected = %q, want %q", turn.Selected(), AnswerTimeout)
	}
	if turn.TimeRemaining() != 0 {
		t.Errorf("TimeRemaining = %d, want 0", turn.TimeRemaining())
	}
	if turn.Commentary() != TimeoutCommentary {
		t.Errorf("Commentary = %q, want %q", turn.Commentary(), TimeoutCommentary)
	}
	if want := []string{"incorrect"}; !slices.Equal(rec.cues, want) {
		t.Errorf("cues = %v, want %v", rec.cues, want)
	}

	// Stale ticks after the timeout change nothing.
	turn.Tick()
	if turn.TimeRemaining() != 0 || len(rec.cues) != 1 {
		t.Errorf("late tick mutated the turn: time=%d cues=%v", turn.TimeRemaining(), rec.cues)
	}
}

func TestTurnFirstSelectionWins(t *testing.T) {
	rec := &cueRecorder{}
	turn := NewTurn(turnQuestion(), rec)

	turn.Select("go")
	turn.Select("goes")

	if turn.Selected() != "go" || turn.Correct() {
		t.Errorf("Selected=%q Correct=%v, want the first selection to stand", turn.Selected(), turn.Correct())
	}
	if want := []string{"click", "incorrect"}; !slices.Equal(rec.cues, want) {
		t.Errorf("cues = %v, want %v", rec.cues, want)
	}
}

func TestTurnTickAfterSelectionIsNoOp(t *testing.T) {
	turn := NewTurn(turnQuestion(), nil)

	turn.Tick()
	turn.Select("goes")
	before := turn.TimeRemaining()
	turn.Tick()

	if turn.TimeRemaining() != before {
		t.Errorf("TimeRemaining moved after resolution: %d -> %d", before, turn.TimeRemaining())
	}
	if turn.Selected() != "goes" || !turn.Correct() {
		t.Errorf("late tick overwrote the outcome: Selected=%q Correct=%v", turn.Selected(), turn.Correct())
	}
}
