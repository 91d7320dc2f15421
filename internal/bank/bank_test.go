package bank

import (
	"strings"
	"testing"
)

// fakeShuffler reverses the slice so draws are deterministic in tests.
type fakeShuffler struct{}

func (fakeShuffler) Shuffle(n int, swap func(i, j int)) {
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}

func testQuestions() []Question {
	return []Question{
		{Sentence: "a " + GapMarker, Options: []string{"x", "y"}, Correct: "x", Rule: "R1", Explanation: "e"},
		{Sentence: "b " + GapMarker, Options: []string{"x", "y"}, Correct: "y", Rule: "R2", Explanation: "e", IsElite: true},
		{Sentence: "c " + GapMarker, Options: []string{"x", "y"}, Correct: "x", Rule: "L1", Explanation: "e", IsLegendary: true},
		{Sentence: "d " + GapMarker, Options: []string{"x", "y"}, Correct: "y", Rule: "L2", Explanation: "e", IsLegendary: true},
		{Sentence: "e " + GapMarker, Options: []string{"x", "y"}, Correct: "x", Rule: "R3", Explanation: "e"},
	}
}

func TestLoadEmbedded(t *testing.T) {
	b, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded: %v", err)
	}
	if len(b.All()) == 0 {
		t.Fatal("embedded bank is empty")
	}
	if b.Skipped() != 0 {
		t.Errorf("embedded bank skipped %d records, want 0", b.Skipped())
	}
	if len(b.Legendaries()) == 0 {
		t.Error("embedded bank has no legendary questions")
	}
	for _, q := range b.All() {
		if err := q.Validate(); err != nil {
			t.Errorf("embedded question invalid: %v", err)
		}
	}
}

func TestLoadSkipsMalformedRecords(t *testing.T) {
	raw := `[
		{"sentence": "ok ________", "options": ["a", "b"], "correct": "a", "rule": "R", "explanation": "e"},
		{"sentence": "missing correct ________", "options": ["a", "b"], "rule": "R", "explanation": "e"},
		{"sentence": "not in options ________", "options": ["a", "b"], "correct": "c", "rule": "R", "explanation": "e"},
		{"sentence": "one option ________", "options": ["a"], "correct": "a", "rule": "R", "explanation": "e"},
		{"sentence": "no gap", "options": ["a", "b"], "correct": "a", "rule": "R", "explanation": "e"}
	]`
	b, err := Load([]byte(raw))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := len(b.All()); got != 1 {
		t.Errorf("valid questions = %d, want 1", got)
	}
	if b.Skipped() != 4 {
		t.Errorf("skipped = %d, want 4", b.Skipped())
	}
}

func TestLoadAllInvalidFails(t *testing.T) {
	_, err := Load([]byte(`[{"rule": "R"}]`))
	if err == nil {
		t.Fatal("expected error for bank with no valid questions")
	}
}

func TestPoolFiltering(t *testing.T) {
	b := New(testQuestions())

	pool := b.Pool(false)
	if len(pool) != 2 {
		t.Fatalf("non-supporter pool size = %d, want 2", len(pool))
	}
	for _, q := range pool {
		if q.IsLegendary || q.IsElite {
			t.Errorf("non-supporter pool contains flagged question %q", q.Rule)
		}
	}

	// The pool is a derived view: flipping the supporter flag changes it
	// without reloading.
	pool = b.Pool(true)
	if len(pool) != 3 {
		t.Fatalf("supporter pool size = %d, want 3", len(pool))
	}
	for _, q := range pool {
		if q.IsLegendary {
			t.Errorf("supporter pool contains legendary question %q", q.Rule)
		}
	}
}

func TestFactoidCycles(t *testing.T) {
	b := New(testQuestions())

	tests := []struct {
		level    int
		wantRule string
	}{
		{1, "L1"},
		{2, "L2"},
		{3, "L1"}, // wraps around
		{4, "L2"},
	}
	for _, tt := range tests {
		q, ok := b.Factoid(tt.level)
		if !ok {
			t.Fatalf("Factoid(%d) not found", tt.level)
		}
		if q.Rule != tt.wantRule {
			t.Errorf("Factoid(%d) = %q, want %q", tt.level, q.Rule, tt.wantRule)
		}
	}
}

func TestFactoidNoLegendaries(t *testing.T) {
	b := New(testQuestions()[:2])
	if _, ok := b.Factoid(1); ok {
		t.Error("Factoid returned ok for bank without legendaries")
	}
}

func TestDraw(t *testing.T) {
	b := New(testQuestions())
	pool := b.Pool(true) // R1, R2, R3

	drawn := Draw(fakeShuffler{}, pool, 2)
	if len(drawn) != 2 {
		t.Fatalf("drawn size = %d, want 2", len(drawn))
	}
	// fakeShuffler reverses, so the draw starts from the pool's tail.
	if drawn[0].Rule != "R3" {
		t.Errorf("drawn[0].Rule = %q, want R3", drawn[0].Rule)
	}

	// n = 0 keeps the full pool.
	drawn = Draw(fakeShuffler{}, pool, 0)
	if len(drawn) != len(pool) {
		t.Errorf("full draw size = %d, want %d", len(drawn), len(pool))
	}

	// The source pool must not be mutated.
	if pool[0].Rule != "R1" {
		t.Errorf("Draw mutated source pool: pool[0].Rule = %q", pool[0].Rule)
	}
}

func TestQuestionValidateGapArithmetic(t *testing.T) {
	q := Question{
		Sentence:    GapMarker + " going to regret leaving " + GapMarker + " umbrella.",
		Options:     []string{"They're / their", "Their / they're"},
		Correct:     "They're / their",
		Rule:        "R",
		Explanation: "e",
	}
	if err := q.Validate(); err != nil {
		t.Errorf("two-gap compound answer should validate: %v", err)
	}

	q.Correct = "They're"
	q.Options = []string{"They're", "Their"}
	if err := q.Validate(); err == nil {
		t.Error("single-part answer with two gaps should fail validation")
	}
}

func TestEmbeddedBankHasEliteQuestions(t *testing.T) {
	b, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded: %v", err)
	}
	elite := 0
	for _, q := range b.All() {
		if q.IsElite {
			elite++
		}
	}
	if elite == 0 {
		t.Error("embedded bank has no elite questions")
	}
	if len(b.Pool(true))-len(b.Pool(false)) != elite {
		t.Errorf("supporter pool should grow by exactly the elite count %d", elite)
	}
}

func TestCleanDedupAndTag(t *testing.T) {
	qs := []Question{
		{Sentence: "a " + GapMarker, Options: []string{"x", "y"}, Correct: "x", Rule: "Its vs It's", Explanation: "e"},
		{Sentence: "a " + GapMarker, Options: []string{"x", "y"}, Correct: "x", Rule: "Its vs It's", Explanation: "e"},
		{Sentence: "b " + GapMarker, Options: []string{"x", "y"}, Correct: "x", Rule: "NASA's Missing Comma", Explanation: "e"},
		{Sentence: "bad", Options: []string{"x"}, Correct: "x", Rule: "R", Explanation: "e"},
	}

	cleaned, res := Clean(qs)
	if len(cleaned) != 2 {
		t.Fatalf("cleaned size = %d, want 2", len(cleaned))
	}
	if res.Duplicates != 1 || res.Invalid != 1 || res.Tagged != 1 {
		t.Errorf("result = %+v, want 1 duplicate, 1 invalid, 1 tagged", res)
	}
	if !cleaned[1].IsLegendary {
		t.Error("NASA rule question was not tagged legendary")
	}
	if cleaned[0].IsLegendary {
		t.Error("plain rule question was wrongly tagged legendary")
	}
}

func TestCheckReportsProblems(t *testing.T) {
	problems := Check([]Question{
		{Sentence: "ok " + GapMarker, Options: []string{"x", "y"}, Correct: "x", Rule: "R", Explanation: "e"},
		{Sentence: "no gap", Options: []string{"x", "y"}, Correct: "x", Rule: "R", Explanation: "e"},
	})
	if len(problems) != 1 {
		t.Fatalf("problems = %d, want 1", len(problems))
	}
	if !strings.Contains(problems[0], "record 1") {
		t.Errorf("problem does not name the record: %q", problems[0])
	}
}
