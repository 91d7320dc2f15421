package bank

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed data/grammar_data.json
var embeddedBank []byte

// DailyDrawSize is the number of questions in a daily challenge run.
const DailyDrawSize = 5

// Bank is the full ordered set of question records. Filtered pools are
// derived views computed per call, never snapshots.
type Bank struct {
	questions []Question
	skipped   int
}

// New creates a Bank from already-validated questions.
func New(questions []Question) *Bank {
	return &Bank{questions: questions}
}

// LoadEmbedded parses the embedded question bank. Malformed records are
// skipped; the load fails only when the bank as a whole is unreadable or no
// valid question survives.
func LoadEmbedded() (*Bank, error) {
	return Load(embeddedBank)
}

// Load parses a question bank from raw JSON.
func Load(raw []byte) (*Bank, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}

	b := &Bank{questions: make([]Question, 0, len(records))}
	for _, rec := range records {
		if err := validateRecord(rec); err != nil {
			b.skipped++
			continue
		}
		var q Question
		if err := json.Unmarshal(rec, &q); err != nil {
			b.skipped++
			continue
		}
		if err := q.Validate(); err != nil {
			b.skipped++
			continue
		}
		b.questions = append(b.questions, q)
	}

	if len(b.questions) == 0 {
		return nil, fmt.Errorf("question bank has no valid questions (%d skipped)", b.skipped)
	}
	return b, nil
}

// All returns every valid question in bank order.
func (b *Bank) All() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// Skipped reports how many records were dropped during load.
func (b *Bank) Skipped() int {
	return b.skipped
}

// Pool returns the playable questions: legendary questions are excluded
// always, elite questions unless the supporter flag is set. The view is
// recomputed on every call so a supporter-flag change takes effect
// immediately.
func (b *Bank) Pool(supporter bool) []Question {
	var pool []Question
	for _, q := range b.questions {
		if q.IsLegendary {
			continue
		}
		if q.IsElite && !supporter {
			continue
		}
		pool = append(pool, q)
	}
	return pool
}

// Legendaries returns the legendary subset of the full, unfiltered bank.
func (b *Bank) Legendaries() []Question {
	var out []Question
	for _, q := range b.questions {
		if q.IsLegendary {
			out = append(out, q)
		}
	}
	return out
}

// Factoid returns the legendary question shown at the given checkpoint
// level, cycling through the legendary subset. Returns false when the bank
// has no legendary questions.
func (b *Bank) Factoid(level int) (Question, bool) {
	legends := b.Legendaries()
	if len(legends) == 0 {
		return Question{}, false
	}
	idx := (level - 1) % len(legends)
	if idx < 0 {
		idx += len(legends)
	}
	return legends[idx], true
}

// Draw returns a shuffled copy of pool, truncated to n questions when
// n > 0.
func Draw(sh Shuffler, pool []Question, n int) []Question {
	drawn := make([]Question, len(pool))
	copy(drawn, pool)
	sh.Shuffle(len(drawn), func(i, j int) {
		drawn[i], drawn[j] = drawn[j], drawn[i]
	})
	if n > 0 && n < len(drawn) {
		drawn = drawn[:n]
	}
	return drawn
}
