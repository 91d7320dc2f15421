package bank

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// legendaryKeywords mark rules whose questions get the legendary flag.
var legendaryKeywords = []string{
	"Spartan",
	"NASA",
	"Deadly Comma",
	"Million Dollar Comma",
}

// CleanResult summarizes a bank maintenance pass.
type CleanResult struct {
	Total      int // records read
	Duplicates int // records dropped as duplicate sentences
	Tagged     int // records newly tagged legendary
	Invalid    int // records failing schema or invariants
}

// Clean deduplicates questions by sentence (first occurrence wins) and tags
// legendary questions by rule keyword. Invalid records are dropped.
func Clean(questions []Question) ([]Question, CleanResult) {
	res := CleanResult{Total: len(questions)}
	seen := make(map[string]bool, len(questions))
	out := make([]Question, 0, len(questions))

	for _, q := range questions {
		if err := q.Validate(); err != nil {
			res.Invalid++
			continue
		}
		if seen[q.Sentence] {
			res.Duplicates++
			continue
		}
		seen[q.Sentence] = true

		if !q.IsLegendary && isLegendaryRule(q.Rule) {
			q.IsLegendary = true
			res.Tagged++
		}
		out = append(out, q)
	}
	return out, res
}

func isLegendaryRule(rule string) bool {
	for _, kw := range legendaryKeywords {
		if strings.Contains(rule, kw) {
			return true
		}
	}
	return false
}

// LoadFile reads a question bank JSON file without dropping invalid records,
// so maintenance commands can report them.
func LoadFile(path string) ([]Question, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	var questions []Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("parse bank file: %w", err)
	}
	return questions, nil
}

// WriteFile writes questions back as indented JSON.
func WriteFile(path string, questions []Question) error {
	b, err := json.MarshalIndent(questions, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal bank: %w", err)
	}
	b = append(b, '\n')
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write bank file: %w", err)
	}
	return nil
}

// Check validates every record in a bank file and returns one error message
// per bad record.
func Check(questions []Question) []string {
	var problems []string
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			problems = append(problems, fmt.Sprintf("record %d: %v", i, err))
		}
	}
	return problems
}
