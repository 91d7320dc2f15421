package quiz

import "testing"

func TestFillGaps(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		answer   string
		want     string
	}{
		{
			name:     "mid-sentence gap lower-cases the answer",
			sentence: "She ________ to the store every day.",
			answer:   "Goes",
			want:     "She goes to the store every day.",
		},
		{
			name:     "gap at sentence start keeps casing",
			sentence: "________ going to rain later.",
			answer:   "It's",
			want:     "It's going to rain later.",
		},
		{
			name:     "allow-listed proper noun keeps casing",
			sentence: "The works of ________ endure.",
			answer:   "Shakespeare",
			want:     "The works of Shakespeare endure.",
		},
		{
			name:     "mid-cap token keeps casing",
			sentence: "He bought an ________ yesterday.",
			answer:   "iPhone",
			want:     "He bought an iPhone yesterday.",
		},
		{
			name:     "compound answer fills gaps in order",
			sentence: "________ going to eat ________ lunch.",
			answer:   "They're / their",
			want:     "They're going to eat their lunch.",
		},
		{
			name:     "missing parts leave the marker",
			sentence: "________ dog ate ________ homework.",
			answer:   "Their",
			want:     "Their dog ate ________ homework.",
		},
		{
			name:     "skip leaves the sentence untouched",
			sentence: "She ________ to the store.",
			answer:   AnswerSkip,
			want:     "She ________ to the store.",
		},
		{
			name:     "timeout leaves the sentence untouched",
			sentence: "She ________ to the store.",
			answer:   AnswerTimeout,
			want:     "She ________ to the store.",
		},
		{
			name:     "empty answer leaves the sentence untouched",
			sentence: "She ________ to the store.",
			answer:   "",
			want:     "She ________ to the store.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FillGaps(tt.sentence, tt.answer); got != tt.want {
				t.Errorf("FillGaps(%q, %q) = %q, want %q", tt.sentence, tt.answer, got, tt.want)
			}
		})
	}
}

func TestIsProperNoun(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"I", true},
		{"I'm", true},
		{"NASA", true},
		{"iPhone", true},
		{"McDonald's", true},
		{"Goes", false},
		{"their", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isProperNoun(tt.token); got != tt.want {
			t.Errorf("isProperNoun(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}
