package effects

import (
	"bytes"
	"testing"
)

func TestTerminalBellCounts(t *testing.T) {
	tests := []struct {
		name string
		play func(*Terminal)
		want int
	}{
		{"click", (*Terminal).Click, 1},
		{"correct", (*Terminal).Correct, 1},
		{"incorrect", (*Terminal).Incorrect, 2},
		{"fanfare", (*Terminal).Fanfare, 3},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		term := &Terminal{Out: &buf}
		tt.play(term)
		if got := bytes.Count(buf.Bytes(), []byte{'\a'}); got != tt.want {
			t.Errorf("%s rang %d bells, want %d", tt.name, got, tt.want)
		}
	}
}

func TestMutedGate(t *testing.T) {
	var buf bytes.Buffer
	muted := true
	p := &Muted{
		Player:  &Terminal{Out: &buf},
		IsMuted: func() bool { return muted },
	}

	p.Click()
	p.Fanfare()
	if buf.Len() != 0 {
		t.Errorf("muted player wrote %d bytes, want 0", buf.Len())
	}

	// The gate is evaluated per cue, so unmuting takes effect immediately.
	muted = false
	p.Click()
	if buf.Len() != 1 {
		t.Errorf("unmuted click wrote %d bytes, want 1", buf.Len())
	}
}
