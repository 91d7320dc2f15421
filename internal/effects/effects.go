// Package effects provides the sound-feedback capability. Playback is
// fire-and-forget: implementations swallow every failure, so callers never
// branch on audio errors.
package effects

import (
	"io"
	"os"
)

// Player is the narrow interface the quiz state machines use to request
// sound cues.
type Player interface {
	// Click plays the button-press cue.
	Click()
	// Correct plays the right-answer cue.
	Correct()
	// Incorrect plays the wrong-answer cue.
	Incorrect()
	// Fanfare plays the legendary-answer celebration cue.
	Fanfare()
}

// Nop is a Player that does nothing.
type Nop struct{}

func (Nop) Click()     {}
func (Nop) Correct()   {}
func (Nop) Incorrect() {}
func (Nop) Fanfare()   {}

// Terminal plays cues through the terminal bell. It is deliberately crude:
// one bell for a click, more for bigger moments. Write errors are ignored.
type Terminal struct {
	// Out defaults to os.Stderr so bells bypass the TUI renderer.
	Out io.Writer
}

func (t *Terminal) bell(n int) {
	out := t.Out
	if out == nil {
		out = os.Stderr
	}
	for i := 0; i < n; i++ {
		_, _ = out.Write([]byte{'\a'})
	}
}

func (t *Terminal) Click()     { t.bell(1) }
func (t *Terminal) Correct()   { t.bell(1) }
func (t *Terminal) Incorrect() { t.bell(2) }
func (t *Terminal) Fanfare()   { t.bell(3) }

// Muted gates a Player behind a mute query, evaluated per cue so a toggle
// takes effect immediately.
type Muted struct {
	Player  Player
	IsMuted func() bool
}

func (m *Muted) play(cue func()) {
	if m.IsMuted != nil && m.IsMuted() {
		return
	}
	cue()
}

func (m *Muted) Click()     { m.play(m.Player.Click) }
func (m *Muted) Correct()   { m.play(m.Player.Correct) }
func (m *Muted) Incorrect() { m.play(m.Player.Incorrect) }
func (m *Muted) Fanfare()   { m.play(m.Player.Fanfare) }
