package effects

import "sync"

// Toggle is a shared mute flag. The UI flips it and renders it; the Muted
// player wrapper consults it per cue, so a toggle takes effect on the very
// next sound.
type Toggle struct {
	mu    sync.Mutex
	muted bool
}

// NewToggle creates a Toggle with the given initial state.
func NewToggle(muted bool) *Toggle {
	return &Toggle{muted: muted}
}

// Muted reports the current state.
func (t *Toggle) Muted() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.muted
}

// Flip inverts the state and returns the new value.
func (t *Toggle) Flip() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.muted = !t.muted
	return t.muted
}
