package bank

import "math/rand/v2"

// Shuffler abstracts the random source used to order question draws, so
// tests can inject a deterministic one.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// randShuffler shuffles with the shared math/rand/v2 source.
type randShuffler struct{}

func (randShuffler) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

// NewShuffler returns the production Shuffler.
func NewShuffler() Shuffler {
	return randShuffler{}
}
