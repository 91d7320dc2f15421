// Package game holds the screens of a quiz run: the active question, the
// checkpoint break, the result, and zen mode. They live in one package so a
// screen can hand the run off to the next one in place.
package game

import (
	"github.com/marksaft/gramiz/internal/bank"
	"github.com/marksaft/gramiz/internal/effects"
	"github.com/marksaft/gramiz/internal/quiz"
	"github.com/marksaft/gramiz/internal/store"
)

// Deps is the wiring shared by every run screen.
type Deps struct {
	Session *quiz.Session
	Bank    *bank.Bank
	Prefs   store.PrefsRepo
	Sound   *effects.Toggle
}

// tickMsg drives the per-question countdown. Seq ties it to one turn so a
// tick scheduled for an earlier question can never touch a later one.
type tickMsg struct {
	Seq int
}

// zenTickMsg rotates the zen-mode factoid.
type zenTickMsg struct{}

// submittedMsg reports the result-screen persistence outcome.
type submittedMsg struct {
	Err error
}

// boardLoadedMsg delivers the leaderboard and the supporter flag for the
// result screen.
type boardLoadedMsg struct {
	Board     []store.LeaderboardEntry
	Supporter bool
	Err       error
}

// supporterToggledMsg reports a persisted supporter-flag change.
type supporterToggledMsg struct {
	On bool
}

// copiedMsg reports a share-to-clipboard attempt.
type copiedMsg struct {
	Err error
}

// HomeStatsMsg carries the reloaded home-screen stats. It is exported
// because the root model also reads it to refresh the header streak.
type HomeStatsMsg struct {
	Streak      int
	PlayedToday bool
	Board       []store.LeaderboardEntry
	Err         error
}
