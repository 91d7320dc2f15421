// Package quiz implements the two state machines at the core of the game:
// the per-question Turn (countdown, selection, resolution) and the Session
// (screen flow, score and streak accumulation, checkpoints, daily challenge
// bookkeeping, leaderboard submission).
package quiz

// ScreenID is the closed set of session screens. Transitions are handled
// exhaustively; there is no free-form screen state.
type ScreenID int

const (
	ScreenStart ScreenID = iota
	ScreenQuiz
	ScreenCheckpoint
	ScreenResult
	ScreenZen
)

func (s ScreenID) String() string {
	switch s {
	case ScreenStart:
		return "start"
	case ScreenQuiz:
		return "quiz"
	case ScreenCheckpoint:
		return "checkpoint"
	case ScreenResult:
		return "result"
	case ScreenZen:
		return "zen"
	}
	return "unknown"
}

// Mode selects the question draw for a run.
type Mode string

const (
	ModeNormal Mode = "normal"
	ModeDaily  Mode = "daily"
)

// CheckpointInterval is the number of answered questions between
// checkpoint screens.
const CheckpointInterval = 10

// Ranks are the checkpoint rank names, indexed by capped level.
var Ranks = []string{
	"Grammar Novice",
	"Sentence Scout",
	"Verb Voyager",
	"Syntax Sage",
	"Grammar Guru",
	"Punctuation Pro",
	"Linguistic Legend",
}

// RankForLevel returns the rank label for a checkpoint level (1-based).
func RankForLevel(level int) string {
	idx := level - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(Ranks) {
		idx = len(Ranks) - 1
	}
	return Ranks[idx]
}
