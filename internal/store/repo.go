package store

import (
	"context"
	"time"
)

// Preference keys. Each maps to a single JSON blob replaced whole on write.
const (
	KeyLeaderboard = "leaderboard"
	KeyDailyStats  = "dailyStats"
	KeyMuted       = "isMuted"
	KeySupporter   = "isSupporter"
)

// MaxLeaderboardEntries bounds the persisted leaderboard length.
const MaxLeaderboardEntries = 5

// LeaderboardEntry is one persisted leaderboard row.
type LeaderboardEntry struct {
	Score int       `json:"score"`
	Time  int       `json:"time"`
	Date  time.Time `json:"date"`
}

// DailyStats tracks the daily-challenge streak. LastPlayed is a calendar-day
// string ("2006-01-02"), empty when the challenge has never been played.
type DailyStats struct {
	Streak     int    `json:"streak"`
	LastPlayed string `json:"lastPlayed"`
}

// PrefsRepo is the key-value persistence gateway. Reads degrade to the
// documented default (empty board, zero streak, false) when the stored value
// is missing or unparseable; they never return a parse failure.
type PrefsRepo interface {
	Leaderboard(ctx context.Context) ([]LeaderboardEntry, error)
	SetLeaderboard(ctx context.Context, entries []LeaderboardEntry) error

	DailyStats(ctx context.Context) (DailyStats, error)
	SetDailyStats(ctx context.Context, stats DailyStats) error

	Muted(ctx context.Context) (bool, error)
	SetMuted(ctx context.Context, muted bool) error

	Supporter(ctx context.Context) (bool, error)
	SetSupporter(ctx context.Context, supporter bool) error

	// Reset deletes every stored preference.
	Reset(ctx context.Context) error
}

// Run is one completed quiz run.
type Run struct {
	RunID         string
	Mode          string
	Score         int
	Total         int
	TimeRemaining int
	Timestamp     time.Time
}

// RunRepo provides append access to the run history.
type RunRepo interface {
	// Append records a completed run.
	Append(ctx context.Context, run Run) error

	// Recent returns up to limit runs, newest first.
	Recent(ctx context.Context, limit int) ([]Run, error)

	// Reset deletes the entire run history.
	Reset(ctx context.Context) error
}
