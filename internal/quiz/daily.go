package quiz

import (
	"time"

	"github.com/marksaft/gramiz/internal/store"
)

// Clock abstracts wall-clock reads so the daily rules are testable.
type Clock interface {
	Now() time.Time
}

// systemClock is the production Clock.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

// DayString collapses a time to its calendar day.
func DayString(t time.Time) string {
	return t.Format("2006-01-02")
}

// PlayedToday reports whether the daily challenge was already completed on
// the calendar day of now.
func PlayedToday(stats store.DailyStats, now time.Time) bool {
	return stats.LastPlayed == DayString(now)
}

// NextDailyStats applies the daily streak rule at the end of a daily run:
// a run the day after the last one extends the streak, any longer gap (or a
// first run) restarts it at 1, and a same-day repeat (unreachable past the
// start guard) leaves it alone. LastPlayed always becomes today.
func NextDailyStats(stats store.DailyStats, now time.Time) store.DailyStats {
	today := DayString(now)
	yesterday := DayString(now.AddDate(0, 0, -1))

	switch stats.LastPlayed {
	case yesterday:
		stats.Streak++
	case today:
		// Unchanged.
	default:
		stats.Streak = 1
	}
	stats.LastPlayed = today
	return stats
}
