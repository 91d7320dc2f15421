package quiz

import (
	"testing"
	"time"

	"github.com/marksaft/gramiz/internal/store"
)

func TestNextDailyStats(t *testing.T) {
	now := time.Date(2025, 3, 10, 20, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		stats store.DailyStats
		want  store.DailyStats
	}{
		{
			name:  "first ever run starts the streak",
			stats: store.DailyStats{},
			want:  store.DailyStats{Streak: 1, LastPlayed: "2025-03-10"},
		},
		{
			name:  "consecutive day extends the streak",
			stats: store.DailyStats{Streak: 4, LastPlayed: "2025-03-09"},
			want:  store.DailyStats{Streak: 5, LastPlayed: "2025-03-10"},
		},
		{
			name:  "missed day restarts the streak",
			stats: store.DailyStats{Streak: 9, LastPlayed: "2025-03-07"},
			want:  store.DailyStats{Streak: 1, LastPlayed: "2025-03-10"},
		},
		{
			name:  "same-day repeat leaves the streak alone",
			stats: store.DailyStats{Streak: 3, LastPlayed: "2025-03-10"},
			want:  store.DailyStats{Streak: 3, LastPlayed: "2025-03-10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextDailyStats(tt.stats, now); got != tt.want {
				t.Errorf("NextDailyStats(%+v) = %+v, want %+v", tt.stats, got, tt.want)
			}
		})
	}
}

func TestPlayedToday(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	if PlayedToday(store.DailyStats{LastPlayed: "2025-03-09"}, now) {
		t.Error("PlayedToday = true for yesterday's run")
	}
	if !PlayedToday(store.DailyStats{Streak: 1, LastPlayed: "2025-03-10"}, now) {
		t.Error("PlayedToday = false for a same-day run")
	}
	if PlayedToday(store.DailyStats{}, now) {
		t.Error("PlayedToday = true for a player with no history")
	}
}
