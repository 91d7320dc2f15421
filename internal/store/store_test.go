package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestPrefsDefaults(t *testing.T) {
	s := openTestStore(t)
	prefs := s.Prefs()
	ctx := context.Background()

	board, err := prefs.Leaderboard(ctx)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(board) != 0 {
		t.Errorf("default leaderboard has %d entries, want 0", len(board))
	}

	stats, err := prefs.DailyStats(ctx)
	if err != nil {
		t.Fatalf("DailyStats: %v", err)
	}
	if stats.Streak != 0 || stats.LastPlayed != "" {
		t.Errorf("default daily stats = %+v, want zero value", stats)
	}

	for name, get := range map[string]func(context.Context) (bool, error){
		"Muted":     prefs.Muted,
		"Supporter": prefs.Supporter,
	} {
		v, err := get(ctx)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if v {
			t.Errorf("default %s = true, want false", name)
		}
	}
}

func TestPrefsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	prefs := s.Prefs()
	ctx := context.Background()

	entries := []LeaderboardEntry{
		{Score: 5, Time: 40, Date: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)},
		{Score: 3, Time: 12, Date: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)},
	}
	if err := prefs.SetLeaderboard(ctx, entries); err != nil {
		t.Fatalf("SetLeaderboard: %v", err)
	}
	got, err := prefs.Leaderboard(ctx)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(got) != 2 || got[0].Score != 5 || got[1].Time != 12 {
		t.Errorf("leaderboard round-trip = %+v", got)
	}

	if err := prefs.SetDailyStats(ctx, DailyStats{Streak: 4, LastPlayed: "2026-03-02"}); err != nil {
		t.Fatalf("SetDailyStats: %v", err)
	}
	stats, err := prefs.DailyStats(ctx)
	if err != nil {
		t.Fatalf("DailyStats: %v", err)
	}
	if stats.Streak != 4 || stats.LastPlayed != "2026-03-02" {
		t.Errorf("daily stats round-trip = %+v", stats)
	}

	if err := prefs.SetMuted(ctx, true); err != nil {
		t.Fatalf("SetMuted: %v", err)
	}
	muted, _ := prefs.Muted(ctx)
	if !muted {
		t.Error("muted round-trip = false, want true")
	}

	// Overwrite replaces the whole blob.
	if err := prefs.SetLeaderboard(ctx, entries[:1]); err != nil {
		t.Fatalf("SetLeaderboard overwrite: %v", err)
	}
	got, _ = prefs.Leaderboard(ctx)
	if len(got) != 1 {
		t.Errorf("after overwrite got %d entries, want 1", len(got))
	}
}

func TestPrefsCorruptValueDegradesToDefault(t *testing.T) {
	s := openTestStore(t)
	prefs := s.Prefs()
	ctx := context.Background()

	// Write garbage directly under each key.
	for _, key := range []string{KeyLeaderboard, KeyDailyStats, KeyMuted, KeySupporter} {
		_, err := s.Client().Pref.Create().SetKey(key).SetValue("{not json").Save(ctx)
		if err != nil {
			t.Fatalf("seed corrupt pref %q: %v", key, err)
		}
	}

	board, err := prefs.Leaderboard(ctx)
	if err != nil || len(board) != 0 {
		t.Errorf("corrupt leaderboard: got (%v, %v), want empty, nil", board, err)
	}
	stats, err := prefs.DailyStats(ctx)
	if err != nil || stats != (DailyStats{}) {
		t.Errorf("corrupt daily stats: got (%+v, %v), want zero, nil", stats, err)
	}
	muted, err := prefs.Muted(ctx)
	if err != nil || muted {
		t.Errorf("corrupt muted: got (%v, %v), want false, nil", muted, err)
	}
}

func TestRunRepoAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	runs := s.Runs()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		err := runs.Append(ctx, Run{
			RunID:         "run-" + string(rune('a'+i)),
			Mode:          "normal",
			Score:         i,
			Total:         5,
			TimeRemaining: i * 10,
			Timestamp:     base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := runs.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Recent returned %d runs, want 2", len(got))
	}
	if got[0].RunID != "run-c" || got[1].RunID != "run-b" {
		t.Errorf("Recent order = [%s, %s], want newest first", got[0].RunID, got[1].RunID)
	}

	if err := runs.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	got, _ = runs.Recent(ctx, 0)
	if len(got) != 0 {
		t.Errorf("after reset got %d runs, want 0", len(got))
	}
}
