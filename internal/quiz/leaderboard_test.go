package quiz

import (
	"testing"
	"time"

	"github.com/marksaft/gramiz/internal/store"
)

func entry(score, secs int) store.LeaderboardEntry {
	return store.LeaderboardEntry{Score: score, Time: secs, Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)}
}

func TestMergeLeaderboardSortsByScoreThenTime(t *testing.T) {
	board := []store.LeaderboardEntry{entry(10, 40), entry(8, 20)}

	got := MergeLeaderboard(board, entry(10, 55))

	want := []store.LeaderboardEntry{entry(10, 55), entry(10, 40), entry(8, 20)}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Score != want[i].Score || got[i].Time != want[i].Time {
			t.Errorf("merged[%d] = {score:%d time:%d}, want {score:%d time:%d}",
				i, got[i].Score, got[i].Time, want[i].Score, want[i].Time)
		}
	}
}

func TestMergeLeaderboardTruncates(t *testing.T) {
	var board []store.LeaderboardEntry
	for s := 1; s <= store.MaxLeaderboardEntries; s++ {
		board = MergeLeaderboard(board, entry(s, 0))
	}

	got := MergeLeaderboard(board, entry(3, 10))

	if len(got) != store.MaxLeaderboardEntries {
		t.Fatalf("len = %d, want %d", len(got), store.MaxLeaderboardEntries)
	}
	// The lowest score fell off; the new entry outranks its same-score peer
	// on time remaining.
	if got[len(got)-1].Score != 2 {
		t.Errorf("last entry score = %d, want 2", got[len(got)-1].Score)
	}
	if got[2].Score != 3 || got[2].Time != 10 {
		t.Errorf("entry[2] = {score:%d time:%d}, want the new {score:3 time:10}", got[2].Score, got[2].Time)
	}
}

func TestMergeLeaderboardKeepsEarlierEntryOnFullTie(t *testing.T) {
	old := store.LeaderboardEntry{Score: 5, Time: 30, Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)}
	fresh := store.LeaderboardEntry{Score: 5, Time: 30, Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)}

	got := MergeLeaderboard([]store.LeaderboardEntry{old}, fresh)

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if !got[0].Date.Equal(old.Date) {
		t.Error("full tie reordered the existing entry below the new one")
	}
}
