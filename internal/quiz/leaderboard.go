package quiz

import (
	"sort"

	"github.com/marksaft/gramiz/internal/store"
)

// MergeLeaderboard appends entry to board, sorts by score descending with
// time-remaining descending as the tie-break (a faster perfect run banks
// more leftover seconds), and truncates to the persisted maximum.
func MergeLeaderboard(board []store.LeaderboardEntry, entry store.LeaderboardEntry) []store.LeaderboardEntry {
	merged := make([]store.LeaderboardEntry, 0, len(board)+1)
	merged = append(merged, board...)
	merged = append(merged, entry)

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Score != merged[j].Score {
			return merged[i].Score > merged[j].Score
		}
		return merged[i].Time > merged[j].Time
	})

	if len(merged) > store.MaxLeaderboardEntries {
		merged = merged[:store.MaxLeaderboardEntries]
	}
	return merged
}
