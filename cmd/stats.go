package cmd

import (
	"context"
	"fmt"

	"github.com/marksaft/gramiz/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show streak, high scores, and recent runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()

		stats, err := st.Prefs().DailyStats(ctx)
		if err != nil {
			return fmt.Errorf("load daily stats: %w", err)
		}
		if stats.LastPlayed == "" {
			fmt.Println("Daily streak:  never played")
		} else {
			fmt.Printf("Daily streak:  %d (last played %s)\n", stats.Streak, stats.LastPlayed)
		}

		board, err := st.Prefs().Leaderboard(ctx)
		if err != nil {
			return fmt.Errorf("load leaderboard: %w", err)
		}
		fmt.Println("\nHigh scores:")
		if len(board) == 0 {
			fmt.Println("  (none yet)")
		}
		for i, entry := range board {
			fmt.Printf("  %d.  %2d pts  %3ds banked  %s\n",
				i+1, entry.Score, entry.Time, entry.Date.Format("2006-01-02"))
		}

		limit, _ := cmd.Flags().GetInt("limit")
		runs, err := st.Runs().Recent(ctx, limit)
		if err != nil {
			return fmt.Errorf("load run history: %w", err)
		}
		fmt.Println("\nRecent runs:")
		if len(runs) == 0 {
			fmt.Println("  (none yet)")
		}
		for _, run := range runs {
			fmt.Printf("  %s  %-6s  %d/%d  %3ds banked\n",
				run.Timestamp.Format("2006-01-02 15:04"), run.Mode, run.Score, run.Total, run.TimeRemaining)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("limit", 10, "How many recent runs to show")
}
