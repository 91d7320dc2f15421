package cmd

import (
	"context"
	"fmt"

	"github.com/marksaft/gramiz/internal/app"
	"github.com/marksaft/gramiz/internal/bank"
	"github.com/marksaft/gramiz/internal/effects"
	"github.com/marksaft/gramiz/internal/store"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, loads the embedded question bank, and hands
// everything to the TUI. Both the bare `gramiz` and `gramiz play` land here.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	b, err := bank.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("load question bank: %w", err)
	}

	muted, err := st.Prefs().Muted(context.Background())
	if err != nil {
		return fmt.Errorf("load sound preference: %w", err)
	}

	return app.Run(app.Options{
		Bank:  b,
		Prefs: st.Prefs(),
		Runs:  st.Runs(),
		Sound: effects.NewToggle(muted),
	})
}
