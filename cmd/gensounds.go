package cmd

import (
	"fmt"

	"github.com/marksaft/gramiz/internal/audio"
	"github.com/spf13/cobra"
)

var gensoundsCmd = &cobra.Command{
	Use:   "gensounds <dir>",
	Short: "Synthesize the sound cue WAV files",
	Long:  "Renders click, correct, incorrect, and fanfare as 16-bit mono WAV files into the given directory.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := audio.WriteAssets(args[0]); err != nil {
			return err
		}
		fmt.Printf("Wrote %d sound files to %s\n", len(audio.Assets), args[0])
		return nil
	},
}
