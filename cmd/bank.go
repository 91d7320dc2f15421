package cmd

import (
	"fmt"

	"github.com/marksaft/gramiz/internal/bank"
	"github.com/spf13/cobra"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Question bank maintenance",
}

var bankCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate every record in a bank file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		questions, err := bank.LoadFile(args[0])
		if err != nil {
			return err
		}
		problems := bank.Check(questions)
		for _, p := range problems {
			fmt.Println(p)
		}
		if len(problems) > 0 {
			return fmt.Errorf("%d of %d records invalid", len(problems), len(questions))
		}
		fmt.Printf("All %d records valid.\n", len(questions))
		return nil
	},
}

var bankCleanCmd = &cobra.Command{
	Use:   "clean <file>",
	Short: "Deduplicate a bank file and tag legendary questions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		questions, err := bank.LoadFile(args[0])
		if err != nil {
			return err
		}

		cleaned, res := bank.Clean(questions)
		fmt.Printf("%d records: %d duplicates removed, %d tagged legendary, %d invalid dropped\n",
			res.Total, res.Duplicates, res.Tagged, res.Invalid)

		dry, _ := cmd.Flags().GetBool("dry-run")
		if dry {
			fmt.Println("Dry run; file unchanged.")
			return nil
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = args[0]
		}
		if err := bank.WriteFile(out, cleaned); err != nil {
			return err
		}
		fmt.Printf("Wrote %d records to %s\n", len(cleaned), out)
		return nil
	},
}

func init() {
	bankCleanCmd.Flags().Bool("dry-run", false, "Report what would change without writing")
	bankCleanCmd.Flags().String("out", "", "Write the cleaned bank to a different file")

	bankCmd.AddCommand(bankCheckCmd)
	bankCmd.AddCommand(bankCleanCmd)
}
