package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Davisanity-TW/stock-report/internal/application/commands"
)

var readCmd = &cobra.Command{
	Use:   "read <section> <id>",
	Short: "Print a report's content",
	Long: `Read one report from the source tree and print it to stdout. Nested
section reports are addressed as month/day.

Examples:
  stock-report read tw 2026-W05
  stock-report read moltbook 202602/02-01`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		readCmd := commands.NewReadReportCommand(GetRepo(), GetSections(), args[0], args[1])
		result, err := readCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Print(result.Content)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(readCmd)
}
