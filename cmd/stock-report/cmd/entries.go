package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Davisanity-TW/stock-report/internal/adapters/sqlite"
	"github.com/Davisanity-TW/stock-report/internal/application/commands"
)

var entriesCmd = &cobra.Command{
	Use:   "entries [date]",
	Short: "Find a date's entries across every weekly report",
	Long: `Look one date up across all indexed weekly reports. The index is
refreshed first. The date defaults to today in Taipei.

Examples:
  stock-report entries
  stock-report entries 2026-02-03`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := ""
		if len(args) > 0 {
			date = args[0]
		}
		ctx := context.Background()

		idx := sqlite.NewIndex(GetSections())
		if err := idx.Open(GetConfig().SourceRoot); err != nil {
			return err
		}
		defer idx.Close()

		refreshCmd := commands.NewRefreshIndexCommand(idx, false)
		if _, err := refreshCmd.Execute(ctx); err != nil {
			return err
		}

		entriesCmd := commands.NewEntriesOnCommand(idx, date)
		entries, err := entriesCmd.Execute(ctx)
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Println("No entries found")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("%s: %s\n", e.ReportPath, e.Heading)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(entriesCmd)
}
