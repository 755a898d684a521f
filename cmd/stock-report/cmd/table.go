package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Davisanity-TW/stock-report/internal/application/commands"
)

var tableDate string

var tableCmd = &cobra.Command{
	Use:   "table <section> <table>",
	Short: "Replace the price table in a day's section",
	Long: `Replace the markdown table inside a day's section with a fresh one.
The weekly report must already exist. Pass "-" as the table to read it
from stdin. The date defaults to today in Taipei.

Examples:
  stock-report table tw "| 代號 | 收盤 |..."
  quote-fetch | stock-report table tw - --date 2026-02-03`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := readBodyArg(args[1])
		if err != nil {
			return err
		}
		ctx := context.Background()

		tableCmd := commands.NewReplaceTableCommand(GetRepo(), GetSections(), args[0], tableDate, table)
		result, err := tableCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.Flags().StringVar(&tableDate, "date", "", "entry date as YYYY-MM-DD (default today in Taipei)")
}
