package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Davisanity-TW/stock-report/internal/application/commands"
)

var upsertDate string

var upsertCmd = &cobra.Command{
	Use:   "upsert <section> <body>",
	Short: "Write a day's section into its weekly report",
	Long: `Write a day's section into the weekly report covering the given date.
An existing section for that date is replaced, so reruns stay idempotent.
Pass "-" as the body to read it from stdin. The date defaults to today
in Taipei.

Examples:
  stock-report upsert us "## 美股焦點..."
  cat section.md | stock-report upsert us - --date 2026-02-03`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := readBodyArg(args[1])
		if err != nil {
			return err
		}
		ctx := context.Background()

		upsertCmd := commands.NewUpsertSectionCommand(GetRepo(), GetSections(), args[0], upsertDate, body)
		result, err := upsertCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(upsertCmd)
	upsertCmd.Flags().StringVar(&upsertDate, "date", "", "entry date as YYYY-MM-DD (default today in Taipei)")
}
