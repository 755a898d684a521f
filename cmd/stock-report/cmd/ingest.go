package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Davisanity-TW/stock-report/internal/application/commands"
)

var ingestDate string

var ingestCmd = &cobra.Command{
	Use:   "ingest <section> <body>",
	Short: "Append a dated entry to a weekly report",
	Long: `Append a dated entry to the weekly report covering the given date,
creating the week file when it does not exist yet. Pass "-" as the body
to read it from stdin. The date defaults to today in Taipei.

Examples:
  stock-report ingest tw "## 大盤觀察..."
  cat entry.md | stock-report ingest tw - --date 2026-02-03`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := readBodyArg(args[1])
		if err != nil {
			return err
		}
		ctx := context.Background()

		ingestCmd := commands.NewIngestEntryCommand(GetRepo(), GetSections(), args[0], ingestDate, body)
		result, err := ingestCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

// readBodyArg resolves a body argument, reading stdin when it is "-"
func readBodyArg(arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func init() {
	rootCmd.AddCommand(ingestCmd)
	ingestCmd.Flags().StringVar(&ingestDate, "date", "", "entry date as YYYY-MM-DD (default today in Taipei)")
}
