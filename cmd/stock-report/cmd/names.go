package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Davisanity-TW/stock-report/internal/application/commands"
)

var namesCmd = &cobra.Command{
	Use:   "names [file...]",
	Short: "Annotate bare stock codes with company names",
	Long: `Append company names to bare stock codes in markdown prose, using the
stock_names map from the config. Files are rewritten in place; without
arguments the command filters stdin to stdout.

Examples:
  stock-report names reports/tw/2026-W05.md
  stock-report names < draft.md > annotated.md`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		names := GetConfig().StockNames

		if len(args) == 0 {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			annotateCmd := commands.NewAnnotateNamesCommand(names, string(data))
			result, err := annotateCmd.Execute(ctx)
			if err != nil {
				return err
			}
			fmt.Print(result.Content)
			return nil
		}

		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			annotateCmd := commands.NewAnnotateNamesCommand(names, string(data))
			result, err := annotateCmd.Execute(ctx)
			if err != nil {
				return err
			}
			if !result.Changed {
				continue
			}
			if err := os.WriteFile(path, []byte(result.Content), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			fmt.Println(path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(namesCmd)
}
