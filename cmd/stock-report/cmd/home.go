package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Davisanity-TW/stock-report/internal/application/commands"
)

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Regenerate the site home page",
	Long: `Rewrite the home page with the latest report link of every section,
from whatever the published tree currently holds.

Run after sync, or use publish to do both.

Example:
  stock-report home`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		homeCmd := commands.NewHomeCommand(GetPublisher(), GetSections(), GetConfig().LinkPrefix)
		result, err := homeCmd.Execute(ctx)
		if err != nil {
			return err
		}

		for _, s := range GetSections() {
			latest := result.Latest[s.Key]
			if latest.None() {
				fmt.Printf("%s: no reports\n", s.Key)
				continue
			}
			fmt.Printf("%s: %s\n", s.Key, latest.QualifiedID())
		}
		for _, name := range result.Flagged {
			fmt.Printf("  flagged: %s\n", name)
		}
		fmt.Printf("wrote %s\n", result.Path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(homeCmd)
}
