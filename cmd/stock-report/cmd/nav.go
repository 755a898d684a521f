package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Davisanity-TW/stock-report/internal/application/commands"
)

var navCmd = &cobra.Command{
	Use:   "nav",
	Short: "Regenerate the sidebar navigation",
	Long: `Rewrite the sidebar config from the published tree: one group per
section, newest reports first, capped at the section's nav limit.

Run after sync, or use publish to do both.

Example:
  stock-report nav`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		navCmd := commands.NewSidebarCommand(GetPublisher(), GetSections(), GetConfig().LinkPrefix)
		result, err := navCmd.Execute(ctx)
		if err != nil {
			return err
		}

		for _, name := range result.Flagged {
			fmt.Printf("  flagged: %s\n", name)
		}
		fmt.Printf("wrote %s\n", result.Path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(navCmd)
}
