package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Davisanity-TW/stock-report/internal/application/commands"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Sync every section and regenerate navigation",
	Long: `Run the whole publishing pipeline: mirror every section into the
site tree, then rewrite the home page and the sidebar from it.

This is what the report pipeline runs after dropping new files.

Example:
  stock-report publish`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		publishCmd := commands.NewPublishCommand(GetPublisher(), GetSections(), GetConfig().LinkPrefix)
		result, err := publishCmd.Execute(ctx)
		if err != nil {
			return err
		}

		for _, r := range result.Synced {
			printSyncResult(r)
		}
		for _, name := range result.Generated.Flagged {
			fmt.Printf("  flagged: %s\n", name)
		}
		fmt.Printf("wrote %s\n", result.Generated.HomePath)
		fmt.Printf("wrote %s\n", result.Generated.SidebarPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(publishCmd)
}
