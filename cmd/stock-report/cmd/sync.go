package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Davisanity-TW/stock-report/internal/application/commands"
	"github.com/Davisanity-TW/stock-report/internal/domain"
)

var syncCmd = &cobra.Command{
	Use:   "sync [section]",
	Short: "Mirror report sources into the site tree",
	Long: `Mirror the markdown reports of one section (or all sections) into
the published site tree, regenerating the index placeholders.

The site side of each section is rebuilt atomically: markdown that no
longer exists in the source disappears, everything else is preserved.

Examples:
  stock-report sync
  stock-report sync tw`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sectionKey := ""
		if len(args) > 0 {
			sectionKey = args[0]
		}
		ctx := context.Background()

		syncCmd := commands.NewSyncCommand(GetPublisher(), GetSections(), sectionKey)
		results, err := syncCmd.Execute(ctx)
		if err != nil {
			return err
		}

		for _, r := range results {
			printSyncResult(r)
		}
		return nil
	},
}

func printSyncResult(r *domain.SyncResult) {
	if r.Skipped {
		fmt.Printf("%s: skipped (no source directory)\n", r.Section)
		return
	}
	fmt.Printf("%s: %d copied, %d preserved\n", r.Section, r.Copied, r.Preserved)
	for _, name := range r.Flagged {
		fmt.Printf("  flagged: %s\n", name)
	}
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
