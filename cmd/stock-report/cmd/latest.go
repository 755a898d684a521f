package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Davisanity-TW/stock-report/internal/application/commands"
)

var latestCmd = &cobra.Command{
	Use:   "latest [section]",
	Short: "Show the most recent report per section",
	Long: `Resolve the most recent well-formed report of one section, or of
every configured section. Reads the source tree, not the site.

Examples:
  stock-report latest
  stock-report latest moltbook`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sectionKey := ""
		if len(args) > 0 {
			sectionKey = args[0]
		}
		ctx := context.Background()

		latestCmd := commands.NewLatestCommand(GetRepo(), GetSections(), sectionKey)
		results, err := latestCmd.Execute(ctx)
		if err != nil {
			return err
		}

		for _, r := range results {
			if r.Latest.None() {
				fmt.Printf("%s: no reports\n", r.Section.Key)
				continue
			}
			fmt.Printf("%s: %s\n", r.Section.Key, r.Latest.QualifiedID())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(latestCmd)
}
