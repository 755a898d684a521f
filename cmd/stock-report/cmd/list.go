package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Davisanity-TW/stock-report/internal/application/commands"
)

var listCmd = &cobra.Command{
	Use:   "list [section]",
	Short: "List sections or the reports of one section",
	Long: `Without arguments, list the configured sections. With a section key,
list that section's reports oldest first, month-qualified for nested
sections.

Examples:
  stock-report list
  stock-report list tw
  stock-report list moltbook`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if len(args) == 0 {
			listCmd := commands.NewListSectionsCommand(GetSections())
			sections, err := listCmd.Execute(ctx)
			if err != nil {
				return err
			}
			for _, s := range sections {
				fmt.Printf("%s %s (%s)\n", s.Key, s.Title, s.Layout)
			}
			return nil
		}

		listCmd := commands.NewListReportsCommand(GetRepo(), GetSections(), args[0])
		reports, err := listCmd.Execute(ctx)
		if err != nil {
			return err
		}
		for _, r := range reports {
			if !r.Valid() {
				fmt.Printf("%s (flagged)\n", r.QualifiedID())
				continue
			}
			fmt.Println(r.QualifiedID())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
