package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Davisanity-TW/stock-report/internal/application"
	"github.com/Davisanity-TW/stock-report/internal/application/commands"
)

var (
	searchSection string
	searchLimit   int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the source reports",
	Long: `Search report names and contents across every configured section,
ranked by relevance.

Examples:
  stock-report search 台積電
  stock-report search 2026-W05 --section tw
  stock-report search 財報 --limit 5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if searchSection != "" {
			if _, err := application.ValidateSection(GetSections(), searchSection); err != nil {
				return err
			}
		}

		search := commands.NewSearchCommand(GetRepo(), args[0])
		results, err := search.Execute(ctx)
		if err != nil {
			return err
		}

		printed := 0
		for _, r := range results {
			if searchSection != "" && r.Section != searchSection {
				continue
			}
			if searchLimit > 0 && printed == searchLimit {
				break
			}
			if r.NameMatch {
				fmt.Printf("[%s] %s\n", r.Section, r.QualifiedID())
			} else {
				fmt.Printf("[%s] %s: %s\n", r.Section, r.QualifiedID(), r.MatchedText)
			}
			printed++
		}
		if printed == 0 {
			fmt.Println("No results found")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVar(&searchSection, "section", "", "restrict results to one section key")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "cap the number of results printed (0 prints all)")
}
