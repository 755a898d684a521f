package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Davisanity-TW/stock-report/internal/adapters/sqlite"
	"github.com/Davisanity-TW/stock-report/internal/application/commands"
)

var indexFull bool

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Refresh the local report index",
	Long: `Synchronize the SQLite report index with the source tree. Only files
whose size or mtime changed are rescanned; --full drops the index and
rebuilds it from scratch.

Examples:
  stock-report index
  stock-report index --full`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		idx := sqlite.NewIndex(GetSections())
		if err := idx.Open(GetConfig().SourceRoot); err != nil {
			return err
		}
		defer idx.Close()

		refreshCmd := commands.NewRefreshIndexCommand(idx, indexFull)
		stats, err := refreshCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("scanned %d files in %s\n", stats.FilesScanned, stats.Duration.Round(time.Millisecond))
		fmt.Printf("reports: %d added, %d updated, %d deleted\n", stats.ReportsAdded, stats.ReportsUpdated, stats.ReportsDeleted)
		fmt.Printf("entries: %d indexed\n", stats.EntriesAdded)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
	indexCmd.Flags().BoolVar(&indexFull, "full", false, "drop and rebuild the index")
}
