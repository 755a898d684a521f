package commands

import (
	"context"
	"fmt"

	"github.com/Davisanity-TW/stock-report/internal/application"
	"github.com/Davisanity-TW/stock-report/internal/domain"
	"github.com/Davisanity-TW/stock-report/internal/ports"
)

// RefreshIndexCommand synchronizes the local report index with the
// source tree. Incremental by default; a full rebuild runs when forced
// or when the index metadata no longer matches.
type RefreshIndexCommand struct {
	index ports.ReportIndex
	Full  bool
}

// NewRefreshIndexCommand creates a new RefreshIndexCommand
func NewRefreshIndexCommand(index ports.ReportIndex, full bool) *RefreshIndexCommand {
	return &RefreshIndexCommand{
		index: index,
		Full:  full,
	}
}

// Execute runs the index refresh
func (c *RefreshIndexCommand) Execute(ctx context.Context) (*domain.IndexStats, error) {
	if c.Full || c.index.NeedsFullRebuild() {
		stats, err := c.index.SyncFull()
		if err != nil {
			return stats, fmt.Errorf("failed to rebuild index: %w", err)
		}
		return stats, nil
	}

	stats, err := c.index.SyncIncremental()
	if err != nil {
		return stats, fmt.Errorf("failed to sync index: %w", err)
	}
	return stats, nil
}

// EntriesOnCommand looks one date up across every indexed weekly file
type EntriesOnCommand struct {
	index ports.ReportIndex
	Date  string // YYYY-MM-DD, empty means today in Taipei
}

// NewEntriesOnCommand creates a new EntriesOnCommand
func NewEntriesOnCommand(index ports.ReportIndex, date string) *EntriesOnCommand {
	return &EntriesOnCommand{
		index: index,
		Date:  date,
	}
}

// Validate checks if the lookup date is valid
func (c *EntriesOnCommand) Validate() error {
	_, err := application.ValidateDate("date", c.Date)
	return err
}

// Execute runs the entries lookup
func (c *EntriesOnCommand) Execute(ctx context.Context) ([]domain.DailyEntry, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	day, _ := application.ValidateDate("date", c.Date)
	return c.index.EntriesOn(domain.DayKey(day))
}
