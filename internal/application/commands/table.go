package commands

import (
	"context"
	"fmt"

	"github.com/Davisanity-TW/stock-report/internal/application"
	"github.com/Davisanity-TW/stock-report/internal/domain"
	"github.com/Davisanity-TW/stock-report/internal/ports"
)

// ReplaceTableResult contains the result of a table refresh
type ReplaceTableResult struct {
	Path    string
	Date    string
	Message string
}

// ReplaceTableCommand swaps the markdown table inside a day's section
// with a fresh one. The week file must already exist; a table refresh
// never creates reports.
type ReplaceTableCommand struct {
	repo       ports.ReportRepository
	sections   []domain.Section
	SectionKey string
	Date       string // YYYY-MM-DD, empty means today in Taipei
	Table      string
}

// NewReplaceTableCommand creates a new ReplaceTableCommand
func NewReplaceTableCommand(repo ports.ReportRepository, sections []domain.Section, sectionKey, date, table string) *ReplaceTableCommand {
	return &ReplaceTableCommand{
		repo:       repo,
		sections:   sections,
		SectionKey: sectionKey,
		Date:       date,
		Table:      table,
	}
}

// Validate checks if the table replacement is valid
func (c *ReplaceTableCommand) Validate() error {
	if _, err := application.ValidateWeeklySection(c.sections, c.SectionKey); err != nil {
		return err
	}
	if err := application.ValidateRequired("table", c.Table); err != nil {
		return err
	}
	_, err := application.ValidateDate("date", c.Date)
	return err
}

// Execute runs the replace table command
func (c *ReplaceTableCommand) Execute(ctx context.Context) (*ReplaceTableResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	s, _ := domain.FindSection(c.sections, c.SectionKey)
	day, _ := application.ValidateDate("date", c.Date)

	path, err := c.repo.ReplaceDailyTable(s, day, c.Table)
	if err != nil {
		return nil, fmt.Errorf("failed to replace table: %w", err)
	}

	return &ReplaceTableResult{
		Path:    path,
		Date:    domain.DayKey(day),
		Message: fmt.Sprintf("Replaced %s table in %s", domain.DayKey(day), path),
	}, nil
}
