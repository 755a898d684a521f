package commands

import (
	"context"
	"fmt"

	"github.com/Davisanity-TW/stock-report/internal/application"
	"github.com/Davisanity-TW/stock-report/internal/domain"
	"github.com/Davisanity-TW/stock-report/internal/ports"
)

// IngestResult contains the result of appending an entry
type IngestResult struct {
	Path    string
	WeekID  string
	Date    string
	Message string
}

// IngestEntryCommand appends a dated entry to a section's weekly file,
// creating the file with its title heading when the week is new
type IngestEntryCommand struct {
	repo       ports.ReportRepository
	sections   []domain.Section
	SectionKey string
	Date       string // YYYY-MM-DD, empty means today in Taipei
	Body       string
}

// NewIngestEntryCommand creates a new IngestEntryCommand
func NewIngestEntryCommand(repo ports.ReportRepository, sections []domain.Section, sectionKey, date, body string) *IngestEntryCommand {
	return &IngestEntryCommand{
		repo:       repo,
		sections:   sections,
		SectionKey: sectionKey,
		Date:       date,
		Body:       body,
	}
}

// Validate checks if the ingest operation is valid
func (c *IngestEntryCommand) Validate() error {
	if _, err := application.ValidateWeeklySection(c.sections, c.SectionKey); err != nil {
		return err
	}
	if err := application.ValidateRequired("body", c.Body); err != nil {
		return err
	}
	_, err := application.ValidateDate("date", c.Date)
	return err
}

// Execute runs the ingest command
func (c *IngestEntryCommand) Execute(ctx context.Context) (*IngestResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	s, _ := domain.FindSection(c.sections, c.SectionKey)
	day, _ := application.ValidateDate("date", c.Date)

	path, err := c.repo.AppendEntry(s, day, c.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to append entry: %w", err)
	}

	weekID := domain.ISOWeekID(day)
	return &IngestResult{
		Path:    path,
		WeekID:  weekID,
		Date:    domain.DayKey(day),
		Message: fmt.Sprintf("Appended %s entry to %s", domain.DayKey(day), path),
	}, nil
}
