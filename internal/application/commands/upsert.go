package commands

import (
	"context"
	"fmt"

	"github.com/Davisanity-TW/stock-report/internal/application"
	"github.com/Davisanity-TW/stock-report/internal/domain"
	"github.com/Davisanity-TW/stock-report/internal/ports"
)

// UpsertResult contains the result of an upsert
type UpsertResult struct {
	Path    string
	WeekID  string
	Date    string
	Message string
}

// UpsertSectionCommand writes a day's section into its weekly file:
// the body replaces the existing section for that date, or lands at the
// bottom of the file when the date is new. Reruns on the same day stay
// idempotent instead of stacking duplicate headers.
type UpsertSectionCommand struct {
	repo       ports.ReportRepository
	sections   []domain.Section
	SectionKey string
	Date       string // YYYY-MM-DD, empty means today in Taipei
	Body       string
}

// NewUpsertSectionCommand creates a new UpsertSectionCommand
func NewUpsertSectionCommand(repo ports.ReportRepository, sections []domain.Section, sectionKey, date, body string) *UpsertSectionCommand {
	return &UpsertSectionCommand{
		repo:       repo,
		sections:   sections,
		SectionKey: sectionKey,
		Date:       date,
		Body:       body,
	}
}

// Validate checks if the upsert operation is valid
func (c *UpsertSectionCommand) Validate() error {
	if _, err := application.ValidateWeeklySection(c.sections, c.SectionKey); err != nil {
		return err
	}
	if err := application.ValidateRequired("body", c.Body); err != nil {
		return err
	}
	_, err := application.ValidateDate("date", c.Date)
	return err
}

// Execute runs the upsert command
func (c *UpsertSectionCommand) Execute(ctx context.Context) (*UpsertResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	s, _ := domain.FindSection(c.sections, c.SectionKey)
	day, _ := application.ValidateDate("date", c.Date)

	block := domain.DailyBlock(day, c.Body)
	path, err := c.repo.UpsertDailySection(s, day, block)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert section: %w", err)
	}

	return &UpsertResult{
		Path:    path,
		WeekID:  domain.ISOWeekID(day),
		Date:    domain.DayKey(day),
		Message: fmt.Sprintf("Updated %s section in %s", domain.DayKey(day), path),
	}, nil
}
