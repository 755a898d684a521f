package commands

import (
	"context"
	"fmt"

	"github.com/Davisanity-TW/stock-report/internal/application"
	"github.com/Davisanity-TW/stock-report/internal/domain"
	"github.com/Davisanity-TW/stock-report/internal/ports"
)

// ReadReportResult contains a report's location and content
type ReadReportResult struct {
	SectionKey string
	ID         string
	Path       string
	Content    string
}

// ReadReportCommand reads one report from the source tree. Nested
// section reports are addressed as month/day (e.g. 202602/02-01).
type ReadReportCommand struct {
	repo       ports.ReportRepository
	sections   []domain.Section
	SectionKey string
	ID         string
}

// NewReadReportCommand creates a new ReadReportCommand
func NewReadReportCommand(repo ports.ReportRepository, sections []domain.Section, sectionKey, id string) *ReadReportCommand {
	return &ReadReportCommand{
		repo:       repo,
		sections:   sections,
		SectionKey: sectionKey,
		ID:         id,
	}
}

// Validate checks if the read operation is valid
func (c *ReadReportCommand) Validate() error {
	if _, err := application.ValidateSection(c.sections, c.SectionKey); err != nil {
		return err
	}
	return application.ValidateRequired("reportID", c.ID)
}

// Execute runs the read report command
func (c *ReadReportCommand) Execute(ctx context.Context) (*ReadReportResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	s, _ := domain.FindSection(c.sections, c.SectionKey)

	path, err := c.repo.ReportPath(s, c.ID)
	if err != nil {
		return nil, err
	}
	content, err := c.repo.ReadReport(s, c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/%s: %w", c.SectionKey, c.ID, err)
	}

	return &ReadReportResult{
		SectionKey: c.SectionKey,
		ID:         c.ID,
		Path:       path,
		Content:    content,
	}, nil
}
