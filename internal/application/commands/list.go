package commands

import (
	"context"

	"github.com/Davisanity-TW/stock-report/internal/application"
	"github.com/Davisanity-TW/stock-report/internal/domain"
	"github.com/Davisanity-TW/stock-report/internal/ports"
)

// ListSectionsCommand lists the configured report sections
type ListSectionsCommand struct {
	sections []domain.Section
}

// NewListSectionsCommand creates a new ListSectionsCommand
func NewListSectionsCommand(sections []domain.Section) *ListSectionsCommand {
	return &ListSectionsCommand{sections: sections}
}

// Execute runs the list sections command
func (c *ListSectionsCommand) Execute(ctx context.Context) ([]domain.Section, error) {
	return c.sections, nil
}

// ListReportsCommand lists the reports of one section, oldest first
type ListReportsCommand struct {
	repo       ports.ReportRepository
	sections   []domain.Section
	SectionKey string
}

// NewListReportsCommand creates a new ListReportsCommand
func NewListReportsCommand(repo ports.ReportRepository, sections []domain.Section, sectionKey string) *ListReportsCommand {
	return &ListReportsCommand{
		repo:       repo,
		sections:   sections,
		SectionKey: sectionKey,
	}
}

// Validate checks if the list operation is valid
func (c *ListReportsCommand) Validate() error {
	_, err := application.ValidateSection(c.sections, c.SectionKey)
	return err
}

// Execute runs the list reports command
func (c *ListReportsCommand) Execute(ctx context.Context) ([]domain.Report, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	s, _ := domain.FindSection(c.sections, c.SectionKey)
	return c.repo.ListReports(s)
}
