package commands

import (
	"context"
	"fmt"

	"github.com/Davisanity-TW/stock-report/internal/application"
	"github.com/Davisanity-TW/stock-report/internal/domain"
	"github.com/Davisanity-TW/stock-report/internal/ports"
)

// LatestResult pairs a section with its most recent report
type LatestResult struct {
	Section domain.Section
	Latest  domain.Latest
}

// LatestCommand resolves the most recent well-formed report per section
type LatestCommand struct {
	repo       ports.ReportRepository
	sections   []domain.Section
	SectionKey string // empty means all sections
}

// NewLatestCommand creates a new LatestCommand
func NewLatestCommand(repo ports.ReportRepository, sections []domain.Section, sectionKey string) *LatestCommand {
	return &LatestCommand{
		repo:       repo,
		sections:   sections,
		SectionKey: sectionKey,
	}
}

// Validate checks if the latest lookup is valid
func (c *LatestCommand) Validate() error {
	if c.SectionKey == "" {
		return nil
	}
	_, err := application.ValidateSection(c.sections, c.SectionKey)
	return err
}

// Execute runs the latest command, preserving section order
func (c *LatestCommand) Execute(ctx context.Context) ([]LatestResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	targets := c.sections
	if c.SectionKey != "" {
		s, _ := domain.FindSection(c.sections, c.SectionKey)
		targets = []domain.Section{s}
	}

	results := make([]LatestResult, 0, len(targets))
	for _, s := range targets {
		latest, err := c.repo.Latest(s)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve latest for %s: %w", s.Key, err)
		}
		results = append(results, LatestResult{Section: s, Latest: latest})
	}
	return results, nil
}
