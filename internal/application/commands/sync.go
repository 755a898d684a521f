package commands

import (
	"context"
	"fmt"

	"github.com/Davisanity-TW/stock-report/internal/application"
	"github.com/Davisanity-TW/stock-report/internal/domain"
	"github.com/Davisanity-TW/stock-report/internal/ports"
)

// SyncCommand mirrors report sections into the site tree
type SyncCommand struct {
	publisher  ports.SitePublisher
	sections   []domain.Section
	SectionKey string // empty means all sections
}

// NewSyncCommand creates a new SyncCommand
func NewSyncCommand(publisher ports.SitePublisher, sections []domain.Section, sectionKey string) *SyncCommand {
	return &SyncCommand{
		publisher:  publisher,
		sections:   sections,
		SectionKey: sectionKey,
	}
}

// Validate checks if the sync operation is valid
func (c *SyncCommand) Validate() error {
	if c.SectionKey == "" {
		return nil
	}
	_, err := application.ValidateSection(c.sections, c.SectionKey)
	return err
}

// Execute mirrors each target section. Sections whose source directory
// does not exist come back marked Skipped, not as errors.
func (c *SyncCommand) Execute(ctx context.Context) ([]*domain.SyncResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	targets := c.sections
	if c.SectionKey != "" {
		s, _ := domain.FindSection(c.sections, c.SectionKey)
		targets = []domain.Section{s}
	}

	var results []*domain.SyncResult
	for _, s := range targets {
		result, err := c.publisher.SyncSection(s)
		if err != nil {
			return results, fmt.Errorf("failed to sync section %s: %w", s.Key, err)
		}
		results = append(results, result)
	}
	return results, nil
}
