package commands

import (
	"context"

	"github.com/Davisanity-TW/stock-report/internal/domain"
	"github.com/Davisanity-TW/stock-report/internal/ports"
)

// PublishResult contains the combined result of a full publish run
type PublishResult struct {
	Synced    []*domain.SyncResult
	Generated *GenerateResult
}

// PublishCommand runs the whole pipeline: mirror every section into the
// site tree, then regenerate the home page and the sidebar from it
type PublishCommand struct {
	sync     *SyncCommand
	generate *GenerateCommand
}

// NewPublishCommand creates a new PublishCommand
func NewPublishCommand(publisher ports.SitePublisher, sections []domain.Section, prefix string) *PublishCommand {
	return &PublishCommand{
		sync:     NewSyncCommand(publisher, sections, ""),
		generate: NewGenerateCommand(publisher, sections, prefix),
	}
}

// Execute runs the publish command
func (c *PublishCommand) Execute(ctx context.Context) (*PublishResult, error) {
	synced, err := c.sync.Execute(ctx)
	if err != nil {
		return nil, err
	}

	generated, err := c.generate.Execute(ctx)
	if err != nil {
		return nil, err
	}

	return &PublishResult{
		Synced:    synced,
		Generated: generated,
	}, nil
}
