package commands

import (
	"context"

	"github.com/Davisanity-TW/stock-report/internal/application"
	"github.com/Davisanity-TW/stock-report/internal/domain"
)

// AnnotateResult contains the annotated content
type AnnotateResult struct {
	Content string
	Changed bool
}

// AnnotateNamesCommand appends company names to bare stock codes in
// markdown prose. Tables and already-annotated codes are left alone.
type AnnotateNamesCommand struct {
	names   map[string]string
	Content string
}

// NewAnnotateNamesCommand creates a new AnnotateNamesCommand
func NewAnnotateNamesCommand(names map[string]string, content string) *AnnotateNamesCommand {
	return &AnnotateNamesCommand{
		names:   names,
		Content: content,
	}
}

// Validate checks if the annotate operation is valid
func (c *AnnotateNamesCommand) Validate() error {
	if len(c.names) == 0 {
		return &application.ValidationError{
			Field:   "names",
			Message: "stock name map is empty",
		}
	}
	return nil
}

// Execute runs the annotate command
func (c *AnnotateNamesCommand) Execute(ctx context.Context) (*AnnotateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	annotated := domain.AnnotateStockNames(c.Content, c.names)
	return &AnnotateResult{
		Content: annotated,
		Changed: annotated != c.Content,
	}, nil
}
