package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/Davisanity-TW/stock-report/internal/adapters/tui/styles"
)

// Shared text rendering for the report views. Each view assembles its
// own strings.Builder and wraps the result in styles.App; these helpers
// keep titles, messages and key hints looking the same everywhere.

// RenderTitle renders a view title, e.g. "tw / 2026-W05"
func RenderTitle(title string) string {
	return styles.Title.Render(title)
}

// RenderSubtitle renders a secondary heading under a title
func RenderSubtitle(subtitle string) string {
	return styles.Subtitle.Render(subtitle)
}

// RenderMuted renders de-emphasized text: placeholders, counts, footers
func RenderMuted(text string) string {
	return styles.MutedText.Render(text)
}

// RenderLabelValue renders a "Label: value" detail line
func RenderLabelValue(label, value string) string {
	return fmt.Sprintf("%s %s", styles.InputLabel.Render(label+":"), value)
}

// RenderMessage renders a transient status message. Errors and
// successes only differ in color so views treat them uniformly.
func RenderMessage(message string, isError bool) string {
	if message == "" {
		return ""
	}
	if isError {
		return styles.ErrorMsg.Render(message)
	}
	return styles.Success.Render(message)
}

// RenderHelpLine renders key bindings as a single footer line
func RenderHelpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, renderKey(b))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

func renderKey(b key.Binding) string {
	help := b.Help()
	return styles.HelpKey.Render(help.Key) + " " + styles.HelpDesc.Render(help.Desc)
}
