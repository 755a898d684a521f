package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/Davisanity-TW/stock-report/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(RenderTitle("Stock Report Help"))
	b.WriteString("\n\n")
	b.WriteString(RenderSubtitle("Weekly Report Browser"))
	b.WriteString("\n\n")

	writeHelpGroup(&b, "Navigation", [][2]string{
		{"j / k / ↑ / ↓", "Move up/down"},
		{"h / ←", "Collapse / go to parent"},
		{"l / → / Enter", "Expand / preview report"},
		{"Ctrl+F / Ctrl+B", "Next / previous page"},
	})
	writeHelpGroup(&b, "Actions", [][2]string{
		{"e", "Open report in $EDITOR"},
		{"c", "Copy published link"},
		{"o", "Open published page in browser"},
		{"r", "Reload listings from disk"},
		{"/", "Search names and content"},
	})
	writeHelpGroup(&b, "General", [][2]string{
		{"?", "Toggle help"},
		{"q / Ctrl+C", "Quit"},
	})

	b.WriteString(styles.InputLabel.Render("Report Names"))
	b.WriteString("\n")
	b.WriteString(RenderMuted("  Weekly  : 2026-W05 (ISO week, flat sections)"))
	b.WriteString("\n")
	b.WriteString(RenderMuted("  Daily   : 02-01 inside month directory 202602"))
	b.WriteString("\n")
	b.WriteString(RenderMuted("  index   : reserved for generated pages"))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

// writeHelpGroup writes a labelled block of key/description rows
func writeHelpGroup(b *strings.Builder, label string, rows [][2]string) {
	b.WriteString(styles.InputLabel.Render(label))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString("  ")
		b.WriteString(styles.HelpKey.Render(padRight(row[0], 20)))
		b.WriteString(styles.HelpDesc.Render(row[1]))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

// padRight pads to a display width, not a byte count, so arrow keys
// and other wide runes stay column aligned
func padRight(s string, width int) string {
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
