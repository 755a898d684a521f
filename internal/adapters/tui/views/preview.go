package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Davisanity-TW/stock-report/internal/adapters/tui/styles"
	"github.com/Davisanity-TW/stock-report/internal/domain"
	"github.com/Davisanity-TW/stock-report/internal/ports"
)

// PreviewKeyMap defines key bindings for the preview view
type PreviewKeyMap struct {
	Edit     key.Binding
	CopyLink key.Binding
	Open     key.Binding
	Back     key.Binding
}

var PreviewKeys = PreviewKeyMap{
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	CopyLink: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy link"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc/q", "back"),
	),
}

// PreviewModel shows one report read-only. Scrolling is the viewport's
// default key map (j/k, ctrl+d/u, pgup/pgdown).
type PreviewModel struct {
	ViewState
	repo   ports.ReportRepository
	opener ports.LinkOpener
	prefix string

	section  domain.Section
	report   domain.Report
	viewport viewport.Model
	loaded   bool
}

// NewPreviewModel creates a new preview view model
func NewPreviewModel(repo ports.ReportRepository, opener ports.LinkOpener, prefix string) *PreviewModel {
	return &PreviewModel{
		repo:     repo,
		opener:   opener,
		prefix:   prefix,
		viewport: viewport.New(80, 20),
	}
}

// SetReport points the preview at a report. Content loads on Init.
func (m *PreviewModel) SetReport(section domain.Section, report domain.Report) {
	m.section = section
	m.report = report
	m.loaded = false
	m.ClearMessage()
	m.viewport.SetContent("")
}

// Init initializes the preview view
func (m *PreviewModel) Init() tea.Cmd {
	return m.loadContent
}

func (m *PreviewModel) loadContent() tea.Msg {
	content, err := m.repo.ReadReport(m.section, m.report.QualifiedID())
	if err != nil {
		return errMsg{err}
	}
	return previewLoadedMsg{content: content}
}

type previewLoadedMsg struct {
	content string
}

// Update handles messages for the preview view
func (m *PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case previewLoadedMsg:
		m.loaded = true
		m.viewport.SetContent(msg.content)
		m.viewport.GotoTop()
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case successMsg:
		m.SetMessage(msg.message, false)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, PreviewKeys.Back):
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}

		case key.Matches(msg, PreviewKeys.Edit):
			path := m.report.Path
			return m, func() tea.Msg {
				return OpenEditorMsg{Path: path}
			}

		case key.Matches(msg, PreviewKeys.CopyLink):
			return m, copyLinkCmd(m.opener, m.prefix, m.section, m.report)

		case key.Matches(msg, PreviewKeys.Open):
			return m, openLinkCmd(m.opener, m.prefix, m.section, m.report)
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the preview view
func (m *PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(RenderTitle(fmt.Sprintf("%s / %s", m.section.Key, m.report.QualifiedID())))
	b.WriteString("\n")
	b.WriteString(RenderLabelValue("Path", m.report.Path))
	b.WriteString("\n\n")

	if m.loaded {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(RenderMuted("Loading..."))
	}
	b.WriteString("\n")

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
	}

	b.WriteString("\n")
	b.WriteString(RenderHelpLine(PreviewKeys.Edit, PreviewKeys.CopyLink, PreviewKeys.Open, PreviewKeys.Back))
	if m.loaded {
		b.WriteString(RenderMuted(fmt.Sprintf("  %3.0f%%", m.viewport.ScrollPercent()*100)))
	}

	return styles.App.Render(b.String())
}

// SetSize updates the view dimensions and refits the viewport under the
// header and above the help footer.
func (m *PreviewModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.viewport.Width = width - 4
	m.viewport.Height = height - 9
	if m.viewport.Height < 3 {
		m.viewport.Height = 3
	}
}
