package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Davisanity-TW/stock-report/internal/adapters/tui/styles"
	"github.com/Davisanity-TW/stock-report/internal/domain"
	"github.com/Davisanity-TW/stock-report/internal/ports"
)

// SearchKeyMap defines key bindings for the search view. Only chords and
// special keys; printable characters belong to the query input.
type SearchKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Copy   key.Binding
	Cancel key.Binding
}

var SearchKeys = SearchKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "preview"),
	),
	Copy: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy link"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// SearchModel is the model for the search view
type SearchModel struct {
	ViewState
	repo     ports.ReportRepository
	opener   ports.LinkOpener
	sections []domain.Section
	prefix   string

	input     textinput.Model
	results   []domain.SearchResult
	pager     *Paginator
	searching bool
}

// NewSearchModel creates a new search view model
func NewSearchModel(repo ports.ReportRepository, opener ports.LinkOpener, sections []domain.Section, prefix string) *SearchModel {
	input := textinput.New()
	input.Placeholder = "Search reports..."
	input.Focus()

	return &SearchModel{
		repo:     repo,
		opener:   opener,
		sections: sections,
		prefix:   prefix,
		input:    input,
		pager:    NewPaginator(10),
	}
}

// Init initializes the search view
func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// Reset resets the search view
func (m *SearchModel) Reset() {
	m.input.SetValue("")
	m.results = nil
	m.pager.Reset()
	m.ClearMessage()
	m.input.Focus()
}

// Update handles messages for the search view
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case searchResultsMsg:
		m.results = msg.results
		m.pager.Reset()
		m.pager.SetTotal(len(m.results))
		m.searching = false
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case successMsg:
		m.SetMessage(msg.message, false)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, SearchKeys.Cancel):
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}

		case key.Matches(msg, SearchKeys.Up):
			m.pager.CursorUp()
			return m, nil

		case key.Matches(msg, SearchKeys.Down):
			m.pager.CursorDown()
			return m, nil

		case key.Matches(msg, SearchKeys.Select):
			if result, section, ok := m.selectedResult(); ok {
				return m, switchToPreview(section, result.Report)
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Copy):
			if result, section, ok := m.selectedResult(); ok {
				return m, copyLinkCmd(m.opener, m.prefix, section, result.Report)
			}
			return m, nil
		}
	}

	// Update input
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// Trigger search on input change
	query := m.input.Value()
	if len(query) >= 2 {
		m.searching = true
		return m, tea.Batch(cmd, m.search(query))
	} else if len(query) == 0 {
		m.results = nil
		m.pager.Reset()
	}

	return m, cmd
}

func (m *SearchModel) search(query string) tea.Cmd {
	return func() tea.Msg {
		results, err := m.repo.Search(query)
		if err != nil {
			return searchResultsMsg{results: nil}
		}
		return searchResultsMsg{results: results}
	}
}

type searchResultsMsg struct {
	results []domain.SearchResult
}

func (m *SearchModel) selectedResult() (domain.SearchResult, domain.Section, bool) {
	i := m.pager.Cursor()
	if i < 0 || i >= len(m.results) {
		return domain.SearchResult{}, domain.Section{}, false
	}
	result := m.results[i]
	section, found := domain.FindSection(m.sections, result.Section)
	if !found {
		return domain.SearchResult{}, domain.Section{}, false
	}
	return result, section, true
}

// View renders the search view
func (m *SearchModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Search"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n\n")

	if len(m.results) == 0 {
		switch {
		case m.searching:
			b.WriteString(RenderMuted("Searching..."))
		case len(m.input.Value()) >= 2:
			b.WriteString(RenderMuted("No results found"))
		default:
			b.WriteString(RenderMuted("Type at least 2 characters to search"))
		}
	} else {
		b.WriteString(RenderSubtitle(fmt.Sprintf("%d results", len(m.results))))
		b.WriteString("\n\n")

		start, end := m.pager.VisibleRange()
		for i := start; i < end; i++ {
			b.WriteString(m.renderResult(m.results[i], i == m.pager.Cursor()))
			b.WriteString("\n")
		}

		if m.pager.TotalPages() > 1 {
			b.WriteString(RenderMuted(m.pager.View()))
			b.WriteString("\n")
		}
	}

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
	}

	b.WriteString("\n\n")
	b.WriteString(RenderHelpLine(SearchKeys.Up, SearchKeys.Select, SearchKeys.Copy, SearchKeys.Cancel))

	return styles.App.Render(b.String())
}

func (m *SearchModel) renderResult(result domain.SearchResult, selected bool) string {
	text := fmt.Sprintf("[%s] %s", result.Section, result.QualifiedID())

	snippet := ""
	if !result.NameMatch {
		snippet = resultSnippet(result.MatchedText)
	}

	if selected {
		if snippet != "" {
			text += "  " + snippet
		}
		return styles.NodeSelected.Render(text)
	}
	if snippet != "" {
		return text + "  " + RenderMuted(snippet)
	}
	return text
}

// resultSnippet trims a matched content line to fit one result row
func resultSnippet(line string) string {
	runes := []rune(strings.TrimSpace(line))
	if len(runes) > 48 {
		return string(runes[:48]) + "…"
	}
	return string(runes)
}
