package views

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Davisanity-TW/stock-report/internal/adapters/tui/styles"
	"github.com/Davisanity-TW/stock-report/internal/domain"
	"github.com/Davisanity-TW/stock-report/internal/ports"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Enter    key.Binding
	Edit     key.Binding
	CopyLink key.Binding
	Open     key.Binding
	Reload   key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Search   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "preview"),
	),
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
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("ctrl+f", "pgdown"),
		key.WithHelp("ctrl+f", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("ctrl+b", "pgup"),
		key.WithHelp("ctrl+b", "prev page"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type rowKind int

const (
	rowSection rowKind = iota
	rowMonth
	rowReport
)

// browserRow is one visible line in the report tree: a section header,
// a month directory of a nested section, or a report file.
type browserRow struct {
	kind    rowKind
	section domain.Section
	month   string        // month rows and nested report rows
	report  domain.Report // report rows only
	latest  bool          // marks the section's newest report
}

// depth returns the indent level of the row in the tree
func (r browserRow) depth() int {
	switch r.kind {
	case rowSection:
		return 0
	case rowMonth:
		return 1
	default:
		if r.month != "" {
			return 2
		}
		return 1
	}
}

// BrowserModel is the model for the report tree view. Sections come from
// the publishing config; their report listings load lazily on first
// expand so a large nested section is only read when opened.
type BrowserModel struct {
	ViewState
	repo     ports.ReportRepository
	opener   ports.LinkOpener
	sections []domain.Section
	prefix   string

	reports  map[string][]domain.Report // loaded listings by section key
	expanded map[string]bool            // section keys and "key/month" paths
	rows     []browserRow
	pager    *Paginator
}

// NewBrowserModel creates a new browser model
func NewBrowserModel(repo ports.ReportRepository, opener ports.LinkOpener, sections []domain.Section, prefix string) *BrowserModel {
	return &BrowserModel{
		repo:     repo,
		opener:   opener,
		sections: sections,
		prefix:   prefix,
		reports:  make(map[string][]domain.Report),
		expanded: make(map[string]bool),
		pager:    NewPaginator(15),
	}
}

// Init expands the first section so the browser opens with content
func (m *BrowserModel) Init() tea.Cmd {
	if len(m.sections) == 0 {
		return nil
	}
	first := m.sections[0]
	m.expanded[first.Key] = true
	m.refreshRows()
	return m.loadSection(first)
}

func (m *BrowserModel) loadSection(s domain.Section) tea.Cmd {
	return func() tea.Msg {
		reports, err := m.repo.ListReports(s)
		if err != nil {
			return errMsg{err}
		}
		return sectionLoadedMsg{key: s.Key, reports: reports}
	}
}

type sectionLoadedMsg struct {
	key     string
	reports []domain.Report
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case sectionLoadedMsg:
		m.reports[msg.key] = msg.reports
		m.refreshRows()
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case successMsg:
		m.SetMessage(msg.message, false)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			m.pager.CursorUp()
			return m, nil

		case key.Matches(msg, BrowserKeys.Down):
			m.pager.CursorDown()
			return m, nil

		case key.Matches(msg, BrowserKeys.NextPage):
			m.pager.NextPage()
			return m, nil

		case key.Matches(msg, BrowserKeys.PrevPage):
			m.pager.PrevPage()
			return m, nil

		case key.Matches(msg, BrowserKeys.Left):
			if row := m.selectedRow(); row != nil {
				m.collapseOrAscend(*row)
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Right), key.Matches(msg, BrowserKeys.Enter):
			row := m.selectedRow()
			if row == nil {
				return m, nil
			}
			switch row.kind {
			case rowReport:
				if key.Matches(msg, BrowserKeys.Enter) {
					return m, switchToPreview(row.section, row.report)
				}
				return m, nil
			case rowSection:
				return m, m.toggleSection(row.section, key.Matches(msg, BrowserKeys.Enter))
			case rowMonth:
				m.toggleMonth(*row, key.Matches(msg, BrowserKeys.Enter))
				return m, nil
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Edit):
			if row := m.selectedRow(); row != nil && row.kind == rowReport {
				path := row.report.Path
				return m, func() tea.Msg {
					return OpenEditorMsg{Path: path}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.CopyLink):
			if row := m.selectedRow(); row != nil && row.kind == rowReport {
				return m, copyLinkCmd(m.opener, m.prefix, row.section, row.report)
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Open):
			if row := m.selectedRow(); row != nil && row.kind == rowReport {
				return m, openLinkCmd(m.opener, m.prefix, row.section, row.report)
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Reload):
			return m, m.Reload()

		case key.Matches(msg, BrowserKeys.Search):
			return m, func() tea.Msg {
				return SwitchToSearchMsg{}
			}

		case key.Matches(msg, BrowserKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

// toggleSection expands a collapsed section, loading its listing on the
// first open. Enter on an expanded section collapses it again.
func (m *BrowserModel) toggleSection(s domain.Section, toggle bool) tea.Cmd {
	if m.expanded[s.Key] {
		if toggle {
			delete(m.expanded, s.Key)
			m.refreshRows()
		}
		return nil
	}
	m.expanded[s.Key] = true
	m.refreshRows()
	if _, loaded := m.reports[s.Key]; !loaded {
		return m.loadSection(s)
	}
	return nil
}

func (m *BrowserModel) toggleMonth(row browserRow, toggle bool) {
	monthKey := row.section.Key + "/" + row.month
	if m.expanded[monthKey] {
		if toggle {
			delete(m.expanded, monthKey)
			m.refreshRows()
		}
		return
	}
	m.expanded[monthKey] = true
	m.refreshRows()
}

// collapseOrAscend collapses the row if it is an expanded branch,
// otherwise moves the cursor to the owning section or month row.
func (m *BrowserModel) collapseOrAscend(row browserRow) {
	switch row.kind {
	case rowSection:
		if m.expanded[row.section.Key] {
			delete(m.expanded, row.section.Key)
			m.refreshRows()
		}
	case rowMonth:
		monthKey := row.section.Key + "/" + row.month
		if m.expanded[monthKey] {
			delete(m.expanded, monthKey)
			m.refreshRows()
			return
		}
		m.moveToParent(row)
	case rowReport:
		m.moveToParent(row)
	}
}

func (m *BrowserModel) moveToParent(row browserRow) {
	for i := m.pager.Cursor() - 1; i >= 0; i-- {
		if m.rows[i].depth() < row.depth() {
			m.pager.SetCursor(i)
			return
		}
	}
}

func (m *BrowserModel) selectedRow() *browserRow {
	i := m.pager.Cursor()
	if i >= 0 && i < len(m.rows) {
		return &m.rows[i]
	}
	return nil
}

func (m *BrowserModel) refreshRows() {
	m.rows = buildRows(m.sections, m.reports, m.expanded)
	m.pager.SetTotal(len(m.rows))
}

// buildRows flattens the section tree into visible rows. Reports show
// newest first, the order the published sidebar uses; names that failed
// the section grammar sink to the end of their branch.
func buildRows(sections []domain.Section, reports map[string][]domain.Report, expanded map[string]bool) []browserRow {
	var rows []browserRow
	for _, s := range sections {
		rows = append(rows, browserRow{kind: rowSection, section: s})
		if !expanded[s.Key] {
			continue
		}
		list, loaded := reports[s.Key]
		if !loaded {
			continue
		}
		latest := domain.LatestOf(list)

		if s.Layout == domain.LayoutNested {
			for _, month := range monthKeys(list) {
				rows = append(rows, browserRow{kind: rowMonth, section: s, month: month})
				if !expanded[s.Key+"/"+month] {
					continue
				}
				for _, r := range sortedReports(list, month) {
					rows = append(rows, browserRow{
						kind:    rowReport,
						section: s,
						month:   month,
						report:  r,
						latest:  r.Valid() && r.ID == latest.ID && r.Month == latest.Month,
					})
				}
			}
			continue
		}

		for _, r := range sortedReports(list, "") {
			rows = append(rows, browserRow{
				kind:    rowReport,
				section: s,
				report:  r,
				latest:  r.Valid() && r.ID == latest.ID,
			})
		}
	}
	return rows
}

// monthKeys returns the distinct month directories, newest first
func monthKeys(list []domain.Report) []string {
	seen := make(map[string]bool)
	var months []string
	for _, r := range list {
		if r.Month == "" || seen[r.Month] {
			continue
		}
		seen[r.Month] = true
		months = append(months, r.Month)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months
}

// sortedReports returns the reports of one month (or the flat top level
// when month is ""), newest first, malformed names last.
func sortedReports(list []domain.Report, month string) []domain.Report {
	var valid, flagged []domain.Report
	for _, r := range list {
		if r.Month != month {
			continue
		}
		if r.Valid() {
			valid = append(valid, r)
		} else {
			flagged = append(flagged, r)
		}
	}
	sort.Slice(valid, func(i, j int) bool {
		return domain.CompareID(valid[i].ID, valid[j].ID) > 0
	})
	sort.Slice(flagged, func(i, j int) bool {
		return flagged[i].ID < flagged[j].ID
	})
	return append(valid, flagged...)
}

// copyLinkCmd puts the published URL of a report on the clipboard,
// falling back to the site-relative link when no site URL is configured.
func copyLinkCmd(opener ports.LinkOpener, prefix string, s domain.Section, r domain.Report) tea.Cmd {
	return func() tea.Msg {
		text := r.Link(prefix, s.Dest)
		if opener != nil {
			if url, err := opener.BuildURL(text); err == nil {
				text = url
			}
		}
		if err := clipboard.WriteAll(text); err != nil {
			return errMsg{fmt.Errorf("failed to copy link: %w", err)}
		}
		return successMsg{fmt.Sprintf("Copied %s", text)}
	}
}

// openLinkCmd opens the published page of a report in the system browser
func openLinkCmd(opener ports.LinkOpener, prefix string, s domain.Section, r domain.Report) tea.Cmd {
	return func() tea.Msg {
		if opener == nil {
			return errMsg{fmt.Errorf("site URL not configured")}
		}
		link := r.Link(prefix, s.Dest)
		if err := opener.OpenLink(link); err != nil {
			return errMsg{err}
		}
		return successMsg{fmt.Sprintf("Opened %s", link)}
	}
}

func switchToPreview(s domain.Section, r domain.Report) tea.Cmd {
	return func() tea.Msg {
		return SwitchToPreviewMsg{Section: s, Report: r}
	}
}

// View renders the browser
func (m *BrowserModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Stock Report"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Weekly Report Browser"))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(RenderMuted("No sections configured"))
		b.WriteString("\n")
	}

	start, end := m.pager.VisibleRange()
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(m.rows[i], i == m.pager.Cursor()))
		b.WriteString("\n")
	}

	if m.pager.TotalPages() > 1 {
		b.WriteString(RenderMuted(m.pager.View()))
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
	}

	b.WriteString("\n")
	b.WriteString(RenderHelpLine(
		BrowserKeys.Down,
		BrowserKeys.Enter,
		BrowserKeys.Edit,
		BrowserKeys.CopyLink,
		BrowserKeys.Open,
		BrowserKeys.Search,
		BrowserKeys.Help,
		BrowserKeys.Quit,
	))

	return styles.App.Render(b.String())
}

func (m *BrowserModel) renderRow(row browserRow, selected bool) string {
	var prefix, text string
	var style lipgloss.Style

	switch row.kind {
	case rowSection:
		if m.expanded[row.section.Key] {
			prefix = styles.TreeExpanded
		} else {
			prefix = styles.TreeCollapsed
		}
		text = fmt.Sprintf("%s %s", row.section.Key, row.section.Title)
		style = styles.NodeSection.Foreground(styles.SectionColor(row.section.Key))

	case rowMonth:
		if m.expanded[row.section.Key+"/"+row.month] {
			prefix = styles.TreeExpanded
		} else {
			prefix = styles.TreeCollapsed
		}
		text = row.month
		style = styles.NodeMonth

	case rowReport:
		prefix = styles.TreeLeaf
		text = row.report.ID
		switch {
		case !row.report.Valid():
			style = styles.NodeFlagged
		case row.latest:
			text += " (latest)"
			style = styles.NodeLatest
		default:
			style = styles.NodeReport
		}
	}

	indent := strings.Repeat("  ", row.depth())
	styledText := style.Render(text)
	if selected {
		styledText = styles.NodeSelected.Render(text)
	}

	return fmt.Sprintf("%s%s%s", indent, styles.TreeBranch.Render(prefix), styledText)
}

// SetSize updates the view dimensions and refits the visible window,
// leaving room for the title block, message line, and help footer.
func (m *BrowserModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	size := height - 10
	if size < 5 {
		size = 5
	}
	cursor := m.pager.Cursor()
	m.pager = NewPaginator(size)
	m.pager.SetTotal(len(m.rows))
	m.pager.SetCursor(cursor)
}

// Reload drops the cached listings and reloads every expanded section
func (m *BrowserModel) Reload() tea.Cmd {
	m.reports = make(map[string][]domain.Report)
	m.refreshRows()
	var cmds []tea.Cmd
	for _, s := range m.sections {
		if m.expanded[s.Key] {
			cmds = append(cmds, m.loadSection(s))
		}
	}
	return tea.Batch(cmds...)
}
