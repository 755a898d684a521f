package styles

import "github.com/charmbracelet/lipgloss"

// Palette. Taiwanese tape colors: red is the rising side, so red marks
// fresh data and section tw, while green is reserved for calm success
// messages, not prices.
var (
	Accent  = lipgloss.Color("#D97706") // amber, selection and titles
	Fresh   = lipgloss.Color("#DC2626") // tape red, newest report
	Confirm = lipgloss.Color("#16A34A")
	Alert   = lipgloss.Color("#E11D48")
	Gray    = lipgloss.Color("#71717A")
	White   = lipgloss.Color("#FAFAFA")
	Black   = lipgloss.Color("#18181B")
)

// Per-section colors for the browser tree
var (
	SectionTW       = lipgloss.Color("#DC2626")
	SectionUS       = lipgloss.Color("#2563EB")
	SectionYouTube  = lipgloss.Color("#A855F7")
	SectionMoltbook = lipgloss.Color("#F97316")
)

// SectionColor returns the tree color for a section key
func SectionColor(key string) lipgloss.Color {
	switch key {
	case "tw":
		return SectionTW
	case "us":
		return SectionUS
	case "youtube":
		return SectionYouTube
	case "moltbook":
		return SectionMoltbook
	default:
		return Accent
	}
}

// Window chrome
var (
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Accent).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Gray).
			Italic(true)

	MutedText = lipgloss.NewStyle().
			Foreground(Gray)
)

// Browser tree
var (
	NodeSection = lipgloss.NewStyle().
			Bold(true)

	NodeMonth = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2563EB"))

	NodeReport = lipgloss.NewStyle()

	NodeLatest = lipgloss.NewStyle().
			Foreground(Fresh)

	NodeFlagged = lipgloss.NewStyle().
			Foreground(Gray).
			Italic(true)

	NodeSelected = lipgloss.NewStyle().
			Background(Accent).
			Foreground(Black).
			Bold(true)

	TreeBranch    = lipgloss.NewStyle().Foreground(Gray)
	TreeExpanded  = "▼ "
	TreeCollapsed = "▶ "
	TreeLeaf      = "  "
)

// Inputs
var (
	InputLabel = lipgloss.NewStyle().
			Foreground(Confirm).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Gray).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Accent).
			Padding(0, 1)
)

// Help footer
var (
	HelpKey = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Gray)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Gray).
			SetString(" • ")
)

// Status line
var (
	Success = lipgloss.NewStyle().
		Foreground(Confirm).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Alert).
			Bold(true)

	SearchMatch = lipgloss.NewStyle().
			Background(Accent).
			Foreground(Black)

	StatusBar = lipgloss.NewStyle().
			Background(Black).
			Foreground(White).
			Padding(0, 1)

	StatusKey = lipgloss.NewStyle().
			Background(Accent).
			Foreground(Black).
			Padding(0, 1).
			MarginRight(1)

	StatusText = lipgloss.NewStyle().
			Foreground(Gray)
)
