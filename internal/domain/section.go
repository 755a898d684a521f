package domain

// Layout describes how a section arranges its report files on disk
type Layout int

const (
	// LayoutFlat keeps all reports directly inside the section directory.
	// Flat sections hold weekly reports named after the ISO week.
	LayoutFlat Layout = iota
	// LayoutNested groups daily reports into YYYYMM month directories.
	LayoutNested
)

func (l Layout) String() string {
	if l == LayoutNested {
		return "nested"
	}
	return "flat"
}

// Section is a report category. Each section owns one subtree under the
// source root and one under the site root; the two subpaths may differ
// (moltbook sources live under moltbook/reports but publish to moltbook).
type Section struct {
	Key      string // stable identifier used by CLI flags and links ("tw")
	Title    string // display title used on the home page ("台股週報")
	Source   string // subpath under the source root
	Dest     string // subpath under the site root
	Layout   Layout
	NavLimit int // maximum number of report links in the sidebar
}

// AcceptsID reports whether name is a well-formed report identifier for
// this section. Flat sections carry ISO week names, nested sections carry
// day names (full or month relative). Anything else is flagged by the
// publishing pipeline instead of being sorted as an arbitrary string.
func (s Section) AcceptsID(id string) bool {
	switch ParseIDType(id) {
	case IDTypeWeek:
		return s.Layout == LayoutFlat
	case IDTypeDay, IDTypeMonthDay:
		return s.Layout == LayoutNested
	default:
		return false
	}
}

// Classify resolves the identifier kind of a discovered file against the
// section grammar. Names that parse but do not belong in this section
// (a week name inside a nested section, a day file under a malformed
// month directory) come back as IDTypeUnknown so they are flagged, not
// sorted as arbitrary strings.
func (s Section) Classify(month, id string) IDType {
	if month != "" && ParseIDType(month) != IDTypeMonth {
		return IDTypeUnknown
	}
	if !s.AcceptsID(id) {
		return IDTypeUnknown
	}
	return ParseIDType(id)
}

// FindSection looks up a section by key. Returns false when no section
// with that key is configured.
func FindSection(sections []Section, key string) (Section, bool) {
	for _, s := range sections {
		if s.Key == key {
			return s, true
		}
	}
	return Section{}, false
}
