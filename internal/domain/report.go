package domain

import (
	"path"
	"sort"
)

// Report is one markdown report file discovered in a section tree
type Report struct {
	Section string // owning section key
	ID      string // filename without the .md extension
	Month   string // month directory key for nested sections, "" for flat
	Path    string // location on disk
	Type    IDType // parsed identifier kind, IDTypeUnknown when malformed
}

// Valid reports whether the report name matched its section grammar
func (r Report) Valid() bool {
	return r.Type != IDTypeUnknown
}

// QualifiedID returns the identifier as shown to users: month qualified
// for nested sections ("202602/02-01"), bare otherwise ("2026-W05")
func (r Report) QualifiedID() string {
	if r.Month != "" {
		return r.Month + "/" + r.ID
	}
	return r.ID
}

// Link returns the site link for the report under the given prefix,
// e.g. prefix "/" + dest "moltbook" + month "202602" + id "02-01"
// -> "/moltbook/202602/02-01"
func (r Report) Link(prefix, dest string) string {
	if r.Month != "" {
		return prefix + path.Join(dest, r.Month, r.ID)
	}
	return prefix + path.Join(dest, r.ID)
}

// Latest identifies the most recent report of a section. The zero value
// means the section has no reports yet.
type Latest struct {
	ID    string
	Month string // set for nested sections
}

// None reports whether no latest report exists
func (l Latest) None() bool {
	return l.ID == ""
}

// QualifiedID mirrors Report.QualifiedID for latest lookups
func (l Latest) QualifiedID() string {
	if l.Month != "" {
		return l.Month + "/" + l.ID
	}
	return l.ID
}

// SortReports orders reports ascending: by month directory first, then by
// identifier. Malformed names sort wherever their raw string falls; callers
// filter them out before computing anything chronological.
func SortReports(reports []Report) {
	sort.Slice(reports, func(i, j int) bool {
		if reports[i].Month != reports[j].Month {
			return reports[i].Month < reports[j].Month
		}
		return CompareID(reports[i].ID, reports[j].ID) < 0
	})
}

// LatestOf selects the most recent well-formed report. For nested sections
// the last month directory wins first, then the last day inside it. A day
// file in an older month never beats the newest month, even if its name
// compares higher as a string.
func LatestOf(reports []Report) Latest {
	var best *Report
	for i := range reports {
		r := &reports[i]
		if !r.Valid() {
			continue
		}
		if best == nil {
			best = r
			continue
		}
		if r.Month != best.Month {
			if r.Month > best.Month {
				best = r
			}
			continue
		}
		if CompareID(r.ID, best.ID) > 0 {
			best = r
		}
	}
	if best == nil {
		return Latest{}
	}
	return Latest{ID: best.ID, Month: best.Month}
}

// InvalidNames collects the names that failed the section grammar, in the
// order they were discovered. Used to warn without aborting a publish.
func InvalidNames(reports []Report) []string {
	var names []string
	for _, r := range reports {
		if !r.Valid() {
			names = append(names, r.QualifiedID())
		}
	}
	return names
}

// SearchResult represents a report matched by a content or name search
type SearchResult struct {
	Report
	MatchedText string // the line that matched, trimmed
	NameMatch   bool   // true when the identifier itself matched
}

// SyncResult summarizes one section mirror pass
type SyncResult struct {
	Section   string
	Copied    int      // markdown reports copied from the source tree
	Preserved int      // non-markdown entries carried over from the old tree
	Flagged   []string // names that failed the section grammar (still copied)
	Skipped   bool     // source directory absent, nothing to publish
}
