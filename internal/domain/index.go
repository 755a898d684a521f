package domain

import "time"

// IndexedReport is a cached report file row in the local report index
type IndexedReport struct {
	Path    string // relative path from the source root (primary key)
	Section string // owning section key
	ID      string // report identifier (filename without .md)
	IDKind  IDType // parsed identifier kind
	Title   string // first level-1 heading, empty when none
	Mtime   int64  // unix timestamp for incremental sync
	Size    int64
}

// DailyEntry is one dated "## YYYY-MM-DD" section header found inside a
// report. It lets a single day be looked up across all weekly files.
type DailyEntry struct {
	ReportPath string // report containing the entry
	Date       string // YYYY-MM-DD
	Heading    string // full header line text, trimmed
}

// IndexStats holds statistics from an index sync operation
type IndexStats struct {
	ReportsAdded   int
	ReportsUpdated int
	ReportsDeleted int
	EntriesAdded   int
	FilesScanned   int
	Duration       time.Duration
}
