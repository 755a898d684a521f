package ports

import "github.com/Davisanity-TW/stock-report/internal/domain"

// ReportIndex provides cached access to report metadata and daily entry
// headers. Queries hit database indexes, never the filesystem.
type ReportIndex interface {
	// Lifecycle
	Open(sourceRoot string) error
	Close() error

	// Sync operations
	NeedsFullRebuild() bool
	SyncIncremental() (*domain.IndexStats, error)
	SyncFull() (*domain.IndexStats, error)

	// Report queries
	GetReport(path string) (*domain.IndexedReport, error)
	ListSection(section string) ([]domain.IndexedReport, error)

	// EntriesOn returns every daily entry header written for a date,
	// across all weekly files that mention it.
	EntriesOn(date string) ([]domain.DailyEntry, error)
}
