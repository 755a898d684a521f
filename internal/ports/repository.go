package ports

import (
	"time"

	"github.com/Davisanity-TW/stock-report/internal/domain"
)

// ReportRepository defines the interface for source tree operations.
// The source tree is the authoring side (reports/); the published site
// is owned by SitePublisher.
type ReportRepository interface {
	// List operations. A missing section directory is not an error, it
	// just means no data yet.
	ListReports(section domain.Section) ([]domain.Report, error)
	Latest(section domain.Section) (domain.Latest, error)

	// Read operations. For nested sections the id is month qualified,
	// e.g. "202602/02-01".
	ReadReport(section domain.Section, id string) (string, error)
	ReportPath(section domain.Section, id string) (string, error)

	// Search matches report names and content lines across all sections
	Search(query string) ([]domain.SearchResult, error)

	// Write operations on weekly report files. Each resolves day to the
	// section's ISO week file, creating it with a title heading when
	// absent, and returns the path that was written.
	AppendEntry(section domain.Section, day time.Time, body string) (string, error)
	UpsertDailySection(section domain.Section, day time.Time, block string) (string, error)
	ReplaceDailyTable(section domain.Section, day time.Time, table string) (string, error)
}
