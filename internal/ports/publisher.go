package ports

import "github.com/Davisanity-TW/stock-report/internal/domain"

// SitePublisher owns the published documentation tree. Mirroring is
// destructive for markdown (the source is the single source of truth)
// but must never leave the site half written; implementations stage and
// swap instead of deleting in place.
type SitePublisher interface {
	// SyncSection mirrors one section's markdown into the site tree and
	// regenerates its index placeholders. An absent source directory is
	// a no-op, not an error.
	SyncSection(section domain.Section) (*domain.SyncResult, error)

	// SiteReports lists the published reports of a section, the input
	// for home and sidebar generation after a sync.
	SiteReports(section domain.Section) ([]domain.Report, error)

	// WriteHome replaces the site home page
	WriteHome(content string) error
	// WriteSidebar replaces the generated sidebar config
	WriteSidebar(data []byte) error

	// HomePath and SidebarPath report where the generated files live,
	// for logging and CLI output.
	HomePath() string
	SidebarPath() string
}
