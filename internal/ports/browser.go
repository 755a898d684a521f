package ports

// LinkOpener defines the interface for opening published report pages
type LinkOpener interface {
	// OpenLink opens the published page for a site link (e.g. "/tw/2026-W05")
	// in the system browser
	OpenLink(link string) error

	// BuildURL resolves a site link to the absolute published URL
	BuildURL(link string) (string, error)
}
