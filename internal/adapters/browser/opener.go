package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// Opener implements ports.LinkOpener against the deployed site
type Opener struct {
	siteURL string
}

// NewOpener creates a link opener for the given deployed base URL
// (e.g. "https://davisanity-tw.github.io/stock_report")
func NewOpener(siteURL string) *Opener {
	return &Opener{siteURL: strings.TrimRight(siteURL, "/")}
}

// OpenLink opens the published page for a site link in the system browser
func (o *Opener) OpenLink(link string) error {
	target, err := o.BuildURL(link)
	if err != nil {
		return err
	}
	return openURL(target)
}

// BuildURL resolves a site link like "/tw/2026-W05" to the absolute
// published URL
func (o *Opener) BuildURL(link string) (string, error) {
	if o.siteURL == "" {
		return "", fmt.Errorf("site URL not configured")
	}
	base, err := url.Parse(o.siteURL)
	if err != nil {
		return "", fmt.Errorf("invalid site URL %q: %w", o.siteURL, err)
	}
	if !strings.HasPrefix(link, "/") {
		link = "/" + link
	}
	// links already carry the deploy prefix when link_prefix is set,
	// so join against the host root, not the base path
	base.Path = link
	return base.String(), nil
}

func openURL(target string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "linux":
		cmd = exec.Command("xdg-open", target)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", target)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}

	return cmd.Run()
}
