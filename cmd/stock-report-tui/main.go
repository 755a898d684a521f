package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Davisanity-TW/stock-report/internal/adapters/browser"
	"github.com/Davisanity-TW/stock-report/internal/adapters/editor"
	"github.com/Davisanity-TW/stock-report/internal/adapters/filesystem"
	"github.com/Davisanity-TW/stock-report/internal/adapters/tui"
	"github.com/Davisanity-TW/stock-report/internal/config"
)

func main() {
	configFlag := flag.String("config", config.Path(), "path to the publish config")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	sections := cfg.ReportSections()

	// Initialize adapters
	repo := filesystem.NewRepository(cfg.SourceRoot, sections)
	linkOpener := browser.NewOpener(cfg.SiteURL)
	editorOpener := editor.NewOpener()

	// Create and run TUI app
	app := tui.NewApp(repo, linkOpener, editorOpener, sections, cfg.LinkPrefix)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
