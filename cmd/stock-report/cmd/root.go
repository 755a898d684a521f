package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Davisanity-TW/stock-report/internal/adapters/filesystem"
	"github.com/Davisanity-TW/stock-report/internal/config"
	"github.com/Davisanity-TW/stock-report/internal/domain"
	"github.com/Davisanity-TW/stock-report/internal/ports"
)

var (
	configPath string
	cfg        *config.Config
	sections   []domain.Section
	repo       ports.ReportRepository
	publisher  ports.SitePublisher
)

var rootCmd = &cobra.Command{
	Use:   "stock-report",
	Short: "Synchronize and publish markdown stock reports",
	Long: `stock-report maintains a published documentation tree for weekly
stock reports: it mirrors the report sources into the site tree,
regenerates the home page and sidebar navigation, and edits the
weekly files the pipeline appends to.

It provides commands to sync, publish, list, search, and ingest
reports across the configured sections.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.LoadOrDefault(configPath)
		if err != nil {
			return err
		}
		sections = cfg.ReportSections()
		repo = filesystem.NewRepository(cfg.SourceRoot, sections)
		publisher = filesystem.NewPublisher(cfg.SourceRoot, cfg.SiteRoot, cfg.SidebarFile)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.Path(), "path to the publishing config")
}

// GetConfig returns the loaded publishing config
func GetConfig() *config.Config {
	return cfg
}

// GetSections returns the configured report sections
func GetSections() []domain.Section {
	return sections
}

// GetRepo returns the initialized source tree repository
func GetRepo() ports.ReportRepository {
	return repo
}

// GetPublisher returns the initialized site publisher
func GetPublisher() ports.SitePublisher {
	return publisher
}
