package commands

import (
	"context"
	"fmt"

	"github.com/Davisanity-TW/stock-report/internal/domain"
	"github.com/Davisanity-TW/stock-report/internal/ports"
)

// collectSiteReports lists every section of the published tree, keeping
// the malformed names aside so callers can warn without aborting.
func collectSiteReports(publisher ports.SitePublisher, sections []domain.Section) (map[string][]domain.Report, []string, error) {
	reports := make(map[string][]domain.Report, len(sections))
	var flagged []string
	for _, s := range sections {
		list, err := publisher.SiteReports(s)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list section %s: %w", s.Key, err)
		}
		reports[s.Key] = list
		for _, name := range domain.InvalidNames(list) {
			flagged = append(flagged, s.Key+"/"+name)
		}
	}
	return reports, flagged, nil
}

// HomeResult contains the regenerated home page
type HomeResult struct {
	Path    string
	Latest  map[string]domain.Latest // per section key
	Flagged []string                 // malformed names kept out of navigation
}

// HomeCommand rewrites the site home page with the latest report link of
// every section, from whatever the site tree currently holds
type HomeCommand struct {
	publisher ports.SitePublisher
	sections  []domain.Section
	prefix    string
}

// NewHomeCommand creates a new HomeCommand
func NewHomeCommand(publisher ports.SitePublisher, sections []domain.Section, prefix string) *HomeCommand {
	return &HomeCommand{
		publisher: publisher,
		sections:  sections,
		prefix:    prefix,
	}
}

// Execute runs the home command
func (c *HomeCommand) Execute(ctx context.Context) (*HomeResult, error) {
	reports, flagged, err := collectSiteReports(c.publisher, c.sections)
	if err != nil {
		return nil, err
	}

	latest := make(map[string]domain.Latest, len(c.sections))
	for _, s := range c.sections {
		latest[s.Key] = domain.LatestOf(reports[s.Key])
	}

	home := domain.RenderHome(c.sections, latest, c.prefix)
	if err := c.publisher.WriteHome(home); err != nil {
		return nil, err
	}

	return &HomeResult{
		Path:    c.publisher.HomePath(),
		Latest:  latest,
		Flagged: flagged,
	}, nil
}

// SidebarResult contains the regenerated sidebar config
type SidebarResult struct {
	Path    string
	Flagged []string
}

// SidebarCommand rewrites the sidebar config from the published tree
type SidebarCommand struct {
	publisher ports.SitePublisher
	sections  []domain.Section
	prefix    string
}

// NewSidebarCommand creates a new SidebarCommand
func NewSidebarCommand(publisher ports.SitePublisher, sections []domain.Section, prefix string) *SidebarCommand {
	return &SidebarCommand{
		publisher: publisher,
		sections:  sections,
		prefix:    prefix,
	}
}

// Execute runs the sidebar command
func (c *SidebarCommand) Execute(ctx context.Context) (*SidebarResult, error) {
	reports, flagged, err := collectSiteReports(c.publisher, c.sections)
	if err != nil {
		return nil, err
	}

	sidebar, err := domain.RenderSidebar(domain.BuildSidebar(c.sections, reports, c.prefix))
	if err != nil {
		return nil, fmt.Errorf("failed to render sidebar: %w", err)
	}
	if err := c.publisher.WriteSidebar(sidebar); err != nil {
		return nil, err
	}

	return &SidebarResult{
		Path:    c.publisher.SidebarPath(),
		Flagged: flagged,
	}, nil
}

// GenerateResult contains the regenerated navigation artifacts
type GenerateResult struct {
	HomePath    string
	SidebarPath string
	Latest      map[string]domain.Latest // per section key
	Flagged     []string                 // malformed names kept out of navigation
}

// GenerateCommand rebuilds the home page and the sidebar together, the
// tail end of every publish run
type GenerateCommand struct {
	home    *HomeCommand
	sidebar *SidebarCommand
}

// NewGenerateCommand creates a new GenerateCommand
func NewGenerateCommand(publisher ports.SitePublisher, sections []domain.Section, prefix string) *GenerateCommand {
	return &GenerateCommand{
		home:    NewHomeCommand(publisher, sections, prefix),
		sidebar: NewSidebarCommand(publisher, sections, prefix),
	}
}

// Execute runs the generate command
func (c *GenerateCommand) Execute(ctx context.Context) (*GenerateResult, error) {
	home, err := c.home.Execute(ctx)
	if err != nil {
		return nil, err
	}

	sidebar, err := c.sidebar.Execute(ctx)
	if err != nil {
		return nil, err
	}

	return &GenerateResult{
		HomePath:    home.Path,
		SidebarPath: sidebar.Path,
		Latest:      home.Latest,
		Flagged:     home.Flagged,
	}, nil
}
