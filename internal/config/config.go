package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Davisanity-TW/stock-report/internal/domain"
)

// DefaultPath is where the publishing config lives, relative to the
// repository root the tools run from.
const DefaultPath = "config/publish.yaml"

// Path returns the config path from the STOCK_REPORT_CONFIG env var,
// falling back to DefaultPath.
func Path() string {
	if env := os.Getenv("STOCK_REPORT_CONFIG"); env != "" {
		return env
	}
	return DefaultPath
}

// Section configures one report category
type Section struct {
	Key      string `yaml:"key"`
	Title    string `yaml:"title,omitempty"`
	Source   string `yaml:"source,omitempty"`    // subpath under source_root, defaults to key
	Dest     string `yaml:"dest,omitempty"`      // subpath under site_root, defaults to key
	Layout   string `yaml:"layout,omitempty"`    // "flat" (default) or "nested"
	NavLimit int    `yaml:"nav_limit,omitempty"` // sidebar entries, clamped to 20..62
}

// Config is the publishing configuration. Every path is interpreted
// relative to the working directory, so the tools can run from any
// checkout without editing the file.
type Config struct {
	SourceRoot  string            `yaml:"source_root"`
	SiteRoot    string            `yaml:"site_root"`
	LinkPrefix  string            `yaml:"link_prefix,omitempty"`
	SiteURL     string            `yaml:"site_url,omitempty"` // deployed base URL, used for copy/open
	SidebarFile string            `yaml:"sidebar_file,omitempty"`
	Sections    []Section         `yaml:"sections"`
	StockNames  map[string]string `yaml:"stock_names,omitempty"`
}

// Default returns the configuration matching the repository as checked
// out: reports/ mirrored into docs/, the four standing sections, and the
// stock name map the TW pipeline ships with.
func Default() *Config {
	c := &Config{
		SourceRoot:  "reports",
		SiteRoot:    "docs",
		LinkPrefix:  "/",
		SidebarFile: ".vitepress/sidebar.json",
		Sections: []Section{
			{Key: "tw", Title: "台股週報"},
			{Key: "us", Title: "美股週報"},
			{Key: "youtube", Title: "YouTube 每週直播摘要"},
			{Key: "moltbook", Title: "Moltbook 精選", Source: "moltbook/reports", Layout: "nested", NavLimit: 62},
		},
		StockNames: DefaultStockNames(),
	}
	if err := c.normalize(); err != nil {
		panic(err) // defaults are static; a failure here is a programming error
	}
	return c
}

// Load reads and validates a publishing config file. A missing file is
// an error; callers that want zero-config behavior use LoadOrDefault.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := c.normalize(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &c, nil
}

// LoadOrDefault loads path when it exists and falls back to the built-in
// defaults when it does not.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		path = Path()
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

func (c *Config) normalize() error {
	if c.SourceRoot == "" {
		c.SourceRoot = "reports"
	}
	if c.SiteRoot == "" {
		c.SiteRoot = "docs"
	}
	if c.LinkPrefix == "" {
		c.LinkPrefix = "/"
	}
	if !strings.HasSuffix(c.LinkPrefix, "/") {
		c.LinkPrefix += "/"
	}
	if c.SidebarFile == "" {
		c.SidebarFile = ".vitepress/sidebar.json"
	}
	if len(c.Sections) == 0 {
		c.Sections = Default().Sections
	}

	// Configured names overlay the built-in watchlist map.
	names := DefaultStockNames()
	for code, name := range c.StockNames {
		names[code] = name
	}
	c.StockNames = names

	seen := make(map[string]bool, len(c.Sections))
	for i := range c.Sections {
		s := &c.Sections[i]
		if s.Key == "" {
			return fmt.Errorf("section %d: key is required", i)
		}
		if seen[s.Key] {
			return fmt.Errorf("duplicate section key: %s", s.Key)
		}
		seen[s.Key] = true

		if s.Title == "" {
			s.Title = s.Key
		}
		if s.Source == "" {
			s.Source = s.Key
		}
		if s.Dest == "" {
			s.Dest = s.Key
		}
		switch s.Layout {
		case "", "flat":
			s.Layout = "flat"
		case "nested":
		default:
			return fmt.Errorf("section %s: unknown layout %q", s.Key, s.Layout)
		}
	}
	return nil
}

// ReportSections converts the configured sections into domain values,
// applying the sidebar limit clamp.
func (c *Config) ReportSections() []domain.Section {
	out := make([]domain.Section, 0, len(c.Sections))
	for _, s := range c.Sections {
		layout := domain.LayoutFlat
		if s.Layout == "nested" {
			layout = domain.LayoutNested
		}
		out = append(out, domain.Section{
			Key:      s.Key,
			Title:    s.Title,
			Source:   s.Source,
			Dest:     s.Dest,
			Layout:   layout,
			NavLimit: domain.ClampNavLimit(s.NavLimit, layout),
		})
	}
	return out
}
