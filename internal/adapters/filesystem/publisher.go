package filesystem

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Davisanity-TW/stock-report/internal/domain"
)

// Publisher implements ports.SitePublisher. Each section sync builds a
// complete staged copy next to the destination and swaps it in with two
// renames, so readers of the site tree never observe a half-mirrored
// section and a failed run leaves the old tree in place.
type Publisher struct {
	sourceRoot  string
	siteRoot    string
	sidebarFile string
}

// NewPublisher creates a publisher mirroring sourceRoot into siteRoot.
// sidebarFile is relative to siteRoot.
func NewPublisher(sourceRoot, siteRoot, sidebarFile string) *Publisher {
	return &Publisher{sourceRoot: sourceRoot, siteRoot: siteRoot, sidebarFile: sidebarFile}
}

// HomePath returns where the generated home page lives
func (p *Publisher) HomePath() string {
	return filepath.Join(p.siteRoot, domain.IndexName+".md")
}

// SidebarPath returns where the generated sidebar config lives
func (p *Publisher) SidebarPath() string {
	return filepath.Join(p.siteRoot, filepath.FromSlash(p.sidebarFile))
}

// SyncSection mirrors one section into the site tree. Markdown is owned
// by the source (stale files disappear, malformed names are copied but
// flagged); anything that is not markdown is carried over untouched.
func (p *Publisher) SyncSection(s domain.Section) (*domain.SyncResult, error) {
	src := filepath.Join(p.sourceRoot, filepath.FromSlash(s.Source))
	dst := filepath.Join(p.siteRoot, filepath.FromSlash(s.Dest))

	if _, err := os.Stat(src); err != nil {
		if os.IsNotExist(err) {
			// no data yet for this section
			return &domain.SyncResult{Section: s.Key, Skipped: true}, nil
		}
		return nil, fmt.Errorf("failed to stat source %s: %w", src, err)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return nil, fmt.Errorf("failed to create site root: %w", err)
	}
	stage, err := os.MkdirTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".stage-")
	if err != nil {
		return nil, fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer os.RemoveAll(stage)
	if err := os.Chmod(stage, 0755); err != nil {
		return nil, fmt.Errorf("failed to chmod staging directory: %w", err)
	}

	result := &domain.SyncResult{Section: s.Key}

	if err := p.carryOver(dst, stage, s.Layout, result); err != nil {
		return nil, err
	}
	if err := p.copyReports(src, stage, s, result); err != nil {
		return nil, err
	}
	if err := p.writeIndexes(stage, s); err != nil {
		return nil, err
	}

	if err := swapDirs(stage, dst); err != nil {
		return nil, err
	}
	return result, nil
}

// carryOver copies everything the mirror does not own from the current
// destination into the stage: non-markdown files always, and in flat
// mode whole subdirectories (a flat sync never reaches below the section
// directory, so markdown there is not stale).
func (p *Publisher) carryOver(dst, stage string, layout domain.Layout, result *domain.SyncResult) error {
	if _, err := os.Stat(dst); os.IsNotExist(err) {
		return nil
	}
	return filepath.WalkDir(dst, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dst, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		if d.IsDir() {
			return os.MkdirAll(filepath.Join(stage, rel), 0755)
		}
		if isMarkdown(d.Name()) {
			inSubdir := filepath.Dir(rel) != "."
			if layout == domain.LayoutNested || !inSubdir {
				return nil // owned by the mirror, regenerated from source
			}
		}
		if err := copyFile(path, filepath.Join(stage, rel)); err != nil {
			return err
		}
		result.Preserved++
		return nil
	})
}

// copyReports copies the section's markdown from the source tree into the
// stage, flagging names that fail the section grammar. Flagged files are
// still mirrored (they only stay out of latest links and navigation),
// except day files sitting outside a month directory in a nested section,
// which have no slot in the destination layout.
func (p *Publisher) copyReports(src, stage string, s domain.Section, result *domain.SyncResult) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("failed to read source %s: %w", src, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			if s.Layout != domain.LayoutNested {
				continue // flat sync does not descend
			}
			month := entry.Name()
			if err := p.copyMonth(src, stage, month, s, result); err != nil {
				return err
			}
			continue
		}
		id, ok := markdownID(entry.Name())
		if !ok {
			continue
		}
		if s.Layout == domain.LayoutNested {
			// day files belong inside a month directory
			result.Flagged = append(result.Flagged, entry.Name())
			continue
		}
		if s.Classify("", id) == domain.IDTypeUnknown {
			result.Flagged = append(result.Flagged, entry.Name())
		}
		if err := copyFile(filepath.Join(src, entry.Name()), filepath.Join(stage, entry.Name())); err != nil {
			return err
		}
		result.Copied++
	}
	return nil
}

func (p *Publisher) copyMonth(src, stage, month string, s domain.Section, result *domain.SyncResult) error {
	entries, err := os.ReadDir(filepath.Join(src, month))
	if err != nil {
		return fmt.Errorf("failed to read month %s: %w", month, err)
	}
	if err := os.MkdirAll(filepath.Join(stage, month), 0755); err != nil {
		return fmt.Errorf("failed to create month directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		id, ok := markdownID(entry.Name())
		if !ok {
			continue
		}
		if s.Classify(month, id) == domain.IDTypeUnknown {
			result.Flagged = append(result.Flagged, month+"/"+entry.Name())
		}
		if err := copyFile(filepath.Join(src, month, entry.Name()), filepath.Join(stage, month, entry.Name())); err != nil {
			return err
		}
		result.Copied++
	}
	return nil
}

// writeIndexes drops the index.md placeholder into the staged section
// directory and, for nested sections, into every month directory.
func (p *Publisher) writeIndexes(stage string, s domain.Section) error {
	index := filepath.Join(stage, domain.IndexName+".md")
	if err := os.WriteFile(index, []byte(domain.IndexPlaceholder(s.Title)), 0644); err != nil {
		return fmt.Errorf("failed to write index placeholder: %w", err)
	}
	if s.Layout != domain.LayoutNested {
		return nil
	}

	entries, err := os.ReadDir(stage)
	if err != nil {
		return fmt.Errorf("failed to read stage: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		month := entry.Name()
		index := filepath.Join(stage, month, domain.IndexName+".md")
		content := domain.IndexPlaceholder(s.Title + " " + month)
		if err := os.WriteFile(index, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write month index: %w", err)
		}
	}
	return nil
}

// SiteReports lists the published reports of a section
func (p *Publisher) SiteReports(s domain.Section) ([]domain.Report, error) {
	base := filepath.Join(p.siteRoot, filepath.FromSlash(s.Dest))
	reports, err := listReports(base, s)
	if err != nil {
		return nil, err
	}
	domain.SortReports(reports)
	return reports, nil
}

// WriteHome replaces the site home page
func (p *Publisher) WriteHome(content string) error {
	if err := os.MkdirAll(p.siteRoot, 0755); err != nil {
		return fmt.Errorf("failed to create site root: %w", err)
	}
	if err := os.WriteFile(p.HomePath(), []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write home page: %w", err)
	}
	return nil
}

// WriteSidebar replaces the generated sidebar config
func (p *Publisher) WriteSidebar(data []byte) error {
	path := p.SidebarPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create sidebar directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write sidebar: %w", err)
	}
	return nil
}

// swapDirs promotes the staged tree to dst. The old tree moves aside
// first so a failure between the renames can be rolled back.
func swapDirs(stage, dst string) error {
	if _, err := os.Stat(dst); os.IsNotExist(err) {
		return os.Rename(stage, dst)
	}

	old := dst + ".old"
	os.RemoveAll(old) // leftover from an interrupted run
	if err := os.Rename(dst, old); err != nil {
		return fmt.Errorf("failed to move old tree aside: %w", err)
	}
	if err := os.Rename(stage, dst); err != nil {
		os.Rename(old, dst) // roll back
		return fmt.Errorf("failed to swap in staged tree: %w", err)
	}
	os.RemoveAll(old)
	return nil
}

func isMarkdown(name string) bool {
	return filepath.Ext(name) == ".md"
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	return out.Close()
}
