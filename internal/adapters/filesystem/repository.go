package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Davisanity-TW/stock-report/internal/domain"
)

// Repository implements ports.ReportRepository against the source tree
type Repository struct {
	root     string
	sections []domain.Section
}

// NewRepository creates a new filesystem repository rooted at the source
// tree (typically reports/)
func NewRepository(root string, sections []domain.Section) *Repository {
	// Expand ~ to home directory
	if strings.HasPrefix(root, "~") {
		home, _ := os.UserHomeDir()
		root = filepath.Join(home, root[1:])
	}
	return &Repository{root: root, sections: sections}
}

// Root returns the resolved source root
func (r *Repository) Root() string {
	return r.root
}

func (r *Repository) sectionDir(s domain.Section) string {
	return filepath.Join(r.root, filepath.FromSlash(s.Source))
}

// ListReports returns all markdown reports of a section, sorted ascending.
// A missing section directory yields an empty list, not an error.
func (r *Repository) ListReports(s domain.Section) ([]domain.Report, error) {
	reports, err := listReports(r.sectionDir(s), s)
	if err != nil {
		return nil, err
	}
	domain.SortReports(reports)
	return reports, nil
}

// Latest returns the most recent well-formed report of a section
func (r *Repository) Latest(s domain.Section) (domain.Latest, error) {
	reports, err := r.ListReports(s)
	if err != nil {
		return domain.Latest{}, err
	}
	return domain.LatestOf(reports), nil
}

// ReportPath resolves a report id to its file path. Nested sections use
// month qualified ids ("202602/02-01").
func (r *Repository) ReportPath(s domain.Section, id string) (string, error) {
	var month, name string
	if s.Layout == domain.LayoutNested {
		var ok bool
		month, name, ok = strings.Cut(id, "/")
		if !ok {
			return "", fmt.Errorf("nested report id must be month qualified (YYYYMM/DD-MM): %s", id)
		}
	} else {
		name = id
	}
	if s.Classify(month, name) == domain.IDTypeUnknown {
		return "", fmt.Errorf("invalid report id for section %s: %s", s.Key, id)
	}

	path := filepath.Join(r.sectionDir(s), filepath.FromSlash(month), name+".md")
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("report not found: %s/%s", s.Key, id)
		}
		return "", fmt.Errorf("failed to stat report: %w", err)
	}
	return path, nil
}

// ReadReport returns the markdown content of a report
func (r *Repository) ReadReport(s domain.Section, id string) (string, error) {
	path, err := r.ReportPath(s, id)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read report: %w", err)
	}
	return string(data), nil
}

// Search matches report names and content lines across all sections.
// Name matches come first; content matches carry the first matching line.
func (r *Repository) Search(query string) ([]domain.SearchResult, error) {
	query = strings.ToLower(query)
	var results []domain.SearchResult

	for _, s := range r.sections {
		reports, err := r.ListReports(s)
		if err != nil {
			return nil, err
		}
		for _, rep := range reports {
			if strings.Contains(strings.ToLower(rep.ID), query) ||
				(rep.Month != "" && strings.Contains(strings.ToLower(rep.Month), query)) {
				results = append(results, domain.SearchResult{
					Report:      rep,
					MatchedText: rep.ID,
					NameMatch:   true,
				})
				continue
			}

			data, err := os.ReadFile(rep.Path)
			if err != nil {
				continue // deleted between listing and read
			}
			for _, line := range strings.Split(string(data), "\n") {
				if strings.Contains(strings.ToLower(line), query) {
					results = append(results, domain.SearchResult{
						Report:      rep,
						MatchedText: strings.TrimSpace(line),
					})
					break
				}
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].NameMatch != results[j].NameMatch {
			return results[i].NameMatch
		}
		return false
	})
	return results, nil
}

// weekFile resolves the weekly report file a date falls into. Only flat
// sections hold weekly files.
func (r *Repository) weekFile(s domain.Section, day time.Time) (string, string, error) {
	if s.Layout != domain.LayoutFlat {
		return "", "", fmt.Errorf("section %s does not hold weekly files", s.Key)
	}
	weekID := domain.ISOWeekID(day)
	return filepath.Join(r.sectionDir(s), weekID+".md"), weekID, nil
}

// ensureWeekFile creates the weekly file with its title heading when absent
func (r *Repository) ensureWeekFile(s domain.Section, path, weekID string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat week file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create section directory: %w", err)
	}
	heading := domain.WeekHeading(s.Title, weekID)
	if err := os.WriteFile(path, []byte(heading), 0644); err != nil {
		return fmt.Errorf("failed to create week file: %w", err)
	}
	return nil
}

// AppendEntry appends a dated entry to the week file for day, creating
// the file when needed. Returns the path written.
func (r *Repository) AppendEntry(s domain.Section, day time.Time, body string) (string, error) {
	path, weekID, err := r.weekFile(s, day)
	if err != nil {
		return "", err
	}
	if err := r.ensureWeekFile(s, path, weekID); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read week file: %w", err)
	}
	updated := domain.AppendEntry(string(data), day, body)
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		return "", fmt.Errorf("failed to write week file: %w", err)
	}
	return path, nil
}

// UpsertDailySection inserts or replaces the daily section for day in its
// week file, creating the file when needed. Returns the path written.
func (r *Repository) UpsertDailySection(s domain.Section, day time.Time, block string) (string, error) {
	path, weekID, err := r.weekFile(s, day)
	if err != nil {
		return "", err
	}
	if err := r.ensureWeekFile(s, path, weekID); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read week file: %w", err)
	}
	updated, err := domain.UpsertDailySection(string(data), domain.DayKey(day), block)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		return "", fmt.Errorf("failed to write week file: %w", err)
	}
	return path, nil
}

// ReplaceDailyTable swaps the watchlist table inside the daily section
// for day. The week file must already exist; the table refresh never
// creates reports on its own.
func (r *Repository) ReplaceDailyTable(s domain.Section, day time.Time, table string) (string, error) {
	path, _, err := r.weekFile(s, day)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("week file not found: %s", path)
		}
		return "", fmt.Errorf("failed to read week file: %w", err)
	}
	updated, err := domain.ReplaceDailyTable(string(data), domain.DayKey(day), table)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		return "", fmt.Errorf("failed to write week file: %w", err)
	}
	return path, nil
}

// listReports is the one traversal both the repository and the publisher
// use: flat sections read a single directory, nested sections read month
// directories one level down. The reserved index name is never listed.
func listReports(base string, s domain.Section) ([]domain.Report, error) {
	entries, err := os.ReadDir(base)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read section %s: %w", s.Key, err)
	}

	var reports []domain.Report
	if s.Layout == domain.LayoutNested {
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			month := entry.Name()
			sub, err := os.ReadDir(filepath.Join(base, month))
			if err != nil {
				return nil, fmt.Errorf("failed to read month %s: %w", month, err)
			}
			for _, f := range sub {
				if f.IsDir() {
					continue
				}
				id, ok := markdownID(f.Name())
				if !ok {
					continue
				}
				reports = append(reports, domain.Report{
					Section: s.Key,
					ID:      id,
					Month:   month,
					Path:    filepath.Join(base, month, f.Name()),
					Type:    s.Classify(month, id),
				})
			}
		}
		return reports, nil
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		id, ok := markdownID(entry.Name())
		if !ok {
			continue
		}
		reports = append(reports, domain.Report{
			Section: s.Key,
			ID:      id,
			Path:    filepath.Join(base, entry.Name()),
			Type:    s.Classify("", id),
		})
	}
	return reports, nil
}

// markdownID strips the .md extension and filters out the reserved index
func markdownID(name string) (string, bool) {
	if !strings.HasSuffix(name, ".md") {
		return "", false
	}
	id := strings.TrimSuffix(name, ".md")
	if id == domain.IndexName {
		return "", false
	}
	return id, true
}
