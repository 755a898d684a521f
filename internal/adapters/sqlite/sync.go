package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/Davisanity-TW/stock-report/internal/domain"
)

// scannedFile is one markdown report discovered under the source root
type scannedFile struct {
	path    string // source-relative, slash separated (DB key)
	full    string // absolute path on disk
	section domain.Section
	month   string // month directory for nested sections
	id      string // filename without .md
	mtime   int64
	size    int64
}

// SyncFull performs a complete rebuild of the index
func (idx *Index) SyncFull() (*domain.IndexStats, error) {
	start := time.Now()
	stats := &domain.IndexStats{}

	files, err := idx.scanSources()
	if err != nil {
		return nil, err
	}

	err = idx.withTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM reports`); err != nil {
			return err
		}
		if _, err := tx.Exec(`DELETE FROM entries`); err != nil {
			return err
		}

		for _, f := range files {
			stats.FilesScanned++
			report, entries, err := buildReport(f)
			if err != nil {
				continue // unreadable file, skip
			}
			if err := upsertReport(tx, report); err != nil {
				return err
			}
			stats.ReportsAdded++
			for _, e := range entries {
				if err := insertEntry(tx, e); err != nil {
					return err
				}
				stats.EntriesAdded++
			}
		}
		return nil
	})
	if err != nil {
		return stats, err
	}

	idx.touchLastSync()

	stats.Duration = time.Since(start)
	return stats, nil
}

// SyncIncremental updates only files that changed since last sync
func (idx *Index) SyncIncremental() (*domain.IndexStats, error) {
	start := time.Now()
	stats := &domain.IndexStats{}

	// Get last sync time
	var lastSyncUnix int64
	idx.db.QueryRow(`SELECT value FROM meta WHERE key = 'last_sync_time'`).Scan(&lastSyncUnix)

	// Track existing paths to detect deletions
	existingPaths := make(map[string]bool)
	rows, err := idx.db.Query(`SELECT path FROM reports`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var p string
		rows.Scan(&p)
		existingPaths[p] = true
	}
	rows.Close()

	files, err := idx.scanSources()
	if err != nil {
		return nil, err
	}

	// Track paths seen during this scan
	seenPaths := make(map[string]bool)

	err = idx.withTx(func(tx *sql.Tx) error {
		for _, f := range files {
			seenPaths[f.path] = true
			stats.FilesScanned++

			needsUpdate := f.mtime > lastSyncUnix || !existingPaths[f.path]
			if !needsUpdate {
				continue
			}

			report, entries, err := buildReport(f)
			if err != nil {
				continue // unreadable file, skip
			}

			if existingPaths[f.path] {
				// Entries are re-derived from content, drop the old ones
				if err := deleteEntries(tx, f.path); err != nil {
					return err
				}
				stats.ReportsUpdated++
			} else {
				stats.ReportsAdded++
			}
			if err := upsertReport(tx, report); err != nil {
				return err
			}
			for _, e := range entries {
				if err := insertEntry(tx, e); err != nil {
					return err
				}
				stats.EntriesAdded++
			}
		}

		// Delete reports that no longer exist on disk
		for p := range existingPaths {
			if seenPaths[p] {
				continue
			}
			if err := deleteReport(tx, p); err != nil {
				return err
			}
			if err := deleteEntries(tx, p); err != nil {
				return err
			}
			stats.ReportsDeleted++
		}
		return nil
	})
	if err != nil {
		return stats, err
	}

	idx.touchLastSync()

	stats.Duration = time.Since(start)
	return stats, nil
}

// scanSources discovers every markdown report under the source root,
// one section at a time: flat sections read a single directory, nested
// sections read month directories one level down. A missing section
// directory means no data yet, not an error.
func (idx *Index) scanSources() ([]scannedFile, error) {
	var files []scannedFile

	for _, s := range idx.sections {
		base := filepath.Join(idx.sourceRoot, filepath.FromSlash(s.Source))
		entries, err := os.ReadDir(base)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to read section %s: %w", s.Key, err)
		}

		for _, entry := range entries {
			if entry.IsDir() {
				if s.Layout != domain.LayoutNested {
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
					if sf, ok := scan(base, s, month, f); ok {
						files = append(files, sf)
					}
				}
				continue
			}
			if s.Layout == domain.LayoutNested {
				continue // day files belong inside a month directory
			}
			if sf, ok := scan(base, s, "", entry); ok {
				files = append(files, sf)
			}
		}
	}

	return files, nil
}

// scan stats one directory entry and fills a scannedFile for it.
// Non-markdown files and the reserved index name are skipped.
func scan(base string, s domain.Section, month string, entry os.DirEntry) (scannedFile, bool) {
	name := entry.Name()
	if !strings.HasSuffix(name, ".md") {
		return scannedFile{}, false
	}
	id := strings.TrimSuffix(name, ".md")
	if id == domain.IndexName {
		return scannedFile{}, false
	}
	info, err := entry.Info()
	if err != nil {
		return scannedFile{}, false
	}

	return scannedFile{
		path:    path.Join(s.Source, month, name),
		full:    filepath.Join(base, filepath.FromSlash(month), name),
		section: s,
		month:   month,
		id:      id,
		mtime:   info.ModTime().Unix(),
		size:    info.Size(),
	}, true
}

// buildReport reads a scanned file and derives its index row: the title
// is the first level-1 heading, the entries are the dated section headers.
func buildReport(f scannedFile) (*domain.IndexedReport, []domain.DailyEntry, error) {
	data, err := os.ReadFile(f.full)
	if err != nil {
		return nil, nil, err
	}

	var title string
	var entries []domain.DailyEntry
	for _, line := range strings.Split(string(data), "\n") {
		if title == "" && strings.HasPrefix(line, "# ") {
			title = strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
		if date, ok := domain.MatchDailyHeader(line); ok {
			entries = append(entries, domain.DailyEntry{
				ReportPath: f.path,
				Date:       date,
				Heading:    strings.TrimSpace(line),
			})
		}
	}

	report := &domain.IndexedReport{
		Path:    f.path,
		Section: f.section.Key,
		ID:      f.id,
		IDKind:  f.section.Classify(f.month, f.id),
		Title:   title,
		Mtime:   f.mtime,
		Size:    f.size,
	}
	return report, entries, nil
}

// touchLastSync records the sync time used by the next incremental pass
func (idx *Index) touchLastSync() {
	idx.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('last_sync_time', ?)`,
		time.Now().Unix())
}
