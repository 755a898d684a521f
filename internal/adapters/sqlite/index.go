package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Davisanity-TW/stock-report/internal/domain"
	"github.com/Davisanity-TW/stock-report/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

const schemaVersion = "1"

// Index implements ports.ReportIndex using SQLite
type Index struct {
	db         *sql.DB
	sourceRoot string
	dbPath     string
	sections   []domain.Section
}

// Ensure Index implements ReportIndex
var _ ports.ReportIndex = (*Index)(nil)

// NewIndex creates a new SQLite report index covering the given sections
func NewIndex(sections []domain.Section) *Index {
	return &Index{sections: sections}
}

// Open initializes the index for the given source root
func (idx *Index) Open(sourceRoot string) error {
	// Expand ~ in path
	if len(sourceRoot) > 0 && sourceRoot[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		sourceRoot = filepath.Join(home, sourceRoot[1:])
	}

	idx.sourceRoot = sourceRoot
	idx.dbPath = databasePath(sourceRoot)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(idx.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite3", idx.dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA cache_size = -64000;
		PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS reports (
			path TEXT PRIMARY KEY,
			section TEXT NOT NULL,
			report_id TEXT NOT NULL,
			id_kind TEXT,
			title TEXT,
			mtime INTEGER NOT NULL,
			size INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS entries (
			report_path TEXT NOT NULL,
			date TEXT NOT NULL,
			heading TEXT NOT NULL,
			PRIMARY KEY (report_path, date)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_reports_section ON reports(section);
		CREATE INDEX IF NOT EXISTS idx_entries_date ON entries(date);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	// Update metadata
	if err := idx.updateMeta(); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// NeedsFullRebuild returns true if the index should be fully rebuilt
func (idx *Index) NeedsFullRebuild() bool {
	var version, sourceHash string

	idx.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&version)
	idx.db.QueryRow("SELECT value FROM meta WHERE key = 'source_path_hash'").Scan(&sourceHash)

	expectedHash := hashSourcePath(idx.sourceRoot)

	return version != schemaVersion || sourceHash != expectedHash
}

// databasePath returns the path for the SQLite database
func databasePath(sourceRoot string) string {
	// XDG data directory
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}

	// Hash source root for unique DB name
	hash := hashSourcePath(sourceRoot)

	return filepath.Join(dataHome, "stock-report", hash+".db")
}

// hashSourcePath returns a short hash of the source root
func hashSourcePath(sourceRoot string) string {
	h := sha256.Sum256([]byte(sourceRoot))
	return hex.EncodeToString(h[:8]) // First 8 bytes = 16 hex chars
}

// updateMeta updates the schema version and source path hash
func (idx *Index) updateMeta() error {
	if _, err := idx.db.Exec(
		`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`,
		schemaVersion,
	); err != nil {
		return err
	}
	_, err := idx.db.Exec(
		`INSERT OR REPLACE INTO meta (key, value) VALUES ('source_path_hash', ?)`,
		hashSourcePath(idx.sourceRoot),
	)
	return err
}

// GetReport retrieves an indexed report by its source-relative path
func (idx *Index) GetReport(path string) (*domain.IndexedReport, error) {
	var report domain.IndexedReport
	var kind, title sql.NullString

	err := idx.db.QueryRow(`
		SELECT path, section, report_id, id_kind, title, mtime, size
		FROM reports WHERE path = ?
	`, path).Scan(&report.Path, &report.Section, &report.ID, &kind, &title, &report.Mtime, &report.Size)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	report.IDKind = kindFromName(kind.String)
	report.Title = title.String

	return &report, nil
}

// ListSection returns the indexed reports of one section, ordered by path
func (idx *Index) ListSection(section string) ([]domain.IndexedReport, error) {
	rows, err := idx.db.Query(`
		SELECT path, section, report_id, id_kind, title, mtime, size
		FROM reports WHERE section = ? ORDER BY path
	`, section)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []domain.IndexedReport
	for rows.Next() {
		var report domain.IndexedReport
		var kind, title sql.NullString
		if err := rows.Scan(&report.Path, &report.Section, &report.ID, &kind, &title, &report.Mtime, &report.Size); err != nil {
			return nil, err
		}
		report.IDKind = kindFromName(kind.String)
		report.Title = title.String
		reports = append(reports, report)
	}

	return reports, rows.Err()
}

// EntriesOn returns every daily entry header written for a date, across
// all weekly files that mention it
func (idx *Index) EntriesOn(date string) ([]domain.DailyEntry, error) {
	rows, err := idx.db.Query(`
		SELECT report_path, date, heading
		FROM entries WHERE date = ? ORDER BY report_path
	`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.DailyEntry
	for rows.Next() {
		var e domain.DailyEntry
		if err := rows.Scan(&e.ReportPath, &e.Date, &e.Heading); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// kindFromName maps the stored id_kind column back to its IDType.
// The column holds IDType.String() values; NULL means unknown.
func kindFromName(name string) domain.IDType {
	switch name {
	case "Week":
		return domain.IDTypeWeek
	case "Day":
		return domain.IDTypeDay
	case "MonthDay":
		return domain.IDTypeMonthDay
	case "Month":
		return domain.IDTypeMonth
	default:
		return domain.IDTypeUnknown
	}
}
