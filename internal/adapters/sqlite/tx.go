package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/Davisanity-TW/stock-report/internal/domain"
)

// withTx runs fn inside a transaction. Both sync paths batch their row
// writes this way so a failed sync never leaves the index half-updated.
func (idx *Index) withTx(fn func(*sql.Tx) error) error {
	tx, err := idx.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// upsertReport inserts or replaces a report row
func upsertReport(tx *sql.Tx, r *domain.IndexedReport) error {
	_, err := tx.Exec(`
		INSERT OR REPLACE INTO reports (path, section, report_id, id_kind, title, mtime, size)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, r.Path, r.Section, r.ID, nullString(r.IDKind.String()), nullString(r.Title), r.Mtime, r.Size)
	return err
}

// deleteReport removes a report row by path
func deleteReport(tx *sql.Tx, path string) error {
	_, err := tx.Exec(`DELETE FROM reports WHERE path = ?`, path)
	return err
}

// insertEntry adds a daily entry row. A date that repeats inside one
// file keeps only its last header.
func insertEntry(tx *sql.Tx, e domain.DailyEntry) error {
	_, err := tx.Exec(`
		INSERT OR REPLACE INTO entries (report_path, date, heading)
		VALUES (?, ?, ?)
	`, e.ReportPath, e.Date, e.Heading)
	return err
}

// deleteEntries removes all daily entries derived from a report
func deleteEntries(tx *sql.Tx, reportPath string) error {
	_, err := tx.Exec(`DELETE FROM entries WHERE report_path = ?`, reportPath)
	return err
}

// nullString returns nil for empty strings (for nullable columns)
func nullString(s string) interface{} {
	if s == "" || s == "Unknown" {
		return nil
	}
	return s
}
