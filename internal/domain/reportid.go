package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// IDType represents the kind of report identifier encoded in a filename
type IDType int

const (
	IDTypeUnknown  IDType = iota
	IDTypeWeek            // 2026-W05 (ISO week)
	IDTypeDay             // 2026-01-29
	IDTypeMonthDay        // 01-29 (day file inside a month directory)
	IDTypeMonth           // 202601 (month directory)
)

func (t IDType) String() string {
	switch t {
	case IDTypeWeek:
		return "Week"
	case IDTypeDay:
		return "Day"
	case IDTypeMonthDay:
		return "MonthDay"
	case IDTypeMonth:
		return "Month"
	default:
		return "Unknown"
	}
}

var (
	weekRegex     = regexp.MustCompile(`^\d{4}-W\d{2}$`)
	dayRegex      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	monthDayRegex = regexp.MustCompile(`^\d{2}-\d{2}$`)
	monthRegex    = regexp.MustCompile(`^\d{6}$`)
)

// IndexName is the reserved basename for generated directory indexes.
// Files named index.md are never treated as reports.
const IndexName = "index"

// ParseIDType determines the kind of identifier a report name encodes
func ParseIDType(id string) IDType {
	id = strings.TrimSpace(id)

	switch {
	case weekRegex.MatchString(id):
		return IDTypeWeek
	case dayRegex.MatchString(id):
		return IDTypeDay
	case monthDayRegex.MatchString(id):
		return IDTypeMonthDay
	case monthRegex.MatchString(id):
		return IDTypeMonth
	default:
		return IDTypeUnknown
	}
}

// ValidateID checks if a string is a valid report identifier of the given kind
func ValidateID(idType IDType, id string) error {
	if ParseIDType(id) != idType {
		return fmt.Errorf("invalid %s ID: %s", idType, id)
	}
	return nil
}

// CompareID orders two report identifiers. All identifier kinds are
// zero padded, so plain lexicographic order is chronological order
// within a kind. Returns -1, 0 or 1 like strings.Compare.
func CompareID(a, b string) int {
	return strings.Compare(a, b)
}

// ISOWeekID formats the ISO week identifier for a point in time,
// e.g. 2026-01-29 -> "2026-W05"
func ISOWeekID(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// MonthKey formats the month directory name for a point in time,
// e.g. 2026-02-01 -> "202602"
func MonthKey(t time.Time) string {
	return t.Format("200601")
}

// DayKey formats the full day identifier, e.g. "2026-01-29"
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// MonthDayKey formats the month-relative day identifier, e.g. "01-29"
func MonthDayKey(t time.Time) string {
	return t.Format("01-02")
}

// ParseDay parses a YYYY-MM-DD date string
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// TaipeiNow returns the current time in the publishing timezone.
// Reports are dated in Asia/Taipei regardless of where the tool runs.
// Falls back to local time when zoneinfo is unavailable.
func TaipeiNow() time.Time {
	loc, err := time.LoadLocation("Asia/Taipei")
	if err != nil {
		return time.Now()
	}
	return time.Now().In(loc)
}
