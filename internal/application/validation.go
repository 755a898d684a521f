package application

import (
	"fmt"
	"strings"
	"time"

	"github.com/Davisanity-TW/stock-report/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		// Format field name with spaces for error message (e.g., "sectionKey" -> "section key")
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "sectionKey" -> "section key")
func formatFieldName(fieldName string) string {
	// Handle common patterns directly
	replacements := map[string]string{
		"sectionKey": "section key",
		"reportID":   "report ID",
		"body":       "entry body",
		"block":      "section block",
		"table":      "table",
		"query":      "query",
		"date":       "date",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	// Fallback: just return the field name as-is
	return fieldName
}

// ValidateDate parses an optional YYYY-MM-DD value. Empty means today
// in Taipei time, where the publishing pipeline runs.
func ValidateDate(fieldName, value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return domain.TaipeiNow(), nil
	}
	day, err := domain.ParseDay(value)
	if err != nil {
		return time.Time{}, &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("expected YYYY-MM-DD, got: %s", value),
		}
	}
	return day, nil
}

// ValidateSection resolves a section key against the configured sections.
// Returns a ValidationError when the key is empty or unknown.
func ValidateSection(sections []domain.Section, key string) (domain.Section, error) {
	if err := ValidateRequired("sectionKey", key); err != nil {
		return domain.Section{}, err
	}
	s, ok := domain.FindSection(sections, key)
	if !ok {
		return domain.Section{}, &ValidationError{
			Field:   "sectionKey",
			Message: fmt.Sprintf("unknown section: %s", key),
		}
	}
	return s, nil
}

// ValidateWeeklySection resolves a section key and requires a flat layout,
// the only layout holding weekly files.
func ValidateWeeklySection(sections []domain.Section, key string) (domain.Section, error) {
	s, err := ValidateSection(sections, key)
	if err != nil {
		return domain.Section{}, err
	}
	if s.Layout != domain.LayoutFlat {
		return domain.Section{}, &SectionError{
			Key:    key,
			Reason: "nested sections do not hold weekly files",
		}
	}
	return s, nil
}
