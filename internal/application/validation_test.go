package application

import (
	"errors"
	"strings"
	"testing"

	"github.com/Davisanity-TW/stock-report/internal/domain"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		wantErr bool
		errMsg  string
	}{
		{
			name:  "non-empty value",
			field: "sectionKey",
			value: "tw",
		},
		{
			name:    "empty value",
			field:   "sectionKey",
			value:   "",
			wantErr: true,
			errMsg:  "section key is required",
		},
		{
			name:    "whitespace only",
			field:   "body",
			value:   "   \n\t",
			wantErr: true,
			errMsg:  "entry body is required",
		},
		{
			name:    "unmapped field name used as-is",
			field:   "somethingElse",
			value:   "",
			wantErr: true,
			errMsg:  "somethingElse is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.field, tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errMsg)
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateDate(t *testing.T) {
	day, err := ValidateDate("date", "2026-01-29")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if domain.DayKey(day) != "2026-01-29" {
		t.Errorf("parsed day = %s", domain.DayKey(day))
	}

	if _, err := ValidateDate("date", "01/29/2026"); err == nil {
		t.Error("expected error for non-ISO date")
	}

	// empty date defaults to today
	today, err := ValidateDate("date", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if today.IsZero() {
		t.Error("empty date should default to now")
	}
}

func TestValidateSection(t *testing.T) {
	sections := []domain.Section{
		{Key: "tw", Layout: domain.LayoutFlat},
		{Key: "moltbook", Layout: domain.LayoutNested},
	}

	s, err := ValidateSection(sections, "tw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Key != "tw" {
		t.Errorf("resolved section = %s", s.Key)
	}

	if _, err := ValidateSection(sections, "jp"); err == nil {
		t.Error("expected error for unknown section")
	}
	if _, err := ValidateSection(sections, ""); err == nil {
		t.Error("expected error for empty key")
	}
}

func TestValidateWeeklySection(t *testing.T) {
	sections := []domain.Section{
		{Key: "tw", Layout: domain.LayoutFlat},
		{Key: "moltbook", Layout: domain.LayoutNested},
	}

	if _, err := ValidateWeeklySection(sections, "tw"); err != nil {
		t.Errorf("flat section should be accepted: %v", err)
	}

	_, err := ValidateWeeklySection(sections, "moltbook")
	if err == nil {
		t.Fatal("expected error for nested section")
	}
	if !errors.Is(err, ErrInvalidSection) {
		t.Errorf("expected ErrInvalidSection, got %v", err)
	}
}
