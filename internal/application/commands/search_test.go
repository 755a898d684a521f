package commands

import (
	"context"
	"strings"
	"testing"

	"github.com/Davisanity-TW/stock-report/internal/domain"
)

func TestFuzzyScore(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		query     string
		wantScore int
		wantMin   int // use this for relative comparisons
	}{
		{
			name:      "exact match",
			target:    "2026-W05",
			query:     "2026-W05",
			wantScore: 150, // 100 for contains + 50 for prefix
		},
		{
			name:      "prefix match",
			target:    "2026-W05",
			query:     "2026",
			wantScore: 150, // 100 for contains + 50 for prefix
		},
		{
			name:      "substring match",
			target:    "2026-W05",
			query:     "W05",
			wantScore: 100, // contains only
		},
		{
			name:      "no match",
			target:    "2026-W05",
			query:     "xyz",
			wantScore: 0,
		},
		{
			name:      "empty query",
			target:    "2026-W05",
			query:     "",
			wantScore: 0,
		},
		{
			name:    "case insensitive",
			target:  "2026-W05",
			query:   "w05",
			wantMin: 100,
		},
		{
			name:    "fuzzy chars in order",
			target:  "2026-W05",
			query:   "26W5",
			wantMin: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := FuzzyScore(tt.target, tt.query)

			if tt.wantScore > 0 {
				if score != tt.wantScore {
					t.Errorf("expected score %d, got %d", tt.wantScore, score)
				}
			} else if tt.wantMin > 0 {
				if score < tt.wantMin {
					t.Errorf("expected score >= %d, got %d", tt.wantMin, score)
				}
			} else {
				if score != 0 {
					t.Errorf("expected score 0, got %d", score)
				}
			}
		})
	}
}

func TestFuzzySort(t *testing.T) {
	results := []domain.SearchResult{
		{Report: domain.Report{Section: "tw", ID: "2025-W12"}, MatchedText: "台積電法說會"},
		{Report: domain.Report{Section: "tw", ID: "2026-W05"}, MatchedText: "2026-W05", NameMatch: true},
		{Report: domain.Report{Section: "us", ID: "2026-W01"}, MatchedText: "不相關內容"},
	}

	sorted := FuzzySort(results, "2026-W05")

	if len(sorted) == 0 {
		t.Fatal("expected at least one scored result")
	}
	if sorted[0].ID != "2026-W05" {
		t.Errorf("best match = %s, want 2026-W05", sorted[0].ID)
	}
	for _, r := range sorted {
		if r.Score <= 0 {
			t.Errorf("result %s kept with score %d", r.ID, r.Score)
		}
	}
}

func TestFuzzySort_MatchesMonthDirectory(t *testing.T) {
	results := []domain.SearchResult{
		{Report: domain.Report{Section: "moltbook", ID: "02-01", Month: "202602"}, MatchedText: "精選"},
	}

	sorted := FuzzySort(results, "202602")
	if len(sorted) != 1 {
		t.Fatalf("expected month directory to match, got %d results", len(sorted))
	}
}

func TestSearchCommand_ShortQuery(t *testing.T) {
	cmd := NewSearchCommand(nil, "a")
	results, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results != nil {
		t.Errorf("single-character query should return nothing, got %d results", len(results))
	}
}

func containsMsg(err error, msg string) bool {
	return err != nil && strings.Contains(err.Error(), msg)
}
