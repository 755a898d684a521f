package views

import (
	"strings"
	"testing"

	"github.com/Davisanity-TW/stock-report/internal/domain"
)

func flatSection() domain.Section {
	return domain.Section{
		Key:      "tw",
		Title:    "台股週報",
		Source:   "tw",
		Dest:     "tw",
		Layout:   domain.LayoutFlat,
		NavLimit: 20,
	}
}

func nestedSection() domain.Section {
	return domain.Section{
		Key:      "moltbook",
		Title:    "Moltbook 精選",
		Source:   "moltbook/reports",
		Dest:     "moltbook",
		Layout:   domain.LayoutNested,
		NavLimit: 62,
	}
}

func weekReport(s domain.Section, id string) domain.Report {
	return domain.Report{
		Section: s.Key,
		ID:      id,
		Path:    "reports/" + s.Source + "/" + id + ".md",
		Type:    s.Classify("", id),
	}
}

func dayReport(s domain.Section, month, id string) domain.Report {
	return domain.Report{
		Section: s.Key,
		ID:      id,
		Month:   month,
		Path:    "reports/" + s.Source + "/" + month + "/" + id + ".md",
		Type:    s.Classify(month, id),
	}
}

func TestBuildRows_CollapsedSectionsShowHeadersOnly(t *testing.T) {
	sections := []domain.Section{flatSection(), nestedSection()}

	rows := buildRows(sections, nil, map[string]bool{})

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if row.kind != rowSection {
			t.Errorf("row %d: expected section row, got kind %d", i, row.kind)
		}
	}
	if rows[0].section.Key != "tw" || rows[1].section.Key != "moltbook" {
		t.Errorf("sections out of config order: %s, %s", rows[0].section.Key, rows[1].section.Key)
	}
}

func TestBuildRows_FlatSectionNewestFirst(t *testing.T) {
	tw := flatSection()
	reports := map[string][]domain.Report{
		"tw": {
			weekReport(tw, "2026-W04"),
			weekReport(tw, "2026-W05"),
			weekReport(tw, "scratch"),
		},
	}
	expanded := map[string]bool{"tw": true}

	rows := buildRows([]domain.Section{tw}, reports, expanded)

	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if rows[0].kind != rowSection {
		t.Fatalf("expected section header first")
	}
	if rows[1].report.ID != "2026-W05" || rows[2].report.ID != "2026-W04" {
		t.Errorf("expected newest first, got %s then %s", rows[1].report.ID, rows[2].report.ID)
	}
	if !rows[1].latest {
		t.Error("2026-W05 should carry the latest mark")
	}
	if rows[2].latest {
		t.Error("2026-W04 should not carry the latest mark")
	}
	if rows[3].report.ID != "scratch" {
		t.Errorf("malformed name should sort last, got %s", rows[3].report.ID)
	}
	if rows[3].report.Valid() {
		t.Error("scratch should be flagged as malformed")
	}
}

func TestBuildRows_ExpandedButUnloadedSection(t *testing.T) {
	tw := flatSection()
	expanded := map[string]bool{"tw": true}

	rows := buildRows([]domain.Section{tw}, map[string][]domain.Report{}, expanded)

	if len(rows) != 1 {
		t.Fatalf("expected header only while the listing loads, got %d rows", len(rows))
	}
}

func TestBuildRows_NestedMonthsDescending(t *testing.T) {
	mb := nestedSection()
	reports := map[string][]domain.Report{
		"moltbook": {
			dayReport(mb, "202601", "01-29"),
			dayReport(mb, "202602", "02-01"),
			dayReport(mb, "202602", "02-02"),
		},
	}
	expanded := map[string]bool{
		"moltbook":        true,
		"moltbook/202602": true,
	}

	rows := buildRows([]domain.Section{mb}, reports, expanded)

	// section, month 202602 (expanded: 02-02, 02-01), month 202601 (collapsed)
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}
	if rows[1].kind != rowMonth || rows[1].month != "202602" {
		t.Errorf("expected month 202602 first, got %q", rows[1].month)
	}
	if rows[2].report.ID != "02-02" || rows[3].report.ID != "02-01" {
		t.Errorf("expected days newest first, got %s then %s", rows[2].report.ID, rows[3].report.ID)
	}
	if !rows[2].latest {
		t.Error("202602/02-02 should carry the latest mark")
	}
	if rows[4].kind != rowMonth || rows[4].month != "202601" {
		t.Errorf("expected collapsed month 202601 last, got kind %d %q", rows[4].kind, rows[4].month)
	}
}

func TestBuildRows_CollapsedMonthHidesReports(t *testing.T) {
	mb := nestedSection()
	reports := map[string][]domain.Report{
		"moltbook": {dayReport(mb, "202601", "01-29")},
	}
	expanded := map[string]bool{"moltbook": true}

	rows := buildRows([]domain.Section{mb}, reports, expanded)

	if len(rows) != 2 {
		t.Fatalf("expected section and month rows only, got %d", len(rows))
	}
	if rows[1].kind != rowMonth {
		t.Errorf("expected month row, got kind %d", rows[1].kind)
	}
}

func TestMonthKeys(t *testing.T) {
	mb := nestedSection()
	list := []domain.Report{
		dayReport(mb, "202601", "01-29"),
		dayReport(mb, "202602", "02-01"),
		dayReport(mb, "202601", "01-30"),
	}

	months := monthKeys(list)

	if len(months) != 2 {
		t.Fatalf("expected 2 distinct months, got %d", len(months))
	}
	if months[0] != "202602" || months[1] != "202601" {
		t.Errorf("expected months newest first, got %v", months)
	}
}

func TestSortedReports_FlaggedSinkToEnd(t *testing.T) {
	tw := flatSection()
	list := []domain.Report{
		weekReport(tw, "notes"),
		weekReport(tw, "2026-W03"),
		weekReport(tw, "2026-W10"),
		weekReport(tw, "draft"),
	}

	sorted := sortedReports(list, "")

	want := []string{"2026-W10", "2026-W03", "draft", "notes"}
	for i, id := range want {
		if sorted[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, sorted[i].ID, id)
		}
	}
}

func TestRowDepth(t *testing.T) {
	tw := flatSection()
	mb := nestedSection()

	tests := []struct {
		name string
		row  browserRow
		want int
	}{
		{"section", browserRow{kind: rowSection, section: tw}, 0},
		{"month", browserRow{kind: rowMonth, section: mb, month: "202601"}, 1},
		{"flat report", browserRow{kind: rowReport, section: tw, report: weekReport(tw, "2026-W05")}, 1},
		{"nested report", browserRow{kind: rowReport, section: mb, month: "202601", report: dayReport(mb, "202601", "01-29")}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.row.depth(); got != tt.want {
				t.Errorf("depth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestResultSnippet(t *testing.T) {
	if got := resultSnippet("  本週內容  "); got != "本週內容" {
		t.Errorf("expected trimmed snippet, got %q", got)
	}

	long := strings.Repeat("台", 60)
	got := resultSnippet(long)
	runes := []rune(got)
	if len(runes) != 49 {
		t.Errorf("expected 48 runes plus ellipsis, got %d runes", len(runes))
	}
	if runes[len(runes)-1] != '…' {
		t.Errorf("expected ellipsis suffix, got %q", got)
	}
}
