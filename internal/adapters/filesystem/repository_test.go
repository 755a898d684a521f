package filesystem

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Davisanity-TW/stock-report/internal/domain"
)

func twSection() domain.Section {
	return domain.Section{Key: "tw", Title: "台股週報", Source: "tw", Dest: "tw", Layout: domain.LayoutFlat, NavLimit: 26}
}

func moltbookSection() domain.Section {
	return domain.Section{Key: "moltbook", Title: "Moltbook 精選", Source: "moltbook/reports", Dest: "moltbook", Layout: domain.LayoutNested, NavLimit: 62}
}

func testSections() []domain.Section {
	return []domain.Section{twSection(), moltbookSection()}
}

// setupSourceTree builds a small source tree:
//
//	reports/tw/2026-W04.md, 2026-W05.md, scratch.md
//	reports/moltbook/reports/202601/01-29.md
//	reports/moltbook/reports/202602/02-01.md
func setupSourceTree(t *testing.T) (string, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "stock-report-test-")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	files := map[string]string{
		"tw/2026-W04.md":                     "# 台股週報 (2026-W04)\n\n## 2026-01-22 (Thu)\n\n上週內容\n",
		"tw/2026-W05.md":                     "# 台股週報 (2026-W05)\n\n## 2026-01-29 (Thu)\n\n本週內容\n",
		"tw/scratch.md":                      "草稿\n",
		"moltbook/reports/202601/01-29.md":   "# 一月精選\n",
		"moltbook/reports/202602/02-01.md":   "# 二月精選\n",
	}
	for rel, content := range files {
		path := filepath.Join(tmpDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", rel, err)
		}
	}

	return tmpDir, func() { os.RemoveAll(tmpDir) }
}

func TestListReports_Flat(t *testing.T) {
	root, cleanup := setupSourceTree(t)
	defer cleanup()

	repo := NewRepository(root, testSections())
	reports, err := repo.ListReports(twSection())
	if err != nil {
		t.Fatalf("ListReports failed: %v", err)
	}

	if len(reports) != 3 {
		t.Fatalf("expected 3 reports, got %d", len(reports))
	}
	// ascending, malformed names included but unclassified
	if reports[0].ID != "2026-W04" || reports[1].ID != "2026-W05" {
		t.Errorf("order = %s, %s", reports[0].ID, reports[1].ID)
	}
	for _, r := range reports {
		if r.ID == "scratch" && r.Valid() {
			t.Error("scratch.md should be unclassified")
		}
		if r.ID == "2026-W05" && r.Type != domain.IDTypeWeek {
			t.Errorf("2026-W05 classified as %s", r.Type)
		}
	}
}

func TestListReports_Nested(t *testing.T) {
	root, cleanup := setupSourceTree(t)
	defer cleanup()

	repo := NewRepository(root, testSections())
	reports, err := repo.ListReports(moltbookSection())
	if err != nil {
		t.Fatalf("ListReports failed: %v", err)
	}

	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}
	if reports[0].Month != "202601" || reports[1].Month != "202602" {
		t.Errorf("months = %s, %s", reports[0].Month, reports[1].Month)
	}
	if reports[1].Type != domain.IDTypeMonthDay {
		t.Errorf("nested day classified as %s", reports[1].Type)
	}
}

func TestListReports_MissingDirectoryMeansNoData(t *testing.T) {
	root, cleanup := setupSourceTree(t)
	defer cleanup()

	repo := NewRepository(root, testSections())
	us := domain.Section{Key: "us", Title: "美股週報", Source: "us", Dest: "us", Layout: domain.LayoutFlat}

	reports, err := repo.ListReports(us)
	if err != nil {
		t.Fatalf("missing section dir should not error: %v", err)
	}
	if len(reports) != 0 {
		t.Errorf("expected no reports, got %d", len(reports))
	}

	latest, err := repo.Latest(us)
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	if !latest.None() {
		t.Errorf("expected no latest, got %s", latest.ID)
	}
}

func TestLatest(t *testing.T) {
	root, cleanup := setupSourceTree(t)
	defer cleanup()

	repo := NewRepository(root, testSections())

	latest, err := repo.Latest(twSection())
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	if latest.ID != "2026-W05" {
		t.Errorf("tw latest = %s, want 2026-W05", latest.ID)
	}

	nested, err := repo.Latest(moltbookSection())
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	if nested.Month != "202602" || nested.ID != "02-01" {
		t.Errorf("moltbook latest = %s/%s", nested.Month, nested.ID)
	}
}

func TestReadReport(t *testing.T) {
	root, cleanup := setupSourceTree(t)
	defer cleanup()

	repo := NewRepository(root, testSections())

	content, err := repo.ReadReport(twSection(), "2026-W05")
	if err != nil {
		t.Fatalf("ReadReport failed: %v", err)
	}
	if !strings.Contains(content, "本週內容") {
		t.Errorf("unexpected content: %q", content)
	}

	nested, err := repo.ReadReport(moltbookSection(), "202602/02-01")
	if err != nil {
		t.Fatalf("nested ReadReport failed: %v", err)
	}
	if !strings.Contains(nested, "二月精選") {
		t.Errorf("unexpected nested content: %q", nested)
	}
}

func TestReportPath_RejectsInvalidIDs(t *testing.T) {
	root, cleanup := setupSourceTree(t)
	defer cleanup()

	repo := NewRepository(root, testSections())

	if _, err := repo.ReportPath(twSection(), "../secrets"); err == nil {
		t.Error("expected error for traversal attempt")
	}
	if _, err := repo.ReportPath(twSection(), "scratch"); err == nil {
		t.Error("expected error for malformed id")
	}
	if _, err := repo.ReportPath(moltbookSection(), "02-01"); err == nil {
		t.Error("expected error for unqualified nested id")
	}
	if _, err := repo.ReportPath(twSection(), "2026-W06"); err == nil {
		t.Error("expected error for missing report")
	}
}

func TestSearch(t *testing.T) {
	root, cleanup := setupSourceTree(t)
	defer cleanup()

	repo := NewRepository(root, testSections())

	results, err := repo.Search("W05")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected a name match for W05")
	}
	if !results[0].NameMatch || results[0].ID != "2026-W05" {
		t.Errorf("first result = %+v", results[0])
	}

	results, err = repo.Search("本週內容")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 content match, got %d", len(results))
	}
	if results[0].NameMatch {
		t.Error("content match should not be a name match")
	}
	if !strings.Contains(results[0].MatchedText, "本週內容") {
		t.Errorf("matched text = %q", results[0].MatchedText)
	}
}

func TestAppendEntry_CreatesWeekFileWithHeading(t *testing.T) {
	root, cleanup := setupSourceTree(t)
	defer cleanup()

	repo := NewRepository(root, testSections())
	youtube := domain.Section{Key: "youtube", Title: "YouTube 每週直播摘要", Source: "youtube", Dest: "youtube", Layout: domain.LayoutFlat}
	day := time.Date(2026, 1, 29, 12, 0, 0, 0, time.UTC)

	path, err := repo.AppendEntry(youtube, day, "直播重點")
	if err != nil {
		t.Fatalf("AppendEntry failed: %v", err)
	}
	if filepath.Base(path) != "2026-W05.md" {
		t.Errorf("wrote to %s, want 2026-W05.md", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}
	want := "# YouTube 每週直播摘要 (2026-W05)\n\n## 2026-01-29 (Thu)\n\n直播重點\n\n"
	if string(data) != want {
		t.Errorf("got %q, want %q", string(data), want)
	}

	// second entry lands below the first
	if _, err := repo.AppendEntry(youtube, day, "第二段"); err != nil {
		t.Fatalf("second AppendEntry failed: %v", err)
	}
	data, _ = os.ReadFile(path)
	if !strings.HasSuffix(string(data), "第二段\n\n") {
		t.Errorf("second entry should be appended at EOF, got %q", string(data))
	}
}

func TestAppendEntry_RejectsNestedSection(t *testing.T) {
	root, cleanup := setupSourceTree(t)
	defer cleanup()

	repo := NewRepository(root, testSections())
	if _, err := repo.AppendEntry(moltbookSection(), time.Now(), "x"); err == nil {
		t.Error("expected error for nested section")
	}
}

func TestUpsertDailySection(t *testing.T) {
	root, cleanup := setupSourceTree(t)
	defer cleanup()

	repo := NewRepository(root, testSections())
	day := time.Date(2026, 1, 29, 12, 0, 0, 0, time.UTC)
	block := "## 2026-01-29 (Thu)\n\n更新後內容\n"

	path, err := repo.UpsertDailySection(twSection(), day, block)
	if err != nil {
		t.Fatalf("UpsertDailySection failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "更新後內容") {
		t.Errorf("section not replaced: %q", string(data))
	}
	if strings.Contains(string(data), "本週內容") {
		t.Errorf("old section body should be replaced: %q", string(data))
	}
	if strings.Count(string(data), "## 2026-01-29") != 1 {
		t.Errorf("daily header duplicated: %q", string(data))
	}
}

func TestReplaceDailyTable_MissingWeekFile(t *testing.T) {
	root, cleanup := setupSourceTree(t)
	defer cleanup()

	repo := NewRepository(root, testSections())
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // week with no file

	if _, err := repo.ReplaceDailyTable(twSection(), day, "| a |\n"); err == nil {
		t.Error("expected error for missing week file")
	}
}
