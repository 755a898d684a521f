package filesystem

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Davisanity-TW/stock-report/internal/domain"
)

// setupPublisher creates separate source and site roots under one temp dir
func setupPublisher(t *testing.T) (string, string, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "stock-report-publish-")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	sourceRoot := filepath.Join(tmpDir, "reports")
	siteRoot := filepath.Join(tmpDir, "docs")
	if err := os.MkdirAll(sourceRoot, 0755); err != nil {
		t.Fatalf("failed to create source root: %v", err)
	}

	return sourceRoot, siteRoot, func() { os.RemoveAll(tmpDir) }
}

func writeSource(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", rel, err)
	}
}

func readSite(t *testing.T, siteRoot, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(siteRoot, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("failed to read %s: %v", rel, err)
	}
	return string(data)
}

func siteExists(siteRoot, rel string) bool {
	_, err := os.Stat(filepath.Join(siteRoot, filepath.FromSlash(rel)))
	return err == nil
}

func TestSyncSection_Flat(t *testing.T) {
	sourceRoot, siteRoot, cleanup := setupPublisher(t)
	defer cleanup()

	writeSource(t, sourceRoot, "tw/2026-W04.md", "舊週\n")
	writeSource(t, sourceRoot, "tw/2026-W05.md", "新週\n")

	p := NewPublisher(sourceRoot, siteRoot, ".vitepress/sidebar.json")
	result, err := p.SyncSection(twSection())
	if err != nil {
		t.Fatalf("SyncSection failed: %v", err)
	}

	if result.Copied != 2 {
		t.Errorf("Copied = %d, want 2", result.Copied)
	}
	if len(result.Flagged) != 0 {
		t.Errorf("Flagged = %v, want none", result.Flagged)
	}
	if got := readSite(t, siteRoot, "tw/2026-W05.md"); got != "新週\n" {
		t.Errorf("mirrored content = %q", got)
	}
	index := readSite(t, siteRoot, "tw/index.md")
	if !strings.HasPrefix(index, "# 台股週報\n") {
		t.Errorf("index placeholder = %q", index)
	}
}

func TestSyncSection_RemovesStaleMarkdown(t *testing.T) {
	sourceRoot, siteRoot, cleanup := setupPublisher(t)
	defer cleanup()

	writeSource(t, sourceRoot, "tw/2026-W05.md", "新週\n")
	p := NewPublisher(sourceRoot, siteRoot, ".vitepress/sidebar.json")

	// simulate a previous publish containing a since-deleted week
	writeSource(t, siteRoot, "tw/2025-W52.md", "去年\n")

	if _, err := p.SyncSection(twSection()); err != nil {
		t.Fatalf("SyncSection failed: %v", err)
	}

	if siteExists(siteRoot, "tw/2025-W52.md") {
		t.Error("stale markdown should be removed")
	}
	if !siteExists(siteRoot, "tw/2026-W05.md") {
		t.Error("current markdown should be mirrored")
	}
	if siteExists(siteRoot, "tw.old") {
		t.Error("swap should clean up the old tree")
	}
}

func TestSyncSection_PreservesAssetsAndSubdirs(t *testing.T) {
	sourceRoot, siteRoot, cleanup := setupPublisher(t)
	defer cleanup()

	writeSource(t, sourceRoot, "tw/2026-W05.md", "新週\n")
	p := NewPublisher(sourceRoot, siteRoot, ".vitepress/sidebar.json")

	// hand-placed site content the mirror does not own
	writeSource(t, siteRoot, "tw/chart.png", "PNG")
	writeSource(t, siteRoot, "tw/archive/2020-W01.md", "歷史\n")

	result, err := p.SyncSection(twSection())
	if err != nil {
		t.Fatalf("SyncSection failed: %v", err)
	}

	if result.Preserved != 2 {
		t.Errorf("Preserved = %d, want 2", result.Preserved)
	}
	if got := readSite(t, siteRoot, "tw/chart.png"); got != "PNG" {
		t.Errorf("asset content = %q", got)
	}
	if got := readSite(t, siteRoot, "tw/archive/2020-W01.md"); got != "歷史\n" {
		t.Errorf("subdirectory markdown = %q", got)
	}
}

func TestSyncSection_FlagsMalformedNames(t *testing.T) {
	sourceRoot, siteRoot, cleanup := setupPublisher(t)
	defer cleanup()

	writeSource(t, sourceRoot, "tw/2026-W05.md", "新週\n")
	writeSource(t, sourceRoot, "tw/notes.md", "雜記\n")

	p := NewPublisher(sourceRoot, siteRoot, ".vitepress/sidebar.json")
	result, err := p.SyncSection(twSection())
	if err != nil {
		t.Fatalf("SyncSection failed: %v", err)
	}

	if len(result.Flagged) != 1 || result.Flagged[0] != "notes.md" {
		t.Errorf("Flagged = %v, want [notes.md]", result.Flagged)
	}
	// flagged files are still mirrored, they just stay out of navigation
	if !siteExists(siteRoot, "tw/notes.md") {
		t.Error("flagged file should still be copied")
	}
}

func TestSyncSection_AbsentSourceSkips(t *testing.T) {
	sourceRoot, siteRoot, cleanup := setupPublisher(t)
	defer cleanup()

	p := NewPublisher(sourceRoot, siteRoot, ".vitepress/sidebar.json")
	result, err := p.SyncSection(twSection())
	if err != nil {
		t.Fatalf("SyncSection failed: %v", err)
	}

	if !result.Skipped {
		t.Error("expected Skipped for absent source")
	}
	if siteExists(siteRoot, "tw") {
		t.Error("skip should not create the destination")
	}
}

func TestSyncSection_Nested(t *testing.T) {
	sourceRoot, siteRoot, cleanup := setupPublisher(t)
	defer cleanup()

	writeSource(t, sourceRoot, "moltbook/reports/202601/01-29.md", "一月\n")
	writeSource(t, sourceRoot, "moltbook/reports/202602/02-01.md", "二月\n")
	writeSource(t, sourceRoot, "moltbook/reports/stray.md", "迷路\n")

	p := NewPublisher(sourceRoot, siteRoot, ".vitepress/sidebar.json")
	result, err := p.SyncSection(moltbookSection())
	if err != nil {
		t.Fatalf("SyncSection failed: %v", err)
	}

	if result.Copied != 2 {
		t.Errorf("Copied = %d, want 2", result.Copied)
	}
	if len(result.Flagged) != 1 || result.Flagged[0] != "stray.md" {
		t.Errorf("Flagged = %v, want [stray.md]", result.Flagged)
	}
	if siteExists(siteRoot, "moltbook/stray.md") {
		t.Error("stray top-level markdown should not be mirrored into a nested section")
	}
	if got := readSite(t, siteRoot, "moltbook/202602/02-01.md"); got != "二月\n" {
		t.Errorf("nested content = %q", got)
	}

	index := readSite(t, siteRoot, "moltbook/202602/index.md")
	if !strings.HasPrefix(index, "# Moltbook 精選 202602\n") {
		t.Errorf("month index = %q", index)
	}
}

func TestSyncSection_Idempotent(t *testing.T) {
	sourceRoot, siteRoot, cleanup := setupPublisher(t)
	defer cleanup()

	writeSource(t, sourceRoot, "tw/2026-W05.md", "新週\n")
	p := NewPublisher(sourceRoot, siteRoot, ".vitepress/sidebar.json")

	if _, err := p.SyncSection(twSection()); err != nil {
		t.Fatalf("first sync failed: %v", err)
	}
	result, err := p.SyncSection(twSection())
	if err != nil {
		t.Fatalf("second sync failed: %v", err)
	}

	if result.Copied != 1 {
		t.Errorf("Copied = %d, want 1", result.Copied)
	}
	// the regenerated index.md is owned markdown, not a preserved asset
	if result.Preserved != 0 {
		t.Errorf("Preserved = %d, want 0", result.Preserved)
	}
	if got := readSite(t, siteRoot, "tw/2026-W05.md"); got != "新週\n" {
		t.Errorf("content after resync = %q", got)
	}
}

func TestSiteReports(t *testing.T) {
	sourceRoot, siteRoot, cleanup := setupPublisher(t)
	defer cleanup()

	writeSource(t, sourceRoot, "tw/2026-W04.md", "a\n")
	writeSource(t, sourceRoot, "tw/2026-W05.md", "b\n")

	p := NewPublisher(sourceRoot, siteRoot, ".vitepress/sidebar.json")
	if _, err := p.SyncSection(twSection()); err != nil {
		t.Fatalf("SyncSection failed: %v", err)
	}

	reports, err := p.SiteReports(twSection())
	if err != nil {
		t.Fatalf("SiteReports failed: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports (index excluded), got %d", len(reports))
	}
	if reports[0].ID != "2026-W04" || reports[1].ID != "2026-W05" {
		t.Errorf("order = %s, %s", reports[0].ID, reports[1].ID)
	}
}

func TestWriteHomeAndSidebar(t *testing.T) {
	sourceRoot, siteRoot, cleanup := setupPublisher(t)
	defer cleanup()

	p := NewPublisher(sourceRoot, siteRoot, ".vitepress/sidebar.json")

	if err := p.WriteHome("# 投資報告總覽\n"); err != nil {
		t.Fatalf("WriteHome failed: %v", err)
	}
	if got := readSite(t, siteRoot, "index.md"); got != "# 投資報告總覽\n" {
		t.Errorf("home content = %q", got)
	}

	sidebar := map[string][]domain.NavEntry{
		"/tw/": {{Text: "台股週報", Items: []domain.NavEntry{{Text: "2026-W05", Link: "/tw/2026-W05"}}}},
	}
	data, err := json.Marshal(sidebar)
	if err != nil {
		t.Fatalf("failed to marshal sidebar: %v", err)
	}
	if err := p.WriteSidebar(data); err != nil {
		t.Fatalf("WriteSidebar failed: %v", err)
	}
	if got := readSite(t, siteRoot, ".vitepress/sidebar.json"); got != string(data) {
		t.Errorf("sidebar content = %q", got)
	}
}
