package domain

import (
	"strings"
	"testing"
	"time"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDay(s)
	if err != nil {
		t.Fatalf("ParseDay(%q) failed: %v", s, err)
	}
	return d
}

func TestWeekHeading(t *testing.T) {
	got := WeekHeading("台股週報", "2026-W05")
	if got != "# 台股週報 (2026-W05)\n\n" {
		t.Errorf("heading = %q", got)
	}
}

func TestMatchDailyHeader(t *testing.T) {
	if d, ok := MatchDailyHeader("## 2026-01-29 (Thu)"); !ok || d != "2026-01-29" {
		t.Errorf("got %q %v", d, ok)
	}
	if _, ok := MatchDailyHeader("### 2026-01-29"); ok {
		t.Error("level 3 heading should not match")
	}
	if _, ok := MatchDailyHeader("## 01-29 (Thu)"); ok {
		t.Error("month-relative date should not match")
	}
}

func TestAppendEntry_EmptyFile(t *testing.T) {
	got := AppendEntry("", day(t, "2026-01-29"), "重點整理\n")

	want := "## 2026-01-29 (Thu)\n\n重點整理\n\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAppendEntry_KeepsChronologicalOrder(t *testing.T) {
	content := "# YouTube 每週直播摘要 (2026-W05)\n\n## 2026-01-28 (Wed)\n\n昨日摘要\n\n"

	got := AppendEntry(content, day(t, "2026-01-29"), "今日摘要")

	want := content + "## 2026-01-29 (Thu)\n\n今日摘要\n\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if strings.Index(got, "2026-01-28") > strings.Index(got, "2026-01-29") {
		t.Error("newer entry should come last")
	}
}

func TestAppendEntry_RepairsMissingTrailingNewline(t *testing.T) {
	got := AppendEntry("# 標題", day(t, "2026-01-29"), "內容")
	if !strings.HasPrefix(got, "# 標題\n## 2026-01-29") {
		t.Errorf("got %q", got)
	}
}

func TestUpsertDailySection_AppendsWhenMissing(t *testing.T) {
	content := "# 台股週報 (2026-W05)\n\n## 2026-01-28 (Wed)\n\n舊內容\n"
	block := "## 2026-01-29 (Thu)\n\n新內容\n"

	got, err := UpsertDailySection(content, "2026-01-29", block)
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	want := "# 台股週報 (2026-W05)\n\n## 2026-01-28 (Wed)\n\n舊內容\n\n## 2026-01-29 (Thu)\n\n新內容\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestUpsertDailySection_ReplacesExistingBody(t *testing.T) {
	content := "# 台股週報 (2026-W05)\n\n## 2026-01-28 (Wed)\n\n舊內容A\n\n## 2026-01-29 (Thu)\n\n明日觀察\n"
	// the block carries its own header line; on replace it is dropped and
	// the header already in the file wins
	block := "## 2026-01-28 (Wed) v2\n\n新內容B\n"

	got, err := UpsertDailySection(content, "2026-01-28", block)
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	want := "# 台股週報 (2026-W05)\n\n## 2026-01-28 (Wed)\n\n新內容B\n\n## 2026-01-29 (Thu)\n\n明日觀察\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if strings.Contains(got, "v2") {
		t.Error("block header line should be dropped on replace")
	}
}

func TestUpsertDailySection_ReplacesLastSection(t *testing.T) {
	content := "# 台股週報 (2026-W05)\n\n## 2026-01-29 (Thu)\n\n舊內容\n"
	block := "## 2026-01-29 (Thu)\n\n新內容\n"

	got, err := UpsertDailySection(content, "2026-01-29", block)
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	want := "# 台股週報 (2026-W05)\n\n## 2026-01-29 (Thu)\n\n新內容\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestUpsertDailySection_EmptyBlock(t *testing.T) {
	if _, err := UpsertDailySection("# x\n", "2026-01-29", " \n"); err == nil {
		t.Error("expected error for empty block")
	}
}

func TestReplaceDailyTable(t *testing.T) {
	content := "# 台股週報 (2026-W05)\n\n" +
		"## 2026-01-29 (Thu)\n\n" +
		"盤後觀察重點。\n\n" +
		"| 代號 | 名稱 | 收盤 |\n" +
		"| --- | --- | --- |\n" +
		"| 2330 | 台積電 | 1000 |\n\n" +
		"資料缺口註記：部分法人資料未更新。\n\n" +
		"## 2026-01-30 (Fri)\n\n次日內容。\n"

	table := "| 代號 | 名稱 | 收盤 |\n" +
		"| --- | --- | --- |\n" +
		"| 2330 | 台積電 | 1050 |\n" +
		"| 2454 | 聯發科 | 1500 |\n"

	got, err := ReplaceDailyTable(content, "2026-01-29", table)
	if err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	want := "# 台股週報 (2026-W05)\n\n" +
		"## 2026-01-29 (Thu)\n\n" +
		"盤後觀察重點。\n\n" +
		"| 代號 | 名稱 | 收盤 |\n" +
		"| --- | --- | --- |\n" +
		"| 2330 | 台積電 | 1050 |\n" +
		"| 2454 | 聯發科 | 1500 |\n\n\n" +
		"## 2026-01-30 (Fri)\n\n次日內容。\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if strings.Contains(got, "1000") {
		t.Error("old table row should be gone")
	}
	if strings.Contains(got, GapNotePrefix) {
		t.Error("stale gap note should be replaced together with the table")
	}
	if !strings.Contains(got, "盤後觀察重點。") {
		t.Error("narrative before the table must survive")
	}
}

func TestReplaceDailyTable_Errors(t *testing.T) {
	content := "# 台股週報 (2026-W05)\n\n## 2026-01-29 (Thu)\n\n只有敘述。\n"

	if _, err := ReplaceDailyTable(content, "2026-01-30", "| a |\n"); err == nil {
		t.Error("expected error for missing daily section")
	}
	if _, err := ReplaceDailyTable(content, "2026-01-29", "| a |\n"); err == nil {
		t.Error("expected error when section has no table")
	}
	if _, err := ReplaceDailyTable(content, "2026-01-29", "\n\n"); err == nil {
		t.Error("expected error for empty table")
	}
}
