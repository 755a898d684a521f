package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Weekly reports are plain markdown with one dated section per day:
//
//	# 台股週報 (2026-W05)
//
//	## 2026-01-29 (Thu)
//	...content...
//
// The functions here edit that structure as text. They never reflow
// anything outside the section they touch.

var dailyHeaderRegex = regexp.MustCompile(`^##\s+(\d{4}-\d{2}-\d{2})\b`)

// GapNotePrefix marks the optional data-gap note that travels with the
// watchlist table and is replaced together with it.
const GapNotePrefix = "資料缺口註記："

// WeekHeading returns the title line for a fresh weekly report file
func WeekHeading(title, weekID string) string {
	return fmt.Sprintf("# %s (%s)\n\n", title, weekID)
}

// DailyBlock formats a dated section: header with the weekday
// abbreviation, a blank line, then the body.
func DailyBlock(day time.Time, body string) string {
	return fmt.Sprintf("## %s (%s)\n\n%s\n", DayKey(day), day.Format("Mon"), strings.TrimSpace(body))
}

// MatchDailyHeader extracts the date from a daily section header line.
// Returns false for anything that is not a "## YYYY-MM-DD" header.
func MatchDailyHeader(line string) (string, bool) {
	m := dailyHeaderRegex.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// AppendEntry appends a dated entry at EOF, keeping chronological order
// with the newest entry at the bottom.
func AppendEntry(content string, day time.Time, body string) string {
	block := DailyBlock(day, body) + "\n"
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content + block
}

// UpsertDailySection replaces the body of the section for date when its
// header already exists, otherwise appends the block at EOF. On replace
// the existing header line is preserved and the block's own first line is
// dropped; the header is matched by date prefix, the rest of the line is
// ignored.
func UpsertDailySection(content, date, block string) (string, error) {
	if strings.TrimSpace(block) == "" {
		return "", fmt.Errorf("empty section block")
	}

	lines := splitKeepNL(content)

	start := -1
	for i, ln := range lines {
		if d, ok := MatchDailyHeader(ln); ok && d == date {
			start = i
			break
		}
	}

	if start < 0 {
		// append with one blank line of separation
		if n := len(lines); n > 0 {
			if !strings.HasSuffix(lines[n-1], "\n") {
				lines[n-1] += "\n"
			}
			if strings.TrimSpace(lines[len(lines)-1]) != "" {
				lines = append(lines, "\n")
			}
		}
		if !strings.HasSuffix(block, "\n") {
			block += "\n"
		}
		lines = append(lines, block)
		return strings.Join(lines, ""), nil
	}

	end := len(lines)
	for j := start + 1; j < len(lines); j++ {
		if _, ok := MatchDailyHeader(lines[j]); ok {
			end = j
			break
		}
	}

	blockLines := splitKeepNL(block)
	section := []string{lines[start]}
	section = append(section, blockLines[1:]...)
	if n := len(section); !strings.HasSuffix(section[n-1], "\n") {
		section[n-1] += "\n"
	}

	out := append([]string{}, lines[:start]...)
	out = append(out, section...)
	if end < len(lines) {
		// keep one blank line before the next daily header
		if strings.TrimSpace(out[len(out)-1]) != "" {
			out = append(out, "\n")
		}
		out = append(out, lines[end:]...)
	}
	return strings.Join(out, ""), nil
}

// ReplaceDailyTable swaps the first markdown table inside the daily
// section for date, together with an optional gap note right after it.
// Narrative text around the table stays untouched. Errors when the
// section or the table is missing, so a wrong date cannot silently
// rewrite another block.
func ReplaceDailyTable(content, date, table string) (string, error) {
	table = strings.Trim(table, "\n")
	if strings.TrimSpace(table) == "" {
		return "", fmt.Errorf("empty table")
	}

	lines := splitKeepNL(content)

	start := -1
	for i, ln := range lines {
		if d, ok := MatchDailyHeader(ln); ok && d == date {
			start = i
			break
		}
	}
	if start < 0 {
		return "", fmt.Errorf("daily header not found for date: %s", date)
	}

	end := len(lines)
	for j := start + 1; j < len(lines); j++ {
		if _, ok := MatchDailyHeader(lines[j]); ok {
			end = j
			break
		}
	}
	section := lines[start:end]

	t0 := -1
	for k, ln := range section {
		if isTableLine(ln) {
			t0 = k
			break
		}
	}
	if t0 < 0 {
		return "", fmt.Errorf("no markdown table found in section %s", date)
	}
	t1 := t0
	for t1 < len(section) && isTableLine(section[t1]) {
		t1++
	}

	// consume at most one blank line plus a gap note after the table
	t2 := t1
	if t2 < len(section) && strings.TrimSpace(section[t2]) == "" {
		t2++
	}
	if t2 < len(section) && strings.HasPrefix(section[t2], GapNotePrefix) {
		t2++
	}

	out := append([]string{}, lines[:start]...)
	out = append(out, section[:t0]...)
	if strings.TrimSpace(out[len(out)-1]) != "" {
		out = append(out, "\n")
	}
	out = append(out, table+"\n", "\n")
	out = append(out, section[t2:]...)
	out = append(out, lines[end:]...)
	return strings.Join(out, ""), nil
}

func isTableLine(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), "|")
}

// splitKeepNL splits content into lines, each keeping its trailing
// newline when present. The inverse is a plain strings.Join with "".
func splitKeepNL(content string) []string {
	if content == "" {
		return nil
	}
	var lines []string
	for content != "" {
		i := strings.IndexByte(content, '\n')
		if i < 0 {
			lines = append(lines, content)
			break
		}
		lines = append(lines, content[:i+1])
		content = content[i+1:]
	}
	return lines
}
