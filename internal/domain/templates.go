package domain

import (
	"fmt"
	"strings"
)

// NoDataText marks a section that has no published reports yet
const NoDataText = "（尚無資料）"

// HomeTitle is the heading of the generated site home page
const HomeTitle = "投資報告總覽"

// ScheduleBlock documents when each pipeline writes new reports. The text
// is static; it describes the producers, not the state of the tree.
const ScheduleBlock = `- 台股週報：交易日 14:10 產出盤後初稿，18:10 更新三大法人買賣超（Asia/Taipei）。
- 美股週報：美股交易日收盤後更新。
- YouTube 每週直播摘要：直播結束後寫入當週檔案。
- Moltbook 精選：每日擷取一次，依熱門分數排序。
`

// RenderHome builds the site home page: latest report per section, a
// browse list, and the update schedule. Sections render in configured
// order so the page is stable across runs.
func RenderHome(sections []Section, latest map[string]Latest, prefix string) string {
	var b strings.Builder

	b.WriteString("# " + HomeTitle + "\n\n")

	b.WriteString("## 最新報告\n\n")
	for _, s := range sections {
		l := latest[s.Key]
		if l.None() {
			fmt.Fprintf(&b, "- %s：%s\n", s.Title, NoDataText)
			continue
		}
		link := Report{ID: l.ID, Month: l.Month}.Link(prefix, s.Dest)
		fmt.Fprintf(&b, "- %s：[%s](%s)\n", s.Title, l.QualifiedID(), link)
	}

	b.WriteString("\n## 瀏覽\n\n")
	for _, s := range sections {
		fmt.Fprintf(&b, "- [%s](%s%s/)\n", s.Title, prefix, s.Dest)
	}

	b.WriteString("\n## 更新排程\n\n")
	b.WriteString(ScheduleBlock)

	return b.String()
}

// IndexPlaceholder renders the index.md dropped into every published
// directory. The real listing lives in the sidebar; the placeholder only
// keeps directory URLs from 404ing.
func IndexPlaceholder(title string) string {
	return fmt.Sprintf("# %s\n\n請從側邊欄選擇要閱讀的報告。\n", title)
}
