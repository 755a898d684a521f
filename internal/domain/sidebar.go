package domain

import (
	"encoding/json"
	"sort"
)

// Sidebar entry limits. Every section clamps its configured NavLimit into
// this range so a runaway archive cannot blow up the rendered navigation.
const (
	NavLimitMin = 20
	NavLimitMax = 62

	DefaultNavLimitFlat   = 26 // half a year of weekly reports
	DefaultNavLimitNested = 62 // two months of daily picks
)

// ClampNavLimit normalizes a configured sidebar limit. Zero or negative
// values fall back to the layout default.
func ClampNavLimit(limit int, layout Layout) int {
	if limit <= 0 {
		if layout == LayoutNested {
			return DefaultNavLimitNested
		}
		return DefaultNavLimitFlat
	}
	if limit < NavLimitMin {
		return NavLimitMin
	}
	if limit > NavLimitMax {
		return NavLimitMax
	}
	return limit
}

// NavEntry is one node of the generated sidebar. Leaves carry a link,
// groups carry items. The JSON shape matches what the site theme consumes.
type NavEntry struct {
	Text  string     `json:"text"`
	Link  string     `json:"link,omitempty"`
	Items []NavEntry `json:"items,omitempty"`
}

// SidebarGroup builds the sidebar group for one section from its published
// reports: newest first, capped at the section limit, malformed names and
// the reserved index excluded. Nested sections get one sub-group per month
// directory, also newest first.
func SidebarGroup(s Section, reports []Report, prefix string) NavEntry {
	limit := ClampNavLimit(s.NavLimit, s.Layout)

	valid := make([]Report, 0, len(reports))
	for _, r := range reports {
		if r.Valid() && r.ID != IndexName {
			valid = append(valid, r)
		}
	}
	SortReports(valid)
	// newest first
	for i, j := 0, len(valid)-1; i < j; i, j = i+1, j-1 {
		valid[i], valid[j] = valid[j], valid[i]
	}
	if len(valid) > limit {
		valid = valid[:limit]
	}

	group := NavEntry{Text: s.Title}
	if s.Layout != LayoutNested {
		for _, r := range valid {
			group.Items = append(group.Items, NavEntry{Text: r.ID, Link: r.Link(prefix, s.Dest)})
		}
		return group
	}

	// nested: group the capped window by month, months newest first
	byMonth := make(map[string][]Report)
	var months []string
	for _, r := range valid {
		if _, seen := byMonth[r.Month]; !seen {
			months = append(months, r.Month)
		}
		byMonth[r.Month] = append(byMonth[r.Month], r)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	for _, m := range months {
		monthGroup := NavEntry{Text: m}
		for _, r := range byMonth[m] {
			monthGroup.Items = append(monthGroup.Items, NavEntry{Text: r.ID, Link: r.Link(prefix, s.Dest)})
		}
		group.Items = append(group.Items, monthGroup)
	}
	return group
}

// BuildSidebar assembles the full multi-section sidebar keyed by link base
// ("/tw/" -> entries), the shape the site theme loads at build time.
func BuildSidebar(sections []Section, reports map[string][]Report, prefix string) map[string][]NavEntry {
	sidebar := make(map[string][]NavEntry, len(sections))
	for _, s := range sections {
		key := prefix + s.Dest + "/"
		sidebar[key] = []NavEntry{SidebarGroup(s, reports[s.Key], prefix)}
	}
	return sidebar
}

// RenderSidebar serializes a sidebar to indented JSON. Map keys marshal in
// sorted order, so output is deterministic for a given tree.
func RenderSidebar(sidebar map[string][]NavEntry) ([]byte, error) {
	data, err := json.MarshalIndent(sidebar, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
