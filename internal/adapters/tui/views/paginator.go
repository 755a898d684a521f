package views

import "github.com/charmbracelet/bubbles/paginator"

// Paginator couples a list cursor with bubbles' page model. The list
// views track a selected row; moving the cursor across a page boundary
// must flip the page, and flipping the page must move the cursor, so
// both live here.
type Paginator struct {
	pager  paginator.Model
	cursor int
	total  int
}

// NewPaginator creates a paginator showing pageSize rows per page
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = 10
	}
	pager := paginator.New()
	pager.Type = paginator.Arabic
	pager.PerPage = pageSize
	return &Paginator{pager: pager}
}

// SetTotal sets the list length, clamping the cursor into range
func (p *Paginator) SetTotal(total int) {
	p.total = total
	if total < 1 {
		p.pager.TotalPages = 1
		p.pager.Page = 0
	} else {
		p.pager.SetTotalPages(total)
	}
	if p.cursor >= total && total > 0 {
		p.cursor = total - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
	p.alignPage()
}

// Cursor returns the selected row as an absolute list index
func (p *Paginator) Cursor() int {
	return p.cursor
}

// SetCursor moves the selection, flipping to the page that holds it
func (p *Paginator) SetCursor(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos >= p.total && p.total > 0 {
		pos = p.total - 1
	}
	p.cursor = pos
	p.alignPage()
}

// CursorUp moves the selection up one row. Returns false at the top.
func (p *Paginator) CursorUp() bool {
	if p.cursor <= 0 {
		return false
	}
	p.cursor--
	p.alignPage()
	return true
}

// CursorDown moves the selection down one row. Returns false at the bottom.
func (p *Paginator) CursorDown() bool {
	if p.cursor >= p.total-1 {
		return false
	}
	p.cursor++
	p.alignPage()
	return true
}

// VisibleRange returns the half-open index range of the current page
func (p *Paginator) VisibleRange() (start, end int) {
	return p.pager.GetSliceBounds(p.total)
}

// TotalPages returns the page count, at least 1
func (p *Paginator) TotalPages() int {
	return p.pager.TotalPages
}

// CurrentPage returns the 1-based page number
func (p *Paginator) CurrentPage() int {
	return p.pager.Page + 1
}

// NextPage flips forward, landing the cursor on the first visible row
func (p *Paginator) NextPage() bool {
	if (p.pager.Page+1)*p.pager.PerPage >= p.total {
		return false
	}
	p.pager.NextPage()
	p.cursor, _ = p.pager.GetSliceBounds(p.total)
	return true
}

// PrevPage flips backward, landing the cursor on the first visible row
func (p *Paginator) PrevPage() bool {
	if p.pager.Page == 0 {
		return false
	}
	p.pager.PrevPage()
	p.cursor, _ = p.pager.GetSliceBounds(p.total)
	return true
}

// Reset clears the selection and list length
func (p *Paginator) Reset() {
	p.cursor = 0
	p.total = 0
	p.pager.Page = 0
	p.pager.TotalPages = 1
}

// View renders the position footer, e.g. "Page 2/5"
func (p *Paginator) View() string {
	return "Page " + p.pager.View()
}

// alignPage flips to the page holding the cursor
func (p *Paginator) alignPage() {
	p.pager.Page = p.cursor / p.pager.PerPage
}
