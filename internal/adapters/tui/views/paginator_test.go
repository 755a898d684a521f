package views

import "testing"

func TestPaginatorWindowFollowsCursor(t *testing.T) {
	p := NewPaginator(10)
	p.SetTotal(25)

	if start, end := p.VisibleRange(); start != 0 || end != 10 {
		t.Errorf("initial range = (%d, %d), want (0, 10)", start, end)
	}
	if p.TotalPages() != 3 {
		t.Errorf("TotalPages() = %d, want 3", p.TotalPages())
	}

	p.SetCursor(12)
	if start, end := p.VisibleRange(); start != 10 || end != 20 {
		t.Errorf("range after SetCursor(12) = (%d, %d), want (10, 20)", start, end)
	}
	if p.CurrentPage() != 2 {
		t.Errorf("CurrentPage() = %d, want 2", p.CurrentPage())
	}

	// Stepping above the page boundary pulls the window back
	p.SetCursor(10)
	if !p.CursorUp() {
		t.Fatal("CursorUp() should succeed at position 10")
	}
	if p.Cursor() != 9 {
		t.Errorf("Cursor() = %d, want 9", p.Cursor())
	}
	if p.CurrentPage() != 1 {
		t.Errorf("CurrentPage() = %d, want 1", p.CurrentPage())
	}
}

func TestPaginatorPageNavigation(t *testing.T) {
	p := NewPaginator(10)
	p.SetTotal(25)

	if !p.NextPage() {
		t.Fatal("NextPage() should move to page 2")
	}
	if p.Cursor() != 10 {
		t.Errorf("Cursor() = %d, want 10", p.Cursor())
	}
	if !p.NextPage() {
		t.Fatal("NextPage() should move to page 3")
	}
	if p.NextPage() {
		t.Error("NextPage() should refuse past the last page")
	}
	if start, end := p.VisibleRange(); start != 20 || end != 25 {
		t.Errorf("last page range = (%d, %d), want (20, 25)", start, end)
	}

	if !p.PrevPage() {
		t.Fatal("PrevPage() should move back")
	}
	if p.Cursor() != 10 {
		t.Errorf("Cursor() = %d, want 10", p.Cursor())
	}
}

func TestPaginatorClampsOnShrink(t *testing.T) {
	p := NewPaginator(10)
	p.SetTotal(25)
	p.SetCursor(24)

	p.SetTotal(5)
	if p.Cursor() != 4 {
		t.Errorf("Cursor() = %d, want 4 after shrink", p.Cursor())
	}
	if p.CursorDown() {
		t.Error("CursorDown() should refuse at the last item")
	}
	if start, end := p.VisibleRange(); start != 0 || end != 5 {
		t.Errorf("range = (%d, %d), want (0, 5)", start, end)
	}
}

func TestPaginatorEmpty(t *testing.T) {
	p := NewPaginator(10)

	if p.TotalPages() != 1 {
		t.Errorf("TotalPages() = %d, want 1 for empty list", p.TotalPages())
	}
	if p.CursorDown() {
		t.Error("CursorDown() should refuse on empty list")
	}
	if start, end := p.VisibleRange(); start != 0 || end != 0 {
		t.Errorf("range = (%d, %d), want (0, 0)", start, end)
	}
}
