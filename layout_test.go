package gridkit

import "testing"

func TestVisibleRangeAccumulatesHeights(t *testing.T) {
	tbl := newTestTable(t, 100)

	// 200px of client area over 14px rows: rows 0 through 14.
	first, last := tbl.VisibleRange()
	if first != 0 || last != 14 {
		t.Fatalf("visible range = [%d, %d], want [0, 14]", first, last)
	}

	if err := tbl.SetTopIndex(50); err != nil {
		t.Fatalf("SetTopIndex failed: %v", err)
	}
	first, last = tbl.VisibleRange()
	if first != 50 || last != 64 {
		t.Fatalf("visible range = [%d, %d], want [50, 64]", first, last)
	}

	// A taller row pushes the end of the range up.
	it, err := tbl.Item(50)
	if err != nil {
		t.Fatalf("Item failed: %v", err)
	}
	it.height = 100
	it.geomValid = true
	first, last = tbl.VisibleRange()
	if first != 50 || last >= 64 {
		t.Fatalf("visible range = [%d, %d], want fewer rows after growth", first, last)
	}
}

func TestVisibleRangeEmptyTable(t *testing.T) {
	tbl := newTestTable(t, 0)
	first, last := tbl.VisibleRange()
	if first != 0 || last != -1 {
		t.Fatalf("visible range = [%d, %d], want [0, -1]", first, last)
	}
}

func TestScrollMarginDependsOnVisibleCount(t *testing.T) {
	tbl := newTestTable(t, 100)
	// 14 full rows visible: the margin caps at 3.
	if got := tbl.scrollMargin(); got != 3 {
		t.Errorf("margin = %d, want 3", got)
	}

	// Shrink the client area to 4 rows: margin becomes 2.
	tbl.SetBounds(Rect{X: 0, Y: 0, W: 300, H: 4 * 14})
	if got := tbl.scrollMargin(); got != 2 {
		t.Errorf("margin = %d, want 2", got)
	}
}

func TestScrollIntoViewKeepsMargin(t *testing.T) {
	tbl := newTestTable(t, 100)
	visible := tbl.visibleCount()

	// Scrolling to a row below the window places it margin rows above
	// the bottom edge.
	if err := tbl.ShowItem(50); err != nil {
		t.Fatalf("ShowItem failed: %v", err)
	}
	if want := 50 - visible + 1 + 3; tbl.TopIndex() != want {
		t.Errorf("TopIndex = %d, want %d", tbl.TopIndex(), want)
	}

	// Scrolling back up places it margin rows below the top edge.
	if err := tbl.ShowItem(20); err != nil {
		t.Fatalf("ShowItem failed: %v", err)
	}
	if tbl.TopIndex() != 17 {
		t.Errorf("TopIndex = %d, want 17", tbl.TopIndex())
	}

	// A row already well inside the window does not scroll.
	before := tbl.TopIndex()
	if err := tbl.ShowItem(before + visible/2); err != nil {
		t.Fatalf("ShowItem failed: %v", err)
	}
	if tbl.TopIndex() != before {
		t.Errorf("TopIndex = %d, want unchanged %d", tbl.TopIndex(), before)
	}

	// Edges clamp.
	if err := tbl.ShowItem(0); err != nil {
		t.Fatalf("ShowItem failed: %v", err)
	}
	if tbl.TopIndex() != 0 {
		t.Errorf("TopIndex = %d, want 0", tbl.TopIndex())
	}
}

func TestPreferredSizeVirtualUsesDefaults(t *testing.T) {
	tbl := New(WithVirtual(func(it *Item, index int) {}))
	tbl.SetHeaderVisible(false)
	tbl.SetBounds(Rect{X: 0, Y: 0, W: 300, H: 200})
	if err := tbl.SetItemCount(10_000); err != nil {
		t.Fatalf("SetItemCount failed: %v", err)
	}

	// No rows materialized: the height is pure arithmetic.
	sz := tbl.PreferredSize()
	if want := float32(10_000 * 14); sz.Y != want {
		t.Errorf("preferred height = %v, want %v", sz.Y, want)
	}

	// One materialized row with a measured height shifts the sum by
	// its delta only.
	it, err := tbl.Item(3)
	if err != nil {
		t.Fatalf("Item failed: %v", err)
	}
	it.height = 50
	it.geomValid = true
	tbl.contentSizeChanged()
	sz = tbl.PreferredSize()
	if want := float32(10_000*14 + 36); sz.Y != want {
		t.Errorf("preferred height = %v, want %v", sz.Y, want)
	}
}

func TestPreferredSizeWithColumnsAndHeader(t *testing.T) {
	tbl := newColumnTable(t, 10)
	sz := tbl.PreferredSize()
	if sz.X != 240 {
		t.Errorf("preferred width = %v, want 240 (summed column widths)", sz.X)
	}
	if want := float32(10*14 + 20); sz.Y != want {
		t.Errorf("preferred height = %v, want %v", sz.Y, want)
	}
}

func TestCellBoundsFollowDisplayOrderAndScroll(t *testing.T) {
	tbl := newColumnTable(t, 5)
	if err := tbl.SetColumnOrder([]int{2, 0, 1}); err != nil {
		t.Fatalf("SetColumnOrder failed: %v", err)
	}

	// Column A sits after C in display order: x = 100. Row 0 starts
	// below the 20px header.
	cb := tbl.CellBounds(0, 0)
	if cb.X != 100 || cb.Y != 20 || cb.W != 60 || cb.H != 14 {
		t.Errorf("cell bounds = %+v, want {100 20 60 14}", cb)
	}

	// Scrolling only has range when the columns overflow the view.
	tbl.SetBounds(Rect{X: 0, Y: 0, W: 200, H: 300})
	tbl.SetHorizontalScroll(40)
	cb = tbl.CellBounds(0, 0)
	if cb.X != 60 {
		t.Errorf("cell x = %v after scrolling 40, want 60", cb.X)
	}
}

func TestHorizontalScrollNoOpWhenContentFits(t *testing.T) {
	tbl := newColumnTable(t, 5)
	tbl.SetHorizontalScroll(40)
	if got := tbl.HorizontalScroll(); got != 0 {
		t.Errorf("scroll = %v with 240px of columns in a 400px view, want 0", got)
	}
}

func TestItemBoundsWithoutColumnsSpanClientWidth(t *testing.T) {
	tbl := newTestTable(t, 5)
	b := tbl.ItemBounds(2)
	if b.Y != 28 || b.H != 14 {
		t.Errorf("row 2 bounds = %+v, want y 28 height 14", b)
	}
	if b.W < tbl.Bounds().W {
		t.Errorf("row width = %v, want at least the client width", b.W)
	}
}

func TestCheckIndentShiftsCells(t *testing.T) {
	tbl := New(WithCheckBoxes())
	tbl.SetHeaderVisible(false)
	tbl.SetBounds(Rect{X: 0, Y: 0, W: 300, H: 200})
	if _, err := tbl.NewColumn("A", 60); err != nil {
		t.Fatalf("NewColumn failed: %v", err)
	}
	if err := tbl.SetItemCount(3); err != nil {
		t.Fatalf("SetItemCount failed: %v", err)
	}

	indent := tbl.checkIndent()
	if indent <= 0 {
		t.Fatal("check tables must reserve indent")
	}
	cb := tbl.CellBounds(0, 0)
	if cb.X != indent {
		t.Errorf("cell x = %v, want %v", cb.X, indent)
	}

	chk := tbl.checkBounds(0)
	if chk.Empty() || chk.X+chk.W > cb.X {
		t.Errorf("checkbox %+v should sit left of the first cell %+v", chk, cb)
	}
}

func TestHorizontalScrollClamps(t *testing.T) {
	tbl := newColumnTable(t, 3)
	tbl.SetBounds(Rect{X: 0, Y: 0, W: 100, H: 300})

	tbl.SetHorizontalScroll(10_000)
	// Content is 240 wide, the client 100: the offset caps at 140.
	if tbl.HorizontalScroll() != 140 {
		t.Errorf("hscroll = %v, want 140", tbl.HorizontalScroll())
	}
	tbl.SetHorizontalScroll(-5)
	if tbl.HorizontalScroll() != 0 {
		t.Errorf("hscroll = %v, want 0", tbl.HorizontalScroll())
	}
}

func TestScrollInfo(t *testing.T) {
	tbl := newTestTable(t, 100)
	if err := tbl.SetTopIndex(10); err != nil {
		t.Fatalf("SetTopIndex failed: %v", err)
	}

	v := tbl.VerticalScrollInfo()
	if v.Min != 0 || v.Max != 100 || v.Value != 10 {
		t.Errorf("vertical info = %+v, want min 0 max 100 value 10", v)
	}
	if v.Page != float32(tbl.visibleCount()) {
		t.Errorf("page = %v, want visible count %d", v.Page, tbl.visibleCount())
	}
}
