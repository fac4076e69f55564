package gridkit

// Layout and measurement. Cell sizes are memoized on the item
// (when cell caching is enabled), the aggregate preferred size on the
// table. Both are invalidated per the rules in invalidateLayout and
// contentSizeChanged.

// headerHeight returns the header strip height, 0 when hidden.
func (t *Table) headerHeight() float32 {
	if !t.headerVisible {
		return 0
	}
	return t.font.LineHeight(t.style.FontScale) + 2*t.style.HeaderPadding
}

// defaultItemHeight is the height of a row whose cells hold one line of
// text and no image.
func (t *Table) defaultItemHeight() float32 {
	h := t.font.LineHeight(t.style.FontScale) + 2*t.style.CellPaddingY
	if t.checkStyle {
		h = maxf(h, t.style.CheckBoxSize+2*t.style.CellPaddingY)
	}
	if t.linesVisible {
		h += t.style.GridLineWidth
	}
	return h
}

// itemHeight returns the row height for index: the measured height for
// materialized items, the default height otherwise.
func (t *Table) itemHeight(index int) float32 {
	if it := t.rows.peek(index); it != nil && it.geomValid && it.height > 0 {
		return it.height
	}
	return t.defaultItemHeight()
}

// checkIndent is the horizontal space consumed by the checkbox column.
func (t *Table) checkIndent() float32 {
	if !t.checkStyle {
		return 0
	}
	return t.style.CheckBoxSize + 2*t.style.CheckBoxGap
}

// cellSize computes (and caches) the preferred size of one cell:
// margins + image + gap + text extent, per the renderer.
func (t *Table) cellSize(it *Item, index, column int) Vec2 {
	if t.cellCaching && it.geomValid && column < len(it.cellSizes) {
		if sz := it.cellSizes[column]; sz.X > 0 || sz.Y > 0 {
			return sz
		}
	}

	sz := t.renderer.ComputeCellSize(t, it, column)

	if t.cellCaching {
		if !it.geomValid {
			it.cellSizes = it.cellSizes[:0]
			it.geomValid = true
		}
		it.cellSizes = growTo(it.cellSizes, column+1)
		it.cellSizes[column] = sz
	}
	return sz
}

// visibleCount returns how many whole rows fit in the client area
// below the header, at the default row height. At least 1.
func (t *Table) visibleCount() int {
	avail := t.bounds.H - t.headerHeight()
	rh := t.defaultItemHeight()
	if rh <= 0 || avail <= 0 {
		return 1
	}
	n := int(avail / rh)
	if n < 1 {
		n = 1
	}
	return n
}

// visibleRange returns the inclusive row index range currently in
// view: from the top index through the first row whose bottom edge
// exceeds the client area, found by accumulating row heights.
// Returns (0, -1) when the table is empty.
func (t *Table) visibleRange() (first, last int) {
	count := t.rows.count()
	if count == 0 {
		return 0, -1
	}
	first = clampi(t.sel.TopIndex(), 0, count-1)

	bottom := t.bounds.Y + t.bounds.H
	y := t.bounds.Y + t.headerHeight()
	last = first
	for i := first; i < count; i++ {
		y += t.itemHeight(i)
		last = i
		if y >= bottom {
			break
		}
	}
	return first, last
}

// itemY returns the y position of the row's top edge in table
// coordinates. Rows above the top index report the position they would
// have if scrolling were extended upward, which is enough for
// visibility checks.
func (t *Table) itemY(index int) float32 {
	top := t.sel.TopIndex()
	y := t.bounds.Y + t.headerHeight()
	if index >= top {
		for i := top; i < index; i++ {
			y += t.itemHeight(i)
		}
		return y
	}
	for i := index; i < top; i++ {
		y -= t.itemHeight(i)
	}
	return y
}

// itemBounds returns the full row bounds for index, or the zero Rect
// when index is invalid.
func (t *Table) itemBounds(index int) Rect {
	if index < 0 || index >= t.rows.count() {
		return Rect{}
	}
	w := t.columns.totalWidth() + t.checkIndent()
	if t.columns.count() == 0 {
		w = maxf(t.bounds.W, t.preferredSize().X)
	}
	return Rect{
		X: t.bounds.X - t.hscroll,
		Y: t.itemY(index),
		W: w,
		H: t.itemHeight(index),
	}
}

// cellBounds returns the bounds of one cell. With no columns, column 0
// covers the whole row.
func (t *Table) cellBounds(index, column int) Rect {
	row := t.itemBounds(index)
	if row.Empty() {
		return Rect{}
	}
	if t.columns.count() == 0 {
		if column != 0 {
			return Rect{}
		}
		row.X += t.checkIndent()
		row.W -= t.checkIndent()
		return row
	}
	col, err := t.columns.at(column)
	if err != nil {
		return Rect{}
	}
	return Rect{
		X: t.bounds.X + t.checkIndent() + t.columns.columnX(column, t.hscroll),
		Y: row.Y,
		W: col.width,
		H: row.H,
	}
}

// checkBounds returns the checkbox hit region for a row, or the zero
// Rect for non-check tables.
func (t *Table) checkBounds(index int) Rect {
	if !t.checkStyle {
		return Rect{}
	}
	row := t.itemBounds(index)
	if row.Empty() {
		return Rect{}
	}
	return Rect{
		X: t.bounds.X - t.hscroll + t.style.CheckBoxGap,
		Y: row.Y + (row.H-t.style.CheckBoxSize)/2,
		W: t.style.CheckBoxSize,
		H: t.style.CheckBoxSize,
	}
}

// headerBounds returns the bounds of one column's header segment.
func (t *Table) headerBounds(column int) Rect {
	if !t.headerVisible {
		return Rect{}
	}
	col, err := t.columns.at(column)
	if err != nil {
		return Rect{}
	}
	return Rect{
		X: t.bounds.X + t.checkIndent() + t.columns.columnX(column, t.hscroll),
		Y: t.bounds.Y,
		W: col.width,
		H: t.headerHeight(),
	}
}

// preferredSize returns the aggregate content size used to feed
// scrollbar ranges: total column width (or widest row) by summed row
// heights plus the header.
//
// In virtual mode unmaterialized rows count at the default height, so
// the sum is count*default adjusted by the materialized rows' deltas.
// No materialization happens here.
func (t *Table) preferredSize() Vec2 {
	if t.prefValid {
		return t.prefSize
	}

	count := t.rows.count()
	defH := t.defaultItemHeight()
	height := float32(count) * defH
	t.rows.each(func(_ int, it *Item) {
		if it.geomValid && it.height > 0 {
			height += it.height - defH
		}
	})
	height += t.headerHeight()

	var width float32
	if t.columns.count() > 0 {
		width = t.columns.totalWidth()
	} else {
		// No columns: the widest materialized row's content.
		t.rows.each(func(index int, it *Item) {
			sz := t.cellSize(it, index, 0)
			width = maxf(width, sz.X)
		})
	}
	width += t.checkIndent()

	t.prefSize = Vec2{X: width, Y: height}
	t.prefValid = true
	return t.prefSize
}

// contentSizeChanged invalidates the aggregate preferred size, e.g.
// after an item's content changed.
func (t *Table) contentSizeChanged() {
	t.prefValid = false
}

// invalidateLayout drops every cached size: all item geometry and the
// aggregate. Called on row count change, column insert/remove,
// header-visibility toggle and font change.
func (t *Table) invalidateLayout() {
	t.rows.each(func(_ int, it *Item) {
		it.invalidateGeometry()
	})
	t.columns.invalidateX()
	t.prefValid = false
}

// columnGeometryChanged invalidates cell bounds after a column width
// change. Item heights survive; x positions and the aggregate do not.
func (t *Table) columnGeometryChanged() {
	t.columns.invalidateX()
	t.prefValid = false
}
