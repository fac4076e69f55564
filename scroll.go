package gridkit

// ScrollInfo is the numeric range fed to an external scrollbar widget.
// The table does not own scrollbar mechanics; it only reports ranges
// and accepts position updates.
type ScrollInfo struct {
	Min   float32
	Max   float32
	Page  float32 // Thumb size: how much of the range is in view
	Value float32
}

// VerticalScrollInfo returns the vertical scroll range in row units:
// Max is the row count, Page the number of visible rows, Value the top
// index.
func (t *Table) VerticalScrollInfo() ScrollInfo {
	return ScrollInfo{
		Min:   0,
		Max:   float32(t.rows.count()),
		Page:  float32(t.visibleCount()),
		Value: float32(t.sel.TopIndex()),
	}
}

// HorizontalScrollInfo returns the horizontal scroll range in pixels:
// Max is the content width, Page the client width, Value the current
// offset.
func (t *Table) HorizontalScrollInfo() ScrollInfo {
	return ScrollInfo{
		Min:   0,
		Max:   t.preferredSize().X,
		Page:  t.bounds.W,
		Value: t.hscroll,
	}
}

// HorizontalScroll returns the current horizontal pixel offset.
func (t *Table) HorizontalScroll() float32 {
	return t.hscroll
}

// SetHorizontalScroll sets the horizontal pixel offset, clamped to the
// content width.
func (t *Table) SetHorizontalScroll(offset float32) {
	maxScroll := maxf(0, t.preferredSize().X-t.bounds.W)
	t.hscroll = clampf(offset, 0, maxScroll)
}

// scrollMargin is the row margin kept between the current row and the
// edge of the visible window when scrolling into view.
func (t *Table) scrollMargin() int {
	return mini(t.visibleCount()/2, 3)
}

// scrollIntoView adjusts the top index so the given row sits at least
// the scroll margin away from the top and bottom of the visible
// window, clamped to the valid range.
func (t *Table) scrollIntoView(index int) {
	count := t.rows.count()
	if count == 0 || index < 0 || index >= count {
		return
	}

	visible := t.visibleCount()
	margin := t.scrollMargin()
	top := t.sel.TopIndex()

	if index < top+margin {
		top = index - margin
	} else if index > top+visible-1-margin {
		top = index - visible + 1 + margin
	}

	top = clampi(top, 0, maxi(0, count-1))
	_ = t.sel.SetTopIndex(top)
}

// ShowItem scrolls the table so the row at index is in view.
func (t *Table) ShowItem(index int) error {
	if err := t.checkLive(); err != nil {
		return err
	}
	if index < 0 || index >= t.rows.count() {
		return errOutOfRange(index, t.rows.count())
	}
	t.scrollIntoView(index)
	return nil
}

// ShowSelection scrolls the table so the lowest selected row is in
// view. Does nothing when the selection is empty.
func (t *Table) ShowSelection() error {
	if err := t.checkLive(); err != nil {
		return err
	}
	if index := t.sel.SelectionIndex(); index >= 0 {
		t.scrollIntoView(index)
	}
	return nil
}

// ShowColumn adjusts the horizontal scroll so the column is in view.
func (t *Table) ShowColumn(column *Column) error {
	if err := t.checkLive(); err != nil {
		return err
	}
	if column == nil {
		return ErrNilArgument
	}
	index := t.columns.indexOf(column)
	if index < 0 {
		return ErrInvalidArgument
	}

	left := t.columns.columnX(index, 0)
	right := left + column.width
	if left < t.hscroll {
		t.SetHorizontalScroll(left)
	} else if right > t.hscroll+t.bounds.W {
		t.SetHorizontalScroll(right - t.bounds.W)
	}
	return nil
}
