package gridkit

// Renderer is the capability interface behind all default drawing.
// The built-in DefaultRenderer is one implementation; alternate
// renderers are swappable per table instance via WithRenderer.
type Renderer interface {
	// ComputeSize returns the preferred size of a whole row.
	ComputeSize(t *Table, it *Item, index int) Vec2

	// ComputeCellSize returns the preferred size of one cell:
	// margins + image + gap + text extent.
	ComputeCellSize(t *Table, it *Item, column int) Vec2

	// DrawCell performs the default cell drawing for the bits that
	// survived erase negotiation: background fill and image+text.
	DrawCell(t *Table, e *CellEvent)

	// PaintHeader draws one column's header segment.
	PaintHeader(t *Table, gc *GC, column int, bounds Rect)
}

// DefaultRenderer is the built-in table renderer.
type DefaultRenderer struct{}

func (DefaultRenderer) ComputeSize(t *Table, it *Item, index int) Vec2 {
	cols := t.columns.count()
	if cols == 0 {
		sz := t.cellSize(it, index, 0)
		return Vec2{X: sz.X + t.checkIndent(), Y: sz.Y}
	}
	var size Vec2
	for c := 0; c < cols; c++ {
		sz := t.cellSize(it, index, c)
		size.X += sz.X
		size.Y = maxf(size.Y, sz.Y)
	}
	size.X += t.checkIndent()
	return size
}

func (DefaultRenderer) ComputeCellSize(t *Table, it *Item, column int) Vec2 {
	text := it.Text(column)
	img := it.ImageAt(column)

	ext := t.font.MeasureText(text, t.style.FontScale)
	w := ext.X + 2*t.style.CellPaddingX
	h := ext.Y
	if img.TextureID != 0 {
		w += img.Width + t.style.ImageTextGap
		h = maxf(h, img.Height)
	}
	h += 2 * t.style.CellPaddingY
	if t.linesVisible {
		h += t.style.GridLineWidth
	}
	return Vec2{X: w, Y: h}
}

func (DefaultRenderer) DrawCell(t *Table, e *CellEvent) {
	gc := e.GC
	bounds := e.Bounds

	if e.Detail.Has(DetailBackground) {
		gc.FillRect(bounds, t.cellBackgroundColor(e))
	}

	if !e.Detail.Has(DetailForeground) {
		return
	}

	gc.ClipTo(bounds)
	defer gc.Unclip()

	x := bounds.X + t.style.CellPaddingX

	img := e.Item.ImageAt(e.Column)
	if img.TextureID != 0 {
		gc.DrawImage(img.TextureID, Rect{
			X: x,
			Y: bounds.Y + (bounds.H-img.Height)/2,
			W: img.Width,
			H: img.Height,
		})
		x += img.Width + t.style.ImageTextGap
	}

	text := e.Item.Text(e.Column)
	if len(text) == 0 {
		return
	}
	ext := gc.TextExtent(text)

	align := AlignLeft
	if col, err := t.columns.at(e.Column); err == nil {
		align = col.alignment
	}
	switch align {
	case AlignCenter:
		x = maxf(x, bounds.X+(bounds.W-ext.X)/2)
	case AlignRight:
		x = maxf(x, bounds.X+bounds.W-ext.X-t.style.CellPaddingX)
	}

	gc.DrawText(text, x, bounds.Y+(bounds.H-ext.Y)/2, t.cellForegroundColor(e))
}

func (DefaultRenderer) PaintHeader(t *Table, gc *GC, column int, bounds Rect) {
	col, err := t.columns.at(column)
	if err != nil {
		return
	}
	style := &t.style

	gc.FillRect(bounds, t.headerBackground())

	gc.ClipTo(bounds)

	textColor := t.headerForeground()
	avail := bounds.W - 2*style.HeaderPadding
	if t.sortColumn == column && t.sortDirection != SortNone {
		avail -= style.SortGlyphSize
	}

	text := col.text
	ext := gc.TextExtent(text)
	x := bounds.X + style.HeaderPadding
	switch col.alignment {
	case AlignCenter:
		x = maxf(x, bounds.X+(avail-ext.X)/2+style.HeaderPadding)
	case AlignRight:
		x = maxf(x, bounds.X+style.HeaderPadding+avail-ext.X)
	}
	gc.DrawText(text, x, bounds.Y+(bounds.H-ext.Y)/2, textColor)

	if t.sortColumn == column && t.sortDirection != SortNone {
		gc.DrawSortIndicator(Rect{
			X: bounds.X + bounds.W - style.HeaderPadding - style.SortGlyphSize,
			Y: bounds.Y,
			W: style.SortGlyphSize,
			H: bounds.H,
		}, t.sortDirection, style.SortIndicatorColor)
	}

	gc.Unclip()

	// Separator at the column's right edge.
	gc.DrawLine(
		bounds.X+bounds.W, bounds.Y,
		bounds.X+bounds.W, bounds.Y+bounds.H,
		style.HeaderSeparatorColor,
	)
}

// cellBackgroundColor resolves the background for a cell from the
// detail bits, item overrides and style.
func (t *Table) cellBackgroundColor(e *CellEvent) uint32 {
	switch {
	case e.Detail.Has(DetailSelected):
		return t.style.SelectedBgColor
	case e.Detail.Has(DetailHot):
		return t.style.HoveredBgColor
	}
	if c := e.Item.CellBackground(e.Column); c != 0 {
		return c
	}
	if t.style.RowBgAltColor != 0 && e.Index%2 == 1 {
		return t.style.RowBgAltColor
	}
	return t.style.BackgroundColor
}

// cellForegroundColor resolves the text color for a cell.
func (t *Table) cellForegroundColor(e *CellEvent) uint32 {
	if e.Detail.Has(DetailSelected) {
		return t.style.SelectedTextColor
	}
	if c := e.Item.CellForeground(e.Column); c != 0 {
		return c
	}
	return t.style.TextColor
}

func (t *Table) headerBackground() uint32 {
	if t.headerBg != 0 {
		return t.headerBg
	}
	return t.style.HeaderBgColor
}

func (t *Table) headerForeground() uint32 {
	if t.headerFg != 0 {
		return t.headerFg
	}
	if t.style.HeaderTextColor != 0 {
		return t.style.HeaderTextColor
	}
	return t.style.TextColor
}

// Render paints the table into the draw list: body rows between the
// top index and the bottom of the client area, then the header strip.
// The draw list is cleared first; the table owns its whole content.
//
// Measure callbacks may grow a row height mid-pass. When that happens
// the scroll ranges are recomputed and the pass is repeated once with
// the corrected heights.
func (t *Table) Render(dl *DrawList) error {
	if err := t.checkLive(); err != nil {
		return err
	}
	if dl == nil {
		return ErrNilArgument
	}

	dl.Clear()
	grew := t.paintPass(dl)
	if t.disposed {
		return nil // A callback disposed us mid-paint.
	}
	if grew {
		t.contentSizeChanged()
		dl.Clear()
		t.paintPass(dl)
		if t.disposed {
			return nil
		}
	}
	dl.Finalize()
	return nil
}

// paintPass draws the full widget once. Reports whether any row height
// grew during measurement, which obliges the caller to repaint.
func (t *Table) paintPass(dl *DrawList) (grew bool) {
	gc := NewGC(dl, t.font, t.style.FontScale)

	gc.ClipTo(t.bounds)
	defer gc.Unclip()

	gc.FillRect(t.bounds, t.style.BackgroundColor)

	first, last := t.visibleRange()
	for i := first; i <= last; i++ {
		rowGrew, ok := t.paintItem(gc, i)
		if !ok {
			return grew // Disposed mid-callback; abort.
		}
		grew = grew || rowGrew
	}

	if t.headerVisible {
		t.paintHeaderStrip(gc)
	}
	t.paintReorderIndicator(gc)
	return grew
}

// paintItem runs the measure, erase and paint sequence for one row.
// Reports (grew, ok): whether the row height grew during measurement,
// and whether the table survived the client callbacks.
func (t *Table) paintItem(gc *GC, index int) (grew, ok bool) {
	it, err := t.itemFor(index)
	if err != nil || it == nil {
		return false, !t.disposed
	}
	if t.disposed || it.disposed {
		return false, !t.disposed
	}

	cols := t.columns.count()
	cells := maxi(cols, 1)
	rowH := t.itemHeight(index)

	// Measure phase: default sizes first, then the measure callback,
	// which may enlarge any cell. The tallest cell wins the row.
	measured := rowH
	for c := 0; c < cells; c++ {
		sz := t.cellSize(it, index, c)
		measured = maxf(measured, sz.Y)
		if t.onMeasure != nil {
			e := &CellEvent{
				Item: it, Index: index, Column: c, GC: gc,
				Bounds: Rect{W: maxf(sz.X, t.cellBounds(index, c).W), H: measured},
			}
			t.onMeasure(e)
			if t.disposed {
				return false, false
			}
			if it.disposed {
				return false, true
			}
			measured = maxf(measured, e.Bounds.H)
		}
	}
	if measured > rowH {
		it.height = measured
		it.geomValid = true
		grew = true
	}

	selected := t.sel.IsSelected(index)
	hot := t.hoverRow == index
	focused := t.focused && t.sel.Current() == index
	focusSurvived := false

	for c := 0; c < cells; c++ {
		bounds := t.cellBounds(index, c)
		if bounds.Empty() || !bounds.Intersects(t.bounds) {
			continue
		}

		detail := DetailBackground | DetailForeground
		if selected {
			detail |= DetailSelected
		}
		if hot {
			detail |= DetailHot
		}
		if focused {
			detail |= DetailFocused
		}

		e := &CellEvent{
			Item: it, Index: index, Column: c, GC: gc,
			Bounds: bounds, Detail: detail, Doit: true,
		}

		// Erase phase: the callback may clear bits, or clear the
		// whole mask by dropping the Doit flag.
		if t.onErase != nil {
			t.onErase(e)
			if t.disposed {
				return grew, false
			}
			if it.disposed {
				return grew, true
			}
			if !e.Doit {
				e.Detail = 0
			}
		}

		t.renderer.DrawCell(t, e)
		if e.Detail.Has(DetailFocused) {
			focusSurvived = true
		}

		// Paint phase: always fires, whatever the erase negotiated.
		if t.onPaint != nil {
			t.onPaint(e)
			if t.disposed {
				return grew, false
			}
			if it.disposed {
				return grew, true
			}
		}
	}

	if t.checkStyle {
		gc.DrawCheckBox(t.checkBounds(index), it.checked,
			t.style.CheckBoxColor, t.style.CheckColor)
	}

	if t.linesVisible {
		row := t.itemBounds(index)
		gc.DrawLine(row.X, row.Y+row.H, row.X+row.W, row.Y+row.H, t.style.GridLineColor)
		if cols > 0 {
			for c := 0; c < cols; c++ {
				cb := t.cellBounds(index, c)
				gc.DrawLine(cb.X+cb.W, cb.Y, cb.X+cb.W, cb.Y+cb.H, t.style.GridLineColor)
			}
		}
	}

	if focusSurvived {
		gc.DrawFocusRect(t.itemBounds(index), t.style.FocusColor)
	}
	return grew, true
}

// paintHeaderStrip draws the header background and every visible
// column segment in display order.
func (t *Table) paintHeaderStrip(gc *GC) {
	strip := Rect{X: t.bounds.X, Y: t.bounds.Y, W: t.bounds.W, H: t.headerHeight()}
	gc.FillRect(strip, t.headerBackground())

	for _, ci := range t.columns.displayOrder() {
		bounds := t.headerBounds(ci)
		if bounds.Empty() || !bounds.Intersects(strip) {
			continue
		}
		t.renderer.PaintHeader(t, gc, ci, bounds)
	}

	gc.DrawLine(strip.X, strip.Y+strip.H, strip.X+strip.W, strip.Y+strip.H,
		t.style.HeaderSeparatorColor)
}

// paintReorderIndicator draws the insertion marker while a column
// header drag is in flight.
func (t *Table) paintReorderIndicator(gc *GC) {
	if !t.reorder.Dragging {
		return
	}
	target, before := t.reorderTarget(t.reorder.CurrentX)
	if target < 0 {
		return
	}
	bounds := t.headerBounds(target)
	x := bounds.X
	if !before {
		x = bounds.X + bounds.W
	}
	gc.DrawLine(x, t.bounds.Y, x, t.bounds.Y+t.bounds.H, t.style.FocusColor)
}
