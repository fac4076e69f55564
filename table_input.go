package gridkit

// Body pointer and keyboard handling: hover tracking, row selection
// clicks, checkbox toggles, wheel scrolling and keyboard navigation.

// Cursor is the pointer shape the table wants. The windowing backend
// maps it to a native cursor.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorResizeH
)

// hoverLookAhead extends the visible range scanned when re-resolving
// the hovered row, to reduce re-scans while the pointer moves near the
// bottom edge.
const hoverLookAhead = 5

// Cursor returns the pointer shape the table currently wants.
func (t *Table) Cursor() Cursor {
	return t.cursor
}

// ItemAt returns the item whose row bounds contain the point, or nil.
// The scan covers the visible range only; in virtual mode the hit item
// is materialized and populated.
func (t *Table) ItemAt(p Vec2) *Item {
	index := t.rowAt(p)
	if index < 0 {
		return nil
	}
	it, err := t.itemFor(index)
	if err != nil {
		return nil
	}
	return it
}

// rowAt returns the visible row index containing the point, or -1.
func (t *Table) rowAt(p Vec2) int {
	if !t.bounds.Contains(p) || p.Y < t.bounds.Y+t.headerHeight() {
		return -1
	}
	first, last := t.visibleRange()
	for i := first; i <= last; i++ {
		if t.itemBounds(i).Contains(p) {
			return i
		}
	}
	return -1
}

// HandleInput processes one frame of pointer and keyboard input.
// Call once per frame after collecting input into the InputState.
func (t *Table) HandleInput(in *InputState) error {
	if err := t.checkLive(); err != nil {
		return err
	}
	if in == nil {
		return ErrNilArgument
	}

	consumed := t.handleHeaderInput(in)
	if t.disposed {
		return nil
	}

	t.updateHover(in)

	if !consumed {
		t.handleBodyMouse(in)
		if t.disposed {
			return nil
		}
	}

	t.handleWheel(in)
	t.handleKeyboard(in)
	return nil
}

// updateHover re-resolves the hovered row when the pointer leaves the
// previously hovered row's bounds. Outside any active drag the scan
// covers the visible range plus a small look-ahead margin.
func (t *Table) updateHover(in *InputState) {
	mouse := Vec2{X: in.MouseX, Y: in.MouseY}

	if t.hoverRow >= 0 && t.hoverRow < t.rows.count() &&
		t.itemBounds(t.hoverRow).Contains(mouse) {
		return
	}

	t.hoverRow = -1

	dragActive := t.resize.Phase == resizeActive || t.reorder.Dragging
	if dragActive {
		return
	}
	if !t.bounds.Contains(mouse) || mouse.Y < t.bounds.Y+t.headerHeight() {
		return
	}

	first, last := t.visibleRange()
	if last < first {
		return
	}
	last = mini(last+hoverLookAhead, t.rows.count()-1)
	for i := first; i <= last; i++ {
		if t.itemBounds(i).Contains(mouse) {
			t.hoverRow = i
			return
		}
	}
}

// handleBodyMouse turns body clicks into checkbox toggles, selection
// changes and activation.
func (t *Table) handleBodyMouse(in *InputState) {
	if !in.MouseClicked(MouseButtonLeft) {
		return
	}

	mouse := Vec2{X: in.MouseX, Y: in.MouseY}
	index := t.rowAt(mouse)
	if index < 0 {
		return
	}

	it, err := t.itemFor(index)
	if err != nil || it == nil || t.disposed {
		return
	}

	// Checkbox hit region toggles and stops further processing.
	if t.checkStyle && t.checkBounds(index).Contains(mouse) {
		it.checked = !it.checked
		t.notifySelection(SelectionEvent{Item: it, Index: index, Check: true})
		return
	}

	if in.MouseDoubleClicked(MouseButtonLeft) {
		if t.onActivate != nil {
			t.onActivate(SelectionEvent{Item: it, Index: index})
		}
		return
	}

	switch {
	case in.ModCtrl || in.ModSuper:
		_ = t.sel.ToggleSelection(index)
	case in.ModShift:
		_ = t.sel.SelectRangeTo(index)
	default:
		_ = t.sel.SetSelection(index)
	}
	t.notifySelection(SelectionEvent{Item: it, Index: index})
}

// handleWheel scrolls the top index vertically in whole rows and the
// horizontal offset in pixels.
func (t *Table) handleWheel(in *InputState) {
	if in.MouseWheelY != 0 {
		const rowsPerNotch = 3
		top := t.sel.TopIndex() - int(in.MouseWheelY)*rowsPerNotch
		top = clampi(top, 0, maxi(0, t.rows.count()-1))
		_ = t.sel.SetTopIndex(top)
	}
	if in.MouseWheelX != 0 {
		const pixelsPerNotch = 30
		t.SetHorizontalScroll(t.hscroll - in.MouseWheelX*pixelsPerNotch)
	}
}

// handleKeyboard maps navigation keys onto the selection model and
// keeps the current row scrolled into view.
func (t *Table) handleKeyboard(in *InputState) {
	if !t.focused || t.rows.count() == 0 {
		return
	}

	shift := in.ModShift
	ctrl := in.ModCtrl || in.ModSuper
	count := t.rows.count()
	moved := false

	switch {
	case in.KeyRepeated(KeyUp):
		_ = t.sel.MoveSelectionRelative(-1, shift, ctrl)
		moved = true
	case in.KeyRepeated(KeyDown):
		_ = t.sel.MoveSelectionRelative(1, shift, ctrl)
		moved = true
	case in.KeyRepeated(KeyPageUp):
		_ = t.sel.MoveSelectionRelative(-maxi(1, t.visibleCount()-1), shift, ctrl)
		moved = true
	case in.KeyRepeated(KeyPageDown):
		_ = t.sel.MoveSelectionRelative(maxi(1, t.visibleCount()-1), shift, ctrl)
		moved = true
	case in.KeyPressed(KeyHome):
		_ = t.sel.MoveSelectionAbsolute(0, shift, ctrl)
		moved = true
	case in.KeyPressed(KeyEnd):
		_ = t.sel.MoveSelectionAbsolute(count-1, shift, ctrl)
		moved = true
	case in.KeyPressed(KeySpace):
		current := t.sel.Current()
		if current < 0 {
			return
		}
		if t.checkStyle {
			if it := t.rows.peek(current); it != nil {
				it.checked = !it.checked
				t.notifySelection(SelectionEvent{Item: it, Index: current, Check: true})
			}
			return
		}
		if ctrl {
			_ = t.sel.ToggleSelection(current)
			moved = true
		}
	case ctrl && in.KeyPressed(KeyA):
		if t.sel.SelectAll() {
			t.notifyCurrentSelection()
		}
		return
	default:
		return
	}

	if !moved {
		return
	}
	if current := t.sel.Current(); current >= 0 {
		t.scrollIntoView(current)
		if !ctrl {
			t.notifyCurrentSelection()
		}
	}
}

// notifyCurrentSelection fires the selection callback for the current
// row after a keyboard-driven change.
func (t *Table) notifyCurrentSelection() {
	index := t.sel.Current()
	if index < 0 {
		return
	}
	it, err := t.itemFor(index)
	if err != nil {
		return
	}
	t.notifySelection(SelectionEvent{Item: it, Index: index})
}

// notifySelection dispatches the selection callback, tolerating a
// callback that disposes the table.
func (t *Table) notifySelection(e SelectionEvent) {
	if t.onSelect == nil {
		return
	}
	t.onSelect(e)
}
