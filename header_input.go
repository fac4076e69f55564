package gridkit

// Header pointer handling: the column-resize and column-reorder drag
// state machines, and plain header clicks.

// resizePhase is the column-resize state.
type resizePhase int

const (
	resizeIdle resizePhase = iota
	// resizePossible: the pointer rests within tolerance of a
	// resizable column's right edge with no button pressed.
	resizePossible
	// resizeActive: a press while possible captured the drag.
	resizeActive
)

// resizeState tracks an in-flight column resize.
type resizeState struct {
	Phase   resizePhase
	Column  int     // Creation index of the column being resized
	ColumnX float32 // The column's screen left edge at press time
}

// Reset returns the state machine to idle.
func (s *resizeState) Reset() {
	s.Phase = resizeIdle
	s.Column = -1
	s.ColumnX = 0
}

// reorderState tracks an in-flight column reorder drag.
type reorderState struct {
	Pressed  bool // A header press is being watched
	Dragging bool // Movement exceeded the drag threshold
	Column   int  // Creation index of the pressed column
	PressX   float32
	PressY   float32
	CurrentX float32
}

// Reset clears the reorder drag.
func (s *reorderState) Reset() {
	s.Pressed = false
	s.Dragging = false
	s.Column = -1
	s.PressX = 0
	s.PressY = 0
	s.CurrentX = 0
}

// headerRect returns the header strip hit region.
func (t *Table) headerRect() Rect {
	return Rect{X: t.bounds.X, Y: t.bounds.Y, W: t.bounds.W, H: t.headerHeight()}
}

// resizeEdgeAt returns the creation index of the resizable column
// whose right edge lies within the resize tolerance of x, or -1.
func (t *Table) resizeEdgeAt(x float32) int {
	tol := t.style.ResizeTolerance
	for _, ci := range t.columns.displayOrder() {
		col := t.columns.cols[ci]
		if !col.resizable {
			continue
		}
		edge := t.bounds.X + t.checkIndent() + t.columns.columnX(ci, t.hscroll) + col.width
		d := x - edge
		if d >= -tol && d <= tol {
			return ci
		}
	}
	return -1
}

// headerColumnAt returns the creation index of the column under the
// given screen x, or -1.
func (t *Table) headerColumnAt(x float32) int {
	content := x - t.bounds.X - t.checkIndent() + t.hscroll
	return t.columns.columnAtX(content)
}

// reorderTarget resolves where a reorder drag at screen x would drop:
// the target column and whether the dragged column lands before or
// after it, decided by which half of the target the pointer is in.
func (t *Table) reorderTarget(x float32) (target int, before bool) {
	target = t.headerColumnAt(x)
	if target < 0 {
		// Past the last column: append after it.
		order := t.columns.displayOrder()
		if len(order) == 0 {
			return -1, false
		}
		last := order[len(order)-1]
		left := t.bounds.X + t.checkIndent() + t.columns.columnX(last, t.hscroll)
		if x >= left {
			return last, false
		}
		return -1, false
	}
	col := t.columns.cols[target]
	left := t.bounds.X + t.checkIndent() + t.columns.columnX(target, t.hscroll)
	return target, x < left+col.width/2
}

// handleHeaderInput runs the header state machines for one frame.
// Reports whether the frame's pointer press was consumed by the
// header, so body selection does not also run.
func (t *Table) handleHeaderInput(in *InputState) bool {
	if !t.headerVisible || t.columns.count() == 0 {
		// Without a header there is nothing to resize or reorder.
		if t.resize.Phase != resizeIdle {
			t.resize.Reset()
		}
		return false
	}

	mouse := Vec2{X: in.MouseX, Y: in.MouseY}
	header := t.headerRect()

	// Active resize: the width follows the pointer on every move,
	// width = pointerX - column left edge.
	if t.resize.Phase == resizeActive {
		if in.MouseDown(MouseButtonLeft) {
			col := t.columns.cols[t.resize.Column]
			col.SetWidth(maxf(0, mouse.X-t.resize.ColumnX))
		} else {
			t.resize.Reset()
		}
		return true
	}

	// Reorder drag in flight.
	if t.reorder.Pressed {
		if in.MouseDown(MouseButtonLeft) {
			dx := mouse.X - t.reorder.PressX
			dy := mouse.Y - t.reorder.PressY
			thresh := t.style.ReorderDistance
			if dx*dx+dy*dy > thresh*thresh {
				t.reorder.Dragging = true
			}
			t.reorder.CurrentX = mouse.X
			return true
		}

		// Released: either complete the reorder or report a click.
		pressed := t.reorder.Column
		dragging := t.reorder.Dragging
		t.reorder.Reset()

		if dragging {
			if target, before := t.reorderTarget(mouse.X); target >= 0 {
				t.columns.move(pressed, target, before)
				t.columnGeometryChanged()
			}
		} else if t.onColumnSelect != nil {
			t.onColumnSelect(ColumnEvent{Column: t.columns.cols[pressed], Index: pressed})
			if t.disposed {
				return true
			}
		}
		return true
	}

	inHeader := header.Contains(mouse)

	// Arm or disarm the resize "possible" phase while no button is
	// pressed.
	if !in.MouseDown(MouseButtonLeft) {
		if inHeader {
			if edge := t.resizeEdgeAt(mouse.X); edge >= 0 {
				t.resize.Phase = resizePossible
				t.resize.Column = edge
				t.cursor = CursorResizeH
			} else {
				t.resize.Reset()
				t.cursor = CursorDefault
			}
		} else if t.resize.Phase == resizePossible {
			t.resize.Reset()
			t.cursor = CursorDefault
		}
	}

	if !inHeader {
		return false
	}

	// Double press while possible auto-sizes instead of dragging.
	if t.resize.Phase == resizePossible && in.MouseDoubleClicked(MouseButtonLeft) {
		col := t.columns.cols[t.resize.Column]
		t.packColumn(col)
		t.resize.Reset()
		return true
	}

	if in.MouseClicked(MouseButtonLeft) {
		if t.resize.Phase == resizePossible {
			// Press captures the drag.
			ci := t.resize.Column
			t.resize.Phase = resizeActive
			t.resize.ColumnX = t.bounds.X + t.checkIndent() + t.columns.columnX(ci, t.hscroll)
			return true
		}

		if ci := t.headerColumnAt(mouse.X); ci >= 0 {
			if t.columns.cols[ci].moveable {
				t.reorder.Pressed = true
				t.reorder.Column = ci
				t.reorder.PressX = mouse.X
				t.reorder.PressY = mouse.Y
				t.reorder.CurrentX = mouse.X
			} else if t.onColumnSelect != nil {
				// Unmoveable columns still report plain clicks.
				t.onColumnSelect(ColumnEvent{Column: t.columns.cols[ci], Index: ci})
			}
			return true
		}
		return true // Press in the empty header area is swallowed.
	}

	return false
}

// packColumn auto-sizes a column to its content's preferred width:
// the widest of the header label and the visible cells.
func (t *Table) packColumn(col *Column) {
	ci := t.columns.indexOf(col)
	if ci < 0 {
		return
	}

	ext := t.font.MeasureText(col.text, t.style.FontScale)
	width := ext.X + 2*t.style.HeaderPadding
	if t.sortColumn == ci && t.sortDirection != SortNone {
		width += t.style.SortGlyphSize
	}

	first, last := t.visibleRange()
	for i := first; i <= last; i++ {
		it := t.rows.peek(i)
		if it == nil {
			continue
		}
		sz := t.cellSize(it, i, ci)
		width = maxf(width, sz.X)
	}

	col.SetWidth(width)
}
