package gridkit

import "fmt"

// Image is a texture handle with its natural pixel size, drawn to the
// left of a cell's text.
type Image struct {
	TextureID     uint32
	Width, Height float32
}

// Item is one table row: per-cell text, image and color overrides, the
// checked flag for check-style tables, and a private geometry cache.
//
// In virtual tables items are materialized lazily; the populated flag
// tracks whether the population callback has filled this item since it
// was created or last cleared.
type Item struct {
	table *Table // Non-owning association for lookups

	texts  []string
	images []Image
	cellBg []uint32 // 0 = inherit
	cellFg []uint32 // 0 = inherit

	background uint32 // Whole-row override, 0 = style default
	foreground uint32

	checked   bool
	populated bool
	disposed  bool

	// Geometry cache, valid while geomValid is set. Invalidated on
	// content change, clear, and table-wide layout invalidation.
	cellSizes []Vec2
	height    float32
	geomValid bool
}

func newItem(table *Table) *Item {
	return &Item{table: table}
}

// Disposed reports whether the item has been disposed.
func (it *Item) Disposed() bool {
	return it.disposed
}

// Index returns the item's row index in its table, or -1 when the item
// is disposed or detached.
func (it *Item) Index() int {
	if it.disposed || it.table == nil {
		return -1
	}
	return it.table.rows.indexOf(it)
}

// Text returns the text of the given column, or "" when unset or out
// of range.
func (it *Item) Text(column int) string {
	if column < 0 || column >= len(it.texts) {
		return ""
	}
	return it.texts[column]
}

// SetText sets the text of the given column.
func (it *Item) SetText(column int, text string) error {
	if it.disposed {
		return ErrDisposed
	}
	if err := it.checkColumn(column); err != nil {
		return err
	}
	if column >= len(it.texts) {
		it.texts = growTo(it.texts, column+1)
	}
	if it.texts[column] == text {
		return nil
	}
	it.texts[column] = text
	it.contentChanged()
	return nil
}

// ImageAt returns the image of the given column, or the zero Image.
func (it *Item) ImageAt(column int) Image {
	if column < 0 || column >= len(it.images) {
		return Image{}
	}
	return it.images[column]
}

// SetImage sets the image of the given column.
func (it *Item) SetImage(column int, img Image) error {
	if it.disposed {
		return ErrDisposed
	}
	if err := it.checkColumn(column); err != nil {
		return err
	}
	if column >= len(it.images) {
		it.images = growTo(it.images, column+1)
	}
	it.images[column] = img
	it.contentChanged()
	return nil
}

// Background returns the whole-row background override, 0 when unset.
func (it *Item) Background() uint32 {
	return it.background
}

// SetBackground sets the whole-row background color. 0 restores the
// style default.
func (it *Item) SetBackground(color uint32) error {
	if it.disposed {
		return ErrDisposed
	}
	it.background = color
	return nil
}

// Foreground returns the whole-row text color override, 0 when unset.
func (it *Item) Foreground() uint32 {
	return it.foreground
}

// SetForeground sets the whole-row text color. 0 restores the style
// default.
func (it *Item) SetForeground(color uint32) error {
	if it.disposed {
		return ErrDisposed
	}
	it.foreground = color
	return nil
}

// CellBackground returns the per-cell background override, falling
// back to the row override.
func (it *Item) CellBackground(column int) uint32 {
	if column >= 0 && column < len(it.cellBg) && it.cellBg[column] != 0 {
		return it.cellBg[column]
	}
	return it.background
}

// SetCellBackground sets a per-cell background color.
func (it *Item) SetCellBackground(column int, color uint32) error {
	if it.disposed {
		return ErrDisposed
	}
	if err := it.checkColumn(column); err != nil {
		return err
	}
	if column >= len(it.cellBg) {
		it.cellBg = growTo(it.cellBg, column+1)
	}
	it.cellBg[column] = color
	return nil
}

// CellForeground returns the per-cell text color override, falling
// back to the row override.
func (it *Item) CellForeground(column int) uint32 {
	if column >= 0 && column < len(it.cellFg) && it.cellFg[column] != 0 {
		return it.cellFg[column]
	}
	return it.foreground
}

// SetCellForeground sets a per-cell text color.
func (it *Item) SetCellForeground(column int, color uint32) error {
	if it.disposed {
		return ErrDisposed
	}
	if err := it.checkColumn(column); err != nil {
		return err
	}
	if column >= len(it.cellFg) {
		it.cellFg = growTo(it.cellFg, column+1)
	}
	it.cellFg[column] = color
	return nil
}

// Checked reports the checkbox state for check-style tables.
func (it *Item) Checked() bool {
	return it.checked
}

// SetChecked sets the checkbox state for check-style tables.
func (it *Item) SetChecked(checked bool) error {
	if it.disposed {
		return ErrDisposed
	}
	it.checked = checked
	return nil
}

// Populated reports whether a virtual item has been filled by the
// population callback since creation or the last clear.
func (it *Item) Populated() bool {
	return it.populated
}

// Bounds returns the item's full row bounds in table coordinates, or
// the zero Rect when the item is not in the visible range.
func (it *Item) Bounds() Rect {
	if it.disposed || it.table == nil {
		return Rect{}
	}
	return it.table.itemBounds(it.Index())
}

// CellBounds returns the bounds of one cell in table coordinates.
func (it *Item) CellBounds(column int) Rect {
	if it.disposed || it.table == nil {
		return Rect{}
	}
	return it.table.cellBounds(it.Index(), column)
}

// Dispose detaches the item from its table, removing its row.
func (it *Item) Dispose() {
	if it.disposed {
		return
	}
	if it.table != nil {
		if idx := it.table.rows.indexOf(it); idx >= 0 {
			_ = it.table.Remove(idx)
			return // Remove calls release, which marks us disposed
		}
	}
	it.release()
}

// release marks the item disposed without touching the table.
func (it *Item) release() {
	it.disposed = true
	it.table = nil
	it.texts = nil
	it.images = nil
	it.cellBg = nil
	it.cellFg = nil
	it.cellSizes = nil
	it.geomValid = false
}

// clear resets display content and the populated flag, keeping the
// item's identity. Virtual items re-populate on next access.
func (it *Item) clear() {
	it.texts = nil
	it.images = nil
	it.cellBg = nil
	it.cellFg = nil
	it.background = 0
	it.foreground = 0
	it.checked = false
	it.populated = false
	it.invalidateGeometry()
}

func (it *Item) contentChanged() {
	it.invalidateGeometry()
	if it.table != nil {
		it.table.contentSizeChanged()
	}
}

func (it *Item) invalidateGeometry() {
	it.geomValid = false
	it.cellSizes = it.cellSizes[:0]
	it.height = 0
}

// checkColumn validates a cell column index against the table. A table
// without columns accepts only column 0.
func (it *Item) checkColumn(column int) error {
	n := 1
	if it.table != nil && it.table.columns.count() > 0 {
		n = it.table.columns.count()
	}
	if column < 0 || column >= n {
		return fmt.Errorf("%w: cell column %d with %d columns", ErrOutOfRange, column, n)
	}
	return nil
}

// growTo extends a slice with zero values up to length n.
func growTo[T any](s []T, n int) []T {
	for len(s) < n {
		var zero T
		s = append(s, zero)
	}
	return s
}
