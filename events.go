package gridkit

// Detail is the per-cell bitmask negotiated between the paint pipeline
// and external paint customization. The pipeline seeds it before the
// erase callback; the callback may clear bits (or the whole mask via
// the event's Doit flag) to suppress default drawing for that cell.
type Detail uint32

const (
	// DetailBackground requests the default background fill.
	DetailBackground Detail = 1 << iota
	// DetailForeground requests the default image and text drawing.
	DetailForeground
	// DetailSelected marks the cell's row as selected.
	DetailSelected
	// DetailHot marks the cell's row as hovered.
	DetailHot
	// DetailFocused marks the cell's row as the keyboard focus row.
	DetailFocused
)

// Has reports whether all bits in mask are set.
func (d Detail) Has(mask Detail) bool {
	return d&mask == mask
}

// CellEvent carries the state passed to measure, erase and paint
// callbacks for a single cell (or the whole row when the table has no
// columns; Column is 0 then).
type CellEvent struct {
	Item   *Item
	Index  int // Row index
	Column int // Column index, 0 when the table has no columns
	GC     *GC

	// Bounds is the cell's current bounds. A measure callback may
	// enlarge it; the enlarged height becomes the row height.
	Bounds Rect

	// Detail is the negotiated drawing bitmask. Meaningful for erase
	// and paint; zero during measure.
	Detail Detail

	// Doit tells the pipeline to continue default drawing after an
	// erase callback. Setting it to false clears every Detail bit.
	Doit bool
}

// MeasureFunc is called before a cell is drawn and may enlarge
// e.Bounds. Growing the height grows the whole row.
type MeasureFunc func(e *CellEvent)

// EraseFunc is called before default drawing and may clear Detail bits
// or set Doit to false to suppress it. The paint callback still fires
// afterwards regardless.
type EraseFunc func(e *CellEvent)

// PaintFunc is called after default drawing for custom overlay.
type PaintFunc func(e *CellEvent)

// PopulateFunc fills a virtual item's content on first access.
// It may call back into the table, including disposing it; the table
// re-checks liveness after every invocation.
type PopulateFunc func(item *Item, index int)

// SelectionEvent describes a click- or keyboard-driven selection
// change, or a double-click activation.
type SelectionEvent struct {
	Item  *Item
	Index int

	// Check is true when the change was a checkbox toggle rather
	// than a selection change.
	Check bool
}

// SelectionFunc receives selection and activation notifications.
type SelectionFunc func(e SelectionEvent)

// ColumnEvent describes a plain (non-drag) header click. Sort state
// management is the caller's responsibility.
type ColumnEvent struct {
	Column *Column
	Index  int // Creation index
}

// ColumnFunc receives header click notifications.
type ColumnFunc func(e ColumnEvent)
