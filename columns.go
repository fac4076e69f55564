package gridkit

import "fmt"

// Alignment controls horizontal placement of header and cell content.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// SortDirection is the sort indicator state of the sort column.
type SortDirection int

const (
	SortNone SortDirection = iota
	SortUp
	SortDown
)

// Column is a table column: display text, explicit width, alignment
// and resize/move permissions. Columns are identified by their creation
// index; the visual left-to-right order is a separate permutation kept
// by the table, so identity survives reordering.
type Column struct {
	table *Table // Non-owning association for lookups

	text      string
	width     float32
	alignment Alignment
	resizable bool
	moveable  bool
	disposed  bool
}

// Text returns the header label.
func (c *Column) Text() string {
	return c.text
}

// SetText sets the header label.
func (c *Column) SetText(text string) {
	if c.disposed || c.text == text {
		return
	}
	c.text = text
}

// Width returns the column width in pixels.
func (c *Column) Width() float32 {
	return c.width
}

// SetWidth sets the column width and invalidates cached cell geometry.
func (c *Column) SetWidth(width float32) {
	if c.disposed || width < 0 || c.width == width {
		return
	}
	c.width = width
	if c.table != nil {
		c.table.columnGeometryChanged()
	}
}

// Alignment returns the content alignment.
func (c *Column) Alignment() Alignment {
	return c.alignment
}

// SetAlignment sets the content alignment for header and cells.
func (c *Column) SetAlignment(a Alignment) {
	if c.disposed {
		return
	}
	c.alignment = a
}

// Resizable reports whether pointer drags may resize the column.
func (c *Column) Resizable() bool {
	return c.resizable
}

// SetResizable controls whether pointer drags may resize the column.
func (c *Column) SetResizable(resizable bool) {
	c.resizable = resizable
}

// Moveable reports whether the column may be drag-reordered.
func (c *Column) Moveable() bool {
	return c.moveable
}

// SetMoveable controls whether the column may be drag-reordered.
func (c *Column) SetMoveable(moveable bool) {
	c.moveable = moveable
}

// Disposed reports whether the column has been disposed.
func (c *Column) Disposed() bool {
	return c.disposed
}

// Index returns the column's creation index in its table, or -1 when
// the column is disposed or detached.
func (c *Column) Index() int {
	if c.disposed || c.table == nil {
		return -1
	}
	return c.table.columns.indexOf(c)
}

// Pack resizes the column to fit its header and visible cell content.
func (c *Column) Pack() {
	if c.disposed || c.table == nil {
		return
	}
	c.table.packColumn(c)
}

// Dispose removes the column from its table.
func (c *Column) Dispose() {
	if c.disposed {
		return
	}
	if c.table != nil {
		c.table.removeColumn(c)
	}
	c.disposed = true
	c.table = nil
}

// columnStore owns the creation-ordered column list, the display-order
// permutation and the cached per-column x positions.
//
// The permutation maps display position to creation index. It is
// materialized lazily: nil means identity order.
type columnStore struct {
	cols  []*Column
	order []int

	// xByCreation caches each column's left edge before horizontal
	// scrolling, indexed by creation index.
	xByCreation []float32
	xDirty      bool
}

func (s *columnStore) count() int {
	return len(s.cols)
}

func (s *columnStore) at(index int) (*Column, error) {
	if index < 0 || index >= len(s.cols) {
		return nil, fmt.Errorf("%w: column %d with count %d", ErrOutOfRange, index, len(s.cols))
	}
	return s.cols[index], nil
}

func (s *columnStore) indexOf(col *Column) int {
	for i, c := range s.cols {
		if c == col {
			return i
		}
	}
	return -1
}

// insert adds a column at the given creation index, shifting the
// creation indices of later columns and patching the display order so
// every column keeps its visual position. The new column appears at
// the same display position as its creation index.
func (s *columnStore) insert(col *Column, index int) error {
	if col == nil {
		return fmt.Errorf("%w: column", ErrNilArgument)
	}
	if index < 0 || index > len(s.cols) {
		return fmt.Errorf("%w: column index %d with count %d", ErrOutOfRange, index, len(s.cols))
	}

	s.cols = append(s.cols, nil)
	copy(s.cols[index+1:], s.cols[index:])
	s.cols[index] = col

	if s.order != nil {
		for i, ci := range s.order {
			if ci >= index {
				s.order[i] = ci + 1
			}
		}
		s.order = append(s.order, 0)
		copy(s.order[index+1:], s.order[index:])
		s.order[index] = index
	}

	s.xDirty = true
	return nil
}

// remove drops the column at the given creation index and re-packs the
// display order around it.
func (s *columnStore) remove(index int) error {
	if index < 0 || index >= len(s.cols) {
		return fmt.Errorf("%w: column %d with count %d", ErrOutOfRange, index, len(s.cols))
	}

	s.cols = append(s.cols[:index], s.cols[index+1:]...)

	if s.order != nil {
		packed := s.order[:0]
		for _, ci := range s.order {
			switch {
			case ci == index:
				// dropped
			case ci > index:
				packed = append(packed, ci-1)
			default:
				packed = append(packed, ci)
			}
		}
		s.order = packed
	}

	s.xDirty = true
	return nil
}

// displayOrder returns a copy of the current permutation, materializing
// the identity order on first query.
func (s *columnStore) displayOrder() []int {
	if s.order == nil {
		s.order = make([]int, len(s.cols))
		for i := range s.order {
			s.order[i] = i
		}
	}
	out := make([]int, len(s.order))
	copy(out, s.order)
	return out
}

// setOrder replaces the display-order permutation. The argument must be
// a bijection over [0, count); anything else fails and leaves the prior
// order untouched.
func (s *columnStore) setOrder(order []int) error {
	if order == nil {
		return fmt.Errorf("%w: order", ErrNilArgument)
	}
	if len(order) != len(s.cols) {
		return fmt.Errorf("%w: order length %d with %d columns", ErrInvalidArgument, len(order), len(s.cols))
	}

	seen := make([]bool, len(s.cols))
	for _, ci := range order {
		if ci < 0 || ci >= len(s.cols) {
			return fmt.Errorf("%w: order entry %d with %d columns", ErrInvalidArgument, ci, len(s.cols))
		}
		if seen[ci] {
			return fmt.Errorf("%w: duplicate order entry %d", ErrInvalidArgument, ci)
		}
		seen[ci] = true
	}

	s.order = append(s.order[:0:0], order...)
	s.xDirty = true
	return nil
}

// invalidateX marks the cached x positions stale, e.g. after a width
// change.
func (s *columnStore) invalidateX() {
	s.xDirty = true
}

// refreshX recomputes the left edge of every column: a single pass over
// the display order accumulating widths.
func (s *columnStore) refreshX() {
	if !s.xDirty && len(s.xByCreation) == len(s.cols) {
		return
	}
	if cap(s.xByCreation) < len(s.cols) {
		s.xByCreation = make([]float32, len(s.cols))
	}
	s.xByCreation = s.xByCreation[:len(s.cols)]

	x := float32(0)
	for _, ci := range s.displayOrder() {
		s.xByCreation[ci] = x
		x += s.cols[ci].width
	}
	s.xDirty = false
}

// columnX returns the column's screen left edge given the horizontal
// scroll offset.
func (s *columnStore) columnX(creationIndex int, hscroll float32) float32 {
	s.refreshX()
	return s.xByCreation[creationIndex] - hscroll
}

// totalWidth returns the summed width of all columns.
func (s *columnStore) totalWidth() float32 {
	w := float32(0)
	for _, c := range s.cols {
		w += c.width
	}
	return w
}

// columnAtX returns the creation index of the column containing the
// given unscrolled x position, or -1.
func (s *columnStore) columnAtX(x float32) int {
	s.refreshX()
	for _, ci := range s.displayOrder() {
		left := s.xByCreation[ci]
		if x >= left && x < left+s.cols[ci].width {
			return ci
		}
	}
	return -1
}

// displayIndexOf returns the display position of a creation index.
func (s *columnStore) displayIndexOf(creationIndex int) int {
	for pos, ci := range s.displayOrder() {
		if ci == creationIndex {
			return pos
		}
	}
	return -1
}

// move reorders the column with the given creation index so it lands
// immediately before or after the target column in display order.
func (s *columnStore) move(creationIndex, targetCreationIndex int, before bool) {
	if creationIndex == targetCreationIndex {
		return
	}
	order := s.displayOrder()

	from := -1
	for pos, ci := range order {
		if ci == creationIndex {
			from = pos
			break
		}
	}
	if from < 0 {
		return
	}
	order = append(order[:from], order[from+1:]...)

	to := -1
	for pos, ci := range order {
		if ci == targetCreationIndex {
			to = pos
			break
		}
	}
	if to < 0 {
		return
	}
	if !before {
		to++
	}

	order = append(order, 0)
	copy(order[to+1:], order[to:])
	order[to] = creationIndex

	s.order = order
	s.xDirty = true
}
