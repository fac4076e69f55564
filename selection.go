package gridkit

import (
	"fmt"
	"slices"
)

// SelectionModel tracks which row indices are selected, the anchor index
// for range selection, the current (keyboard focus) index and the top
// visible index. It is pure index arithmetic: no geometry, no rendering.
//
// Invariants: every selected index and anchor/current lie in [0, count)
// or are -1 (unset); in single-selection mode the selected set holds at
// most one index; shrinking the count drops out-of-range selected
// indices and clamps the top index.
type SelectionModel struct {
	selected map[int]struct{}
	single   bool

	topIndex int
	current  int
	anchor   int
	count    int
}

// NewSelectionModel creates a selection model. When single is true the
// model holds at most one selected index at a time.
func NewSelectionModel(single bool) *SelectionModel {
	return &SelectionModel{
		selected: make(map[int]struct{}),
		single:   single,
		current:  -1,
		anchor:   -1,
	}
}

// Single reports whether the model is in single-selection mode.
func (m *SelectionModel) Single() bool {
	return m.single
}

// Count returns the total row count.
func (m *SelectionModel) Count() int {
	return m.count
}

// SetCount sets the total row count. Shrinking drops every selected
// index at or beyond the new count, clamps the top index and unsets
// current/anchor when they fall out of range.
func (m *SelectionModel) SetCount(count int) {
	if count == m.count {
		return
	}

	if count < m.count {
		for i := range m.selected {
			if i >= count {
				delete(m.selected, i)
			}
		}
		if m.current >= count {
			m.current = -1
		}
		if m.anchor >= count {
			m.anchor = -1
		}
		m.topIndex = clampi(m.topIndex, 0, maxi(0, count-1))
	}
	m.count = count
}

// Add makes room for a row inserted at index, shifting selection,
// current and anchor up past the insertion point.
func (m *SelectionModel) Add(index int) error {
	if index < 0 || index > m.count {
		return fmt.Errorf("%w: insert index %d with count %d", ErrOutOfRange, index, m.count)
	}

	m.count++

	shifted := make([]int, 0, len(m.selected))
	for i := range m.selected {
		if i >= index {
			delete(m.selected, i)
			shifted = append(shifted, i+1)
		}
	}
	for _, i := range shifted {
		m.selected[i] = struct{}{}
	}

	if index <= m.current {
		m.current++
	}
	if index <= m.anchor {
		m.anchor++
	}
	return nil
}

// Remove drops the row at index, shifting selection, current and anchor
// down past the removal point. Panics if the count is already zero,
// since that means the model and its row store have desynchronized.
func (m *SelectionModel) Remove(index int) error {
	if m.count == 0 {
		panic("gridkit: remove from empty selection model")
	}
	if err := m.checkIndex(index); err != nil {
		return err
	}

	delete(m.selected, index)
	shifted := make([]int, 0, len(m.selected))
	for i := range m.selected {
		if i > index {
			delete(m.selected, i)
			shifted = append(shifted, i-1)
		}
	}
	for _, i := range shifted {
		m.selected[i] = struct{}{}
	}

	if index < m.current {
		m.current--
	} else if index == m.current {
		m.current = -1
	}
	if index < m.anchor {
		m.anchor--
	} else if index == m.anchor {
		m.anchor = -1
	}

	m.count--
	if m.count == 0 {
		m.current = -1
		m.anchor = -1
		m.topIndex = 0
	} else {
		m.topIndex = clampi(m.topIndex, 0, m.count-1)
	}
	return nil
}

// Current returns the keyboard focus index, or -1 when unset.
func (m *SelectionModel) Current() int {
	return m.current
}

// SetCurrent moves the keyboard focus index without changing selection.
func (m *SelectionModel) SetCurrent(current int) error {
	if current < 0 {
		m.current = -1
		return nil
	}
	if current >= m.count {
		return fmt.Errorf("%w: current %d with count %d", ErrOutOfRange, current, m.count)
	}
	m.current = current
	return nil
}

// Anchor returns the range-selection pivot index, or -1 when unset.
func (m *SelectionModel) Anchor() int {
	return m.anchor
}

// TopIndex returns the first visible row index.
func (m *SelectionModel) TopIndex() int {
	return m.topIndex
}

// SetTopIndex scrolls the first visible row to index.
func (m *SelectionModel) SetTopIndex(topIndex int) error {
	if topIndex < 0 || topIndex > maxi(0, m.count-1) {
		return fmt.Errorf("%w: top index %d with count %d", ErrOutOfRange, topIndex, m.count)
	}
	m.topIndex = topIndex
	return nil
}

// SelectionCount returns the number of selected indices.
func (m *SelectionModel) SelectionCount() int {
	return len(m.selected)
}

// IsSelected reports whether index is selected. Out-of-range indices
// are simply not selected.
func (m *SelectionModel) IsSelected(index int) bool {
	if m.outOfBounds(index) {
		return false
	}
	_, ok := m.selected[index]
	return ok
}

// ClearSelection deselects everything. Anchor and current are kept.
func (m *SelectionModel) ClearSelection() {
	clear(m.selected)
}

// SetSelection makes index the only selected row and moves both anchor
// and current to it.
func (m *SelectionModel) SetSelection(index int) error {
	if err := m.checkIndex(index); err != nil {
		return err
	}
	clear(m.selected)
	m.selected[index] = struct{}{}
	m.current = index
	m.anchor = index
	return nil
}

// ToggleSelection flips the membership of index and moves current to
// it. The anchor is left alone.
func (m *SelectionModel) ToggleSelection(index int) error {
	if err := m.checkIndex(index); err != nil {
		return err
	}
	if _, ok := m.selected[index]; ok {
		delete(m.selected, index)
	} else {
		if m.single {
			clear(m.selected)
		}
		m.selected[index] = struct{}{}
	}
	m.current = index
	return nil
}

// Select adds the given indices to the selection. Out-of-range entries
// are skipped. In single-selection mode more than one index is rejected
// as a no-op. Returns whether the selection changed.
func (m *SelectionModel) Select(indices []int) (bool, error) {
	if indices == nil {
		return false, fmt.Errorf("%w: indices", ErrNilArgument)
	}

	if m.single {
		if len(indices) > 1 {
			return false, nil
		}
		clear(m.selected)
	}

	changed := false
	for _, index := range indices {
		if m.outOfBounds(index) {
			continue
		}
		if _, ok := m.selected[index]; !ok {
			m.selected[index] = struct{}{}
			changed = true
		}
	}
	return changed, nil
}

// Deselect removes the given indices from the selection. Indices that
// are not selected are skipped. Returns whether the selection changed.
func (m *SelectionModel) Deselect(indices []int) (bool, error) {
	if indices == nil {
		return false, fmt.Errorf("%w: indices", ErrNilArgument)
	}

	changed := false
	for _, index := range indices {
		if _, ok := m.selected[index]; ok {
			delete(m.selected, index)
			changed = true
		}
	}
	return changed, nil
}

// SelectAll selects every row in multi-selection mode. In
// single-selection mode it does nothing.
func (m *SelectionModel) SelectAll() bool {
	if m.single {
		return false
	}
	changed := false
	for i := 0; i < m.count; i++ {
		if _, ok := m.selected[i]; !ok {
			m.selected[i] = struct{}{}
			changed = true
		}
	}
	return changed
}

// SelectionIndex returns the lowest selected index, or -1 when the
// selection is empty.
func (m *SelectionModel) SelectionIndex() int {
	if len(m.selected) == 0 {
		return -1
	}
	first := -1
	for i := range m.selected {
		if first < 0 || i < first {
			first = i
		}
	}
	return first
}

// SelectionIndices returns the selected indices in ascending order.
func (m *SelectionModel) SelectionIndices() []int {
	indices := make([]int, 0, len(m.selected))
	for i := range m.selected {
		indices = append(indices, i)
	}
	slices.Sort(indices)
	return indices
}

// SelectRangeTo clears the selection and selects the inclusive span
// between the anchor and index, moving current to index. The anchor
// stays put so repeated range extensions pivot around the same row.
// With no anchor set, or in single-selection mode, this degrades to
// SetSelection.
func (m *SelectionModel) SelectRangeTo(index int) error {
	if err := m.checkIndex(index); err != nil {
		return err
	}

	if m.anchor < 0 || m.single {
		return m.SetSelection(index)
	}

	clear(m.selected)

	from := mini(m.anchor, index)
	to := maxi(m.anchor, index)
	for i := from; i <= to; i++ {
		m.selected[i] = struct{}{}
	}

	m.current = index
	return nil
}

// MoveSelectionAbsolute moves the selection to index per the modifier
// keys: ctrl/cmd moves only the focus row, shift extends the range from
// the anchor, and no modifier selects index exclusively.
func (m *SelectionModel) MoveSelectionAbsolute(index int, shift, ctrlOrCmd bool) error {
	if err := m.checkIndex(index); err != nil {
		return err
	}

	switch {
	case ctrlOrCmd:
		m.current = index
	case shift:
		return m.SelectRangeTo(index)
	default:
		return m.SetSelection(index)
	}
	return nil
}

// MoveSelectionRelative moves the selection by delta rows relative to
// current, clamped to the valid range. With no current row the move
// starts from the top index.
func (m *SelectionModel) MoveSelectionRelative(delta int, shift, ctrlOrCmd bool) error {
	if m.count == 0 || delta == 0 {
		return nil
	}

	var target int
	if m.current < 0 {
		target = m.topIndex
	} else {
		target = clampi(m.current+delta, 0, m.count-1)
	}
	return m.MoveSelectionAbsolute(target, shift, ctrlOrCmd)
}

func (m *SelectionModel) outOfBounds(index int) bool {
	return index < 0 || index >= m.count
}

func (m *SelectionModel) checkIndex(index int) error {
	if m.outOfBounds(index) {
		return fmt.Errorf("%w: index %d with count %d", ErrOutOfRange, index, m.count)
	}
	return nil
}
