package gridkit

import (
	"errors"
	"slices"
	"testing"
)

func TestSelectionModelSelectAllIndices(t *testing.T) {
	m := NewSelectionModel(false)
	m.SetCount(5)

	changed, err := m.Select([]int{0, 1, 2, 3, 4})
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if !changed {
		t.Error("Select should report a change")
	}

	got := m.SelectionIndices()
	want := []int{0, 1, 2, 3, 4}
	if !slices.Equal(got, want) {
		t.Errorf("SelectionIndices = %v, want %v", got, want)
	}
}

func TestSelectionModelSingleRejectsMulti(t *testing.T) {
	m := NewSelectionModel(true)
	m.SetCount(5)

	if err := m.SetSelection(2); err != nil {
		t.Fatalf("SetSelection failed: %v", err)
	}

	changed, err := m.Select([]int{0, 1, 2})
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if changed {
		t.Error("multi-index Select in single mode should be a no-op")
	}
	if got := m.SelectionIndices(); !slices.Equal(got, []int{2}) {
		t.Errorf("selection changed to %v, want [2]", got)
	}
}

func TestSelectionModelSingleSelectReplaces(t *testing.T) {
	m := NewSelectionModel(true)
	m.SetCount(5)

	if _, err := m.Select([]int{1}); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if _, err := m.Select([]int{3}); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if got := m.SelectionIndices(); !slices.Equal(got, []int{3}) {
		t.Errorf("selection = %v, want [3]", got)
	}
}

func TestSelectionModelToggleTwiceRestores(t *testing.T) {
	m := NewSelectionModel(false)
	m.SetCount(5)
	if err := m.SetSelection(1); err != nil {
		t.Fatalf("SetSelection failed: %v", err)
	}
	before := m.SelectionIndex()

	if err := m.ToggleSelection(3); err != nil {
		t.Fatalf("ToggleSelection failed: %v", err)
	}
	if err := m.ToggleSelection(3); err != nil {
		t.Fatalf("ToggleSelection failed: %v", err)
	}

	if m.IsSelected(3) {
		t.Error("index 3 should be deselected after toggling twice")
	}
	if got := m.SelectionIndex(); got != before {
		t.Errorf("SelectionIndex = %d, want %d", got, before)
	}
	if m.Current() != 3 {
		t.Errorf("Current = %d, want 3 (toggle moves focus)", m.Current())
	}
}

func TestSelectionModelStickyAnchor(t *testing.T) {
	m := NewSelectionModel(false)
	m.SetCount(10)

	if err := m.SetSelection(2); err != nil {
		t.Fatalf("SetSelection failed: %v", err)
	}
	if err := m.MoveSelectionRelative(3, true, false); err != nil {
		t.Fatalf("MoveSelectionRelative failed: %v", err)
	}
	if got := m.SelectionIndices(); !slices.Equal(got, []int{2, 3, 4, 5}) {
		t.Fatalf("selection after extend = %v, want [2 3 4 5]", got)
	}

	// The second extension pivots on the original anchor, not current.
	if err := m.MoveSelectionRelative(-1, true, false); err != nil {
		t.Fatalf("MoveSelectionRelative failed: %v", err)
	}
	if got := m.SelectionIndices(); !slices.Equal(got, []int{2, 3, 4}) {
		t.Errorf("selection after shrink = %v, want [2 3 4]", got)
	}
	if m.Anchor() != 2 {
		t.Errorf("Anchor = %d, want 2", m.Anchor())
	}
	if m.Current() != 4 {
		t.Errorf("Current = %d, want 4", m.Current())
	}
}

func TestSelectionModelShrinkCountDropsSelection(t *testing.T) {
	m := NewSelectionModel(false)
	m.SetCount(10)
	if _, err := m.Select([]int{1, 4, 7, 9}); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if err := m.SetTopIndex(8); err != nil {
		t.Fatalf("SetTopIndex failed: %v", err)
	}

	m.SetCount(5)

	if got := m.SelectionIndices(); !slices.Equal(got, []int{1, 4}) {
		t.Errorf("selection = %v, want [1 4]", got)
	}
	if m.TopIndex() != 4 {
		t.Errorf("TopIndex = %d, want 4 (clamped)", m.TopIndex())
	}
}

func TestSelectionModelShrinkToZero(t *testing.T) {
	m := NewSelectionModel(false)
	m.SetCount(3)
	if err := m.SetSelection(2); err != nil {
		t.Fatalf("SetSelection failed: %v", err)
	}

	m.SetCount(0)

	if m.SelectionCount() != 0 {
		t.Errorf("SelectionCount = %d, want 0", m.SelectionCount())
	}
	if m.Current() != -1 || m.Anchor() != -1 {
		t.Errorf("current/anchor = %d/%d, want -1/-1", m.Current(), m.Anchor())
	}
	if m.TopIndex() != 0 {
		t.Errorf("TopIndex = %d, want 0", m.TopIndex())
	}
}

func TestSelectionModelAddShifts(t *testing.T) {
	m := NewSelectionModel(false)
	m.SetCount(5)
	if _, err := m.Select([]int{1, 3}); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if err := m.SetSelection(3); err != nil {
		t.Fatalf("SetSelection failed: %v", err)
	}
	if _, err := m.Select([]int{1}); err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	if err := m.Add(2); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if m.Count() != 6 {
		t.Errorf("Count = %d, want 6", m.Count())
	}
	if got := m.SelectionIndices(); !slices.Equal(got, []int{1, 4}) {
		t.Errorf("selection = %v, want [1 4]", got)
	}
	if m.Current() != 4 || m.Anchor() != 4 {
		t.Errorf("current/anchor = %d/%d, want 4/4", m.Current(), m.Anchor())
	}
}

func TestSelectionModelRemoveShifts(t *testing.T) {
	m := NewSelectionModel(false)
	m.SetCount(5)
	if _, err := m.Select([]int{1, 2, 4}); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if err := m.SetCurrent(4); err != nil {
		t.Fatalf("SetCurrent failed: %v", err)
	}

	if err := m.Remove(2); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	if m.Count() != 4 {
		t.Errorf("Count = %d, want 4", m.Count())
	}
	if got := m.SelectionIndices(); !slices.Equal(got, []int{1, 3}) {
		t.Errorf("selection = %v, want [1 3]", got)
	}
	if m.Current() != 3 {
		t.Errorf("Current = %d, want 3", m.Current())
	}
}

func TestSelectionModelRemoveLastClearsFocus(t *testing.T) {
	m := NewSelectionModel(false)
	m.SetCount(1)
	if err := m.SetSelection(0); err != nil {
		t.Fatalf("SetSelection failed: %v", err)
	}

	if err := m.Remove(0); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	if m.Count() != 0 {
		t.Errorf("Count = %d, want 0", m.Count())
	}
	if m.Current() != -1 || m.Anchor() != -1 {
		t.Errorf("current/anchor = %d/%d, want -1/-1", m.Current(), m.Anchor())
	}
}

func TestSelectionModelRemoveFromEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Remove on empty model should panic")
		}
	}()
	m := NewSelectionModel(false)
	_ = m.Remove(0)
}

func TestSelectionModelOutOfRange(t *testing.T) {
	m := NewSelectionModel(false)
	m.SetCount(3)

	if err := m.SetSelection(3); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("SetSelection(3) error = %v, want ErrOutOfRange", err)
	}
	if err := m.ToggleSelection(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("ToggleSelection(-1) error = %v, want ErrOutOfRange", err)
	}
	if err := m.SetTopIndex(5); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("SetTopIndex(5) error = %v, want ErrOutOfRange", err)
	}

	// Bulk operations skip invalid entries instead of failing.
	changed, err := m.Select([]int{-5, 1, 99})
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if !changed {
		t.Error("Select should apply the in-range entry")
	}
	if got := m.SelectionIndices(); !slices.Equal(got, []int{1}) {
		t.Errorf("selection = %v, want [1]", got)
	}

	if _, err := m.Select(nil); !errors.Is(err, ErrNilArgument) {
		t.Errorf("Select(nil) error = %v, want ErrNilArgument", err)
	}
	if _, err := m.Deselect(nil); !errors.Is(err, ErrNilArgument) {
		t.Errorf("Deselect(nil) error = %v, want ErrNilArgument", err)
	}
}

func TestSelectionModelRangeWithoutAnchor(t *testing.T) {
	m := NewSelectionModel(false)
	m.SetCount(5)

	// No anchor set yet: range select degrades to exclusive select.
	if err := m.SelectRangeTo(3); err != nil {
		t.Fatalf("SelectRangeTo failed: %v", err)
	}
	if got := m.SelectionIndices(); !slices.Equal(got, []int{3}) {
		t.Errorf("selection = %v, want [3]", got)
	}
	if m.Anchor() != 3 {
		t.Errorf("Anchor = %d, want 3", m.Anchor())
	}
}

func TestSelectionModelRelativeFromNothing(t *testing.T) {
	m := NewSelectionModel(false)
	m.SetCount(10)
	if err := m.SetTopIndex(4); err != nil {
		t.Fatalf("SetTopIndex failed: %v", err)
	}

	// With no current row, relative movement starts at the top index.
	if err := m.MoveSelectionRelative(1, false, false); err != nil {
		t.Fatalf("MoveSelectionRelative failed: %v", err)
	}
	if got := m.SelectionIndices(); !slices.Equal(got, []int{4}) {
		t.Errorf("selection = %v, want [4]", got)
	}
}

func TestSelectionModelCtrlMovesFocusOnly(t *testing.T) {
	m := NewSelectionModel(false)
	m.SetCount(10)
	if err := m.SetSelection(2); err != nil {
		t.Fatalf("SetSelection failed: %v", err)
	}

	if err := m.MoveSelectionAbsolute(7, false, true); err != nil {
		t.Fatalf("MoveSelectionAbsolute failed: %v", err)
	}

	if got := m.SelectionIndices(); !slices.Equal(got, []int{2}) {
		t.Errorf("selection = %v, want [2]", got)
	}
	if m.Current() != 7 {
		t.Errorf("Current = %d, want 7", m.Current())
	}
	if m.Anchor() != 2 {
		t.Errorf("Anchor = %d, want 2", m.Anchor())
	}
}

func TestSelectionModelSelectAll(t *testing.T) {
	m := NewSelectionModel(false)
	m.SetCount(4)
	if !m.SelectAll() {
		t.Error("SelectAll should report a change")
	}
	if got := m.SelectionIndices(); !slices.Equal(got, []int{0, 1, 2, 3}) {
		t.Errorf("selection = %v, want [0 1 2 3]", got)
	}

	single := NewSelectionModel(true)
	single.SetCount(4)
	if single.SelectAll() {
		t.Error("SelectAll in single mode should be a no-op")
	}
}
