package gridkit

import (
	"errors"
	"testing"
)

func TestItemTextAndImagePerColumn(t *testing.T) {
	tbl := newColumnTable(t, 2)
	it, err := tbl.Item(0)
	if err != nil {
		t.Fatalf("Item failed: %v", err)
	}

	if err := it.SetText(2, "last"); err != nil {
		t.Fatalf("SetText failed: %v", err)
	}
	if got := it.Text(2); got != "last" {
		t.Errorf("text = %q, want last", got)
	}
	if got := it.Text(0); got != "" {
		t.Errorf("unset column text = %q, want empty", got)
	}

	if err := it.SetText(3, "x"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("SetText past the last column: error = %v, want ErrOutOfRange", err)
	}

	img := Image{TextureID: 7, Width: 16, Height: 16}
	if err := it.SetImage(1, img); err != nil {
		t.Fatalf("SetImage failed: %v", err)
	}
	if got := it.ImageAt(1); got != img {
		t.Errorf("image = %+v, want %+v", got, img)
	}
}

func TestItemCellColorFallback(t *testing.T) {
	tbl := newColumnTable(t, 1)
	it, err := tbl.Item(0)
	if err != nil {
		t.Fatalf("Item failed: %v", err)
	}

	rowBg := RGBA(40, 40, 40, 255)
	cellBg := RGBA(200, 0, 0, 255)
	if err := it.SetBackground(rowBg); err != nil {
		t.Fatalf("SetBackground failed: %v", err)
	}
	if err := it.SetCellBackground(1, cellBg); err != nil {
		t.Fatalf("SetCellBackground failed: %v", err)
	}

	if got := it.CellBackground(1); got != cellBg {
		t.Errorf("cell 1 background = %#x, want the cell override", got)
	}
	if got := it.CellBackground(0); got != rowBg {
		t.Errorf("cell 0 background = %#x, want the row fallback", got)
	}
	if got := it.CellBackground(2); got != rowBg {
		t.Errorf("cell 2 background = %#x, want the row fallback", got)
	}
}

func TestItemIndexTracksShifts(t *testing.T) {
	tbl := newTestTable(t, 5)
	it, err := tbl.Item(3)
	if err != nil {
		t.Fatalf("Item failed: %v", err)
	}
	if it.Index() != 3 {
		t.Fatalf("index = %d, want 3", it.Index())
	}

	if _, err := tbl.InsertItem(0); err != nil {
		t.Fatalf("InsertItem failed: %v", err)
	}
	if it.Index() != 4 {
		t.Errorf("index = %d after insert above, want 4", it.Index())
	}

	if err := tbl.Remove(0); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if it.Index() != 3 {
		t.Errorf("index = %d after remove above, want 3", it.Index())
	}
}

func TestItemDisposeRemovesRow(t *testing.T) {
	tbl := newTestTable(t, 5)
	it, err := tbl.Item(2)
	if err != nil {
		t.Fatalf("Item failed: %v", err)
	}

	it.Dispose()
	if !it.Disposed() {
		t.Fatal("item should be disposed")
	}
	if tbl.ItemCount() != 4 {
		t.Errorf("ItemCount = %d, want 4", tbl.ItemCount())
	}
	if err := it.SetText(0, "x"); !errors.Is(err, ErrDisposed) {
		t.Errorf("SetText on disposed item: error = %v, want ErrDisposed", err)
	}
	if it.Index() != -1 {
		t.Errorf("index = %d on disposed item, want -1", it.Index())
	}
}

func TestItemGeometryInvalidatedByContent(t *testing.T) {
	tbl := newTestTable(t, 3)
	it, err := tbl.Item(0)
	if err != nil {
		t.Fatalf("Item failed: %v", err)
	}

	// Prime the cell size cache.
	sz := tbl.cellSize(it, 0, 0)
	if !it.geomValid {
		t.Fatal("measuring should validate item geometry")
	}

	if err := it.SetText(0, "wider than before"); err != nil {
		t.Fatalf("SetText failed: %v", err)
	}
	if it.geomValid {
		t.Fatal("content change should invalidate geometry")
	}
	if got := tbl.cellSize(it, 0, 0); got.X <= sz.X {
		t.Errorf("re-measured width %v, want growth past %v", got.X, sz.X)
	}
}

func TestGrowTo(t *testing.T) {
	s := growTo([]string{"a"}, 4)
	if len(s) != 4 || s[0] != "a" || s[3] != "" {
		t.Errorf("growTo = %v, want [a   ] of length 4", s)
	}
	if got := growTo(s, 2); len(got) != 4 {
		t.Errorf("growTo must never shrink: len = %d", len(got))
	}
}
