package gridkit

import (
	"testing"
)

func newRenderTable(t *testing.T, rows int) *Table {
	t.Helper()
	tbl := New(WithMultiSelection())
	tbl.SetHeaderVisible(false)
	tbl.SetBounds(Rect{X: 0, Y: 0, W: 300, H: 200})
	if err := tbl.SetItemCount(rows); err != nil {
		t.Fatalf("SetItemCount failed: %v", err)
	}
	return tbl
}

func render(t *testing.T, tbl *Table) *DrawList {
	t.Helper()
	dl := AcquireDrawList()
	t.Cleanup(func() { ReleaseDrawList(dl) })
	if err := tbl.Render(dl); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return dl
}

func TestRenderProducesGeometry(t *testing.T) {
	tbl := newRenderTable(t, 5)
	it, err := tbl.Item(0)
	if err != nil {
		t.Fatalf("Item failed: %v", err)
	}
	_ = it.SetText(0, "hello")

	dl := render(t, tbl)
	if len(dl.VtxBuffer) == 0 || len(dl.CmdBuffer) == 0 {
		t.Fatal("render produced no geometry")
	}
}

func TestEraseDetailBits(t *testing.T) {
	tbl := newRenderTable(t, 5)
	if err := tbl.SetSelectionIndex(1); err != nil {
		t.Fatalf("SetSelectionIndex failed: %v", err)
	}
	tbl.SetFocused(true)
	tbl.hoverRow = 1

	details := map[int]Detail{}
	tbl.OnErase(func(e *CellEvent) {
		if e.Column == 0 {
			details[e.Index] = e.Detail
		}
	})
	render(t, tbl)

	d := details[1]
	for _, bit := range []Detail{DetailBackground, DetailForeground, DetailSelected, DetailHot, DetailFocused} {
		if !d.Has(bit) {
			t.Errorf("row 1 detail %b missing bit %b", d, bit)
		}
	}

	d = details[0]
	if d != DetailBackground|DetailForeground {
		t.Errorf("row 0 detail = %b, want background|foreground only", d)
	}
}

func TestErasedCellStillGetsPaint(t *testing.T) {
	tbl := newRenderTable(t, 3)

	tbl.OnErase(func(e *CellEvent) {
		if e.Index == 2 {
			e.Doit = false
		}
	})
	painted := map[int]Detail{}
	tbl.OnPaint(func(e *CellEvent) {
		painted[e.Index] = e.Detail
	})
	render(t, tbl)

	for i := 0; i < 3; i++ {
		if _, ok := painted[i]; !ok {
			t.Errorf("row %d never reached the paint phase", i)
		}
	}
	if painted[2] != 0 {
		t.Errorf("row 2 detail = %b, dropping Doit should clear all bits", painted[2])
	}
	if painted[0] == 0 {
		t.Errorf("row 0 detail cleared without a reason")
	}
}

func TestMeasureGrowthRepaintsOnce(t *testing.T) {
	tbl := newRenderTable(t, 5)

	measures := map[int]int{}
	tbl.OnMeasure(func(e *CellEvent) {
		measures[e.Index]++
		if e.Index == 0 {
			e.Bounds.H = 40
		}
	})
	paints := 0
	tbl.OnPaint(func(e *CellEvent) {
		if e.Index == 0 {
			paints++
		}
	})
	render(t, tbl)

	// The growth of row 0 forces exactly one corrective pass: every
	// visible row measured and painted twice, no third round.
	if measures[0] != 2 {
		t.Errorf("row 0 measured %d times, want 2", measures[0])
	}
	if measures[1] != 2 {
		t.Errorf("row 1 measured %d times, want 2", measures[1])
	}
	if paints != 2 {
		t.Errorf("row 0 painted %d times, want 2", paints)
	}
	if got := tbl.ItemHeight(0); got != 40 {
		t.Errorf("row 0 height = %v after measurement, want 40", got)
	}

	// A second render starts from the settled height: one pass only.
	for k := range measures {
		delete(measures, k)
	}
	render(t, tbl)
	if measures[0] != 1 {
		t.Errorf("row 0 measured %d times on the second render, want 1", measures[0])
	}
}

func TestMeasureShrinkDoesNotRepaint(t *testing.T) {
	tbl := newRenderTable(t, 3)

	measures := 0
	tbl.OnMeasure(func(e *CellEvent) {
		measures++
		e.Bounds.H = 2 // Smaller than the default height
	})
	render(t, tbl)

	// Shrinking never triggers the corrective pass and never shrinks
	// the row below its default height.
	if measures != 3 {
		t.Errorf("measure ran %d times, want 3", measures)
	}
	if got, want := tbl.ItemHeight(0), tbl.ItemHeight(1); got != want {
		t.Errorf("row heights diverged: %v vs %v", got, want)
	}
}

func TestPaintCallbackMayDisposeTable(t *testing.T) {
	tbl := newRenderTable(t, 3)
	tbl.OnPaint(func(e *CellEvent) {
		tbl.Dispose()
	})

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)
	if err := tbl.Render(dl); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !tbl.Disposed() {
		t.Fatal("table should be disposed")
	}
}

func TestVirtualRenderPopulatesVisibleRowsOnly(t *testing.T) {
	populated := map[int]bool{}
	tbl := New(WithVirtual(func(it *Item, index int) {
		populated[index] = true
	}))
	tbl.SetHeaderVisible(false)
	tbl.SetBounds(Rect{X: 0, Y: 0, W: 300, H: 200})
	if err := tbl.SetItemCount(10_000); err != nil {
		t.Fatalf("SetItemCount failed: %v", err)
	}

	render(t, tbl)

	// 200px over 14px rows: fifteen visible rows at most.
	if len(populated) == 0 || len(populated) > 16 {
		t.Fatalf("populated %d rows, want only the visible range", len(populated))
	}
	if populated[5000] {
		t.Error("an offscreen row was populated")
	}
}

func TestRendererInterfaceReceivesNegotiatedDetail(t *testing.T) {
	rec := &recordingRenderer{}
	tbl := New(WithRenderer(rec))
	tbl.SetHeaderVisible(false)
	tbl.SetBounds(Rect{X: 0, Y: 0, W: 300, H: 200})
	if err := tbl.SetItemCount(2); err != nil {
		t.Fatalf("SetItemCount failed: %v", err)
	}
	tbl.OnErase(func(e *CellEvent) {
		e.Detail &^= DetailBackground
	})

	render(t, tbl)

	if len(rec.details) != 2 {
		t.Fatalf("DrawCell ran %d times, want 2", len(rec.details))
	}
	for i, d := range rec.details {
		if d.Has(DetailBackground) {
			t.Errorf("cell %d: background bit survived the erase veto", i)
		}
		if !d.Has(DetailForeground) {
			t.Errorf("cell %d: foreground bit went missing", i)
		}
	}
}

// recordingRenderer wraps the default renderer and records the detail
// mask handed to each DrawCell.
type recordingRenderer struct {
	DefaultRenderer
	details []Detail
}

func (r *recordingRenderer) DrawCell(t *Table, e *CellEvent) {
	r.details = append(r.details, e.Detail)
	r.DefaultRenderer.DrawCell(t, e)
}
