package gridkit

import (
	"errors"
	"testing"
)

func TestRowStoreDense(t *testing.T) {
	s := newRowStore(false)
	mk := func() *Item { return &Item{} }

	if evicted := s.setCount(5, mk); evicted != nil {
		t.Fatalf("growing evicted %d items", len(evicted))
	}
	if s.count() != 5 {
		t.Fatalf("count = %d, want 5", s.count())
	}
	for i := 0; i < 5; i++ {
		if s.peek(i) == nil {
			t.Fatalf("dense row %d not materialized", i)
		}
	}

	evicted := s.setCount(2, mk)
	if len(evicted) != 3 || s.count() != 2 {
		t.Fatalf("shrink evicted %d with count %d, want 3 and 2", len(evicted), s.count())
	}
}

func TestRowStoreVirtualSparse(t *testing.T) {
	s := newRowStore(true)
	mk := func() *Item { return &Item{} }

	s.setCount(1000, mk)
	if s.count() != 1000 {
		t.Fatalf("count = %d, want 1000", s.count())
	}
	if s.peek(500) != nil {
		t.Fatal("peek must not materialize")
	}

	it, err := s.get(500, mk)
	if err != nil || it == nil {
		t.Fatalf("get(500) = %v, %v", it, err)
	}
	if s.peek(500) != it {
		t.Fatal("get must cache the materialized item")
	}
	if again, _ := s.get(500, mk); again != it {
		t.Fatal("second get must return the same item")
	}

	if _, err := s.get(1000, mk); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("get(1000) error = %v, want ErrOutOfRange", err)
	}
}

func TestRowStoreInsertRemoveShiftsSparseKeys(t *testing.T) {
	s := newRowStore(true)
	mk := func() *Item { return &Item{} }
	s.setCount(10, mk)

	a, _ := s.get(3, mk)
	b, _ := s.get(7, mk)

	if err := s.insert(&Item{}, 5); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if s.count() != 11 {
		t.Fatalf("count = %d, want 11", s.count())
	}
	if s.peek(3) != a || s.peek(8) != b {
		t.Fatal("insert must shift keys at or past the insertion point only")
	}

	removed, err := s.remove(3)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if removed != a {
		t.Fatal("remove must return the materialized item")
	}
	if s.peek(7) != b || s.count() != 10 {
		t.Fatal("remove must close the key gap")
	}

	// Removing an unmaterialized row returns nil but still shifts.
	removed, err = s.remove(0)
	if err != nil || removed != nil {
		t.Fatalf("remove(0) = %v, %v; want nil, nil", removed, err)
	}
	if s.peek(6) != b {
		t.Fatal("keys above an unmaterialized removal must shift down")
	}
}

func TestRowStoreIndexOf(t *testing.T) {
	s := newRowStore(true)
	mk := func() *Item { return &Item{} }
	s.setCount(100, mk)

	it, _ := s.get(42, mk)
	if got := s.indexOf(it); got != 42 {
		t.Errorf("indexOf = %d, want 42", got)
	}
	if got := s.indexOf(&Item{}); got != -1 {
		t.Errorf("indexOf(stranger) = %d, want -1", got)
	}
}

func TestRowStoreReleaseAll(t *testing.T) {
	s := newRowStore(true)
	mk := func() *Item { return &Item{} }
	s.setCount(50, mk)
	s.get(1, mk)
	s.get(2, mk)

	items := s.releaseAll()
	if len(items) != 2 {
		t.Fatalf("released %d items, want 2", len(items))
	}
	if s.count() != 0 {
		t.Fatalf("count = %d after releaseAll, want 0", s.count())
	}
}
