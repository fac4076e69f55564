package gridkit

import (
	"fmt"
	"slices"
)

// rowStore owns the table's item identities. Dense mode keeps an
// eagerly created slice; virtual mode keeps a sparse index map whose
// authoritative total count is tracked independently of how many items
// have actually been materialized.
type rowStore struct {
	virtual bool

	dense []*Item

	sparse       map[int]*Item
	virtualCount int
}

func newRowStore(virtual bool) *rowStore {
	s := &rowStore{virtual: virtual}
	if virtual {
		s.sparse = make(map[int]*Item)
	}
	return s
}

// count returns the total row count, which in virtual mode may far
// exceed the number of materialized items.
func (s *rowStore) count() int {
	if s.virtual {
		return s.virtualCount
	}
	return len(s.dense)
}

// peek returns the item at index without materializing it. Returns nil
// for unmaterialized virtual indices and out-of-range indices.
func (s *rowStore) peek(index int) *Item {
	if index < 0 || index >= s.count() {
		return nil
	}
	if s.virtual {
		return s.sparse[index]
	}
	return s.dense[index]
}

// get returns the item at index, materializing a virtual item on first
// access via make. Population is the caller's concern.
func (s *rowStore) get(index int, create func() *Item) (*Item, error) {
	if index < 0 || index >= s.count() {
		return nil, fmt.Errorf("%w: item %d with count %d", ErrOutOfRange, index, s.count())
	}
	if !s.virtual {
		return s.dense[index], nil
	}
	if it, ok := s.sparse[index]; ok {
		return it, nil
	}
	it := create()
	s.sparse[index] = it
	return it, nil
}

// insert places an item at index, shifting subsequent identities up.
func (s *rowStore) insert(item *Item, index int) error {
	if index < 0 || index > s.count() {
		return fmt.Errorf("%w: insert at %d with count %d", ErrOutOfRange, index, s.count())
	}
	if s.virtual {
		shiftUp(s.sparse, index)
		s.sparse[index] = item
		s.virtualCount++
		return nil
	}
	s.dense = append(s.dense, nil)
	copy(s.dense[index+1:], s.dense[index:])
	s.dense[index] = item
	return nil
}

// remove drops the item at index, shifting subsequent identities down.
// The removed item, if materialized, is returned for release.
func (s *rowStore) remove(index int) (*Item, error) {
	if index < 0 || index >= s.count() {
		return nil, fmt.Errorf("%w: remove %d with count %d", ErrOutOfRange, index, s.count())
	}
	if s.virtual {
		removed := s.sparse[index]
		delete(s.sparse, index)
		shiftDown(s.sparse, index)
		s.virtualCount--
		return removed, nil
	}
	removed := s.dense[index]
	s.dense = append(s.dense[:index], s.dense[index+1:]...)
	return removed, nil
}

// setCount resizes the store. Shrinking evicts and returns the items at
// or beyond the new count so the caller can release them. Growing a
// dense store creates items via create eagerly; growing a virtual store
// only raises the count — items materialize on access.
func (s *rowStore) setCount(n int, create func() *Item) []*Item {
	if n < 0 {
		n = 0
	}
	var evicted []*Item

	if s.virtual {
		if n < s.virtualCount {
			for idx, it := range s.sparse {
				if idx >= n {
					evicted = append(evicted, it)
					delete(s.sparse, idx)
				}
			}
		}
		s.virtualCount = n
		return evicted
	}

	for len(s.dense) > n {
		last := len(s.dense) - 1
		evicted = append(evicted, s.dense[last])
		s.dense = s.dense[:last]
	}
	for len(s.dense) < n {
		s.dense = append(s.dense, create())
	}
	return evicted
}

// indexOf returns the row index of the item, or -1.
func (s *rowStore) indexOf(item *Item) int {
	if s.virtual {
		for idx, it := range s.sparse {
			if it == item {
				return idx
			}
		}
		return -1
	}
	for idx, it := range s.dense {
		if it == item {
			return idx
		}
	}
	return -1
}

// each calls f for every materialized item.
func (s *rowStore) each(f func(index int, item *Item)) {
	if s.virtual {
		for idx, it := range s.sparse {
			f(idx, it)
		}
		return
	}
	for idx, it := range s.dense {
		f(idx, it)
	}
}

// releaseAll returns every materialized item and empties the store
// without changing mode.
func (s *rowStore) releaseAll() []*Item {
	var items []*Item
	s.each(func(_ int, it *Item) { items = append(items, it) })
	s.dense = nil
	if s.virtual {
		s.sparse = make(map[int]*Item)
		s.virtualCount = 0
	}
	return items
}

// shiftUp renumbers sparse keys >= from one index up, making room for
// an insertion.
func shiftUp(m map[int]*Item, from int) {
	keys := make([]int, 0, len(m))
	for k := range m {
		if k >= from {
			keys = append(keys, k)
		}
	}
	// Highest first so renumbering never collides.
	slices.Sort(keys)
	for i := len(keys) - 1; i >= 0; i-- {
		k := keys[i]
		m[k+1] = m[k]
		delete(m, k)
	}
}

// shiftDown renumbers sparse keys > from one index down, closing the
// gap left by a removal.
func shiftDown(m map[int]*Item, from int) {
	keys := make([]int, 0, len(m))
	for k := range m {
		if k > from {
			keys = append(keys, k)
		}
	}
	// Lowest first so renumbering never collides.
	slices.Sort(keys)
	for _, k := range keys {
		m[k-1] = m[k]
		delete(m, k)
	}
}
