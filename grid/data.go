// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"iter"
	"reflect"
)

// Data holds a grid definition and one value of T per grid index, stored in
// a dense row of length G.TotalSize().
type Data[P comparable, G Grid[P], T any] struct {
	grid  G
	cells []T
}

// NewData returns a container over g with every cell set to fill.
// Returns ErrNilGrid for a nil g and ErrEmptyGrid if g.TotalSize() <= 0.
func NewData[P comparable, G Grid[P], T any](g G, fill T) (*Data[P, G, T], error) {
	n, err := checkGrid[P](g)
	if err != nil {
		return nil, err
	}
	cells := make([]T, n)
	for i := range cells {
		cells[i] = fill
	}

	return &Data[P, G, T]{grid: g, cells: cells}, nil
}

// NewDataFunc returns a container over g whose cell i is gen(i), called once
// per index in ascending order.
func NewDataFunc[P comparable, G Grid[P], T any](g G, gen func(i int) T) (*Data[P, G, T], error) {
	n, err := checkGrid[P](g)
	if err != nil {
		return nil, err
	}
	cells := make([]T, n)
	for i := range cells {
		cells[i] = gen(i)
	}

	return &Data[P, G, T]{grid: g, cells: cells}, nil
}

// NewDataFrom returns a container over g holding a copy of cells.
// Returns ErrSizeMismatch when len(cells) != g.TotalSize().
func NewDataFrom[P comparable, G Grid[P], T any](g G, cells []T) (*Data[P, G, T], error) {
	n, err := checkGrid[P](g)
	if err != nil {
		return nil, err
	}
	if len(cells) != n {
		return nil, fmt.Errorf("%w: got %d cells, grid holds %d", ErrSizeMismatch, len(cells), n)
	}
	cp := make([]T, n)
	copy(cp, cells)

	return &Data[P, G, T]{grid: g, cells: cp}, nil
}

func checkGrid[P comparable, G Grid[P]](g G) (int, error) {
	if isNil(g) {
		return 0, ErrNilGrid
	}
	n := g.TotalSize()
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrEmptyGrid, n)
	}
	return n, nil
}

// isNil catches both an untyped nil and a typed nil pointer inside G.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Grid returns the grid this container is based on.
func (d *Data[P, G, T]) Grid() G { return d.grid }

// Len returns the number of cells, always Grid().TotalSize().
func (d *Data[P, G, T]) Len() int { return len(d.cells) }

func (d *Data[P, G, T]) checkIndex(i int) error {
	if i < 0 || i >= len(d.cells) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfBounds, i, len(d.cells))
	}
	return nil
}

// Get returns the value at index i.
func (d *Data[P, G, T]) Get(i int) (T, error) {
	if err := d.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return d.cells[i], nil
}

// Ptr returns a pointer to the value at index i for in-place mutation.
// The pointer stays valid for the life of the container.
func (d *Data[P, G, T]) Ptr(i int) (*T, error) {
	if err := d.checkIndex(i); err != nil {
		return nil, err
	}
	return &d.cells[i], nil
}

// Set stores v at index i.
func (d *Data[P, G, T]) Set(i int, v T) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	d.cells[i] = v
	return nil
}

// GetFromPos returns the value at position p.
func (d *Data[P, G, T]) GetFromPos(p P) (T, error) {
	i, err := d.grid.IndexFromPos(p)
	if err != nil {
		var zero T
		return zero, err
	}
	return d.Get(i)
}

// PtrFromPos returns a pointer to the value at position p.
func (d *Data[P, G, T]) PtrFromPos(p P) (*T, error) {
	i, err := d.grid.IndexFromPos(p)
	if err != nil {
		return nil, err
	}
	return d.Ptr(i)
}

// SetFromPos stores v at position p.
func (d *Data[P, G, T]) SetFromPos(p P, v T) error {
	i, err := d.grid.IndexFromPos(p)
	if err != nil {
		return err
	}
	return d.Set(i, v)
}

// Indexes yields every valid index in ascending order.
func (d *Data[P, G, T]) Indexes() iter.Seq[int] {
	n := len(d.cells)
	return func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// All yields (index, value) pairs in ascending index order.
func (d *Data[P, G, T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range d.cells {
			if !yield(i, v) {
				return
			}
		}
	}
}

// AllPtr yields (index, *value) pairs in ascending index order so callers
// can update cells in place.
func (d *Data[P, G, T]) AllPtr() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := range d.cells {
			if !yield(i, &d.cells[i]) {
				return
			}
		}
	}
}

// Reset sets every cell to v.
func (d *Data[P, G, T]) Reset(v T) {
	for i := range d.cells {
		d.cells[i] = v
	}
}

// Values returns a copy of the cells in index order.
func (d *Data[P, G, T]) Values() []T {
	cp := make([]T, len(d.cells))
	copy(cp, d.cells)
	return cp
}

// Clone returns a deep copy of the cells sharing the same immutable grid.
func (d *Data[P, G, T]) Clone() *Data[P, G, T] {
	return &Data[P, G, T]{grid: d.grid, cells: d.Values()}
}
