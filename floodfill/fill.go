// SPDX-License-Identifier: MIT

package floodfill

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/gridkit/direction"
	"github.com/katalvlaran/gridkit/grid"
)

// walker encapsulates the mutable state of one traversal. The seen bitmap
// may span several walks (see Components); the queue is reset per walk.
type walker[P comparable, G grid.Grid[P], T any] struct {
	data  *grid.Data[P, G, T]
	grid  G
	pred  func(T) bool
	opts  Options
	dirs  []direction.Direction
	seen  []bool
	queue []int
}

// newWalker validates inputs and options and prepares a walker over d.
func newWalker[P comparable, G grid.Grid[P], T any](d *grid.Data[P, G, T], pred func(T) bool, opts []Option) (*walker[P, G, T], error) {
	if d == nil || d.Len() == 0 {
		return nil, ErrNilData
	}
	if pred == nil {
		return nil, ErrNilPredicate
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	g := d.Grid()
	dirs := g.Directions()
	if o.Directions != nil {
		for _, dir := range o.Directions {
			if !slices.Contains(dirs, dir) {
				return nil, fmt.Errorf("%w: direction %s not in the grid's set", ErrOptionViolation, dir)
			}
		}
		dirs = o.Directions
	}

	n := d.Len()
	queue := o.Queue[:0]
	if cap(queue) == 0 {
		queue = make([]int, 0, 64)
	}

	return &walker[P, G, T]{
		data:  d,
		grid:  g,
		pred:  pred,
		opts:  o,
		dirs:  dirs,
		seen:  make([]bool, n),
		queue: queue,
	}, nil
}

// accepts reports whether the cell at index i satisfies the predicate.
func (w *walker[P, G, T]) accepts(i int) bool {
	v, err := w.data.Get(i)
	return err == nil && w.pred(v)
}

// walk collects the region containing start, which must already satisfy the
// predicate. The returned slice aliases w.queue and is only valid until the
// next walk.
func (w *walker[P, G, T]) walk(start int) ([]int, error) {
	w.queue = append(w.queue[:0], start)
	w.seen[start] = true
	limit := w.opts.MaxCells

	for qi := 0; qi < len(w.queue); qi++ {
		u := w.queue[qi]
		if err := w.opts.OnVisit(u); err != nil {
			return nil, fmt.Errorf("floodfill: OnVisit error at %d: %w", u, err)
		}
		pos, err := w.grid.PosFromIndex(u)
		if err != nil {
			return nil, err
		}
		for _, dir := range w.dirs {
			if limit > 0 && len(w.queue) >= limit {
				break
			}
			nb, ok := w.grid.Neighbor(pos, dir)
			if !ok {
				continue // boundary
			}
			vi, err := w.grid.IndexFromPos(nb)
			if err != nil || w.seen[vi] {
				continue
			}
			w.seen[vi] = true
			if w.accepts(vi) {
				w.queue = append(w.queue, vi)
			}
		}
	}
	return w.queue, nil
}

// region runs the fill from start and returns the sorted indexes.
func (w *walker[P, G, T]) region(start P) ([]int, error) {
	si, err := w.grid.IndexFromPos(start)
	if err != nil {
		return nil, fmt.Errorf("floodfill: start: %w", err)
	}
	if !w.accepts(si) {
		return []int{}, nil
	}
	idx, err := w.walk(si)
	if err != nil {
		return nil, err
	}
	out := slices.Clone(idx)
	slices.Sort(out)
	return out, nil
}

func (w *walker[P, G, T]) result(idx []int) *Result[P] {
	res := &Result[P]{Indexes: idx, Positions: make([]P, len(idx))}
	for k, i := range idx {
		res.Positions[k], _ = w.grid.PosFromIndex(i)
	}
	return res
}

// Fill runs a breadth-first flood fill over d from start and returns every
// position connected to start through cells whose value satisfies pred.
//
// A start whose value fails pred yields an empty Result and a nil error.
// Returns ErrNilData, ErrNilPredicate, ErrOptionViolation, a wrapped
// grid.ErrPositionOutOfBounds for a start outside the grid, or any OnVisit
// error.
func Fill[P comparable, G grid.Grid[P], T any](d *grid.Data[P, G, T], start P, pred func(T) bool, opts ...Option) (*Result[P], error) {
	w, err := newWalker(d, pred, opts)
	if err != nil {
		return nil, err
	}
	idx, err := w.region(start)
	if err != nil {
		return nil, err
	}
	return w.result(idx), nil
}

// FillWith runs Fill and then writes value into every filled cell.
func FillWith[P comparable, G grid.Grid[P], T any](d *grid.Data[P, G, T], start P, pred func(T) bool, value T, opts ...Option) (*Result[P], error) {
	return FillFunc(d, start, pred, func(v *T) { *v = value }, opts...)
}

// FillFunc runs Fill and then calls action once on every filled cell, in
// ascending index order. The region is fixed before the first action runs,
// so the action may change cells to values that still satisfy pred.
func FillFunc[P comparable, G grid.Grid[P], T any](d *grid.Data[P, G, T], start P, pred func(T) bool, action func(*T), opts ...Option) (*Result[P], error) {
	if action == nil {
		return nil, fmt.Errorf("%w: action is nil", ErrOptionViolation)
	}
	res, err := Fill(d, start, pred, opts...)
	if err != nil {
		return nil, err
	}
	for _, i := range res.Indexes {
		p, _ := d.Ptr(i)
		action(p)
	}
	return res, nil
}
