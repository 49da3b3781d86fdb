// SPDX-License-Identifier: MIT

package floodfill

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/gridkit/direction"
)

// Sentinel errors for flood fill execution.
var (
	// ErrNilData is returned when the container is nil or holds no cells.
	ErrNilData = errors.New("floodfill: data is nil or empty")

	// ErrNilPredicate is returned when no fill predicate is supplied.
	ErrNilPredicate = errors.New("floodfill: predicate is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("floodfill: invalid option supplied")
)

// Option configures a fill via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the
// fill is invoked.
type Option func(*Options)

// Options holds the parameters of a single fill or component search.
type Options struct {
	// Directions restricts expansion; nil means every direction of the grid.
	Directions []direction.Direction

	// MaxCells, if > 0, stops collecting once that many cells are filled.
	MaxCells int

	// OnVisit is called once per collected index. If it returns an error,
	// the fill aborts and propagates that error.
	OnVisit func(index int) error

	// Queue is a caller-owned buffer reused as the BFS queue.
	Queue []int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - all grid directions
//   - no cell limit
//   - a no-op OnVisit hook
//   - no pre-allocated queue.
func DefaultOptions() Options {
	return Options{
		Directions: nil,
		MaxCells:   0,
		OnVisit:    func(int) error { return nil },
		Queue:      nil,
		err:        nil,
	}
}

// WithDirections limits expansion to dirs. Every direction must belong to the
// grid's coordinate system; this is checked when the fill starts. Fill accepts
// one-way sets; Components requires each direction's opposite as well.
func WithDirections(dirs ...direction.Direction) Option {
	return func(o *Options) {
		if len(dirs) == 0 {
			o.err = fmt.Errorf("%w: WithDirections needs at least one direction", ErrOptionViolation)
			return
		}
		o.Directions = slices.Clone(dirs)
	}
}

// WithMaxCells caps the number of filled cells.
//
//	n > 0: collect at most n cells
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxCells(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxCells cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxCells = n
	}
}

// WithOnVisit registers a callback run for every collected index; returning
// an error from it stops the fill.
func WithOnVisit(fn func(index int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithQueue supplies a buffer reused as the traversal queue, so repeated
// fills over large grids need not reallocate it. The buffer's contents are
// overwritten; results never alias it.
func WithQueue(buf []int) Option {
	return func(o *Options) {
		o.Queue = buf
	}
}

// Result holds the region collected by a fill.
//   - Indexes: linear indexes of the filled cells, ascending.
//   - Positions: the matching positions, in the same order.
type Result[P comparable] struct {
	Indexes   []int
	Positions []P
}

// Len returns the number of filled cells.
func (r *Result[P]) Len() int { return len(r.Indexes) }

// Contains reports whether index i was filled.
func (r *Result[P]) Contains(i int) bool {
	_, ok := slices.BinarySearch(r.Indexes, i)
	return ok
}
