// SPDX-License-Identifier: MIT

package floodfill

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/gridkit/grid"
)

// Components finds every connected region of cells whose value satisfies
// pred, using the same neighbor relation and options as Fill.
// Each region is a slice of linear indexes sorted ascending; regions are
// ordered by their smallest index.
//
// Regions need a symmetric neighbor relation: a direction set passed with
// WithDirections must contain the opposite of each of its directions, and
// WithMaxCells is not accepted. Both are rejected with ErrOptionViolation.
//
// Time:   O(N·d), where d is the number of directions.
// Memory: O(N) for visited flags and output.
func Components[P comparable, G grid.Grid[P], T any](d *grid.Data[P, G, T], pred func(T) bool, opts ...Option) ([][]int, error) {
	w, err := newWalker(d, pred, opts)
	if err != nil {
		return nil, err
	}
	if w.opts.MaxCells > 0 {
		return nil, fmt.Errorf("%w: MaxCells is not supported by Components", ErrOptionViolation)
	}
	for _, dir := range w.dirs {
		if !slices.Contains(w.dirs, dir.Opposite()) {
			return nil, fmt.Errorf("%w: direction %s without its opposite %s", ErrOptionViolation, dir, dir.Opposite())
		}
	}

	var comps [][]int
	for i := range d.Indexes() {
		if w.seen[i] {
			continue
		}
		if !w.accepts(i) {
			w.seen[i] = true
			continue
		}
		// Symmetric neighbors: i is the smallest index of its region.
		idx, err := w.walk(i)
		if err != nil {
			return nil, err
		}
		comp := slices.Clone(idx)
		slices.Sort(comp)
		comps = append(comps, comp)
	}
	return comps, nil
}
