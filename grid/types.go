// SPDX-License-Identifier: MIT

package grid

import (
	"errors"

	"github.com/katalvlaran/gridkit/direction"
)

// Sentinel errors for grid and container operations.
var (
	// ErrIndexOutOfBounds indicates a linear index outside [0, TotalSize()).
	ErrIndexOutOfBounds = errors.New("grid: index out of bounds")
	// ErrPositionOutOfBounds indicates a position outside the grid extents.
	ErrPositionOutOfBounds = errors.New("grid: position out of bounds")
	// ErrNilGrid indicates a container was requested over a nil grid.
	ErrNilGrid = errors.New("grid: grid is nil")
	// ErrEmptyGrid indicates a grid with no addressable positions.
	ErrEmptyGrid = errors.New("grid: total size must be positive")
	// ErrSizeMismatch indicates a cell slice whose length differs from TotalSize.
	ErrSizeMismatch = errors.New("grid: cell count does not match grid size")
)

// CoordinateSystem describes the neighbor directions a topology supports.
//
// The k-th element of Directions() has index k; indexes are contiguous in
// [0, DirectionsCount()) and stable for the lifetime of the system.
type CoordinateSystem interface {
	// Directions returns the supported directions in index order.
	Directions() []direction.Direction
	// DirectionsCount returns len(Directions()).
	DirectionsCount() int
}

// Grid is the capability set every concrete topology implements.
//
// IndexFromPos and PosFromIndex are mutually inverse over [0, TotalSize()).
// Neighbor returns false when the step leaves the grid on a non-wrapping axis
// or when d is not part of the grid's direction set.
type Grid[P comparable] interface {
	CoordinateSystem

	// TotalSize returns the number of addressable positions; always > 0.
	TotalSize() int
	// IndexFromPos maps a position to its linear index.
	IndexFromPos(p P) (int, error)
	// PosFromIndex maps a linear index to its position.
	PosFromIndex(i int) (P, error)
	// Neighbor returns the position one step from p in direction d.
	Neighbor(p P, d direction.Direction) (P, bool)
}
