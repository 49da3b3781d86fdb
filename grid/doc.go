// SPDX-License-Identifier: MIT

// Package grid defines the topology-agnostic abstractions of gridkit: the
// coordinate-system capability set and the dense per-cell data container
// built on top of it.
//
// What:
//
//   - CoordinateSystem: the direction set a topology supports.
//   - Grid[P]: a CoordinateSystem plus a bijection between positions of type
//     P and linear indexes in [0, TotalSize()), and neighbor lookup.
//   - Data[P, G, T]: exactly one value of T per index of a grid G, addressed
//     by index or by position.
//
// Concrete topologies live in their own packages (see package cartesian) and
// are selected statically through the G type parameter, so index arithmetic
// is never dispatched through an interface inside the container.
//
// Invariants:
//
//   - Data.Len() == Grid().TotalSize() for the whole life of the container.
//   - Index i of a Data always holds the value of position PosFromIndex(i).
//   - A Data never mutates its grid; grids are immutable once built.
//
// Concurrency:
//
//	Grids are read-only and may be shared between goroutines. Data is not
//	synchronized: callers that mutate one container from several goroutines
//	must provide their own locking.
//
// Complexity:
//
//   - Get/Set/Ptr by index: O(1).
//   - GetFromPos/SetFromPos: O(1) plus the grid's IndexFromPos.
//   - All/AllPtr/Indexes: O(N) over N = TotalSize().
//
// Errors:
//
//   - ErrIndexOutOfBounds:    index not in [0, TotalSize()).
//   - ErrPositionOutOfBounds: position outside the grid extents.
//   - ErrNilGrid:             container built without a grid.
//   - ErrEmptyGrid:           grid reports a non-positive TotalSize.
//   - ErrSizeMismatch:        cell slice length differs from TotalSize.
package grid
