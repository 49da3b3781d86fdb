// SPDX-License-Identifier: MIT

// Package floodfill implements breadth-first flood fill and connected-region
// discovery over any grid.Data container.
//
// A fill starts at one position and collects every position reachable
// through the grid's Neighbor relation whose cell value satisfies a
// predicate. Each position is examined at most once: membership is tracked
// in a per-call visited bitmap that is independent of the cell values, so a
// fill terminates on every grid, including fully wrapped ones, whatever the
// predicate or the value written.
//
// Traversal never mutates the container. FillWith and FillFunc apply their
// write after the region has been computed, so the predicate always sees the
// values as they were when the call started.
//
// Options:
//
//   - WithDirections: restrict expansion to a subset of the grid's
//     directions (e.g. 4-connectivity on a diagonal grid).
//   - WithMaxCells:   cap the number of cells collected (0 = unlimited).
//   - WithOnVisit:    hook called per collected index; an error aborts.
//   - WithQueue:      reuse a caller-owned queue buffer between calls.
//
// Complexity: O(N·d) time and O(N) memory for N = TotalSize() and d
// directions per position.
//
// Errors:
//
//   - ErrNilData:         nil or empty container.
//   - ErrNilPredicate:    nil predicate.
//   - ErrOptionViolation: invalid option or direction outside the grid's set.
//   - grid.ErrPositionOutOfBounds (wrapped): start outside the grid.
package floodfill
