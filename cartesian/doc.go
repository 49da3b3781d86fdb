// SPDX-License-Identifier: MIT

// Package cartesian implements grid.Grid for axis-aligned 2D and 3D grids
// with configurable per-axis extents and wraparound.
//
// What:
//
//   - Grid: extents (X, Y, Z), per-axis wrap flags and a coordinate System.
//   - System: the direction set in use. Cartesian2D (4 directions),
//     Cartesian2DDiagonal (8), Cartesian3D (6), Cartesian3DDiagonal (26).
//   - Position: a comparable (X, Y, Z) value; Z is 0 on 2D grids.
//   - Data helpers: NewData, NewDataFunc, SetAllX … SetAllYZ, Get2D/Get3D.
//
// Indexing:
//
//	Row-major, X fastest:  index = x + y*SizeX + z*SizeX*SizeY.
//	PosFromIndex inverts it with the same axis order:
//	x = i % SizeX, y = (i / SizeX) % SizeY, z = i / (SizeX*SizeY).
//
// Wraparound:
//
//	On a wrapping axis of extent n a step lands on ((v % n) + n) % n, so
//	stepping outward from n-1 returns 0 and an extent of 1 returns the same
//	coordinate. On a non-wrapping axis a step outside [0, n) yields no
//	neighbor at all.
//
// Options:
//
//   - WithWrapX / WithWrapY / WithWrapZ / WithWrap: enable wraparound.
//   - WithDiagonals: use the diagonal-extended direction set. The default is
//     axis-aligned steps only.
//
// Errors:
//
//   - ErrInvalidExtent:   an extent is < 1.
//   - ErrGridTooLarge:    the product of extents overflows int.
//   - ErrOptionViolation: an option does not apply (e.g. wrap Z on a 2D grid).
//   - grid.ErrIndexOutOfBounds / grid.ErrPositionOutOfBounds on lookups.
package cartesian
