// SPDX-License-Identifier: MIT

// Package direction enumerates the discrete unit steps a grid topology can
// use to reach a neighboring cell.
//
// What:
//
//   - Direction is a small enum covering the 6 axis-aligned steps
//     (±X, ±Y, ±Z) followed by the 20 diagonal steps of a 3×3×3 cube.
//   - Every Direction carries a Delta (DX, DY, DZ ∈ {-1, 0, 1}).
//   - Opposite, RotationBasis and FromDelta answer the usual questions a
//     topology asks about its steps.
//
// Indexes:
//
//	The numeric value of a Direction is stable for the lifetime of a program
//	and can be used to size lookup tables. A coordinate system exposes its
//	own, contiguous index in [0, DirectionsCount()) for the subset it uses;
//	for the axis-only and full 3D sets that index equals the numeric value.
//
// Serialization:
//
//	Direction implements encoding.TextMarshaler and encoding.TextUnmarshaler
//	using its name ("XForward", "XBackwardYForward", ...), which covers JSON,
//	YAML and TOML encoders.
//
// Errors:
//
//   - ErrUnknownDirection: a name or delta does not map to any Direction.
package direction
