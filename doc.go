// SPDX-License-Identifier: MIT

// Package gridkit is a small, generic toolkit for games and simulations that
// work on regular grids: 2D and 3D cartesian lattices with optional
// wraparound, a dense per-cell data container, and flood fill.
//
// 🚀 What is in gridkit?
//
//   - Directions: the 26 unit steps of a 3D lattice, opposites & rotation bases
//   - Grid abstraction: coordinate systems, index ⇄ position bijection, neighbors
//   - Cartesian grids: 2D/3D, per-axis wrap, optional diagonal neighbors
//   - Grid data: one value per cell, by index or position, with iterators
//   - Flood fill: bounded BFS fills and connected-region discovery
//
// ✨ Why gridkit?
//
//   - Generic: the container and the fill work with any grid topology
//   - Safe: every access is bounds-checked and reports a sentinel error
//   - Terminating: flood fill tracks visits itself, even on wrapped grids
//   - Serializable: grids and data round-trip through JSON, YAML and TOML
//
// Packages:
//
//	direction/  Direction enum, Delta offsets, opposites, rotation bases
//	grid/       CoordinateSystem & Grid interfaces, Data container
//	cartesian/  2D/3D cartesian grids, plane setters, codecs
//	floodfill/  Fill, FillWith, FillFunc, Components
//	cmd/gridfill  terminal demo driven by YAML/TOML scenarios
//
// Quick ASCII example (4×4, '#' blocks, fill from the top-left corner):
//
//	. . # .        ~ ~ # .
//	. . # .   →    ~ ~ # .
//	. . # .        ~ ~ # .
//	. . # .        ~ ~ # .
//
//	go get github.com/katalvlaran/gridkit
package gridkit
