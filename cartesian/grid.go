// SPDX-License-Identifier: MIT

package cartesian

import (
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/gridkit/direction"
	"github.com/katalvlaran/gridkit/grid"
)

// Grid is an axis-aligned box of SizeX × SizeY × SizeZ cells. It is
// immutable once built. Only New2D, New3D and NewFromConfig build a usable
// grid; the zero value has no cells and no neighbors.
type Grid struct {
	sizeX, sizeY, sizeZ int
	wrapX, wrapY, wrapZ bool
	sizeXY              int // cached sizeX*sizeY for index arithmetic
	total               int
	system              *System
}

var _ grid.Grid[Position] = (*Grid)(nil)

// New2D builds a 2D grid of sizeX × sizeY cells.
// Returns ErrInvalidExtent for extents < 1, ErrGridTooLarge on overflow and
// ErrOptionViolation when WithWrapZ is supplied.
func New2D(sizeX, sizeY int, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.WrapZ {
		return nil, fmt.Errorf("%w: wrap Z on a 2D grid", ErrOptionViolation)
	}
	return build(sizeX, sizeY, 1, 2, o)
}

// New3D builds a 3D grid of sizeX × sizeY × sizeZ cells.
// Returns ErrInvalidExtent for extents < 1 and ErrGridTooLarge on overflow.
func New3D(sizeX, sizeY, sizeZ int, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return build(sizeX, sizeY, sizeZ, 3, o)
}

// NewFromConfig builds a grid from its plain description.
// A zero SizeZ selects a 2D grid.
func NewFromConfig(c Config) (*Grid, error) {
	opts := []Option{WithWrap(c.WrapX, c.WrapY, c.WrapZ)}
	if c.Diagonals {
		opts = append(opts, WithDiagonals())
	}
	if c.SizeZ == 0 {
		return New2D(c.SizeX, c.SizeY, opts...)
	}
	return New3D(c.SizeX, c.SizeY, c.SizeZ, opts...)
}

func build(sizeX, sizeY, sizeZ, dims int, o Options) (*Grid, error) {
	if sizeX < 1 || sizeY < 1 || sizeZ < 1 {
		return nil, fmt.Errorf("%w: got %dx%dx%d", ErrInvalidExtent, sizeX, sizeY, sizeZ)
	}
	if sizeY > math.MaxInt/sizeX {
		return nil, fmt.Errorf("%w: %dx%d", ErrGridTooLarge, sizeX, sizeY)
	}
	sizeXY := sizeX * sizeY
	if sizeZ > math.MaxInt/sizeXY {
		return nil, fmt.Errorf("%w: %dx%dx%d", ErrGridTooLarge, sizeX, sizeY, sizeZ)
	}

	return &Grid{
		sizeX:  sizeX,
		sizeY:  sizeY,
		sizeZ:  sizeZ,
		wrapX:  o.WrapX,
		wrapY:  o.WrapY,
		wrapZ:  o.WrapZ,
		sizeXY: sizeXY,
		total:  sizeXY * sizeZ,
		system: systemFor(dims, o.Diagonals),
	}, nil
}

// TotalSize returns SizeX*SizeY*SizeZ.
func (g *Grid) TotalSize() int { return g.total }

// SizeX returns the extent of the X axis.
func (g *Grid) SizeX() int { return g.sizeX }

// SizeY returns the extent of the Y axis.
func (g *Grid) SizeY() int { return g.sizeY }

// SizeZ returns the extent of the Z axis; 1 for 2D grids.
func (g *Grid) SizeZ() int { return g.sizeZ }

// SizeXY returns SizeX*SizeY, the number of cells in one Z layer.
func (g *Grid) SizeXY() int { return g.sizeXY }

// Size returns the three extents.
func (g *Grid) Size() (x, y, z int) { return g.sizeX, g.sizeY, g.sizeZ }

// Wrapping returns the wrap flag of each axis.
func (g *Grid) Wrapping() (x, y, z bool) { return g.wrapX, g.wrapY, g.wrapZ }

// System returns the coordinate system in use.
func (g *Grid) System() *System { return g.system }

// Directions returns the direction set of the grid's system.
func (g *Grid) Directions() []direction.Direction {
	if g.system == nil {
		return nil
	}
	return g.system.Directions()
}

// DirectionsCount returns the number of neighbor directions.
func (g *Grid) DirectionsCount() int {
	if g.system == nil {
		return 0
	}
	return g.system.DirectionsCount()
}

// Contains reports whether p lies within the grid extents.
func (g *Grid) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.sizeX &&
		p.Y >= 0 && p.Y < g.sizeY &&
		p.Z >= 0 && p.Z < g.sizeZ
}

// Indexes yields every index in [0, TotalSize()).
func (g *Grid) Indexes() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < g.total; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// IndexFromCoords returns the index of (x, y, z).
func (g *Grid) IndexFromCoords(x, y, z int) (int, error) {
	return g.IndexFromPos(XYZ(x, y, z))
}

// IndexFromPos maps p to x + y*SizeX + z*SizeX*SizeY.
func (g *Grid) IndexFromPos(p Position) (int, error) {
	if !g.Contains(p) {
		return 0, fmt.Errorf("%w: %s outside %dx%dx%d", grid.ErrPositionOutOfBounds, p, g.sizeX, g.sizeY, g.sizeZ)
	}
	return g.index(p), nil
}

// index assumes p is in bounds.
func (g *Grid) index(p Position) int {
	return p.X + p.Y*g.sizeX + p.Z*g.sizeXY
}

// PosFromIndex is the inverse of IndexFromPos.
func (g *Grid) PosFromIndex(i int) (Position, error) {
	if i < 0 || i >= g.total {
		return Position{}, fmt.Errorf("%w: %d not in [0,%d)", grid.ErrIndexOutOfBounds, i, g.total)
	}
	return g.pos(i), nil
}

// pos assumes i is in bounds.
func (g *Grid) pos(i int) Position {
	return Position{
		X: i % g.sizeX,
		Y: (i / g.sizeX) % g.sizeY,
		Z: i / g.sizeXY,
	}
}

// Neighbor returns the position one step from p in direction d.
// It returns false if p is outside the grid, if d is not in the grid's
// direction set, or if the step leaves a non-wrapping axis.
func (g *Grid) Neighbor(p Position, d direction.Direction) (Position, bool) {
	if g.system == nil {
		return Position{}, false
	}
	k, ok := g.system.DirectionIndex(d)
	if !ok {
		return Position{}, false
	}
	return g.NextPos(p, g.system.deltas[k])
}

// NeighborIndex is Neighbor followed by the index conversion.
func (g *Grid) NeighborIndex(p Position, d direction.Direction) (int, bool) {
	n, ok := g.Neighbor(p, d)
	if !ok {
		return -1, false
	}
	return g.index(n), true
}

// IndexInDirection returns the index reached by moving units steps from p in
// direction d, wrapping where allowed.
func (g *Grid) IndexInDirection(p Position, d direction.Direction, units int) (int, bool) {
	if g.system == nil {
		return -1, false
	}
	k, ok := g.system.DirectionIndex(d)
	if !ok {
		return -1, false
	}
	n, ok := g.NextPos(p, g.system.deltas[k].Scale(units))
	if !ok {
		return -1, false
	}
	return g.index(n), true
}

// NextPos applies an arbitrary delta to p. Each axis wraps independently;
// leaving a non-wrapping axis yields false.
func (g *Grid) NextPos(p Position, delta direction.Delta) (Position, bool) {
	if !g.Contains(p) {
		return Position{}, false
	}
	x, okX := step(p.X, delta.DX, g.sizeX, g.wrapX)
	y, okY := step(p.Y, delta.DY, g.sizeY, g.wrapY)
	z, okZ := step(p.Z, delta.DZ, g.sizeZ, g.wrapZ)
	if !okX || !okY || !okZ {
		return Position{}, false
	}
	return Position{X: x, Y: y, Z: z}, true
}

// step moves v by dv on an axis of the given size. v must be in [0, size).
func step(v, dv, size int, wrap bool) (int, bool) {
	if wrap {
		// |dv % size| < size, so the sum cannot overflow.
		v += dv % size
		return ((v % size) + size) % size, true
	}
	if dv >= size || dv <= -size {
		return 0, false
	}
	v += dv
	if v < 0 || v >= size {
		return 0, false
	}
	return v, true
}

// NeighborIndexes fills buf with the neighbor index of index i in every
// direction of the system: slot k holds the neighbor in the direction with
// index k, or -1 when there is none. buf is reused when its capacity allows.
func (g *Grid) NeighborIndexes(i int, buf []int) ([]int, error) {
	p, err := g.PosFromIndex(i)
	if err != nil {
		return buf, err
	}
	n := len(g.system.deltas)
	if cap(buf) < n {
		buf = make([]int, n)
	}
	buf = buf[:n]
	for k, delta := range g.system.deltas {
		if np, ok := g.NextPos(p, delta); ok {
			buf[k] = g.index(np)
		} else {
			buf[k] = -1
		}
	}
	return buf, nil
}

// Config returns the plain description of the grid.
func (g *Grid) Config() Config {
	if g.system == nil {
		return Config{}
	}
	c := Config{
		SizeX:     g.sizeX,
		SizeY:     g.sizeY,
		WrapX:     g.wrapX,
		WrapY:     g.wrapY,
		WrapZ:     g.wrapZ,
		Diagonals: g.system.diagonal,
	}
	if g.system.dims == 3 {
		c.SizeZ = g.sizeZ
	}
	return c
}

// String renders the grid definition.
func (g *Grid) String() string {
	if g.system == nil {
		return "cartesian( uninitialized )"
	}
	return fmt.Sprintf("%s( size: %d %d %d, wrap: %t %t %t )",
		g.system.name, g.sizeX, g.sizeY, g.sizeZ, g.wrapX, g.wrapY, g.wrapZ)
}
