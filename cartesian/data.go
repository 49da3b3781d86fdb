// SPDX-License-Identifier: MIT

package cartesian

import (
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
)

// NewData returns a container over g with every cell set to fill.
func NewData[T any](g *Grid, fill T) (*grid.Data[Position, *Grid, T], error) {
	return grid.NewData[Position](g, fill)
}

// NewDataFunc returns a container over g whose cells are gen(position),
// generated in index order.
func NewDataFunc[T any](g *Grid, gen func(p Position) T) (*grid.Data[Position, *Grid, T], error) {
	if g == nil {
		return nil, grid.ErrNilGrid
	}
	return grid.NewDataFunc[Position](g, func(i int) T { return gen(g.pos(i)) })
}

// Get2D returns the value at (x, y, 0).
func Get2D[T any](d *grid.Data[Position, *Grid, T], x, y int) (T, error) {
	return d.GetFromPos(XY(x, y))
}

// Set2D stores v at (x, y, 0).
func Set2D[T any](d *grid.Data[Position, *Grid, T], x, y int, v T) error {
	return d.SetFromPos(XY(x, y), v)
}

// Get3D returns the value at (x, y, z).
func Get3D[T any](d *grid.Data[Position, *Grid, T], x, y, z int) (T, error) {
	return d.GetFromPos(XYZ(x, y, z))
}

// Set3D stores v at (x, y, z).
func Set3D[T any](d *grid.Data[Position, *Grid, T], x, y, z int, v T) error {
	return d.SetFromPos(XYZ(x, y, z), v)
}

func checkAxis(name string, v, size int) error {
	if v < 0 || v >= size {
		return fmt.Errorf("%w: %s=%d not in [0,%d)", grid.ErrPositionOutOfBounds, name, v, size)
	}
	return nil
}

// setRun stores v at count indexes starting at first, stride apart.
func setRun[T any](d *grid.Data[Position, *Grid, T], v T, first, stride, count int) error {
	for k := 0; k < count; k++ {
		if err := d.Set(first+k*stride, v); err != nil {
			return err
		}
	}
	return nil
}

// SetAllX sets every cell with X == x to v.
func SetAllX[T any](d *grid.Data[Position, *Grid, T], x int, v T) error {
	g := d.Grid()
	if err := checkAxis("x", x, g.sizeX); err != nil {
		return err
	}
	return setRun(d, v, x, g.sizeX, g.sizeY*g.sizeZ)
}

// SetAllY sets every cell with Y == y to v.
func SetAllY[T any](d *grid.Data[Position, *Grid, T], y int, v T) error {
	g := d.Grid()
	if err := checkAxis("y", y, g.sizeY); err != nil {
		return err
	}
	for z := 0; z < g.sizeZ; z++ {
		if err := setRun(d, v, y*g.sizeX+z*g.sizeXY, 1, g.sizeX); err != nil {
			return err
		}
	}
	return nil
}

// SetAllZ sets every cell of layer z to v.
func SetAllZ[T any](d *grid.Data[Position, *Grid, T], z int, v T) error {
	g := d.Grid()
	if err := checkAxis("z", z, g.sizeZ); err != nil {
		return err
	}
	return setRun(d, v, z*g.sizeXY, 1, g.sizeXY)
}

// SetAllXY sets every cell with X == x and Y == y to v.
func SetAllXY[T any](d *grid.Data[Position, *Grid, T], x, y int, v T) error {
	g := d.Grid()
	if err := checkAxis("x", x, g.sizeX); err != nil {
		return err
	}
	if err := checkAxis("y", y, g.sizeY); err != nil {
		return err
	}
	return setRun(d, v, x+y*g.sizeX, g.sizeXY, g.sizeZ)
}

// SetAllXZ sets every cell with X == x and Z == z to v.
func SetAllXZ[T any](d *grid.Data[Position, *Grid, T], x, z int, v T) error {
	g := d.Grid()
	if err := checkAxis("x", x, g.sizeX); err != nil {
		return err
	}
	if err := checkAxis("z", z, g.sizeZ); err != nil {
		return err
	}
	return setRun(d, v, x+z*g.sizeXY, g.sizeX, g.sizeY)
}

// SetAllYZ sets every cell with Y == y and Z == z to v.
func SetAllYZ[T any](d *grid.Data[Position, *Grid, T], y, z int, v T) error {
	g := d.Grid()
	if err := checkAxis("y", y, g.sizeY); err != nil {
		return err
	}
	if err := checkAxis("z", z, g.sizeZ); err != nil {
		return err
	}
	return setRun(d, v, y*g.sizeX+z*g.sizeXY, 1, g.sizeX)
}
