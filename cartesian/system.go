// SPDX-License-Identifier: MIT

package cartesian

import (
	"fmt"

	"github.com/katalvlaran/gridkit/direction"
	"github.com/katalvlaran/gridkit/grid"
)

// System is a cartesian coordinate system: a fixed, ordered direction set
// and the delta of each direction. Systems are immutable and shared.
type System struct {
	name     string
	dims     int
	diagonal bool
	dirs     []direction.Direction
	deltas   []direction.Delta
	indexOf  [direction.Count]int8
}

var (
	// Cartesian2D uses the 4 axis steps of the XY plane.
	Cartesian2D = newSystem("cartesian2d", 2, false)
	// Cartesian2DDiagonal adds the 4 XY diagonals to Cartesian2D.
	Cartesian2DDiagonal = newSystem("cartesian2d-diagonal", 2, true)
	// Cartesian3D uses the 6 axis steps.
	Cartesian3D = newSystem("cartesian3d", 3, false)
	// Cartesian3DDiagonal uses all 26 steps of a 3×3×3 neighborhood.
	Cartesian3DDiagonal = newSystem("cartesian3d-diagonal", 3, true)
)

var _ grid.CoordinateSystem = (*System)(nil)

func newSystem(name string, dims int, diagonal bool) *System {
	var dirs []direction.Direction
	switch {
	case dims == 2 && !diagonal:
		dirs = []direction.Direction{
			direction.XForward, direction.YForward, direction.XBackward, direction.YBackward,
		}
	case dims == 2:
		dirs = []direction.Direction{
			direction.XForward, direction.YForward, direction.XBackward, direction.YBackward,
			direction.XForwardYForward, direction.XBackwardYForward,
			direction.XBackwardYBackward, direction.XForwardYBackward,
		}
	case !diagonal:
		dirs = direction.Axes()
	default:
		dirs = direction.All()
	}

	s := &System{
		name:     name,
		dims:     dims,
		diagonal: diagonal,
		dirs:     dirs,
		deltas:   make([]direction.Delta, len(dirs)),
	}
	for i := range s.indexOf {
		s.indexOf[i] = -1
	}
	for k, d := range dirs {
		s.indexOf[d] = int8(k)
		s.deltas[k] = d.Delta()
	}
	return s
}

func systemFor(dims int, diagonal bool) *System {
	switch {
	case dims == 2 && diagonal:
		return Cartesian2DDiagonal
	case dims == 2:
		return Cartesian2D
	case diagonal:
		return Cartesian3DDiagonal
	default:
		return Cartesian3D
	}
}

// Name returns a short identifier such as "cartesian2d".
func (s *System) Name() string { return s.name }

// Dimensions returns 2 or 3.
func (s *System) Dimensions() int { return s.dims }

// Diagonal reports whether diagonal directions are part of the set.
func (s *System) Diagonal() bool { return s.diagonal }

// Directions returns the direction set in index order.
func (s *System) Directions() []direction.Direction {
	out := make([]direction.Direction, len(s.dirs))
	copy(out, s.dirs)
	return out
}

// DirectionsCount returns the number of directions in the set.
func (s *System) DirectionsCount() int { return len(s.dirs) }

// Deltas returns the delta of each direction, in index order.
func (s *System) Deltas() []direction.Delta {
	out := make([]direction.Delta, len(s.deltas))
	copy(out, s.deltas)
	return out
}

// DirectionIndex returns the index of d in this system.
func (s *System) DirectionIndex(d direction.Direction) (int, bool) {
	if !d.IsValid() {
		return -1, false
	}
	k := s.indexOf[d]
	return int(k), k >= 0
}

// Direction returns the direction with index i.
func (s *System) Direction(i int) (direction.Direction, error) {
	if i < 0 || i >= len(s.dirs) {
		return 0, fmt.Errorf("%w: direction index %d not in [0,%d)", grid.ErrIndexOutOfBounds, i, len(s.dirs))
	}
	return s.dirs[i], nil
}

// String returns the system name.
func (s *System) String() string { return s.name }
