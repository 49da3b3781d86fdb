// SPDX-License-Identifier: MIT

package direction

import (
	"errors"
	"fmt"
)

// ErrUnknownDirection indicates a name or delta that is not a Direction.
var ErrUnknownDirection = errors.New("direction: unknown direction")

// Direction is one unit step on a grid.
type Direction uint8

// Axis directions. Their values match the historical 2D/3D ordering, so the
// 2D set is {XForward..YBackward} and the 3D set is {XForward..ZBackward}.
const (
	XForward Direction = iota
	YForward
	XBackward
	YBackward
	ZForward
	ZBackward

	// XY plane diagonals, counter-clockwise starting from +X+Y.
	XForwardYForward
	XBackwardYForward
	XBackwardYBackward
	XForwardYBackward

	// XZ plane diagonals.
	XForwardZForward
	XBackwardZForward
	XBackwardZBackward
	XForwardZBackward

	// YZ plane diagonals.
	YForwardZForward
	YBackwardZForward
	YBackwardZBackward
	YForwardZBackward

	// Corner diagonals, +Z layer first.
	XForwardYForwardZForward
	XBackwardYForwardZForward
	XBackwardYBackwardZForward
	XForwardYBackwardZForward
	XForwardYForwardZBackward
	XBackwardYForwardZBackward
	XBackwardYBackwardZBackward
	XForwardYBackwardZBackward
)

// Count is the number of distinct directions.
const Count = int(XForwardYBackwardZBackward) + 1

// AxisCount is the number of axis-aligned directions.
const AxisCount = int(ZBackward) + 1

// Delta is a displacement on a grid.
type Delta struct {
	DX int `json:"dx" yaml:"dx" toml:"dx"`
	DY int `json:"dy" yaml:"dy" toml:"dy"`
	DZ int `json:"dz" yaml:"dz" toml:"dz"`
}

// Scale returns the delta multiplied by n.
func (d Delta) Scale(n int) Delta {
	return Delta{DX: d.DX * n, DY: d.DY * n, DZ: d.DZ * n}
}

// Negate returns the delta pointing the other way.
func (d Delta) Negate() Delta {
	return d.Scale(-1)
}

var deltas = [Count]Delta{
	XForward:  {1, 0, 0},
	YForward:  {0, 1, 0},
	XBackward: {-1, 0, 0},
	YBackward: {0, -1, 0},
	ZForward:  {0, 0, 1},
	ZBackward: {0, 0, -1},

	XForwardYForward:   {1, 1, 0},
	XBackwardYForward:  {-1, 1, 0},
	XBackwardYBackward: {-1, -1, 0},
	XForwardYBackward:  {1, -1, 0},

	XForwardZForward:   {1, 0, 1},
	XBackwardZForward:  {-1, 0, 1},
	XBackwardZBackward: {-1, 0, -1},
	XForwardZBackward:  {1, 0, -1},

	YForwardZForward:   {0, 1, 1},
	YBackwardZForward:  {0, -1, 1},
	YBackwardZBackward: {0, -1, -1},
	YForwardZBackward:  {0, 1, -1},

	XForwardYForwardZForward:    {1, 1, 1},
	XBackwardYForwardZForward:   {-1, 1, 1},
	XBackwardYBackwardZForward:  {-1, -1, 1},
	XForwardYBackwardZForward:   {1, -1, 1},
	XForwardYForwardZBackward:   {1, 1, -1},
	XBackwardYForwardZBackward:  {-1, 1, -1},
	XBackwardYBackwardZBackward: {-1, -1, -1},
	XForwardYBackwardZBackward:  {1, -1, -1},
}

var names = [Count]string{
	"XForward", "YForward", "XBackward", "YBackward", "ZForward", "ZBackward",
	"XForwardYForward", "XBackwardYForward", "XBackwardYBackward", "XForwardYBackward",
	"XForwardZForward", "XBackwardZForward", "XBackwardZBackward", "XForwardZBackward",
	"YForwardZForward", "YBackwardZForward", "YBackwardZBackward", "YForwardZBackward",
	"XForwardYForwardZForward", "XBackwardYForwardZForward",
	"XBackwardYBackwardZForward", "XForwardYBackwardZForward",
	"XForwardYForwardZBackward", "XBackwardYForwardZBackward",
	"XBackwardYBackwardZBackward", "XForwardYBackwardZBackward",
}

// Right-handed rotation basis around each axis direction.
var rotationBasis = [AxisCount][]Direction{
	XForward:  {YForward, ZForward, YBackward, ZBackward},
	XBackward: {ZForward, YForward, ZBackward, YBackward},
	YForward:  {ZForward, XForward, ZBackward, XBackward},
	YBackward: {XForward, ZForward, XBackward, ZBackward},
	ZForward:  {XForward, YForward, XBackward, YBackward},
	ZBackward: {YForward, XForward, YBackward, XBackward},
}

// byDelta maps a packed delta to its Direction; -1 marks the zero delta.
var byDelta [27]int8

func init() {
	for i := range byDelta {
		byDelta[i] = -1
	}
	for d := Direction(0); int(d) < Count; d++ {
		byDelta[packDelta(deltas[d])] = int8(d)
	}
}

func packDelta(d Delta) int {
	return (d.DX+1)*9 + (d.DY+1)*3 + (d.DZ + 1)
}

// All returns every Direction in numeric order.
func All() []Direction {
	out := make([]Direction, Count)
	for i := range out {
		out[i] = Direction(i)
	}
	return out
}

// Axes returns the six axis-aligned directions in numeric order.
func Axes() []Direction {
	return []Direction{XForward, YForward, XBackward, YBackward, ZForward, ZBackward}
}

// FromDelta returns the Direction whose delta equals d.
// Returns ErrUnknownDirection unless every component is in {-1, 0, 1} and
// at least one is non-zero.
func FromDelta(d Delta) (Direction, error) {
	if d.DX < -1 || d.DX > 1 || d.DY < -1 || d.DY > 1 || d.DZ < -1 || d.DZ > 1 {
		return 0, fmt.Errorf("%w: delta %+v", ErrUnknownDirection, d)
	}
	v := byDelta[packDelta(d)]
	if v < 0 {
		return 0, fmt.Errorf("%w: zero delta", ErrUnknownDirection)
	}
	return Direction(v), nil
}

// Parse returns the Direction with the given name.
func Parse(name string) (Direction, error) {
	for i, n := range names {
		if n == name {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, name)
}

// IsValid reports whether d is one of the defined directions.
func (d Direction) IsValid() bool {
	return int(d) < Count
}

// IsAxis reports whether d moves along exactly one axis.
func (d Direction) IsAxis() bool {
	return int(d) < AxisCount
}

// Delta returns the unit displacement of d. Invalid directions yield the
// zero delta.
func (d Direction) Delta() Delta {
	if !d.IsValid() {
		return Delta{}
	}
	return deltas[d]
}

// Opposite returns the direction with the negated delta.
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return Direction(byDelta[packDelta(deltas[d].Negate())])
}

// RotationBasis returns the four axis directions orthogonal to d, in
// right-handed order. It returns nil for diagonal directions.
func (d Direction) RotationBasis() []Direction {
	if !d.IsAxis() {
		return nil
	}
	out := make([]Direction, len(rotationBasis[d]))
	copy(out, rotationBasis[d])
	return out
}

// String returns the name of d.
func (d Direction) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return names[d]
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDirection, uint8(d))
	}
	return []byte(names[d]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
