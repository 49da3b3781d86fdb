// SPDX-License-Identifier: MIT

package cartesian

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for cartesian grid construction.
var (
	// ErrInvalidExtent indicates an axis extent smaller than 1.
	ErrInvalidExtent = errors.New("cartesian: extent must be at least 1")
	// ErrGridTooLarge indicates the product of extents does not fit in an int.
	ErrGridTooLarge = errors.New("cartesian: grid size overflows int")
	// ErrOptionViolation indicates an option that does not apply to the grid.
	ErrOptionViolation = errors.New("cartesian: invalid option supplied")
	// ErrInvalidPosition indicates text that does not parse as a Position.
	ErrInvalidPosition = errors.New("cartesian: invalid position")
)

// Position is a cell coordinate. Z is 0 on 2D grids.
type Position struct {
	X int `json:"x" yaml:"x" toml:"x"`
	Y int `json:"y" yaml:"y" toml:"y"`
	Z int `json:"z,omitempty" yaml:"z,omitempty" toml:"z,omitempty"`
}

// XY returns the 2D position (x, y, 0).
func XY(x, y int) Position { return Position{X: x, Y: y} }

// XYZ returns the 3D position (x, y, z).
func XYZ(x, y, z int) Position { return Position{X: x, Y: y, Z: z} }

// String renders the position as "(x,y,z)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// ParsePosition parses "x,y" or "x,y,z".
func ParsePosition(s string) (Position, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 && len(parts) != 3 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
	var coords [3]int
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Position{}, fmt.Errorf("%w: %q: %v", ErrInvalidPosition, s, err)
		}
		coords[i] = v
	}
	return XYZ(coords[0], coords[1], coords[2]), nil
}

// Config is the plain, serializable description of a Grid.
// SizeZ == 0 describes a 2D grid.
type Config struct {
	SizeX     int  `json:"size_x" yaml:"size_x" toml:"size_x"`
	SizeY     int  `json:"size_y" yaml:"size_y" toml:"size_y"`
	SizeZ     int  `json:"size_z,omitempty" yaml:"size_z,omitempty" toml:"size_z,omitempty"`
	WrapX     bool `json:"wrap_x,omitempty" yaml:"wrap_x,omitempty" toml:"wrap_x,omitempty"`
	WrapY     bool `json:"wrap_y,omitempty" yaml:"wrap_y,omitempty" toml:"wrap_y,omitempty"`
	WrapZ     bool `json:"wrap_z,omitempty" yaml:"wrap_z,omitempty" toml:"wrap_z,omitempty"`
	Diagonals bool `json:"diagonals,omitempty" yaml:"diagonals,omitempty" toml:"diagonals,omitempty"`
}

// Option configures grid construction via functional arguments.
type Option func(*Options)

// Options holds construction parameters for a Grid.
type Options struct {
	// WrapX, WrapY and WrapZ make the matching axis cyclic.
	WrapX, WrapY, WrapZ bool
	// Diagonals selects the diagonal-extended direction set.
	Diagonals bool
}

// DefaultOptions returns Options with no wraparound and axis-only directions.
func DefaultOptions() Options {
	return Options{}
}

// WithWrapX makes the X axis wrap around.
func WithWrapX() Option {
	return func(o *Options) { o.WrapX = true }
}

// WithWrapY makes the Y axis wrap around.
func WithWrapY() Option {
	return func(o *Options) { o.WrapY = true }
}

// WithWrapZ makes the Z axis wrap around. Only valid for 3D grids.
func WithWrapZ() Option {
	return func(o *Options) { o.WrapZ = true }
}

// WithWrap sets all three wrap flags at once.
func WithWrap(x, y, z bool) Option {
	return func(o *Options) {
		o.WrapX, o.WrapY, o.WrapZ = x, y, z
	}
}

// WithDiagonals enables diagonal neighbor directions.
func WithDiagonals() Option {
	return func(o *Options) { o.Diagonals = true }
}
