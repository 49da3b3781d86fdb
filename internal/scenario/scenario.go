// SPDX-License-Identifier: MIT

// Package scenario loads the demo fill scenarios used by cmd/gridfill: a
// character map on a cartesian grid plus the fill parameters.
package scenario

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/gridkit/cartesian"
	"github.com/katalvlaran/gridkit/grid"
)

// Sentinel errors for scenario validation and loading.
var (
	// ErrNoLayers indicates a scenario without any map cells.
	ErrNoLayers = errors.New("scenario: map must have at least one layer, row and column")
	// ErrNonRectangular indicates layers or rows of differing lengths.
	ErrNonRectangular = errors.New("scenario: all layers and rows must have the same length")
	// ErrShapeMismatch indicates explicit grid sizes that disagree with the map.
	ErrShapeMismatch = errors.New("scenario: grid size does not match the map")
	// ErrInvalidFill indicates a fill value that is not exactly one character.
	ErrInvalidFill = errors.New("scenario: fill must be exactly one character")
	// ErrUnknownFormat indicates a file extension with no known decoder.
	ErrUnknownFormat = errors.New("scenario: unknown file format")
)

// Map is the cell type of a scenario container.
type Map = grid.Data[cartesian.Position, *cartesian.Grid, rune]

// Scenario describes one fill exercise.
//
// Layers holds one entry per z layer, each a list of rows (y) whose
// characters are the cells along x. Grid sizes left at zero are taken from
// Layers; a single layer gives a 2D grid unless grid.size_z is set to 1.
type Scenario struct {
	Name      string             `yaml:"name" toml:"name"`
	Grid      cartesian.Config   `yaml:"grid" toml:"grid"`
	Layers    [][]string         `yaml:"layers" toml:"layers"`
	Start     cartesian.Position `yaml:"start" toml:"start"`
	Fillable  string             `yaml:"fillable" toml:"fillable"`
	Fill      string             `yaml:"fill" toml:"fill"`
	Predicate string             `yaml:"predicate,omitempty" toml:"predicate,omitempty"`
}

// shape returns the map extents after checking it is a rectangular box.
func (s *Scenario) shape() (x, y, z int, err error) {
	z = len(s.Layers)
	if z == 0 || len(s.Layers[0]) == 0 {
		return 0, 0, 0, ErrNoLayers
	}
	y = len(s.Layers[0])
	x = utf8.RuneCountInString(s.Layers[0][0])
	if x == 0 {
		return 0, 0, 0, ErrNoLayers
	}
	for li, layer := range s.Layers {
		if len(layer) != y {
			return 0, 0, 0, fmt.Errorf("%w: layer %d has %d rows, want %d", ErrNonRectangular, li, len(layer), y)
		}
		for ri, row := range layer {
			if n := utf8.RuneCountInString(row); n != x {
				return 0, 0, 0, fmt.Errorf("%w: layer %d row %d has %d cells, want %d", ErrNonRectangular, li, ri, n, x)
			}
		}
	}
	return x, y, z, nil
}

// GridConfig resolves the grid description, filling zero sizes from the map.
func (s *Scenario) GridConfig() (cartesian.Config, error) {
	x, y, z, err := s.shape()
	if err != nil {
		return cartesian.Config{}, err
	}
	c := s.Grid
	if c.SizeX == 0 {
		c.SizeX = x
	}
	if c.SizeY == 0 {
		c.SizeY = y
	}
	if c.SizeZ == 0 && z > 1 {
		c.SizeZ = z
	}
	wantZ := c.SizeZ
	if wantZ == 0 {
		wantZ = 1
	}
	if c.SizeX != x || c.SizeY != y || wantZ != z {
		return cartesian.Config{}, fmt.Errorf("%w: grid %dx%dx%d, map %dx%dx%d",
			ErrShapeMismatch, c.SizeX, c.SizeY, wantZ, x, y, z)
	}
	return c, nil
}

// FillRune returns the replacement character.
func (s *Scenario) FillRune() (rune, error) {
	if utf8.RuneCountInString(s.Fill) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFill, s.Fill)
	}
	r, _ := utf8.DecodeRuneInString(s.Fill)
	return r, nil
}

// IsFillable reports whether r is one of the fillable characters.
func (s *Scenario) IsFillable(r rune) bool {
	return strings.ContainsRune(s.Fillable, r)
}

// Validate checks the map shape and the fill character.
func (s *Scenario) Validate() error {
	if _, err := s.GridConfig(); err != nil {
		return err
	}
	_, err := s.FillRune()
	return err
}

// Build creates the grid and a container holding the map characters.
func (s *Scenario) Build() (*Map, error) {
	c, err := s.GridConfig()
	if err != nil {
		return nil, err
	}
	g, err := cartesian.NewFromConfig(c)
	if err != nil {
		return nil, err
	}
	cells := make([]rune, 0, g.TotalSize())
	for _, layer := range s.Layers {
		for _, row := range layer {
			cells = append(cells, []rune(row)...)
		}
	}
	return grid.NewDataFrom[cartesian.Position](g, cells)
}

// Render draws d as text: one line per row, layers separated by a blank line.
func Render(d *Map) string {
	g := d.Grid()
	sx, sy, sz := g.Size()
	var b strings.Builder
	for z := 0; z < sz; z++ {
		if z > 0 {
			b.WriteByte('\n')
		}
		for y := 0; y < sy; y++ {
			for x := 0; x < sx; x++ {
				r, _ := d.GetFromPos(cartesian.XYZ(x, y, z))
				b.WriteRune(r)
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}
