package cartesian_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/cartesian"
	"github.com/katalvlaran/gridkit/grid"
)

// TestNewDataFunc checks the generator sees each position in index order.
func TestNewDataFunc(t *testing.T) {
	g := mustGrid(cartesian.New3D(3, 2, 2))
	d, err := cartesian.NewDataFunc(g, func(p cartesian.Position) cartesian.Position { return p })
	require.NoError(t, err)
	require.Equal(t, g.TotalSize(), d.Len())

	for i, v := range d.All() {
		p, err := g.PosFromIndex(i)
		require.NoError(t, err)
		require.Equal(t, p, v)
	}

	_, err = cartesian.NewDataFunc[int](nil, func(cartesian.Position) int { return 0 })
	require.ErrorIs(t, err, grid.ErrNilGrid)
}

// TestGetSetShortcuts covers Get2D/Set2D/Get3D/Set3D.
func TestGetSetShortcuts(t *testing.T) {
	g2 := mustGrid(cartesian.New2D(3, 3))
	d2, err := cartesian.NewData(g2, 0)
	require.NoError(t, err)
	require.NoError(t, cartesian.Set2D(d2, 2, 1, 9))
	v, err := cartesian.Get2D(d2, 2, 1)
	require.NoError(t, err)
	require.Equal(t, 9, v)
	v, err = d2.Get(5)
	require.NoError(t, err)
	require.Equal(t, 9, v)
	require.ErrorIs(t, cartesian.Set2D(d2, 3, 0, 1), grid.ErrPositionOutOfBounds)

	g3 := mustGrid(cartesian.New3D(2, 2, 2))
	d3, err := cartesian.NewData(g3, "")
	require.NoError(t, err)
	require.NoError(t, cartesian.Set3D(d3, 1, 0, 1, "x"))
	s, err := cartesian.Get3D(d3, 1, 0, 1)
	require.NoError(t, err)
	require.Equal(t, "x", s)
	_, err = cartesian.Get3D(d3, 0, 0, 2)
	require.ErrorIs(t, err, grid.ErrPositionOutOfBounds)
}

// TestSetAllPlanes checks each plane/line fill touches exactly the expected
// cells of a 3×4×5 grid.
func TestSetAllPlanes(t *testing.T) {
	g := mustGrid(cartesian.New3D(3, 4, 5))

	type boolData = grid.Data[cartesian.Position, *cartesian.Grid, bool]
	cases := []struct {
		name  string
		apply func(d *boolData) error
		match func(p cartesian.Position) bool
	}{
		{
			name:  "X",
			apply: func(d *boolData) error { return cartesian.SetAllX(d, 1, true) },
			match: func(p cartesian.Position) bool { return p.X == 1 },
		},
		{
			name:  "Y",
			apply: func(d *boolData) error { return cartesian.SetAllY(d, 2, true) },
			match: func(p cartesian.Position) bool { return p.Y == 2 },
		},
		{
			name:  "Z",
			apply: func(d *boolData) error { return cartesian.SetAllZ(d, 4, true) },
			match: func(p cartesian.Position) bool { return p.Z == 4 },
		},
		{
			name:  "XY",
			apply: func(d *boolData) error { return cartesian.SetAllXY(d, 2, 3, true) },
			match: func(p cartesian.Position) bool { return p.X == 2 && p.Y == 3 },
		},
		{
			name:  "XZ",
			apply: func(d *boolData) error { return cartesian.SetAllXZ(d, 0, 1, true) },
			match: func(p cartesian.Position) bool { return p.X == 0 && p.Z == 1 },
		},
		{
			name:  "YZ",
			apply: func(d *boolData) error { return cartesian.SetAllYZ(d, 1, 3, true) },
			match: func(p cartesian.Position) bool { return p.Y == 1 && p.Z == 3 },
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := cartesian.NewData(g, false)
			require.NoError(t, err)
			require.NoError(t, tc.apply(d))
			for i, v := range d.All() {
				p, _ := g.PosFromIndex(i)
				require.Equal(t, tc.match(p), v, "cell %s", p)
			}
		})
	}
}

// TestSetAllOutOfRange ensures plane fills reject coordinates outside the grid.
func TestSetAllOutOfRange(t *testing.T) {
	g := mustGrid(cartesian.New3D(2, 2, 2))
	d, err := cartesian.NewData(g, 0)
	require.NoError(t, err)

	require.ErrorIs(t, cartesian.SetAllX(d, 2, 1), grid.ErrPositionOutOfBounds)
	require.ErrorIs(t, cartesian.SetAllY(d, -1, 1), grid.ErrPositionOutOfBounds)
	require.ErrorIs(t, cartesian.SetAllZ(d, 2, 1), grid.ErrPositionOutOfBounds)
	require.ErrorIs(t, cartesian.SetAllXY(d, 0, 2, 1), grid.ErrPositionOutOfBounds)
	require.ErrorIs(t, cartesian.SetAllXZ(d, 2, 0, 1), grid.ErrPositionOutOfBounds)
	require.ErrorIs(t, cartesian.SetAllYZ(d, 0, 5, 1), grid.ErrPositionOutOfBounds)

	for _, v := range d.All() {
		require.Zero(t, v)
	}
}
