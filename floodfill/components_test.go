package floodfill_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/cartesian"
	"github.com/katalvlaran/gridkit/direction"
	"github.com/katalvlaran/gridkit/floodfill"
)

// TestComponents runs region discovery on several maps.
func TestComponents(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		opts []cartesian.Option
		want [][]int
	}{
		{
			name: "AllBlocked",
			rows: []string{"##", "##"},
			want: nil,
		},
		{
			name: "Single",
			rows: []string{"..", ".."},
			want: [][]int{{0, 1, 2, 3}},
		},
		{
			name: "WallColumn",
			rows: []string{"..#.", "..#.", "..#.", "..#."},
			want: [][]int{{0, 1, 4, 5, 8, 9, 12, 13}, {3, 7, 11, 15}},
		},
		{
			name: "WallColumnWrapped",
			rows: []string{"..#.", "..#."},
			opts: []cartesian.Option{cartesian.WithWrapX()},
			want: [][]int{{0, 1, 3, 4, 5, 7}},
		},
		{
			name: "Checker",
			rows: []string{".#", "#."},
			want: [][]int{{0}, {3}},
		},
		{
			name: "CheckerDiagonal",
			rows: []string{".#", "#."},
			opts: []cartesian.Option{cartesian.WithDiagonals()},
			want: [][]int{{0, 3}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := mask(t, tc.rows, tc.opts...)
			comps, err := floodfill.Components(d, isTrue)
			require.NoError(t, err)
			require.Equal(t, tc.want, comps)
		})
	}
}

// TestComponentsOptions covers option handling specific to Components.
func TestComponentsOptions(t *testing.T) {
	d := mask(t, []string{".#.", "...", ".#."}, cartesian.WithDiagonals())

	_, err := floodfill.Components(d, isTrue, floodfill.WithMaxCells(2))
	require.ErrorIs(t, err, floodfill.ErrOptionViolation)

	_, err = floodfill.Components(d, nil)
	require.ErrorIs(t, err, floodfill.ErrNilPredicate)

	comps, err := floodfill.Components(d, func(v bool) bool { return !v })
	require.NoError(t, err)
	require.Equal(t, [][]int{{1}, {7}}, comps)

	count := 0
	comps, err = floodfill.Components(d, isTrue, floodfill.WithOnVisit(func(int) error {
		count++
		return nil
	}))
	require.NoError(t, err)
	require.Len(t, comps, 1)
	require.Equal(t, 7, count)
}

// TestComponentsOneWayDirections ensures a direction set without opposites is
// rejected, while Fill still follows it and a symmetric subset is accepted.
func TestComponentsOneWayDirections(t *testing.T) {
	d := mask(t, []string{"..."})

	_, err := floodfill.Components(d, isTrue, floodfill.WithDirections(direction.XBackward))
	require.ErrorIs(t, err, floodfill.ErrOptionViolation)

	res, err := floodfill.Fill(d, cartesian.XY(2, 0), isTrue, floodfill.WithDirections(direction.XBackward))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, res.Indexes)

	comps, err := floodfill.Components(d, isTrue, floodfill.WithDirections(direction.XForward, direction.XBackward))
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1, 2}}, comps)

	diag := mask(t, []string{".#", "#."}, cartesian.WithDiagonals())
	_, err = floodfill.Components(diag, isTrue, floodfill.WithDirections(direction.XForwardYForward))
	require.ErrorIs(t, err, floodfill.ErrOptionViolation)

	comps, err = floodfill.Components(diag, isTrue,
		floodfill.WithDirections(direction.XForwardYForward, direction.XBackwardYBackward))
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 3}}, comps)
}
