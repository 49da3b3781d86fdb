package cartesian_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridkit/cartesian"
	"github.com/katalvlaran/gridkit/grid"
)

// TestGridJSON encodes a grid as its Config and decodes it back.
func TestGridJSON(t *testing.T) {
	g := mustGrid(cartesian.New2D(4, 3, cartesian.WithWrapY(), cartesian.WithDiagonals()))

	raw, err := json.Marshal(g)
	require.NoError(t, err)
	require.JSONEq(t, `{"size_x":4,"size_y":3,"wrap_y":true,"diagonals":true}`, string(raw))

	var back cartesian.Grid
	require.NoError(t, json.Unmarshal(raw, &back))
	require.Equal(t, g.Config(), back.Config())
	require.Same(t, cartesian.Cartesian2DDiagonal, back.System())

	var bad cartesian.Grid
	require.ErrorIs(t, json.Unmarshal([]byte(`{"size_x":0,"size_y":3}`), &bad), cartesian.ErrInvalidExtent)
}

// TestGridYAML encodes a grid as its Config and decodes it back.
func TestGridYAML(t *testing.T) {
	g := mustGrid(cartesian.New3D(2, 3, 4, cartesian.WithWrapZ()))

	out, err := yaml.Marshal(g)
	require.NoError(t, err)

	var back cartesian.Grid
	require.NoError(t, yaml.Unmarshal(out, &back))
	require.Equal(t, g.Config(), back.Config())
	require.Equal(t, 24, back.TotalSize())
}

// TestConfigTOML decodes a grid description from TOML.
func TestConfigTOML(t *testing.T) {
	src := `
size_x = 5
size_y = 2
wrap_x = true
`
	var c cartesian.Config
	_, err := toml.Decode(src, &c)
	require.NoError(t, err)
	require.Equal(t, cartesian.Config{SizeX: 5, SizeY: 2, WrapX: true}, c)

	var buf bytes.Buffer
	require.NoError(t, toml.NewEncoder(&buf).Encode(c))
	var again cartesian.Config
	_, err = toml.Decode(buf.String(), &again)
	require.NoError(t, err)
	require.Equal(t, c, again)
}

// TestDataCodec serializes a cartesian container through JSON and YAML.
func TestDataCodec(t *testing.T) {
	g := mustGrid(cartesian.New2D(2, 2))
	d, err := cartesian.NewDataFunc(g, func(p cartesian.Position) int { return p.X + 10*p.Y })
	require.NoError(t, err)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	require.JSONEq(t, `{"grid":{"size_x":2,"size_y":2},"cells":[0,1,10,11]}`, string(raw))

	var fromJSON grid.Data[cartesian.Position, *cartesian.Grid, int]
	require.NoError(t, json.Unmarshal(raw, &fromJSON))
	require.Equal(t, d.Values(), fromJSON.Values())
	require.Equal(t, g.Config(), fromJSON.Grid().Config())

	out, err := yaml.Marshal(d)
	require.NoError(t, err)
	var fromYAML grid.Data[cartesian.Position, *cartesian.Grid, int]
	require.NoError(t, yaml.Unmarshal(out, &fromYAML))
	require.Equal(t, d.Values(), fromYAML.Values())

	var short grid.Data[cartesian.Position, *cartesian.Grid, int]
	err = json.Unmarshal([]byte(`{"grid":{"size_x":2,"size_y":2},"cells":[1,2,3]}`), &short)
	require.ErrorIs(t, err, grid.ErrSizeMismatch)
}

// TestPositionCodec covers tags and ParsePosition.
func TestPositionCodec(t *testing.T) {
	raw, err := json.Marshal(cartesian.XY(3, 4))
	require.NoError(t, err)
	require.JSONEq(t, `{"x":3,"y":4}`, string(raw))

	p, err := cartesian.ParsePosition(" 1, 2 ,3")
	require.NoError(t, err)
	require.Equal(t, cartesian.XYZ(1, 2, 3), p)

	p, err = cartesian.ParsePosition("7,8")
	require.NoError(t, err)
	require.Equal(t, cartesian.XY(7, 8), p)
	require.Equal(t, "(7,8,0)", p.String())

	for _, bad := range []string{"", "1", "1,2,3,4", "a,b"} {
		_, err := cartesian.ParsePosition(bad)
		require.ErrorIs(t, err, cartesian.ErrInvalidPosition, "input %q", bad)
	}
}
