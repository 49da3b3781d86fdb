package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes the command tree with args and returns stdout.
// Every flag is passed explicitly since cobra keeps values between runs.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	flagStart, flagPredicate, flagMaxCells, flagComponentsPredicate = "", "", 0, ""
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

var lakePath = filepath.Join("..", "..", "internal", "scenario", "testdata", "lake.yml")

// TestInfo describes the embedded scenario in text and json.
func TestInfo(t *testing.T) {
	out, err := run(t, "info", "--config", "", "--format", "text")
	require.NoError(t, err)
	require.Contains(t, out, "Scenario:   walled-garden")
	require.Contains(t, out, "Total size: 48")
	require.Contains(t, out, "Directions: 4 (XForward, YForward, XBackward, YBackward)")

	out, err = run(t, "info", "--config", "", "--format", "json")
	require.NoError(t, err)
	var report struct {
		TotalSize  int      `json:"total_size"`
		System     string   `json:"system"`
		Directions []string `json:"directions"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Equal(t, 48, report.TotalSize)
	require.Len(t, report.Directions, 4)
}

// TestFill floods the embedded scenario from its start.
func TestFill(t *testing.T) {
	out, err := run(t, "fill", "--config", "", "--format", "text")
	require.NoError(t, err)
	want := "~~#.....\n~~#.##..\n~~#..#..\n#####...\n.....#..\n.....#..\n"
	require.Equal(t, want, out)

	out, err = run(t, "fill", "--config", "", "--format", "yaml", "--start", "0,5", "--max-cells", "3")
	require.NoError(t, err)
	var report fillReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	require.Equal(t, 3, report.Count)
	require.Len(t, report.Positions, 3)
}

// TestFillPredicate uses the Lua predicate of the lake scenario.
func TestFillPredicate(t *testing.T) {
	out, err := run(t, "fill", "--config", lakePath, "--format", "text")
	require.NoError(t, err)
	require.Equal(t, "#~###\n##~##\n###.#\n", out)

	out, err = run(t, "fill", "--config", lakePath, "--format", "json", "--predicate", `cell == "."`)
	require.NoError(t, err)
	var report fillReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Equal(t, 3, report.Count)
}

// TestComponents lists the regions of the embedded scenario.
func TestComponents(t *testing.T) {
	out, err := run(t, "components", "--config", "", "--format", "json")
	require.NoError(t, err)
	var report componentsReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Regions, 3)
	sizes := []int{report.Regions[0].Size, report.Regions[1].Size, report.Regions[2].Size}
	require.Equal(t, []int{6, 19, 10}, sizes)

	out, err = run(t, "components", "--config", "", "--format", "text")
	require.NoError(t, err)
	require.Contains(t, out, "Regions: 3")
	require.Contains(t, out, "#3  size=10  first=(0,4,0)")
}

// TestErrors covers invalid flags and inputs.
func TestErrors(t *testing.T) {
	_, err := run(t, "info", "--config", "", "--format", "xml")
	require.ErrorContains(t, err, "invalid --format")

	_, err = run(t, "fill", "--config", "", "--format", "text", "--start", "9,9")
	require.Error(t, err)

	_, err = run(t, "fill", "--config", "", "--format", "text", "--predicate", "cell ==")
	require.Error(t, err)

	_, err = run(t, "info", "--config", "missing.toml", "--format", "text")
	require.Error(t, err)
}
