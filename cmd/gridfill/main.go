// SPDX-License-Identifier: MIT

// gridfill runs flood fill scenarios on cartesian grids from the terminal.
//
// Usage:
//
//	gridfill info                - Describe the scenario grid
//	gridfill fill                - Flood fill from the start position
//	gridfill components          - List the connected fillable regions
//
// Global flags:
//
//	--config <path>     - Scenario file (.yaml, .yml or .toml; default: embedded demo)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--format <fmt>      - text, json or yaml (default: text)
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridkit/cartesian"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/internal/scenario"
	"github.com/katalvlaran/gridkit/internal/script"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagFormat   string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gridfill",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridfill",
	Short: "Flood fill scenarios on cartesian grids",
	Long: `gridfill loads a character map on a 2D or 3D cartesian grid and runs
flood fill or connected-region discovery over it.

Examples:
  gridfill info
  gridfill fill --config lake.yaml --start 1,0
  gridfill fill --predicate 'cell == "." and x < 4' --format json
  gridfill components --config tower.toml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Scenario file (.yaml, .yml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format (text, json, yaml)")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(fillCmd)
	rootCmd.AddCommand(componentsCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	lvl, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(lvl)

	switch flagFormat {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid --format %q: want text, json or yaml", flagFormat)
	}
	return nil
}

// loadScenario reads the configured scenario and builds its map.
func loadScenario() (*scenario.Scenario, *scenario.Map, error) {
	s, err := scenario.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}
	d, err := s.Build()
	if err != nil {
		return nil, nil, err
	}
	source := flagConfig
	if source == "" {
		source = "embedded"
	}
	logger.Debug("scenario loaded", "name", s.Name, "source", source, "grid", d.Grid())
	return s, d, nil
}

// fillableMask marks the cells a fill may enter: the Lua predicate when one
// is set, the scenario's fillable characters otherwise.
func fillableMask(s *scenario.Scenario, d *scenario.Map, expr string) (*grid.Data[cartesian.Position, *cartesian.Grid, bool], error) {
	if expr == "" {
		return grid.NewDataFunc[cartesian.Position](d.Grid(), func(i int) bool {
			r, _ := d.Get(i)
			return s.IsFillable(r)
		})
	}
	p, err := script.Compile(expr)
	if err != nil {
		return nil, err
	}
	defer p.Close()
	logger.Debug("lua predicate compiled", "expr", expr)
	return p.Mask(d)
}

// writeStructured encodes v in the json or yaml output format.
func writeStructured(w io.Writer, v any) error {
	switch flagFormat {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("format %q is not structured", flagFormat)
}
