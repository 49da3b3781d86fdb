// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridkit/cartesian"
	"github.com/katalvlaran/gridkit/direction"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe the scenario grid",
	Long:  `Shows the grid configuration, its total size and the neighbor directions it supports.`,
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

type infoReport struct {
	Name       string                `json:"name" yaml:"name"`
	Grid       cartesian.Config      `json:"grid" yaml:"grid"`
	TotalSize  int                   `json:"total_size" yaml:"total_size"`
	System     string                `json:"system" yaml:"system"`
	Directions []direction.Direction `json:"directions" yaml:"directions"`
}

func runInfo(cmd *cobra.Command, args []string) error {
	s, d, err := loadScenario()
	if err != nil {
		return err
	}
	g := d.Grid()
	report := infoReport{
		Name:       s.Name,
		Grid:       g.Config(),
		TotalSize:  g.TotalSize(),
		System:     g.System().Name(),
		Directions: g.Directions(),
	}

	out := cmd.OutOrStdout()
	if flagFormat != "text" {
		return writeStructured(out, report)
	}

	names := make([]string, len(report.Directions))
	for i, dir := range report.Directions {
		names[i] = dir.String()
	}
	fmt.Fprintf(out, "Scenario:   %s\n", report.Name)
	fmt.Fprintf(out, "Grid:       %s\n", g)
	fmt.Fprintf(out, "Total size: %d\n", report.TotalSize)
	fmt.Fprintf(out, "Directions: %d (%s)\n", len(names), strings.Join(names, ", "))
	return nil
}
