// SPDX-License-Identifier: MIT

package cartesian

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the grid as its Config.
func (g *Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Config())
}

// UnmarshalJSON decodes a Config and validates it like NewFromConfig.
func (g *Grid) UnmarshalJSON(b []byte) error {
	var c Config
	if err := json.Unmarshal(b, &c); err != nil {
		return fmt.Errorf("cartesian: decode json: %w", err)
	}
	return g.restore(c)
}

// MarshalYAML encodes the grid as its Config.
func (g *Grid) MarshalYAML() (interface{}, error) {
	return g.Config(), nil
}

// UnmarshalYAML decodes a Config and validates it like NewFromConfig.
func (g *Grid) UnmarshalYAML(value *yaml.Node) error {
	var c Config
	if err := value.Decode(&c); err != nil {
		return fmt.Errorf("cartesian: decode yaml: %w", err)
	}
	return g.restore(c)
}

func (g *Grid) restore(c Config) error {
	ng, err := NewFromConfig(c)
	if err != nil {
		return err
	}
	*g = *ng
	return nil
}
