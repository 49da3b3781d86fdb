// SPDX-License-Identifier: MIT

package grid

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// snapshot is the plain serialized form of a Data: the grid encoded by its
// own marshaler followed by the cells in index order.
type snapshot[G any, T any] struct {
	Grid  G   `json:"grid" yaml:"grid"`
	Cells []T `json:"cells" yaml:"cells"`
}

// MarshalJSON implements json.Marshaler.
func (d *Data[P, G, T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(snapshot[G, T]{Grid: d.grid, Cells: d.cells})
}

// UnmarshalJSON implements json.Unmarshaler. The decoded cell count must
// match the decoded grid, otherwise ErrSizeMismatch is returned.
func (d *Data[P, G, T]) UnmarshalJSON(b []byte) error {
	var s snapshot[G, T]
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("grid: decode json: %w", err)
	}
	return d.restore(s)
}

// MarshalYAML implements yaml.Marshaler.
func (d *Data[P, G, T]) MarshalYAML() (interface{}, error) {
	return snapshot[G, T]{Grid: d.grid, Cells: d.cells}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Data[P, G, T]) UnmarshalYAML(value *yaml.Node) error {
	var s snapshot[G, T]
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("grid: decode yaml: %w", err)
	}
	return d.restore(s)
}

func (d *Data[P, G, T]) restore(s snapshot[G, T]) error {
	nd, err := NewDataFrom[P](s.Grid, s.Cells)
	if err != nil {
		return err
	}
	*d = *nd
	return nil
}
