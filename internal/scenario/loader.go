// SPDX-License-Identifier: MIT

package scenario

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Format names a scenario file encoding.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Load reads and validates a scenario.
// Search order: path -> embedded default (path == "").
func Load(path string) (*Scenario, error) {
	if path == "" {
		return Default()
	}
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	s, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Default returns the embedded demo scenario.
func Default() (*Scenario, error) {
	return Decode(defaultYAML, YAML)
}

// Decode parses and validates a scenario. Unknown keys are rejected.
func Decode(data []byte, format Format) (*Scenario, error) {
	var s Scenario
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("scenario: parse yaml: %w", err)
		}
	case TOML:
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&s)
		if err != nil {
			return nil, fmt.Errorf("scenario: parse toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return nil, fmt.Errorf("scenario: parse toml: unknown keys %s", strings.Join(keys, ", "))
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
