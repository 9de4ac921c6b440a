// SPDX-License-Identifier: MIT
//
// File: yaml.go
// Role: YAML topology loading on top of Build's validation.

package builder

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dkoval/emergenet/core"
)

// Parse decodes a YAML TopologySpec and builds the graph from it.
// Decoding is strict: unknown fields in the document are rejected.
func Parse(data []byte) (*core.Graph, error) {
	var spec TopologySpec
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("builder: decode topology: %w", err)
	}

	return Build(spec)
}

// LoadFile reads a YAML topology file and builds the graph from it.
func LoadFile(path string) (*core.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("builder: read topology file: %w", err)
	}

	return Parse(data)
}

// Marshal renders a TopologySpec back to YAML, e.g. for persisting an
// edited topology next to the built-in default.
func Marshal(spec TopologySpec) ([]byte, error) {
	data, err := yaml.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("builder: encode topology: %w", err)
	}

	return data, nil
}
