// Package vecfile reads and writes lists of vectors as JSON or YAML.
// Each vector is an ordered record of the fields x, y and z.
package vecfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/philipparndt/vec3/pkg/vec3"
)

// Load reads a vector list from a file and returns it
// The format is chosen by file extension: .json, .yaml or .yml
func Load(filename string) ([]vec3.Vector3D[float64], error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var vectors []vec3.Vector3D[float64]
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".json":
		if err := json.Unmarshal(data, &vectors); err != nil {
			return nil, fmt.Errorf("failed to parse JSON vectors: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &vectors); err != nil {
			return nil, fmt.Errorf("failed to parse YAML vectors: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported file extension %q", ext)
	}

	return vectors, nil
}

// Save writes a vector list to a file, choosing the format by
// extension as in Load
func Save(filename string, vectors []vec3.Vector3D[float64]) error {
	var data []byte
	var err error

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".json":
		data, err = json.MarshalIndent(vectors, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(vectors)
	default:
		return fmt.Errorf("unsupported file extension %q", ext)
	}
	if err != nil {
		return fmt.Errorf("failed to encode vectors: %w", err)
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
