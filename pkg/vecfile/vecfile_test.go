package vecfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/vec3/pkg/vec3"
)

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.json")
	content := `[{"x": 1, "y": 2, "z": 3}, {"x": -4, "y": 5.5, "z": 0}]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	vectors, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(vectors) != 2 {
		t.Fatalf("Load failed: expected 2 vectors, got %d", len(vectors))
	}
	expected := vec3.New(1.0, 2.0, 3.0)
	if vectors[0] != expected {
		t.Errorf("Load failed: expected %v, got %v", expected, vectors[0])
	}
	expected = vec3.New(-4.0, 5.5, 0.0)
	if vectors[1] != expected {
		t.Errorf("Load failed: expected %v, got %v", expected, vectors[1])
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.yaml")
	content := "- x: 1\n  y: 2\n  z: 3\n- x: 0.5\n  y: -1\n  z: 2\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	vectors, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(vectors) != 2 {
		t.Fatalf("Load failed: expected 2 vectors, got %d", len(vectors))
	}
	expected := vec3.New(0.5, -1.0, 2.0)
	if vectors[1] != expected {
		t.Errorf("Load failed: expected %v, got %v", expected, vectors[1])
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.csv")
	if err := os.WriteFile(path, []byte("1,2,3"), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Errorf("Load failed: expected error for unsupported extension")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("Load failed: expected error for missing file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	vectors := []vec3.Vector3D[float64]{
		vec3.New(1.0, 2.0, 3.0),
		vec3.New(-4.5, 0.0, 6.25),
	}

	for _, name := range []string{"vectors.json", "vectors.yaml"} {
		path := filepath.Join(t.TempDir(), name)
		if err := Save(path, vectors); err != nil {
			t.Fatalf("Save failed for %s: %v", name, err)
		}

		loaded, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed for %s: %v", name, err)
		}
		if len(loaded) != len(vectors) {
			t.Fatalf("round trip failed for %s: expected %d vectors, got %d", name, len(vectors), len(loaded))
		}
		for i := range vectors {
			if loaded[i] != vectors[i] {
				t.Errorf("round trip failed for %s: expected %v, got %v", name, vectors[i], loaded[i])
			}
		}
	}
}
