package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-thrust/internal/movement"
)

// isolate points HOME and the working directory at empty temp dirs so only
// the embedded default is visible.
func isolate(t *testing.T) (home, cwd string) {
	t.Helper()
	home = t.TempDir()
	cwd = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(cwd)
	return home, cwd
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
}

func TestEmbeddedMatchesDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSceneConfig()) {
		t.Errorf("embedded config = %+v, expected %+v", cfg, DefaultSceneConfig())
	}
}

func TestDefaultSceneConfigValid(t *testing.T) {
	cfg := DefaultSceneConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v, expected nil", err)
	}
	if cfg.Physics.Timestep() != 1.0/60.0 {
		t.Errorf("Timestep() = %v, expected 1/60", cfg.Physics.Timestep())
	}
	intent, err := cfg.Ship.Intent()
	if err != nil || intent != movement.Right {
		t.Errorf("Ship.Intent() = %v, %v, expected right", intent, err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "physics:\n  acceleration: 100\nship:\n  initial_intent: up-left\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.Acceleration != 100 {
		t.Errorf("Acceleration = %v, expected 100", cfg.Physics.Acceleration)
	}
	if cfg.Ship.InitialIntent != "up-left" {
		t.Errorf("InitialIntent = %q, expected up-left", cfg.Ship.InitialIntent)
	}
	// Untouched fields keep defaults.
	if cfg.Barrier.Width != 100 || len(cfg.Barrier.VertexOffsets) != 4 {
		t.Errorf("barrier = %+v, expected defaults", cfg.Barrier)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "physics: [not, a, map\n")
	if _, err := Load(bad); err == nil {
		t.Error("malformed custom file should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "camera:\n  zoom: 0\n")
	if _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() error = %v, expected ErrInvalid", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, cwd := isolate(t)

	writeFile(t, filepath.Join(cwd, "configs", SceneFile), "physics:\n  acceleration: 10\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.Acceleration != 10 {
		t.Errorf("local config: Acceleration = %v, expected 10", cfg.Physics.Acceleration)
	}

	// The user directory wins over the local one.
	writeFile(t, filepath.Join(home, ".thrust", "configs", SceneFile), "physics:\n  acceleration: 20\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.Acceleration != 20 {
		t.Errorf("user config: Acceleration = %v, expected 20", cfg.Physics.Acceleration)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SceneConfig)
	}{
		{"zero tick rate", func(c *SceneConfig) { c.Physics.TickRate = 0 }},
		{"negative acceleration", func(c *SceneConfig) { c.Physics.Acceleration = -1 }},
		{"zero margin", func(c *SceneConfig) { c.Physics.ColliderMargin = 0 }},
		{"negative friction", func(c *SceneConfig) { c.Physics.Friction = -0.1 }},
		{"flat barrier", func(c *SceneConfig) { c.Barrier.Height = 0 }},
		{"three offsets", func(c *SceneConfig) { c.Barrier.VertexOffsets = c.Barrier.VertexOffsets[:3] }},
		{"ship smaller than margin", func(c *SceneConfig) { c.Ship.HalfExtent = 0.005 }},
		{"zero density", func(c *SceneConfig) { c.Ship.Density = 0 }},
		{"unknown intent", func(c *SceneConfig) { c.Ship.InitialIntent = "sideways" }},
		{"zero zoom", func(c *SceneConfig) { c.Camera.Zoom = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSceneConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestValidateDisabledBarrier(t *testing.T) {
	cfg := DefaultSceneConfig()
	cfg.Barrier.Enabled = false
	cfg.Barrier.VertexOffsets = nil
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil for disabled barrier", err)
	}
}
