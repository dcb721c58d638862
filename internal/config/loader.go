package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SceneFile is the file name looked up in the config directories.
const SceneFile = "scene.yaml"

// Load loads the scene configuration and validates it.
// Search order: customPath -> ~/.thrust/configs/scene.yaml -> ./configs/scene.yaml -> embedded default
// Fields missing from a file keep their default values.
func Load(customPath string) (SceneConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (SceneConfig, error) {
	cfg := DefaultSceneConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(SceneFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if parsed, ok := parse(data); ok {
				return parsed, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", SceneFile)); err == nil {
		if parsed, ok := parse(data); ok {
			return parsed, nil
		}
	}

	// Use embedded default YAML
	if parsed, ok := parse(defaultSceneYAML); ok {
		return parsed, nil
	}
	return DefaultSceneConfig(), nil // Fallback to hardcoded if embed fails
}

// parse decodes data over the defaults. Unreadable files are skipped by the caller.
func parse(data []byte) (SceneConfig, bool) {
	cfg := DefaultSceneConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".thrust", "configs", filename)
}
