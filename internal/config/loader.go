package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadKong loads the girder-climbing game configuration.
// Search order: customPath -> ~/.arcade/configs/kong.yaml -> ./configs/kong.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a user file only needs the keys it changes.
func LoadKong(customPath string) (KongConfig, error) {
	cfg := DefaultKongConfig()

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
	if userCfgPath := userConfigPath("kong.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := DefaultKongConfig()
			if err := yaml.Unmarshal(data, &candidate); err == nil {
				return candidate, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/kong.yaml"); err == nil {
		candidate := DefaultKongConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	embedded := DefaultKongConfig()
	if err := yaml.Unmarshal(defaultKongYAML, &embedded); err != nil {
		return DefaultKongConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyKongPreset modifies the config based on a difficulty preset.
// Presets only change how fast later loops get harder: every preset starts
// at level 0, so the first loop plays with the configured rules.
func ApplyKongPreset(cfg *KongConfig, preset DifficultyPreset) {
	cfg.Difficulty.InitialLevel = 0
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	if maxAt := MaxAtForPreset(preset); maxAt > 0 {
		cfg.Difficulty.Progression.MaxAt = maxAt
	}
}
