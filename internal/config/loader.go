package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a configuration came from.
const (
	SourceEmbedded = "embedded default"
)

// localConfigPath is checked relative to the working directory.
const localConfigPath = "configs/balloons.yaml"

// Load loads the balloon game configuration and reports where it came from.
// Search order: customPath -> ~/.balloons/config.yaml -> ./configs/balloons.yaml -> embedded default.
// Only an explicit customPath produces an error; broken files found by the
// search are skipped.
func Load(customPath string) (BalloonConfig, string, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, userCfgPath, nil
		}
	}

	if cfg, err := loadFile(localConfigPath); err == nil {
		return cfg, localConfigPath, nil
	}

	cfg, err := Decode(defaultBalloonYAML)
	if err != nil {
		return DefaultBalloonConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Decode parses YAML over the built-in defaults and validates the result.
func Decode(data []byte) (BalloonConfig, error) {
	cfg := DefaultBalloonConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Encode renders a configuration as YAML.
func Encode(cfg BalloonConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// loadFile reads and decodes a single config file.
func loadFile(path string) (BalloonConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultBalloonConfig(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Decode(data)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".balloons", filename)
}
