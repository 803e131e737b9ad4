package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// TiltDodgeFile is the config file name looked up in the search directories.
const TiltDodgeFile = "tiltdodge.yaml"

// LoadTiltDodge loads Tilt Dodge configuration.
// Search order: customPath -> ~/.arcade/configs/tiltdodge.yaml -> ./configs/tiltdodge.yaml -> embedded default
// A custom file that fails Validate is an error; invalid files further down
// the search order are skipped.
func LoadTiltDodge(customPath string) (TiltDodgeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TiltDodgeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseTiltDodge(data)
		if err != nil {
			return TiltDodgeConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return TiltDodgeConfig{}, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(TiltDodgeFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseTiltDodge(data); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", TiltDodgeFile)); err == nil {
		if cfg, err := ParseTiltDodge(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseTiltDodge(defaultTiltDodgeYAML)
	if err != nil {
		return DefaultTiltDodgeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseTiltDodge decodes YAML on top of the hardcoded defaults, so a file
// only needs to list the fields it changes.
func ParseTiltDodge(data []byte) (TiltDodgeConfig, error) {
	cfg := DefaultTiltDodgeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TiltDodgeConfig{}, err
	}
	return cfg, nil
}

// MarshalTiltDodge encodes a configuration as YAML.
func MarshalTiltDodge(cfg TiltDodgeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// UserConfigPath returns ~/.arcade/configs/tiltdodge.yaml, or empty if the
// home directory is unknown.
func UserConfigPath() string {
	return userConfigPath(TiltDodgeFile)
}
