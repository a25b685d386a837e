package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "flapper.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.flapper/config.yaml -> ./configs/flapper.yaml -> embedded default.
//
// The returned Config is always valid. A non-nil error reports a source
// that was found but could not be used; the caller decides whether to warn.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return Embedded(), err
		}
		return cfg, nil
	}

	var skipped []error

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(), filepath.Join("configs", fileName)} {
		if path == "" {
			continue
		}
		cfg, err := loadFile(path)
		if err == nil {
			return cfg, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			skipped = append(skipped, err)
		}
	}

	return Embedded(), errors.Join(skipped...)
}

// Embedded returns the embedded default configuration, or the hardcoded
// defaults if the embedded file cannot be used.
func Embedded() Config {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// Parse decodes YAML over the default configuration and validates it.
// Keys missing from data keep their default values.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flapper", "config.yaml")
}
