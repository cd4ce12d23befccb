package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration. Values from a file overlay the defaults.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default
func Load(customPath string) (Config, error) {
	base := embeddedDefault()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := overlay(base, data)
		if err != nil {
			return base, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Source = customPath
		return cfg, cfg.Validate()
	}

	candidates := []string{userConfigPath("config.yaml"), filepath.Join("configs", "snake.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := overlay(base, data); err == nil {
			cfg.Source = path
			return cfg, cfg.Validate()
		}
	}

	return base, base.Validate()
}

// embeddedDefault parses the embedded YAML over the hardcoded defaults.
func embeddedDefault() Config {
	cfg, err := overlay(DefaultConfig(), defaultSnakeYAML)
	if err != nil {
		return DefaultConfig() // Fallback to hardcoded if embed fails
	}
	cfg.Source = "embedded"
	return cfg
}

// overlay decodes data on top of a copy of base.
func overlay(base Config, data []byte) (Config, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}
