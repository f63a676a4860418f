package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// userConfigFile is the name of the user configuration file (sibling to .dundun/).
	userConfigFile = ".dundunconfig.yaml"

	// Default configuration values
	DefaultConfirm         = true
	DefaultShowIDs         = true
	DefaultRefreshInterval = time.Second
)

// Config represents user configuration from .dundunconfig.yaml.
// This file is user-managed and never written by dundun.
type Config struct {
	// Confirm asks before `dundun delete` and `dundun reset`.
	Confirm bool `yaml:"confirm"`

	// ShowIDs includes short IDs in `dundun list`.
	ShowIDs bool `yaml:"show_ids"`

	// RefreshInterval is how often `dundun watch` checks for changes.
	RefreshInterval time.Duration `yaml:"refresh_interval"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Confirm:         DefaultConfirm,
		ShowIDs:         DefaultShowIDs,
		RefreshInterval: DefaultRefreshInterval,
	}
}

// LoadConfig loads .dundunconfig.yaml if it exists, otherwise returns defaults.
// The config file is a sibling to .dundun/ (in the same directory).
// Partial config files are merged with defaults.
func (s *Storage) LoadConfig() (*Config, error) {
	configPath := s.ConfigPath()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
	}

	if cfg.RefreshInterval <= 0 {
		return nil, fmt.Errorf("invalid %s: refresh_interval must be positive", userConfigFile)
	}

	return cfg, nil
}

// ConfigPath returns the path to the user config file.
func (s *Storage) ConfigPath() string {
	return filepath.Join(s.root, userConfigFile)
}
