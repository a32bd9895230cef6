package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the user-editable configuration file.
type Config struct {
	// LayoutFile overrides the default layout document path. A leading
	// "~/" expands to the user's home directory.
	LayoutFile string `yaml:"layoutFile"`
}

// Load reads the config file at path. A missing file yields an empty
// config, not an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &cfg, nil
}

// ResolveLayoutFile returns the layout document path to use: the config
// override when set, else the default from Paths.
func (p *Paths) ResolveLayoutFile(cfg *Config) string {
	if cfg != nil && cfg.LayoutFile != "" {
		return expandHome(cfg.LayoutFile)
	}
	return p.LayoutFile
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/"))
	}
	return path
}
