// Package config loads the optional YAML defaults file consulted by the
// qrgo command before command-line flags are applied.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds default values for flags the qrgo command accepts. Any flag
// explicitly set on the command line overrides the matching field here.
type Config struct {
	Mode      string `yaml:"mode"`
	ECLevel   string `yaml:"ec_level"`
	Mask      int    `yaml:"mask"`
	QuietZone int    `yaml:"quiet_zone"`
	LogLevel  string `yaml:"loglevel"`
}

// Defaults returns a Config populated with all default values.
func Defaults() *Config {
	return &Config{
		Mode:      "byte",
		ECLevel:   "M",
		Mask:      0,
		QuietZone: 4,
		LogLevel:  "warn",
	}
}

// Load reads and parses the YAML config file at path, filling in any
// field absent from the file with its default value.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path in YAML format, creating parent directories as
// needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
