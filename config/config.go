// Package config loads .sassgo.yaml project configuration, grounded on
// the ambient-stack convention of a yaml.v3-backed settings file (spec.md
// §8's config section).
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk project configuration.
type Config struct {
	LoadPaths  []string `yaml:"load_paths"`
	OutDir     string   `yaml:"out_dir"`
	Compressed bool     `yaml:"compressed"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{OutDir: "."}
}

// Load reads and parses a .sassgo.yaml file at path. A missing file is
// not an error: Default() is returned instead, since config is optional.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
