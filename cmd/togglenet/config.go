package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultConfigPath is probed when --config is not given; a missing default
// file is simply skipped.
const defaultConfigPath = "togglenet.yaml"

// Config carries file-based defaults for the solver knobs. Flags win over
// config values, and zero values fall back to the package defaults.
type Config struct {
	// Workers caps how many lines are solved in parallel.
	Workers int `yaml:"workers"`
	// BFSMaxPositions feeds minsteps.Options: the position count up to
	// which automatic selection prefers the bidirectional search.
	BFSMaxPositions int `yaml:"bfs_max_positions"`
	// SeedLimit feeds parity.Options: the kernel-dimension cap for coset
	// enumeration.
	SeedLimit int `yaml:"seed_limit"`
}

// loadConfig reads the YAML file at path. A missing file is only an error
// when the path was given explicitly.
func loadConfig(path string, explicit bool) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
