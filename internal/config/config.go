package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds planner settings. Values come from an optional YAML file
// and are overridden by command-line flags in main.
type Config struct {
	// MapPath is the JSON map file to load.
	MapPath string `yaml:"map_path" json:"map_path"`
	// SystemName is the system the route starts from.
	SystemName string `yaml:"system_name" json:"system_name"`
	// ClosedTour makes the route return to the start system.
	ClosedTour bool `yaml:"closed_tour" json:"closed_tour"`
	// MaxSystems caps the instance size for the exact search (0 = default).
	MaxSystems int `yaml:"max_systems" json:"max_systems"`
	// ReachableOnly restricts the route to the component reachable from
	// the start system instead of failing on unreachable systems.
	ReachableOnly bool `yaml:"reachable_only" json:"reachable_only"`
	// RenderDot writes a Graphviz .dot of the routed map (and a .png when
	// the dot tool is installed).
	RenderDot bool `yaml:"render_dot" json:"render_dot"`
	// HistoryPath is the SQLite file for solved-route history
	// (empty = router.db in the working directory).
	HistoryPath string `yaml:"history_path" json:"history_path"`
	// DisableHistory skips recording solves.
	DisableHistory bool `yaml:"disable_history" json:"disable_history"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		MapPath:    "data.json",
		MaxSystems: 20,
	}
}

// LoadFile reads a YAML config file over the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
