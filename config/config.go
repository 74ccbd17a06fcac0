package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hydroflow/hydroflow/solver"
)

var (
	// ErrMissingPath indicates a required input file path is empty.
	ErrMissingPath = errors.New("config: input file path must not be empty")
	// ErrBadSolver indicates the configured solver is not registered.
	ErrBadSolver = errors.New("config: unknown solver name")
)

// Config is the root run configuration.
type Config struct {
	NodeFile   string  `yaml:"node_file"`
	ArcFile    string  `yaml:"arc_file"`
	SupplyFile string  `yaml:"supply_file"`
	DemandFile string  `yaml:"demand_file"`
	Solver     string  `yaml:"solver"`
	Tolerance  float64 `yaml:"tolerance"`
	MaxIter    int     `yaml:"max_iterations"`
	// Timestep selects a single timestep label; empty runs all of them.
	Timestep string `yaml:"timestep"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		NodeFile:   "data/nodes.csv",
		ArcFile:    "data/arcs.csv",
		SupplyFile: "data/water_supply.csv",
		DemandFile: "data/water_demand.csv",
		Solver:     "highs",
		Tolerance:  1e-9,
		MaxIter:    4000,
	}
}

// Load reads a YAML configuration file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks paths and the solver name against the registry.
func (c Config) Validate() error {
	for name, path := range map[string]string{
		"node_file":   c.NodeFile,
		"arc_file":    c.ArcFile,
		"supply_file": c.SupplyFile,
		"demand_file": c.DemandFile,
	} {
		if strings.TrimSpace(path) == "" {
			return fmt.Errorf("%s: %w", name, ErrMissingPath)
		}
	}

	known := false
	for _, name := range solver.Names() {
		if strings.EqualFold(name, c.Solver) {
			known = true

			break
		}
	}
	if !known {
		return fmt.Errorf("%q (registered: %s): %w",
			c.Solver, strings.Join(solver.Names(), ", "), ErrBadSolver)
	}

	return nil
}
