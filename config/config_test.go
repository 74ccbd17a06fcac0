package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hydroflow/hydroflow/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, "highs", cfg.Solver)
	require.Equal(t, 1e-9, cfg.Tolerance)
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	body := `
node_file: in/nodes.csv
arc_file: in/arcs.csv
supply_file: in/supply.csv
demand_file: in/demand.csv
solver: simplex
tolerance: 1e-6
max_iterations: 200
timestep: t3
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "in/nodes.csv", cfg.NodeFile)
	require.Equal(t, "simplex", cfg.Solver)
	require.Equal(t, 1e-6, cfg.Tolerance)
	require.Equal(t, 200, cfg.MaxIter)
	require.Equal(t, "t3", cfg.Timestep)
	require.NoError(t, cfg.Validate())
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("solver: lpsimplex\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "lpsimplex", cfg.Solver)
	require.Equal(t, config.Default().NodeFile, cfg.NodeFile)
}

func TestLoad_Missing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("solver: [unterminated\n"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.NodeFile = " "
	require.ErrorIs(t, cfg.Validate(), config.ErrMissingPath)

	cfg = config.Default()
	cfg.Solver = "gurobi"
	require.ErrorIs(t, cfg.Validate(), config.ErrBadSolver)

	cfg.Solver = "SIMPLEX"
	require.NoError(t, cfg.Validate(), "solver names are case-insensitive")
}
