package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"routeopt/internal/model"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, model.AlgoHybrid, cfg.DefaultAlgorithm)
	require.Equal(t, 20, cfg.MaxStopsPerRoute)
	require.Equal(t, model.DefaultWeights(), cfg.Weights)
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routeopt.yaml")
	data := []byte(`
defaultAlgorithm: genetic
maxStopsPerRoute: 12
weights:
  distance: 0.5
  time: 0.25
  earnings: 0.25
genetic:
  population: 30
  generations: 40
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "genetic", cfg.DefaultAlgorithm)
	require.Equal(t, 12, cfg.MaxStopsPerRoute)
	require.Equal(t, 30, cfg.Genetic.Population)
	require.Equal(t, 0.5, cfg.Weights.Distance)

	t.Setenv("ROUTEOPT_ALGORITHM", "ant_colony")
	t.Setenv("ROUTEOPT_MAX_STOPS", "7")
	cfg, err = Load(path)
	require.NoError(t, err)
	require.Equal(t, "ant_colony", cfg.DefaultAlgorithm)
	require.Equal(t, 7, cfg.MaxStopsPerRoute)
}
