package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults_MatchSpecDefaults(t *testing.T) {
	d := Defaults()
	assert.Equal(t, "astar", d.Algorithm)
	assert.Equal(t, "greedy", d.Optimizer)
	assert.Equal(t, 40, d.CSPMaxOffsetSchedule)
	assert.Equal(t, 20, d.CSPMaxOffsetGeneral)
	assert.Equal(t, 40, d.GAPopulation)
	assert.Equal(t, 80, d.GAGenerations)
	assert.InDelta(t, 0.3, d.GAMutationRate, 1e-9)
	assert.Equal(t, 2000, d.LocalSearchIters)
	assert.Equal(t, 5, d.MaxRobots)
}

func TestLoad_NoFileReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_EnvOverridesDefault(t *testing.T) {
	os.Setenv("WAREHOUSE_PLANNER_OPTIMIZER", "ga")
	defer os.Unsetenv("WAREHOUSE_PLANNER_OPTIMIZER")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "ga", cfg.Optimizer)
}

func TestLoad_MissingExplicitConfigFileErrors(t *testing.T) {
	_, err := Load("/nonexistent/path/to/config.yaml")
	assert.Error(t, err)
}
