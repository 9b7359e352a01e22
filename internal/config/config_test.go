package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gearsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadGearSim_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadGearSim(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultGearSim(), cfg)
}

func TestLoadGearSim_YAML(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
seed: 42
roll:
  archetype: boots
  grade: epic
  set: speed
  level: 85
  mainstat: "10"
  substats: ["6", "7"]
  reforge: true
  modify:
    index: 2
    stat: "1"
    stone: lesser
batch:
  count: 500
  workers: 8
`)

	cfg, err := LoadGearSim(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "boots", cfg.Roll.Archetype)
	assert.Equal(t, []string{"6", "7"}, cfg.Roll.Substats)
	assert.True(t, cfg.Roll.Enhance, "unset fields keep defaults")
	assert.True(t, cfg.Roll.Reforge)
	require.NotNil(t, cfg.Roll.Modify)
	assert.Equal(t, ModifyConfig{Index: 2, Stat: "1", Stone: "lesser"}, *cfg.Roll.Modify)
	assert.Equal(t, 500, cfg.Batch.Count)
	assert.Equal(t, 8, cfg.Batch.Workers)
	assert.True(t, cfg.Batch.Reforge)
}

func TestLoadGearSim_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "seed: 1\nbatch:\n  workers: 2\n")
	t.Setenv("GEARSIM_SEED", "7")
	t.Setenv("GEARSIM_BATCH_WORKERS", "16")
	t.Setenv("GEARSIM_SUBSTATS", "1,10")

	cfg, err := LoadGearSim(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 16, cfg.Batch.Workers)
	assert.Equal(t, []string{"1", "10"}, cfg.Roll.Substats)
}

func TestLoadGearSim_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed yaml", "batch: [1, 2"},
		{"unknown log level", "log_level: chatty"},
		{"zero workers", "batch:\n  workers: 0"},
		{"negative count", "batch:\n  count: -1"},
		{"zero modify index", "roll:\n  modify:\n    stat: \"1\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadGearSim(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadGearSim_BadEnv(t *testing.T) {
	t.Setenv("GEARSIM_SEED", "not-a-number")
	_, err := LoadGearSim(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestDefaultGearSim_Valid(t *testing.T) {
	t.Parallel()
	assert.NoError(t, DefaultGearSim().Validate())
}
