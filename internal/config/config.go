package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// GearSim holds all configuration for the gearsim tool.
type GearSim struct {
	LogLevel string `yaml:"log_level" env:"GEARSIM_LOG_LEVEL"` // debug, info, warn, error
	Seed     uint64 `yaml:"seed"      env:"GEARSIM_SEED"`      // 0 = random seed

	Roll  RollConfig  `yaml:"roll"`
	Batch BatchConfig `yaml:"batch"`
}

// RollConfig describes the single gear the roll command creates.
// Empty fields are drawn randomly.
type RollConfig struct {
	Archetype string   `yaml:"archetype" env:"GEARSIM_ARCHETYPE"`
	Grade     string   `yaml:"grade"     env:"GEARSIM_GRADE"`
	Set       string   `yaml:"set"       env:"GEARSIM_SET"`
	Level     int      `yaml:"level"     env:"GEARSIM_LEVEL"` // 0 = 85
	Mainstat  string   `yaml:"mainstat"  env:"GEARSIM_MAINSTAT"`
	Substats  []string `yaml:"substats"  env:"GEARSIM_SUBSTATS" envSeparator:","`

	Enhance bool          `yaml:"enhance" env:"GEARSIM_ENHANCE"` // enhance to +15
	Reforge bool          `yaml:"reforge" env:"GEARSIM_REFORGE"`
	Modify  *ModifyConfig `yaml:"modify"`
}

// ModifyConfig describes one modification applied after enhancement.
type ModifyConfig struct {
	Index int    `yaml:"index"` // 1-based substat index
	Stat  string `yaml:"stat"`
	Stone string `yaml:"stone"` // greater (default) or lesser
}

// BatchConfig controls the batch simulation.
type BatchConfig struct {
	Count   int  `yaml:"count"   env:"GEARSIM_BATCH_COUNT"`
	Workers int  `yaml:"workers" env:"GEARSIM_BATCH_WORKERS"`
	Reforge bool `yaml:"reforge" env:"GEARSIM_BATCH_REFORGE"` // reforge level 85 gear before scoring
}

// DefaultGearSim returns GearSim config with sensible defaults.
func DefaultGearSim() GearSim {
	return GearSim{
		LogLevel: "info",
		Roll: RollConfig{
			Enhance: true,
		},
		Batch: BatchConfig{
			Count:   10000,
			Workers: 4,
			Reforge: true,
		},
	}
}

// LoadGearSim loads gearsim config from a YAML file, then applies
// GEARSIM_* environment overrides. If the file doesn't exist, defaults are used.
func LoadGearSim(path string) (GearSim, error) {
	cfg := DefaultGearSim()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges that the engine does not check itself.
func (c GearSim) Validate() error {
	var errs []error
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log_level %q: must be debug, info, warn or error", c.LogLevel))
	}
	if c.Batch.Count <= 0 {
		errs = append(errs, fmt.Errorf("batch.count %d: must be positive", c.Batch.Count))
	}
	if c.Batch.Workers <= 0 {
		errs = append(errs, fmt.Errorf("batch.workers %d: must be positive", c.Batch.Workers))
	}
	if c.Roll.Modify != nil && c.Roll.Modify.Index <= 0 {
		errs = append(errs, fmt.Errorf("roll.modify.index %d: must be 1-based", c.Roll.Modify.Index))
	}
	return errors.Join(errs...)
}
