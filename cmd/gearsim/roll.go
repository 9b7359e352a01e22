package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/udisondev/gearforge/internal/config"
	"github.com/udisondev/gearforge/internal/data"
	"github.com/udisondev/gearforge/internal/game/gear"
	"github.com/udisondev/gearforge/internal/rng"
)

// buildOptions converts the roll config into creation options.
func buildOptions(c *data.Catalogs, rc config.RollConfig) (gear.Options, error) {
	opts := gear.Options{
		Archetype: rc.Archetype,
		Grade:     rc.Grade,
		Set:       rc.Set,
		Level:     rc.Level,
	}
	if rc.Mainstat != "" {
		id, err := c.ParseStatID(rc.Mainstat)
		if err != nil {
			return opts, err
		}
		opts.Mainstat = &id
	}
	for _, s := range rc.Substats {
		id, err := c.ParseStatID(s)
		if err != nil {
			return opts, err
		}
		opts.Substats = append(opts.Substats, id)
	}
	return opts, nil
}

// roll creates one gear, runs the configured lifecycle steps and prints it.
func roll(w io.Writer, c *data.Catalogs, cfg config.GearSim) error {
	opts, err := buildOptions(c, cfg.Roll)
	if err != nil {
		return fmt.Errorf("roll options: %w", err)
	}

	f := gear.NewFactory(c, rng.New(cfg.Seed))
	g, err := f.Create(opts)
	if err != nil {
		return fmt.Errorf("create gear: %w", err)
	}
	slog.Info("gear created", "gear", g.String())

	if cfg.Roll.Enhance {
		for g.Enhancement() < data.MaxEnhancement {
			res, err := g.Enhance()
			if err != nil {
				return fmt.Errorf("enhance: %w", err)
			}
			slog.Debug("enhanced", "level", g.Enhancement(), "event", res.Event, "substat", res.Substat+1)
			report(w, res)
		}
	}

	if cfg.Roll.Reforge {
		res, err := g.Reforge()
		if err != nil {
			return fmt.Errorf("reforge: %w", err)
		}
		report(w, res)
	}

	if m := cfg.Roll.Modify; m != nil {
		id, err := c.ParseStatID(m.Stat)
		if err != nil {
			return fmt.Errorf("modify: %w", err)
		}
		stone, err := data.NormalizeStoneTier(m.Stone)
		if err != nil {
			return fmt.Errorf("modify: %w", err)
		}
		res, err := g.Modify(m.Index, id, stone)
		if err != nil {
			return fmt.Errorf("modify: %w", err)
		}
		report(w, res)
	}

	fmt.Fprint(w, g.Describe())
	now, after := g.Score()
	fmt.Fprintf(w, "---\nGEAR SCORE: %d (after reforge: %d)\n", now, after)
	return nil
}

func report(w io.Writer, res gear.Result) {
	if res.Message != "" {
		fmt.Fprintln(w, res.Message)
	}
}
