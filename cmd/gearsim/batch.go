package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/udisondev/gearforge/internal/config"
	"github.com/udisondev/gearforge/internal/data"
	"github.com/udisondev/gearforge/internal/game/gear"
	"github.com/udisondev/gearforge/internal/rng"
)

// gradeStats aggregates the final gear scores of one grade.
type gradeStats struct {
	Count int
	Sum   int
	Best  int
}

func (s *gradeStats) add(score int) {
	s.Count++
	s.Sum += score
	s.Best = max(s.Best, score)
}

func (s *gradeStats) merge(o gradeStats) {
	s.Count += o.Count
	s.Sum += o.Sum
	s.Best = max(s.Best, o.Best)
}

// summary is the batch result keyed by grade.
type summary map[data.Grade]gradeStats

// simulate creates count random gears on workers goroutines, enhances each to
// +15, optionally reforges it and aggregates scores. Worker w draws from its own
// source seeded with seed+w, so a run is reproducible for a fixed worker count.
func simulate(ctx context.Context, c *data.Catalogs, seed uint64, count, workers int, reforge bool) (summary, error) {
	workers = max(min(workers, count), 1)
	parts := make([]summary, workers)

	eg, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		n := count / workers
		if w < count%workers {
			n++
		}
		eg.Go(func() error {
			f := gear.NewFactory(c, rng.New(seed+uint64(w)))
			part := summary{}
			for i := range n {
				if i%256 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				score, grade, err := simulateOne(f, reforge)
				if err != nil {
					return fmt.Errorf("worker %d gear %d: %w", w, i, err)
				}
				st := part[grade]
				st.add(score)
				part[grade] = st
			}
			parts[w] = part
			slog.Debug("worker done", "worker", w, "gears", n)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	total := summary{}
	for _, part := range parts {
		for g, st := range part {
			acc := total[g]
			acc.merge(st)
			total[g] = acc
		}
	}
	return total, nil
}

func simulateOne(f *gear.Factory, reforge bool) (int, data.Grade, error) {
	g, err := f.Create(gear.Options{})
	if err != nil {
		return 0, "", err
	}
	for g.Enhancement() < data.MaxEnhancement {
		if _, err := g.Enhance(); err != nil {
			return 0, "", err
		}
	}
	if reforge {
		if _, err := g.Reforge(); err != nil {
			return 0, "", err
		}
	}
	score, _ := g.Score()
	return score, g.Grade(), nil
}

// batch runs the simulation and prints a per-grade report.
func batch(ctx context.Context, w io.Writer, c *data.Catalogs, cfg config.GearSim) error {
	res, err := simulate(ctx, c, cfg.Seed, cfg.Batch.Count, cfg.Batch.Workers, cfg.Batch.Reforge)
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(w, "%d gears simulated (seed %d, %d workers)\n", cfg.Batch.Count, cfg.Seed, cfg.Batch.Workers)
	for _, g := range c.GradeNames() {
		st, ok := res[g]
		if !ok {
			continue
		}
		p.Fprintf(w, "%-7s %8d gears  avg score %6.2f  best %d\n",
			g, st.Count, float64(st.Sum)/float64(st.Count), st.Best)
	}
	return nil
}
