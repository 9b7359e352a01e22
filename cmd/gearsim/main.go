// gearsim creates gear and runs it through its lifecycle.
//
// Usage:
//
//	go run ./cmd/gearsim roll
//	go run ./cmd/gearsim -seed 42 roll
//	go run ./cmd/gearsim -count 100000 batch
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/udisondev/gearforge/internal/config"
	"github.com/udisondev/gearforge/internal/data"
	"github.com/udisondev/gearforge/internal/rng"
)

const ConfigPath = "config/gearsim.yaml"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("gearsim", flag.ContinueOnError)
	cfgPath := fs.String("config", ConfigPath, "path to the YAML config (GEARSIM_CONFIG overrides the default)")
	seed := fs.Uint64("seed", 0, "random seed, overrides config (0 keeps config)")
	count := fs.Int("count", 0, "batch size, overrides config (0 keeps config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path := *cfgPath
	if p := os.Getenv("GEARSIM_CONFIG"); p != "" && *cfgPath == ConfigPath {
		path = p
	}
	cfg, err := config.LoadGearSim(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *count > 0 {
		cfg.Batch.Count = *count
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	if cfg.Seed == 0 {
		if cfg.Seed, err = rng.NewSeed(); err != nil {
			return err
		}
	}
	slog.Info("gearsim starting", "log_level", cfg.LogLevel, "seed", cfg.Seed)

	catalogs, err := data.Load()
	if err != nil {
		return err
	}

	cmd := "roll"
	if fs.NArg() > 0 {
		cmd = fs.Arg(0)
	}
	switch cmd {
	case "roll":
		return roll(os.Stdout, catalogs, cfg)
	case "batch":
		return batch(ctx, os.Stdout, catalogs, cfg)
	default:
		return fmt.Errorf("unknown command %q (want roll or batch)", cmd)
	}
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
