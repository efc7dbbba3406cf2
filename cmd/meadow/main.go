//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"meadow/internal/app"
	"meadow/internal/core"
	"meadow/internal/growth"
	"meadow/internal/render"
	"meadow/internal/sims/meadow"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, err := app.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("meadow exited", "err", err)
		os.Exit(1)
	}
}

type paramsHolder interface {
	Params() growth.Params
	SetParams(growth.Params)
}

func run(cfg *app.Config, logger *slog.Logger) error {
	sim, err := buildSim(cfg, logger)
	if err != nil {
		return err
	}

	if filter, err := render.ParseFilter(cfg.Sampler); err != nil {
		logger.Warn("unknown sampler, keeping default", "sampler", cfg.Sampler)
	} else if fs, ok := sim.(interface{ SetFilter(render.Filter) }); ok {
		fs.SetFilter(filter)
	}

	deps := app.Deps{Logger: logger}
	if cfg.Persist {
		store, err := app.OpenParamStore("meadow", logger)
		if err != nil {
			logger.Warn("parameter persistence disabled", "err", err)
		} else {
			deps.Store = store
			if holder, ok := sim.(paramsHolder); ok {
				params, err := app.StartupParams(holder.Params(), store, cfg.Set.Map())
				if err != nil {
					logger.Warn("saved parameters unreadable, keeping configured values", "err", err)
				}
				holder.SetParams(params)
			}
		}
	}
	if cfg.ConfigPath != "" {
		watcher, err := app.WatchConfig(cfg.ConfigPath, logger)
		if err != nil {
			logger.Warn("config hot reload disabled", "err", err)
		} else {
			defer watcher.Close()
			deps.Updates = watcher.Updates()
		}
	}

	sim.Reset(cfg.Seed)
	game := app.New(sim, cfg, deps)
	size := sim.Size()

	ebiten.SetWindowTitle("meadow - " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale+max(cfg.HUDWidth, 0), size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func buildSim(cfg *app.Config, logger *slog.Logger) (core.Sim, error) {
	if cfg.ConfigPath != "" && cfg.Sim == "meadow" {
		mc, err := meadow.LoadConfig(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		return meadow.NewWithLogger(mc.Apply(cfg.Set.Map()), logger), nil
	}
	factory, ok := core.Lookup(cfg.Sim)
	if !ok {
		return nil, fmt.Errorf("unknown sim %q", cfg.Sim)
	}
	return factory(cfg.Set.Map()), nil
}
