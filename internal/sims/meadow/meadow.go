// Package meadow ties terrain, the vegetation density field and the growth
// process into a simulation the viewer and the sweep tool can drive.
package meadow

import (
	"log/slog"

	"meadow/internal/core"
	"meadow/internal/entities"
	"meadow/internal/growth"
	"meadow/internal/render"
	"meadow/internal/terrain"
	pcore "meadow/pkg/core"
	"meadow/pkg/field"
	"meadow/pkg/palette"
)

// World stores the full state of a meadow simulation.
type World struct {
	cfg Config
	log *slog.Logger

	rng     *pcore.RNG
	terrain *terrain.Terrain
	surface *terrain.Surface
	store   *entities.Store
	proc    *growth.Process

	// pending is the requested tuning; it differs from cfg.Params only while
	// a surface area change waits for the next reset.
	pending growth.Params

	layer  Layer
	filter render.Filter

	heightLo, heightHi float32
	densityLegend      *palette.Map
	heightLegend       *palette.Map

	ticks   int
	elapsed float64
}

// New returns a meadow world with the provided view dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world configured from the provided options. The
// world is empty until Reset is called.
func NewWithConfig(cfg Config) *World {
	return NewWithLogger(cfg, slog.Default())
}

// NewWithLogger is NewWithConfig with an explicit logger.
func NewWithLogger(cfg Config, logger *slog.Logger) *World {
	if logger == nil {
		logger = slog.Default()
	}
	cfg.Params = cfg.Params.Validate()
	w := &World{
		cfg:     cfg,
		log:     logger.With("sim", "meadow"),
		rng:     pcore.NewRNG(cfg.Seed),
		terrain: terrain.New(terrain.Subdivisions, cfg.Seed),
		surface: terrain.NewSurface(terrain.Subdivisions),
		store:   entities.NewStore(),
		pending: cfg.Params,
	}
	w.densityLegend = palette.New(0, 1, palette.Incandescent)
	w.refreshHeightRange()
	w.proc = growth.New(cfg.Params, w.surface.Density, w.terrain.Height, w.store, w.rng, w.log)
	return w
}

func (w *World) refreshHeightRange() {
	w.heightLo, w.heightHi = w.terrain.Height.MinMax()
	w.heightLegend = palette.New(w.heightLo, w.heightHi, palette.Rainbow)
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "meadow" }

// Size reports the view dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Width, H: w.cfg.Height} }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Terrain exposes the static height field.
func (w *World) Terrain() *terrain.Terrain { return w.terrain }

// Density exposes the vegetation density field.
func (w *World) Density() *field.Field[float32] { return w.surface.Density }

// Store exposes the organism store.
func (w *World) Store() *entities.Store { return w.store }

// Population returns the number of live organisms.
func (w *World) Population() int { return w.store.Len() }

// Ticks returns the number of steps since the last reset.
func (w *World) Ticks() int { return w.ticks }

// Elapsed returns the simulated seconds since the last reset.
func (w *World) Elapsed() float64 { return w.elapsed }

// Reset regenerates terrain, clears every organism and plants the initial
// seeds. A zero seed reuses the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng.Seed(effective)
	nx, ny := w.terrain.Height.Size()
	w.terrain.Height.Populate(terrain.NoiseSource(nx, ny, effective))
	w.refreshHeightRange()
	w.surface.Density.Clear()
	w.store.Clear()
	w.proc.SetParams(w.pending)
	w.cfg.Params = w.proc.Params()
	w.proc.ResetCounters()
	w.ticks = 0
	w.elapsed = 0

	planted := 0
	for i := 0; i < w.cfg.InitialSeeds; i++ {
		pos := field.V2(w.rng.Range(0, field.BaseSize), w.rng.Range(0, field.BaseSize))
		if _, ok := w.proc.Plant(pos); ok {
			planted++
		}
	}
	w.log.Info("world reset", "seed", effective, "planted", planted)
}

// Step advances the growth process by elapsed seconds.
func (w *World) Step(elapsed float32) {
	w.proc.Step(elapsed)
	w.ticks++
	w.elapsed += float64(elapsed)
}

// Plant places an organism at a world position. It reports false when pos is
// outside the world.
func (w *World) Plant(pos field.Vec2) bool {
	_, ok := w.proc.Plant(pos)
	return ok
}

// Params returns the growth tuning the process is running with.
func (w *World) Params() growth.Params { return w.cfg.Params }

// PendingParams returns the requested tuning, which becomes active in full on
// the next Reset.
func (w *World) PendingParams() growth.Params { return w.pending }

// SetParams replaces the growth tuning without resetting the world. A
// SurfaceArea change is held back until Reset while organisms are alive.
func (w *World) SetParams(p growth.Params) {
	w.pending = p.Validate()
	w.proc.SetParams(w.pending)
	w.cfg.Params = w.proc.Params()
}

func init() {
	core.Register("meadow", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return NewWithConfig(c)
	})
}
