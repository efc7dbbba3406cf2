// Package growth ages, kills and propagates organisms on top of a shared
// density field. Every live organism contributes exactly one kernel to the
// field: it is added at birth and subtracted at death, so the field always
// reflects the current population and doubles as the carrying capacity gate
// for new spawns.
package growth

import (
	"log/slog"

	"meadow/internal/entities"
	"meadow/pkg/field"

	"github.com/chewxy/math32"
)

// Random supplies the draws the process consumes.
type Random interface {
	// Float32 returns a uniform value in [0, 1).
	Float32() float32
	// InDisk returns a point drawn uniformly from the disk of the given radius.
	InDisk(radius float32) (float32, float32)
}

// Population is the entity store the process drives.
type Population interface {
	Each(fn func(h entities.Handle, pos entities.Position, org *entities.Organism))
	Spawn(pos entities.Position, orient entities.Orientation, org entities.Organism) entities.Handle
	Remove(h entities.Handle)
	Len() int
}

// Counters accumulate lifetime totals of a process.
type Counters struct {
	Births   int
	Deaths   int
	Attempts int
	Rejected int
}

type candidate struct {
	pos entities.Position
}

type corpse struct {
	h   entities.Handle
	pos entities.Position
}

// Process runs the per-tick growth rules. It is not safe for concurrent use.
type Process struct {
	params  Params
	density *field.Field[float32]
	height  *field.Field[float32]
	pop     Population
	rng     Random
	log     *slog.Logger

	counters Counters

	dead    []corpse
	parents []candidate
}

// New wires a process to its fields, store and random source. height may be
// nil, in which case organisms are placed relative to height zero. A nil
// logger falls back to slog.Default.
func New(params Params, density, height *field.Field[float32], pop Population, rng Random, logger *slog.Logger) *Process {
	if logger == nil {
		logger = slog.Default()
	}
	return &Process{
		params:  params.Validate(),
		density: density,
		height:  height,
		pop:     pop,
		rng:     rng,
		log:     logger,
	}
}

// Params returns the active tuning.
func (p *Process) Params() Params { return p.params }

// SetParams replaces the tuning. It takes effect on the next Step. While
// organisms are alive SurfaceArea is kept, since every death must subtract
// the same kernel its birth added.
func (p *Process) SetParams(params Params) {
	params = params.Validate()
	if params.SurfaceArea != p.params.SurfaceArea && p.pop.Len() > 0 {
		p.log.Warn("surface area change ignored while organisms are alive",
			"current", p.params.SurfaceArea, "requested", params.SurfaceArea)
		params.SurfaceArea = p.params.SurfaceArea
	}
	p.params = params
}

// Counters returns the lifetime totals.
func (p *Process) Counters() Counters { return p.counters }

// ResetCounters zeroes the lifetime totals.
func (p *Process) ResetCounters() { p.counters = Counters{} }

// Density exposes the shared density field.
func (p *Process) Density() *field.Field[float32] { return p.density }

// Step advances every organism by elapsed seconds, removes the ones past
// MaxAge and resolves the propagation trials. Trials are drawn for every
// organism alive at the start of the tick, including the ones dying in it;
// offspring are placed after the dead have left the density field.
func (p *Process) Step(elapsed float32) {
	if elapsed < 0 || elapsed != elapsed {
		elapsed = 0
	}
	births, deaths := p.counters.Births, p.counters.Deaths

	p.age(elapsed)
	p.bury()
	p.propagate()

	births = p.counters.Births - births
	deaths = p.counters.Deaths - deaths
	if births > 0 || deaths > 0 {
		p.log.Debug("growth tick", "births", births, "deaths", deaths, "population", p.pop.Len())
	}
}

// age advances every organism, marks the ones past MaxAge and draws one
// propagation trial per eligible organism.
func (p *Process) age(elapsed float32) {
	p.dead = p.dead[:0]
	p.parents = p.parents[:0]
	maxAge := p.params.MaxAge
	maxSize := p.params.MaxVisualSize
	minAge := p.params.MinPropagationAge
	chance := p.params.SpawnChance
	p.pop.Each(func(h entities.Handle, pos entities.Position, org *entities.Organism) {
		org.Age += elapsed
		org.Scale = math32.Min(org.Age, maxSize)
		if org.Age > maxAge {
			p.dead = append(p.dead, corpse{h: h, pos: pos})
		}
		if org.Age >= minAge && p.rng.Float32() < chance {
			p.parents = append(p.parents, candidate{pos: pos})
		}
	})
}

func (p *Process) bury() {
	for _, c := range p.dead {
		p.density.AddKernel(c.pos.Ground(), p.params.SurfaceArea, -1)
		p.pop.Remove(c.h)
		p.counters.Deaths++
	}
}

func (p *Process) propagate() {
	for _, parent := range p.parents {
		p.counters.Attempts++
		dx, dz := p.rng.InDisk(p.params.SpawnRadius)
		child := field.V2(parent.pos.X+dx, parent.pos.Z+dz)
		if !p.spawn(child) {
			p.counters.Rejected++
		}
	}
}

// Plant places a new organism at pos with the same bookkeeping as a natural
// birth. Positions outside the world are rejected; the density gate is not
// applied.
func (p *Process) Plant(pos field.Vec2) (entities.Handle, bool) {
	if !field.Bounds.Contains(pos) {
		return entities.Handle{}, false
	}
	return p.birth(pos), true
}

func (p *Process) spawn(pos field.Vec2) bool {
	if !field.Bounds.Contains(pos) {
		return false
	}
	if p.density.Bilinear(pos) > p.params.OccupancyThreshold {
		return false
	}
	p.birth(pos)
	return true
}

func (p *Process) birth(pos field.Vec2) entities.Handle {
	var ground float32
	if p.height != nil {
		ground = p.height.Bilinear(pos)
	}
	yaw := p.rng.Float32() * 2 * math32.Pi
	tilt := (p.rng.Float32()*2 - 1) * p.params.OrientationMaxAngle

	h := p.pop.Spawn(
		entities.Position{X: pos.X, Y: ground - p.params.BelowSurfaceDepth, Z: pos.Y},
		entities.Orientation{Yaw: yaw, Tilt: tilt},
		entities.Organism{},
	)
	p.density.AddKernel(pos, p.params.SurfaceArea, 1)
	p.counters.Births++
	return h
}
