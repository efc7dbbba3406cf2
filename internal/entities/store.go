// Package entities keeps the spawned organisms in an ark ECS world.
package entities

import (
	"meadow/pkg/field"

	"github.com/mlange-42/ark/ecs"
)

// Handle identifies a live organism. Handles of removed organisms are never
// reported as alive again.
type Handle = ecs.Entity

// Position is the organism's anchor in world space; Y is up.
type Position struct {
	X, Y, Z float32
}

// Ground projects the position onto the horizontal plane used by fields.
func (p Position) Ground() field.Vec2 { return field.V2(p.X, p.Z) }

// Orientation holds the rotation applied at spawn.
type Orientation struct {
	Yaw  float32
	Tilt float32
}

// Organism carries the per-entity growth state.
type Organism struct {
	Age   float32
	Scale float32
}

// Store owns the ECS world holding every organism.
type Store struct {
	world  ecs.World
	mapper *ecs.Map3[Position, Orientation, Organism]
	filter *ecs.Filter3[Position, Orientation, Organism]
	count  int
}

// NewStore returns an empty store.
func NewStore() *Store {
	s := &Store{}
	s.Clear()
	return s
}

// Clear drops every organism by starting over with a fresh world.
func (s *Store) Clear() {
	s.world = ecs.NewWorld()
	s.mapper = ecs.NewMap3[Position, Orientation, Organism](&s.world)
	s.filter = ecs.NewFilter3[Position, Orientation, Organism](&s.world)
	s.count = 0
}

// Len reports the number of live organisms.
func (s *Store) Len() int { return s.count }

// Spawn creates an organism and returns its handle.
func (s *Store) Spawn(pos Position, orient Orientation, org Organism) Handle {
	s.count++
	return s.mapper.NewEntity(&pos, &orient, &org)
}

// Remove deletes the organism behind h. Stale handles are ignored. Remove must
// not be called from inside Each.
func (s *Store) Remove(h Handle) {
	if !s.world.Alive(h) {
		return
	}
	s.world.RemoveEntity(h)
	s.count--
}

// Alive reports whether h refers to a live organism.
func (s *Store) Alive(h Handle) bool { return s.world.Alive(h) }

// Get returns a copy of the organism's components.
func (s *Store) Get(h Handle) (Position, Orientation, Organism, bool) {
	if !s.world.Alive(h) {
		return Position{}, Orientation{}, Organism{}, false
	}
	pos, orient, org := s.mapper.Get(h)
	return *pos, *orient, *org, true
}

// Each calls fn for every live organism. fn may modify the organism through
// the pointer but must not spawn or remove entities.
func (s *Store) Each(fn func(h Handle, pos Position, org *Organism)) {
	query := s.filter.Query()
	for query.Next() {
		pos, _, org := query.Get()
		fn(query.Entity(), *pos, org)
	}
}

// EachFull is like Each but also exposes the orientation, for renderers.
func (s *Store) EachFull(fn func(pos Position, orient Orientation, org Organism)) {
	query := s.filter.Query()
	for query.Next() {
		pos, orient, org := query.Get()
		fn(*pos, *orient, *org)
	}
}
