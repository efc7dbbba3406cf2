package core

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Seed restarts the sequence as if the RNG had been created with seed.
func (r *RNG) Seed(seed int64) {
	r.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Float32 returns a uniform value in [0, 1).
func (r *RNG) Float32() float32 {
	return r.r.Float32()
}

// Range returns a uniform value in [lo, hi). It returns lo when hi <= lo.
func (r *RNG) Range(lo, hi float32) float32 {
	if hi <= lo {
		return lo
	}
	return lo + r.r.Float32()*(hi-lo)
}

// Angle returns a uniform angle in [0, 2π).
func (r *RNG) Angle() float32 {
	return r.r.Float32() * 2 * math32.Pi
}

// InDisk returns a point drawn uniformly from the disk of the given radius
// centred on the origin.
func (r *RNG) InDisk(radius float32) (float32, float32) {
	if radius <= 0 {
		return 0, 0
	}
	d := radius * math32.Sqrt(r.r.Float32())
	s, c := math32.Sincos(r.Angle())
	return d * c, d * s
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
