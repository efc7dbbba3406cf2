package terrain

import (
	"math"

	"github.com/ojrac/opensimplex-go"
)

// HybridMulti is a hybrid multifractal built from OpenSimplex octaves. Each
// octave is weighted by the accumulated signal of the octaves below it, so
// valleys stay smooth while peaks pick up detail.
type HybridMulti struct {
	Octaves     int
	Frequency   float64
	Lacunarity  float64
	Persistence float64

	sources []opensimplex.Noise
}

// NewHybridMulti returns the stock configuration with one noise source per
// octave derived from seed.
func NewHybridMulti(seed int64) *HybridMulti {
	h := &HybridMulti{
		Octaves:     6,
		Frequency:   2,
		Lacunarity:  math.Pi * 2 / 3,
		Persistence: 0.25,
	}
	h.sources = make([]opensimplex.Noise, h.Octaves)
	for i := range h.sources {
		h.sources[i] = opensimplex.New(seed + int64(i))
	}
	return h
}

// Eval2 returns the fractal value at (x, y), roughly within [-1, 1].
func (h *HybridMulti) Eval2(x, y float64) float64 {
	if len(h.sources) == 0 {
		return 0
	}
	x *= h.Frequency
	y *= h.Frequency

	amplitude := h.Persistence
	result := h.sources[0].Eval2(x, y) * amplitude
	weight := result
	norm := amplitude

	for i := 1; i < h.Octaves && i < len(h.sources); i++ {
		x *= h.Lacunarity
		y *= h.Lacunarity
		if weight > 1 {
			weight = 1
		}
		amplitude *= h.Persistence
		signal := h.sources[i].Eval2(x, y) * amplitude
		result += weight * signal
		weight *= signal
		norm += amplitude
	}
	return result / norm
}
