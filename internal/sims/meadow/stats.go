package meadow

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarises the population and the density field.
type Stats struct {
	Population int
	Births     int
	Deaths     int
	Attempts   int
	Rejected   int

	DensityMin    float64
	DensityMax    float64
	DensityMean   float64
	DensityStdDev float64
	// DensityMass is the density integrated over the world area.
	DensityMass float64
}

// String renders a one-line summary for logs and the HUD.
func (s Stats) String() string {
	return fmt.Sprintf("pop %d  +%d -%d  density %.2f..%.2f mean %.3f",
		s.Population, s.Births, s.Deaths, s.DensityMin, s.DensityMax, s.DensityMean)
}

// Stats computes a summary of the current world.
func (w *World) Stats() Stats {
	c := w.proc.Counters()
	s := Stats{
		Population: w.store.Len(),
		Births:     c.Births,
		Deaths:     c.Deaths,
		Attempts:   c.Attempts,
		Rejected:   c.Rejected,
	}

	values := w.surface.Density.Values()
	if len(values) == 0 {
		return s
	}
	data := make([]float64, 0, len(values))
	for _, v := range values {
		if v != v {
			continue
		}
		data = append(data, float64(v))
	}
	if len(data) == 0 {
		return s
	}
	s.DensityMin = floats.Min(data)
	s.DensityMax = floats.Max(data)
	s.DensityMean, s.DensityStdDev = stat.MeanStdDev(data, nil)
	if len(data) < 2 {
		s.DensityStdDev = 0
	}
	scale := float64(w.surface.Density.Scale())
	s.DensityMass = floats.Sum(data) / (scale * scale)
	return s
}
