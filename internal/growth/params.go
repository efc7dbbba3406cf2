package growth

import "github.com/chewxy/math32"

// Params holds the tunables of the growth process. Distances are world units,
// times are seconds.
type Params struct {
	MaxAge              float32 `yaml:"max_age" toml:"max_age"`
	SpawnRadius         float32 `yaml:"spawn_radius" toml:"spawn_radius"`
	OrientationMaxAngle float32 `yaml:"orientation_max_angle" toml:"orientation_max_angle"`
	BelowSurfaceDepth   float32 `yaml:"below_surface_depth" toml:"below_surface_depth"`
	SurfaceArea         float32 `yaml:"surface_area" toml:"surface_area"`
	MinPropagationAge   float32 `yaml:"min_propagation_age" toml:"min_propagation_age"`
	SpawnChance         float32 `yaml:"spawn_chance" toml:"spawn_chance"`
	OccupancyThreshold  float32 `yaml:"occupancy_threshold" toml:"occupancy_threshold"`
	MaxVisualSize       float32 `yaml:"max_visual_size" toml:"max_visual_size"`
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		MaxAge:              60,
		SpawnRadius:         1,
		OrientationMaxAngle: 0.25,
		BelowSurfaceDepth:   0.08,
		SurfaceArea:         0.25,
		MinPropagationAge:   2,
		SpawnChance:         0.01,
		OccupancyThreshold:  0.5,
		MaxVisualSize:       1,
	}
}

// Validate returns a copy with non-finite values replaced by the defaults,
// negative lengths and times raised to zero and SpawnChance clamped to [0, 1].
func (p Params) Validate() Params {
	def := DefaultParams()
	finite := func(v, fallback float32) float32 {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return fallback
		}
		return v
	}
	nonNegative := func(v float32) float32 {
		if v < 0 {
			return 0
		}
		return v
	}

	p.MaxAge = nonNegative(finite(p.MaxAge, def.MaxAge))
	p.SpawnRadius = nonNegative(finite(p.SpawnRadius, def.SpawnRadius))
	p.OrientationMaxAngle = nonNegative(finite(p.OrientationMaxAngle, def.OrientationMaxAngle))
	p.BelowSurfaceDepth = finite(p.BelowSurfaceDepth, def.BelowSurfaceDepth)
	p.SurfaceArea = nonNegative(finite(p.SurfaceArea, def.SurfaceArea))
	p.MinPropagationAge = nonNegative(finite(p.MinPropagationAge, def.MinPropagationAge))
	p.SpawnChance = finite(p.SpawnChance, def.SpawnChance)
	if p.SpawnChance < 0 {
		p.SpawnChance = 0
	}
	if p.SpawnChance > 1 {
		p.SpawnChance = 1
	}
	p.OccupancyThreshold = finite(p.OccupancyThreshold, def.OccupancyThreshold)
	p.MaxVisualSize = nonNegative(finite(p.MaxVisualSize, def.MaxVisualSize))
	return p
}
