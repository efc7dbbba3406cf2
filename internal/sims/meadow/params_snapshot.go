package meadow

import "meadow/internal/core"

func (w *World) Parameters() core.ParameterSnapshot {
	p := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", int64(w.cfg.Width)),
				core.IntParam("h", "Height", int64(w.cfg.Height)),
				core.IntParam("seed", "Seed", w.cfg.Seed),
				core.IntParam("initial_seeds", "Initial seeds", int64(w.cfg.InitialSeeds)),
			},
		},
		{
			Name: "Lifecycle",
			Params: []core.Parameter{
				floatParam("max_age", "Max age", p.MaxAge),
				floatParam("min_propagation_age", "Min propagation age", p.MinPropagationAge),
				floatParam("max_visual_size", "Max visual size", p.MaxVisualSize),
			},
		},
		{
			Name: "Propagation",
			Params: []core.Parameter{
				floatParam("spawn_chance", "Spawn chance", p.SpawnChance),
				floatParam("spawn_radius", "Spawn radius", p.SpawnRadius),
				floatParam("occupancy_threshold", "Occupancy threshold", p.OccupancyThreshold),
				floatParam("surface_area", "Surface area", p.SurfaceArea),
			},
		},
		{
			Name: "Placement",
			Params: []core.Parameter{
				floatParam("orientation_max_angle", "Orientation max angle", p.OrientationMaxAngle),
				floatParam("below_surface_depth", "Below surface depth", p.BelowSurfaceDepth),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the tunables adjustable from the HUD.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "spawn_chance", Label: "Spawn chance", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "spawn_radius", Label: "Spawn radius", Type: core.ParamTypeFloat, Step: 0.25, Min: 0, HasMin: true},
		{Key: "occupancy_threshold", Label: "Occupancy", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, HasMin: true},
		{Key: "surface_area", Label: "Surface area", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, HasMin: true},
		{Key: "max_age", Label: "Max age", Type: core.ParamTypeFloat, Step: 5, Min: 0, HasMin: true},
		{Key: "min_propagation_age", Label: "Min prop. age", Type: core.ParamTypeFloat, Step: 0.5, Min: 0, HasMin: true},
		{Key: "initial_seeds", Label: "Initial seeds", Type: core.ParamTypeInt, Step: 8, Min: 0, HasMin: true},
	}
}

// SetFloatParameter updates a growth tunable. Changes apply from the next
// step, except surface_area which waits for the next reset.
func (w *World) SetFloatParameter(key string, value float64) bool {
	p := w.pending
	dst, ok := floatParamFields(&p)[key]
	if !ok || value != value {
		return false
	}
	*dst = float32(value)
	w.SetParams(p)
	return true
}

// SetIntParameter updates integer settings that apply on the next reset.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "initial_seeds":
		if value < 0 {
			return false
		}
		w.cfg.InitialSeeds = value
		return true
	case "seed":
		w.cfg.Seed = int64(value)
		return true
	}
	return false
}

func floatParam(key, label string, value float32) core.Parameter {
	return core.FloatParam(key, label, float64(value))
}
