package meadow

import (
	"log/slog"
	"sync"
)

// GrowthResult captures telemetry from a deterministic headless run.
type GrowthResult struct {
	// PeakPopulation is the largest population seen at the end of any step.
	PeakPopulation int
	// PeakStep is the first step at which PeakPopulation was reached.
	PeakStep int
	// FinalPopulation is the population after the last simulated step.
	FinalPopulation int
	// ExtinctStep is the step at which the population reached zero, or 0 when
	// it never did.
	ExtinctStep int
	// StepsSimulated reports how many steps actually ran.
	StepsSimulated int
	// Final holds the world statistics after the last step.
	Final Stats
}

// SweepRecord pairs one point of the parameter grid with its result.
type SweepRecord struct {
	SpawnRadius        float32
	OccupancyThreshold float32
	Result             GrowthResult
}

// GrowthScenario resets a world built from cfg and advances it steps times by
// dt seconds. The run stops early once the population dies out.
func GrowthScenario(cfg Config, steps int, dt float32) GrowthResult {
	if steps <= 0 {
		return GrowthResult{}
	}
	world := NewWithLogger(cfg, slog.New(slog.DiscardHandler))
	world.Reset(0)

	result := GrowthResult{PeakPopulation: world.Population()}
	for step := 1; step <= steps; step++ {
		world.Step(dt)
		result.StepsSimulated = step
		pop := world.Population()
		if pop > result.PeakPopulation {
			result.PeakPopulation = pop
			result.PeakStep = step
		}
		if pop == 0 {
			result.ExtinctStep = step
			break
		}
	}
	result.FinalPopulation = world.Population()
	result.Final = world.Stats()
	return result
}

// GrowthSweep evaluates every combination of spawn radius and occupancy
// threshold on top of base, running up to workers scenarios in parallel.
// Records are ordered radius-major in the order the values were given.
func GrowthSweep(base Config, radii, thresholds []float32, steps int, dt float32, workers int) []SweepRecord {
	if workers <= 0 {
		workers = 1
	}
	records := make([]SweepRecord, len(radii)*len(thresholds))

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for i, radius := range radii {
		for j, threshold := range thresholds {
			wg.Add(1)
			sem <- struct{}{}
			go func(idx int, r, th float32) {
				defer wg.Done()
				cfg := base
				cfg.Params.SpawnRadius = r
				cfg.Params.OccupancyThreshold = th
				records[idx] = SweepRecord{
					SpawnRadius:        r,
					OccupancyThreshold: th,
					Result:             GrowthScenario(cfg, steps, dt),
				}
				<-sem
			}(i*len(thresholds)+j, radius, threshold)
		}
	}
	wg.Wait()
	return records
}
