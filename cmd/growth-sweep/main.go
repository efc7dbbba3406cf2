package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"meadow/internal/app"
	"meadow/internal/sims/meadow"
)

func main() {
	steps := flag.Int("steps", 2400, "ticks to simulate per scenario")
	dt := flag.Float64("dt", 1.0/30, "seconds per tick")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 0, "world seed (0 uses the configured seed)")
	radii := flag.String("radii", "0.5,1,2,4", "comma separated spawn radii")
	thresholds := flag.String("thresholds", "0.25,0.5,1", "comma separated occupancy thresholds")
	configPath := flag.String("config", "", "YAML or TOML base config")
	var overrides app.KVList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	base := meadow.DefaultConfig()
	if *configPath != "" {
		loaded, err := meadow.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		base = loaded
	}
	base = base.Apply(overrides.Map())
	if *seed != 0 {
		base.Seed = *seed
	}

	radiusOptions, err := parseFloats(*radii)
	if err != nil {
		fmt.Fprintf(os.Stderr, "radii: %v\n", err)
		os.Exit(2)
	}
	thresholdOptions, err := parseFloats(*thresholds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "thresholds: %v\n", err)
		os.Exit(2)
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d steps of %.4fs, seed %d)\n",
		len(radiusOptions)*len(thresholdOptions), *workers, *steps, *dt, base.Seed)

	start := time.Now()
	records := meadow.GrowthSweep(base, radiusOptions, thresholdOptions, *steps, float32(*dt), *workers)
	elapsed := time.Since(start)

	for _, rec := range records {
		res := rec.Result
		fate := "survived"
		if res.ExtinctStep > 0 {
			fate = fmt.Sprintf("extinct@%d", res.ExtinctStep)
		}
		fmt.Printf("radius=%.2f threshold=%.2f peak=%d@%d final=%d %s | %s\n",
			rec.SpawnRadius, rec.OccupancyThreshold, res.PeakPopulation, res.PeakStep,
			res.FinalPopulation, fate, res.Final)
	}

	ranked := append([]meadow.SweepRecord(nil), records...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Result.FinalPopulation > ranked[j].Result.FinalPopulation
	})
	if len(ranked) > 0 {
		best := ranked[0]
		fmt.Printf("Best final population %d with radius=%.2f threshold=%.2f\n",
			best.Result.FinalPopulation, best.SpawnRadius, best.OccupancyThreshold)
	}
	fmt.Printf("Completed in %s\n", elapsed.Round(time.Millisecond))
}

func parseFloats(list string) ([]float32, error) {
	var out []float32
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 32)
		if err != nil {
			return nil, err
		}
		out = append(out, float32(v))
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no values in %q", list)
	}
	return out, nil
}
