package meadow

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"meadow/internal/growth"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by LoadConfig for files that are neither YAML
// nor TOML.
var ErrUnknownFormat = errors.New("meadow: unknown config format")

// Config controls the meadow world and its growth process.
type Config struct {
	// Width and Height set the view resolution in pixels. The world domain
	// is fixed; these only change how finely it is sampled for display.
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`

	Seed         int64 `yaml:"seed" toml:"seed"`
	InitialSeeds int   `yaml:"initial_seeds" toml:"initial_seeds"`

	Params growth.Params `yaml:"growth" toml:"growth"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:        256,
		Height:       256,
		Seed:         1337,
		InitialSeeds: 48,
		Params:       growth.DefaultParams(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Keys that fail to parse keep their defaults.
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Apply(cfg)
}

// Apply returns a copy of c with the recognised keys of cfg overriding its
// values. Keys that fail to parse are ignored.
func (c Config) Apply(cfg map[string]string) Config {
	if len(cfg) == 0 {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["initial_seeds"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.InitialSeeds = parsed
		}
	}
	for key, dst := range floatParamFields(&c.Params) {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			*dst = float32(parsed)
		}
	}
	c.Params = c.Params.Validate()
	return c
}

// floatParamFields maps parameter keys to the growth tunables they control.
func floatParamFields(p *growth.Params) map[string]*float32 {
	return map[string]*float32{
		"max_age":               &p.MaxAge,
		"spawn_radius":          &p.SpawnRadius,
		"orientation_max_angle": &p.OrientationMaxAngle,
		"below_surface_depth":   &p.BelowSurfaceDepth,
		"surface_area":          &p.SurfaceArea,
		"min_propagation_age":   &p.MinPropagationAge,
		"spawn_chance":          &p.SpawnChance,
		"occupancy_threshold":   &p.OccupancyThreshold,
		"max_visual_size":       &p.MaxVisualSize,
	}
}

// LoadConfig reads a YAML (.yaml, .yml) or TOML (.toml) file on top of the
// defaults. Keys missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := DecodeConfig(data, filepath.Ext(path))
	if err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig parses data in the format named by ext (with or without the
// leading dot).
func DecodeConfig(data []byte, ext string) (Config, error) {
	cfg := DefaultConfig()
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("decode yaml: %w", err)
		}
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("%w %q", ErrUnknownFormat, ext)
	}
	if cfg.Width <= 0 {
		cfg.Width = DefaultConfig().Width
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultConfig().Height
	}
	if cfg.InitialSeeds < 0 {
		cfg.InitialSeeds = 0
	}
	cfg.Params = cfg.Params.Validate()
	return cfg, nil
}
