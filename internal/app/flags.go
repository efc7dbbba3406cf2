package app

import (
	"flag"
	"strings"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64

	ConfigPath string
	Sampler    string
	LogLevel   string
	Persist    bool
	HUDWidth   int

	Set KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "meadow",
		Scale:    3,
		TPS:      60,
		Sampler:  "bilinear",
		LogLevel: "info",
		HUDWidth: 260,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset (0 uses the configured seed)")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML or TOML config file, watched for changes")
	fs.StringVar(&c.Sampler, "sampler", c.Sampler, "field sampler for display: nearest or bilinear")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
	fs.BoolVar(&c.Persist, "persist", c.Persist, "load and save HUD-tuned parameters between runs")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel in pixels (0 hides it)")
	fs.Var(&c.Set, "set", "parameter override in key=value form (repeatable)")
}

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map. Entries without '=' are skipped and later
// keys win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out
}
