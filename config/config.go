// Package config provides configuration loading and access for the
// simulation and visualizer.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all tunable parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Sim       SimConfig       `yaml:"sim"`
	Rule      RuleConfig      `yaml:"rule"`
	Camera    CameraConfig    `yaml:"camera"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// SimConfig holds the engine parameters.
type SimConfig struct {
	// Bound is the requested cube side length; the chunked strategies
	// round it up to a chunk multiple.
	Bound int `yaml:"bound"`
	// Strategy is one of sequential, chunked-serial, chunked-atomic.
	Strategy string `yaml:"strategy"`
	// Workers for the task pool; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
	// StepsPerUpdate runs multiple ticks per frame.
	StepsPerUpdate int `yaml:"steps_per_update"`
	// Seeder is "uniform" or "simplex".
	Seeder string `yaml:"seeder"`
	// SimplexScale and SimplexThreshold shape the simplex seeder.
	SimplexRadius    int     `yaml:"simplex_radius"`
	SimplexScale     float64 `yaml:"simplex_scale"`
	SimplexThreshold float64 `yaml:"simplex_threshold"`
}

// RuleConfig selects the automaton rule.
type RuleConfig struct {
	// Preset names a built-in rule, or one defined in PresetsFile.
	Preset string `yaml:"preset"`
	// PresetsFile optionally adds presets from a YAML file.
	PresetsFile string `yaml:"presets_file"`
}

// CameraConfig holds orbit camera settings.
type CameraConfig struct {
	Distance   float64 `yaml:"distance"` // multiples of the bound; 0 = auto
	AutoRotate float64 `yaml:"auto_rotate"`
}

// TelemetryConfig holds stats collection settings.
type TelemetryConfig struct {
	// WindowTicks is how many ticks each stats window aggregates.
	WindowTicks int `yaml:"window_ticks"`
}

var global *Config

// Init loads the configuration and stores it globally. Pass an empty
// path to use embedded defaults only.
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Init must have been called.
func Cfg() *Config {
	if global == nil {
		panic("config.Cfg called before config.Init")
	}
	return global
}

// Load reads the embedded defaults, then overlays the file at path if
// one is given; only fields present in the file are overwritten.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Sim.Bound < 1 {
		return fmt.Errorf("sim.bound must be >= 1, got %d", c.Sim.Bound)
	}
	if c.Sim.StepsPerUpdate < 1 {
		c.Sim.StepsPerUpdate = 1
	}
	switch c.Sim.Seeder {
	case "", "uniform", "simplex":
	default:
		return fmt.Errorf("sim.seeder must be uniform or simplex, got %q", c.Sim.Seeder)
	}
	if c.Telemetry.WindowTicks < 1 {
		c.Telemetry.WindowTicks = 60
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file, for run
// reproduction alongside telemetry output.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
