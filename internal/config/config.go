// Package config loads and validates simulation settings.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"secretary-simulation/internal/sweep"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all simulation settings.
type Config struct {
	// Number of candidates per trial.
	Population int `yaml:"population" validate:"gt=0"`

	// Threshold range, used when Strategies is empty.
	Sweep SweepConfig `yaml:"sweep"`

	// Explicit thresholds; override Sweep.
	Strategies []int `yaml:"strategies" validate:"omitempty,dive,gte=0"`

	// Trials per threshold.
	Trials int `yaml:"trials" validate:"gt=0"`

	// Base seed; 0 picks one from the clock.
	Seed int64 `yaml:"seed"`

	// Thresholds simulated concurrently; 0 means one per CPU.
	Workers int `yaml:"workers" validate:"gte=0"`

	EarlyStop EarlyStopConfig `yaml:"early_stop"`
	Output    OutputConfig    `yaml:"output"`
	Log       LogConfig       `yaml:"log"`
}

// SweepConfig is the half-open range [Start, Stop) walked in Step increments.
type SweepConfig struct {
	Start int `yaml:"start" validate:"gte=0"`
	Stop  int `yaml:"stop" validate:"gtfield=Start"`
	Step  int `yaml:"step" validate:"gt=0"`
}

// EarlyStopConfig stops a threshold once its estimates are tight enough.
type EarlyStopConfig struct {
	TargetRelStdErr float64 `yaml:"target_rel_stderr" validate:"gte=0,lt=1"`
	MinTrials       int     `yaml:"min_trials" validate:"gte=0"`
}

// OutputConfig selects the report view and its label language.
type OutputConfig struct {
	Format string `yaml:"format" validate:"oneof=chart table json"`
	Lang   string `yaml:"lang" validate:"oneof=en zh"`
}

// LogConfig sets the minimum log level.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// Default returns the settings of the reference estimate: 100 candidates,
// thresholds 2..58 in steps of 2, 1000 trials each.
func Default() *Config {
	return &Config{
		Population: 100,
		Sweep: SweepConfig{
			Start: 2,
			Stop:  60,
			Step:  2,
		},
		Trials:  1000,
		Workers: 1,
		EarlyStop: EarlyStopConfig{
			MinTrials: 1000,
		},
		Output: OutputConfig{
			Format: "chart",
			Lang:   "en",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s fails %q (value %v)", ErrInvalidConfig, fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Thresholds returns the thresholds to simulate.
func (c *Config) Thresholds() ([]int, error) {
	if len(c.Strategies) > 0 {
		return append([]int(nil), c.Strategies...), nil
	}
	return sweep.Strategies(c.Sweep.Start, c.Sweep.Stop, c.Sweep.Step)
}

// Params converts the config into sweep parameters.
func (c *Config) Params() (sweep.Params, error) {
	strategies, err := c.Thresholds()
	if err != nil {
		return sweep.Params{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return sweep.Params{
		Population:      c.Population,
		Strategies:      strategies,
		Trials:          c.Trials,
		Seed:            c.Seed,
		Workers:         c.Workers,
		TargetRelStdErr: c.EarlyStop.TargetRelStdErr,
		MinTrials:       c.EarlyStop.MinTrials,
	}, nil
}
