// Package config provides configuration loading for lvcausal.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvcausal/estimator"
	"github.com/katalvlaran/lvcausal/refute"
	"github.com/katalvlaran/lvcausal/synth"
)

// Environment variables consulted by Load.
const (
	EnvSeed     = "LVCAUSAL_SEED"
	EnvLogLevel = "LVCAUSAL_LOG_LEVEL"
)

// DefaultRows is the synthetic table size used by the CLI.
const DefaultRows = 10_000

// DefaultTolerance is the relative tolerance used to grade refutations.
const DefaultTolerance = 0.05

// Config contains all lvcausal settings.
type Config struct {
	// Data describes the synthetic dataset.
	Data DataConfig `json:"data" yaml:"data"`

	// Estimate selects the estimator roles and method.
	Estimate EstimateConfig `json:"estimate" yaml:"estimate"`

	// Refute configures the refutation run.
	Refute RefuteConfig `json:"refute" yaml:"refute"`

	// Logging configures the CLI logger.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// DataConfig configures the linear synthetic generator.
type DataConfig struct {
	Rows               int     `json:"rows" yaml:"rows"`
	Seed               int64   `json:"seed" yaml:"seed"`
	Beta               float64 `json:"beta" yaml:"beta"`
	CommonCauses       int     `json:"common_causes" yaml:"common_causes"`
	Noise              float64 `json:"noise" yaml:"noise"`
	InstrumentStrength float64 `json:"instrument_strength" yaml:"instrument_strength"`
	BinaryInstrument   bool    `json:"binary_instrument" yaml:"binary_instrument"`
	BinaryTreatment    bool    `json:"binary_treatment" yaml:"binary_treatment"`
}

// EstimateConfig configures the IV estimator.
type EstimateConfig struct {
	Treatment  string `json:"treatment" yaml:"treatment"`
	Outcome    string `json:"outcome" yaml:"outcome"`
	Instrument string `json:"instrument" yaml:"instrument"`

	// Method is "auto" (default), "wald" or "pearl-ratio".
	Method string `json:"method" yaml:"method"`

	Epsilon float64 `json:"epsilon" yaml:"epsilon"`
}

// RefuteConfig configures the refuter.
type RefuteConfig struct {
	Simulations    int     `json:"simulations" yaml:"simulations"`
	SubsetFraction float64 `json:"subset_fraction" yaml:"subset_fraction"`
	Seed           int64   `json:"seed" yaml:"seed"`

	// Strategies lists the refutations to run, by name. Empty runs all.
	Strategies []refute.Strategy `json:"strategies,omitempty" yaml:"strategies,omitempty"`

	// Tolerance is the relative tolerance used by Refutation.Passed.
	Tolerance float64 `json:"tolerance" yaml:"tolerance"`
}

// LoggingConfig configures log verbosity.
type LoggingConfig struct {
	// Level is "debug", "info" (default), "warn" or "error".
	Level string `json:"level" yaml:"level"`
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// SlogLevel maps Level to a slog.Level; unknown or empty levels map to Info.
func (c LoggingConfig) SlogLevel() slog.Level {
	if l, ok := levels[c.Level]; ok {
		return l
	}
	return slog.LevelInfo
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Rows:               DefaultRows,
			Seed:               refute.DefaultSeed,
			Beta:               synth.DefaultBeta,
			CommonCauses:       synth.DefaultCommonCauses,
			Noise:              synth.DefaultNoise,
			InstrumentStrength: synth.DefaultInstrumentStrength,
			BinaryInstrument:   true,
			BinaryTreatment:    true,
		},
		Estimate: EstimateConfig{
			Treatment:  estimator.DefaultTreatment,
			Outcome:    estimator.DefaultOutcome,
			Instrument: estimator.DefaultInstrument,
			Method:     estimator.MethodAuto.String(),
			Epsilon:    estimator.DefaultEpsilon,
		},
		Refute: RefuteConfig{
			Simulations:    refute.DefaultSimulations,
			SubsetFraction: refute.DefaultSubsetFraction,
			Seed:           refute.DefaultSeed,
			Tolerance:      DefaultTolerance,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load builds a configuration from defaults, the YAML file at path (skipped
// when path is empty) and environment variables, in that order.
func Load(path string) (*Config, error) {
	config := Default()

	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		config = fileConfig
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file. Keys absent
// from the file keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

// Validate checks that the configuration is valid. It reports the first
// bad key.
func (c *Config) Validate() error {
	if c.Data.Rows < synth.MinRows {
		return fmt.Errorf("data.rows must be >= %d, got %d", synth.MinRows, c.Data.Rows)
	}
	if c.Data.CommonCauses < 0 {
		return fmt.Errorf("data.common_causes must be non-negative, got %d", c.Data.CommonCauses)
	}
	if c.Data.Noise < 0 || math.IsNaN(c.Data.Noise) {
		return fmt.Errorf("data.noise must be non-negative, got %g", c.Data.Noise)
	}
	if c.Data.InstrumentStrength == 0 || math.IsNaN(c.Data.InstrumentStrength) {
		return fmt.Errorf("data.instrument_strength must be non-zero, got %g", c.Data.InstrumentStrength)
	}

	if _, err := c.EstimatorOptions(); err != nil {
		return fmt.Errorf("estimate: %w", err)
	}

	if c.Refute.Simulations <= 0 {
		return fmt.Errorf("refute.simulations must be > 0, got %d", c.Refute.Simulations)
	}
	if !(c.Refute.SubsetFraction > 0 && c.Refute.SubsetFraction <= 1) {
		return fmt.Errorf("refute.subset_fraction must be in (0,1], got %g", c.Refute.SubsetFraction)
	}
	if c.Refute.Tolerance < 0 || math.IsNaN(c.Refute.Tolerance) {
		return fmt.Errorf("refute.tolerance must be non-negative, got %g", c.Refute.Tolerance)
	}
	for _, s := range c.Refute.Strategies {
		if _, err := s.MarshalText(); err != nil {
			return fmt.Errorf("refute.strategies: %w", err)
		}
	}

	if _, ok := levels[c.Logging.Level]; c.Logging.Level != "" && !ok {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error, or empty for default)", c.Logging.Level)
	}

	return nil
}

// EstimatorOptions converts the estimate section into estimator.Options and
// runs the estimator's own validation.
func (c *Config) EstimatorOptions() (estimator.Options, error) {
	method, err := estimator.ParseMethod(c.Estimate.Method)
	if err != nil {
		return estimator.Options{}, err
	}

	opts := estimator.Options{
		Treatment:  c.Estimate.Treatment,
		Outcome:    c.Estimate.Outcome,
		Instrument: c.Estimate.Instrument,
		Method:     method,
		Epsilon:    c.Estimate.Epsilon,
	}
	if _, err := estimator.New(opts); err != nil {
		return estimator.Options{}, err
	}

	return opts, nil
}

// SynthOptions converts the data section into generator options.
// Call Validate first: the generator panics on negative counts or noise.
func (c *Config) SynthOptions() []synth.Option {
	return []synth.Option{
		synth.WithBeta(c.Data.Beta),
		synth.WithCommonCauses(c.Data.CommonCauses),
		synth.WithNoise(c.Data.Noise),
		synth.WithInstrumentStrength(c.Data.InstrumentStrength),
		synth.WithBinaryInstrument(c.Data.BinaryInstrument),
		synth.WithBinaryTreatment(c.Data.BinaryTreatment),
	}
}

// RefuteOptions converts the refute section into refuter options.
func (c *Config) RefuteOptions() []refute.Option {
	return []refute.Option{
		refute.WithSeed(c.Refute.Seed),
		refute.WithSimulations(c.Refute.Simulations),
		refute.WithSubsetFraction(c.Refute.SubsetFraction),
	}
}

// applyEnvOverrides applies environment variable overrides to the config.
// LVCAUSAL_SEED seeds both the generator and the refuter.
func applyEnvOverrides(config *Config) error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		config.Data.Seed = seed
		config.Refute.Seed = seed
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		config.Logging.Level = v
	}

	return nil
}
