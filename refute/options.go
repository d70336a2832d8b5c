// SPDX-License-Identifier: MIT
// Package: lvcausal/refute
//
// options.go — functional options for the Refuter.
//
// Contract:
//   • Option constructors PANIC only on programmer errors that have no
//     meaningful runtime reading (nil *rand.Rand, nil logger).
//   • Numeric knobs (simulations, fraction) and column names are validated
//     by New and surface as ErrInvalidParameter, because they usually come
//     from flags or config files.
//   • Determinism is explicit: WithSeed restarts the stream on every call,
//     WithRand shares a caller-owned stream across calls.

package refute

import (
	"io"
	"log/slog"
	"math/rand"
)

// Defaults.
const (
	DefaultSimulations     = 100
	DefaultSubsetFraction  = 0.8
	DefaultSeed            = int64(1)
	DefaultCommonCauseName = "w_random"
	DefaultPlaceboName     = "placebo"
)

// refuteConfig holds every Refuter knob. Passed by value.
type refuteConfig struct {
	seed            int64
	rng             *rand.Rand // nil → fresh stream from seed per call
	simulations     int
	fraction        float64
	commonCauseName string
	placeboName     string
	logger          *slog.Logger
}

// Option customizes a Refuter.
type Option func(*refuteConfig)

func newRefuteConfig(opts ...Option) refuteConfig {
	cfg := refuteConfig{
		seed:            DefaultSeed,
		simulations:     DefaultSimulations,
		fraction:        DefaultSubsetFraction,
		commonCauseName: DefaultCommonCauseName,
		placeboName:     DefaultPlaceboName,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// validate checks the numeric knobs and names.
func (c refuteConfig) validate() error {
	if c.simulations <= 0 {
		return invalidf(opNew, "simulations must be > 0, got %d", c.simulations)
	}
	if !(c.fraction > 0 && c.fraction <= 1) {
		return invalidf(opNew, "subset fraction must be in (0,1], got %g", c.fraction)
	}
	if c.commonCauseName == "" || c.placeboName == "" {
		return invalidf(opNew, "column names must be non-empty")
	}
	if c.commonCauseName == c.placeboName {
		return invalidf(opNew, "common-cause and placebo columns share the name %q", c.placeboName)
	}

	return nil
}

// newRand returns the shared stream if one was supplied, otherwise a fresh
// stream seeded with cfg.seed, so seeded Refuters reproduce call after call.
func (c refuteConfig) newRand() *rand.Rand {
	if c.rng != nil {
		return c.rng
	}

	return rand.New(rand.NewSource(c.seed))
}

// WithSeed makes every refutation draw from rand.NewSource(seed).
func WithSeed(seed int64) Option {
	return func(c *refuteConfig) {
		c.seed = seed
		c.rng = nil
	}
}

// WithRand shares r across calls; results then depend on call order.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("refute: WithRand(nil)")
	}
	return func(c *refuteConfig) {
		c.rng = r
	}
}

// WithSimulations sets how many times each strategy is repeated (> 0).
func WithSimulations(n int) Option {
	return func(c *refuteConfig) {
		c.simulations = n
	}
}

// WithSubsetFraction sets the row fraction kept by Subset, in (0,1].
func WithSubsetFraction(f float64) Option {
	return func(c *refuteConfig) {
		c.fraction = f
	}
}

// WithCommonCauseName names the random covariate column.
func WithCommonCauseName(name string) Option {
	return func(c *refuteConfig) {
		c.commonCauseName = name
	}
}

// WithPlaceboName names the placebo treatment column.
func WithPlaceboName(name string) Option {
	return func(c *refuteConfig) {
		c.placeboName = name
	}
}

// WithLogger routes Debug-level progress records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("refute: WithLogger(nil)")
	}
	return func(c *refuteConfig) {
		c.logger = l
	}
}
