// SPDX-License-Identifier: MIT
// Package: lvcausal/synth
//
// options.go — functional options and resolved configuration.
//
// Contract (strict):
//   • Options are functional (type Option func(*synthConfig)).
//   • Option constructors PANIC on meaningless inputs; Linear itself never
//     panics and reports size problems as errors.
//   • Options apply in order; later ones win.

package synth

import "math/rand"

// Exported defaults.
const (
	DefaultBeta               = 10.0 // true causal effect of v0 on y
	DefaultCommonCauses       = 1    // number of W columns
	DefaultNoise              = 1.0  // outcome noise sigma
	DefaultInstrumentStrength = 2.0  // s: effect of Z0 on the latent treatment
)

// File-local constants (no magic numbers).
const (
	defaultBinaryInstrument = true
	defaultBinaryTreatment  = false
	bernoulliHalf           = 0.5
	thresholdFraction       = 0.5 // binary treatment fires above s·thresholdFraction
)

// synthConfig aggregates all generator knobs. Passed by value.
type synthConfig struct {
	rng              *rand.Rand // nil → local stream from the seed argument
	beta             float64
	commonCauses     int
	noise            float64
	strength         float64
	binaryInstrument bool
	binaryTreatment  bool
}

// Option customizes Linear.
type Option func(*synthConfig)

func newSynthConfig(opts ...Option) synthConfig {
	cfg := synthConfig{
		beta:             DefaultBeta,
		commonCauses:     DefaultCommonCauses,
		noise:            DefaultNoise,
		strength:         DefaultInstrumentStrength,
		binaryInstrument: defaultBinaryInstrument,
		binaryTreatment:  defaultBinaryTreatment,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand draws from r instead of a stream seeded by Linear's seed argument.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("synth: WithRand(nil)")
	}
	return func(c *synthConfig) {
		c.rng = r
	}
}

// WithBeta sets the true effect of the treatment on the outcome.
func WithBeta(beta float64) Option {
	return func(c *synthConfig) {
		c.beta = beta
	}
}

// WithCommonCauses sets the number of confounders W0..W{k-1}. Panics if k < 0.
func WithCommonCauses(k int) Option {
	if k < 0 {
		panic("synth: WithCommonCauses(k<0)")
	}
	return func(c *synthConfig) {
		c.commonCauses = k
	}
}

// WithNoise sets the outcome noise sigma (0 gives a noiseless outcome).
// Panics if sigma < 0.
func WithNoise(sigma float64) Option {
	if sigma < 0 {
		panic("synth: WithNoise(sigma<0)")
	}
	return func(c *synthConfig) {
		c.noise = sigma
	}
}

// WithInstrumentStrength sets s, the effect of Z0 on the latent treatment.
// Panics if s == 0: a zero-strength instrument is degenerate by construction.
func WithInstrumentStrength(s float64) Option {
	if s == 0 {
		panic("synth: WithInstrumentStrength(0)")
	}
	return func(c *synthConfig) {
		c.strength = s
	}
}

// WithBinaryInstrument chooses Z0 ~ Bernoulli(0.5) (true) or U(0,1) (false).
func WithBinaryInstrument(binary bool) Option {
	return func(c *synthConfig) {
		c.binaryInstrument = binary
	}
}

// WithBinaryTreatment thresholds the latent treatment to {0,1}.
func WithBinaryTreatment(binary bool) Option {
	return func(c *synthConfig) {
		c.binaryTreatment = binary
	}
}
