// SPDX-License-Identifier: MIT
// Package: lvcausal/synth
//
// linear.go — the linear IV dataset generator.

package synth

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/lvcausal/dataset"
)

// ErrBadSize indicates a row count below MinRows.
var ErrBadSize = errors.New("synth: invalid size")

// MinRows is the smallest dataset Linear will build.
const MinRows = 2

// Column names produced by Linear.
const (
	Instrument = "Z0"
	Treatment  = "v0"
	Outcome    = "y"
)

// CommonCause returns the name of the j-th confounder column ("W0", "W1", ...).
func CommonCause(j int) string { return "W" + strconv.Itoa(j) }

// Linear returns an n-row dataset drawn from the model in the package doc.
// Columns are ordered Z0, W0..W{k-1}, v0, y.
//
// Errors: ErrBadSize if n < MinRows.
//
// Complexity: O(n·k) time and memory.
func Linear(n int, seed int64, opts ...Option) (*dataset.Dataset, error) {
	if n < MinRows {
		return nil, fmt.Errorf("Linear: n=%d: %w", n, ErrBadSize)
	}

	cfg := newSynthConfig(opts...)
	rng := rngFrom(cfg, seed)

	z := make([]float64, n)
	w := make([][]float64, cfg.commonCauses)
	for j := range w {
		w[j] = make([]float64, n)
	}
	t := make([]float64, n)
	y := make([]float64, n)

	threshold := cfg.strength * thresholdFraction
	for i := 0; i < n; i++ {
		var confound float64
		for j := range w {
			w[j][i] = rng.NormFloat64()
			confound += w[j][i]
		}

		if cfg.binaryInstrument {
			if rng.Float64() < bernoulliHalf {
				z[i] = 1
			}
		} else {
			z[i] = rng.Float64()
		}

		latent := cfg.strength*z[i] + confound + rng.NormFloat64()
		if cfg.binaryTreatment {
			if latent > threshold {
				t[i] = 1
			}
		} else {
			t[i] = latent
		}

		y[i] = cfg.beta*t[i] + confound + cfg.noise*rng.NormFloat64()
	}

	cols := make([]dataset.Column, 0, cfg.commonCauses+3)
	cols = append(cols, dataset.Column{Name: Instrument, Values: z})
	for j := range w {
		cols = append(cols, dataset.Column{Name: CommonCause(j), Values: w[j]})
	}
	cols = append(cols,
		dataset.Column{Name: Treatment, Values: t},
		dataset.Column{Name: Outcome, Values: y},
	)

	return dataset.New(cols...)
}

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by seed.
func rngFrom(cfg synthConfig, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}
