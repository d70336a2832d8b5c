// SPDX-License-Identifier: MIT
// Package: lvcausal/refute
//
// refuter.go — Refuter construction, dispatch and the simulation loop.
//
// Algorithm outline (every strategy):
//  1. Validate inputs: non-nil dataset; baseline produced with the same
//     treatment/outcome/instrument roles as the Refuter's estimator.
//  2. rng ← shared stream, or a fresh stream from the seed.
//  3. Repeat Simulations times: derive a perturbed copy of the dataset and
//     re-estimate on it.
//  4. Report mean and sample standard deviation of the simulated effects.

package refute

import (
	"context"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/lvcausal/dataset"
	"github.com/katalvlaran/lvcausal/estimator"
	"github.com/katalvlaran/lvcausal/stats"
)

// Refuter runs refutation strategies against a fixed estimator.
// A Refuter holds no mutable state of its own; with WithSeed it is safe to
// reuse and every call is reproducible.
type Refuter struct {
	est *estimator.Estimator
	cfg refuteConfig
}

// New builds a Refuter around est.
//
// Errors: ErrInvalidParameter for a nil estimator, Simulations ≤ 0, a
// subset fraction outside (0,1], or empty/clashing column names.
func New(est *estimator.Estimator, opts ...Option) (*Refuter, error) {
	if est == nil {
		return nil, invalidf(opNew, "nil estimator")
	}

	cfg := newRefuteConfig(opts...)
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Refuter{est: est, cfg: cfg}, nil
}

// Simulations returns the configured repetition count.
func (r *Refuter) Simulations() int { return r.cfg.simulations }

// SubsetFraction returns the configured subset fraction.
func (r *Refuter) SubsetFraction() float64 { return r.cfg.fraction }

// Refute runs one strategy.
func (r *Refuter) Refute(ds *dataset.Dataset, baseline estimator.Estimate, s Strategy) (Refutation, error) {
	switch s {
	case RandomCommonCause:
		return r.RandomCommonCause(ds, baseline)
	case PlaceboPermute:
		return r.PlaceboTreatment(ds, baseline, Permute)
	case PlaceboNoise:
		return r.PlaceboTreatment(ds, baseline, GaussianNoise)
	case Subset:
		return r.DataSubset(ds, baseline)
	default:
		return Refutation{}, invalidf(opRefute, "unknown strategy %d", int(s))
	}
}

// RefuteAll runs the given strategies in order (all of them when none are
// given) and stops at the first failure.
func (r *Refuter) RefuteAll(ds *dataset.Dataset, baseline estimator.Estimate, strategies ...Strategy) ([]Refutation, error) {
	if len(strategies) == 0 {
		strategies = Strategies()
	}

	out := make([]Refutation, 0, len(strategies))
	for _, s := range strategies {
		res, err := r.Refute(ds, baseline, s)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}

	return out, nil
}

// checkInputs validates the dataset and that the baseline belongs to this
// Refuter's estimator.
func (r *Refuter) checkInputs(op string, ds *dataset.Dataset, baseline estimator.Estimate) error {
	if ds == nil {
		return invalidf(op, "nil dataset")
	}

	o := r.est.Options()
	if baseline.Treatment() != o.Treatment || baseline.Outcome() != o.Outcome || baseline.Instrument() != o.Instrument {
		return invalidf(op, "baseline (%s, %s, %s) does not match estimator roles (%s, %s, %s)",
			baseline.Treatment(), baseline.Outcome(), baseline.Instrument(),
			o.Treatment, o.Outcome, o.Instrument)
	}

	return nil
}

// simulate runs once Simulations times on one random stream and folds the
// results into a Refutation.
func (r *Refuter) simulate(
	op string,
	s Strategy,
	baseline estimator.Estimate,
	once func(rng *rand.Rand) (estimator.Estimate, error),
) (Refutation, error) {
	log := r.cfg.logger.With("strategy", s.String())
	log.Debug("refutation started", "simulations", r.cfg.simulations, "baseline", baseline.Value())

	rng := r.cfg.newRand()
	effects := make([]float64, r.cfg.simulations)
	for i := range effects {
		e, err := once(rng)
		if err != nil {
			log.Debug("refutation failed", "simulation", i, "error", err)
			return Refutation{}, refuteErrorf(op, err)
		}
		effects[i] = e.Value()
	}

	mean, _ := stats.Mean(effects)
	sd, _ := stats.StdDev(effects)

	res := Refutation{
		Strategy:    s,
		Baseline:    baseline.Value(),
		NewEffect:   mean,
		StdDev:      sd,
		Simulations: r.cfg.simulations,
	}
	if log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("refutation finished", "new_effect", res.NewEffect, "std_dev", res.StdDev)
	}

	return res, nil
}

// normals returns n independent N(0,1) draws.
func normals(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.NormFloat64()
	}

	return out
}
