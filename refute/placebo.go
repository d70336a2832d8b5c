// SPDX-License-Identifier: MIT
// Package: lvcausal/refute
//
// placebo.go — placebo-treatment refutation.
//
// Permute mode draws one permutation π per simulation and writes
//
//	placebo[i]    = t[π(i)]
//	instrument[i] = z[π(i)]
//
// i.e. (t, z) pairs move together. The instrument still predicts the placebo
// exactly as it predicted the treatment, but neither is linked to the
// outcome any more. Permuting t alone would leave the first stage at ≈ 0 and
// the ratio unbounded.
//
// On the Pearl-ratio path the permuted instrument is also centred,
// instrument[i] = z[π(i)] − mean(z). The ratio Σy·z / Σt·z uses raw dot
// products, so an uncentred z would carry n·mean(y)·mean(z) into the
// numerator and pull the placebo towards the baseline. After centring
//
//	E_π[Σ y·(z_π − z̄)] = 0,   Σ t_π·(z_π − z̄) = n·cov(t, z),
//
// and the placebo effect is centred on zero for both estimators. The Wald
// path needs no centring: group-mean differences are shift-invariant.
//
// GaussianNoise mode writes placebo[i] ~ N(0,1) and leaves the instrument
// as is.

package refute

import (
	"math/rand"

	"github.com/katalvlaran/lvcausal/dataset"
	"github.com/katalvlaran/lvcausal/estimator"
	"github.com/katalvlaran/lvcausal/stats"
)

// PlaceboTreatment replaces the treatment by a placebo column and
// re-estimates with the placebo as treatment. A healthy design yields a
// mean placebo effect near zero.
//
// Each derived table differs from ds in two columns under Permute: the
// placebo column is added and the instrument column is replaced by the same
// permutation of itself (centred when baseline was a Pearl ratio), keeping
// the first stage intact. GaussianNoise adds the placebo column only.
// ds itself is never modified.
//
// Errors: ErrInvalidParameter for an unknown mode, a placebo name that
// already exists in ds, or mismatched inputs; estimator errors, wrapped.
func (r *Refuter) PlaceboTreatment(ds *dataset.Dataset, baseline estimator.Estimate, mode PlaceboMode) (Refutation, error) {
	var strategy Strategy
	switch mode {
	case Permute:
		strategy = PlaceboPermute
	case GaussianNoise:
		strategy = PlaceboNoise
	default:
		return Refutation{}, invalidf(opPlacebo, "unknown placebo mode %d", int(mode))
	}

	if err := r.checkInputs(opPlacebo, ds, baseline); err != nil {
		return Refutation{}, err
	}
	name := r.cfg.placeboName
	if ds.Has(name) {
		return Refutation{}, invalidf(opPlacebo, "column %q already exists", name)
	}

	placeboEst, err := r.est.WithTreatment(name)
	if err != nil {
		return Refutation{}, refuteErrorf(opPlacebo, err)
	}

	opts := r.est.Options()
	centre := baseline.Method() == estimator.MethodPearlRatio
	treatment, err := ds.Column(opts.Treatment)
	if err != nil {
		return Refutation{}, refuteErrorf(opPlacebo, err)
	}
	instrument, err := ds.Column(opts.Instrument)
	if err != nil {
		return Refutation{}, refuteErrorf(opPlacebo, err)
	}

	return r.simulate(opPlacebo, strategy, baseline,
		func(rng *rand.Rand) (estimator.Estimate, error) {
			var derived *dataset.Dataset
			var err error
			if mode == Permute {
				derived, err = permuted(ds, rng, name, treatment, opts.Instrument, instrument, centre)
			} else {
				derived, err = ds.WithColumn(name, normals(rng, ds.Len()))
			}
			if err != nil {
				return estimator.Estimate{}, err
			}

			return placeboEst.Estimate(derived)
		})
}

// permuted derives ds + placebo column (a permutation of treatment) with the
// instrument column replaced by the same permutation of itself, shifted to
// zero mean when centre is set.
func permuted(
	ds *dataset.Dataset,
	rng *rand.Rand,
	placeboName string,
	treatment []float64,
	instrumentName string,
	instrument []float64,
	centre bool,
) (*dataset.Dataset, error) {
	var shift float64
	if centre {
		shift, _ = stats.Mean(instrument)
	}

	perm := rng.Perm(len(treatment))
	placebo := make([]float64, len(treatment))
	z := make([]float64, len(instrument))
	for i, p := range perm {
		placebo[i] = treatment[p]
		z[i] = instrument[p] - shift
	}

	withPlacebo, err := ds.WithColumn(placeboName, placebo)
	if err != nil {
		return nil, err
	}

	return withPlacebo.WithColumn(instrumentName, z)
}
