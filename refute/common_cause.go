// SPDX-License-Identifier: MIT
// Package: lvcausal/refute
//
// common_cause.go — random-common-cause refutation.

package refute

import (
	"math/rand"

	"github.com/katalvlaran/lvcausal/dataset"
	"github.com/katalvlaran/lvcausal/estimator"
)

// RandomCommonCause appends an independent N(0,1) column to a copy of ds
// and re-estimates. Treatment, outcome and instrument are untouched, so a
// valid IV estimate is expected to come back unchanged.
//
// Errors: ErrInvalidParameter when the covariate name already exists in ds
// or the inputs do not match; any estimator error, wrapped.
func (r *Refuter) RandomCommonCause(ds *dataset.Dataset, baseline estimator.Estimate) (Refutation, error) {
	if err := r.checkInputs(opRandomCommonCause, ds, baseline); err != nil {
		return Refutation{}, err
	}
	name := r.cfg.commonCauseName
	if ds.Has(name) {
		return Refutation{}, invalidf(opRandomCommonCause, "column %q already exists", name)
	}

	return r.simulate(opRandomCommonCause, RandomCommonCause, baseline,
		func(rng *rand.Rand) (estimator.Estimate, error) {
			augmented, err := ds.WithColumn(name, normals(rng, ds.Len()))
			if err != nil {
				return estimator.Estimate{}, err
			}

			return r.est.Estimate(augmented)
		})
}
