// SPDX-License-Identifier: MIT
// Package: lvcausal/refute
//
// subset.go — data-subset refutation.

package refute

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvcausal/dataset"
	"github.com/katalvlaran/lvcausal/estimator"
)

// DataSubset re-estimates on round(fraction·n) rows drawn without
// replacement. A stable estimate is expected to stay close to the baseline;
// with fraction 1 the subset is a reordering of ds and the estimate matches
// the baseline up to summation order.
//
// Errors: ErrInvalidParameter for mismatched inputs; estimator errors,
// wrapped (a tiny subset may lose an instrument level and come back as
// ErrDegenerateInstrument).
func (r *Refuter) DataSubset(ds *dataset.Dataset, baseline estimator.Estimate) (Refutation, error) {
	if err := r.checkInputs(opSubset, ds, baseline); err != nil {
		return Refutation{}, err
	}

	n := ds.Len()
	k := int(math.Round(r.cfg.fraction * float64(n)))

	return r.simulate(opSubset, Subset, baseline,
		func(rng *rand.Rand) (estimator.Estimate, error) {
			sub, err := ds.Select(rng.Perm(n)[:k])
			if err != nil {
				return estimator.Estimate{}, err
			}

			return r.est.Estimate(sub)
		})
}
