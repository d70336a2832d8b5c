// SPDX-License-Identifier: MIT
// Package: lvcausal/estimator
//
// iv.go — the two IV kernels over raw columns.
//
// Algorithm outline:
//
//	Wald (binary instrument, levels lo < hi):
//	  1. levels ← Distinct(z, 2); |levels| must be exactly 2.
//	  2. num ← mean(y | z=hi) − mean(y | z=lo)
//	  3. den ← mean(t | z=hi) − mean(t | z=lo)
//	  4. effect ← num / den
//
//	Pearl ratio (continuous instrument):
//	  1. num ← Σ y·z
//	  2. den ← Σ t·z
//	  3. effect ← num / den
//
// Both: |den| ≤ eps, or a non-finite ratio, is ErrDegenerateInstrument.
// Complexity: O(n) time; O(1) extra memory (Wald: O(1) for ≤ 3 levels).

package estimator

import (
	"math"

	"github.com/katalvlaran/lvcausal/stats"
)

// binaryLevels is the largest instrument cardinality treated as binary.
const binaryLevels = 2

// Wald returns the Wald estimate for outcome y, treatment t and a binary
// instrument z, using DefaultEpsilon.
//
// Errors:
//   - ErrInvalidParameter     — unequal lengths, or z has more than two levels.
//   - ErrEmptyDataset         — zero rows.
//   - ErrDegenerateInstrument — z has one level, or t does not differ across levels.
func Wald(y, t, z []float64) (float64, error) {
	return wald(y, t, z, DefaultEpsilon)
}

// PearlRatio returns Σy·z / Σt·z using DefaultEpsilon.
//
// Errors: ErrInvalidParameter (unequal lengths), ErrEmptyDataset,
// ErrDegenerateInstrument (Σt·z ≈ 0).
func PearlRatio(y, t, z []float64) (float64, error) {
	return pearlRatio(y, t, z, DefaultEpsilon)
}

func wald(y, t, z []float64, eps float64) (float64, error) {
	if err := checkColumns(y, t, z); err != nil {
		return 0, estimatorErrorf(opWald, err)
	}

	levels := stats.Distinct(z, binaryLevels)
	switch {
	case len(levels) > binaryLevels:
		return 0, estimatorErrorf(opWald, ErrInvalidParameter)
	case len(levels) < binaryLevels:
		return 0, estimatorErrorf(opWald, ErrDegenerateInstrument)
	}
	lo, hi := levels[0], levels[1]

	// Both levels are present by construction, so MeanWhere cannot fail.
	yHi, _, _ := stats.MeanWhere(y, z, hi)
	yLo, _, _ := stats.MeanWhere(y, z, lo)
	tHi, _, _ := stats.MeanWhere(t, z, hi)
	tLo, _, _ := stats.MeanWhere(t, z, lo)

	effect, err := ratio(yHi-yLo, tHi-tLo, eps)
	if err != nil {
		return 0, estimatorErrorf(opWald, err)
	}

	return effect, nil
}

func pearlRatio(y, t, z []float64, eps float64) (float64, error) {
	if err := checkColumns(y, t, z); err != nil {
		return 0, estimatorErrorf(opPearlRatio, err)
	}

	num, _ := stats.Dot(y, z)
	den, _ := stats.Dot(t, z)

	effect, err := ratio(num, den, eps)
	if err != nil {
		return 0, estimatorErrorf(opPearlRatio, err)
	}

	return effect, nil
}

// checkColumns enforces equal, non-zero lengths.
func checkColumns(y, t, z []float64) error {
	if len(y) != len(t) || len(t) != len(z) {
		return ErrInvalidParameter
	}
	if len(z) == 0 {
		return ErrEmptyDataset
	}

	return nil
}

// ratio divides num by den, refusing near-zero denominators and
// non-finite results.
func ratio(num, den, eps float64) (float64, error) {
	if math.IsNaN(den) || math.Abs(den) <= eps {
		return 0, ErrDegenerateInstrument
	}

	r := num / den
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, ErrDegenerateInstrument
	}

	return r, nil
}
