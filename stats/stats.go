// SPDX-License-Identifier: MIT
// Package: lvcausal/stats
//
// Purpose:
//   - Provide the handful of column statistics the IV estimator and the
//     refuters are built from: Mean, Dot, StdDev, Distinct, MeanWhere.
//   - Keep tight loops in one place so estimator code reads as formulas.
//
// Determinism & Performance:
//   - Fixed left→right traversal; no randomness; no allocation except in
//     Distinct.
//   - Every kernel is O(n).
//
// Errors:
//   - ErrEmpty when a kernel has nothing to aggregate.
//   - ErrLengthMismatch when paired inputs differ in length.

package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrEmpty indicates an empty input (or an empty selection in MeanWhere).
	ErrEmpty = errors.New("stats: empty input")

	// ErrLengthMismatch indicates paired slices of different lengths.
	ErrLengthMismatch = errors.New("stats: length mismatch")
)

// Operation name constants for unified error wrapping.
const (
	opMean      = "Mean"
	opDot       = "Dot"
	opStdDev    = "StdDev"
	opMeanWhere = "MeanWhere"
)

func statsErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Mean returns the arithmetic mean of x.
func Mean(x []float64) (float64, error) {
	if len(x) == 0 {
		return 0, statsErrorf(opMean, ErrEmpty)
	}

	var s float64
	for _, v := range x {
		s += v
	}

	return s / float64(len(x)), nil
}

// Dot returns Σ x[i]·y[i].
func Dot(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, statsErrorf(opDot, ErrLengthMismatch)
	}
	if len(x) == 0 {
		return 0, statsErrorf(opDot, ErrEmpty)
	}

	var s float64
	for i := range x {
		s += x[i] * y[i]
	}

	return s, nil
}

// StdDev returns the sample standard deviation of x (denominator n-1).
// A single observation has zero spread.
func StdDev(x []float64) (float64, error) {
	mean, err := Mean(x)
	if err != nil {
		return 0, statsErrorf(opStdDev, err)
	}
	if len(x) == 1 {
		return 0, nil
	}

	var ss float64
	for _, v := range x {
		d := v - mean
		ss += d * d
	}

	return math.Sqrt(ss / float64(len(x)-1)), nil
}

// Distinct returns the sorted distinct values of x. When limit > 0 the scan
// stops as soon as more than limit distinct values have been seen, and the
// returned slice then has exactly limit+1 elements; callers use this to ask
// "at most k levels?" without hashing a whole continuous column.
func Distinct(x []float64, limit int) []float64 {
	seen := make(map[float64]struct{})
	out := make([]float64, 0, 2)
	for _, v := range x {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
		if limit > 0 && len(out) > limit {
			break
		}
	}
	sort.Float64s(out)

	return out
}

// MeanWhere returns the mean of x over the rows where key[i] == level,
// together with the number of rows selected.
//
// Errors: ErrLengthMismatch; ErrEmpty when no row matches.
func MeanWhere(x, key []float64, level float64) (float64, int, error) {
	if len(x) != len(key) {
		return 0, 0, statsErrorf(opMeanWhere, ErrLengthMismatch)
	}

	var s float64
	var n int
	for i, k := range key {
		if k == level {
			s += x[i]
			n++
		}
	}
	if n == 0 {
		return 0, 0, statsErrorf(opMeanWhere, ErrEmpty)
	}

	return s / float64(n), n, nil
}
