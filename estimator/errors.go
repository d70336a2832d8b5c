// SPDX-License-Identifier: MIT
// Package: lvcausal/estimator
//
// errors.go — sentinel errors for the estimator package.
//
// Error taxonomy:
//   • ErrDegenerateInstrument — the instrument induces no variation in the
//     treatment; the IV ratio is undefined.
//   • ErrMissingColumn        — a role column is absent (alias of the
//     dataset sentinel so errors.Is matches either name).
//   • ErrInvalidParameter     — meaningless options or arguments.
//   • ErrEmptyDataset         — nothing to estimate from.
//
// Priority when several apply: parameters → empty → missing column →
// degenerate instrument.

package estimator

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvcausal/dataset"
)

var (
	// ErrDegenerateInstrument indicates a zero (|d| ≤ Epsilon) or non-finite denominator.
	ErrDegenerateInstrument = errors.New("estimator: degenerate instrument")

	// ErrInvalidParameter indicates an invalid option or argument value.
	ErrInvalidParameter = errors.New("estimator: invalid parameter")

	// ErrEmptyDataset indicates a dataset with zero rows.
	ErrEmptyDataset = errors.New("estimator: empty dataset")
)

// ErrMissingColumn is the dataset sentinel, re-exported so callers of this
// package need not import dataset just to branch on it.
var ErrMissingColumn = dataset.ErrMissingColumn

// Operation tags for error context.
const (
	opNew        = "New"
	opEstimate   = "Estimate"
	opWald       = "Wald"
	opPearlRatio = "PearlRatio"
)

func estimatorErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
