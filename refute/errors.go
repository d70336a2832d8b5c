// SPDX-License-Identifier: MIT
// Package: lvcausal/refute
//
// errors.go — error identity for the refute package.
//
// Policy:
//   • ErrInvalidParameter is the estimator sentinel, so one errors.Is check
//     covers bad knobs at either layer.
//   • Estimator failures inside a simulation are wrapped, never swallowed:
//     errors.Is(err, estimator.ErrDegenerateInstrument) still holds.

package refute

import (
	"fmt"

	"github.com/katalvlaran/lvcausal/estimator"
)

// ErrInvalidParameter reports a bad strategy, mode, simulation count,
// subset fraction, column name or baseline.
var ErrInvalidParameter = estimator.ErrInvalidParameter

// Operation tags for error context.
const (
	opNew               = "New"
	opRefute            = "Refute"
	opRandomCommonCause = "RandomCommonCause"
	opPlacebo           = "PlaceboTreatment"
	opSubset            = "DataSubset"
)

func refuteErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// invalidf wraps ErrInvalidParameter with a formatted reason.
func invalidf(op, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), ErrInvalidParameter)
}
