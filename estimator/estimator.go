// SPDX-License-Identifier: MIT
// Package: lvcausal/estimator
//
// estimator.go — the Estimator facade over the IV kernels.
//
// Contract:
//   • New validates Options once; an *Estimator is immutable afterwards.
//   • Estimate reads exactly three columns (outcome, treatment, instrument)
//     and ignores every other column of the table.
//   • No randomness, no side effects: identical inputs give identical output.

package estimator

import (
	"math"

	"github.com/katalvlaran/lvcausal/dataset"
	"github.com/katalvlaran/lvcausal/stats"
)

// Estimator computes IV estimates with a fixed set of Options.
type Estimator struct {
	opts Options
}

// New validates opts and returns an Estimator.
//
// Errors: ErrInvalidParameter when a role name is empty, two roles share a
// column, Epsilon is negative or NaN, or Method is unknown.
func New(opts Options) (*Estimator, error) {
	if err := validateOptions(opts); err != nil {
		return nil, estimatorErrorf(opNew, err)
	}

	return &Estimator{opts: opts}, nil
}

// EstimateEffect is the one-call form: default roles, automatic dispatch,
// with the treatment column overridden when treatment is non-empty.
func EstimateEffect(ds *dataset.Dataset, treatment string) (Estimate, error) {
	opts := DefaultOptions()
	if treatment != "" {
		opts.Treatment = treatment
	}

	est, err := New(opts)
	if err != nil {
		return Estimate{}, err
	}

	return est.Estimate(ds)
}

func validateOptions(o Options) error {
	if o.Treatment == "" || o.Outcome == "" || o.Instrument == "" {
		return ErrInvalidParameter
	}
	if o.Treatment == o.Outcome || o.Treatment == o.Instrument || o.Outcome == o.Instrument {
		return ErrInvalidParameter
	}
	if o.Epsilon < 0 || math.IsNaN(o.Epsilon) {
		return ErrInvalidParameter
	}
	if o.Method < MethodAuto || o.Method > MethodPearlRatio {
		return ErrInvalidParameter
	}

	return nil
}

// Options returns a copy of the estimator's options.
func (e *Estimator) Options() Options { return e.opts }

// WithTreatment returns a new Estimator identical to e except for the
// treatment column. The refuters use it to point the estimator at a
// placebo column.
func (e *Estimator) WithTreatment(name string) (*Estimator, error) {
	opts := e.opts
	opts.Treatment = name

	return New(opts)
}

// Estimate computes the causal effect of the treatment on the outcome in ds.
//
// Errors (wrapped, match with errors.Is):
//   - ErrInvalidParameter     — ds is nil, or MethodWald forced on a
//     non-binary instrument.
//   - ErrEmptyDataset         — ds has zero rows.
//   - ErrMissingColumn        — a role column is absent.
//   - ErrDegenerateInstrument — the denominator is (near) zero.
func (e *Estimator) Estimate(ds *dataset.Dataset) (Estimate, error) {
	if ds == nil {
		return Estimate{}, estimatorErrorf(opEstimate, ErrInvalidParameter)
	}
	if ds.Len() == 0 {
		return Estimate{}, estimatorErrorf(opEstimate, ErrEmptyDataset)
	}

	y, err := ds.Column(e.opts.Outcome)
	if err != nil {
		return Estimate{}, estimatorErrorf(opEstimate, err)
	}
	t, err := ds.Column(e.opts.Treatment)
	if err != nil {
		return Estimate{}, estimatorErrorf(opEstimate, err)
	}
	z, err := ds.Column(e.opts.Instrument)
	if err != nil {
		return Estimate{}, estimatorErrorf(opEstimate, err)
	}

	method := e.resolveMethod(z)

	var value float64
	if method == MethodWald {
		value, err = wald(y, t, z, e.opts.Epsilon)
	} else {
		value, err = pearlRatio(y, t, z, e.opts.Epsilon)
	}
	if err != nil {
		return Estimate{}, estimatorErrorf(opEstimate, err)
	}

	return Estimate{
		value:      value,
		method:     method,
		treatment:  e.opts.Treatment,
		outcome:    e.opts.Outcome,
		instrument: e.opts.Instrument,
		rows:       ds.Len(),
	}, nil
}

// resolveMethod maps MethodAuto to a concrete estimator by counting
// instrument levels (early exit after three).
func (e *Estimator) resolveMethod(z []float64) Method {
	if e.opts.Method != MethodAuto {
		return e.opts.Method
	}
	if len(stats.Distinct(z, binaryLevels)) <= binaryLevels {
		return MethodWald
	}

	return MethodPearlRatio
}
