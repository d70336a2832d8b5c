// SPDX-License-Identifier: MIT
// Package: lvcausal/estimator
//
// types.go — Method, Options and the immutable Estimate record.

package estimator

import "fmt"

// Method selects the IV estimator.
//
//   - MethodAuto       — Wald for ≤ 2 instrument levels, Pearl ratio otherwise.
//   - MethodWald       — ratio of group-mean differences (binary instrument).
//   - MethodPearlRatio — ratio of dot products (continuous instrument).
type Method int

const (
	// MethodAuto dispatches on instrument cardinality.
	MethodAuto Method = iota

	// MethodWald forces the Wald estimator.
	MethodWald

	// MethodPearlRatio forces the Pearl ratio estimator.
	MethodPearlRatio
)

// String returns the kebab-case method name.
func (m Method) String() string {
	switch m {
	case MethodAuto:
		return "auto"
	case MethodWald:
		return "wald"
	case MethodPearlRatio:
		return "pearl-ratio"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ParseMethod maps "auto", "wald" or "pearl-ratio" to a Method.
// The empty string selects MethodAuto.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "", "auto":
		return MethodAuto, nil
	case "wald":
		return MethodWald, nil
	case "pearl-ratio":
		return MethodPearlRatio, nil
	default:
		return 0, fmt.Errorf("ParseMethod: unknown method %q: %w", name, ErrInvalidParameter)
	}
}

// Default role names, matching the column names of the linear synthetic
// datasets (treatment v0, outcome y, first instrument Z0).
const (
	DefaultTreatment  = "v0"
	DefaultOutcome    = "y"
	DefaultInstrument = "Z0"

	// DefaultEpsilon is the largest |denominator| treated as zero.
	DefaultEpsilon = 1e-12
)

// Options configures an Estimator.
//
// Fields:
//   - Treatment  — treatment column name.
//   - Outcome    — outcome column name.
//   - Instrument — the single designated instrument column.
//   - Method     — MethodAuto (default), MethodWald or MethodPearlRatio.
//   - Epsilon    — denominators with |d| ≤ Epsilon are degenerate; must be ≥ 0.
//
// Example:
//
//	opts := estimator.DefaultOptions()
//	opts.Treatment = "dose"
//	est, err := estimator.New(opts)
type Options struct {
	Treatment  string
	Outcome    string
	Instrument string
	Method     Method
	Epsilon    float64
}

// DefaultOptions returns the canonical role names with automatic dispatch.
func DefaultOptions() Options {
	return Options{
		Treatment:  DefaultTreatment,
		Outcome:    DefaultOutcome,
		Instrument: DefaultInstrument,
		Method:     MethodAuto,
		Epsilon:    DefaultEpsilon,
	}
}

// Estimate is the immutable result of one estimation.
// It has no exported fields; read it through the accessors.
type Estimate struct {
	value      float64
	method     Method
	treatment  string
	outcome    string
	instrument string
	rows       int
}

// Value returns the estimated causal effect.
func (e Estimate) Value() float64 { return e.value }

// Method returns the estimator actually used (never MethodAuto).
func (e Estimate) Method() Method { return e.method }

// Treatment returns the treatment column the estimate refers to.
func (e Estimate) Treatment() string { return e.treatment }

// Outcome returns the outcome column name.
func (e Estimate) Outcome() string { return e.outcome }

// Instrument returns the instrument column name.
func (e Estimate) Instrument() string { return e.instrument }

// Rows returns the number of rows the estimate was computed on.
func (e Estimate) Rows() int { return e.rows }

// String renders the estimate for logs and reports.
func (e Estimate) String() string {
	return fmt.Sprintf("%s effect of %s on %s via %s = %.6g (n=%d)",
		e.method, e.treatment, e.outcome, e.instrument, e.value, e.rows)
}
