// SPDX-License-Identifier: MIT
// Package: lvcausal/refute
//
// types.go — Strategy, PlaceboMode and the Refutation record.

package refute

import (
	"fmt"
	"math"
)

// Strategy selects a refutation. The set is closed.
type Strategy int

const (
	// RandomCommonCause adds an independent N(0,1) covariate.
	RandomCommonCause Strategy = iota

	// PlaceboPermute replaces the treatment with a permutation of itself.
	PlaceboPermute

	// PlaceboNoise replaces the treatment with N(0,1) noise.
	PlaceboNoise

	// Subset re-estimates on a random fraction of rows.
	Subset
)

var strategyNames = [...]string{
	RandomCommonCause: "random-common-cause",
	PlaceboPermute:    "placebo-permute",
	PlaceboNoise:      "placebo-noise",
	Subset:            "subset",
}

// Strategies returns every strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{RandomCommonCause, PlaceboPermute, PlaceboNoise, Subset}
}

func (s Strategy) valid() bool { return s >= RandomCommonCause && s <= Subset }

// String returns the kebab-case name accepted by ParseStrategy.
func (s Strategy) String() string {
	if !s.valid() {
		return fmt.Sprintf("strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// ExpectsZero reports whether a healthy estimate makes this refutation
// land near zero (placebos) rather than near the baseline.
func (s Strategy) ExpectsZero() bool {
	return s == PlaceboPermute || s == PlaceboNoise
}

// ParseStrategy maps a kebab-case name to a Strategy.
// Unknown names are ErrInvalidParameter; there is no fallback.
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range Strategies() {
		if strategyNames[s] == name {
			return s, nil
		}
	}

	return 0, invalidf("ParseStrategy", "unknown strategy %q", name)
}

// MarshalText encodes the kebab-case name (JSON, YAML).
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, invalidf("MarshalText", "unknown strategy %d", int(s))
	}

	return []byte(strategyNames[s]), nil
}

// UnmarshalText decodes a kebab-case name via ParseStrategy.
func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed

	return nil
}

// PlaceboMode selects how the placebo treatment is generated.
type PlaceboMode int

const (
	// Permute shuffles the original treatment values (without replacement).
	Permute PlaceboMode = iota

	// GaussianNoise draws fresh N(0,1) values.
	GaussianNoise
)

// String returns "permute" or "noise".
func (m PlaceboMode) String() string {
	switch m {
	case Permute:
		return "permute"
	case GaussianNoise:
		return "noise"
	default:
		return fmt.Sprintf("placebo-mode(%d)", int(m))
	}
}

// Refutation is the outcome of one refutation strategy.
type Refutation struct {
	Strategy    Strategy `json:"strategy"`
	Baseline    float64  `json:"baseline"`
	NewEffect   float64  `json:"new_effect"`
	StdDev      float64  `json:"std_dev"`
	Simulations int      `json:"simulations"`
}

// Delta returns NewEffect − Baseline.
func (r Refutation) Delta() float64 { return r.NewEffect - r.Baseline }

// RelativeDelta returns Delta / |Baseline|. A zero baseline yields 0 when
// the delta is also zero and ±Inf otherwise.
func (r Refutation) RelativeDelta() float64 {
	d := r.Delta()
	if r.Baseline == 0 {
		if d == 0 {
			return 0
		}
		return math.Inf(int(math.Copysign(1, d)))
	}

	return d / math.Abs(r.Baseline)
}

// Within reports |RelativeDelta| ≤ tol.
func (r Refutation) Within(tol float64) bool {
	return math.Abs(r.RelativeDelta()) <= tol
}

// Passed applies the strategy's expectation with relative tolerance tol:
// placebo effects must satisfy |NewEffect| ≤ tol·|Baseline|, all other
// strategies must satisfy Within(tol).
func (r Refutation) Passed(tol float64) bool {
	if r.Strategy.ExpectsZero() {
		return math.Abs(r.NewEffect) <= tol*math.Abs(r.Baseline)
	}

	return r.Within(tol)
}

// String renders a one-line report.
func (r Refutation) String() string {
	return fmt.Sprintf("%s: estimated %.6g, new %.6g (sd %.3g, %d sims)",
		r.Strategy, r.Baseline, r.NewEffect, r.StdDev, r.Simulations)
}
