// Package estimator computes instrumental-variable (IV) estimates of a
// causal effect from an in-memory dataset.
//
// 🚀 What is an IV estimate?
//
//	When treatment and outcome share unobserved causes, their raw association
//	is biased. An instrument Z moves the treatment but touches the outcome
//	only through it, so the ratio "how much Z moves Y" / "how much Z moves T"
//	recovers the effect of T on Y.
//
// ✨ Two estimators, chosen by instrument cardinality:
//   - Wald (≤ 2 instrument levels):
//     (E[Y|Z=hi] − E[Y|Z=lo]) / (E[T|Z=hi] − E[T|Z=lo])
//   - Pearl ratio (continuous instrument):
//     Σ Y·Z / Σ T·Z
//
// Options.Method can force either one; MethodAuto dispatches as above.
//
// ⚙️ Usage:
//
//	est, err := estimator.New(estimator.DefaultOptions()) // v0 → y via Z0
//	if err != nil {
//	  // ErrInvalidParameter
//	}
//	e, err := est.Estimate(ds)
//	switch {
//	case errors.Is(err, estimator.ErrDegenerateInstrument):
//	  // Z does not move T: the ratio is undefined
//	case errors.Is(err, estimator.ErrMissingColumn):
//	  // a role column is absent from ds
//	}
//	fmt.Println(e.Value(), e.Method())
//
// A zero (or |x| ≤ Epsilon) denominator is reported as
// ErrDegenerateInstrument instead of an Inf/NaN value. Estimation is pure
// and deterministic: same table in, same Estimate out.
package estimator
