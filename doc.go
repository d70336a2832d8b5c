// Package lvcausal is a small, pure-Go toolkit for instrumental-variable
// effect estimation and for sanity-checking the estimates it produces.
//
// 🚀 What is inside?
//
//	dataset/   — immutable, column-major numeric tables with copy-on-write
//	             derivation (WithColumn, Select)
//	stats/     — deterministic column kernels (Mean, Dot, StdDev, MeanWhere…)
//	estimator/ — Wald and Pearl-ratio IV estimators with typed failures
//	refute/    — random common cause, placebo treatment and subset refuters
//	synth/     — seeded linear datasets with a known treatment effect
//	cmd/lvcausal — the whole workflow from the command line
//
// ✨ Why lvcausal?
//
//   - Explicit randomness – every stochastic step takes a seed or *rand.Rand
//   - No silent NaN – degenerate instruments are errors, not Inf
//   - Closed enumerations – strategies and placebo modes never fall through
//
// Quick workflow:
//
//	ds, _ := synth.Linear(10_000, 7, synth.WithBinaryTreatment(true))
//	est, _ := estimator.New(estimator.DefaultOptions())
//	baseline, _ := est.Estimate(ds)              // ≈ 10
//	ref, _ := refute.New(est, refute.WithSeed(7))
//	results, _ := ref.RefuteAll(ds, baseline)    // four Refutation records
//
// Causal-graph identification, persistence and concurrency are out of
// scope: the table lives in memory and every call is synchronous.
//
//	go get github.com/katalvlaran/lvcausal
package lvcausal
