// Package refute sanity-checks an instrumental-variable estimate by
// re-estimating on perturbed copies of the data.
//
// 🚀 Strategies
//
//	RandomCommonCause — add an independent N(0,1) covariate.
//	                    A valid IV estimate should not move.
//	PlaceboPermute    — replace the treatment by a permutation of itself
//	                    (the instrument is permuted alongside it, and
//	                    centred on the Pearl-ratio path, so only the link
//	                    to the outcome is broken). Expect ≈ 0.
//	PlaceboNoise      — replace the treatment by N(0,1) noise. Expect ≈ 0,
//	                    but the first stage is then pure noise and the IV
//	                    ratio heavy-tailed; prefer PlaceboPermute for gating.
//	Subset            — re-estimate on a random fraction of the rows.
//	                    A stable estimate should not move.
//
// Every strategy runs Simulations times and reports the mean (and spread)
// of the simulated effects next to the baseline. Neither the input dataset
// nor the baseline estimate is ever modified: each simulation derives a new
// table through the dataset package's copy-on-write API.
//
// ⚙️ Usage:
//
//	ref, err := refute.New(est,
//	  refute.WithSeed(7),          // reproducible: every call restarts the stream
//	  refute.WithSimulations(100),
//	  refute.WithSubsetFraction(0.8),
//	)
//	res, err := ref.Refute(ds, baseline, refute.PlaceboPermute)
//	fmt.Println(res.NewEffect, res.Passed(0.1))
//
// Randomness is explicit: WithSeed (default seed 1) or WithRand. There is
// no package-level generator.
package refute
