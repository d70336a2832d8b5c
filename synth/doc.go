// Package synth generates reproducible linear datasets with a known causal
// effect, for tests, examples and the lvcausal CLI.
//
// Model (per row, k common causes):
//
//	W_j ~ N(0,1)                     j = 0..k-1
//	Z0  ~ Bernoulli(0.5) | U(0,1)    instrument, independent of W
//	T*  = s·Z0 + Σ_j W_j + N(0,1)    latent treatment
//	v0  = T*                         (continuous)
//	    | 1{T* > s/2}                (binary)
//	y   = β·v0 + Σ_j W_j + σ·N(0,1)
//
// The W_j confound v0 and y, so a naive regression is biased while an IV
// estimate through Z0 recovers β.
//
// Determinism: Linear(n, seed) is a pure function of (n, seed, options);
// pass WithRand to draw from a caller-owned stream instead.
package synth
