package estimator_test

import (
	"testing"

	"github.com/katalvlaran/lvcausal/dataset"
	"github.com/katalvlaran/lvcausal/estimator"
)

// benchmarkEstimate runs Estimate on an n-row table whose instrument has
// `levels` distinct values (2 → Wald, >2 → Pearl ratio).
func benchmarkEstimate(b *testing.B, n, levels int) {
	z := make([]float64, n)
	t := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		z[i] = float64(i % levels)
		t[i] = 1 + z[i] + float64(i%7)/7
		y[i] = 10 * t[i]
	}
	ds, err := dataset.New(
		dataset.Column{Name: estimator.DefaultInstrument, Values: z},
		dataset.Column{Name: estimator.DefaultTreatment, Values: t},
		dataset.Column{Name: estimator.DefaultOutcome, Values: y},
	)
	if err != nil {
		b.Fatalf("dataset: %v", err)
	}
	est, err := estimator.New(estimator.DefaultOptions())
	if err != nil {
		b.Fatalf("estimator: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := est.Estimate(ds); err != nil {
			b.Fatalf("Estimate failed: %v", err)
		}
	}
}

// BenchmarkEstimate_Wald10k benchmarks the binary-instrument path on 10k rows.
func BenchmarkEstimate_Wald10k(b *testing.B) { benchmarkEstimate(b, 10_000, 2) }

// BenchmarkEstimate_PearlRatio10k benchmarks the continuous path on 10k rows.
func BenchmarkEstimate_PearlRatio10k(b *testing.B) { benchmarkEstimate(b, 10_000, 50) }
