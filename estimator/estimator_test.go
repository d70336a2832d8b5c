package estimator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcausal/dataset"
	"github.com/katalvlaran/lvcausal/estimator"
)

const (
	beta = 10.0
	tol  = 1e-9
)

// binaryLinear returns noiseless confounded data with a {0,1} instrument:
//
//	z = i mod 2, u cycles {-1,0,1} identically inside each z-group,
//	t = 0.5 + 2z + u, y = β·t + 4u.
//
// The confounder u biases a naive t→y regression but has equal means in
// both instrument groups, so the Wald ratio is exactly β.
func binaryLinear(t *testing.T, n int) *dataset.Dataset {
	t.Helper()
	require.Zero(t, n%6, "n must be a multiple of 6 to balance u across groups")

	z := make([]float64, n)
	tr := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		z[i] = float64(i % 2)
		u := float64((i/2)%3) - 1
		tr[i] = 0.5 + 2*z[i] + u
		y[i] = beta*tr[i] + 4*u
	}

	ds, err := dataset.New(
		dataset.Column{Name: estimator.DefaultInstrument, Values: z},
		dataset.Column{Name: estimator.DefaultTreatment, Values: tr},
		dataset.Column{Name: estimator.DefaultOutcome, Values: y},
	)
	require.NoError(t, err)

	return ds
}

// continuousLinear returns noiseless data with a 5-level instrument where
// every level carries one u=+1 and one u=−1 row, so Σu·z = 0 and the Pearl
// ratio is exactly β.
func continuousLinear(t *testing.T) *dataset.Dataset {
	t.Helper()

	var z, tr, y []float64
	for v := 1; v <= 5; v++ {
		for _, u := range []float64{1, -1} {
			zi := float64(v)
			ti := 0.5*zi + u + 1
			z = append(z, zi)
			tr = append(tr, ti)
			y = append(y, beta*ti+2*u)
		}
	}

	ds, err := dataset.New(
		dataset.Column{Name: estimator.DefaultInstrument, Values: z},
		dataset.Column{Name: estimator.DefaultTreatment, Values: tr},
		dataset.Column{Name: estimator.DefaultOutcome, Values: y},
	)
	require.NoError(t, err)

	return ds
}

func newDefault(t *testing.T) *estimator.Estimator {
	t.Helper()
	est, err := estimator.New(estimator.DefaultOptions())
	require.NoError(t, err)

	return est
}

// TestEstimate_WaldRecoversBeta checks exact recovery on a binary instrument.
func TestEstimate_WaldRecoversBeta(t *testing.T) {
	ds := binaryLinear(t, 600)

	e, err := newDefault(t).Estimate(ds)
	require.NoError(t, err)
	assert.InDelta(t, beta, e.Value(), tol)
	assert.Equal(t, estimator.MethodWald, e.Method())
	assert.Equal(t, 600, e.Rows())
	assert.Equal(t, estimator.DefaultTreatment, e.Treatment())
	assert.Equal(t, estimator.DefaultOutcome, e.Outcome())
	assert.Equal(t, estimator.DefaultInstrument, e.Instrument())
}

// TestEstimate_PearlRatioRecoversBeta checks exact recovery on a continuous instrument.
func TestEstimate_PearlRatioRecoversBeta(t *testing.T) {
	ds := continuousLinear(t)

	e, err := newDefault(t).Estimate(ds)
	require.NoError(t, err)
	assert.InDelta(t, beta, e.Value(), tol)
	assert.Equal(t, estimator.MethodPearlRatio, e.Method())
}

// TestEstimate_ForcedMethods verifies Options.Method overrides dispatch.
func TestEstimate_ForcedMethods(t *testing.T) {
	opts := estimator.DefaultOptions()
	opts.Method = estimator.MethodPearlRatio
	est, err := estimator.New(opts)
	require.NoError(t, err)

	e, err := est.Estimate(continuousLinear(t))
	require.NoError(t, err)
	assert.Equal(t, estimator.MethodPearlRatio, e.Method())

	opts.Method = estimator.MethodWald
	est, err = estimator.New(opts)
	require.NoError(t, err)

	_, err = est.Estimate(continuousLinear(t))
	require.ErrorIs(t, err, estimator.ErrInvalidParameter, "Wald needs ≤ 2 instrument levels")
}

// TestEstimate_IgnoresExtraColumns ensures covariates do not move the estimate.
func TestEstimate_IgnoresExtraColumns(t *testing.T) {
	ds := binaryLinear(t, 60)
	base, err := newDefault(t).Estimate(ds)
	require.NoError(t, err)

	noise := make([]float64, ds.Len())
	for i := range noise {
		noise[i] = float64(i*7%11) - 5
	}
	aug, err := ds.WithColumn("w_random", noise)
	require.NoError(t, err)

	e, err := newDefault(t).Estimate(aug)
	require.NoError(t, err)
	assert.Equal(t, base.Value(), e.Value())
}

// TestEstimate_Degenerate covers every degenerate-instrument path.
func TestEstimate_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		z    []float64
		t    []float64
	}{
		{"single level", []float64{1, 1, 1}, []float64{0, 1, 2}},
		{"no first stage", []float64{0, 1, 0, 1}, []float64{1, 1, 1, 1}},
		{"zero tz dot", []float64{1, 2, 3}, []float64{3, 0, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := dataset.New(
				dataset.Column{Name: estimator.DefaultInstrument, Values: tt.z},
				dataset.Column{Name: estimator.DefaultTreatment, Values: tt.t},
				dataset.Column{Name: estimator.DefaultOutcome, Values: make([]float64, len(tt.z))},
			)
			require.NoError(t, err)

			_, err = newDefault(t).Estimate(ds)
			require.ErrorIs(t, err, estimator.ErrDegenerateInstrument)
		})
	}
}

// TestEstimate_EpsilonWidensDegenerateBand checks that Epsilon is honoured.
func TestEstimate_EpsilonWidensDegenerateBand(t *testing.T) {
	ds, err := dataset.New(
		dataset.Column{Name: estimator.DefaultInstrument, Values: []float64{0, 1}},
		dataset.Column{Name: estimator.DefaultTreatment, Values: []float64{0, 1e-6}},
		dataset.Column{Name: estimator.DefaultOutcome, Values: []float64{0, 1}},
	)
	require.NoError(t, err)

	_, err = newDefault(t).Estimate(ds)
	require.NoError(t, err, "1e-6 is above the default epsilon")

	opts := estimator.DefaultOptions()
	opts.Epsilon = 1e-3
	est, err := estimator.New(opts)
	require.NoError(t, err)
	_, err = est.Estimate(ds)
	require.ErrorIs(t, err, estimator.ErrDegenerateInstrument)
}

// TestEstimate_MissingAndEmpty covers the structural failures.
func TestEstimate_MissingAndEmpty(t *testing.T) {
	est := newDefault(t)

	ds, err := dataset.New(
		dataset.Column{Name: estimator.DefaultInstrument, Values: []float64{0, 1}},
		dataset.Column{Name: estimator.DefaultOutcome, Values: []float64{0, 1}},
	)
	require.NoError(t, err)
	_, err = est.Estimate(ds)
	require.ErrorIs(t, err, estimator.ErrMissingColumn)
	require.ErrorIs(t, err, dataset.ErrMissingColumn, "alias must match the dataset sentinel")

	empty, err := dataset.New(
		dataset.Column{Name: estimator.DefaultInstrument},
		dataset.Column{Name: estimator.DefaultTreatment},
		dataset.Column{Name: estimator.DefaultOutcome},
	)
	require.NoError(t, err)
	_, err = est.Estimate(empty)
	require.ErrorIs(t, err, estimator.ErrEmptyDataset)

	_, err = est.Estimate(nil)
	require.ErrorIs(t, err, estimator.ErrInvalidParameter)
}

// TestNew_InvalidOptions is a table over every option validation branch.
func TestNew_InvalidOptions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*estimator.Options)
	}{
		{"empty treatment", func(o *estimator.Options) { o.Treatment = "" }},
		{"empty outcome", func(o *estimator.Options) { o.Outcome = "" }},
		{"empty instrument", func(o *estimator.Options) { o.Instrument = "" }},
		{"treatment is outcome", func(o *estimator.Options) { o.Treatment = o.Outcome }},
		{"instrument is treatment", func(o *estimator.Options) { o.Instrument = o.Treatment }},
		{"negative epsilon", func(o *estimator.Options) { o.Epsilon = -1 }},
		{"unknown method", func(o *estimator.Options) { o.Method = estimator.Method(42) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := estimator.DefaultOptions()
			tt.mutate(&opts)
			_, err := estimator.New(opts)
			require.ErrorIs(t, err, estimator.ErrInvalidParameter)
		})
	}
}

// TestWithTreatment points a copy at another column and leaves the original alone.
func TestWithTreatment(t *testing.T) {
	est := newDefault(t)

	placebo, err := est.WithTreatment("placebo")
	require.NoError(t, err)
	assert.Equal(t, "placebo", placebo.Options().Treatment)
	assert.Equal(t, estimator.DefaultTreatment, est.Options().Treatment)

	_, err = est.WithTreatment(estimator.DefaultOutcome)
	require.ErrorIs(t, err, estimator.ErrInvalidParameter)
}

// TestEstimateEffect exercises the one-call form with and without an override.
func TestEstimateEffect(t *testing.T) {
	ds := binaryLinear(t, 60)

	e, err := estimator.EstimateEffect(ds, "")
	require.NoError(t, err)
	assert.InDelta(t, beta, e.Value(), tol)

	_, err = estimator.EstimateEffect(ds, "dose")
	require.ErrorIs(t, err, estimator.ErrMissingColumn)
}

// TestKernels exercises the exported raw-column kernels.
func TestKernels(t *testing.T) {
	w, err := estimator.Wald([]float64{0, 10, 0, 10}, []float64{0, 1, 0, 1}, []float64{0, 1, 0, 1})
	require.NoError(t, err)
	assert.InDelta(t, 10.0, w, tol)

	p, err := estimator.PearlRatio([]float64{2, 4, 6}, []float64{1, 2, 3}, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, p, tol)

	_, err = estimator.Wald([]float64{1}, []float64{1, 2}, []float64{1, 2})
	require.ErrorIs(t, err, estimator.ErrInvalidParameter)
	_, err = estimator.PearlRatio(nil, nil, nil)
	require.ErrorIs(t, err, estimator.ErrEmptyDataset)
}

// TestMethodString pins the names used in reports and config files.
func TestMethodString(t *testing.T) {
	assert.Equal(t, "auto", estimator.MethodAuto.String())
	assert.Equal(t, "wald", estimator.MethodWald.String())
	assert.Equal(t, "pearl-ratio", estimator.MethodPearlRatio.String())
	assert.Equal(t, "method(9)", estimator.Method(9).String())
}

// TestParseMethod round-trips every name and rejects the rest.
func TestParseMethod(t *testing.T) {
	for _, m := range []estimator.Method{estimator.MethodAuto, estimator.MethodWald, estimator.MethodPearlRatio} {
		got, err := estimator.ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := estimator.ParseMethod("")
	require.NoError(t, err)
	assert.Equal(t, estimator.MethodAuto, got)

	_, err = estimator.ParseMethod("2sls")
	assert.ErrorIs(t, err, estimator.ErrInvalidParameter)
}
