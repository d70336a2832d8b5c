package refute_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcausal/refute"
)

func TestParseStrategy(t *testing.T) {
	for _, s := range refute.Strategies() {
		got, err := refute.ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	for _, bad := range []string{"", "Subset", "placebo", "permute", "random_common_cause"} {
		_, err := refute.ParseStrategy(bad)
		assert.ErrorIs(t, err, refute.ErrInvalidParameter, "input %q", bad)
	}
	assert.Equal(t, "strategy(9)", refute.Strategy(9).String())
}

// TestPlaceboMode_String pins the mode names; the only way to pick a mode
// by name is through ParseStrategy, which never falls through to noise.
func TestPlaceboMode_String(t *testing.T) {
	assert.Equal(t, "permute", refute.Permute.String())
	assert.Equal(t, "noise", refute.GaussianNoise.String())
	assert.Equal(t, "placebo-mode(5)", refute.PlaceboMode(5).String())

	for _, bad := range []string{"placebo-permutate", "placebo-Permute", "placebo-gaussian", "placebo-"} {
		_, err := refute.ParseStrategy(bad)
		assert.ErrorIs(t, err, refute.ErrInvalidParameter, "input %q", bad)
	}
}

func TestStrategy_ExpectsZero(t *testing.T) {
	assert.False(t, refute.RandomCommonCause.ExpectsZero())
	assert.True(t, refute.PlaceboPermute.ExpectsZero())
	assert.True(t, refute.PlaceboNoise.ExpectsZero())
	assert.False(t, refute.Subset.ExpectsZero())
}

// TestRefutation_JSON checks strategies travel as names.
func TestRefutation_JSON(t *testing.T) {
	in := refute.Refutation{Strategy: refute.PlaceboNoise, Baseline: 10, NewEffect: 0.5, StdDev: 1, Simulations: 3}
	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"strategy":"placebo-noise","baseline":10,"new_effect":0.5,"std_dev":1,"simulations":3}`,
		string(raw))

	var out refute.Refutation
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)

	err = json.Unmarshal([]byte(`{"strategy":"bogus"}`), &out)
	assert.ErrorIs(t, err, refute.ErrInvalidParameter)

	_, err = json.Marshal(refute.Refutation{Strategy: refute.Strategy(-2)})
	assert.Error(t, err)
}

func TestRefutation_Deltas(t *testing.T) {
	r := refute.Refutation{Strategy: refute.Subset, Baseline: -10, NewEffect: -9}
	assert.InDelta(t, 1.0, r.Delta(), 1e-12)
	assert.InDelta(t, 0.1, r.RelativeDelta(), 1e-12)
	assert.True(t, r.Within(0.1))
	assert.False(t, r.Within(0.05))

	zero := refute.Refutation{}
	assert.Equal(t, 0.0, zero.RelativeDelta())

	up := refute.Refutation{NewEffect: 2}
	assert.True(t, math.IsInf(up.RelativeDelta(), 1))
	down := refute.Refutation{NewEffect: -2}
	assert.True(t, math.IsInf(down.RelativeDelta(), -1))
}

func TestRefutation_Passed(t *testing.T) {
	cases := []struct {
		name string
		r    refute.Refutation
		tol  float64
		want bool
	}{
		{"common cause unchanged", refute.Refutation{Strategy: refute.RandomCommonCause, Baseline: 10, NewEffect: 10}, 0.05, true},
		{"subset drifted", refute.Refutation{Strategy: refute.Subset, Baseline: 10, NewEffect: 12}, 0.05, false},
		{"placebo near zero", refute.Refutation{Strategy: refute.PlaceboPermute, Baseline: 10, NewEffect: -0.3}, 0.05, true},
		{"placebo kept effect", refute.Refutation{Strategy: refute.PlaceboNoise, Baseline: 10, NewEffect: 9}, 0.05, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.r.Passed(tc.tol))
		})
	}
}

func TestRefutation_String(t *testing.T) {
	r := refute.Refutation{Strategy: refute.Subset, Baseline: 10, NewEffect: 9.5, StdDev: 0.25, Simulations: 4}
	assert.Equal(t, "subset: estimated 10, new 9.5 (sd 0.25, 4 sims)", r.String())
}
