package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcausal/stats"
)

const tol = 1e-12

func TestMean(t *testing.T) {
	m, err := stats.Mean([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 2.5, m, tol)

	_, err = stats.Mean(nil)
	require.ErrorIs(t, err, stats.ErrEmpty)
}

func TestDot(t *testing.T) {
	d, err := stats.Dot([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	assert.InDelta(t, 32.0, d, tol)

	_, err = stats.Dot([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, stats.ErrLengthMismatch)
	_, err = stats.Dot(nil, nil)
	require.ErrorIs(t, err, stats.ErrEmpty)
}

func TestStdDev(t *testing.T) {
	s, err := stats.StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(32.0/7.0), s, tol)

	s, err = stats.StdDev([]float64{3})
	require.NoError(t, err)
	assert.Zero(t, s)

	_, err = stats.StdDev(nil)
	require.ErrorIs(t, err, stats.ErrEmpty)
}

// TestDistinct checks sorting and the early-exit limit contract.
func TestDistinct(t *testing.T) {
	assert.Equal(t, []float64{0, 1}, stats.Distinct([]float64{1, 0, 1, 1, 0}, 0))
	assert.Equal(t, []float64{7}, stats.Distinct([]float64{7, 7, 7}, 2))

	capped := stats.Distinct([]float64{5, 4, 3, 2, 1}, 2)
	assert.Len(t, capped, 3, "limit+1 values once the limit is exceeded")
	assert.Equal(t, []float64{3, 4, 5}, capped)

	assert.Empty(t, stats.Distinct(nil, 2))
}

func TestMeanWhere(t *testing.T) {
	x := []float64{1, 11, 10, 12}
	key := []float64{0, 1, 0, 1}

	m, n, err := stats.MeanWhere(x, key, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.InDelta(t, 11.5, m, tol)

	_, _, err = stats.MeanWhere(x, key, 2)
	require.ErrorIs(t, err, stats.ErrEmpty)
	_, _, err = stats.MeanWhere(x, key[:2], 1)
	require.ErrorIs(t, err, stats.ErrLengthMismatch)
}
