package idealcase

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gosignificance/counts"
	"github.com/sartorproj/gosignificance/special"
)

func TestSignificanceSingleCount(t *testing.T) {
	// P(X >= 1) = 1 - exp(-B)
	for _, b := range []float64{0.05, 0.1, 0.7} {
		want, err := special.SignificanceFromPValue(1 - math.Exp(-b))
		require.NoError(t, err)

		got, err := Significance(1, b)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-10, "B = %g", b)
	}
}

func TestSignificanceIncreasesWithCounts(t *testing.T) {
	b := 10.0
	prev := math.Inf(-1)
	for n := 1.0; n <= 40; n++ {
		z, err := Significance(n, b)
		require.NoError(t, err)
		assert.Greater(t, z, prev, "n = %g", n)
		prev = z
	}
}

func TestSignificanceDecreasesWithBackground(t *testing.T) {
	n := 20.0
	prev := math.Inf(1)
	for b := 1.0; b <= 30; b++ {
		z, err := Significance(n, b)
		require.NoError(t, err)
		assert.Less(t, z, prev, "B = %g", b)
		prev = z
	}
}

func TestSignificanceSign(t *testing.T) {
	z, err := Significance(25, 10)
	require.NoError(t, err)
	assert.Greater(t, z, 3.0)

	z, err = Significance(2, 10)
	require.NoError(t, err)
	assert.Less(t, z, 0.0)

	// Zero counts can never be an excess
	z, err = Significance(0, 10)
	require.NoError(t, err)
	assert.True(t, math.IsInf(z, -1))

	z, err = Significance(0, 0.5)
	require.NoError(t, err)
	assert.True(t, math.IsInf(z, -1))

	z, err = Significance(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, z)
}

func TestSignificanceSignAtExpectation(t *testing.T) {
	// P(X >= n) can exceed 0.5 at or just above the mean; the sign still
	// follows the observation.
	tests := []struct {
		n, b float64
	}{
		{3, 3},
		{10, 10},
		{4, 3.9},
		{20, 19.5},
	}

	for _, tt := range tests {
		z, err := Significance(tt.n, tt.b)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, z, 0.0, "n = %g, B = %g", tt.n, tt.b)
	}

	// Magnitude is unchanged: P(X >= 3 | 3) = 0.5768
	z, err := Significance(3, 3)
	require.NoError(t, err)
	raw, err := special.SignificanceFromPValue(special.PoissonSurvival(3, 3))
	require.NoError(t, err)
	assert.Less(t, raw, 0.0)
	assert.InDelta(t, -raw, z, 1e-12)

	z, err = Significance(2.9, 3)
	require.NoError(t, err)
	assert.Less(t, z, 0.0)
}

func TestSignificanceVecBroadcast(t *testing.T) {
	n := []float64{12, 18, 25}
	got, err := SignificanceVec(n, []float64{10})
	require.NoError(t, err)
	require.Len(t, got, len(n))

	for i := range n {
		want, err := Significance(n[i], 10)
		require.NoError(t, err)
		assert.Equal(t, want, got[i])
	}

	_, err = SignificanceVec(n, []float64{10, 11})
	assert.True(t, errors.Is(err, counts.ErrSizeMismatch))
}

func TestSignificanceErrors(t *testing.T) {
	_, err := Significance(100, 0.01)
	assert.True(t, errors.Is(err, special.ErrPrecision))

	_, err = Significance(5, -1)
	assert.True(t, errors.Is(err, special.ErrInvalidParameter))

	_, err = SignificanceVec([]float64{5, -1}, []float64{3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, special.ErrInvalidParameter))
	assert.Contains(t, err.Error(), "element 1")
}

func TestFiveSigmaThreshold(t *testing.T) {
	tests := []struct {
		efficiency Efficiency
		b          float64
		want       float64
	}{
		{Efficiency50, 100, 4.053 + 50.38},
		{Efficiency90, 100, 7.391 + 63.56},
		{Efficiency99, 100, 11.090 + 74.15},
		{Efficiency90, 0, 7.391},
	}

	for _, tt := range tests {
		got, err := FiveSigmaThreshold(tt.b, tt.efficiency)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-9)
	}
}

func TestFiveSigmaThresholdIncreasing(t *testing.T) {
	backgrounds := []float64{0, 0.5, 1, 10, 100, 1e4}
	for _, eff := range []Efficiency{Efficiency50, Efficiency90, Efficiency99} {
		out, err := FiveSigmaThresholdVec(backgrounds, eff)
		require.NoError(t, err)
		for i := 1; i < len(out); i++ {
			assert.Greater(t, out[i], out[i-1], "efficiency %d", eff)
		}
	}
}

func TestFiveSigmaThresholdUnsupported(t *testing.T) {
	for _, eff := range []Efficiency{0, 49, 95, 100, -50} {
		_, err := FiveSigmaThreshold(10, eff)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnsupportedEfficiency))
	}

	_, err := FiveSigmaThreshold(-1, Efficiency50)
	assert.True(t, errors.Is(err, special.ErrInvalidParameter))
}
