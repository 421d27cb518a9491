package special

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignificanceFromPValue(t *testing.T) {
	tests := []struct {
		p    float64
		want float64
	}{
		{0.5, 0},
		{0.15865525393145707, 1},
		{0.0013498980316301035, 3},
		{2.866515718791939e-07, 5},
		{0.8413447460685429, -1},
	}

	for _, tt := range tests {
		z, err := SignificanceFromPValue(tt.p)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, z, 1e-6, "p = %g", tt.p)
	}
}

func TestSignificanceFromPValuePrecisionFloor(t *testing.T) {
	for _, p := range []float64{Tiny, Tiny / 2, math.SmallestNonzeroFloat64, 0} {
		_, err := SignificanceFromPValue(p)
		require.Error(t, err, "p = %g", p)
		assert.True(t, errors.Is(err, ErrPrecision), "p = %g", p)
	}

	// Just above the floor is still representable
	z, err := SignificanceFromPValue(Tiny * 4)
	require.NoError(t, err)
	assert.False(t, math.IsInf(z, 0))
	assert.Greater(t, z, 37.0)
}

func TestSignificanceFromPValueInvalid(t *testing.T) {
	for _, p := range []float64{1.5, math.NaN(), math.Inf(1), -0.1, math.Inf(-1)} {
		_, err := SignificanceFromPValue(p)
		assert.True(t, errors.Is(err, ErrInvalidProbability), "p = %g", p)
		assert.False(t, errors.Is(err, ErrPrecision), "p = %g", p)
	}

	_, err := SignificanceFromPValueVec([]float64{0.5, -1e-300})
	assert.True(t, errors.Is(err, ErrInvalidProbability))

	z, err := SignificanceFromPValue(1)
	require.NoError(t, err)
	assert.True(t, math.IsInf(z, -1))
}

func TestSignificanceFromPValueVec(t *testing.T) {
	z, err := SignificanceFromPValueVec([]float64{0.5, 0.15865525393145707})
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{0, 1}, z, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
		t.Errorf("unexpected z-scores (-want +got):\n%s", diff)
	}

	// One bad element fails the whole batch
	z, err = SignificanceFromPValueVec([]float64{0.5, 0})
	assert.Nil(t, z)
	assert.True(t, errors.Is(err, ErrPrecision))
	assert.Contains(t, err.Error(), "element 1")
}

func TestXLogY(t *testing.T) {
	assert.Equal(t, 0.0, XLogY(0, 0))
	assert.Equal(t, 0.0, XLogY(0, 5))
	assert.InDelta(t, 2.0, XLogY(2, math.E), 1e-15)
	assert.True(t, math.IsInf(XLogY(1, 0), -1))
	assert.True(t, math.IsNaN(XLogY(1, -1)))
}

func TestXLogYVec(t *testing.T) {
	got := XLogYVec([]float64{0, 2, 3}, []float64{0, math.E, 1})
	if diff := cmp.Diff([]float64{0, 2, 0}, got, cmpopts.EquateApprox(0, 1e-15)); diff != "" {
		t.Errorf("XLogYVec mismatch (-want +got):\n%s", diff)
	}

	// Elementwise semantics match the scalar version
	x := []float64{0, 1.5, 7}
	y := []float64{3, 0.2, 11}
	vec := XLogYVec(x, y)
	for i := range x {
		assert.Equal(t, XLogY(x[i], y[i]), vec[i])
	}

	assert.Panics(t, func() { XLogYVec([]float64{1}, []float64{1, 2}) })
}

func TestPoissonSurvivalMatchesReference(t *testing.T) {
	tests := []struct {
		n, mu float64
	}{
		{1, 0.5},
		{5, 2.3},
		{10, 10},
		{3.2, 1.5},
		{30, 20},
		{50, 40},
		{0, 3},
	}

	for _, tt := range tests {
		fast := PoissonSurvival(tt.n, tt.mu)
		slow := PoissonSurvivalReference(tt.n, tt.mu)
		assert.InDelta(t, slow, fast, 1e-12, "n = %g, mu = %g", tt.n, tt.mu)
		assert.False(t, math.IsNaN(fast))
	}
}

func TestPoissonSurvivalClosedForm(t *testing.T) {
	// P(X >= 1) = 1 - exp(-mu)
	for _, mu := range []float64{0.01, 0.5, 3, 12} {
		assert.InDelta(t, 1-math.Exp(-mu), PoissonSurvival(1, mu), 1e-14)
	}

	assert.Equal(t, 1.0, PoissonSurvival(0, 4))
	assert.Equal(t, 1.0, PoissonSurvival(-2, 4))
	assert.Equal(t, 0.0, PoissonSurvival(3, 0))

	// Non-integer n rounds up: P(X >= 2.5) == P(X >= 3)
	assert.Equal(t, PoissonSurvival(3, 2), PoissonSurvival(2.5, 2))
}

func TestRegIncBeta(t *testing.T) {
	// I_x(1, 1) = x and I_x(a, 1) = x^a
	for _, x := range []float64{0, 0.1, 0.5, 0.9, 1} {
		v, err := RegIncBeta(1, 1, x)
		require.NoError(t, err)
		assert.InDelta(t, x, v, 1e-14)

		v, err = RegIncBeta(3, 1, x)
		require.NoError(t, err)
		assert.InDelta(t, math.Pow(x, 3), v, 1e-14)
	}

	// Symmetry: I_0.5(a, a) = 0.5
	v, err := RegIncBeta(7.5, 7.5, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, v, 1e-12)
}

func TestRegIncBetaTails(t *testing.T) {
	tests := []struct {
		a, b, x float64
	}{
		{140, 101, 1 / 2.2},
		{1000, 1000, 0.01},
		{1000, 1000, 0.99},
		{0.5, 5000, 0.999},
		{2000, 3, 1e-6},
		{1e-3, 1e5, 1e-12},
	}

	for _, tt := range tests {
		v, err := RegIncBeta(tt.a, tt.b, tt.x)
		require.NoError(t, err)
		assert.False(t, math.IsNaN(v), "I_%g(%g, %g) is NaN", tt.x, tt.a, tt.b)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestRegIncBetaDomain(t *testing.T) {
	for _, args := range [][3]float64{{0, 1, 0.5}, {1, -1, 0.5}, {1, 1, 1.5}, {1, 1, -0.1}, {math.NaN(), 1, 0.5}} {
		_, err := RegIncBeta(args[0], args[1], args[2])
		assert.True(t, errors.Is(err, ErrInvalidParameter), "args %v", args)
	}
}

func TestClipNoise(t *testing.T) {
	v, err := ClipNoise("B0", 3.5)
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)

	v, err = ClipNoise("B0", -0.005)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	for _, bad := range []float64{-0.01, -1, math.NaN()} {
		_, err = ClipNoise("TS", bad)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvariant))
		assert.Contains(t, err.Error(), "TS")
	}
}

func TestChecks(t *testing.T) {
	assert.NoError(t, CheckNonNegative("n", 0))
	assert.True(t, errors.Is(CheckNonNegative("n", -1), ErrInvalidParameter))
	assert.True(t, errors.Is(CheckNonNegative("n", math.NaN()), ErrInvalidParameter))

	assert.NoError(t, CheckPositive("alpha", 0.1))
	assert.True(t, errors.Is(CheckPositive("alpha", 0), ErrInvalidParameter))
}
