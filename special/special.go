// Package special provides special-function adapters and numerical guards.
package special

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	// ErrInvalidParameter is returned for inputs outside an estimator's domain.
	ErrInvalidParameter = errors.New("parameter out of domain")

	// ErrInvariant is returned when a derived quantity such as a latent
	// background or a test statistic is negative beyond numerical noise.
	// It signals a defect, not a bad input.
	ErrInvariant = errors.New("invariant violated")
)

// NoiseFloor is the most negative value a non-negative derived quantity may
// take from rounding alone. Values in (NoiseFloor, 0) are clipped to 0.
const NoiseFloor = -0.01

// ClipNoise enforces non-negativity of a derived quantity.
func ClipNoise(name string, v float64) (float64, error) {
	if math.IsNaN(v) || v <= NoiseFloor {
		return 0, fmt.Errorf("%s = %g: %w", name, v, ErrInvariant)
	}
	if v < 0 {
		return 0, nil
	}
	return v, nil
}

// CheckNonNegative returns ErrInvalidParameter unless v >= 0.
func CheckNonNegative(name string, v float64) error {
	if math.IsNaN(v) || v < 0 {
		return fmt.Errorf("%s = %g must be >= 0: %w", name, v, ErrInvalidParameter)
	}
	return nil
}

// CheckPositive returns ErrInvalidParameter unless v > 0.
func CheckPositive(name string, v float64) error {
	if math.IsNaN(v) || v <= 0 {
		return fmt.Errorf("%s = %g must be > 0: %w", name, v, ErrInvalidParameter)
	}
	return nil
}

// PoissonSurvival returns P(X >= n) for X ~ Poisson(mu). Non-integer n is
// rounded up, so the result is the probability of observing at least n
// counts. mu must be >= 0.
func PoissonSurvival(n, mu float64) float64 {
	k := math.Ceil(n)
	if k <= 0 {
		return 1
	}
	if mu == 0 {
		return 0
	}
	// P(X >= k) equals the regularized lower incomplete gamma P(k, mu).
	return mathext.GammaIncReg(k, mu)
}

// PoissonSurvivalReference computes the same quantity as PoissonSurvival by
// summing the probability mass function. It is slow and loses precision in
// the far tail; it exists to validate the fast path.
func PoissonSurvivalReference(n, mu float64) float64 {
	k := math.Ceil(n)
	if k <= 0 {
		return 1
	}
	if mu == 0 {
		return 0
	}

	dist := distuv.Poisson{Lambda: mu}
	cdf := 0.0
	for j := 0.0; j < k; j++ {
		cdf += dist.Prob(j)
	}
	return math.Max(0, 1-cdf)
}

// NormalQuantile returns the inverse CDF of the standard normal distribution.
// p must be in [0, 1].
func NormalQuantile(p float64) float64 {
	switch p {
	case 0:
		return math.Inf(-1)
	case 1:
		return math.Inf(1)
	}
	return distuv.UnitNormal.Quantile(p)
}

// RegIncBeta returns the regularized incomplete beta function I_x(a, b).
// The Cephes algorithm behind it stays finite close to x = 0 and x = 1,
// where continued-fraction implementations commonly return NaN.
func RegIncBeta(a, b, x float64) (float64, error) {
	if math.IsNaN(a) || math.IsNaN(b) || a <= 0 || b <= 0 {
		return 0, fmt.Errorf("incomplete beta with a = %g, b = %g: %w", a, b, ErrInvalidParameter)
	}
	if math.IsNaN(x) || x < 0 || x > 1 {
		return 0, fmt.Errorf("incomplete beta at x = %g: %w", x, ErrInvalidParameter)
	}
	return mathext.RegIncBeta(a, b, x), nil
}
