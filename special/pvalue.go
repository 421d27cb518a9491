package special

import (
	"errors"
	"fmt"
	"math"
)

// Tiny is the smallest positive normal float64. P-values at or below it
// cannot be converted to a meaningful z-score.
const Tiny = 0x1p-1022

var (
	// ErrPrecision is returned when a p-value is too small to convert.
	ErrPrecision = errors.New("p-value too small for a significance computation")

	// ErrInvalidProbability is returned for p-values that are NaN, negative
	// or above 1.
	ErrInvalidProbability = errors.New("p-value must be in (0, 1]")
)

// SignificanceFromPValue returns the z-score whose upper-tail probability
// under a standard normal equals pvalue, i.e. -Φ⁻¹(pvalue).
func SignificanceFromPValue(pvalue float64) (float64, error) {
	if err := checkPValue(pvalue); err != nil {
		return 0, err
	}
	return -NormalQuantile(pvalue), nil
}

// SignificanceFromPValueVec converts every p-value. If any p-value is invalid
// no result is returned.
func SignificanceFromPValueVec(pvalues []float64) ([]float64, error) {
	for i, p := range pvalues {
		if err := checkPValue(p); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
	}

	z := make([]float64, len(pvalues))
	for i, p := range pvalues {
		z[i] = -NormalQuantile(p)
	}
	return z, nil
}

func checkPValue(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("p = %g: %w", p, ErrInvalidProbability)
	}
	if p <= Tiny {
		return fmt.Errorf("p = %g: %w", p, ErrPrecision)
	}
	return nil
}
