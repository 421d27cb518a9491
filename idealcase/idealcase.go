// Package idealcase implements significances for backgrounds without uncertainty.
package idealcase

import (
	"errors"
	"fmt"
	"math"

	"github.com/sartorproj/gosignificance/counts"
	"github.com/sartorproj/gosignificance/special"
)

// ErrUnsupportedEfficiency is returned for detection efficiencies without a
// tabulated fit.
var ErrUnsupportedEfficiency = errors.New("detection efficiency must be one of 50, 90, 99")

// Efficiency is a detection efficiency in percent.
type Efficiency int

// Supported detection efficiencies.
const (
	Efficiency50 Efficiency = 50
	Efficiency90 Efficiency = 90
	Efficiency99 Efficiency = 99
)

// Fit coefficients of the 5σ threshold, indexed like efficiencies.
var (
	efficiencies = [...]Efficiency{Efficiency50, Efficiency90, Efficiency99}
	thresholdA   = [...]float64{4.053, 7.391, 11.090}
	thresholdB   = [...]float64{5.038, 6.356, 7.415}
)

func (e Efficiency) coefficients() (float64, float64, error) {
	for i, known := range efficiencies {
		if e == known {
			return thresholdA[i], thresholdB[i], nil
		}
	}
	return 0, 0, fmt.Errorf("efficiency %d: %w", int(e), ErrUnsupportedEfficiency)
}

// Significance returns the z-score of observing n counts when b are expected.
// The sign is positive when n >= b. Zero counts over a positive background
// give -Inf, since P(X >= 0) = 1.
func Significance(n, b float64) (float64, error) {
	z, err := SignificanceVec([]float64{n}, []float64{b})
	if err != nil {
		return 0, err
	}
	return z[0], nil
}

// SignificanceVec returns one z-score per element of n. b must have one
// element or len(n) elements.
func SignificanceVec(n, b []float64) ([]float64, error) {
	bb, err := counts.Broadcast("B", b, len(n))
	if err != nil {
		return nil, err
	}

	pvalues := make([]float64, len(n))
	for i := range n {
		if err := special.CheckNonNegative("n", n[i]); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		if err := special.CheckNonNegative("B", bb[i]); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		pvalues[i] = special.PoissonSurvival(n[i], bb[i])
	}

	z, err := special.SignificanceFromPValueVec(pvalues)
	if err != nil {
		return nil, err
	}

	for i := range z {
		switch {
		case n[i] == 0 && bb[i] == 0:
			// Nothing expected, nothing observed.
			z[i] = 0
		case n[i] >= bb[i]:
			z[i] = math.Abs(z[i])
		default:
			z[i] = -math.Abs(z[i])
		}
	}
	return z, nil
}

// FiveSigmaThreshold returns the counts a source must generate on top of the
// background b to be detected at 5σ with the given efficiency.
func FiveSigmaThreshold(b float64, efficiency Efficiency) (float64, error) {
	out, err := FiveSigmaThresholdVec([]float64{b}, efficiency)
	if err != nil {
		return 0, err
	}
	return out[0], nil
}

// FiveSigmaThresholdVec applies FiveSigmaThreshold to every background.
func FiveSigmaThresholdVec(b []float64, efficiency Efficiency) ([]float64, error) {
	ca, cb, err := efficiency.coefficients()
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(b))
	for i, v := range b {
		if err := special.CheckNonNegative("B", v); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = ca + cb*math.Sqrt(v)
	}
	return out, nil
}
