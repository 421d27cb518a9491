// Package poissongauss implements significances for Gaussian background estimates.
package poissongauss

import (
	"fmt"
	"math"

	"github.com/sartorproj/gosignificance/counts"
	"github.com/sartorproj/gosignificance/special"
	"github.com/sartorproj/gosignificance/zbi"
)

// BackgroundMLE returns the maximum likelihood estimate of the true background
// under the null hypothesis, for n observed counts and a background estimate
// b with standard deviation sigma.
func BackgroundMLE(n, b, sigma float64) (float64, error) {
	s2 := sigma * sigma
	b0 := 0.5 * (b - s2 + math.Sqrt(b*b-2*b*s2+4*n*s2+s2*s2))

	// Rounding can push b0 slightly below zero.
	return special.ClipNoise("B0_mle", b0)
}

// TestStatistic returns twice the log-likelihood ratio between the hypotheses
// with and without a source.
func TestStatistic(n, b, sigma float64) (float64, error) {
	if err := validate(n, b, sigma); err != nil {
		return 0, err
	}

	var ts float64
	if sigma == 0 {
		// The Gaussian constraint pins B0 to b.
		ts = 2 * (special.XLogY(n, n/b) + b - n)
	} else {
		b0, err := BackgroundMLE(n, b, sigma)
		if err != nil {
			return 0, err
		}
		ts = 2 * (special.XLogY(n, n/b0) + (b-b0)*(b-b0)/(2*sigma*sigma) + b0 - n)
	}

	return special.ClipNoise("TS", ts)
}

// Significance returns the signed significance of observing n counts over a
// background estimate b ± sigma.
func Significance(n, b, sigma float64) (float64, error) {
	z, err := SignificanceVec([]float64{n}, []float64{b}, []float64{sigma})
	if err != nil {
		return 0, err
	}
	return z[0], nil
}

// SignificanceVec applies Significance elementwise. b and sigma must have one
// element or len(n) elements.
func SignificanceVec(n, b, sigma []float64) ([]float64, error) {
	bb, err := counts.Broadcast("b", b, len(n))
	if err != nil {
		return nil, err
	}
	ss, err := counts.Broadcast("sigma", sigma, len(n))
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(n))
	for i := range n {
		ts, err := TestStatistic(n[i], bb[i], ss[i])
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = sign(n[i], bb[i]) * math.Sqrt(ts)
	}
	return out, nil
}

// ZBi returns the Z_Bi significance after mapping b ± sigma onto an equivalent
// off-source measurement. The result is NaN when sigma is 0, and positive when
// n >= b.
func ZBi(n, b, sigma float64) (float64, error) {
	z, err := ZBiVec([]float64{n}, []float64{b}, []float64{sigma})
	if err != nil {
		return 0, err
	}
	return z[0], nil
}

// ZBiVec applies ZBi elementwise. b and sigma must have one element or len(n)
// elements.
func ZBiVec(n, b, sigma []float64) ([]float64, error) {
	bb, err := counts.Broadcast("b", b, len(n))
	if err != nil {
		return nil, err
	}
	ss, err := counts.Broadcast("sigma", sigma, len(n))
	if err != nil {
		return nil, err
	}

	for i := range n {
		if err := validate(n[i], bb[i], ss[i]); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
	}

	out := make([]float64, len(n))
	for i := range n {
		if ss[i] == 0 {
			out[i] = math.NaN()
			continue
		}

		tau := bb[i] / (ss[i] * ss[i])
		nOff := bb[i] * tau
		alpha := 1 / tau

		z, err := zbi.ZBi(n[i], nOff, alpha)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		// alpha is +Inf when b is 0, so the sign is taken against b here.
		out[i] = sign(n[i], bb[i]) * math.Abs(z)
	}
	return out, nil
}

func validate(n, b, sigma float64) error {
	if err := special.CheckNonNegative("n", n); err != nil {
		return err
	}
	if err := special.CheckNonNegative("b", b); err != nil {
		return err
	}
	return special.CheckNonNegative("sigma", sigma)
}

func sign(n, b float64) float64 {
	if n >= b {
		return 1
	}
	return -1
}
