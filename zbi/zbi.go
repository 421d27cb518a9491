// Package zbi implements the Z_Bi estimator.
package zbi

import (
	"fmt"
	"math"

	"github.com/sartorproj/gosignificance/counts"
	"github.com/sartorproj/gosignificance/special"
)

// ZBi returns the signed Z_Bi significance for nOn on-source counts and nOff
// off-source counts with efficiency ratio alpha. The sign is positive when
// nOn >= alpha*nOff.
func ZBi(nOn, nOff, alpha float64) (float64, error) {
	z, err := magnitude(nOn, nOff, alpha)
	if err != nil {
		return 0, err
	}
	return sign(nOn, nOff, alpha) * z, nil
}

// ZBiVec applies ZBi elementwise. nOff and alpha must have one element or
// len(nOn) elements. If any element fails, no result is returned.
func ZBiVec(nOn, nOff, alpha []float64) ([]float64, error) {
	off, err := counts.Broadcast("n_off", nOff, len(nOn))
	if err != nil {
		return nil, err
	}
	aa, err := counts.Broadcast("alpha", alpha, len(nOn))
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(nOn))
	for i := range nOn {
		z, err := ZBi(nOn[i], off[i], aa[i])
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = z
	}
	return out, nil
}

// magnitude evaluates the unsigned estimator. Degenerate inputs give 0, and
// x >= 1 gives 1 without going through the p-value conversion.
func magnitude(nOn, nOff, alpha float64) (float64, error) {
	tau := 1 / alpha

	a := nOn
	b := nOff + 1
	x := 1 / (1 + tau)

	if a <= 0 || b <= 0 || x <= 0 {
		return 0, nil
	}
	if x >= 1 {
		return 1, nil
	}

	p, err := special.RegIncBeta(a, b, x)
	if err != nil {
		return 0, err
	}
	z, err := special.SignificanceFromPValue(p)
	if err != nil {
		return 0, err
	}
	// Deficits have p > 0.5 and a negative z; the sign is applied by the caller.
	return math.Abs(z), nil
}

func sign(nOn, nOff, alpha float64) float64 {
	if nOn >= alpha*nOff {
		return 1
	}
	return -1
}
