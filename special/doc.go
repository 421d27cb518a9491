// Package special provides the numerical building blocks of the significance
// estimators: special-function adapters, the x·log(y) convention, conversion
// of tail probabilities to z-scores and the numerical-noise guard applied to
// derived quantities.
//
// # Tail Probabilities
//
// The adapters wrap gonum's Cephes ports and pin down the exact quantity each
// returns:
//
//	// P(X >= n) for X ~ Poisson(mu)
//	p := special.PoissonSurvival(n, mu)
//
//	// Regularized incomplete beta I_x(a, b)
//	p, err := special.RegIncBeta(a, b, x)
//
// # Significance
//
// Convert a one-sided p-value to the equivalent number of standard deviations:
//
//	z, err := special.SignificanceFromPValue(2.87e-7) // ~5
//	if errors.Is(err, special.ErrPrecision) {
//	    // p-value below the representable floor
//	}
//
// # x·log(y)
//
// XLogY returns 0 whenever x is 0, including y == 0:
//
//	special.XLogY(0, 0)   // 0
//	special.XLogY(2, math.E) // 2
package special
