// Package poissongauss computes significances for a Poisson count observed on
// top of a background known as a Gaussian estimate b ± σ.
//
// The latent true background B0 is profiled out in closed form:
//
//	B0 = ½·(b − σ² + √(b² − 2bσ² + 4nσ² + σ⁴))
//
// and the significance is the signed square root of the profile likelihood
// ratio test statistic:
//
//	z, err := poissongauss.Significance(120, 80, 5.3)
//
//	// Per-measurement uncertainties
//	zs, err := poissongauss.SignificanceVec(
//	    []float64{120, 130}, []float64{80, 90}, []float64{5.3, 5.3})
//
// ZBi reparameterizes b ± σ as an equivalent off-source measurement
// (τ = b/σ², n_off = bτ, α = 1/τ) and applies the Z_Bi estimator:
//
//	z, err := poissongauss.ZBi(140, 83.33, 8.333) // ~3.93
//
// See Vianello (2018), section 3.2.
package poissongauss
