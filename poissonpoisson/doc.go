// Package poissonpoisson computes significances for on/off counting
// experiments: the background is itself measured as a Poisson count b in an
// off-source region, and alpha is the ratio between the on-source and
// off-source exposures, so that alpha·b counts are expected on-source.
//
// # Systematic Uncertainty
//
// The uncertainty on alpha is described per measurement by a Systematic:
//
//   - NoSystematic: the classic Li & Ma (1983) formula
//   - Bounded(k): k bounds the fractional systematic on alpha; Li & Ma with
//     alpha replaced by alpha·(1+k) (Vianello 2018, eq. 7)
//   - Gaussian(σ): a Gaussian systematic on alpha, profiled out by a 1-D
//     numerical maximisation of the likelihood (Vianello 2018, eq. 9)
//
// Example:
//
//	z, err := poissonpoisson.Significance(20, 80, 0.1, poissonpoisson.NoSystematic())
//	z, err = poissonpoisson.Significance(20, 80, 0.1, poissonpoisson.Bounded(0.1))
//	z, err = poissonpoisson.Significance(20, 80, 0.1, poissonpoisson.Gaussian(0.1))
//
// Measurements in one call may mix regimes:
//
//	zs, err := poissonpoisson.SignificanceVec(
//	    []float64{20, 30, 40}, []float64{80, 90, 100}, []float64{0.1},
//	    []poissonpoisson.Systematic{
//	        poissonpoisson.NoSystematic(),
//	        poissonpoisson.Bounded(0.1),
//	        poissonpoisson.Gaussian(10),
//	    })
//
// Tables using the "k or sigma, whichever is nonzero" layout are converted
// with SystematicsFromKSigma.
//
// # Optimiser
//
// The Gaussian regime minimises a negative log-likelihood over the systematic
// offset with a minimize.Minimizer. The default is Nelder-Mead with an
// absolute tolerance of 1e-3 starting from zero offset; use New with a Config
// to swap it:
//
//	est := poissonpoisson.New(&poissonpoisson.Config{
//	    Minimizer: minimize.NewBFGS(nil),
//	})
//	z, err := est.Significance(20, 80, 0.1, poissonpoisson.Gaussian(0.1))
//
// ZBi exposes the Z_Bi estimator on the same (n, b, alpha) inputs.
package poissonpoisson
