// Package gosignificance computes the statistical significance of counting
// experiments.
//
// GoSignificance is a Go package for deciding whether an observed number of
// counts in a source region is compatible with background fluctuations. It
// implements the estimators compared in Vianello (2018), from the ideal case
// of a perfectly known background to on/off measurements with systematic
// uncertainties on the efficiency ratio.
//
// # Features
//
//   - Ideal case: Poisson background known exactly
//   - Poisson source with a Gaussian background estimate
//   - Poisson source with a Poisson (off-source) background, as in Li & Ma (1983)
//   - Bounded and Gaussian systematic uncertainties on the efficiency ratio
//   - The Z_Bi frequentist estimator of Cousins, Linnemann & Tucker (2008)
//   - 5σ detection thresholds for a known background
//
// # Quick Start
//
// Significance of 140 on-source counts over 100 off-source counts:
//
//	z, _ := poissonpoisson.Significance(140, 100, 1/1.2, poissonpoisson.NoSystematic())
//
// With a 10% Gaussian systematic on the efficiency ratio:
//
//	z, _ := poissonpoisson.Significance(140, 100, 1/1.2, poissonpoisson.Gaussian(0.1))
//
// Every estimator has a vectorized form taking slices, where parameters of
// length 1 are broadcast:
//
//	zs, _ := poissongauss.SignificanceVec([]float64{120, 130}, []float64{80}, []float64{5.3})
//
// # Packages
//
// The library is organized into the following packages:
//
//   - idealcase: Known background, and 5σ detection thresholds
//   - poissongauss: Background estimate with Gaussian uncertainty
//   - poissonpoisson: On/off measurements, with or without systematics
//   - zbi: The Z_Bi estimator
//   - special: P-value conversion and special-function adapters
//   - minimize: One-dimensional minimisers used for profiling
//   - counts: Measurement tables, CSV I/O and broadcasting rules
//
// # References
//
//   - Vianello, G. (2018). The Significance of an Excess in a Counting Experiment. ApJS 236, 17
//   - Li, T.-P., & Ma, Y.-Q. (1983). Analysis methods for results in gamma-ray astronomy. ApJ 272, 317
//   - Cousins, R. D., Linnemann, J. T., & Tucker, J. (2008). NIM A 595, 480
package gosignificance
