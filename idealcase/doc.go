// Package idealcase computes significances for a counting experiment whose
// background is known exactly.
//
// The p-value is the probability that a Poisson variable with mean B reaches
// or exceeds the observed counts; it is converted to a z-score with
// special.SignificanceFromPValue. The magnitude of that z-score is signed by
// the observation: positive when n >= B, negative otherwise.
//
//	z, err := idealcase.Significance(25, 10)
//
//	// One background, several observations
//	zs, err := idealcase.SignificanceVec([]float64{12, 18, 25}, []float64{10})
//
// # Detection Threshold
//
// FiveSigmaThreshold returns the counts a source must add on top of the
// background to be detected at 5σ with a given efficiency (1 minus the
// type II error probability). It is an empirical fit of the form a + b·√B:
//
//	excess, err := idealcase.FiveSigmaThreshold(100, idealcase.Efficiency90)
//
// See Vianello (2018), section 3.1.
package idealcase
