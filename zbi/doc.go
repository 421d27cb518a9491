// Package zbi implements the Z_Bi significance estimator of Cousins, Linnemann
// and Tucker (2008).
//
// Z_Bi treats the on-source count and the off-source count as a binomial
// split of their sum. With τ = 1/α the one-sided p-value is the regularized
// incomplete beta function I_x(n_on, n_off+1) at x = 1/(1+τ), which is then
// converted to a z-score:
//
//	z, err := zbi.ZBi(140, 100, 1/1.2) // ~3.93
//
// The incomplete beta is evaluated with gonum's port of the Cephes incbet
// routine, which stays finite in the tails.
package zbi
