// Package minimize provides one-dimensional minimisation behind a small
// interface, so that estimators embedding a numerical optimisation can swap
// the algorithm without touching their objective functions.
//
// Both implementations are backed by gonum's optimize package:
//
//	m := minimize.NewNelderMead(nil) // default tolerance 1e-3
//	res, err := m.Minimize(func(x float64) float64 {
//	    return (x - 3) * (x - 3)
//	}, 0)
//	// res.X ~ 3
//
// NelderMead only evaluates the objective, which makes it the right choice for
// objectives with penalty plateaus. BFGS uses a central finite-difference
// gradient and converges faster on smooth objectives.
package minimize
