// Package counts provides the measurement containers shared by the
// significance estimators.
//
// A measurement is one counting experiment: the observed count N, the
// background estimate B, the on/off efficiency ratio Alpha and optional
// systematic parameters Sigma and K. Estimators accept every parameter either
// as a single value or as one value per measurement; Broadcast implements that
// rule.
//
// # Broadcasting
//
// Expand a scalar-or-vector parameter to the length of the counts:
//
//	alpha, err := counts.Broadcast("alpha", []float64{0.1}, len(n))
//	// alpha has len(n) elements, all 0.1
//
//	_, err = counts.Broadcast("alpha", []float64{0.1, 0.2}, 3)
//	// errors.Is(err, counts.ErrSizeMismatch) == true
//
// # Tables
//
// Group measurements column-wise:
//
//	table, err := counts.NewTable([]float64{20, 30}, []float64{80})
//	table.Alpha = []float64{0.1, 0.2}
//	row := table.Row(1)
//
// # Loading from CSV
//
// Load a measurement table, one row per experiment:
//
//	table, err := counts.LoadCSV("observations.csv", nil)
//
//	opts := counts.DefaultCSVOptions()
//	opts.BColumn = "n_off"
//	table, err = counts.LoadCSVFromReader(reader, opts)
package counts
