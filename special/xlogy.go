package special

import "math"

// XLogY returns x*log(y), with the convention that the result is 0 whenever
// x is 0, even if y is 0.
func XLogY(x, y float64) float64 {
	if x == 0 {
		return 0
	}
	return x * math.Log(y)
}

// XLogYVec applies XLogY elementwise and returns a new slice.
// It panics if x and y have different lengths.
func XLogYVec(x, y []float64) []float64 {
	if len(x) != len(y) {
		panic("special: slice lengths do not match")
	}
	out := make([]float64, len(x))
	for i := range x {
		out[i] = XLogY(x[i], y[i])
	}
	return out
}
