// Package counts provides measurement containers and broadcasting rules.
package counts

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ErrSizeMismatch is returned when a parameter has neither one element nor
// one element per count.
var ErrSizeMismatch = errors.New("parameter size must be either 1 or the size of n")

// Broadcast expands values to n elements. A single value is replicated,
// a slice of length n is copied, anything else is an error naming the
// parameter.
func Broadcast(name string, values []float64, n int) ([]float64, error) {
	switch len(values) {
	case n:
		out := make([]float64, n)
		copy(out, values)
		return out, nil
	case 1:
		out := make([]float64, n)
		for i := range out {
			out[i] = values[0]
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%s has %d elements, n has %d: %w", name, len(values), n, ErrSizeMismatch)
	}
}

// Measurement is a single counting experiment.
type Measurement struct {
	Name  string
	N     float64 // Observed counts in the source region
	B     float64 // Background estimate, or off-source counts
	Alpha float64 // Source/background efficiency ratio
	Sigma float64 // Gaussian uncertainty (0 = none)
	K     float64 // Bounded fractional systematic (0 = none)
}

// Table holds measurements column-wise so that the columns can be passed
// directly to the vectorized estimators.
type Table struct {
	Names []string
	N     []float64
	B     []float64
	Alpha []float64
	Sigma []float64
	K     []float64
}

// NewTable creates a table from counts and backgrounds. b is broadcast to the
// length of n. Alpha defaults to 1, Sigma and K to 0.
func NewTable(n, b []float64) (*Table, error) {
	if len(n) == 0 {
		return nil, errors.New("n must not be empty")
	}

	bb, err := Broadcast("b", b, len(n))
	if err != nil {
		return nil, err
	}

	nn := make([]float64, len(n))
	copy(nn, n)

	t := &Table{
		Names: make([]string, len(n)),
		N:     nn,
		B:     bb,
		Alpha: make([]float64, len(n)),
		Sigma: make([]float64, len(n)),
		K:     make([]float64, len(n)),
	}
	for i := range t.Alpha {
		t.Alpha[i] = 1
	}
	return t, nil
}

// Len returns the number of measurements.
func (t *Table) Len() int {
	return len(t.N)
}

// Validate checks that every column matches the length of N and holds no NaN.
func (t *Table) Validate() error {
	columns := []struct {
		name string
		n    int
	}{
		{"b", len(t.B)},
		{"alpha", len(t.Alpha)},
		{"sigma", len(t.Sigma)},
		{"k", len(t.K)},
	}
	for _, c := range columns {
		if c.n != len(t.N) {
			return fmt.Errorf("column %s has %d rows, n has %d: %w", c.name, c.n, len(t.N), ErrSizeMismatch)
		}
	}
	if len(t.Names) != 0 && len(t.Names) != len(t.N) {
		return fmt.Errorf("column name has %d rows, n has %d: %w", len(t.Names), len(t.N), ErrSizeMismatch)
	}
	for _, name := range columnNames {
		col, _ := t.Column(name)
		if floats.HasNaN(col) {
			return fmt.Errorf("column %s contains NaN", name)
		}
	}
	return nil
}

var columnNames = []string{"n", "b", "alpha", "sigma", "k"}

// Column returns the numeric column with the given name: n, b, alpha, sigma
// or k. The slice is shared with the table.
func (t *Table) Column(name string) ([]float64, error) {
	switch name {
	case "n":
		return t.N, nil
	case "b":
		return t.B, nil
	case "alpha":
		return t.Alpha, nil
	case "sigma":
		return t.Sigma, nil
	case "k":
		return t.K, nil
	default:
		return nil, fmt.Errorf("unknown column %q", name)
	}
}

// Row returns the i-th measurement.
func (t *Table) Row(i int) Measurement {
	m := Measurement{
		N:     t.N[i],
		B:     t.B[i],
		Alpha: t.Alpha[i],
		Sigma: t.Sigma[i],
		K:     t.K[i],
	}
	if i < len(t.Names) {
		m.Name = t.Names[i]
	}
	return m
}

// Append adds a measurement at the end of the table.
func (t *Table) Append(m Measurement) {
	t.Names = append(t.Names, m.Name)
	t.N = append(t.N, m.N)
	t.B = append(t.B, m.B)
	t.Alpha = append(t.Alpha, m.Alpha)
	t.Sigma = append(t.Sigma, m.Sigma)
	t.K = append(t.K, m.K)
}

// Filter returns a new table with the measurements for which keep returns true.
func (t *Table) Filter(keep func(Measurement) bool) *Table {
	out := &Table{}
	for i := 0; i < t.Len(); i++ {
		m := t.Row(i)
		if keep(m) {
			out.Append(m)
		}
	}
	return out
}

// Slice returns rows from start to end (exclusive).
func (t *Table) Slice(start, end int) *Table {
	if start < 0 {
		start = 0
	}
	if end > t.Len() {
		end = t.Len()
	}
	out := &Table{}
	for i := start; i < end; i++ {
		out.Append(t.Row(i))
	}
	return out
}

// Copy creates a deep copy of the table.
func (t *Table) Copy() *Table {
	return t.Slice(0, t.Len())
}
