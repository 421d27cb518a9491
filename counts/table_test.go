package counts

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastScalar(t *testing.T) {
	out, err := Broadcast("alpha", []float64{0.1}, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.1, 0.1}, out)
}

func TestBroadcastPassThrough(t *testing.T) {
	in := []float64{1, 2, 3}
	out, err := Broadcast("sigma", in, 3)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	// The result must not alias the input
	out[0] = 42
	assert.Equal(t, 1.0, in[0])
}

func TestBroadcastSizeMismatch(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		n      int
	}{
		{"too short", []float64{1, 2}, 3},
		{"too long", []float64{1, 2, 3, 4}, 3},
		{"empty", nil, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Broadcast("k", tt.values, tt.n)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrSizeMismatch))
			assert.Contains(t, err.Error(), "k")
		})
	}
}

func TestNewTable(t *testing.T) {
	table, err := NewTable([]float64{20, 30}, []float64{80})
	require.NoError(t, err)

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []float64{80, 80}, table.B)
	assert.Equal(t, []float64{1, 1}, table.Alpha)
	assert.Equal(t, []float64{0, 0}, table.Sigma)
	assert.NoError(t, table.Validate())

	_, err = NewTable([]float64{20, 30}, []float64{80, 90, 100})
	assert.True(t, errors.Is(err, ErrSizeMismatch))

	_, err = NewTable(nil, []float64{1})
	assert.Error(t, err)
}

func TestTableValidate(t *testing.T) {
	table, err := NewTable([]float64{1, 2, 3}, []float64{1})
	require.NoError(t, err)

	table.Alpha = []float64{0.1, 0.2}
	err = table.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSizeMismatch))
	assert.Contains(t, err.Error(), "alpha")
}

func TestTableFilterAndSlice(t *testing.T) {
	table := &Table{}
	table.Append(Measurement{Name: "a", N: 10, B: 5, Alpha: 1})
	table.Append(Measurement{Name: "b", N: 2, B: 5, Alpha: 1})
	table.Append(Measurement{Name: "c", N: 30, B: 5, Alpha: 0.5, K: 0.1})

	excess := table.Filter(func(m Measurement) bool { return m.N >= m.Alpha*m.B })
	require.Equal(t, 2, excess.Len())
	assert.Equal(t, []string{"a", "c"}, excess.Names)
	assert.Equal(t, 0.1, excess.Row(1).K)

	sub := table.Slice(1, 10)
	assert.Equal(t, 2, sub.Len())
	assert.Equal(t, "b", sub.Row(0).Name)

	cp := table.Copy()
	cp.N[0] = 99
	assert.Equal(t, 10.0, table.N[0])
}

func TestTableValidateNaN(t *testing.T) {
	table, err := NewTable([]float64{1, 2}, []float64{1})
	require.NoError(t, err)

	table.Sigma[1] = math.NaN()
	err = table.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sigma")
}

func TestTableColumn(t *testing.T) {
	table, err := NewTable([]float64{1, 2}, []float64{4})
	require.NoError(t, err)

	b, err := table.Column("b")
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 4}, b)

	alpha, err := table.Column("alpha")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, alpha)

	_, err = table.Column("tau")
	assert.Error(t, err)
}
