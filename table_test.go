package quadrature

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// velocity is the closed form behind testdata/velocities.txt: v(t) = t²/10.
func velocity(t float64) float64 {
	return t * t / 10
}

// TestIntegrateTable_MatchesClosedForm verifies the table-backed result equals
// the trapezoidal result on the closed-form velocity.
func TestIntegrateTable_MatchesClosedForm(t *testing.T) {
	vs, err := LoadSamplesFile("testdata/velocities.txt")
	require.NoError(t, err)
	require.Len(t, vs, 101)

	table := NewTable(vs)

	got, err := IntegrateTable(RuleTrapezoidal, table, 0, 100, 100)
	require.NoError(t, err)

	want, err := Trapezoidal(velocity, 0, 100, 100)
	require.NoError(t, err)

	assert.InDelta(t, want, got, 1e-9*want)
	assert.InDelta(t, 33335.0, got, 1e-7)

	// Against the antiderivative t³/30 the O(h²) error is h²/12·(v'(100) - v'(0)) = 20/12.
	assert.InDelta(t, 100*100*100/30.0+20.0/12, got, 1e-6)

	t.Logf("✓ Distance travelled: %.4f (closed form %.4f)", got, want)
}

func TestIntegrateTable_Simpson(t *testing.T) {
	vs, err := LoadSamplesFile("testdata/velocities.txt")
	require.NoError(t, err)

	got, err := IntegrateTable(RuleSimpson, NewTable(vs), 0, 100, 100)
	require.NoError(t, err)

	// Quadratic integrand: Simpson is exact.
	assert.InDelta(t, 100*100*100/30.0, got, 1e-6)
}

// TestIntegrateTable_OutOfRange verifies reads past the samples fail before evaluation.
func TestIntegrateTable_OutOfRange(t *testing.T) {
	table := NewTable([]float64{1, 2, 3, 4})

	tests := []struct {
		name string
		a, b float64
	}{
		{"upper past end", 0, 4},
		{"lower negative", -1, 3},
		{"both past end", 10, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := IntegrateTable(RuleTrapezoidal, table, tt.a, tt.b, 2)
			require.ErrorIs(t, err, ErrMalformedInput)

			var idx *IndexError
			require.True(t, errors.As(err, &idx))
			assert.Equal(t, 4, idx.Len)
		})
	}
}

func TestIntegrateTable_Empty(t *testing.T) {
	_, err := IntegrateTable(RuleTrapezoidal, NewTable(nil), 0, 0, 1)
	assert.ErrorIs(t, err, ErrMalformedInput)

	_, err = IntegrateTable(RuleTrapezoidal, nil, 0, 0, 1)
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestIntegrateTable_RuleErrors(t *testing.T) {
	table := NewTable([]float64{1, 2, 3, 4})

	_, err := IntegrateTable(RuleSimpson, table, 0, 3, 3)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

// TestTable_Lookup verifies truncation toward zero.
func TestTable_Lookup(t *testing.T) {
	table := NewTable([]float64{10, 20, 30})

	for x, want := range map[float64]float64{
		0:    10,
		0.99: 10,
		1:    20,
		2.5:  30,
		-0.5: 10,
	} {
		got, err := table.Lookup(x)
		require.NoError(t, err, "x=%v", x)
		assert.Equal(t, want, got, "x=%v", x)
	}

	for _, x := range []float64{3, -1, 1e300, math.NaN(), math.Inf(-1)} {
		_, err := table.Lookup(x)
		assert.ErrorIs(t, err, ErrMalformedInput, "x=%v", x)
	}
}

// TestTable_FuncPanics verifies the Function view panics like slice indexing.
func TestTable_FuncPanics(t *testing.T) {
	f := NewTable([]float64{1}).Func()

	assert.Equal(t, 1.0, f(0.5))
	assert.PanicsWithError(t, "sample index 5 (x=5) out of range [0, 1)", func() {
		f(5)
	})
}

// TestNewTable_Copies verifies the table does not alias its input.
func TestNewTable_Copies(t *testing.T) {
	in := []float64{1, 2, 3}
	table := NewTable(in)
	in[0] = 99

	got, err := table.Lookup(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	lo, hi := table.Domain()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 2.0, hi)
}
