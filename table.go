package quadrature

import (
	"fmt"
	"math"
)

// IndexError reports a table lookup outside the loaded samples.
type IndexError struct {
	X     float64 // Requested argument
	Index int     // Truncated index
	Len   int     // Number of samples
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("sample index %d (x=%g) out of range [0, %d)", e.Index, e.X, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrMalformedInput
}

// Table is an ordered sequence of pre-loaded samples addressed by a real
// argument truncated to an integer index.
//
// Example:
//
//	vs, err := quadrature.LoadSamplesFile("res/velocities.txt")
//	if err != nil {
//	    return err
//	}
//	table := quadrature.NewTable(vs)
//	distance, err := quadrature.IntegrateTable(quadrature.RuleTrapezoidal, table, 0, 100, 100)
type Table struct {
	values []float64
}

// NewTable copies values into a new table.
func NewTable(values []float64) *Table {
	v := make([]float64, len(values))
	copy(v, values)
	return &Table{values: v}
}

// Len returns the number of samples.
func (t *Table) Len() int {
	return len(t.values)
}

// Domain returns the closed range of arguments that index into the table.
// An empty table has the empty domain [0, -1].
func (t *Table) Domain() (lo, hi float64) {
	return 0, float64(len(t.values) - 1)
}

// Lookup returns the sample at int(x), truncating toward zero.
func (t *Table) Lookup(x float64) (float64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) || x <= -1 || x >= float64(len(t.values)) {
		return 0, &IndexError{X: x, Index: truncIndex(x), Len: len(t.values)}
	}
	return t.values[int(x)], nil
}

// Func exposes the table as a Function. Like slice indexing, an argument
// outside Domain panics; the panic value is an *IndexError.
func (t *Table) Func() Function {
	return func(x float64) float64 {
		y, err := t.Lookup(x)
		if err != nil {
			panic(err)
		}
		return y
	}
}

// IntegrateTable integrates the table over [a, b] after checking that every
// sample point falls inside Domain.
func IntegrateTable(rule Rule, t *Table, a, b float64, n int) (float64, error) {
	if t == nil || t.Len() == 0 {
		return 0, fmt.Errorf("integrate table: no samples: %w", ErrMalformedInput)
	}
	if err := checkBounds(rule, a, b); err != nil {
		return 0, err
	}
	for _, x := range []float64{a, b} {
		if _, err := t.Lookup(x); err != nil {
			return 0, fmt.Errorf("integrate table over [%g, %g]: %w", a, b, err)
		}
	}
	return Integrate(rule, t.Func(), a, b, n)
}

func truncIndex(x float64) int {
	switch {
	case math.IsNaN(x):
		return 0
	case x >= math.MaxInt32:
		return math.MaxInt32
	case x <= math.MinInt32:
		return math.MinInt32
	default:
		return int(x)
	}
}
