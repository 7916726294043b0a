package quadrature

import "fmt"

// Accuracy returns the signed relative error (computed - reference) / reference.
// The reference must be a known, nonzero value.
func Accuracy(computed, reference float64) (float64, error) {
	if reference == 0 {
		return 0, fmt.Errorf("accuracy against zero reference: %w", ErrDivisionByZero)
	}
	return (computed - reference) / reference, nil
}

// PercentError is Accuracy scaled to percent.
func PercentError(computed, reference float64) (float64, error) {
	rel, err := Accuracy(computed, reference)
	if err != nil {
		return 0, err
	}
	return rel * 100, nil
}
