package quadrature

import (
	"fmt"
	"math"
	"testing"
)

// AssertWithinRelative verifies |got - want| / |want| ≤ tol.
func AssertWithinRelative(t *testing.T, got, want, tol float64) {
	t.Helper()

	rel, err := Accuracy(got, want)
	if err != nil {
		t.Fatalf("Cannot measure relative error: %v", err)
	}

	if math.Abs(rel) > tol {
		t.Errorf("Relative error too high: %.3e (max: %.3e)\n"+
			"  got  = %.15g\n"+
			"  want = %.15g",
			math.Abs(rel), tol, got, want)
		return
	}

	t.Logf("✓ Within tolerance: relative error %.3e ≤ %.3e", math.Abs(rel), tol)
}

// AssertConvergenceOrder verifies the fitted order of the results is want ± tol.
//
// Mathematical property:
//
//	E(h) ∝ h^p,  p = 2 (trapezoidal), p = 4 (Simpson)
func AssertConvergenceOrder(t *testing.T, results []Result, want, tol float64) {
	t.Helper()

	order, err := FitOrder(results)
	if err != nil {
		t.Fatalf("Failed to fit convergence order: %v", err)
	}

	if math.Abs(order.Slope-want) > tol {
		t.Errorf("Convergence order = %.3f (expected %.1f ± %.2f)\n"+
			"Integrand may not be smooth, or rounding error dominates at the finest level.",
			order.Slope, want, tol)
	}

	t.Logf("✓ Convergence order: p = %.3f (expected %.1f)", order.Slope, want)
	t.Logf("  Model fit: R² = %.4f", order.RSquared)
}

// AssertMonotonicConvergence verifies the absolute error never increases as
// N increases across the results.
func AssertMonotonicConvergence(t *testing.T, results []Result) {
	t.Helper()

	var failures []string
	for i := 1; i < len(results); i++ {
		prev, curr := results[i-1], results[i]
		if curr.N <= prev.N {
			failures = append(failures, fmt.Sprintf(
				"  N=%d→%d: levels not increasing", prev.N, curr.N))
			continue
		}
		if curr.AbsError > prev.AbsError {
			failures = append(failures, fmt.Sprintf(
				"  N=%d→%d: |E| %.3e → %.3e (error grew)",
				prev.N, curr.N, prev.AbsError, curr.AbsError))
		}
	}

	if len(failures) > 0 {
		t.Errorf("Error not monotonically decreasing:\n%s", failures)
		return
	}

	t.Logf("✓ Monotonic convergence over %d levels", len(results))
}

// PrintConvergence outputs the convergence table to the test log.
func PrintConvergence(t *testing.T, results []Result) {
	t.Helper()

	t.Logf("\n=== Convergence ===")
	t.Logf("  N       h           Value                 |E|         Ratio")
	t.Logf("  ------  ----------  --------------------  ----------  --------")
	for i, r := range results {
		ratio := "-"
		if i > 0 {
			ratio = fmt.Sprintf("%8.1f", Improvement(results[i-1], r))
		}
		t.Logf("  %-6d  %10.3e  %20.15f  %10.3e  %s", r.N, r.H, r.Value, r.AbsError, ratio)
	}

	order, err := FitOrder(results)
	if err != nil {
		t.Logf("\nOrder: not available (%v)", err)
		return
	}
	t.Logf("\nObserved order: p = %.3f, R² = %.4f", order.Slope, order.RSquared)
}
