// Package quadrature approximates definite integrals by composite quadrature.
//
// # Overview
//
// A definite integral over [a, b] is approximated by sampling the integrand
// at N+1 evenly spaced points, h = (b-a)/N apart, and summing the samples
// under a fixed set of weights:
//
//	∫_a^b f(x) dx ≈ h · Σ w_k f(a + k·h)
//
// Two rules are provided:
//   - Trapezoidal: weights ½, 1, 1, ..., 1, ½             error O(h²)
//   - Simpson:     weights 1, 4, 2, 4, ..., 2, 4, 1 (÷3)  error O(h⁴), N even
//
// # Quick Start
//
//	f := func(x float64) float64 { return x*x*x*x - 2*x + 1 }
//
//	q, err := quadrature.Simpson(f, 0, 2, 10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	pct, _ := quadrature.PercentError(q, 4.4)
//	fmt.Printf("The integral is %v with %v percent error\n", q, pct)
//
// # Tabulated Data
//
// The rules only see a Function. Sampled data becomes a Function through a
// Table, which truncates the argument to an index:
//
//	vs, err := quadrature.LoadSamplesFile("res/velocities.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	distance, err := quadrature.IntegrateTable(quadrature.RuleTrapezoidal,
//	    quadrature.NewTable(vs), 0, 100, 100)
//
// IntegrateTable rejects an interval that would read outside the samples
// before evaluating anything.
//
// # Convergence
//
// Halving h should divide the error by 2^p, with p the order of the rule.
// Run measures the error at several N against a known value and FitOrder
// recovers p from a log-log fit:
//
//	cfg := quadrature.DefaultConfig()
//	cfg.Rule = quadrature.RuleSimpson
//
//	results, err := quadrature.Run(ctx, f, 0, 2, 4.4, cfg)
//	order, err := quadrature.FitOrder(results)
//	// order.Slope ≈ 4
//
// # Precision
//
// Past N ≈ 10⁵ the float64 rules are limited by rounding in the sum rather
// than by h. TrapezoidalBig and SimpsonBig evaluate the same formulas in
// math/big at any precision.
//
// # Errors
//
// Every error wraps one of ErrInvalidArgument, ErrDivisionByZero or
// ErrMalformedInput; test with errors.Is.
package quadrature
