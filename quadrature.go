package quadrature

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// DefaultSubdivisions is the subdivision count used when none is given.
const DefaultSubdivisions = 10

var (
	// ErrInvalidArgument reports a bad subdivision count, bound, or rule.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDivisionByZero reports a zero reference value.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrMalformedInput reports unparsable sample data or a lookup outside a table.
	ErrMalformedInput = errors.New("malformed input")
)

// Function is a real-valued function of one real variable: y = f(x).
// The rules below only ever see this capability, never the data behind it.
type Function func(x float64) float64

// Rule names a composite quadrature rule.
type Rule string

const (
	RuleTrapezoidal Rule = "trapezoidal" // endpoints ½, interior 1, scaled by h
	RuleSimpson     Rule = "simpson"     // weights 1,4,2,...,2,4,1 scaled by h/3
)

// ParseRule converts a string to a Rule.
func ParseRule(s string) (Rule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trapezoidal", "trapezoid", "trap":
		return RuleTrapezoidal, nil
	case "simpson", "simpsons", "simpson's":
		return RuleSimpson, nil
	default:
		return "", fmt.Errorf("unknown rule %q: %w", s, ErrInvalidArgument)
	}
}

// Validate checks that n subdivisions are acceptable for the rule.
func (r Rule) Validate(n int) error {
	switch r {
	case RuleTrapezoidal:
		if n <= 0 {
			return fmt.Errorf("trapezoidal: subdivisions must be positive, got %d: %w", n, ErrInvalidArgument)
		}
	case RuleSimpson:
		if n <= 0 {
			return fmt.Errorf("simpson: subdivisions must be positive, got %d: %w", n, ErrInvalidArgument)
		}
		if n%2 != 0 {
			return fmt.Errorf("simpson: subdivisions must be even, got %d: %w", n, ErrInvalidArgument)
		}
	default:
		return fmt.Errorf("unknown rule %q: %w", string(r), ErrInvalidArgument)
	}
	return nil
}

// Order returns the asymptotic order of the rule's error in h for smooth integrands.
func (r Rule) Order() int {
	switch r {
	case RuleTrapezoidal:
		return 2
	case RuleSimpson:
		return 4
	default:
		return 0
	}
}

// Integrate approximates the integral of f over [a, b] with n subdivisions.
func Integrate(rule Rule, f Function, a, b float64, n int) (float64, error) {
	switch rule {
	case RuleTrapezoidal:
		return Trapezoidal(f, a, b, n)
	case RuleSimpson:
		return Simpson(f, a, b, n)
	default:
		return 0, fmt.Errorf("unknown rule %q: %w", string(rule), ErrInvalidArgument)
	}
}

// Trapezoidal applies the composite trapezoidal rule:
//
//	h·(½f(a) + ½f(b) + Σ_{k=1}^{n-1} f(a+kh)),  h = (b-a)/n
//
// n = 1 is the plain two-point trapezoid. b < a integrates in the negative
// direction.
func Trapezoidal(f Function, a, b float64, n int) (float64, error) {
	if err := checkArgs(RuleTrapezoidal, f, a, b, n); err != nil {
		return 0, err
	}

	h := (b - a) / float64(n)
	return h * (0.5*f(a) + 0.5*f(b) + trapezoidalInterior(f, a, h, 1, n)), nil
}

// Simpson applies the composite Simpson's rule:
//
//	(h/3)·(f(a) + f(b) + 4·Σ odd f(a+kh) + 2·Σ even f(a+kh)),  h = (b-a)/n
//
// n must be even. n = 2 is the single-parabola base case.
func Simpson(f Function, a, b float64, n int) (float64, error) {
	if err := checkArgs(RuleSimpson, f, a, b, n); err != nil {
		return 0, err
	}

	h := (b - a) / float64(n)
	odd, even := simpsonInterior(f, a, h, 1, n)
	return h / 3 * (f(a) + f(b) + 4*odd + 2*even), nil
}

// trapezoidalInterior sums f(a+kh) for k in [from, to).
func trapezoidalInterior(f Function, a, h float64, from, to int) float64 {
	sum := 0.0
	for k := from; k < to; k++ {
		sum += f(a + float64(k)*h)
	}
	return sum
}

// simpsonInterior sums f(a+kh) for k in [from, to), split by parity of k.
func simpsonInterior(f Function, a, h float64, from, to int) (odd, even float64) {
	for k := from; k < to; k++ {
		y := f(a + float64(k)*h)
		if k%2 == 1 {
			odd += y
		} else {
			even += y
		}
	}
	return odd, even
}

func checkArgs(rule Rule, f Function, a, b float64, n int) error {
	if f == nil {
		return fmt.Errorf("%s: nil function: %w", rule, ErrInvalidArgument)
	}
	if err := checkBounds(rule, a, b); err != nil {
		return err
	}
	return rule.Validate(n)
}

func checkBounds(rule Rule, a, b float64) error {
	if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) {
		return fmt.Errorf("%s: bounds must be finite, got [%g, %g]: %w", rule, a, b, ErrInvalidArgument)
	}
	return nil
}
