package quadrature

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// BigFunction is Function over arbitrary-precision floats. Implementations
// must not modify x.
type BigFunction func(x *big.Float) *big.Float

// NewFloat returns x as a big.Float with prec bits of mantissa.
func NewFloat(x float64, prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).SetFloat64(x)
}

// BigExp returns e^x at the precision of x.
func BigExp(x *big.Float) *big.Float {
	return bigfloat.Exp(x)
}

// BigPolynomial returns the polynomial c[0] + c[1]x + c[2]x² + ... evaluated
// by Horner's scheme at the precision of x.
func BigPolynomial(coeffs ...float64) BigFunction {
	c := make([]float64, len(coeffs))
	copy(c, coeffs)

	return func(x *big.Float) *big.Float {
		prec := x.Prec()
		y := new(big.Float).SetPrec(prec)
		for i := len(c) - 1; i >= 0; i-- {
			y.Mul(y, x)
			y.Add(y, NewFloat(c[i], prec))
		}
		return y
	}
}

// TrapezoidalBig is Trapezoidal computed entirely in big.Float at the
// precision of a.
func TrapezoidalBig(f BigFunction, a, b *big.Float, n int) (*big.Float, error) {
	prec, err := checkBigArgs(RuleTrapezoidal, f, a, b, n)
	if err != nil {
		return nil, err
	}

	h := bigStep(a, b, n, prec)
	half := NewFloat(0.5, prec)

	sum := new(big.Float).SetPrec(prec).Mul(half, f(a))
	sum.Add(sum, new(big.Float).SetPrec(prec).Mul(half, f(b)))

	x := new(big.Float).SetPrec(prec)
	k := new(big.Float).SetPrec(prec)
	for i := 1; i < n; i++ {
		k.SetInt64(int64(i))
		x.Mul(k, h)
		x.Add(x, a)
		sum.Add(sum, f(x))
	}

	return sum.Mul(sum, h), nil
}

// SimpsonBig is Simpson computed entirely in big.Float at the precision of a.
func SimpsonBig(f BigFunction, a, b *big.Float, n int) (*big.Float, error) {
	prec, err := checkBigArgs(RuleSimpson, f, a, b, n)
	if err != nil {
		return nil, err
	}

	h := bigStep(a, b, n, prec)

	odd := new(big.Float).SetPrec(prec)
	even := new(big.Float).SetPrec(prec)
	x := new(big.Float).SetPrec(prec)
	k := new(big.Float).SetPrec(prec)
	for i := 1; i < n; i++ {
		k.SetInt64(int64(i))
		x.Mul(k, h)
		x.Add(x, a)
		if i%2 == 1 {
			odd.Add(odd, f(x))
		} else {
			even.Add(even, f(x))
		}
	}

	sum := new(big.Float).SetPrec(prec).Add(f(a), f(b))
	sum.Add(sum, odd.Mul(odd, NewFloat(4, prec)))
	sum.Add(sum, even.Mul(even, NewFloat(2, prec)))

	scale := new(big.Float).SetPrec(prec).Quo(h, NewFloat(3, prec))
	return sum.Mul(sum, scale), nil
}

func bigStep(a, b *big.Float, n int, prec uint) *big.Float {
	h := new(big.Float).SetPrec(prec).Sub(b, a)
	return h.Quo(h, new(big.Float).SetPrec(prec).SetInt64(int64(n)))
}

func checkBigArgs(rule Rule, f BigFunction, a, b *big.Float, n int) (uint, error) {
	if f == nil {
		return 0, fmt.Errorf("%s: nil function: %w", rule, ErrInvalidArgument)
	}
	if a == nil || b == nil {
		return 0, fmt.Errorf("%s: nil bound: %w", rule, ErrInvalidArgument)
	}
	if a.IsInf() || b.IsInf() {
		return 0, fmt.Errorf("%s: bounds must be finite, got [%s, %s]: %w", rule, a.String(), b.String(), ErrInvalidArgument)
	}
	if err := rule.Validate(n); err != nil {
		return 0, err
	}

	prec := a.Prec()
	if prec == 0 {
		prec = 53
	}
	return prec, nil
}
