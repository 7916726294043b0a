package quadrature

import (
	"context"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// Result contains one rule evaluation at a single subdivision count.
type Result struct {
	N        int     // Subdivisions
	H        float64 // Step width (b-a)/N
	Value    float64 // Approximate integral
	AbsError float64 // |Value - reference|
	RelError float64 // (Value - reference) / reference
}

// Order is the fitted convergence model:
//
//	log|E(h)| = Intercept + Slope·log h
//
// For smooth integrands Slope approaches 2 for the trapezoidal rule and 4 for
// Simpson's rule.
type Order struct {
	Slope     float64 // Observed order p in E ∝ h^p
	Intercept float64 // log of the error constant
	RSquared  float64 // R²: goodness of fit (1.0 = perfect)
}

// Config controls a convergence study.
type Config struct {
	Rule    Rule  // Rule under study
	Levels  []int // Subdivision counts, increasing (default: [10,100,1000])
	Workers int   // Summation workers per level (0 or 1 = serial)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Rule:    RuleTrapezoidal,
		Levels:  []int{10, 100, 1000},
		Workers: 0,
	}
}

// Run integrates f over [a, b] at every level in cfg and measures each result
// against a known reference value.
func Run(ctx context.Context, f Function, a, b, reference float64, cfg Config) ([]Result, error) {
	if len(cfg.Levels) == 0 {
		return nil, fmt.Errorf("no levels configured: %w", ErrInvalidArgument)
	}

	results := make([]Result, 0, len(cfg.Levels))

	for _, n := range cfg.Levels {
		result, err := runAtLevel(ctx, f, a, b, reference, n, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed at N=%d: %w", n, err)
		}
		results = append(results, result)
	}

	return results, nil
}

func runAtLevel(ctx context.Context, f Function, a, b, reference float64, n int, cfg Config) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	value, err := IntegrateParallel(ctx, cfg.Rule, f, a, b, n, cfg.Workers)
	if err != nil {
		return Result{}, err
	}

	rel, err := Accuracy(value, reference)
	if err != nil {
		return Result{}, err
	}

	return Result{
		N:        n,
		H:        (b - a) / float64(n),
		Value:    value,
		AbsError: math.Abs(value - reference),
		RelError: rel,
	}, nil
}

// FitOrder regresses log|error| on log|h| by least squares.
//
// Results whose error is exactly zero (the rule is exact for the integrand)
// carry no slope information and are skipped. At least two usable points are
// required.
func FitOrder(results []Result) (Order, error) {
	var xs, ys []float64
	for _, r := range results {
		if r.AbsError == 0 || r.H == 0 {
			continue
		}
		xs = append(xs, math.Log(math.Abs(r.H)))
		ys = append(ys, math.Log(r.AbsError))
	}

	if len(xs) < 2 {
		return Order{}, fmt.Errorf("need at least 2 results with nonzero error, got %d: %w", len(xs), ErrInvalidArgument)
	}

	sdX, err := stats.StandardDeviationPopulation(xs)
	if err != nil {
		return Order{}, fmt.Errorf("fit order: %w", err)
	}
	if sdX == 0 {
		return Order{}, fmt.Errorf("fit order: all step widths equal: %w", ErrInvalidArgument)
	}
	sdY, err := stats.StandardDeviationPopulation(ys)
	if err != nil {
		return Order{}, fmt.Errorf("fit order: %w", err)
	}
	meanX, _ := stats.Mean(xs)
	meanY, _ := stats.Mean(ys)

	// Constant error across levels: flat line, perfectly fit.
	if sdY == 0 {
		return Order{Slope: 0, Intercept: meanY, RSquared: 1}, nil
	}

	r, err := stats.Correlation(xs, ys)
	if err != nil {
		return Order{}, fmt.Errorf("fit order: %w", err)
	}

	slope := r * sdY / sdX
	return Order{
		Slope:     slope,
		Intercept: meanY - slope*meanX,
		RSquared:  r * r,
	}, nil
}

// Improvement returns how many times smaller the error got between two
// consecutive results, E(prev)/E(next). +Inf when next is exact.
func Improvement(prev, next Result) float64 {
	if next.AbsError == 0 {
		return math.Inf(1)
	}
	return prev.AbsError / next.AbsError
}
