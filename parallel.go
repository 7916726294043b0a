package quadrature

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// minChunk is the smallest interior range worth handing to a goroutine.
const minChunk = 1024

// IntegrateParallel is Integrate with the interior sum split across workers.
//
// Each worker sums a contiguous block of interior sample indices; the partial
// sums are then combined with the rule's endpoint terms and weights. The
// result agrees with Integrate up to floating-point summation order, so it is
// not bit-identical to the serial value.
//
// f must be safe to call from multiple goroutines. Small n, or workers <= 1,
// runs the serial rule.
func IntegrateParallel(ctx context.Context, rule Rule, f Function, a, b float64, n, workers int) (float64, error) {
	if err := checkArgs(rule, f, a, b, n); err != nil {
		return 0, err
	}

	interior := n - 1
	if workers > interior/minChunk {
		workers = interior / minChunk
	}
	if workers <= 1 {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		return Integrate(rule, f, a, b, n)
	}

	h := (b - a) / float64(n)
	odd := make([]float64, workers)
	even := make([]float64, workers)

	g, gCtx := errgroup.WithContext(ctx)
	chunk := (interior + workers - 1) / workers

	for w := 0; w < workers; w++ {
		w := w
		from := 1 + w*chunk
		to := from + chunk
		if to > n {
			to = n
		}

		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			switch rule {
			case RuleSimpson:
				odd[w], even[w] = simpsonInterior(f, a, h, from, to)
			default:
				odd[w] = trapezoidalInterior(f, a, h, from, to)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("parallel %s: %w", rule, err)
	}

	var sumOdd, sumEven float64
	for w := 0; w < workers; w++ {
		sumOdd += odd[w]
		sumEven += even[w]
	}

	if rule == RuleSimpson {
		return h / 3 * (f(a) + f(b) + 4*sumOdd + 2*sumEven), nil
	}
	return h * (0.5*f(a) + 0.5*f(b) + sumOdd), nil
}
