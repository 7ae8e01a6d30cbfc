package column

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// Depths returns n trial depths evenly spaced over [from, to]
func Depths(from, to float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("need at least 2 trial depths, got %d", n)
	}
	if from <= 0 || to <= from {
		return nil, fmt.Errorf("%w: sweep range [%g, %g] must be positive and increasing", ErrDegenerateTrialDepth, from, to)
	}
	return floats.Span(make([]float64, n), from, to), nil
}

// DepthsByStep returns trial depths from, from+step, ... not exceeding to.
// The end point is included when the range divides evenly.
func DepthsByStep(from, to, step float64) ([]float64, error) {
	if step <= 0 {
		return nil, fmt.Errorf("sweep step must be positive, got %g", step)
	}
	n := int(math.Floor((to-from)/step+1e-9)) + 1
	if n < 2 {
		return nil, fmt.Errorf("sweep range [%g, %g] holds fewer than 2 depths at step %g", from, to, step)
	}
	return Depths(from, from+float64(n-1)*step, n)
}

// Sweep evaluates the section at each trial depth. Results are returned in
// the order of depths. The first failing depth cancels the rest.
func (s *Section) Sweep(ctx context.Context, depths []float64, opts Options) ([]*Capacity, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	results := make([]*Capacity, len(depths))
	g, ctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}

	// bars run sequentially inside each depth; the parallelism is across depths
	inner := opts
	inner.Workers = 1

	for i, xu := range depths {
		i, xu := i, xu // per-iteration copy (go 1.21 loop semantics)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := s.AnalyzeWith(xu, inner)
			if err != nil {
				return fmt.Errorf("xu = %g: %w", xu, err)
			}
			results[i] = c
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
