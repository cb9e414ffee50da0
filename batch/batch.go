// Package batch fans classification of many interval pairs out over a
// worker pool. Classification is a pure constant-time function, so this
// only pays off for large batches; results are index-aligned with inputs.
package batch

import (
	"cmp"
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/allenintervals/allen"
)

// Pair is one classification request; the computed relation is S's relation
// to T.
type Pair[T cmp.Ordered] struct {
	S, T allen.NonEmpty[T]
}

// Classify computes the relation for every pair using up to workers
// goroutines; workers <= 0 means GOMAXPROCS. The only failure mode is
// context cancellation, in which case the partial results are discarded.
func Classify[T cmp.Ordered](ctx context.Context, pairs []Pair[T], workers int) ([]allen.Relation, error) {
	out := make([]allen.Relation, len(pairs))
	if len(pairs) == 0 {
		return out, nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	chunk := (len(pairs) + workers - 1) / workers
	for begin := 0; begin < len(pairs); begin += chunk {
		begin := begin
		end := min(begin+chunk, len(pairs))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := begin; i < end; i++ {
				out[i] = allen.FromIntervals(pairs[i].S, pairs[i].T)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
