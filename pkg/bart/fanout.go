package bart

import (
	"context"

	"github.com/sourcegraph/conc/pool"
)

// MaxConcurrency bounds the requests FanOut keeps in flight.
const MaxConcurrency = 8

type indexed[T any] struct {
	index int
	value T
}

// FanOut calls fetch for every input concurrently and returns the results in
// input order. The first error cancels the remaining requests.
func FanOut[In any, Out any](ctx context.Context, inputs []In, fetch func(context.Context, In) (Out, error)) ([]Out, error) {
	p := pool.NewWithResults[indexed[Out]]().
		WithContext(ctx).
		WithMaxGoroutines(MaxConcurrency).
		WithCancelOnError()

	for i, input := range inputs {
		i, input := i, input
		p.Go(func(ctx context.Context) (indexed[Out], error) {
			value, err := fetch(ctx, input)
			return indexed[Out]{index: i, value: value}, err
		})
	}

	results, err := p.Wait()
	if err != nil {
		return nil, err
	}

	ordered := make([]Out, len(inputs))
	for _, result := range results {
		ordered[result.index] = result.value
	}

	return ordered, nil
}
