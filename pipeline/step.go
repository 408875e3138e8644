package pipeline

import "context"

// Step is one named stage of a linear pipeline.
type Step[I, O any] struct {
	Name string
	Fn   func(ctx context.Context, in I) (O, error)
}

// NewStep creates a named step from a function.
func NewStep[I, O any](name string, fn func(ctx context.Context, in I) (O, error)) Step[I, O] {
	return Step[I, O]{Name: name, Fn: fn}
}

// Then composes two steps sequentially. The second step runs only if the
// first succeeds; the first error aborts the composition.
func Then[A, B, C any](first Step[A, B], next Step[B, C]) Step[A, C] {
	return Step[A, C]{
		Name: first.Name + ">" + next.Name,
		Fn: func(ctx context.Context, in A) (C, error) {
			mid, err := first.Fn(ctx, in)
			if err != nil {
				var zero C
				return zero, err
			}
			if err := ctx.Err(); err != nil {
				var zero C
				return zero, err
			}
			return next.Fn(ctx, mid)
		},
	}
}

// Run executes a single step against an input.
func Run[I, O any](ctx context.Context, s Step[I, O], in I) (O, error) {
	if err := ctx.Err(); err != nil {
		var zero O
		return zero, err
	}
	return s.Fn(ctx, in)
}

// Runnable is a fully-configured pipeline ready to execute.
type Runnable struct {
	run func(ctx context.Context) error
}

// NewRunnable wraps a run function.
func NewRunnable(run func(ctx context.Context) error) *Runnable {
	return &Runnable{run: run}
}

// Run executes the pipeline until completion or context cancellation.
func (r *Runnable) Run(ctx context.Context) error {
	return r.run(ctx)
}
