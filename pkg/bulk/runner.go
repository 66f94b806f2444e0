package bulk

import (
	"context"
	"sync"
)

// DefaultConcurrency is the default cap on simultaneously running tasks.
const DefaultConcurrency = 5

// Task produces a value of type T or fails.
type Task[T any] func(context.Context) (T, error)

// Result is the outcome of one task, tagged with its position in the input
// slice.
type Result[T any] struct {
	Index int
	Value T
	Err   error
}

// Summary aggregates per-task outcomes in input order.
type Summary[T any] struct {
	Results []Result[T]
}

// Fulfilled returns the results of tasks that succeeded.
func (s Summary[T]) Fulfilled() []Result[T] {
	out := make([]Result[T], 0, len(s.Results))
	for _, r := range s.Results {
		if r.Err == nil {
			out = append(out, r)
		}
	}
	return out
}

// Rejected returns the results of tasks that failed.
func (s Summary[T]) Rejected() []Result[T] {
	out := make([]Result[T], 0)
	for _, r := range s.Results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}

// FirstErr returns the error of the lowest-indexed failed task, or nil when
// every task succeeded.
func (s Summary[T]) FirstErr() error {
	for _, r := range s.Results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}

// Option configures a Run call.
type Option func(*runConfig)

type runConfig struct {
	concurrency int
}

// WithConcurrency caps how many tasks run simultaneously.
// Default is DefaultConcurrency.
func WithConcurrency(n int) Option {
	return func(c *runConfig) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// Run executes tasks with a concurrency cap and waits for all of them,
// returning every outcome in input order. A failed task never affects its
// siblings. When ctx is cancelled, tasks not yet started are rejected with
// the context error; already running tasks decide for themselves how to
// honor cancellation.
func Run[T any](ctx context.Context, tasks []Task[T], opts ...Option) Summary[T] {
	cfg := runConfig{concurrency: DefaultConcurrency}
	for _, opt := range opts {
		opt(&cfg)
	}

	results := make([]Result[T], len(tasks))
	sem := make(chan struct{}, cfg.concurrency)
	var wg sync.WaitGroup

	for i, task := range tasks {
		results[i].Index = i

		select {
		case <-ctx.Done():
			results[i].Err = ctx.Err()
			continue
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(i int, task Task[T]) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i].Value, results[i].Err = task(ctx)
		}(i, task)
	}

	wg.Wait()
	return Summary[T]{Results: results}
}
