// Package fanout runs independent branches concurrently with settle-all
// semantics: every branch runs to completion and the caller inspects each
// outcome on its own, so one failed collaborator never blanks the rest of a
// view.
package fanout

import (
	"context"
	"sync"
)

// Result is the settled outcome of one branch.
type Result[T any] struct {
	Value T
	Err   error
}

// Settle runs every branch concurrently and returns their outcomes in input
// order. It never short-circuits on failure.
func Settle[T any](ctx context.Context, branches ...func(context.Context) (T, error)) []Result[T] {
	results := make([]Result[T], len(branches))

	var wg sync.WaitGroup
	wg.Add(len(branches))
	for i, branch := range branches {
		go func(i int, branch func(context.Context) (T, error)) {
			defer wg.Done()
			v, err := branch(ctx)
			results[i] = Result[T]{Value: v, Err: err}
		}(i, branch)
	}
	wg.Wait()

	return results
}

// All is Settle for heterogeneous branches that write their own outputs and
// only report errors. The returned slice holds one entry per branch, nil on
// success.
func All(ctx context.Context, branches ...func(context.Context) error) []error {
	errs := make([]error, len(branches))

	var wg sync.WaitGroup
	wg.Add(len(branches))
	for i, branch := range branches {
		go func(i int, branch func(context.Context) error) {
			defer wg.Done()
			errs[i] = branch(ctx)
		}(i, branch)
	}
	wg.Wait()

	return errs
}
