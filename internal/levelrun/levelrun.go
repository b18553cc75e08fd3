// Package levelrun fans out independent per-candidate work at a single
// lattice level with bounded concurrency, the way
// github.com/ludo-technologies/jscan's service.ParallelExecutor fans out
// independent analysis tasks: a golang.org/x/sync/errgroup.Group with
// SetLimit caps in-flight goroutines, while results are written into a
// slice indexed by position so the caller's output never depends on
// completion order.
package levelrun

import "golang.org/x/sync/errgroup"

// Eval runs fn(items[i]) for every i, with at most concurrency goroutines
// in flight at once, and returns the results in input order. concurrency
// <= 1 runs sequentially without spawning goroutines at all.
func Eval[T any, R any](items []T, concurrency int, fn func(T) R) []R {
	results := make([]R, len(items))
	if concurrency <= 1 {
		for i, item := range items {
			results[i] = fn(item)
		}
		return results
	}

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			results[i] = fn(item)
			return nil
		})
	}
	_ = g.Wait() // fn never returns an error; errgroup is used purely for the bounded fan-out
	return results
}
