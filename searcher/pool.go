package searcher

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Parallel runs job(0) .. job(n-1) on at most goroutines goroutines and blocks until
// every job has finished. Jobs report results by index, so callers aggregate after
// Parallel returns. A panicking job is turned into an error; the first error is returned.
func Parallel(goroutines, n int, job func(i int) error) error {
	if goroutines < 1 {
		return fmt.Errorf("goroutines must be positive, got %d", goroutines)
	}

	var g errgroup.Group
	g.SetLimit(goroutines)
	for i := 0; i < n; i++ {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					if e, ok := r.(error); ok {
						err = fmt.Errorf("simulation %d: %w", i, e)
					} else {
						err = fmt.Errorf("simulation %d: %v", i, r)
					}
				}
			}()
			return job(i)
		})
	}
	return g.Wait()
}
