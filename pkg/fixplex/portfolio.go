package fixplex

import (
	"context"
	"sync"

	"github.com/gitrdm/fixplex/internal/parallel"
)

// SolveAll runs MakeFeasible on every solver concurrently and returns the
// results in input order. Each solver runs entirely on one worker, keeping
// the single-threaded contract of the individual instances; maxWorkers <= 0
// uses one worker per CPU core. Solvers whose task could not be scheduled
// before ctx was cancelled report Unknown.
func SolveAll(ctx context.Context, solvers []*Solver, maxWorkers int) []Result {
	results := make([]Result, len(solvers))
	pool := parallel.NewWorkerPool(maxWorkers)
	defer pool.Shutdown()

	var wg sync.WaitGroup
	for i, sv := range solvers {
		i, sv := i, sv
		wg.Add(1)
		if err := pool.Submit(ctx, func() {
			defer wg.Done()
			results[i] = sv.MakeFeasible(ctx)
		}); err != nil {
			results[i] = Unknown
			wg.Done()
		}
	}
	wg.Wait()
	return results
}
