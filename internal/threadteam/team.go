// Package threadteam provides a bounded fork-join worker team: a fixed
// number of goroutines process disjoint partitions of a unit of work and
// join at a barrier before the caller resumes sequentially. There are no
// long-lived goroutines and no cancellation; a region either runs to
// completion or the caller's process aborts on an unrecoverable fault.
//
// The bounded-semaphore-over-WaitGroup shape here follows the pattern used
// by parallel compressors that fan out across chunks and join before
// merging results.
package threadteam

import (
	"runtime"
	"sync"
)

// Size returns the number of workers a region should partition across,
// letting callers size their own chunking to match before calling Run.
func Size() int {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	return n
}

// Run partitions n units of work into ceil(n/Size())-sized chunks and calls
// fn once per non-empty chunk with the half-open index range [start, end)
// that worker owns; a worker whose chunk would start at or past n is not
// called.
// Run blocks until every worker has returned (the barrier) before it
// returns itself. Workers never overlap in their index ranges.
func Run(n int, fn func(worker, start, end int)) {
	if n <= 0 {
		return
	}
	workers := Size()
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= n {
			break
		}
		end := start + chunk
		if end > n {
			end = n
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(worker, start, end int) {
			defer wg.Done()
			defer func() { <-sem }()
			fn(worker, start, end)
		}(w, start, end)
	}
	wg.Wait()
}
