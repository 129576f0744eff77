// Package parallel provides the chunked worker loop used to sweep every
// linear position of a materialized expression. Expression trees are
// immutable after construction and evaluation is a pure read, so disjoint
// position ranges can be evaluated concurrently without locking.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how a sweep is split across goroutines.
type Config struct {
	Enabled      bool // Whether to run chunks on worker goroutines at all.
	NumWorkers   int  // Upper bound on concurrent workers.
	MinChunkSize int  // Smallest range worth handing to a goroutine.
}

// DefaultConfig sizes the sweep to the machine's CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 256,
	}
}

// Sequential returns a config that forces single-goroutine execution.
// Useful for comparing sweep results in tests and for tiny outputs.
func Sequential() Config {
	return Config{Enabled: false, NumWorkers: 1, MinChunkSize: 1}
}

// For executes f(i) for every i in [0, n). Ranges below MinChunkSize, or
// any range when the config disables parallelism, run on the calling
// goroutine. For returns only after every call to f has completed.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinChunkSize {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	chunk := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
