// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"runtime"
	"sync"
)

// Config controls the worker pool.
type Config struct {
	Threads int // number of worker goroutines; <1 means runtime.NumCPU()
}

func (c Config) workers(n int) int {
	t := c.Threads
	if t < 1 {
		t = runtime.NumCPU()
	}
	if t > n {
		t = n
	}
	if t < 1 {
		t = 1
	}
	return t
}

// Map runs load for every path and returns the results indexed like paths.
// The first error (by input position) wins; cancellation of ctx stops the
// feed and is reported as ctx.Err().
func Map[T any](ctx context.Context, cfg Config, paths []string, load func(path string) (T, error)) ([]T, error) {
	out := make([]T, len(paths))
	errs := make([]error, len(paths))
	if len(paths) == 0 {
		return out, nil
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	n := cfg.workers(len(paths))
	wg.Add(n)
	for w := 0; w < n; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i], errs[i] = load(paths[i])
			}
		}()
	}

feed:
	for i := range paths {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
