// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"errors"
	"sync"
)

// Process runs a worker pool over the provided work items, invoking
// process for each. Item errors do not stop the remaining work; they are
// collected and returned joined after every item has been attempted.
// Only context cancellation aborts the pool early.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
) error {
	if workerCount < 1 {
		workerCount = 1
	}

	tasks := make(chan T)
	var (
		mu   sync.Mutex
		errs []error
		wg   sync.WaitGroup
	)

	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range tasks {
				if err := process(ctx, item); err != nil {
					mu.Lock()
					errs = append(errs, err)
					mu.Unlock()
				}
			}
		}()
	}

	var canceled bool
feed:
	for _, item := range items {
		if ctx.Err() != nil {
			canceled = true
			break
		}
		select {
		case <-ctx.Done():
			canceled = true
			break feed
		case tasks <- item:
		}
	}
	close(tasks)
	wg.Wait()

	if canceled {
		return ctx.Err()
	}
	return errors.Join(errs...)
}
