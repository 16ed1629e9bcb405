package resources

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// fsOperationParallelism bounds concurrent listings and stats across every
// walk in the process. Slots are held only for the call itself, never across
// recursion, so nested walks cannot starve each other.
const fsOperationParallelism = 64

var fsOperations = semaphore.NewWeighted(fsOperationParallelism)

func withFSSlot[T any](ctx context.Context, op func() (T, error)) (T, error) {
	if err := fsOperations.Acquire(ctx, 1); err != nil {
		var zero T
		return zero, err
	}
	defer fsOperations.Release(1)
	return op()
}
