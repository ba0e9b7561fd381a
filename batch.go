package euclid

import "sync"

// DefaultWorkers is the worker count used by Batch when a non-positive count is given.
const DefaultWorkers = 1

// Batch evaluates fn over every input using up to workers goroutines and
// returns the results in input order. Inputs are split into contiguous chunks,
// one per worker.
//
// The queries of this module are pure, so any of them can be used as fn.
func Batch[T, R any](workers int, inputs []T, fn func(T) R) []R {
	workers = max(DefaultWorkers, workers)
	results := make([]R, len(inputs))
	if len(inputs) == 0 {
		return results
	}
	workers = min(workers, len(inputs))

	var wg sync.WaitGroup
	chunkSize := (len(inputs) + workers - 1) / workers

	for workerID := 0; workerID < workers; workerID++ {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				results[i] = fn(inputs[i])
			}
		}(workerID*chunkSize, min((workerID+1)*chunkSize, len(inputs)))
	}
	wg.Wait()

	return results
}
