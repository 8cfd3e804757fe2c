// Package parallel splits an index range [0, items) into contiguous chunks
// and processes them on separate goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Chunk is a half-open index range [Start, End).
type Chunk struct {
	Start, End int
}

// Split divides items into at most workers contiguous chunks of nearly equal
// size. A non-positive workers value uses GOMAXPROCS.
func Split(items, workers int) []Chunk {
	if items <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > items {
		workers = items
	}

	// ceiling division so the last chunk is never larger than the others
	size := (items + workers - 1) / workers
	chunks := make([]Chunk, 0, workers)
	for start := 0; start < items; start += size {
		end := start + size
		if end > items {
			end = items
		}
		chunks = append(chunks, Chunk{Start: start, End: end})
	}
	return chunks
}

// Parallelize runs fn once per chunk of [0, items) and waits for all of them.
func Parallelize(items int, fn func(start, end int)) {
	var wg sync.WaitGroup
	for _, c := range Split(items, 0) {
		wg.Add(1)
		go func(c Chunk) {
			defer wg.Done()
			fn(c.Start, c.End)
		}(c)
	}
	wg.Wait()
}

// ParallelizeWithThreshold behaves like Parallelize when items reaches
// threshold and otherwise calls fn(0, items) on the calling goroutine.
func ParallelizeWithThreshold(items, threshold int, fn func(start, end int)) {
	if items < threshold {
		fn(0, items)
		return
	}
	Parallelize(items, fn)
}

// MapReduce computes mapFn over every chunk of [0, items) and folds the
// partial results with reduce in chunk order, so the outcome does not depend
// on goroutine scheduling. Below threshold a single mapFn(0, items) call is
// made and reduce is not used.
func MapReduce[T any](items, threshold int, mapFn func(start, end int) T, reduce func(acc, part T) T) T {
	if items < threshold {
		return mapFn(0, items)
	}

	chunks := Split(items, 0)
	if len(chunks) == 0 {
		return mapFn(0, 0)
	}

	parts := make([]T, len(chunks))
	var wg sync.WaitGroup
	for i, c := range chunks {
		wg.Add(1)
		go func(i int, c Chunk) {
			defer wg.Done()
			parts[i] = mapFn(c.Start, c.End)
		}(i, c)
	}
	wg.Wait()

	acc := parts[0]
	for _, p := range parts[1:] {
		acc = reduce(acc, p)
	}
	return acc
}
