package service

import "iter"

// Chunk splits entities into contiguous sub-slices of at most maxSize
// elements, preserving input order; the final chunk may be shorter. The
// returned sequence is lazy and restartable, and concatenating its chunks
// reproduces the input exactly once.
//
// Returns [ErrBatchSize] when maxSize is not positive.
func Chunk[T any](entities []T, maxSize int) (iter.Seq[[]T], error) {
	if maxSize <= 0 {
		return nil, ErrBatchSize
	}

	return func(yield func([]T) bool) {
		for start := 0; start < len(entities); start += maxSize {
			end := min(start+maxSize, len(entities))
			if !yield(entities[start:end:end]) {
				return
			}
		}
	}, nil
}
