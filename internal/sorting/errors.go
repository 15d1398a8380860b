package sorting

import "errors"

var (
	// ErrUnknownAlgorithm indicates an algorithm name or value outside the supported set.
	ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

	// ErrNegativeKey indicates a negative key passed to radix sort.
	ErrNegativeKey = errors.New("sorting: radix sort requires non-negative keys")
)
