// Package sorting provides sorting algorithms that record how they moved
// elements while sorting a row of keys.
//
// Every algorithm sorts its input in place and returns a [Trace]:
//
//   - [DeltaTrace]: the position pairs exchanged, in chronological order
//     (bubble, selection, insertion, quick and heap sort)
//   - [SnapshotTrace]: the whole row after each pass, concatenated
//     (bottom-up merge sort and LSD radix sort)
//
// # Example
//
//	row := []int{3, 1, 2}
//	tr, _ := sorting.Bubble.Sort(row, nil)
//	// row == [1 2 3], tr.(sorting.DeltaTrace).Swaps == [{0 1} {1 2}]
//
// Algorithms compare keys with < only, except radix sort which reads
// decimal digits and therefore needs non-negative integers.
package sorting
