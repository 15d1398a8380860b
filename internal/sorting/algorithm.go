package sorting

import (
	"fmt"
	"math/rand"
	"strings"
)

// Algorithm identifies one of the supported trace-producing sorts.
type Algorithm uint8

const (
	Bubble Algorithm = iota + 1
	Selection
	Insertion
	Quick
	Heap
	Merge
	Radix
)

var algorithmNames = [...]string{
	Bubble:    "bubble_sort",
	Selection: "selection_sort",
	Insertion: "insertion_sort",
	Quick:     "quick_sort",
	Heap:      "heap_sort",
	Merge:     "merge_sort",
	Radix:     "radix_sort_lsd",
}

// All returns every algorithm in declaration order.
func All() []Algorithm {
	return []Algorithm{Bubble, Selection, Insertion, Quick, Heap, Merge, Radix}
}

// Parse resolves an algorithm from its canonical name ("bubble_sort") or
// short form ("bubble"). Matching ignores case and surrounding space.
func Parse(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bubble_sort", "bubble":
		return Bubble, nil
	case "selection_sort", "selection":
		return Selection, nil
	case "insertion_sort", "insertion":
		return Insertion, nil
	case "quick_sort", "quicksort", "quick":
		return Quick, nil
	case "heap_sort", "heapsort", "heap":
		return Heap, nil
	case "merge_sort", "mergesort", "merge":
		return Merge, nil
	case "radix_sort_lsd", "radix_sort", "radix":
		return Radix, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

func (a Algorithm) String() string {
	if a.valid() {
		return algorithmNames[a]
	}
	return fmt.Sprintf("algorithm(%d)", uint8(a))
}

func (a Algorithm) valid() bool {
	return a >= Bubble && a <= Radix
}

// Kind reports the trace variant the algorithm emits for every row.
func (a Algorithm) Kind() Kind {
	switch a {
	case Merge, Radix:
		return Snapshot
	case Bubble, Selection, Insertion, Quick, Heap:
		return Delta
	}
	return 0
}

// Sort sorts keys in place and returns the trace of how it got there.
// rng is only consulted by quick sort; a nil rng there uses a fixed seed.
func (a Algorithm) Sort(keys []int, rng *rand.Rand) (Trace, error) {
	switch a {
	case Bubble:
		return DeltaTrace{Swaps: BubbleSort(keys)}, nil
	case Selection:
		return DeltaTrace{Swaps: SelectionSort(keys)}, nil
	case Insertion:
		return DeltaTrace{Swaps: InsertionSort(keys)}, nil
	case Quick:
		if rng == nil {
			rng = rand.New(rand.NewSource(1))
		}
		return DeltaTrace{Swaps: QuickSort(keys, rng)}, nil
	case Heap:
		return DeltaTrace{Swaps: HeapSort(keys)}, nil
	case Merge:
		return SnapshotTrace{Values: MergeSort(keys), Width: len(keys)}, nil
	case Radix:
		values, err := RadixSort(keys)
		if err != nil {
			return nil, err
		}
		return SnapshotTrace{Values: values, Width: len(keys)}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, a)
}
