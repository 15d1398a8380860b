package sorting

import "math/rand"

// QuickSort sorts a with Hoare partitioning. On every partition call the
// pivot value is drawn uniformly from the whole array, not just the range
// being partitioned. Swaps of one level are recorded before those of its
// left and then right recursion, which is the order they happen in.
func QuickSort(a []int, rng *rand.Rand) []Swap {
	var swaps []Swap
	quickSort(a, 0, len(a)-1, rng, &swaps)
	return swaps
}

func quickSort(a []int, lo, hi int, rng *rand.Rand, swaps *[]Swap) {
	if lo >= hi {
		return
	}

	pivot := a[rng.Intn(len(a))]
	// A pivot outside the range's span would leave the range unchanged and
	// let the scans below run past it.
	if lowest, highest := span(a[lo : hi+1]); pivot < lowest || pivot > highest {
		pivot = a[lo+(hi-lo)/2]
	}

	i, j := lo, hi
	for i <= j {
		for a[i] < pivot {
			i++
		}
		for a[j] > pivot {
			j--
		}
		if i <= j {
			a[i], a[j] = a[j], a[i]
			*swaps = append(*swaps, Swap{I: i, J: j})
			i++
			j--
		}
	}

	quickSort(a, lo, j, rng, swaps)
	quickSort(a, i, hi, rng, swaps)
}

func span(a []int) (lowest, highest int) {
	lowest, highest = a[0], a[0]
	for _, v := range a[1:] {
		if v < lowest {
			lowest = v
		}
		if v > highest {
			highest = v
		}
	}
	return lowest, highest
}
