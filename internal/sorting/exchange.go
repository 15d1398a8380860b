package sorting

// BubbleSort repeatedly walks the unsorted prefix exchanging adjacent
// out-of-order keys. Each pass fixes one more key at the end; the first
// pass without exchanges stops the sort.
func BubbleSort(a []int) []Swap {
	var swaps []Swap
	for end := len(a) - 1; end > 0; end-- {
		swapped := false
		for i := 0; i < end; i++ {
			if a[i+1] < a[i] {
				a[i], a[i+1] = a[i+1], a[i]
				swaps = append(swaps, Swap{I: i, J: i + 1})
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return swaps
}

// SelectionSort moves the minimum of the unsorted suffix to position i for
// every i. The exchange (i, min) is recorded even when min == i so that
// every row of the same width yields the same number of events.
func SelectionSort(a []int) []Swap {
	n := len(a)
	if n < 2 {
		return nil
	}
	swaps := make([]Swap, 0, n)
	for i := 0; i < n; i++ {
		m := i
		for j := i + 1; j < n; j++ {
			if a[j] < a[m] {
				m = j
			}
		}
		a[i], a[m] = a[m], a[i]
		swaps = append(swaps, Swap{I: i, J: m})
	}
	return swaps
}

// InsertionSort shifts each key left past every larger predecessor.
func InsertionSort(a []int) []Swap {
	var swaps []Swap
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j] < a[j-1]; j-- {
			a[j], a[j-1] = a[j-1], a[j]
			swaps = append(swaps, Swap{I: j, J: j - 1})
		}
	}
	return swaps
}
