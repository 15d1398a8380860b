package sorting

import "slices"

// MergeSort runs a bottom-up merge sort: runs of width 1, 2, 4, ... are
// merged pairwise until one run covers the row. The whole row is appended
// to the returned stream after every pass.
func MergeSort(a []int) []int {
	n := len(a)
	if n < 2 {
		return nil
	}

	var stream []int
	src := slices.Clone(a)
	dst := make([]int, n)
	for width := 1; width < n; width *= 2 {
		for lo := 0; lo < n; lo += 2 * width {
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			merge(dst[lo:hi], src[lo:mid], src[mid:hi])
		}
		stream = append(stream, dst...)
		src, dst = dst, src
	}
	copy(a, src)
	return stream
}

// merge writes the stable merge of left and right into out.
func merge(out, left, right []int) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			out[k] = left[i]
			i++
		} else {
			out[k] = right[j]
			j++
		}
		k++
	}
	k += copy(out[k:], left[i:])
	copy(out[k:], right[j:])
}

// RadixSort is an LSD radix sort in base 10. The number of digit passes
// comes from the largest key; the whole row is appended to the stream after
// every pass. Rows that are empty, single or all zero produce no passes.
func RadixSort(a []int) ([]int, error) {
	if len(a) < 2 {
		return nil, nil
	}
	for _, v := range a {
		if v < 0 {
			return nil, ErrNegativeKey
		}
	}
	largest := slices.Max(a)
	if largest == 0 {
		return nil, nil
	}

	var stream []int
	src := slices.Clone(a)
	dst := make([]int, len(a))
	for exp := 1; largest/exp > 0; exp *= 10 {
		digitPass(src, dst, exp)
		stream = append(stream, dst...)
		src, dst = dst, src
	}
	copy(a, src)
	return stream, nil
}

// digitPass is a stable counting sort of src into dst keyed on the decimal
// digit selected by exp.
func digitPass(src, dst []int, exp int) {
	var counts [10]int
	for _, v := range src {
		counts[(v/exp)%10]++
	}

	total := 0
	for d := range counts {
		c := counts[d]
		counts[d] = total
		total += c
	}

	for _, v := range src {
		d := (v / exp) % 10
		dst[counts[d]] = v
		counts[d]++
	}
}
