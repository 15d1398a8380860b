package sorting

// Order selects which key sits at the root of a binary heap.
type Order int8

const (
	MaxHeap Order = iota
	MinHeap
)

// above reports whether x belongs closer to the root than y.
func (o Order) above(x, y int) bool {
	if o == MinHeap {
		return x < y
	}
	return x > y
}

func parent(i int) int { return (i - 1) / 2 }

// siftDown moves a[i] down within a[:size] until neither child belongs above it.
func siftDown(a []int, i, size int, o Order, record func(i, j int)) {
	for {
		child := 2*i + 1
		if child >= size {
			return
		}
		if right := child + 1; right < size && o.above(a[right], a[child]) {
			child = right
		}
		if !o.above(a[child], a[i]) {
			return
		}
		a[i], a[child] = a[child], a[i]
		record(i, child)
		i = child
	}
}

// siftUp moves a[i] up until its parent belongs above it.
func siftUp(a []int, i int, o Order, record func(i, j int)) {
	for i > 0 && o.above(a[i], a[parent(i)]) {
		p := parent(i)
		a[i], a[p] = a[p], a[i]
		record(i, p)
		i = p
	}
}

// heapify arranges a[:size] into a heap bottom-up, starting at the parent
// of the last slot.
func heapify(a []int, size int, o Order, record func(i, j int)) {
	for i := parent(size); i >= 0; i-- {
		siftDown(a, i, size, o, record)
	}
}

func discard(int, int) {}

func push(h []int, v int, o Order) []int {
	h = append(h, v)
	siftUp(h, len(h)-1, o, discard)
	return h
}

// pop removes the root of a non-empty heap h.
func pop(h []int, o Order) (int, []int) {
	last := len(h) - 1
	h[0], h[last] = h[last], h[0]
	root := h[last]
	h = h[:last]
	siftDown(h, 0, len(h), o, discard)
	return root, h
}

// Largest returns the k largest values of a in descending order, keeping a
// min-heap of the best k seen so far. a is not modified.
func Largest(a []int, k int) []int {
	if k <= 0 {
		return nil
	}
	h := make([]int, 0, k+1)
	for _, v := range a {
		if len(h) < k {
			h = push(h, v, MinHeap)
		} else if v > h[0] {
			h[0] = v
			siftDown(h, 0, len(h), MinHeap, discard)
		}
	}

	out := make([]int, len(h))
	for i := len(out) - 1; i >= 0; i-- {
		out[i], h = pop(h, MinHeap)
	}
	return out
}

// HeapSort builds a max-heap over a, then repeatedly swaps the root with
// the last live slot and shrinks the heap. Construction and extraction
// swaps are both recorded.
func HeapSort(a []int) []Swap {
	n := len(a)
	if n < 2 {
		return nil
	}

	var swaps []Swap
	record := func(i, j int) {
		swaps = append(swaps, Swap{I: i, J: j})
	}

	heapify(a, n, MaxHeap, record)
	for size := n; size > 0; size-- {
		a[0], a[size-1] = a[size-1], a[0]
		record(0, size-1)
		siftDown(a, 0, size-1, MaxHeap, record)
	}
	return swaps
}
