package sorting

import (
	"slices"
	"testing"
)

func isHeap(a []int, o Order) bool {
	for i := 1; i < len(a); i++ {
		if o.above(a[i], a[parent(i)]) {
			return false
		}
	}
	return true
}

func TestHeapify(t *testing.T) {
	for _, o := range []Order{MaxHeap, MinHeap} {
		in := shuffled(31, 4)
		a := slices.Clone(in)
		var rec []Swap
		heapify(a, len(a), o, func(i, j int) { rec = append(rec, Swap{i, j}) })
		if !isHeap(a, o) {
			t.Errorf("order %d: not a heap: %v", o, a)
		}
		if len(rec) == 0 {
			t.Errorf("order %d: expected recorded swaps", o)
		}

		replayed := slices.Clone(in)
		DeltaTrace{Swaps: rec}.Replay(replayed)
		if !slices.Equal(replayed, a) {
			t.Errorf("order %d: recorded swaps do not rebuild the heap", o)
		}
	}
}

func TestPushPop(t *testing.T) {
	var h []int
	for _, v := range []int{5, 3, 8, 1, 9, 2} {
		h = push(h, v, MinHeap)
	}

	var out []int
	for len(h) > 0 {
		var v int
		v, h = pop(h, MinHeap)
		out = append(out, v)
	}

	if !slices.Equal(out, []int{1, 2, 3, 5, 8, 9}) {
		t.Errorf("min-heap order = %v", out)
	}
}

func TestLargest(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		k    int
		want []int
	}{
		{"top three", []int{5, 3, 8, 1, 9, 2}, 3, []int{9, 8, 5}},
		{"duplicates", []int{4, 7, 7, 1, 7}, 2, []int{7, 7}},
		{"k above length", []int{2, 1}, 5, []int{2, 1}},
		{"zero k", []int{1, 2}, 0, nil},
		{"empty", nil, 3, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := slices.Clone(tt.in)
			got := Largest(in, tt.k)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Largest(%v, %d) = %v, want %v", tt.in, tt.k, got, tt.want)
			}
			if !slices.Equal(in, tt.in) {
				t.Errorf("input modified: %v", in)
			}
		})
	}
}

func TestSiftRecordsEverySwap(t *testing.T) {
	a := []int{1, 9, 8}
	var rec []Swap
	siftDown(a, 0, len(a), MaxHeap, func(i, j int) { rec = append(rec, Swap{i, j}) })

	if !slices.Equal(rec, []Swap{{0, 1}}) {
		t.Errorf("recorded %v, want [{0 1}]", rec)
	}
	if a[0] != 9 {
		t.Errorf("root = %d, want 9", a[0])
	}
}
