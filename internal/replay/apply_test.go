package replay

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/sorting"
)

var _ = Describe("applyDeltas", func() {
	swaps := []sorting.Swap{{I: 0, J: 1}, {I: 1, J: 2}, {I: 0, J: 1}}

	It("applies a window of swaps", func() {
		row := []int{3, 1, 2}
		applyDeltas(row, []sorting.Swap{{I: 0, J: 1}, {I: 1, J: 2}}, 0, 1)
		Expect(row).To(Equal([]int{1, 3, 2}))
		applyDeltas(row, []sorting.Swap{{I: 0, J: 1}, {I: 1, J: 2}}, 1, 2)
		Expect(row).To(Equal([]int{1, 2, 3}))
	})

	It("clamps windows past the end of a short trace", func() {
		row := []int{0, 1, 2}
		applyDeltas(row, swaps, 2, 10)
		Expect(row).To(Equal([]int{1, 0, 2}))

		applyDeltas(row, swaps, 5, 8)
		Expect(row).To(Equal([]int{1, 0, 2}))
	})

	It("is a no-op for an empty trace", func() {
		row := []int{2, 0, 1}
		applyDeltas(row, nil, 0, 4)
		Expect(row).To(Equal([]int{2, 0, 1}))
	})
})

var _ = Describe("applySnapshot", func() {
	// Two passes over a row of width 4.
	stream := []int{1, 0, 3, 2, 0, 1, 2, 3}

	It("writes a chunk at its column offset", func() {
		row := []int{3, 2, 1, 0}
		applySnapshot(row, stream, 0, 3)
		Expect(row).To(Equal([]int{1, 0, 3, 0}))
	})

	It("wraps a chunk from the tail to the head", func() {
		row := []int{1, 0, 3, 0}
		applySnapshot(row, stream, 3, 6)
		Expect(row).To(Equal([]int{0, 1, 3, 2}))
	})

	It("handles a chunk longer than the row", func() {
		row := []int{3, 2, 1, 0}
		applySnapshot(row, stream, 1, 8)
		Expect(row).To(Equal([]int{0, 1, 2, 3}))
	})

	It("clamps to the stream length", func() {
		row := []int{3, 2, 1, 0}
		applySnapshot(row, stream[:4], 2, 7)
		Expect(row).To(Equal([]int{3, 2, 3, 2}))

		applySnapshot(row, stream[:4], 4, 7)
		Expect(row).To(Equal([]int{3, 2, 3, 2}))
	})

	It("ends on the final snapshot when replayed in any chunking", func() {
		for size := 1; size <= len(stream); size++ {
			row := []int{3, 2, 1, 0}
			for from := 0; from < len(stream); from += size {
				applySnapshot(row, stream, from, from+size)
			}
			Expect(row).To(Equal([]int{0, 1, 2, 3}), "chunk size %d", size)
		}
	})
})
