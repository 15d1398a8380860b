package replay

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FrameCount", func() {
	DescribeTable("clamps the budget",
		func(budget, events, wantFrames, wantSteps int) {
			frames, steps := FrameCount(budget, events)
			Expect(frames).To(Equal(wantFrames))
			Expect(steps).To(Equal(wantSteps))
		},
		Entry("budget within events", 5, 10, 5, 4),
		Entry("budget equal to events", 10, 10, 10, 9),
		Entry("budget one above events", 11, 10, 11, 10),
		Entry("budget beyond events", 80, 10, 11, 10),
		Entry("budget of one", 1, 10, 2, 1),
		Entry("budget of zero", 0, 10, 2, 1),
		Entry("negative budget", -4, 3, 2, 1),
		Entry("no events", 80, 0, 1, 0),
		Entry("single event", 80, 1, 2, 1),
	)
})

var _ = Describe("Plan", func() {
	It("returns nothing for zero steps", func() {
		Expect(Plan(10, 0)).To(BeNil())
	})

	It("front-loads the remainder", func() {
		Expect(Plan(10, 4)).To(Equal([]int{3, 3, 2, 2}))
		Expect(Plan(9, 3)).To(Equal([]int{3, 3, 3}))
		Expect(Plan(3, 3)).To(Equal([]int{1, 1, 1}))
	})

	It("conserves events for every budget", func() {
		for total := 1; total <= 60; total++ {
			for budget := 0; budget <= total+3; budget++ {
				_, steps := FrameCount(budget, total)
				chunks := Plan(total, steps)

				sum, lo, hi := 0, total, 0
				for _, c := range chunks {
					sum += c
					lo, hi = min(lo, c), max(hi, c)
				}
				Expect(sum).To(Equal(total), "total=%d budget=%d", total, budget)
				Expect(hi-lo).To(BeNumerically("<=", 1), "total=%d budget=%d", total, budget)
				Expect(lo).To(BeNumerically(">=", 1))
			}
		}
	})
})
