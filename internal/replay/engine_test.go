package replay

import (
	"context"
	"errors"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/perm"
	"github.com/san-kum/sortviz/internal/sorting"
)

func gradientGrid(rows, cols int) perm.Grid {
	g := perm.NewGrid(rows, cols)
	for r := range g {
		for c := range g[r] {
			g[r][c] = perm.Pixel{R: uint8(c * 255 / max(cols-1, 1)), G: uint8(r), B: 0x40}
		}
	}
	return g
}

// shuffledEngine builds an engine over a randomized grid and returns it
// with the unsorted frame and the original, sorted grid.
func shuffledEngine(rows, cols int, seed int64, opts ...Option) (*Engine, perm.Grid, perm.Grid) {
	grid := gradientGrid(rows, cols)
	perms, lookup, err := perm.Build(grid)
	Expect(err).NotTo(HaveOccurred())
	perm.Randomize(perms, rand.New(rand.NewSource(seed)))

	e, err := New(perms, lookup, opts...)
	Expect(err).NotTo(HaveOccurred())
	return e, e.Frame(), grid
}

var _ = Describe("Engine", func() {
	ctx := context.Background()

	Describe("New", func() {
		It("rejects an empty grid", func() {
			_, err := New(nil, nil)
			Expect(errors.Is(err, perm.ErrDegenerateGrid)).To(BeTrue())
		})

		It("rejects mismatched lookup rows", func() {
			perms, lookup, err := perm.Build(gradientGrid(2, 3))
			Expect(err).NotTo(HaveOccurred())
			_, err = New(perms, lookup[:1])
			Expect(errors.Is(err, perm.ErrDegenerateGrid)).To(BeTrue())
		})

		It("rejects rows that are not permutations", func() {
			perms, lookup, err := perm.Build(gradientGrid(2, 3))
			Expect(err).NotTo(HaveOccurred())
			perms[1][0] = 2
			_, err = New(perms, lookup)
			Expect(errors.Is(err, ErrInvariant)).To(BeTrue())
		})
	})

	Describe("state machine", func() {
		It("refuses to replay before sorting", func() {
			e, _, _ := shuffledEngine(2, 4, 1)
			_, err := e.Visualise(ctx, 5)
			Expect(errors.Is(err, ErrInvalidState)).To(BeTrue())
			Expect(e.State()).To(Equal(StateIdle))
		})

		It("refuses to sort twice", func() {
			e, _, _ := shuffledEngine(2, 4, 1)
			Expect(e.Sort(ctx, sorting.Bubble)).To(Succeed())
			Expect(e.State()).To(Equal(StateSorted))
			Expect(errors.Is(e.Sort(ctx, sorting.Bubble), ErrInvalidState)).To(BeTrue())
		})

		It("refuses to replay twice", func() {
			e, _, _ := shuffledEngine(2, 4, 1)
			Expect(e.Sort(ctx, sorting.Insertion)).To(Succeed())
			_, err := e.Visualise(ctx, 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(e.State()).To(Equal(StateDone))

			_, err = e.Visualise(ctx, 5)
			Expect(errors.Is(err, ErrInvalidState)).To(BeTrue())
		})

		It("stays idle on an unknown algorithm", func() {
			e, _, _ := shuffledEngine(2, 4, 1)
			err := e.Sort(ctx, sorting.Algorithm(0))
			Expect(errors.Is(err, sorting.ErrUnknownAlgorithm)).To(BeTrue())
			Expect(e.State()).To(Equal(StateIdle))
			Expect(e.Traces()).To(BeNil())
		})

		It("leaves the permutations untouched while sorting", func() {
			e, before, _ := shuffledEngine(3, 8, 2)
			Expect(e.Sort(ctx, sorting.Heap)).To(Succeed())
			Expect(e.Frame().Equal(before)).To(BeTrue())
		})
	})

	DescribeTable("animates every algorithm from unsorted to sorted",
		func(alg sorting.Algorithm) {
			e, before, sorted := shuffledEngine(6, 17, 7, WithInvariantChecks(true))
			Expect(e.Sort(ctx, alg)).To(Succeed())

			budget := 12
			want, _ := FrameCount(budget, e.MaxTraceLen())
			frames, err := e.Visualise(ctx, budget)
			Expect(err).NotTo(HaveOccurred())
			Expect(frames).To(HaveLen(want))
			Expect(frames[0].Equal(before)).To(BeTrue(), "first frame must be the unsorted state")
			Expect(frames[len(frames)-1].Equal(sorted)).To(BeTrue(), "last frame must be sorted")
		},
		Entry("bubble", sorting.Bubble),
		Entry("selection", sorting.Selection),
		Entry("insertion", sorting.Insertion),
		Entry("quick", sorting.Quick),
		Entry("heap", sorting.Heap),
		Entry("merge", sorting.Merge),
		Entry("radix", sorting.Radix),
	)

	It("keeps every delta frame a permutation", func() {
		for _, alg := range []sorting.Algorithm{sorting.Bubble, sorting.Quick, sorting.Heap} {
			e, _, _ := shuffledEngine(4, 23, 11)
			Expect(e.Sort(ctx, alg)).To(Succeed())

			err := e.Replay(ctx, 40, func(_ int, _ perm.Grid) error {
				Expect(e.Permutations().Valid()).To(BeTrue(), alg.String())
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
		}
	})

	It("keeps snapshot frames permutations on pass boundaries", func() {
		e, _, _ := shuffledEngine(3, 16, 5)
		Expect(e.Sort(ctx, sorting.Merge)).To(Succeed())

		passes := e.MaxTraceLen() / 16
		Expect(passes).To(Equal(4))

		count := 0
		err := e.Replay(ctx, passes+1, func(_ int, _ perm.Grid) error {
			Expect(e.perms.Valid()).To(BeTrue())
			count++
			return nil
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(passes + 1))
	})

	It("animates a 2x2 grid", func() {
		grid := perm.Grid{
			{{R: 10}, {R: 20}},
			{{G: 10}, {G: 20}},
		}
		perms, lookup, err := perm.Build(grid)
		Expect(err).NotTo(HaveOccurred())
		perm.Mirror(perms)

		e, err := New(perms, lookup)
		Expect(err).NotTo(HaveOccurred())
		Expect(e.Sort(ctx, sorting.Bubble)).To(Succeed())
		Expect(e.MaxTraceLen()).To(Equal(1))

		frames, err := e.Visualise(ctx, 5)
		Expect(err).NotTo(HaveOccurred())
		Expect(frames).To(HaveLen(2))
		Expect(frames[0]).To(Equal(perm.Grid{
			{{R: 20}, {R: 10}},
			{{G: 20}, {G: 10}},
		}))
		Expect(frames[1].Equal(grid)).To(BeTrue())
	})

	It("produces a single frame when nothing needs sorting", func() {
		grid := gradientGrid(3, 5)
		perms, lookup, err := perm.Build(grid)
		Expect(err).NotTo(HaveOccurred())

		e, err := New(perms, lookup)
		Expect(err).NotTo(HaveOccurred())
		Expect(e.Sort(ctx, sorting.Bubble)).To(Succeed())

		frames, err := e.Visualise(ctx, 30)
		Expect(err).NotTo(HaveOccurred())
		Expect(frames).To(HaveLen(1))
		Expect(frames[0].Equal(grid)).To(BeTrue())
	})

	It("replays rows with traces of different lengths", func() {
		grid := gradientGrid(2, 6)
		perms, lookup, err := perm.Build(grid)
		Expect(err).NotTo(HaveOccurred())
		perms[1] = []int{5, 4, 3, 2, 1, 0}

		e, err := New(perms, lookup, WithInvariantChecks(true))
		Expect(err).NotTo(HaveOccurred())
		Expect(e.Sort(ctx, sorting.Bubble)).To(Succeed())
		Expect(e.Traces()[0].Len()).To(Equal(0))
		Expect(e.Traces()[1].Len()).To(Equal(15))

		frames, err := e.Visualise(ctx, 100)
		Expect(err).NotTo(HaveOccurred())
		Expect(frames).To(HaveLen(16))
		for _, f := range frames {
			Expect(f[0]).To(Equal(grid[0]))
		}
		Expect(frames[15].Equal(grid)).To(BeTrue())
	})

	It("renders the same frames with any worker count", func() {
		for _, alg := range []sorting.Algorithm{sorting.Quick, sorting.Radix} {
			seq, _, _ := shuffledEngine(9, 31, 21, WithSeed(4))
			par, _, _ := shuffledEngine(9, 31, 21, WithSeed(4), WithWorkers(4))

			Expect(seq.Sort(ctx, alg)).To(Succeed())
			Expect(par.Sort(ctx, alg)).To(Succeed())

			a, err := seq.Visualise(ctx, 20)
			Expect(err).NotTo(HaveOccurred())
			b, err := par.Visualise(ctx, 20)
			Expect(err).NotTo(HaveOccurred())

			Expect(b).To(HaveLen(len(a)))
			for i := range a {
				Expect(b[i].Equal(a[i])).To(BeTrue(), "%s frame %d", alg, i)
			}
		}
	})

	It("stops when the context is cancelled", func() {
		e, _, _ := shuffledEngine(4, 10, 3, WithWorkers(2))
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		err := e.Sort(cctx, sorting.Bubble)
		Expect(errors.Is(err, context.Canceled)).To(BeTrue())
		Expect(e.State()).To(Equal(StateIdle))
	})

	It("aborts when the frame callback fails", func() {
		e, _, _ := shuffledEngine(2, 10, 3)
		Expect(e.Sort(ctx, sorting.Selection)).To(Succeed())

		boom := errors.New("boom")
		err := e.Replay(ctx, 10, func(i int, _ perm.Grid) error {
			if i == 2 {
				return boom
			}
			return nil
		})
		Expect(err).To(MatchError(boom))
		Expect(e.State()).To(Equal(StateDone))
	})
})
