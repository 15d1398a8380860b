package replay

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"slices"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/sortviz/internal/perm"
	"github.com/san-kum/sortviz/internal/sorting"
)

// State is a stage of the engine lifecycle.
type State uint8

const (
	StateIdle State = iota
	StateSorted
	StateReplaying
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSorted:
		return "sorted"
	case StateReplaying:
		return "replaying"
	case StateDone:
		return "done"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Engine records one trace per row and replays them into frames.
// An Engine is single-use and not safe for concurrent calls.
type Engine struct {
	perms  perm.Permutations
	lookup perm.Lookup
	width  int

	algorithm sorting.Algorithm
	kind      sorting.Kind
	traces    []sorting.Trace
	deltas    [][]sorting.Swap
	streams   [][]int
	maxLen    int

	state   State
	workers int
	seed    int64
	checks  bool
	logger  *log.Logger
}

type Option func(*Engine)

// WithWorkers sets how many rows are processed concurrently. Values below 2
// keep everything on the calling goroutine.
func WithWorkers(n int) Option {
	return func(e *Engine) { e.workers = n }
}

// WithSeed seeds the per-row random sources used by randomized algorithms.
// Row r uses seed+r, so results do not depend on the worker count.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.seed = seed }
}

func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithInvariantChecks verifies after every step that live rows are still
// permutations wherever that is guaranteed.
func WithInvariantChecks(on bool) Option {
	return func(e *Engine) { e.checks = on }
}

// New creates an idle engine that takes ownership of perms. The lookup is
// only read.
func New(perms perm.Permutations, lookup perm.Lookup, opts ...Option) (*Engine, error) {
	if len(perms) == 0 || len(perms[0]) == 0 {
		return nil, fmt.Errorf("%w: no rows or columns", perm.ErrDegenerateGrid)
	}
	if len(lookup) != len(perms) {
		return nil, fmt.Errorf("%w: %d permutation rows, %d lookup rows", perm.ErrDegenerateGrid, len(perms), len(lookup))
	}
	width := len(perms[0])
	for r := range perms {
		if len(perms[r]) != width || len(lookup[r]) != width {
			return nil, fmt.Errorf("%w: row %d does not have %d columns", perm.ErrDegenerateGrid, r, width)
		}
		if !perm.IsPermutation(perms[r]) {
			return nil, fmt.Errorf("%w: row %d", ErrInvariant, r)
		}
	}

	e := &Engine{
		perms:   perms,
		lookup:  lookup,
		width:   width,
		state:   StateIdle,
		workers: 1,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func (e *Engine) State() State                 { return e.state }
func (e *Engine) Algorithm() sorting.Algorithm { return e.algorithm }
func (e *Engine) MaxTraceLen() int             { return e.maxLen }

// Permutations is the live state behind the current frame. It is only
// stable inside an emit callback or outside a replay and must not be
// modified.
func (e *Engine) Permutations() perm.Permutations { return e.perms }

// Traces returns the recorded trace of every row, indexed by row.
func (e *Engine) Traces() []sorting.Trace { return e.traces }

// Frame materializes the current permutation state.
func (e *Engine) Frame() perm.Grid {
	return perm.Materialize(e.perms, e.lookup)
}

// Sort runs alg on a copy of every row and records the traces. The live
// permutations are left untouched until replay.
func (e *Engine) Sort(ctx context.Context, alg sorting.Algorithm) error {
	if e.state != StateIdle {
		return fmt.Errorf("%w: sort called while %s", ErrInvalidState, e.state)
	}
	kind := alg.Kind()
	if kind == 0 {
		return fmt.Errorf("%w: %s", sorting.ErrUnknownAlgorithm, alg)
	}

	traces := make([]sorting.Trace, len(e.perms))
	err := e.forEachRow(ctx, func(r int) error {
		keys := slices.Clone(e.perms[r])
		rng := rand.New(rand.NewSource(e.seed + int64(r)))
		tr, err := alg.Sort(keys, rng)
		if err != nil {
			return fmt.Errorf("row %d: %w", r, err)
		}
		traces[r] = tr
		return nil
	})
	if err != nil {
		return err
	}

	e.algorithm, e.kind, e.traces = alg, kind, traces
	e.maxLen = 0
	switch kind {
	case sorting.Delta:
		e.deltas = make([][]sorting.Swap, len(traces))
		for r, tr := range traces {
			e.deltas[r] = tr.(sorting.DeltaTrace).Swaps
		}
	case sorting.Snapshot:
		e.streams = make([][]int, len(traces))
		for r, tr := range traces {
			e.streams[r] = tr.(sorting.SnapshotTrace).Values
		}
	}
	for _, tr := range traces {
		e.maxLen = max(e.maxLen, tr.Len())
	}

	e.state = StateSorted
	e.logger.Debug("traces recorded", "algorithm", alg, "kind", kind, "rows", len(traces), "max_events", e.maxLen)
	return nil
}

// Replay produces the animation frame by frame, calling emit with each
// frame in order. The number of frames follows [FrameCount]. Any error,
// from emit or the context, aborts the replay and leaves the engine done.
func (e *Engine) Replay(ctx context.Context, budget int, emit func(index int, frame perm.Grid) error) error {
	if e.state != StateSorted {
		return fmt.Errorf("%w: replay called while %s", ErrInvalidState, e.state)
	}
	e.state = StateReplaying
	defer func() { e.state = StateDone }()

	frames, steps := FrameCount(budget, e.maxLen)
	plan := Plan(e.maxLen, steps)
	e.logger.Debug("replay plan", "budget", budget, "frames", frames, "events", e.maxLen, "chunk", plan)

	if err := emit(0, e.Frame()); err != nil {
		return err
	}

	cursor := 0
	for i, chunk := range plan {
		from, to := cursor, cursor+chunk
		err := e.forEachRow(ctx, func(r int) error {
			e.step(r, from, to)
			return nil
		})
		if err != nil {
			return err
		}
		if e.checks {
			if err := e.verify(to); err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
		}
		if err := emit(i+1, e.Frame()); err != nil {
			return err
		}
		cursor = to
	}
	return nil
}

// Visualise replays into a slice holding every frame.
func (e *Engine) Visualise(ctx context.Context, budget int) ([]perm.Grid, error) {
	frames, _ := FrameCount(budget, e.maxLen)
	out := make([]perm.Grid, 0, frames)
	err := e.Replay(ctx, budget, func(_ int, frame perm.Grid) error {
		out = append(out, frame)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (e *Engine) step(r, from, to int) {
	switch e.kind {
	case sorting.Delta:
		applyDeltas(e.perms[r], e.deltas[r], from, to)
	case sorting.Snapshot:
		applySnapshot(e.perms[r], e.streams[r], from, to)
	}
}

// verify checks the rows that must be permutations after the step ending
// at event cursor. Delta rows always must. Snapshot rows only must once the
// cursor sits on a snapshot boundary or past the end of their stream, since
// a chunk may stop halfway through overwriting a row.
func (e *Engine) verify(cursor int) error {
	for r, row := range e.perms {
		if e.kind == sorting.Snapshot && cursor%e.width != 0 && cursor < len(e.streams[r]) {
			continue
		}
		if !perm.IsPermutation(row) {
			return fmt.Errorf("%w: row %d after event %d", ErrInvariant, r, cursor)
		}
	}
	return nil
}

// forEachRow runs fn for every row and returns once all calls finished.
// With several workers each row is still handled by exactly one goroutine.
func (e *Engine) forEachRow(ctx context.Context, fn func(r int) error) error {
	if e.workers < 2 {
		for r := range e.perms {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(r); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for r := range e.perms {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(r)
		})
	}
	return g.Wait()
}
