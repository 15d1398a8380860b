package experiment

import (
	"context"
	"fmt"
	"image"
	"io"
	"math/rand"
	"runtime"
	"time"

	"github.com/charmbracelet/log"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/media"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/perm"
	"github.com/san-kum/sortviz/internal/replay"
	"github.com/san-kum/sortviz/internal/sorting"
)

// Result is everything one run produced.
type Result struct {
	Algorithm sorting.Algorithm
	Kind      sorting.Kind
	Source    string
	Seed      int64
	Rows      int
	Cols      int
	Budget    int
	Frames    []perm.Grid
	Delay     time.Duration
	TraceLens []int
	Plan      []int
	// Metrics holds one value per frame for every sortedness metric.
	Metrics   map[string][]float64
	Elapsed   time.Duration
}

type Experiment struct {
	cfg      *config.Config
	registry *Registry
	logger   *log.Logger

	algorithm sorting.Algorithm
	seed      int64
	grid      perm.Grid
	engine    *replay.Engine
}

// New creates an experiment for cfg. A nil logger logs nowhere.
func New(cfg *config.Config, logger *log.Logger) *Experiment {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Experiment{
		cfg:      cfg,
		registry: NewRegistry(),
		logger:   logger,
	}
}

// Setup validates the config, builds the source grid and prepares the
// starting permutation.
func (e *Experiment) Setup() error {
	if err := e.cfg.Validate(); err != nil {
		return err
	}
	alg, err := sorting.Parse(e.cfg.Algorithm)
	if err != nil {
		return err
	}

	kind := SourceKind(e.cfg)
	source, err := e.registry.GetSource(kind)
	if err != nil {
		return err
	}
	grid, err := source(e.cfg)
	if err != nil {
		return fmt.Errorf("build %s source: %w", kind, err)
	}

	perms, lookup, err := perm.Build(grid)
	if err != nil {
		return err
	}

	seed := e.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if e.cfg.Randomise {
		perm.Randomize(perms, rand.New(rand.NewSource(seed)))
	}
	if e.cfg.Reverse {
		perm.Reverse(perms)
	}
	if e.cfg.Mirror {
		perm.Mirror(perms)
	}

	workers := e.cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	engine, err := replay.New(perms, lookup,
		replay.WithWorkers(workers),
		replay.WithSeed(seed),
		replay.WithLogger(e.logger),
	)
	if err != nil {
		return err
	}

	e.algorithm, e.seed, e.grid, e.engine = alg, seed, grid, engine
	e.logger.Debug("source ready", "source", kind, "rows", grid.Rows(), "cols", grid.Cols(), "seed", seed)
	return nil
}

// Run sorts every row and renders the frames.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if e.engine == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	start := time.Now()
	if err := e.engine.Sort(ctx, e.algorithm); err != nil {
		return nil, err
	}

	budget := e.cfg.Budget()
	recorder := metrics.NewRecorder(metrics.Default()...)
	var frames []perm.Grid
	err := e.engine.Replay(ctx, budget, func(_ int, frame perm.Grid) error {
		frames = append(frames, frame)
		recorder.Observe(e.engine.Permutations())
		return nil
	})
	if err != nil {
		return nil, err
	}

	traces := e.engine.Traces()
	lens := make([]int, len(traces))
	for i, tr := range traces {
		lens[i] = tr.Len()
	}
	_, steps := replay.FrameCount(budget, e.engine.MaxTraceLen())

	res := &Result{
		Algorithm: e.algorithm,
		Kind:      e.algorithm.Kind(),
		Source:    SourceKind(e.cfg),
		Seed:      e.seed,
		Rows:      e.grid.Rows(),
		Cols:      e.grid.Cols(),
		Budget:    budget,
		Frames:    frames,
		Delay:     FrameDelay(e.cfg.Duration, len(frames)),
		TraceLens: lens,
		Plan:      replay.Plan(e.engine.MaxTraceLen(), steps),
		Metrics:   recorder.Series(),
		Elapsed:   time.Since(start),
	}
	if len(frames) < budget {
		e.logger.Info("fewer events than frames, stretching frame delay",
			"frames", len(frames), "budget", budget, "delay", res.Delay)
	}
	return res, nil
}

// Trace only sorts and returns the recorded traces, skipping the replay.
func (e *Experiment) Trace(ctx context.Context) (sorting.Algorithm, []sorting.Trace, error) {
	if e.engine == nil {
		return 0, nil, fmt.Errorf("experiment not setup")
	}
	if err := e.engine.Sort(ctx, e.algorithm); err != nil {
		return 0, nil, err
	}
	return e.algorithm, e.engine.Traces(), nil
}

// FrameDelay spreads frames evenly over duration seconds, so an animation
// that got fewer frames than requested still plays for the same time.
func FrameDelay(duration float64, frames int) time.Duration {
	if frames <= 0 || duration <= 0 {
		return 0
	}
	return time.Duration(duration * float64(time.Second) / float64(frames))
}

// OutputSize returns the rendered frame size for a grid of cols x rows.
func OutputSize(out config.OutputConfig, cols, rows int) (width, height int) {
	if out.Scale > 0 {
		return cols * out.Scale, rows * out.Scale
	}
	width, height = out.Width, out.Height
	if width <= 0 {
		width = cols
	}
	if height <= 0 {
		height = rows
	}
	return width, height
}

// Images scales every frame to the configured output size.
func (r *Result) Images(out config.OutputConfig) []*image.RGBA {
	w, h := OutputSize(out, r.Cols, r.Rows)
	imgs := make([]*image.RGBA, len(r.Frames))
	for i, f := range r.Frames {
		imgs[i] = media.Scale(f, w, h)
	}
	return imgs
}

// WriteGIF encodes the animation at the configured output size.
func (r *Result) WriteGIF(w io.Writer, out config.OutputConfig) error {
	return media.EncodeGIF(w, r.Images(out), r.Delay)
}
