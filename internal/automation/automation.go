package automation

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/sorting"
)

// Scenario is a scripted batch of runs sharing one base configuration.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Base        *config.Config `yaml:"base"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep overrides parts of the base configuration for one run.
// Zero values keep the base value.
type ScenarioStep struct {
	Algorithm string `yaml:"algorithm"`
	Preset    string `yaml:"preset"`
	Seed      int64  `yaml:"seed"`
	Frames    int    `yaml:"frames"`
	Colours   int    `yaml:"colours"`
	ColourMap string `yaml:"colour_map"`
	Image     string `yaml:"image"`
	Randomise *bool  `yaml:"randomise"`
	Reverse   *bool  `yaml:"reverse"`
	Mirror    *bool  `yaml:"mirror"`
	SaveAs    string `yaml:"save_as"`
}

// Saver persists a finished run and returns its id.
type Saver interface {
	Save(cfg *config.Config, res *experiment.Result) (string, error)
}

type StepResult struct {
	Step   int
	Config *config.Config
	Result *experiment.Result
	RunID  string
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	scenario := Scenario{Base: config.DefaultConfig()}
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	return &scenario, nil
}

// StepConfig resolves the full configuration of one step.
func (s *Scenario) StepConfig(step ScenarioStep) (*config.Config, error) {
	var cfg config.Config
	if step.Preset != "" {
		alg := step.Algorithm
		if alg == "" && s.Base != nil {
			alg = s.Base.Algorithm
		}
		if parsed, err := sorting.Parse(alg); err == nil {
			alg = parsed.String()
		}
		preset := config.GetPreset(alg, step.Preset)
		if preset == nil {
			return nil, fmt.Errorf("unknown preset %q for %s", step.Preset, alg)
		}
		cfg = *preset
	} else if s.Base != nil {
		cfg = *s.Base
	} else {
		cfg = *config.DefaultConfig()
	}

	if step.Algorithm != "" {
		cfg.Algorithm = step.Algorithm
	}
	if step.Seed != 0 {
		cfg.Seed = step.Seed
	}
	if step.Frames != 0 {
		cfg.Frames = step.Frames
	}
	if step.Colours != 0 {
		cfg.Source.Colours = step.Colours
	}
	if step.ColourMap != "" {
		cfg.Source.ColourMap = step.ColourMap
	}
	if step.Image != "" {
		cfg.Source.Image = step.Image
	}
	if step.Randomise != nil {
		cfg.Randomise = *step.Randomise
	}
	if step.Reverse != nil {
		cfg.Reverse = *step.Reverse
	}
	if step.Mirror != nil {
		cfg.Mirror = *step.Mirror
	}
	if step.SaveAs != "" {
		cfg.Output.Path = step.SaveAs
	}
	return &cfg, cfg.Validate()
}

// RunScenario executes every step in order. Finished runs are handed to
// saver when one is given, and written to their save_as path when set.
// On error the results of the steps before the failing one are returned.
func RunScenario(ctx context.Context, scenario *Scenario, saver Saver, logger *log.Logger) ([]StepResult, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		cfg, err := scenario.StepConfig(step)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		logger.Infof("Running step %d/%d: %s", i+1, len(scenario.Steps), cfg.Algorithm)

		res, err := runOnce(ctx, cfg, logger)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		sr := StepResult{Step: i + 1, Config: cfg, Result: res}
		if cfg.Output.Path != "" {
			if err := writeGIF(cfg, res); err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
		}
		if saver != nil {
			if sr.RunID, err = saver.Save(cfg, res); err != nil {
				return results, fmt.Errorf("step %d store: %w", i+1, err)
			}
		}
		results = append(results, sr)
	}

	return results, nil
}

func runOnce(ctx context.Context, cfg *config.Config, logger *log.Logger) (*experiment.Result, error) {
	exp := experiment.New(cfg, logger)
	if err := exp.Setup(); err != nil {
		return nil, fmt.Errorf("setup: %w", err)
	}
	res, err := exp.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("run: %w", err)
	}
	return res, nil
}

func writeGIF(cfg *config.Config, res *experiment.Result) error {
	f, err := os.Create(cfg.Output.Path)
	if err != nil {
		return err
	}
	defer f.Close()
	return res.WriteGIF(f, cfg.Output)
}

// SweepResult compares one algorithm against the others on the same input.
type SweepResult struct {
	Algorithm   sorting.Algorithm
	Kind        sorting.Kind
	Frames      int
	MaxEvents   int
	TotalEvents int
	Elapsed     time.Duration
}

// RunSweep sorts the same seeded input with every algorithm in algs.
func RunSweep(ctx context.Context, base *config.Config, algs []sorting.Algorithm, logger *log.Logger) ([]SweepResult, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := base.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	results := make([]SweepResult, 0, len(algs))
	for i, alg := range algs {
		cfg := *base
		cfg.Algorithm = alg.String()
		cfg.Seed = seed

		res, err := runOnce(ctx, &cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", alg, err)
		}

		sr := SweepResult{
			Algorithm: alg,
			Kind:      res.Kind,
			Frames:    len(res.Frames),
			Elapsed:   res.Elapsed,
		}
		sr.MaxEvents, sr.TotalEvents = eventCounts(res.TraceLens)
		results = append(results, sr)

		logger.Debugf("Sweep %d/%d: %s", i+1, len(algs), alg)
	}
	return results, nil
}

// MonteCarloConfig repeats one configuration with different random inputs.
type MonteCarloConfig struct {
	Base      *config.Config
	NumTrials int
	Seed      int64
	// Parallel is how many trials run at once. Values below 2 run them
	// one after another.
	Parallel int
}

type MonteCarloResult struct {
	TrialID     int
	Seed        int64
	MaxEvents   int
	TotalEvents int
}

// RunMonteCarlo runs NumTrials shuffled inputs, each with its own seed
// drawn from Seed. Results are ordered by trial regardless of Parallel.
func RunMonteCarlo(ctx context.Context, mc *MonteCarloConfig, logger *log.Logger) ([]MonteCarloResult, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rng := rand.New(rand.NewSource(mc.Seed))
	if mc.Seed == 0 {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	seeds := make([]int64, mc.NumTrials)
	for i := range seeds {
		seeds[i] = rng.Int63() | 1
	}

	results := make([]MonteCarloResult, mc.NumTrials)
	var finished atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(mc.Parallel, 1))
	for trial := range results {
		g.Go(func() error {
			cfg := *mc.Base
			cfg.Randomise = true
			cfg.Seed = seeds[trial]

			res, err := runOnce(gctx, &cfg, logger)
			if err != nil {
				return fmt.Errorf("trial %d: %w", trial, err)
			}

			r := MonteCarloResult{TrialID: trial, Seed: cfg.Seed}
			r.MaxEvents, r.TotalEvents = eventCounts(res.TraceLens)
			results[trial] = r

			if n := finished.Add(1); n%10 == 0 {
				logger.Infof("Monte Carlo: %d/%d trials complete", n, mc.NumTrials)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// MonteCarloStats summarises the total event counts of all trials.
func MonteCarloStats(results []MonteCarloResult) (lo, hi int, mean, stddev float64) {
	if len(results) == 0 {
		return 0, 0, 0, 0
	}
	lo, hi = results[0].TotalEvents, results[0].TotalEvents
	sum := 0.0
	for _, r := range results {
		lo, hi = min(lo, r.TotalEvents), max(hi, r.TotalEvents)
		sum += float64(r.TotalEvents)
	}
	mean = sum / float64(len(results))

	var sq float64
	for _, r := range results {
		d := float64(r.TotalEvents) - mean
		sq += d * d
	}
	stddev = math.Sqrt(sq / float64(len(results)))
	return lo, hi, mean, stddev
}

func eventCounts(lens []int) (maxEvents, total int) {
	for _, n := range lens {
		maxEvents = max(maxEvents, n)
		total += n
	}
	return maxEvents, total
}
