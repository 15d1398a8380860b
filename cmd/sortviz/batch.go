package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/automation"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/storage"
	"github.com/san-kum/sortviz/internal/viz"
)

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("load scenario: %w", err)
	}
	logger.Info("scenario loaded", "name", scenario.Name, "steps", len(scenario.Steps))

	var saver automation.Saver
	if !noSave {
		store := storage.New(dataDir)
		if err := store.Init(); err != nil {
			return err
		}
		saver = store
	}

	prog := newProgress(logger)
	results, err := automation.RunScenario(ctx, scenario, saver, logger)
	printSteps(results)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Scenario %q finished %d steps", scenario.Name, len(results)))
	return nil
}

func printSteps(results []automation.StepResult) {
	if len(results) == 0 {
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tALGORITHM\tFRAMES\tRUN\tFILE")
	for _, r := range results {
		runID := r.RunID
		if runID == "" {
			runID = "-"
		}
		path := r.Config.Output.Path
		if path == "" {
			path = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", r.Step, r.Result.Algorithm, len(r.Result.Frames), runID, path)
	}
	w.Flush()
}

func compareAlgorithms(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := buildConfig(cmd, nil)
	if err != nil {
		return err
	}
	algs := sorting.All()
	if len(algorithmNames) > 0 {
		algs = algs[:0:0]
		for _, name := range algorithmNames {
			alg, err := sorting.Parse(name)
			if err != nil {
				return err
			}
			algs = append(algs, alg)
		}
	}

	prog := newProgress(logger)
	results, err := automation.RunSweep(ctx, cfg, algs, logger)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Compared %d algorithms", len(results)))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tTRACE\tFRAMES\tMAX EVENTS\tTOTAL EVENTS\tTIME")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n",
			r.Algorithm, r.Kind, r.Frames, r.MaxEvents, r.TotalEvents, r.Elapsed.Round(time.Millisecond))
	}
	return w.Flush()
}

func benchAlgorithm(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if trials < 1 {
		return fmt.Errorf("trials must be positive, got %d", trials)
	}
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	// Only the traces matter, so keep the replay to two frames.
	cfg.Frames = 2

	prog := newProgress(logger)
	results, err := automation.RunMonteCarlo(ctx, &automation.MonteCarloConfig{
		Base:      cfg,
		NumTrials: trials,
		Seed:      cfg.Seed,
		Parallel:  parallel,
	}, logger)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Benchmarked %s over %d trials", cfg.Algorithm, len(results)))

	lo, hi, mean, stddev := automation.MonteCarloStats(results)
	fmt.Printf("%s total events: min %d, max %d, mean %.1f, stddev %.1f\n\n", cfg.Algorithm, lo, hi, mean, stddev)

	totals := make([]int, len(results))
	for i, r := range results {
		totals[i] = r.TotalEvents
	}
	fmt.Println(viz.SparklineChart(floats(totals), 60))
	return nil
}

func floats(v []int) []float64 {
	out := make([]float64, len(v))
	for i, n := range v {
		out[i] = float64(n)
	}
	return out
}
