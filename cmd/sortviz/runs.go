package main

import (
	"fmt"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/replay"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/storage"
	"github.com/san-kum/sortviz/internal/viz"
)

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs stored in", dataDir)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tALGORITHM\tSOURCE\tSIZE\tFRAMES\tEVENTS\tTIME")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t%d\t%d\t%s\n",
			run.ID, run.Algorithm, run.Source, run.Cols, run.Rows,
			run.Frames, run.TotalEvents, run.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	meta, err := store.Load(args[0])
	if err != nil {
		return fmt.Errorf("load run %s: %w", args[0], err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "id:\t%s\n", meta.ID)
	fmt.Fprintf(w, "algorithm:\t%s (%s)\n", meta.Algorithm, meta.Kind)
	fmt.Fprintf(w, "source:\t%s, %d columns x %d rows\n", meta.Source, meta.Cols, meta.Rows)
	fmt.Fprintf(w, "seed:\t%d\n", meta.Seed)
	fmt.Fprintf(w, "frames:\t%d of %d requested, %.1f ms each\n", meta.Frames, meta.Budget, meta.DelayMS)
	fmt.Fprintf(w, "events:\t%d max per row, %d total\n", meta.MaxEvents, meta.TotalEvents)
	fmt.Fprintf(w, "elapsed:\t%d ms\n", meta.ElapsedMS)
	fmt.Fprintf(w, "animation:\t%s\n", store.AnimationPath(meta.ID))
	if err := w.Flush(); err != nil {
		return err
	}

	if meta.Config == nil {
		return nil
	}
	fmt.Println("\nconfig:")
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(meta.Config); err != nil {
		return err
	}
	return enc.Close()
}

func runStats(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())
	store := storage.New(dataDir)
	meta, err := store.Load(args[0])
	if err != nil {
		return fmt.Errorf("load run %s: %w", args[0], err)
	}
	lens, err := store.LoadTraceLengths(args[0])
	if err != nil {
		return fmt.Errorf("load traces: %w", err)
	}
	if len(lens) == 0 {
		fmt.Println("run has no rows")
		return nil
	}

	total := 0
	for _, n := range lens {
		total += n
	}
	fmt.Printf("%s: %d rows, events min %d, max %d, mean %.1f\n",
		meta.Algorithm, len(lens), slices.Min(lens), slices.Max(lens), float64(total)/float64(len(lens)))
	fmt.Printf("longest traces: %v\n\n", sorting.Largest(lens, 5))
	fmt.Println(viz.TraceChart(lens, 60, 10))

	_, steps := replay.FrameCount(meta.Budget, meta.MaxEvents)
	if plan := replay.Plan(meta.MaxEvents, steps); len(plan) > 1 {
		fmt.Println()
		fmt.Println(viz.PlanChart(plan, 60, 6))
	}

	series, err := store.LoadMetrics(args[0])
	if err != nil {
		logger.Debug("no metrics stored", "run", args[0], "err", err)
		return nil
	}
	if chart := viz.MetricsChart(series, 60, 8); chart != "" {
		fmt.Println()
		fmt.Println(chart)
	}
	return nil
}
