package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/viz"
)

var (
	dataDir string
	verbose bool

	// Run configuration
	configFile string
	presetName string
	seed       int64
	fps        int
	duration   float64
	frames     int
	workers    int

	// Source
	colourMap string
	startHex  string
	endHex    string
	colours   int
	space     string
	longHue   bool
	graphic   string
	rows      int
	columns   int
	imagePath string
	maxWidth  int
	randomise bool
	reverse   bool
	mirror    bool

	// Output
	width   int
	height  int
	scale   int
	outPath string
	noSave  bool
	theme   string

	// compare / bench
	algorithmNames []string
	trials         int
	parallel       int
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if errors.Is(err, context.Canceled) {
		os.Exit(130)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sortviz",
		Short:         "animate sorting algorithms on colour gradients and images",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".sortviz", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "sort, render and save an animation",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAnimation,
	}
	addRunFlags(runCmd)
	runCmd.Flags().StringVarP(&outPath, "out", "o", "", "also write the GIF to this path")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run in the data directory")

	playCmd := &cobra.Command{
		Use:   "play [algorithm]",
		Short: "sort and play the animation in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  playAnimation,
	}
	addRunFlags(playCmd)
	playCmd.Flags().StringVar(&theme, "theme", viz.ThemeCyberpunk.Name,
		fmt.Sprintf("player theme (%s)", strings.Join(viz.ThemeNames(), ", ")))

	traceCmd := &cobra.Command{
		Use:   "export-trace [algorithm]",
		Short: "record the sort traces and write them as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportTrace,
	}
	addRunFlags(traceCmd)
	traceCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a stored run and its configuration",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	statsCmd := &cobra.Command{
		Use:   "stats [run_id]",
		Short: "plot the trace lengths and replay plan of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  runStats,
	}

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list sorting algorithms",
		Args:  cobra.NoArgs,
		RunE:  listAlgorithms,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [algorithm]",
		Short: "list presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	gradientCmd := &cobra.Command{
		Use:   "gradient [start end]",
		Short: "preview a gradient or colour map",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("expected no arguments or a start and end colour, got %d", len(args))
			}
			return nil
		},
		RunE: previewGradient,
	}
	addSourceFlags(gradientCmd)
	gradientCmd.Flags().IntVar(&width, "width", 0, "output image width")
	gradientCmd.Flags().IntVar(&height, "height", 0, "output image height")
	gradientCmd.Flags().StringVarP(&outPath, "out", "o", "", "write the gradient as an image (png, jpg, gif, bmp)")

	batchCmd := &cobra.Command{
		Use:   "batch [scenario]",
		Short: "run every step of a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}
	batchCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the runs in the data directory")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "sort the same input with several algorithms",
		Args:  cobra.NoArgs,
		RunE:  compareAlgorithms,
	}
	addRunFlags(compareCmd)
	compareCmd.Flags().StringSliceVar(&algorithmNames, "algorithms", nil, "algorithms to compare (default all)")

	benchCmd := &cobra.Command{
		Use:   "bench [algorithm]",
		Short: "count events over many shuffled inputs",
		Args:  cobra.MaximumNArgs(1),
		RunE:  benchAlgorithm,
	}
	addRunFlags(benchCmd)
	benchCmd.Flags().IntVar(&trials, "trials", 50, "number of shuffled inputs")
	benchCmd.Flags().IntVar(&parallel, "parallel", 1, "trials run at once")

	rootCmd.AddCommand(runCmd, playCmd, traceCmd, listCmd, showCmd, statsCmd,
		algorithmsCmd, presetsCmd, gradientCmd, batchCmd, compareCmd, benchCmd)
	return rootCmd
}

// addSourceFlags registers the flags describing the input grid.
func addSourceFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&colourMap, "colour-map", "plasma", "named colour map (viridis, inferno, plasma, magma)")
	f.StringVar(&startHex, "start", "", "gradient start colour, overrides --colour-map")
	f.StringVar(&endHex, "end", "", "gradient end colour")
	f.IntVarP(&colours, "colours", "n", 128, "number of distinct colours")
	f.StringVar(&space, "space", "rgb", "blend space (rgb, hsv, lab, hcl, luv)")
	f.BoolVar(&longHue, "long-hue", false, "blend hue the long way round")
	f.StringVar(&graphic, "graphic", "pixels", "gradient layout (pixels, bars)")
	f.IntVar(&rows, "rows", 0, "number of rows (default from the output aspect)")
	f.IntVar(&columns, "columns", 0, "gradient width in columns (default one per colour)")
}

// addRunFlags registers the flags every sorting command shares.
func addRunFlags(cmd *cobra.Command) {
	addSourceFlags(cmd)
	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	f.StringVar(&presetName, "preset", "", "use preset configuration")
	f.Int64Var(&seed, "seed", 0, "random seed (default time based)")
	f.IntVar(&fps, "fps", 16, "frames per second")
	f.Float64Var(&duration, "duration", 5, "animation length in seconds")
	f.IntVar(&frames, "frames", 0, "frame budget, overrides fps*duration")
	f.IntVar(&workers, "workers", 0, "rows processed concurrently (default GOMAXPROCS)")
	f.StringVar(&imagePath, "image", "", "sort the pixels of this image instead of a gradient")
	f.IntVar(&maxWidth, "max-width", 200, "shrink wider images to this many columns")
	f.BoolVar(&randomise, "randomise", true, "shuffle every row before sorting")
	f.BoolVar(&reverse, "reverse", false, "reverse the row order")
	f.BoolVar(&mirror, "mirror", false, "reverse every row")
	f.IntVar(&width, "width", 600, "output width in pixels")
	f.IntVar(&height, "height", 200, "output height in pixels")
	f.IntVar(&scale, "scale", 0, "pixels per grid cell, overrides width and height")
}
