package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/storage"
	"github.com/san-kum/sortviz/internal/viz"
)

// buildConfig resolves the run configuration: a preset or config file or
// the defaults, then every flag the user set explicitly.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if len(args) > 0 {
		cfg.Algorithm = args[0]
	}
	alg, err := sorting.Parse(cfg.Algorithm)
	if err != nil {
		return nil, err
	}
	cfg.Algorithm = alg.String()

	if presetName != "" {
		p := config.GetPreset(cfg.Algorithm, presetName)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q for %s (available: %v)", presetName, cfg.Algorithm, config.ListPresets(cfg.Algorithm))
		}
		cfg = p
	}

	applyFlags(cmd, cfg)
	return cfg, cfg.Validate()
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	changed := func(name string) bool {
		return f.Lookup(name) != nil && f.Changed(name)
	}

	if changed("seed") {
		cfg.Seed = seed
	}
	if changed("fps") {
		cfg.FPS = fps
	}
	if changed("duration") {
		cfg.Duration = duration
	}
	if changed("frames") {
		cfg.Frames = frames
	}
	if changed("workers") {
		cfg.Workers = workers
	}
	if changed("randomise") {
		cfg.Randomise = randomise
	}
	if changed("reverse") {
		cfg.Reverse = reverse
	}
	if changed("mirror") {
		cfg.Mirror = mirror
	}

	if changed("colour-map") {
		cfg.Source.ColourMap = colourMap
		cfg.Source.Start, cfg.Source.End = "", ""
	}
	if changed("start") {
		cfg.Source.Start = startHex
	}
	if changed("end") {
		cfg.Source.End = endHex
	}
	if changed("colours") {
		cfg.Source.Colours = colours
	}
	if changed("space") {
		cfg.Source.Space = space
	}
	if changed("long-hue") {
		cfg.Source.LongHue = longHue
	}
	if changed("graphic") {
		cfg.Source.Graphic = graphic
	}
	if changed("rows") {
		cfg.Source.Rows = rows
	}
	if changed("columns") {
		cfg.Source.Columns = columns
	}
	if changed("image") {
		cfg.Source.Image = imagePath
	}
	if changed("max-width") {
		cfg.Source.MaxWidth = maxWidth
	}

	if changed("width") {
		cfg.Output.Width = width
	}
	if changed("height") {
		cfg.Output.Height = height
	}
	if changed("scale") {
		cfg.Output.Scale = scale
	}
	if changed("out") && outPath != "" {
		cfg.Output.Path = outPath
	}
}

func runAnimation(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	exp := experiment.New(cfg, logger)
	if err := exp.Setup(); err != nil {
		return fmt.Errorf("setup: %w", err)
	}
	res, err := exp.Run(ctx)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	prog.done(fmt.Sprintf("Sorted %d rows with %s into %d frames", res.Rows, res.Algorithm, len(res.Frames)))

	if cfg.Output.Path != "" {
		if err := writeAnimation(cfg.Output.Path, cfg, res); err != nil {
			return err
		}
		logger.Info("animation written", "path", cfg.Output.Path)
	}

	if !noSave {
		store := storage.New(dataDir)
		if err := store.Init(); err != nil {
			return err
		}
		runID, err := store.Save(cfg, res)
		if err != nil {
			return fmt.Errorf("save: %w", err)
		}
		fmt.Printf("run saved: %s\n", runID)
		fmt.Printf("animation: %s\n", store.AnimationPath(runID))
	}

	fmt.Printf("%s: %dx%d, %d frames at %v (seed %d)\n",
		res.Algorithm, res.Cols, res.Rows, len(res.Frames), res.Delay.Round(time.Millisecond), res.Seed)
	return nil
}

func writeAnimation(path string, cfg *config.Config, res *experiment.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := res.WriteGIF(f, cfg.Output); err != nil {
		f.Close()
		return fmt.Errorf("encode gif: %w", err)
	}
	return f.Close()
}

func playAnimation(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	exp := experiment.New(cfg, logger)
	if err := exp.Setup(); err != nil {
		return fmt.Errorf("setup: %w", err)
	}
	res, err := exp.Run(ctx)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	title := fmt.Sprintf("%s · %s", res.Algorithm, res.Source)
	player := viz.NewPlayer(title, res.Frames, res.Delay).
		WithTraceLengths(res.TraceLens).
		WithSortedness(res.Metrics["inversions"]).
		WithTheme(theme)
	return viz.Play(player)
}

func exportTrace(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	exp := experiment.New(cfg, logger)
	if err := exp.Setup(); err != nil {
		return fmt.Errorf("setup: %w", err)
	}
	alg, traces, err := exp.Trace(ctx)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := storage.ExportTraces(w, alg, traces); err != nil {
		return err
	}
	if outPath != "" {
		logger.Info("traces exported", "rows", len(traces), "path", outPath)
	}
	return nil
}
