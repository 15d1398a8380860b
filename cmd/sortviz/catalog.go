package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/gradient"
	"github.com/san-kum/sortviz/internal/media"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/viz"
)

func listAlgorithms(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tTRACE\tPRESETS")
	for _, alg := range sorting.All() {
		fmt.Fprintf(w, "%s\t%s\t%d\n", alg, alg.Kind(), len(config.ListPresets(alg.String())))
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	algs := sorting.All()
	if len(args) == 1 {
		alg, err := sorting.Parse(args[0])
		if err != nil {
			return err
		}
		algs = []sorting.Algorithm{alg}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tPRESET\tSOURCE\tCOLOURS\tFRAMES")
	for _, alg := range algs {
		for _, name := range config.ListPresets(alg.String()) {
			p := config.GetPreset(alg.String(), name)
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
				alg, name, experiment.SourceKind(p), p.Source.Colours, p.Budget())
		}
	}
	return w.Flush()
}

func previewGradient(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())

	cfg := config.DefaultConfig()
	if len(args) == 2 {
		cfg.Source.Start, cfg.Source.End = args[0], args[1]
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	kind := experiment.SourceKind(cfg)
	source, err := experiment.NewRegistry().GetSource(kind)
	if err != nil {
		return err
	}
	grid, err := source(cfg)
	if err != nil {
		return err
	}

	fmt.Print(viz.RenderFrame(grid, 80, 12))
	if kind == "colour_map" {
		fmt.Printf("%s, %d colours (available: %v)\n", cfg.Source.ColourMap, cfg.Source.Colours, gradient.ColourMaps())
	} else {
		fmt.Printf("%s -> %s in %s, %d colours\n", cfg.Source.Start, cfg.Source.End, cfg.Source.Space, cfg.Source.Colours)
	}

	if outPath == "" {
		return nil
	}
	w, h := experiment.OutputSize(cfg.Output, grid.Cols(), grid.Rows())
	if err := imaging.Save(media.Scale(grid, w, h), outPath); err != nil {
		return fmt.Errorf("save %s: %w", outPath, err)
	}
	logger.Info("gradient written", "path", outPath, "width", w, "height", h)
	return nil
}
