package experiment

import (
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/gradient"
	"github.com/san-kum/sortviz/internal/media"
	"github.com/san-kum/sortviz/internal/perm"
)

// SourceFunc builds the unsorted input grid for a run.
type SourceFunc func(cfg *config.Config) (perm.Grid, error)

type Registry struct {
	sources map[string]SourceFunc
}

func NewRegistry() *Registry {
	r := &Registry{sources: make(map[string]SourceFunc)}

	r.sources["image"] = func(cfg *config.Config) (perm.Grid, error) {
		return media.Load(cfg.Source.Image, cfg.Source.MaxWidth)
	}
	r.sources["gradient"] = func(cfg *config.Config) (perm.Grid, error) {
		start, err := gradient.ParseHex(cfg.Source.Start)
		if err != nil {
			return nil, err
		}
		end, err := gradient.ParseHex(cfg.Source.End)
		if err != nil {
			return nil, err
		}
		space, err := gradient.ParseSpace(cfg.Source.Space)
		if err != nil {
			return nil, err
		}
		colours, err := gradient.Blend(start, end, cfg.Source.Colours, space, cfg.Source.LongHue)
		if err != nil {
			return nil, err
		}
		return gradientGrid(cfg, colours)
	}
	r.sources["colour_map"] = func(cfg *config.Config) (perm.Grid, error) {
		colours, err := gradient.ColourMap(cfg.Source.ColourMap, cfg.Source.Colours)
		if err != nil {
			return nil, err
		}
		return gradientGrid(cfg, colours)
	}

	return r
}

// gradientGrid lays the colours out over source.columns columns, or one
// column each when that is unset.
func gradientGrid(cfg *config.Config, colours []colorful.Color) (perm.Grid, error) {
	cols := max(cfg.Source.Columns, len(colours))
	rows := cfg.Source.Rows
	if rows == 0 {
		graphic, err := gradient.ParseGraphic(cfg.Source.Graphic)
		if err != nil {
			return nil, err
		}
		rows = graphic.Rows(cols, cfg.Output.Width, cfg.Output.Height)
	}
	return gradient.PixelGrid(colours, cols, rows)
}

// SourceKind names the registered source a config selects.
func SourceKind(cfg *config.Config) string {
	switch {
	case cfg.Source.Image != "":
		return "image"
	case cfg.Source.Start != "":
		return "gradient"
	default:
		return "colour_map"
	}
}

func (r *Registry) GetSource(name string) (SourceFunc, error) {
	fn, ok := r.sources[name]
	if !ok {
		return nil, fmt.Errorf("unknown source: %s", name)
	}
	return fn, nil
}

func (r *Registry) ListSources() []string {
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
