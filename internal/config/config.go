package config

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/gradient"
	"github.com/san-kum/sortviz/internal/sorting"
)

const (
	DefaultAlgorithm = "bubble_sort"
	DefaultFPS       = 16
	DefaultDuration  = 5.0
	DefaultColourMap = "plasma"
	DefaultColours   = 128
	DefaultWidth     = 600
	DefaultHeight    = 200
	DefaultMaxWidth  = 200
)

var (
	// ErrUnsupportedFormat is returned for config files that are neither
	// YAML nor TOML.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	ErrInvalid = errors.New("config: invalid value")
)

type Config struct {
	Algorithm string  `yaml:"algorithm" toml:"algorithm"`
	Randomise bool    `yaml:"randomise" toml:"randomise"`
	Reverse   bool    `yaml:"reverse" toml:"reverse"`
	Mirror    bool    `yaml:"mirror" toml:"mirror"`
	Seed      int64   `yaml:"seed" toml:"seed"`
	FPS       int     `yaml:"fps" toml:"fps"`
	Duration  float64 `yaml:"duration" toml:"duration"`
	Frames    int     `yaml:"frames" toml:"frames"`
	Workers   int     `yaml:"workers" toml:"workers"`

	Source SourceConfig `yaml:"source" toml:"source"`
	Output OutputConfig `yaml:"output" toml:"output"`
}

// SourceConfig describes the image that gets sorted. Image wins when set;
// otherwise a gradient is built from Start/End, or from ColourMap when no
// end points are given.
type SourceConfig struct {
	Image     string `yaml:"image,omitempty" toml:"image,omitempty"`
	MaxWidth  int    `yaml:"max_width" toml:"max_width"`
	ColourMap string `yaml:"colour_map" toml:"colour_map"`
	Start     string `yaml:"start,omitempty" toml:"start,omitempty"`
	End       string `yaml:"end,omitempty" toml:"end,omitempty"`
	Colours   int    `yaml:"colours" toml:"colours"`
	Space     string `yaml:"space" toml:"space"`
	LongHue   bool   `yaml:"long_hue" toml:"long_hue"`
	Graphic   string `yaml:"graphic" toml:"graphic"`
	Rows      int    `yaml:"rows" toml:"rows"`
	// Columns widens a gradient past one column per colour; 0 keeps one each.
	Columns   int    `yaml:"columns,omitempty" toml:"columns,omitempty"`
}

// OutputConfig sets the rendered size. A positive Scale multiplies the grid
// size instead of using Width and Height.
type OutputConfig struct {
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	Scale  int    `yaml:"scale" toml:"scale"`
	Path   string `yaml:"path,omitempty" toml:"path,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Randomise: true,
		FPS:       DefaultFPS,
		Duration:  DefaultDuration,
		Source: SourceConfig{
			MaxWidth:  DefaultMaxWidth,
			ColourMap: DefaultColourMap,
			Colours:   DefaultColours,
			Space:     "rgb",
			Graphic:   string(gradient.Pixels),
		},
		Output: OutputConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
	}
}

// Load reads a YAML or TOML file on top of the defaults, picking the
// decoder from the file extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	switch format(path) {
	case "yaml":
		err = yaml.Unmarshal(data, cfg)
	case "toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	var data []byte
	switch format(path) {
	case "yaml":
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		data = out
	case "toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return err
		}
		data = buf.Bytes()
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return os.WriteFile(path, data, 0644)
}

func format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	}
	return ""
}

// Validate checks every field that would otherwise fail deep inside a run.
func (c *Config) Validate() error {
	if _, err := sorting.Parse(c.Algorithm); err != nil {
		return fmt.Errorf("%w: algorithm: %w", ErrInvalid, err)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.FPS)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %g", ErrInvalid, c.Duration)
	}
	if c.Frames < 0 || c.Workers < 0 {
		return fmt.Errorf("%w: frames and workers must not be negative", ErrInvalid)
	}
	if c.Output.Width < 0 || c.Output.Height < 0 || c.Output.Scale < 0 {
		return fmt.Errorf("%w: output size must not be negative", ErrInvalid)
	}
	if c.Source.Rows < 0 || c.Source.MaxWidth < 0 || c.Source.Columns < 0 {
		return fmt.Errorf("%w: source rows, columns and max_width must not be negative", ErrInvalid)
	}
	if c.Source.Image != "" {
		return nil
	}

	if c.Source.Colours < 2 {
		return fmt.Errorf("%w: source.colours must be at least 2, got %d", ErrInvalid, c.Source.Colours)
	}
	if c.Source.Columns > 0 && c.Source.Columns < c.Source.Colours {
		return fmt.Errorf("%w: source.columns (%d) must not be below source.colours (%d)", ErrInvalid, c.Source.Columns, c.Source.Colours)
	}
	if _, err := gradient.ParseSpace(c.Source.Space); err != nil {
		return fmt.Errorf("%w: source.space: %w", ErrInvalid, err)
	}
	if _, err := gradient.ParseGraphic(c.Source.Graphic); err != nil {
		return fmt.Errorf("%w: source.graphic: %w", ErrInvalid, err)
	}
	if (c.Source.Start == "") != (c.Source.End == "") {
		return fmt.Errorf("%w: source.start and source.end must be set together", ErrInvalid)
	}
	if c.Source.Start != "" {
		for _, hex := range []string{c.Source.Start, c.Source.End} {
			if _, err := gradient.ParseHex(hex); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalid, err)
			}
		}
		return nil
	}
	if _, err := gradient.ColourMap(c.Source.ColourMap, 1); err != nil {
		return fmt.Errorf("%w: source.colour_map: %w", ErrInvalid, err)
	}
	return nil
}

// Budget is the requested frame count: Frames when set, else fps*duration.
func (c *Config) Budget() int {
	if c.Frames > 0 {
		return c.Frames
	}
	return int(math.Round(float64(c.FPS) * c.Duration))
}
