package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Algorithm != "bubble_sort" {
		t.Errorf("expected algorithm bubble_sort, got %s", cfg.Algorithm)
	}
	if !cfg.Randomise {
		t.Error("randomise should default to on")
	}
	if cfg.Source.ColourMap != "plasma" || cfg.Source.Colours != 128 {
		t.Errorf("unexpected source defaults: %+v", cfg.Source)
	}
	if cfg.Budget() != 80 {
		t.Errorf("expected budget 80, got %d", cfg.Budget())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestBudgetOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Frames = 12
	if cfg.Budget() != 12 {
		t.Errorf("expected explicit frames to win, got %d", cfg.Budget())
	}

	cfg.Frames = 0
	cfg.FPS, cfg.Duration = 4, 2.625
	if cfg.Budget() != 11 {
		t.Errorf("expected rounded budget 11, got %d", cfg.Budget())
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	data := []byte("algorithm: quick\nfps: 24\nsource:\n  colour_map: viridis\n  colours: 32\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Algorithm != "quick" || cfg.FPS != 24 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Source.ColourMap != "viridis" || cfg.Source.Colours != 32 {
		t.Errorf("unexpected source: %+v", cfg.Source)
	}
	if cfg.Duration != DefaultDuration || cfg.Output.Width != DefaultWidth {
		t.Error("unset fields should keep their defaults")
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.toml")
	data := []byte("algorithm = \"merge_sort\"\nreverse = true\n\n[source]\nstart = \"#270561\"\nend = \"#c78d28\"\nspace = \"lab\"\n\n[output]\nscale = 4\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Algorithm != "merge_sort" || !cfg.Reverse {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Source.Start != "#270561" || cfg.Source.Space != "lab" || cfg.Output.Scale != 4 {
		t.Errorf("unexpected nested values: %+v %+v", cfg.Source, cfg.Output)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestLoadUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, ext := range []string{".yaml", ".toml"} {
		t.Run(ext, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Algorithm = "heap_sort"
			cfg.Seed = 42
			cfg.Source.LongHue = true

			path := filepath.Join(t.TempDir(), "cfg"+ext)
			if err := Save(path, cfg); err != nil {
				t.Fatalf("save: %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if *got != *cfg {
				t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown algorithm", func(c *Config) { c.Algorithm = "bogo" }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"negative duration", func(c *Config) { c.Duration = -1 }},
		{"negative frames", func(c *Config) { c.Frames = -3 }},
		{"negative width", func(c *Config) { c.Output.Width = -1 }},
		{"one colour", func(c *Config) { c.Source.Colours = 1 }},
		{"bad space", func(c *Config) { c.Source.Space = "cmyk" }},
		{"bad graphic", func(c *Config) { c.Source.Graphic = "dots" }},
		{"start without end", func(c *Config) { c.Source.Start = "#000000" }},
		{"bad hex", func(c *Config) { c.Source.Start, c.Source.End = "#zzzzzz", "#000000" }},
		{"unknown colour map", func(c *Config) { c.Source.ColourMap = "jet" }},
		{"fewer columns than colours", func(c *Config) { c.Source.Columns = 100 }},
		{"negative columns", func(c *Config) { c.Source.Columns = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestValidateImageSkipsGradient(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Source.Image = "photo.png"
	cfg.Source.Colours = 0
	cfg.Source.ColourMap = "jet"
	if err := cfg.Validate(); err != nil {
		t.Errorf("gradient fields should be ignored for image sources: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("quick_sort", "viridis")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Algorithm != "quick_sort" || cfg.Source.ColourMap != "viridis" {
		t.Errorf("unexpected preset: %+v", cfg)
	}

	cfg.Source.Colours = 3
	if Presets["quick_sort"]["viridis"].Source.Colours != 256 {
		t.Error("GetPreset must not hand out the shared preset")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("quick_sort", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "viridis"); cfg != nil {
		t.Error("expected nil for nonexistent algorithm")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("bubble_sort")
	slices.Sort(presets)
	if !slices.Equal(presets, []string{"bars", "reversed"}) {
		t.Errorf("unexpected presets: %v", presets)
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent algorithm")
	}
}

func TestPresetsValidate(t *testing.T) {
	for alg, presets := range Presets {
		for name, cfg := range presets {
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset %s/%s: %v", alg, name, err)
			}
		}
	}
}
