package config

// Presets holds named starting points per algorithm.
var Presets = map[string]map[string]*Config{
	"bubble_sort": {
		"bars": preset("bubble_sort", func(c *Config) {
			c.Source.Graphic = "bars"
			c.Source.Colours = 64
		}),
		"reversed": preset("bubble_sort", func(c *Config) {
			c.Randomise = false
			c.Mirror = true
			c.Source.Colours = 48
		}),
	},
	"selection_sort": {
		"sunset": preset("selection_sort", func(c *Config) {
			c.Source.Start, c.Source.End = "#d9cd29", "#ab155b"
			c.Source.Space = "hcl"
		}),
	},
	"insertion_sort": {
		"rainbow": preset("insertion_sort", func(c *Config) {
			c.Source.Start, c.Source.End = "#ff0000", "#0000ff"
			c.Source.Space = "hsv"
			c.Source.LongHue = true
			c.Source.Colours = 64
		}),
	},
	"quick_sort": {
		"viridis": preset("quick_sort", func(c *Config) {
			c.Source.ColourMap = "viridis"
			c.Source.Colours = 256
		}),
		"fast": preset("quick_sort", func(c *Config) {
			c.FPS = 30
			c.Duration = 3
			c.Workers = 4
		}),
	},
	"heap_sort": {
		"magma": preset("heap_sort", func(c *Config) {
			c.Source.ColourMap = "magma"
		}),
	},
	"merge_sort": {
		"dusk": preset("merge_sort", func(c *Config) {
			c.Source.Start, c.Source.End = "#270561", "#c78d28"
			c.Source.Space = "lab"
		}),
	},
	"radix_sort_lsd": {
		"inferno": preset("radix_sort_lsd", func(c *Config) {
			c.Source.ColourMap = "inferno"
			c.Source.Colours = 200
			c.Output.Width, c.Output.Height = 800, 400
		}),
	},
}

func preset(algorithm string, tweak func(*Config)) *Config {
	c := DefaultConfig()
	c.Algorithm = algorithm
	tweak(c)
	return c
}

func GetPreset(algorithm, name string) *Config {
	algPresets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	cfg, ok := algPresets[name]
	if !ok {
		return nil
	}
	clone := *cfg
	return &clone
}

func ListPresets(algorithm string) []string {
	algPresets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(algPresets))
	for name := range algPresets {
		names = append(names, name)
	}
	return names
}
