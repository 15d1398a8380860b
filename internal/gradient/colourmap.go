package gradient

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Evenly spaced samples of the perceptually uniform matplotlib maps.
// Colours in between are interpolated in Lab.
var colourMaps = map[string][]string{
	"viridis": {"#440154", "#482878", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"},
	"inferno": {"#000004", "#1b0c41", "#4a0c6b", "#781c6d", "#a52c60", "#cf4446", "#ed6925", "#fb9b06", "#f7d13d", "#fcffa4"},
	"plasma":  {"#0d0887", "#41049d", "#6a00a8", "#8f0da4", "#b12a90", "#cc4778", "#e16462", "#f2844b", "#fca636", "#fcce25", "#f0f921"},
	"magma":   {"#000004", "#180f3d", "#440f76", "#721f81", "#9e2f7f", "#cd4071", "#f1605d", "#fd9668", "#feca8d", "#fcfdbf"},
}

// ColourMaps lists the names accepted by ColourMap.
func ColourMaps() []string {
	names := make([]string, 0, len(colourMaps))
	for name := range colourMaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ColourMap samples n evenly spaced colours from a named colour map, dark
// end first.
func ColourMap(name string, n int) ([]colorful.Color, error) {
	stops, ok := colourMaps[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColourMap, name)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: need at least 1, got %d", ErrTooFewColours, n)
	}

	anchors := make([]colorful.Color, len(stops))
	for i, s := range stops {
		anchors[i] = mustHex(s)
	}
	if n == 1 {
		return anchors[:1:1], nil
	}

	segments := float64(len(anchors) - 1)
	out := make([]colorful.Color, n)
	for i := range out {
		pos := float64(i) / float64(n-1) * segments
		k := min(int(pos), len(anchors)-2)
		out[i] = anchors[k].BlendLab(anchors[k+1], pos-float64(k)).Clamped()
	}
	return out, nil
}

// Reversed returns the colours in the opposite order.
func Reversed(colours []colorful.Color) []colorful.Color {
	out := slices.Clone(colours)
	slices.Reverse(out)
	return out
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("gradient: bad colour map stop " + s)
	}
	return c
}
