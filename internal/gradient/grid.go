package gradient

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/sortviz/internal/perm"
)

// Graphic decides how many rows a gradient grid gets.
type Graphic string

const (
	// Bars draws one row; every column is stretched to the output height.
	Bars Graphic = "bars"
	// Pixels draws enough rows for square cells at the output size.
	Pixels Graphic = "pixels"
)

func ParseGraphic(name string) (Graphic, error) {
	switch g := Graphic(strings.ToLower(strings.TrimSpace(name))); g {
	case Bars, Pixels:
		return g, nil
	case "":
		return Pixels, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGraphic, name)
}

// Rows returns the row count for a gradient of the given number of colours
// shown at outW x outH. Pixels keeps cells square: outH / (outW / colours),
// rounded, never below one.
func (g Graphic) Rows(colours, outW, outH int) int {
	if g == Bars || colours <= 0 || outW <= 0 || outH <= 0 {
		return 1
	}
	cell := float64(outW) / float64(colours)
	return max(int(math.Round(float64(outH)/cell)), 1)
}

// PixelGrid lays colours out left to right over width columns and repeats
// the row rows times. Every colour gets width/len(colours) columns and the
// first width%len(colours) colours get one more.
func PixelGrid(colours []colorful.Color, width, rows int) (perm.Grid, error) {
	if len(colours) == 0 {
		return nil, fmt.Errorf("%w: empty gradient", ErrTooFewColours)
	}
	if width <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", perm.ErrDegenerateGrid, rows, width)
	}

	line := make([]perm.Pixel, 0, width)
	step, rem := width/len(colours), width%len(colours)
	for i, c := range colours {
		n := step
		if i < rem {
			n++
		}
		px := ToPixel(c)
		for range n {
			line = append(line, px)
		}
	}

	g := perm.NewGrid(rows, width)
	for r := range g {
		copy(g[r], line)
	}
	return g, nil
}

// ToPixel converts a colour to 8-bit channels, clamping out-of-gamut values.
func ToPixel(c colorful.Color) perm.Pixel {
	r, g, b := c.Clamped().RGB255()
	return perm.Pixel{R: r, G: g, B: b}
}
