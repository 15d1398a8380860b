package gradient

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/sortviz/internal/perm"
)

var (
	black = colorful.Color{R: 0, G: 0, B: 0}
	white = colorful.Color{R: 1, G: 1, B: 1}
	red   = colorful.Color{R: 1, G: 0, B: 0}
	green = colorful.Color{R: 0, G: 1, B: 0}
)

func TestBlendEndpoints(t *testing.T) {
	for _, space := range Spaces() {
		t.Run(space.String(), func(t *testing.T) {
			cols, err := Blend(red, green, 17, space, false)
			require.NoError(t, err)
			require.Len(t, cols, 17)
			assert.Equal(t, red, cols[0])
			assert.Equal(t, green, cols[16])
			for _, c := range cols {
				assert.True(t, c.IsValid(), "colour %v out of gamut", c)
			}
		})
	}
}

func TestBlendRGBMidpoint(t *testing.T) {
	cols, err := Blend(black, white, 3, RGB, false)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, cols[1].R, 1e-9)
	assert.InDelta(t, 0.5, cols[1].G, 1e-9)
	assert.InDelta(t, 0.5, cols[1].B, 1e-9)
}

func TestBlendHueDirection(t *testing.T) {
	short, err := Blend(red, green, 3, HSV, false)
	require.NoError(t, err)
	h, _, _ := short[1].Hsv()
	assert.InDelta(t, 60, h, 1e-6, "short way from red to green passes yellow")

	long, err := Blend(red, green, 3, HSV, true)
	require.NoError(t, err)
	h, _, _ = long[1].Hsv()
	assert.InDelta(t, 240, h, 1e-6, "long way from red to green passes blue")
}

func TestBlendLongHueIgnoredWithoutHue(t *testing.T) {
	a, err := Blend(red, green, 9, Lab, true)
	require.NoError(t, err)
	b, err := Blend(red, green, 9, Lab, false)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBlendErrors(t *testing.T) {
	_, err := Blend(red, green, 1, RGB, false)
	assert.ErrorIs(t, err, ErrTooFewColours)

	_, err = Blend(red, green, 4, Space(42), false)
	assert.ErrorIs(t, err, ErrUnknownSpace)
}

func TestParseSpace(t *testing.T) {
	tests := map[string]Space{
		"rgb": RGB, "": RGB, "HSV": HSV, " lab ": Lab, "LCHab": HCL, "hcl": HCL, "luv": Luv,
	}
	for in, want := range tests {
		got, err := ParseSpace(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseSpace("cmyk")
	assert.ErrorIs(t, err, ErrUnknownSpace)
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#270561")
	require.NoError(t, err)
	assert.Equal(t, "#270561", c.Hex())

	c, err = ParseHex("c78d28")
	require.NoError(t, err)
	assert.Equal(t, "#c78d28", c.Hex())

	c, err = ParseHex("#f00")
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", c.Hex())

	_, err = ParseHex("nope")
	assert.ErrorIs(t, err, ErrBadHex)
}

func TestColourMap(t *testing.T) {
	for _, name := range ColourMaps() {
		t.Run(name, func(t *testing.T) {
			cols, err := ColourMap(name, 128)
			require.NoError(t, err)
			require.Len(t, cols, 128)

			stops := colourMaps[name]
			assert.Equal(t, mustHex(stops[0]).Hex(), cols[0].Hex())
			assert.Equal(t, mustHex(stops[len(stops)-1]).Hex(), cols[127].Hex())

			l0, _, _ := cols[0].Lab()
			l1, _, _ := cols[127].Lab()
			assert.Less(t, l0, l1, "maps run dark to light")
		})
	}
}

func TestColourMapErrors(t *testing.T) {
	_, err := ColourMap("jet", 10)
	assert.ErrorIs(t, err, ErrUnknownColourMap)

	_, err = ColourMap("viridis", 0)
	assert.ErrorIs(t, err, ErrTooFewColours)

	cols, err := ColourMap("Viridis", 1)
	require.NoError(t, err)
	assert.Len(t, cols, 1)
}

func TestReversed(t *testing.T) {
	in := []colorful.Color{red, green, white}
	out := Reversed(in)
	assert.Equal(t, []colorful.Color{white, green, red}, out)
	assert.Equal(t, red, in[0])
}

func TestPixelGridRemainder(t *testing.T) {
	g, err := PixelGrid([]colorful.Color{red, green, white}, 8, 2)
	require.NoError(t, err)
	require.Equal(t, 2, g.Rows())
	require.Equal(t, 8, g.Cols())

	r, gr, w := ToPixel(red), ToPixel(green), ToPixel(white)
	assert.Equal(t, []perm.Pixel{r, r, r, gr, gr, gr, w, w}, []perm.Pixel(g[0]))
	assert.Equal(t, g[0], g[1])
}

func TestPixelGridErrors(t *testing.T) {
	_, err := PixelGrid(nil, 8, 2)
	assert.ErrorIs(t, err, ErrTooFewColours)

	_, err = PixelGrid([]colorful.Color{red}, 0, 2)
	assert.ErrorIs(t, err, perm.ErrDegenerateGrid)
}

func TestGraphicRows(t *testing.T) {
	assert.Equal(t, 1, Bars.Rows(128, 600, 200))
	assert.Equal(t, 43, Pixels.Rows(128, 600, 200))
	assert.Equal(t, 2, Pixels.Rows(2, 200, 200))
	assert.Equal(t, 1, Pixels.Rows(4, 4000, 10))

	g, err := ParseGraphic("")
	require.NoError(t, err)
	assert.Equal(t, Pixels, g)

	_, err = ParseGraphic("dots")
	assert.ErrorIs(t, err, ErrUnknownGraphic)
}

func TestToPixelClamps(t *testing.T) {
	px := ToPixel(colorful.Color{R: 1.4, G: -0.2, B: 0.5})
	assert.Equal(t, perm.Pixel{R: 255, G: 0, B: 128}, px)
}
