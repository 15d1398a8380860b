package media

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"io"
	"time"

	xdraw "golang.org/x/image/draw"
)

// maxPalette is the most colours a GIF frame can index.
const maxPalette = 256

// EncodeGIF writes frames as a looping GIF animation shown delay apart.
//
// Sorting only moves pixels around, so the colours of the first frame make
// up every frame and usually fit one exact palette. Sources with more than
// 256 colours fall back to the Plan 9 palette with Floyd-Steinberg
// dithering.
func EncodeGIF(w io.Writer, frames []*image.RGBA, delay time.Duration) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}

	pal, index := exactPalette(frames[0])
	anim := &gif.GIF{LoopCount: 0}
	cs := DelayCentiseconds(delay)
	for _, f := range frames {
		var p *image.Paletted
		if index != nil {
			p = indexed(f, pal, index)
		} else {
			p = image.NewPaletted(f.Bounds(), palette.Plan9)
			xdraw.FloydSteinberg.Draw(p, f.Bounds(), f, f.Bounds().Min)
		}
		anim.Image = append(anim.Image, p)
		anim.Delay = append(anim.Delay, cs)
	}

	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	return nil
}

// DelayCentiseconds converts a frame delay to GIF units, never below one.
func DelayCentiseconds(d time.Duration) int {
	return max(int((d+5*time.Millisecond)/(10*time.Millisecond)), 1)
}

// exactPalette collects the distinct colours of img. It returns a nil index
// when there are too many for one palette.
func exactPalette(img *image.RGBA) (color.Palette, map[color.RGBA]uint8) {
	index := make(map[color.RGBA]uint8)
	var pal color.Palette
	for i := 0; i+3 < len(img.Pix); i += 4 {
		c := color.RGBA{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2], A: 0xff}
		if _, ok := index[c]; ok {
			continue
		}
		if len(pal) == maxPalette {
			return nil, nil
		}
		index[c] = uint8(len(pal))
		pal = append(pal, c)
	}
	return pal, index
}

func indexed(img *image.RGBA, pal color.Palette, index map[color.RGBA]uint8) *image.Paletted {
	b := img.Bounds()
	p := image.NewPaletted(b, pal)
	for y := 0; y < b.Dy(); y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+b.Dx()*4]
		dst := p.Pix[y*p.Stride : y*p.Stride+b.Dx()]
		for x := range dst {
			c := color.RGBA{R: src[x*4], G: src[x*4+1], B: src[x*4+2], A: 0xff}
			i, ok := index[c]
			if !ok {
				i = uint8(pal.Index(c))
			}
			dst[x] = i
		}
	}
	return p
}
