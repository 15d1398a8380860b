// Package media moves pixel grids in and out of real images: decoding
// source pictures, nearest-neighbour upscaling and GIF encoding.
package media

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/san-kum/sortviz/internal/perm"
)

// Load opens the image at path and converts it to a grid. Images wider
// than maxWidth are shrunk to that width first, keeping the aspect ratio.
// A maxWidth of zero keeps the original size.
func Load(path string, maxWidth int) (perm.Grid, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	return FromImage(shrink(img, maxWidth)), nil
}

// Decode is Load for an already open stream.
func Decode(r io.Reader, maxWidth int) (perm.Grid, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return FromImage(shrink(img, maxWidth)), nil
}

func shrink(img image.Image, maxWidth int) image.Image {
	if maxWidth <= 0 || img.Bounds().Dx() <= maxWidth {
		return img
	}
	// A zero height lets imaging keep the aspect ratio.
	return imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
}

// FromImage copies img into a grid, dropping alpha.
func FromImage(img image.Image) perm.Grid {
	b := img.Bounds()
	g := perm.NewGrid(b.Dy(), b.Dx())
	for y := range g {
		for x := range g[y] {
			c := color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			g[y][x] = perm.Pixel{R: c.R, G: c.G, B: c.B}
		}
	}
	return g
}

// ToImage renders a grid at one image pixel per cell.
func ToImage(g perm.Grid) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Cols(), g.Rows()))
	for y, row := range g {
		off := y * img.Stride
		for x, p := range row {
			i := off + x*4
			img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = p.R, p.G, p.B, 0xff
		}
	}
	return img
}

// Scale renders g at width x height with nearest-neighbour sampling, so
// every cell becomes a solid block and no new colours appear. A zero
// dimension keeps the grid's own size along that axis.
func Scale(g perm.Grid, width, height int) *image.RGBA {
	src := ToImage(g)
	if width <= 0 {
		width = g.Cols()
	}
	if height <= 0 {
		height = g.Rows()
	}
	if width == g.Cols() && height == g.Rows() {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
