package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/perm"
)

// upperHalf is drawn with the top pixel as foreground and the bottom pixel
// as background, so one character cell shows two pixels.
const upperHalf = "▀"

// Canvas is a pixel buffer rendered at two pixel rows per terminal line.
type Canvas struct {
	Width, Height int
	Pixels        [][]perm.Pixel
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Pixels: make([][]perm.Pixel, h),
	}
	for i := range c.Pixels {
		c.Pixels[i] = make([]perm.Pixel, w)
	}
	return c
}

func (c *Canvas) Set(x, y int, p perm.Pixel) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return
	}
	c.Pixels[y][x] = p
}

// Draw samples g onto the whole canvas with nearest-neighbour lookup.
func (c *Canvas) Draw(g perm.Grid) {
	rows, cols := g.Rows(), g.Cols()
	if rows == 0 || cols == 0 {
		return
	}
	for y := 0; y < c.Height; y++ {
		src := g[y*rows/c.Height]
		for x := 0; x < c.Width; x++ {
			c.Pixels[y][x] = src[x*cols/c.Width]
		}
	}
}

// Lines returns the number of terminal lines Render produces.
func (c *Canvas) Lines() int {
	return (c.Height + 1) / 2
}

func (c *Canvas) Render() string {
	var sb strings.Builder
	for y := 0; y < c.Height; y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < c.Width; x++ {
			style := lipgloss.NewStyle().Foreground(termColour(c.Pixels[y][x]))
			if y+1 < c.Height {
				style = style.Background(termColour(c.Pixels[y+1][x]))
			}
			sb.WriteString(style.Render(upperHalf))
		}
	}
	return sb.String()
}

func termColour(p perm.Pixel) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", p.R, p.G, p.B))
}

// RenderFrame draws g in at most maxCols columns and maxLines lines. A
// non-positive limit leaves that axis at the grid's own size.
func RenderFrame(g perm.Grid, maxCols, maxLines int) string {
	w, h := FitFrame(g.Cols(), g.Rows(), maxCols, maxLines)
	if w == 0 || h == 0 {
		return ""
	}
	c := NewCanvas(w, h)
	c.Draw(g)
	return c.Render()
}

// FitFrame returns the canvas size in pixels for a grid of cols x rows.
func FitFrame(cols, rows, maxCols, maxLines int) (w, h int) {
	w, h = cols, rows
	if maxCols > 0 {
		w = min(w, maxCols)
	}
	if maxLines > 0 {
		h = min(h, 2*maxLines)
	}
	return w, h
}
