package perm

// Pixel is an opaque colour triple. Only its position in a row matters to
// the sorting core.
type Pixel struct {
	R, G, B uint8
}

// Grid is a row-major R x C grid of pixels. Frames are grids too.
type Grid [][]Pixel

// NewGrid allocates a rows x cols grid of zero pixels.
func NewGrid(rows, cols int) Grid {
	g := make(Grid, rows)
	backing := make([]Pixel, rows*cols)
	for r := range g {
		g[r] = backing[r*cols : (r+1)*cols : (r+1)*cols]
	}
	return g
}

func (g Grid) Rows() int { return len(g) }

// Cols returns the width of the first row, or 0 for an empty grid.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

func (g Grid) Clone() Grid {
	c := NewGrid(g.Rows(), g.Cols())
	for r := range g {
		copy(c[r], g[r])
	}
	return c
}

func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for r := range g {
		if len(g[r]) != len(other[r]) {
			return false
		}
		for c := range g[r] {
			if g[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}
