package perm

import (
	"fmt"
	"math/rand"
	"slices"
)

// Permutations holds one permutation of 0..C-1 per row. Value v at column c
// means the pixel originally at column v is currently shown at column c.
type Permutations [][]int

// Lookup maps, per row, an original column index to its original pixel.
type Lookup [][]Pixel

// Build returns the identity permutation and the column lookup for every
// row of grid. The grid itself is never referenced afterwards.
func Build(grid Grid) (Permutations, Lookup, error) {
	rows, cols := grid.Rows(), grid.Cols()
	if rows == 0 || cols == 0 {
		return nil, nil, fmt.Errorf("%w: %dx%d", ErrDegenerateGrid, rows, cols)
	}

	perms := make(Permutations, rows)
	lookup := make(Lookup, rows)
	for r, row := range grid {
		if len(row) != cols {
			return nil, nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrDegenerateGrid, r, len(row), cols)
		}
		lookup[r] = slices.Clone(row)
		perms[r] = make([]int, cols)
		for c := range perms[r] {
			perms[r][c] = c
		}
	}
	return perms, lookup, nil
}

// Randomize shuffles every row independently.
func Randomize(p Permutations, rng *rand.Rand) {
	for _, row := range p {
		rng.Shuffle(len(row), func(i, j int) {
			row[i], row[j] = row[j], row[i]
		})
	}
}

// Reverse reverses the order of the rows. Rows keep their contents.
func Reverse(p Permutations) {
	slices.Reverse(p)
}

// Mirror reverses every row in place, so each row starts in descending
// order relative to its sorted state.
func Mirror(p Permutations) {
	for _, row := range p {
		slices.Reverse(row)
	}
}

// Materialize renders the pixel grid for the current permutation state.
// Values outside 0..C-1 are a programming error and panic.
func Materialize(p Permutations, l Lookup) Grid {
	cols := 0
	if len(p) > 0 {
		cols = len(p[0])
	}
	out := NewGrid(len(p), cols)
	for r, row := range p {
		src := l[r]
		dst := out[r]
		for c, v := range row {
			dst[c] = src[v]
		}
	}
	return out
}

// Clone deep-copies the permutation grid.
func (p Permutations) Clone() Permutations {
	c := make(Permutations, len(p))
	for r, row := range p {
		c[r] = slices.Clone(row)
	}
	return c
}

// Valid reports whether every row is a permutation of 0..C-1.
func (p Permutations) Valid() bool {
	for _, row := range p {
		if !IsPermutation(row) {
			return false
		}
	}
	return true
}

// IsPermutation reports whether row contains each of 0..len(row)-1 exactly once.
func IsPermutation(row []int) bool {
	seen := make([]bool, len(row))
	for _, v := range row {
		if v < 0 || v >= len(row) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
