package perm

import "errors"

// ErrDegenerateGrid indicates a grid with no rows, no columns, or rows of
// different widths.
var ErrDegenerateGrid = errors.New("perm: degenerate grid")
