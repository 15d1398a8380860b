package replay

import "github.com/san-kum/sortviz/internal/sorting"

// applyDeltas performs swaps[from:to] on row. A row whose own trace is
// shorter than the shared maximum simply runs out of events.
func applyDeltas(row []int, swaps []sorting.Swap, from, to int) {
	to = min(to, len(swaps))
	for k := from; k < to; k++ {
		s := swaps[k]
		row[s.I], row[s.J] = row[s.J], row[s.I]
	}
}

// applySnapshot copies values[from:to] into row. Event k of a snapshot
// stream belongs at column k mod width, so the copy starts there and wraps
// to the front of the row whenever it reaches the end: a tail write, then a
// head write, repeated for chunks longer than the row.
func applySnapshot(row []int, values []int, from, to int) {
	to = min(to, len(values))
	width := len(row)
	if width == 0 || from >= to {
		return
	}

	pos := from % width
	for from < to {
		n := min(to-from, width-pos)
		copy(row[pos:pos+n], values[from:from+n])
		from += n
		pos = (pos + n) % width
	}
}
