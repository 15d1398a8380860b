package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/sortviz/internal/sorting"
)

type TraceExport struct {
	Algorithm string     `json:"algorithm"`
	Kind      string     `json:"kind"`
	Rows      []RowTrace `json:"rows"`
}

// RowTrace is one row's trace. Swaps is set for delta traces; Values and
// Width for snapshot traces.
type RowTrace struct {
	Row    int      `json:"row"`
	Events int      `json:"events"`
	Swaps  [][2]int `json:"swaps,omitempty"`
	Values []int    `json:"values,omitempty"`
	Width  int      `json:"width,omitempty"`
}

// ExportTraces writes the recorded traces as indented JSON.
func ExportTraces(w io.Writer, alg sorting.Algorithm, traces []sorting.Trace) error {
	data := TraceExport{
		Algorithm: alg.String(),
		Kind:      alg.Kind().String(),
		Rows:      make([]RowTrace, len(traces)),
	}

	for r, tr := range traces {
		row := RowTrace{Row: r, Events: tr.Len()}
		switch tr := tr.(type) {
		case sorting.DeltaTrace:
			row.Swaps = make([][2]int, len(tr.Swaps))
			for i, s := range tr.Swaps {
				row.Swaps[i] = [2]int{s.I, s.J}
			}
		case sorting.SnapshotTrace:
			row.Values = tr.Values
			row.Width = tr.Width
		}
		data.Rows[r] = row
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
