package sorting

import "fmt"

// Kind tells how a trace must be replayed.
type Kind uint8

const (
	// Delta traces hold exchanged position pairs.
	Delta Kind = iota + 1
	// Snapshot traces hold full-row copies taken after each pass.
	Snapshot
)

func (k Kind) String() string {
	switch k {
	case Delta:
		return "delta"
	case Snapshot:
		return "snapshot"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Swap is one exchange of the elements at positions I and J.
type Swap struct {
	I, J int
}

// Trace is the recorded history of one sort. It is either a [DeltaTrace]
// or a [SnapshotTrace]; no other implementations exist.
type Trace interface {
	// Kind reports which variant this is.
	Kind() Kind
	// Len is the number of replayable events.
	Len() int

	trace()
}

// DeltaTrace lists exchanges in the order they happened.
type DeltaTrace struct {
	Swaps []Swap
}

func (DeltaTrace) Kind() Kind { return Delta }
func (t DeltaTrace) Len() int { return len(t.Swaps) }
func (DeltaTrace) trace()     {}

// Replay applies every swap to row in order.
func (t DeltaTrace) Replay(row []int) {
	for _, s := range t.Swaps {
		row[s.I], row[s.J] = row[s.J], row[s.I]
	}
}

// SnapshotTrace is a stream of row values: the row after the first pass,
// then after the second, and so on. Width is the row length, so the stream
// length is always a multiple of Width.
type SnapshotTrace struct {
	Values []int
	Width  int
}

func (SnapshotTrace) Kind() Kind { return Snapshot }
func (t SnapshotTrace) Len() int { return len(t.Values) }
func (SnapshotTrace) trace()     {}

// Passes returns the number of snapshots in the stream.
func (t SnapshotTrace) Passes() int {
	if t.Width == 0 {
		return 0
	}
	return len(t.Values) / t.Width
}

// Pass returns the row as it was after pass i. The slice aliases the stream.
func (t SnapshotTrace) Pass(i int) []int {
	return t.Values[i*t.Width : (i+1)*t.Width]
}

// Final returns the last snapshot, or nil for an empty stream.
func (t SnapshotTrace) Final() []int {
	n := t.Passes()
	if n == 0 {
		return nil
	}
	return t.Pass(n - 1)
}
