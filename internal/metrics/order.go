package metrics

import (
	"math"

	"github.com/san-kum/sortviz/internal/perm"
)

// InPlace is the share of cells that already hold their sorted value.
type InPlace struct {
	name  string
	value float64
}

func NewInPlace() *InPlace {
	return &InPlace{name: "in_place", value: 1}
}

func (m *InPlace) Name() string { return m.name }

func (m *InPlace) Observe(p perm.Permutations) {
	cells, hits := 0, 0
	for _, row := range p {
		for c, v := range row {
			if v == c {
				hits++
			}
		}
		cells += len(row)
	}
	m.value = ratio(hits, cells)
}

func (m *InPlace) Value() float64 { return m.value }
func (m *InPlace) Reset()         { m.value = 1 }

// Inversions is one minus the share of out-of-order pairs, summed over
// all rows. A mirrored row scores 0.
type Inversions struct {
	name  string
	value float64
	tree  []int
}

func NewInversions() *Inversions {
	return &Inversions{name: "inversions", value: 1}
}

func (m *Inversions) Name() string { return m.name }

func (m *Inversions) Observe(p perm.Permutations) {
	var inv, pairs int
	for _, row := range p {
		inv += m.count(row)
		pairs += len(row) * (len(row) - 1) / 2
	}
	if pairs == 0 {
		m.value = 1
		return
	}
	m.value = 1 - ratio(inv, pairs)
}

// count returns the number of inversions in row with a Fenwick tree.
func (m *Inversions) count(row []int) int {
	n := len(row)
	if cap(m.tree) < n+1 {
		m.tree = make([]int, n+1)
	}
	tree := m.tree[:n+1]
	clear(tree)

	inv := 0
	for seen, v := range row {
		le := 0
		for i := v + 1; i > 0; i -= i & -i {
			le += tree[i]
		}
		inv += seen - le
		for i := v + 1; i <= n; i += i & -i {
			tree[i]++
		}
	}
	return inv
}

func (m *Inversions) Value() float64 { return m.value }
func (m *Inversions) Reset()         { m.value = 1 }

// Displacement is one minus the mean distance of a value from its sorted
// column, relative to the largest possible mean for the row width.
type Displacement struct {
	name  string
	value float64
}

func NewDisplacement() *Displacement {
	return &Displacement{name: "displacement", value: 1}
}

func (m *Displacement) Name() string { return m.name }

func (m *Displacement) Observe(p perm.Permutations) {
	var dist, worst float64
	for _, row := range p {
		n := len(row)
		for c, v := range row {
			dist += math.Abs(float64(v - c))
		}
		// A mirrored row maximises the total distance: floor(n^2 / 2).
		worst += float64(n * n / 2)
	}
	if worst == 0 {
		m.value = 1
		return
	}
	m.value = 1 - dist/worst
}

func (m *Displacement) Value() float64 { return m.value }
func (m *Displacement) Reset()         { m.value = 1 }

func ratio(a, b int) float64 {
	if b == 0 {
		return 1
	}
	return float64(a) / float64(b)
}
