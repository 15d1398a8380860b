// Package metrics measures how far a permutation grid is from sorted.
//
// Every metric observes the live permutation state once per frame and
// reports a value in [0, 1], where 1 means every row is sorted.
package metrics

import (
	"github.com/san-kum/sortviz/internal/perm"
)

type Metric interface {
	Name() string
	Observe(p perm.Permutations)
	Value() float64
	Reset()
}

// Default returns one instance of every metric.
func Default() []Metric {
	return []Metric{NewInPlace(), NewInversions(), NewDisplacement()}
}

// Recorder keeps the value of each metric after every observation.
type Recorder struct {
	metrics []Metric
	series  map[string][]float64
}

func NewRecorder(metrics ...Metric) *Recorder {
	r := &Recorder{metrics: metrics, series: make(map[string][]float64, len(metrics))}
	for _, m := range metrics {
		r.series[m.Name()] = nil
	}
	return r
}

func (r *Recorder) Observe(p perm.Permutations) {
	for _, m := range r.metrics {
		m.Observe(p)
		r.series[m.Name()] = append(r.series[m.Name()], m.Value())
	}
}

// Series returns the recorded values per metric name, one per observation.
func (r *Recorder) Series() map[string][]float64 {
	return r.series
}
