package viz

import (
	"fmt"
	"sort"

	"github.com/guptarohit/asciigraph"
)

// TraceChart plots the number of recorded events per row.
func TraceChart(lens []int, width, height int) string {
	if len(lens) == 0 {
		return ""
	}
	return asciigraph.Plot(floats(lens),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("events per row (%d rows)", len(lens))),
	)
}

// PlanChart plots how many events each replay step applied.
func PlanChart(plan []int, width, height int) string {
	if len(plan) == 0 {
		return ""
	}
	return asciigraph.Plot(floats(plan),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("events per frame (%d steps)", len(plan))),
	)
}

// MetricsChart plots every sortedness series on a shared 0..1 axis.
func MetricsChart(series map[string][]float64, width, height int) string {
	names := make([]string, 0, len(series))
	for name, values := range series {
		if len(values) > 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return ""
	}
	sort.Strings(names)

	palette := []asciigraph.AnsiColor{asciigraph.Green, asciigraph.Blue, asciigraph.Red, asciigraph.Yellow}
	data := make([][]float64, len(names))
	colours := make([]asciigraph.AnsiColor, len(names))
	for i, name := range names {
		data[i] = series[name]
		colours[i] = palette[i%len(palette)]
	}
	return asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.Precision(2),
		asciigraph.SeriesColors(colours...),
		asciigraph.SeriesLegends(names...),
		asciigraph.Caption("sortedness per frame"),
	)
}

func floats(v []int) []float64 {
	out := make([]float64, len(v))
	for i, n := range v {
		out[i] = float64(n)
	}
	return out
}
