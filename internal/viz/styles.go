package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Subtle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c6c8a"))

	StatusPlaying = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3ee08f"))
	StatusPaused  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f5a524"))

	MetricLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#8a8aa0"))
	MetricValue = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4cc9f0"))

	KeyHint = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#6c6c8a"))

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f4f4f8")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true)
)

// levels colour a 0..1 value from low to high.
var levels = [...]lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("#f25f5c")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe066")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#3ee08f")),
}

func level(v float64) lipgloss.Style {
	switch {
	case v > 0.7:
		return levels[2]
	case v > 0.35:
		return levels[1]
	}
	return levels[0]
}

// ProgressBar renders a bar of width cells filled to percent (0..1).
func ProgressBar(percent float64, width int) string {
	filled := max(0, min(int(percent*float64(width)), width))
	return level(percent).Render(strings.Repeat("█", filled) + strings.Repeat("░", width-filled))
}

// SparklineChart renders values as one block each, sampled down to at most
// width blocks and scaled between their minimum and maximum.
func SparklineChart(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", max(width, 0))
	}

	blocks := []rune("▁▂▃▄▅▆▇█")
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo, hi = min(lo, v), max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	step := max(len(values)/width, 1)
	var b strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		norm := (values[i*step] - lo) / span
		idx := max(0, min(int(norm*float64(len(blocks)-1)), len(blocks)-1))
		b.WriteString(level(norm).Render(string(blocks[idx])))
	}
	return b.String()
}
