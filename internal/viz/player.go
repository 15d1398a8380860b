package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/perm"
)

const (
	defaultCols  = 80
	defaultLines = 24
	// Lines taken by the header, status line and key hints.
	chromeLines  = 6
	minDelay     = 10 * time.Millisecond
	maxDelay     = 2 * time.Second
)

type TickMsg time.Time

// Player is a Bubble Tea model that plays back a list of frames.
type Player struct {
	title     string
	frames    []perm.Grid
	traceLens []int
	sorted    []float64
	delay     time.Duration
	index     int
	playing   bool
	loop      bool
	showHelp  bool
	theme     Theme
	cols      int
	lines     int
}

// NewPlayer creates a player that starts playing frames at one per delay.
func NewPlayer(title string, frames []perm.Grid, delay time.Duration) Player {
	return Player{
		title:   title,
		frames:  frames,
		delay:   max(min(delay, maxDelay), minDelay),
		playing: len(frames) > 1,
		theme:   ThemeCyberpunk,
		cols:    defaultCols,
		lines:   defaultLines,
	}
}

// WithTraceLengths adds a sparkline of events per row to the status area.
func (p Player) WithTraceLengths(lens []int) Player {
	p.traceLens = lens
	return p
}

// WithSortedness shows a per-frame sortedness score next to the counter.
func (p Player) WithSortedness(series []float64) Player {
	p.sorted = series
	return p
}

func (p Player) WithTheme(name string) Player {
	p.theme = GetTheme(name)
	return p
}

func (p Player) Index() int           { return p.index }
func (p Player) Playing() bool        { return p.playing }
func (p Player) Delay() time.Duration { return p.delay }

func (p Player) tick() tea.Cmd {
	return tea.Tick(p.delay, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (p Player) Init() tea.Cmd {
	return p.tick()
}

func (p Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	last := max(len(p.frames)-1, 0)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.cols, p.lines = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return p, tea.Quit
		case " ":
			if !p.playing && p.index == last {
				p.index = 0
			}
			p.playing = !p.playing
		case "right", "l":
			p.playing = false
			p.index = min(p.index+1, last)
		case "left", "h":
			p.playing = false
			p.index = max(p.index-1, 0)
		case "home", "g":
			p.index = 0
		case "end", "G":
			p.playing = false
			p.index = last
		case "+", "=":
			p.delay = max(p.delay/2, minDelay)
		case "-", "_":
			p.delay = min(p.delay*2, maxDelay)
		case "L":
			p.loop = !p.loop
		case "t":
			p.theme = NextTheme(p.theme)
		case "?":
			p.showHelp = !p.showHelp
		}
	case TickMsg:
		if p.playing {
			switch {
			case p.index < last:
				p.index++
			case p.loop:
				p.index = 0
			default:
				p.playing = false
			}
		}
		return p, p.tick()
	}
	return p, nil
}

func (p Player) View() string {
	if len(p.frames) == 0 {
		return Subtle.Render("no frames") + "\n"
	}

	header := HeaderStyle.BorderForeground(p.theme.Muted).
		Foreground(p.theme.Primary).
		Render(p.title)

	status := StatusPaused.Foreground(p.theme.Warning).Render("paused")
	if p.playing {
		status = StatusPlaying.Render("playing")
	}
	if p.loop {
		status += Subtle.Render(" loop")
	}

	progress := 1.0
	if len(p.frames) > 1 {
		progress = float64(p.index) / float64(len(p.frames)-1)
	}
	counter := MetricLabel.Render("frame ") +
		MetricValue.Foreground(p.theme.Secondary).Render(fmt.Sprintf("%d/%d", p.index+1, len(p.frames)))
	fps := MetricLabel.Render("  fps ") +
		MetricValue.Foreground(p.theme.Secondary).Render(fmt.Sprintf("%.1f", float64(time.Second)/float64(p.delay)))

	stats := []string{status, "  ", counter, fps}
	if p.index < len(p.sorted) {
		stats = append(stats, MetricLabel.Render("  sorted ")+
			MetricValue.Foreground(p.theme.Success).Render(fmt.Sprintf("%.0f%%", 100*p.sorted[p.index])))
	}

	width := max(p.cols-4, 10)
	frame := RenderFrame(p.frames[p.index], width, max(p.lines-chromeLines, 1))

	var b strings.Builder
	b.WriteString(header + "\n")
	b.WriteString(frame + "\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, stats...) + "\n")
	b.WriteString(ProgressBar(progress, min(width, 40)))
	if len(p.traceLens) > 0 {
		vals := make([]float64, len(p.traceLens))
		for i, n := range p.traceLens {
			vals[i] = float64(n)
		}
		b.WriteString("  " + SparklineChart(vals, min(len(vals), 30)))
	}
	b.WriteString("\n")

	if p.showHelp {
		b.WriteString(KeyHint.Render("space play/pause · ←/→ step · home/end jump · +/- speed · L loop · t theme · q quit") + "\n")
	} else {
		b.WriteString(KeyHint.Render("? help · q quit") + "\n")
	}
	return b.String()
}

// Play runs the player full screen until the user quits.
func Play(p Player) error {
	_, err := tea.NewProgram(p, tea.WithAltScreen()).Run()
	return err
}
