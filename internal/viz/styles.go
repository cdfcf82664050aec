package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles derived from the active theme
type styles struct {
	alive   lipgloss.Style
	dead    lipgloss.Style
	header  lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	running lipgloss.Style
	stopped lipgloss.Style
	graph   lipgloss.Style
	panel   lipgloss.Style
	help    lipgloss.Style
	sel     lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		alive:   lipgloss.NewStyle().Foreground(t.Alive),
		dead:    lipgloss.NewStyle().Foreground(t.Dead),
		header:  lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		label:   lipgloss.NewStyle().Foreground(t.Muted).Width(12),
		value:   lipgloss.NewStyle().Foreground(t.Text),
		running: lipgloss.NewStyle().Foreground(t.Running).Bold(true),
		stopped: lipgloss.NewStyle().Foreground(t.Stopped).Bold(true),
		graph:   lipgloss.NewStyle().Foreground(t.Alive).Padding(1, 0),
		panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Muted).
			Padding(0, 2).
			Width(44),
		help: lipgloss.NewStyle().Foreground(t.Muted).Italic(true).MarginTop(1),
		sel:  lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
	}
}

// ProgressBar renders a bar filled to percent of width.
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	filled = max(0, min(filled, width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// SparklineChart renders the last width values as block characters.
func SparklineChart(values []int, width int) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", max(width, 0))
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	// Sparkline characters from low to high
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	var sb strings.Builder
	for _, v := range values {
		idx := (v - lo) * (len(chars) - 1) / span
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}

// Separator draws a decorated horizontal rule.
func Separator(width int) string {
	if width < 8 {
		return strings.Repeat("─", max(width, 0))
	}
	mid := width / 2
	return strings.Repeat("─", mid-2) + " ◆ " + strings.Repeat("─", width-mid-1)
}
