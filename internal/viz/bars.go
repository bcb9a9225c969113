package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortvis/internal/steps"
)

const barWidth = 3

// RenderBars draws one vertical bar per element, scaled so the largest value
// fills height rows, with the values printed underneath.
func RenderBars(arr []steps.Element, theme Theme, height int) string {
	if len(arr) == 0 {
		return Subtle.Render("(empty array)")
	}
	if height < 1 {
		height = 1
	}

	peak := 0
	for _, e := range arr {
		if e.Value > peak {
			peak = e.Value
		}
	}

	heights := make([]int, len(arr))
	for i, e := range arr {
		heights[i] = barHeight(e.Value, peak, height)
	}

	var b strings.Builder
	block := strings.Repeat("█", barWidth)
	blank := strings.Repeat(" ", barWidth)
	for row := height; row >= 1; row-- {
		for i, e := range arr {
			if heights[i] >= row {
				b.WriteString(lipgloss.NewStyle().Foreground(theme.StateColor(e.State)).Render(block))
			} else {
				b.WriteString(blank)
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	for _, e := range arr {
		label := fmt.Sprintf("%*d", barWidth, e.Value)
		b.WriteString(lipgloss.NewStyle().Foreground(theme.StateColor(e.State)).Bold(e.State != steps.StateDefault).Render(label))
		b.WriteString(" ")
	}
	return b.String()
}

// barHeight scales v into [1, height]; non-positive values get no bar.
func barHeight(v, peak, height int) int {
	if v <= 0 || peak <= 0 {
		return 0
	}
	h := (v*height + peak - 1) / peak
	if h < 1 {
		h = 1
	}
	return h
}

// Legend lists the state colors of the theme.
func Legend(theme Theme) string {
	entries := []struct {
		label string
		state steps.ElementState
	}{
		{"default", steps.StateDefault},
		{"comparing", steps.StateComparing},
		{"swapping", steps.StateSwapping},
		{"sorted", steps.StateSorted},
		{"pivot", steps.StatePivot},
		{"partition", steps.StatePartition},
	}
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = lipgloss.NewStyle().Foreground(theme.StateColor(e.state)).Render("■") + " " + MetricLabel.Render(e.label)
	}
	return strings.Join(parts, "  ")
}
