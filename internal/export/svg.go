package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/sortvis/internal/steps"
	"github.com/san-kum/sortvis/internal/viz"
)

const (
	background = "#0a0a0a"
	textColor  = "#e0e0e0"
	margin     = 20.0
	labelSpace = 40.0
)

// StepToSVG draws one step as a bar chart, each bar filled with the theme
// color of its element state, with values below and the description on top.
func StepToSVG(step steps.Step, theme viz.Theme, width, height int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background))

	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="14">%s</text>
`, margin, margin, textColor, html.EscapeString(step.Description)))

	n := len(step.Array)
	if n > 0 {
		peak := 0
		for _, e := range step.Array {
			if e.Value > peak {
				peak = e.Value
			}
		}
		if peak <= 0 {
			peak = 1
		}

		plotW := float64(width) - 2*margin
		plotH := float64(height) - 2*margin - labelSpace
		slot := plotW / float64(n)
		barW := slot * 0.8
		baseline := float64(height) - margin - labelSpace/2

		for i, e := range step.Array {
			h := 0.0
			if e.Value > 0 {
				h = float64(e.Value) / float64(peak) * plotH
			}
			x := margin + float64(i)*slot + (slot-barW)/2
			fill := string(theme.StateColor(e.State))
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="3" fill="%s"><title>%s</title></rect>
`, x, baseline-h, barW, h, fill, e.State))
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="12" text-anchor="middle">%d</text>
`, x+barW/2, baseline+16, textColor, e.Value))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// SeriesToSVG draws values as a polyline over their index, such as the
// inversion count per step.
func SeriesToSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	minY, maxY := values[0], values[0]
	for _, v := range values {
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}

	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY
	rangeX := float64(len(values) - 1)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, background, strokeColor))

	for i, v := range values {
		x := float64(i) / rangeX * float64(width)
		y := float64(height) - (v-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
