package chart

import (
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth  = 72
	defaultHeight = 16
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true)

	axisStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	seriesStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("201")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
)

// Render draws a Line as a braille terminal chart with a title and legend.
// Zero width/height fall back to defaults.
func Render(l Line, width, height int) string {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	if len(l.X) == 0 || len(l.Series) == 0 {
		return ""
	}

	minX, maxX := l.X[0], l.X[len(l.X)-1]
	if minX == maxX {
		maxX = minX + 1
	}
	minY, maxY := yBounds(l)

	xSteps := len(l.X) - 1
	if xSteps < 1 {
		xSteps = 1
	}

	lc := linechart.New(width, height, minX, maxX, minY, maxY,
		linechart.WithXYSteps(xSteps, 4),
	)
	lc.AxisStyle = axisStyle
	lc.LabelStyle = labelStyle
	lc.DrawXYAxisAndLabel()

	for i, s := range l.Series {
		style := seriesStyles[i%len(seriesStyles)]
		for p := 1; p < len(s.Y); p++ {
			lc.DrawBrailleLineWithStyle(
				canvas.Float64Point{X: l.X[p-1], Y: s.Y[p-1]},
				canvas.Float64Point{X: l.X[p], Y: s.Y[p]},
				style,
			)
		}
		for p, e := range s.ErrBars {
			if e == 0 {
				continue
			}
			lc.DrawBrailleLineWithStyle(
				canvas.Float64Point{X: l.X[p], Y: s.Y[p] - e},
				canvas.Float64Point{X: l.X[p], Y: s.Y[p] + e},
				style,
			)
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(l.Title))
	b.WriteString("\n")
	b.WriteString(lc.View())
	b.WriteString("\n")
	b.WriteString(legend(l))
	b.WriteString("\n")
	return b.String()
}

func legend(l Line) string {
	parts := make([]string, 0, len(l.Series)+1)
	for i, s := range l.Series {
		parts = append(parts, seriesStyles[i%len(seriesStyles)].Render("── "+s.Name))
	}
	parts = append(parts, labelStyle.Render(l.XLabel+" / "+l.YLabel))
	return strings.Join(parts, "  ")
}

func yBounds(l Line) (float64, float64) {
	first := true
	var minY, maxY float64
	for _, s := range l.Series {
		for p, y := range s.Y {
			lo, hi := y, y
			if p < len(s.ErrBars) {
				lo -= s.ErrBars[p]
				hi += s.ErrBars[p]
			}
			if first {
				minY, maxY = lo, hi
				first = false
				continue
			}
			if lo < minY {
				minY = lo
			}
			if hi > maxY {
				maxY = hi
			}
		}
	}
	if minY == maxY {
		// Flat lines still need a visible Y range.
		maxY = minY + 1
	}
	return minY, maxY
}
