package render

import (
	"math"
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/tinytelemetry/graphfin/internal/registry"
)

var partialBlocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇'}

// NiceMax rounds v up to a multiple of its leading power of ten, the way
// chart axes pick a top tick: 72 becomes 80, 1720 becomes 2000.
func NiceMax(v float64) float64 {
	if v <= 0 {
		return 1
	}
	step := math.Pow(10, math.Floor(math.Log10(v)))
	return math.Ceil(v/step) * step
}

// AreaColumn maps record idx of an area chart to its plot column.
func AreaColumn(e registry.ChartEntry, idx, plotW int) int {
	first, last := e.Records[0].X, e.Records[len(e.Records)-1].X
	if last == first || plotW < 2 {
		return 0
	}
	frac := float64(e.Records[idx].X-first) / float64(last-first)
	return int(math.Round(frac * float64(plotW-1)))
}

func area(e registry.ChartEntry, w, h int, opts Options, st styles) string {
	f := opts.Formatter

	xs := make([]float64, len(e.Records))
	ys := e.Values(0)
	for i, r := range e.Records {
		xs[i] = float64(r.X)
	}
	curve, err := NewCurve(xs, ys)
	if err != nil {
		return st.muted.Render(err.Error())
	}

	top := NiceMax(e.MaxValue())
	topLabel := f.Number(top)
	axisW := ansi.StringWidth(topLabel) + 1
	plotW := max(2, w-axisW)
	plotH := max(2, h-3)

	c := canvas.New(plotW, plotH)
	fill := colorStyle(e.RecordColor(-1, 0), st)
	blank := canvas.NewCell(' ')
	lo, hi := curve.Domain()
	cursorCol := -1
	if opts.Cursor >= 0 && opts.Cursor < len(e.Records) {
		cursorCol = AreaColumn(e, opts.Cursor, plotW)
	}

	for col := 0; col < plotW; col++ {
		x := lo + (hi-lo)*float64(col)/float64(plotW-1)
		eighths := int(math.Round(curve.At(x) / top * float64(plotH*8)))
		full, part := eighths/8, eighths%8
		for row := 0; row < plotH; row++ {
			p := canvas.Point{X: col, Y: plotH - 1 - row}
			switch {
			case row < full:
				c.SetCell(p, canvas.NewCellWithStyle('█', fill))
			case row == full && part > 0:
				c.SetCell(p, canvas.NewCellWithStyle(partialBlocks[part], fill))
			case col == cursorCol:
				c.SetCell(p, canvas.NewCellWithStyle('┊', st.highlight))
			default:
				c.SetCell(p, blank)
			}
		}
	}

	axis := make([]string, plotH)
	for row := range axis {
		var label string
		switch row {
		case 0:
			label = topLabel
		case plotH / 2:
			label = f.Number(top / 2)
		case plotH - 1:
			label = f.Number(0)
		}
		tick := "│"
		if label != "" {
			tick = "┤"
		}
		axis[row] = st.muted.Render(lipgloss.PlaceHorizontal(axisW-1, lipgloss.Right, label) + tick)
	}
	plot := lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(axis, "\n"), c.View())

	years := []rune(strings.Repeat(" ", plotW))
	nextFree := 0
	for i, r := range e.Records {
		label := []rune(r.Label)
		start := AreaColumn(e, i, plotW) - len(label)/2
		start = max(start, nextFree)
		if start+len(label) > plotW {
			start = plotW - len(label)
		}
		if start < nextFree || start < 0 {
			continue
		}
		copy(years[start:], label)
		nextFree = start + len(label) + 1
	}
	xAxis := strings.Repeat(" ", axisW) + string(years)

	parts := []string{}
	if e.YLabel != "" {
		parts = append(parts, st.muted.Render(clip(e.YLabel, w)))
	}
	parts = append(parts, plot, st.muted.Render(xAxis))
	if e.XLabel != "" {
		parts = append(parts, st.muted.Render(lipgloss.PlaceHorizontal(w, lipgloss.Center, e.XLabel)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
