package render

import (
	"math"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/tinytelemetry/graphfin/internal/registry"
)

const barGap = 1

// BarLengths scales every value to span cells against the chart maximum.
// The result is indexed [record][series].
func BarLengths(e registry.ChartEntry, span int) [][]int {
	maxV := e.MaxValue()
	out := make([][]int, len(e.Records))
	for i, r := range e.Records {
		row := make([]int, len(r.Values))
		for j, v := range r.Values {
			if maxV > 0 && span > 0 {
				row[j] = int(math.Round(v / maxV * float64(span)))
			}
		}
		out[i] = row
	}
	return out
}

// horizontalBars draws one row per record, category label on the left.
func horizontalBars(e registry.ChartEntry, w, h int, opts Options, st styles) string {
	f := opts.Formatter

	labelW, valueW := 0, 0
	values := make([]string, len(e.Records))
	for i, r := range e.Records {
		labelW = max(labelW, ansi.StringWidth(r.Label))
		values[i] = f.Value(e.Tooltip, r, r.Values[0])
		valueW = max(valueW, ansi.StringWidth(values[i]))
	}
	span := max(1, w-labelW-valueW-5)
	lengths := BarLengths(e, span)

	n := len(e.Records)
	thick := max(1, min(3, (h-2-(n-1))/max(1, n)))

	var lines []string
	if e.YLabel != "" {
		lines = append(lines, st.muted.Render(e.YLabel))
	}
	for i, r := range e.Records {
		if i > 0 {
			lines = append(lines, "")
		}
		marker := "  "
		label := lipgloss.NewStyle().Width(labelW).Align(lipgloss.Right).Render(r.Label)
		if i == opts.Cursor {
			marker = st.highlight.Render("▶ ")
			label = st.highlight.Width(labelW).Align(lipgloss.Right).Render(r.Label)
		}
		bar := colorStyle(e.RecordColor(i, 0), st).Render(strings.Repeat("█", lengths[i][0]))
		pad := strings.Repeat(" ", span-lengths[i][0])
		blank := strings.Repeat(" ", labelW+2)
		for t := 0; t < thick; t++ {
			if t == thick/2 {
				lines = append(lines, marker+label+" │"+bar+pad+" "+values[i])
				continue
			}
			lines = append(lines, blank+" │"+bar)
		}
	}

	axisMax := f.Value(e.Tooltip, registry.Record{}, e.MaxValue())
	axis := strings.Repeat(" ", labelW+3) + "└" + strings.Repeat("─", max(0, span-1))
	lines = append(lines, st.muted.Render(axis))
	ticks := strings.Repeat(" ", labelW+3) + f.Value(e.Tooltip, registry.Record{}, 0)
	ticks += strings.Repeat(" ", max(1, labelW+3+span-ansi.StringWidth(ticks)-ansi.StringWidth(axisMax)+1)) + axisMax
	lines = append(lines, st.muted.Render(ticks))
	if e.XLabel != "" {
		lines = append(lines, st.muted.Render(lipgloss.PlaceHorizontal(w, lipgloss.Center, e.XLabel)))
	}

	return strings.Join(lines, "\n")
}

// columnBars draws vertical bars with ntcharts. Grouped charts push one bar
// per series and an empty spacer bar between groups.
func columnBars(e registry.ChartEntry, w, h int, opts Options, st styles) string {
	f := opts.Formatter
	series := len(e.Series)
	spacer := 0
	if series > 1 {
		spacer = 1
	}
	groups := len(e.Records)
	bars := groups*series + (groups-1)*spacer

	bw := max(1, (w-(bars-1)*barGap)/bars)
	chartW := bars*bw + (bars-1)*barGap
	groupW := series*bw + (series-1)*barGap

	caption := 0
	if e.YLabel != "" {
		caption = 1
	}
	barH := max(2, h-3-caption)

	bc := barchart.New(chartW, barH,
		barchart.WithBarGap(barGap),
		barchart.WithBarWidth(bw),
		barchart.WithNoAxis(),
	)
	for g, r := range e.Records {
		if g > 0 && spacer > 0 {
			bc.Push(barchart.BarData{
				Values: []barchart.BarValue{{Name: "", Value: 0, Style: st.muted}},
			})
		}
		for s := range e.Series {
			bc.Push(barchart.BarData{
				Label: r.Label,
				Values: []barchart.BarValue{{
					Name:  e.Series[s].Name,
					Value: r.Values[s],
					Style: barStyle(e.RecordColor(g, s), st),
				}},
			})
		}
	}
	bc.Draw()

	gapCell := strings.Repeat(" ", barGap)
	var valueCells, labelCells []string
	for g, r := range e.Records {
		if g > 0 {
			valueCells = append(valueCells, gapCell)
			labelCells = append(labelCells, gapCell)
			if spacer > 0 {
				valueCells = append(valueCells, strings.Repeat(" ", bw), gapCell)
				labelCells = append(labelCells, strings.Repeat(" ", bw), gapCell)
			}
		}
		for s := range e.Series {
			if s > 0 {
				valueCells = append(valueCells, gapCell)
			}
			v := clip(f.Value(e.Tooltip, r, r.Values[s]), bw)
			valueCells = append(valueCells, lipgloss.PlaceHorizontal(bw, lipgloss.Center, v))
		}
		ls := st.text
		if g == opts.Cursor {
			ls = st.highlight
		}
		labelCells = append(labelCells, ls.Width(groupW).MaxHeight(2).Align(lipgloss.Center).Render(r.Label))
	}

	var parts []string
	if caption > 0 {
		parts = append(parts, st.muted.Render(clip(e.YLabel, w)))
	}
	parts = append(parts,
		bc.View(),
		lipgloss.JoinHorizontal(lipgloss.Top, valueCells...),
		lipgloss.JoinHorizontal(lipgloss.Top, labelCells...),
	)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
