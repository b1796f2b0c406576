// Package render turns a chart entry into terminal text. Every function is
// pure: the same entry, flag and Options always produce the same string.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/tinytelemetry/graphfin/internal/registry"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 32
	minChartHeight = 4

	// codeFrame is the header line plus top and bottom border of the code block.
	codeFrame = 3
)

// Options sizes and decorates a render.
type Options struct {
	Width  int
	Height int

	// Cursor is the highlighted record; its tooltip is shown under the
	// legend. Negative hides the tooltip.
	Cursor int

	// CodeOffset is the first code line shown when the code panel is open.
	CodeOffset int

	Formatter *registry.Formatter
	Palette   Palette

	// Button wraps the rendered Show/Hide Code button, for example in a
	// mouse zone. Nil leaves it untouched.
	Button func(string) string
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = fallbackWidth
	}
	if o.Height <= 0 {
		o.Height = fallbackHeight
	}
	if o.Formatter == nil {
		o.Formatter = registry.English
	}
	if o.Palette == (Palette{}) {
		o.Palette = DefaultPalette()
	}
	return o
}

// Render draws the panel for e: title with the code toggle, the code block
// when showCode is set, description, chart, legend, tooltip and citation.
func Render(e registry.ChartEntry, showCode bool, opts Options) string {
	opts = opts.withDefaults()
	st := newStyles(opts.Palette)
	fr := layout(e, showCode, opts, st)

	var code string
	used := fr.fixed
	if showCode {
		code = codeBlock(e, opts.Width, fr.codeRows, opts.CodeOffset, fr.compact, st)
		used += lipgloss.Height(code)
	}
	chart := body(e, opts.Width, max(minChartHeight, opts.Height-used), opts, st)

	parts := []string{fr.head}
	if showCode {
		parts = append(parts, code)
	}
	parts = append(parts, fr.desc, chart, fr.legend, fr.tip, fr.cite)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// CodeRows is how many code lines Render shows for e at this size.
func CodeRows(e registry.ChartEntry, opts Options) int {
	opts = opts.withDefaults()
	return layout(e, true, opts, newStyles(opts.Palette)).codeRows
}

type frame struct {
	head, desc, legend, tip, cite string
	fixed                         int
	codeRows                      int
	compact                       bool
}

// layout sizes everything around the chart. With the code panel open the
// chart keeps at least its minimum height; on short panels the description
// shrinks to one line and the code block loses its border before it loses rows.
func layout(e registry.ChartEntry, showCode bool, opts Options, st styles) frame {
	w := opts.Width
	fr := frame{
		head:   header(e, showCode, w, st, opts),
		desc:   st.text.Width(w).Render(e.Description),
		legend: legendLine(e, w, st),
		tip:    st.tooltip.Render(clip(Tooltip(e, opts.Cursor, opts.Formatter), w)),
		cite:   st.muted.Width(w).Render("Source: " + e.Citation),
	}
	fr.measure()
	if !showCode {
		return fr
	}

	lines := len(CodeLines(e.CodeSample))
	want := min(lines, max(3, (opts.Height-fr.fixed)/2-3))
	need := min(want, 3) + codeFrame
	chartMin := lipgloss.Height(body(e, w, minChartHeight, opts, st))

	room := opts.Height - fr.fixed - chartMin
	if room < need && lipgloss.Height(fr.desc) > 1 {
		fr.desc = st.text.Render(clip(e.Description, w))
		fr.measure()
		room = opts.Height - fr.fixed - chartMin
	}
	if room >= need {
		fr.codeRows = min(want, room-codeFrame)
		return fr
	}
	fr.compact = true
	fr.codeRows = max(1, min(want, room-1))
	return fr
}

func (fr *frame) measure() {
	fr.fixed = lipgloss.Height(fr.head) + lipgloss.Height(fr.desc) + lipgloss.Height(fr.legend) +
		lipgloss.Height(fr.tip) + lipgloss.Height(fr.cite)
}

func header(e registry.ChartEntry, showCode bool, w int, st styles, opts Options) string {
	label := registry.ShowCodeLabel
	if showCode {
		label = registry.HideCodeLabel
	}
	btn := st.button.Render(label)
	if opts.Button != nil {
		btn = opts.Button(btn)
	}

	title := st.title.Render(e.Title)
	gap := w - lipgloss.Width(title) - lipgloss.Width(btn)
	if gap < 1 {
		title = st.title.Render(clip(e.Title, max(1, w-lipgloss.Width(btn)-1)))
		gap = max(1, w-lipgloss.Width(title)-lipgloss.Width(btn))
	}
	return title + strings.Repeat(" ", gap) + btn
}

func body(e registry.ChartEntry, w, h int, opts Options, st styles) string {
	switch e.Kind {
	case registry.Bar, registry.GroupedBar:
		if e.Layout == registry.Horizontal {
			return horizontalBars(e, w, h, opts, st)
		}
		return columnBars(e, w, h, opts, st)
	case registry.Pie:
		return pie(e, w, h, opts, st)
	case registry.Area:
		return area(e, w, h, opts, st)
	default:
		return st.muted.Render("unsupported chart kind " + e.Kind.String())
	}
}

func legendLine(e registry.ChartEntry, w int, st styles) string {
	var items []string
	if e.Kind == registry.Pie {
		for i := range e.Records {
			sw := colorStyle(e.RecordColor(i, 0), st)
			items = append(items, sw.Render("■")+" "+e.Records[i].Label)
		}
	} else {
		for i, s := range e.Series {
			sw := colorStyle(e.RecordColor(-1, i), st)
			items = append(items, sw.Render("■")+" "+s.Name)
		}
	}
	line := strings.Join(items, "   ")
	return lipgloss.PlaceHorizontal(w, lipgloss.Center, line)
}

// Tooltip is the one-line tooltip for record idx, or "" when idx is out of range.
func Tooltip(e registry.ChartEntry, idx int, f *registry.Formatter) string {
	if f == nil {
		f = registry.English
	}
	lines := f.Tooltip(e, idx)
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, " │ ")
}

func clip(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= w {
		return s
	}
	return ansi.Truncate(s, w, "…")
}
