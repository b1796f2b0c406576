package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/tinytelemetry/graphfin/internal/registry"
)

const tabWidth = 4

// CodeLines splits a code sample into display lines with tabs expanded.
func CodeLines(sample string) []string {
	sample = strings.ReplaceAll(sample, "\r\n", "\n")
	lines := strings.Split(sample, "\n")
	for i, l := range lines {
		lines[i] = strings.ReplaceAll(l, "\t", strings.Repeat(" ", tabWidth))
	}
	return lines
}

// ClampCodeOffset keeps offset inside the scrollable range for rows visible lines.
func ClampCodeOffset(e registry.ChartEntry, rows, offset int) int {
	maxOff := max(0, len(CodeLines(e.CodeSample))-rows)
	return max(0, min(offset, maxOff))
}

// codeBlock draws rows lines of the sample starting at offset inside a
// bordered box of total width w. Long lines are clipped, never wrapped.
// A compact block has no border or padding.
func codeBlock(e registry.ChartEntry, w, rows, offset int, compact bool, st styles) string {
	lines := CodeLines(e.CodeSample)
	rows = max(1, min(rows, len(lines)))
	offset = ClampCodeOffset(e, rows, offset)

	inner := max(1, w-4)
	if compact {
		inner = max(1, w)
	}
	visible := make([]string, 0, rows+1)
	head := fmt.Sprintf("code  %d-%d of %d", offset+1, offset+rows, len(lines))
	if len(lines) > rows {
		head += "  ↑/↓ scroll"
	}
	visible = append(visible, st.codeHead.Render(clipPad(head, inner)))
	for _, l := range lines[offset : offset+rows] {
		visible = append(visible, clipPad(l, inner))
	}

	if compact {
		return st.code.UnsetBorderStyle().UnsetPadding().Width(inner).Render(strings.Join(visible, "\n"))
	}
	return st.code.Width(inner + 2).Render(strings.Join(visible, "\n"))
}

func clipPad(s string, w int) string {
	s = ansi.Truncate(s, w, "")
	if pad := w - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
