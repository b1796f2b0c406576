package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderBranding renders "graphfin" with a purple to green gradient taken
// from the chart series colors.
func (m *DashboardModel) renderBranding() string {
	colors := []string{
		"#8884d8",
		"#7f9bd0",
		"#79a9c6",
		"#7ab4bb",
		"#7dbdb0",
		"#80c4a6",
		"#82ca9d",
		"#82ca9d",
	}

	var b strings.Builder
	for i, r := range "graphfin" {
		style := lipgloss.NewStyle().
			Background(m.styles.statusBg).
			Foreground(lipgloss.Color(colors[i])).
			Bold(true)
		b.WriteString(style.Render(string(r)))
	}
	return b.String()
}

// renderStatusLine renders the status/help line at the bottom of the screen.
func (m *DashboardModel) renderStatusLine() string {
	baseStyle := m.styles.status
	w := m.width

	veryNarrow := w < 70
	narrow := w < 90
	medium := w < 130

	e := m.activeEntry()
	var leftText string
	if veryNarrow {
		leftText = e.Icon + " " + e.ID.String()
	} else {
		leftText = fmt.Sprintf("[%s %s]", e.Icon, e.Tab)
	}
	if m.state.ShowCode {
		leftText += " code"
	}

	var statusText string
	switch {
	case m.HasModal():
		statusText = "ESC: Close"
	case veryNarrow:
		statusText = "1-5 • c • ? • q"
	case narrow:
		statusText = "?: Help • 1-5: Chart • c: Code • q: Quit"
	case medium:
		statusText = "1-5/Tab: Chart • ←→: Data point • d: Data • c: Code • ↑↓: Scroll • ?: Help • q: Quit"
	default:
		statusText = "?: Help • Click tabs • 1-5/Tab/[]: Switch chart • ←→: Inspect data point • d: Data table • c: Show/Hide code • ↑↓/Wheel: Scroll code • q: Quit"
	}

	var rightParts []string
	if m.version != "" && !narrow {
		rightParts = append(rightParts, "v"+strings.TrimPrefix(m.version, "v"))
	}
	if m.formatter != nil && !veryNarrow {
		rightParts = append(rightParts, m.formatter.Locale().String())
	}
	if w >= 30 {
		rightParts = append(rightParts, m.renderBranding())
	}
	rightText := strings.Join(rightParts, "  ")

	leftWidth := lipgloss.Width(leftText) + 2
	rightWidth := lipgloss.Width(rightText) + 2
	if leftWidth+rightWidth >= w {
		if w < 20 {
			return baseStyle.Width(w).Render(leftText)
		}
		leftWidth = min(leftWidth, w/3)
		rightWidth = min(rightWidth, w/3)
	}

	centerWidth := max(0, w-leftWidth-rightWidth)

	leftStyle := baseStyle.Align(lipgloss.Left).Width(leftWidth)
	centerStyle := baseStyle.Align(lipgloss.Center).Width(centerWidth)
	rightStyle := baseStyle.Align(lipgloss.Right).Width(rightWidth)

	if lipgloss.Width(leftText) > leftWidth {
		leftText = truncateRunes(leftText, max(0, leftWidth-1))
	}
	if lipgloss.Width(statusText) > centerWidth {
		statusText = truncateRunes(statusText, max(0, centerWidth-1))
	}
	if lipgloss.Width(rightText) > rightWidth {
		// Styled text cannot be cut safely; drop it instead.
		rightText = ""
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		leftStyle.Render(leftText),
		centerStyle.Render(statusText),
		rightStyle.Render(rightText),
	)
}

func truncateRunes(s string, n int) string {
	var b strings.Builder
	for _, r := range s {
		if lipgloss.Width(b.String()+string(r)) > n {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}
