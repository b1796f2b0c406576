package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// renderScrollModal renders a centered, bordered modal whose body scrolls
// through vp.
func renderScrollModal(ctx ModalContext, title, hints, content string, vp *viewport.Model, width, height int) string {
	modalWidth := max(20, width-8)   // 4 chars margin on each side
	modalHeight := max(8, height-4)  // 2 lines margin top and bottom
	contentWidth := modalWidth - 4   // modal borders
	contentHeight := modalHeight - 4 // header + status

	vp.Width = contentWidth
	vp.Height = contentHeight
	vp.SetContent(lipgloss.NewStyle().Width(contentWidth).Render(content))

	contentPane := lipgloss.NewStyle().
		Width(contentWidth).
		Height(contentHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(ctx.Styles.muted.GetForeground()).
		Render(vp.View())

	header := ctx.Styles.modalTitle.
		Width(contentWidth).
		Render(title)

	statusBar := ctx.Styles.muted.Render(hints)

	modal := lipgloss.JoinVertical(lipgloss.Left, header, contentPane, statusBar)

	finalModal := lipgloss.NewStyle().
		Width(modalWidth).
		Height(modalHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ctx.Styles.modalBorder).
		Render(modal)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, finalModal)
}

// scrollModal applies the shared scrolling keys and wheel events to vp.
// It reports whether msg was consumed.
func scrollModal(ctx ModalContext, vp *viewport.Model, msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			vp.ScrollUp(1)
		case "down", "j":
			vp.ScrollDown(1)
		case "pgup":
			vp.HalfPageUp()
		case "pgdown":
			vp.HalfPageDown()
		case "home", "g":
			vp.GotoTop()
		case "end", "G":
			vp.GotoBottom()
		default:
			return false
		}
		return true

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return true
		}
		up := msg.Button == tea.MouseButtonWheelUp
		down := msg.Button == tea.MouseButtonWheelDown
		if ctx.ReverseScrollWheel {
			up, down = down, up
		}
		switch {
		case up:
			vp.ScrollUp(1)
		case down:
			vp.ScrollDown(1)
		}
		return true
	}
	return false
}
