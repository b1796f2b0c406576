package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// HelpModal displays the key bindings.
type HelpModal struct {
	ctx      ModalContext
	content  string
	viewport viewport.Model
}

func NewHelpModal(m *DashboardModel) *HelpModal {
	return &HelpModal{
		ctx:      m.modalContext(),
		content:  helpContent(m.keys, m.reg),
		viewport: viewport.New(80, 20),
	}
}

func (h *HelpModal) ID() string { return "help" }

func (h *HelpModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	if scrollModal(h.ctx, &h.viewport, msg) {
		return false, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "?", "q", "esc":
			return true, nil
		}
		var cmd tea.Cmd
		h.viewport, cmd = h.viewport.Update(msg)
		return false, cmd
	}
	return false, nil
}

func (h *HelpModal) View(width, height int) string {
	return renderScrollModal(h.ctx, "Help",
		"↑/↓/Wheel: Scroll | PgUp/PgDn: Page | ?: Toggle Help | ESC: Close",
		h.content, &h.viewport, width, height)
}
