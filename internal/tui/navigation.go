package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/graphfin/internal/registry"
	"github.com/tinytelemetry/graphfin/internal/viewstate"
)

// handleKeyPress dispatches key events: modal stack first, then global
// dashboard shortcuts.
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	// Modal on stack gets the event first.
	if modal := m.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			m.PopModal()
		}
		return m, cmd
	}

	return m.handleGlobalKeys(msg)
}

// handleGlobalKeys handles dashboard-level shortcuts.
// Only reached when no modal is on the stack.
func (m *DashboardModel) handleGlobalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys

	for i, b := range k.Tabs {
		if key.Matches(msg, b) {
			m.apply(viewstate.SelectTabAction{ID: registry.ChartID(i)})
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.Help):
		m.PushModal(NewHelpModal(m))

	case key.Matches(msg, k.Details):
		m.PushModal(NewDetailModal(m))

	case key.Matches(msg, k.Escape):
		m.cursor = -1

	case key.Matches(msg, k.NextTab):
		m.apply(viewstate.NextTabAction{})

	case key.Matches(msg, k.PrevTab):
		m.apply(viewstate.PrevTabAction{})

	case key.Matches(msg, k.ToggleCode):
		m.apply(viewstate.ToggleCodeAction{})

	case key.Matches(msg, k.CursorLeft):
		m.moveCursor(-1)

	case key.Matches(msg, k.CursorRight):
		m.moveCursor(1)

	case key.Matches(msg, k.Up):
		m.scrollCode(-1)

	case key.Matches(msg, k.Down):
		m.scrollCode(1)

	case key.Matches(msg, k.PageUp):
		m.scrollCode(-max(1, m.codeView.Height))

	case key.Matches(msg, k.PageDown):
		m.scrollCode(max(1, m.codeView.Height))

	case key.Matches(msg, k.Home):
		if m.state.ShowCode {
			m.codeView.GotoTop()
		}

	case key.Matches(msg, k.End):
		if m.state.ShowCode {
			m.codeView.GotoBottom()
		}
	}

	return m, nil
}
