package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/graphfin/internal/registry"
	"github.com/tinytelemetry/graphfin/internal/viewstate"
)

// Update handles messages.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouseEvent(msg)
	}

	return m, nil
}

// handleMouseEvent processes mouse interactions.
func (m *DashboardModel) handleMouseEvent(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// Modal on stack gets the mouse event first.
	if modal := m.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			m.PopModal()
		}
		return m, cmd
	}

	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		if id, ok := m.zoneAt(msg); ok {
			m.clickZone(id)
		}

	case tea.MouseButtonWheelUp:
		if m.reverseScrollWheel {
			m.scrollCode(1)
		} else {
			m.scrollCode(-1)
		}

	case tea.MouseButtonWheelDown:
		if m.reverseScrollWheel {
			m.scrollCode(-1)
		} else {
			m.scrollCode(1)
		}
	}

	return m, nil
}

// zoneAt resolves the clickable zone under the pointer.
func (m *DashboardModel) zoneAt(msg tea.MouseMsg) (string, bool) {
	ids := []string{zoneToggleCode}
	for _, id := range registry.IDs() {
		ids = append(ids, tabZoneID(id))
	}
	for _, id := range ids {
		if z := m.zones.Get(id); z != nil && z.InBounds(msg) {
			return id, true
		}
	}
	return "", false
}

// clickZone performs the action bound to a clickable zone.
func (m *DashboardModel) clickZone(id string) {
	if id == zoneToggleCode {
		m.apply(viewstate.ToggleCodeAction{})
		return
	}
	for _, cid := range registry.IDs() {
		if id == tabZoneID(cid) {
			m.apply(viewstate.SelectTabAction{ID: cid})
			return
		}
	}
}
