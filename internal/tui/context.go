package tui

// ModalContext provides read-only context to modals, replacing direct access
// to *DashboardModel.
type ModalContext struct {
	ReverseScrollWheel bool
	Styles             styles
}

// modalContext snapshots what modals need from the dashboard.
func (m *DashboardModel) modalContext() ModalContext {
	return ModalContext{
		ReverseScrollWheel: m.reverseScrollWheel,
		Styles:             m.styles,
	}
}
