package tui

// Snapshot renders one frame of the dashboard at the given size without
// starting a Bubble Tea program. Used for non-interactive output.
func Snapshot(opts Options, width, height int) string {
	m := NewDashboardModel(opts)
	defer m.Close()
	m.SetSize(width, height)
	return m.View()
}
