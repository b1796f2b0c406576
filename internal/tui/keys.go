package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all dashboard key bindings with built-in help text.
type KeyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Escape    key.Binding

	// Tabs
	Tabs    []key.Binding // one per chart, in tab order
	NextTab key.Binding
	PrevTab key.Binding

	// Chart
	ToggleCode  key.Binding
	Details     key.Binding
	CursorLeft  key.Binding
	CursorRight key.Binding

	// Code panel
	Up       key.Binding
	Down     key.Binding
	Home     key.Binding
	End      key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	tabs := make([]key.Binding, 0, 5)
	for _, k := range []string{"1", "2", "3", "4", "5"} {
		tabs = append(tabs, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, "select tab "+k),
		))
	}

	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("escape", "esc"),
			key.WithHelp("esc", "hide tooltip/close"),
		),

		Tabs: tabs,
		NextTab: key.NewBinding(
			key.WithKeys("tab", "]"),
			key.WithHelp("tab/]", "next chart"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "["),
			key.WithHelp("shift+tab/[", "prev chart"),
		),

		ToggleCode: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "show/hide code"),
		),
		Details: key.NewBinding(
			key.WithKeys("d", "enter"),
			key.WithHelp("d/enter", "data table"),
		),
		CursorLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev data point"),
		),
		CursorRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next data point"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll code up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll code down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "code top"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "code bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "code page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "pagedown"),
			key.WithHelp("pgdn", "code page down"),
		),
	}
}

// helpGroups orders bindings for the help modal.
func (k KeyMap) helpGroups() []helpGroup {
	tabKeys := key.NewBinding(key.WithKeys("1"), key.WithHelp("1-5", "select chart"))
	return []helpGroup{
		{"NAVIGATION", []key.Binding{tabKeys, k.NextTab, k.PrevTab, k.CursorLeft, k.CursorRight, k.Details, k.Escape}},
		{"CODE", []key.Binding{k.ToggleCode, k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End}},
		{"GENERAL", []key.Binding{k.Help, k.Quit, k.ForceQuit}},
	}
}

type helpGroup struct {
	Title    string
	Bindings []key.Binding
}
