package tui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/tinytelemetry/graphfin/internal/registry"
	"github.com/tinytelemetry/graphfin/internal/render"
	"github.com/tinytelemetry/graphfin/internal/viewstate"
)

// Options configures a DashboardModel. Zero fields take defaults.
type Options struct {
	Registry           *registry.Registry
	Initial            viewstate.State
	Formatter          *registry.Formatter
	Skin               *Skin // nil uses CurrentSkin()
	ReverseScrollWheel bool
	Version            string
	Logger             *slog.Logger
}

// DashboardModel represents the main TUI model.
type DashboardModel struct {
	ModalStackState

	reg   *registry.Registry
	state viewstate.State

	// cursor is the highlighted record of the active chart; -1 hides the tooltip.
	cursor int

	// codeView tracks scrolling of the code panel. Its YOffset feeds the
	// renderer; its own View is never drawn.
	codeView viewport.Model

	width  int
	height int

	keys               KeyMap
	zones              *zone.Manager
	skin               Skin
	styles             styles
	formatter          *registry.Formatter
	reverseScrollWheel bool
	version            string
	logger             *slog.Logger
}

// NewDashboardModel builds a dashboard over opts.Registry (or the default one).
func NewDashboardModel(opts Options) *DashboardModel {
	reg := opts.Registry
	if reg == nil {
		reg = registry.Default()
	}
	skin := CurrentSkin()
	if opts.Skin != nil {
		skin = opts.Skin.merge(DefaultSkin())
	}
	f := opts.Formatter
	if f == nil {
		f = registry.English
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	state := opts.Initial
	if !state.ActiveTab.Valid() {
		state = viewstate.New()
	}

	m := &DashboardModel{
		reg:                reg,
		state:              state,
		cursor:             -1,
		codeView:           viewport.New(0, 0),
		keys:               DefaultKeyMap(),
		zones:              zone.New(),
		skin:               skin,
		styles:             newStyles(skin),
		formatter:          f,
		reverseScrollWheel: opts.ReverseScrollWheel,
		version:            opts.Version,
		logger:             logger,
	}
	m.syncCodeView(true)
	return m
}

// Init enables mouse reporting.
func (m *DashboardModel) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

// Close releases the mouse zone worker.
func (m *DashboardModel) Close() {
	m.zones.Close()
}

// State is the current view state.
func (m *DashboardModel) State() viewstate.State { return m.state }

// Cursor is the highlighted data point, or -1.
func (m *DashboardModel) Cursor() int { return m.cursor }

// CodeOffset is the first visible line of the code panel.
func (m *DashboardModel) CodeOffset() int { return m.codeView.YOffset }

// SetSize records the terminal size and re-fits the code panel.
func (m *DashboardModel) SetSize(width, height int) {
	if width == m.width && height == m.height {
		return
	}
	m.width = width
	m.height = height
	m.syncCodeView(false)
}

func (m *DashboardModel) activeEntry() registry.ChartEntry {
	return m.reg.MustLookup(m.state.ActiveTab)
}

// apply runs a view-state transition and keeps the dependent widgets in step.
func (m *DashboardModel) apply(a viewstate.Action) {
	prev := m.state
	m.state = m.state.Apply(a)

	if m.state.ActiveTab != prev.ActiveTab {
		m.cursor = -1
		m.logger.Debug("tab changed", "from", prev.ActiveTab.String(), "to", m.state.ActiveTab.String())
		m.syncCodeView(true)
	}
	if m.state.ShowCode != prev.ShowCode {
		m.logger.Debug("code panel toggled", "tab", m.state.ActiveTab.String(), "show", m.state.ShowCode)
		m.syncCodeView(false)
	}
}

// moveCursor steps the tooltip cursor by delta, clamped to the records of
// the active chart. From the hidden state, right starts at the first record
// and left at the last.
func (m *DashboardModel) moveCursor(delta int) {
	n := len(m.activeEntry().Records)
	if n == 0 {
		return
	}
	switch {
	case m.cursor < 0 && delta > 0:
		m.cursor = 0
	case m.cursor < 0:
		m.cursor = n - 1
	default:
		m.cursor = max(0, min(n-1, m.cursor+delta))
	}
}

// syncCodeView sizes the code viewport to what the renderer will show.
func (m *DashboardModel) syncCodeView(reset bool) {
	e := m.activeEntry()
	w, h := m.chartPanelSize()
	rows := render.CodeRows(e, render.Options{Width: w, Height: h, Cursor: m.cursor})

	m.codeView.Width = w
	m.codeView.Height = rows
	m.codeView.SetContent(strings.Join(render.CodeLines(e.CodeSample), "\n"))
	if reset {
		m.codeView.GotoTop()
		return
	}
	m.codeView.SetYOffset(m.codeView.YOffset)
}

func (m *DashboardModel) scrollCode(lines int) {
	if !m.state.ShowCode {
		return
	}
	if lines < 0 {
		m.codeView.ScrollUp(-lines)
	} else {
		m.codeView.ScrollDown(lines)
	}
}
