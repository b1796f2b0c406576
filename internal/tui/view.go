package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/tinytelemetry/graphfin/internal/model"
	"github.com/tinytelemetry/graphfin/internal/registry"
	"github.com/tinytelemetry/graphfin/internal/render"
)

const (
	headerHeight = 3 // title, subtitle, banner
	tabsHeight   = 1
	statusHeight = 1
	panelFrame   = 2 // top and bottom border
	extrasHeight = 5 // insights title, three rows, built-with line

	// extrasMinHeight is the terminal height from which insights and
	// badges are shown under the chart.
	extrasMinHeight = 36

	// fullHeaderMinHeight is the terminal height from which the subtitle
	// and banner are shown; below it the header is the title line alone.
	fullHeaderMinHeight = 24

	zoneToggleCode = "toggle-code"
)

func tabZoneID(id registry.ChartID) string { return "tab-" + id.String() }

func (m *DashboardModel) showExtras() bool {
	return m.height >= extrasMinHeight
}

func (m *DashboardModel) headerRows() int {
	if m.height < fullHeaderMinHeight {
		return 1
	}
	return headerHeight
}

// chartPanelSize is the content area inside the chart panel border.
func (m *DashboardModel) chartPanelSize() (int, int) {
	if m.width <= 0 || m.height <= 0 {
		return 0, 0
	}
	h := m.height - m.headerRows() - tabsHeight - statusHeight - panelFrame
	if m.showExtras() {
		h -= extrasHeight
	}
	return max(1, m.width-4), max(1, h)
}

// View renders the dashboard.
func (m *DashboardModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Initializing dashboard..."
	}

	if modal := m.TopModal(); modal != nil {
		return modal.View(m.width, m.height)
	}

	return m.zones.Scan(m.renderDashboard())
}

func (m *DashboardModel) renderDashboard() string {
	if m.width < model.MinWidth || m.height < model.MinHeight {
		return fmt.Sprintf("Terminal too small. Resize to at least %dx%d.", model.MinWidth, model.MinHeight)
	}

	sections := []string{
		m.renderHeader(),
		m.renderTabs(),
		m.renderChartPanel(),
	}
	if m.showExtras() {
		sections = append(sections, m.renderInsights(), m.renderBuiltWith())
	}
	sections = append(sections, m.renderStatusLine())

	return lipgloss.NewStyle().
		MaxWidth(m.width).
		MaxHeight(m.height).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m *DashboardModel) renderHeader() string {
	st := m.styles
	w := m.width
	title := st.title.Render(ansi.Truncate(registry.HeaderTitle, w, "…"))
	if m.headerRows() == 1 {
		return title
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		st.subtitle.Render(ansi.Truncate(registry.HeaderSubtitle, w, "…")),
		st.banner.Render(ansi.Truncate(registry.HeaderBanner, max(1, w-2), "…")),
	)
}

func (m *DashboardModel) renderTabs() string {
	row := m.tabRow(false)
	if lipgloss.Width(row) > m.width {
		row = m.tabRow(true)
	}
	return row
}

func (m *DashboardModel) tabRow(compact bool) string {
	st := m.styles
	entries := m.reg.Entries()
	tabs := make([]string, 0, len(entries))
	for i, e := range entries {
		label := e.Icon + " " + e.Tab
		if compact {
			label = fmt.Sprintf("%d %s", i+1, e.Icon)
		}
		style := st.tabInactive
		if e.ID == m.state.ActiveTab {
			style = st.tabActive
		}
		tabs = append(tabs, m.zones.Mark(tabZoneID(e.ID), style.Render(label)))
	}
	return strings.Join(tabs, " ")
}

// renderOptions are the renderer inputs for the current dashboard state.
func (m *DashboardModel) renderOptions() render.Options {
	w, h := m.chartPanelSize()
	return render.Options{
		Width:      w,
		Height:     h,
		Cursor:     m.cursor,
		CodeOffset: m.codeView.YOffset,
		Formatter:  m.formatter,
		Palette:    m.skin.Palette(),
		Button: func(s string) string {
			return m.zones.Mark(zoneToggleCode, s)
		},
	}
}

func (m *DashboardModel) renderChartPanel() string {
	opts := m.renderOptions()
	content := render.Render(m.activeEntry(), m.state.ShowCode, opts)

	lines := strings.Split(content, "\n")
	if len(lines) > opts.Height {
		lines = lines[:opts.Height]
	}
	return m.styles.panel.
		Width(opts.Width + 2).
		Height(opts.Height).
		Render(strings.Join(lines, "\n"))
}

func (m *DashboardModel) renderInsights() string {
	st := m.styles
	items := registry.Insights()
	colW := max(10, (m.width-2)/2)
	half := (len(items) + 1) / 2

	column := func(list []string) string {
		rows := make([]string, len(list))
		for i, s := range list {
			rows[i] = st.insight.Render(ansi.Truncate("• "+s, colW-1, "…"))
		}
		return lipgloss.NewStyle().Width(colW).Render(strings.Join(rows, "\n"))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		st.section.Render(registry.InsightsTitle),
		lipgloss.JoinHorizontal(lipgloss.Top, column(items[:half]), "  ", column(items[half:])),
	)
}

func (m *DashboardModel) renderBuiltWith() string {
	st := m.styles
	badges := make([]string, 0, len(registry.BuiltWith()))
	for _, b := range registry.BuiltWith() {
		badges = append(badges, st.badge.Render(b))
	}
	line := st.section.Render(registry.BuiltWithTitle+":") + " " + strings.Join(badges, " ")
	return ansi.Truncate(line, m.width, "")
}
