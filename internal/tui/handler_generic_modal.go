package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/graphfin/internal/registry"
)

// DetailModal lists every data point of one chart with its source.
type DetailModal struct {
	ctx      ModalContext
	title    string
	content  string
	viewport viewport.Model
}

func NewDetailModal(m *DashboardModel) *DetailModal {
	e := m.activeEntry()
	return &DetailModal{
		ctx:      m.modalContext(),
		title:    e.Icon + " " + e.Tab + " data",
		content:  detailContent(e, m.formatter),
		viewport: viewport.New(80, 20),
	}
}

func (d *DetailModal) ID() string { return "detail" }

func (d *DetailModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	if scrollModal(d.ctx, &d.viewport, msg) {
		return false, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "d", "enter", "q", "esc":
			return true, nil
		}
		var cmd tea.Cmd
		d.viewport, cmd = d.viewport.Update(msg)
		return false, cmd
	}
	return false, nil
}

func (d *DetailModal) View(width, height int) string {
	return renderScrollModal(d.ctx, d.title,
		"↑/↓/Wheel: Scroll | PgUp/PgDn: Page | d: Toggle Data | ESC: Close",
		d.content, &d.viewport, width, height)
}

// detailContent renders the chart's records as an aligned table. Pie charts
// get an extra share-of-total column.
func detailContent(e registry.ChartEntry, f *registry.Formatter) string {
	header := []string{"Category"}
	for _, s := range e.Series {
		header = append(header, s.Name)
	}
	share := e.Kind == registry.Pie && e.Total(0) > 0
	if share {
		header = append(header, "Share")
	}

	rows := [][]string{header}
	for _, r := range e.Records {
		row := []string{r.Label}
		for si := range e.Series {
			v := 0.0
			if si < len(r.Values) {
				v = r.Values[si]
			}
			row = append(row, f.Value(e.Tooltip, r, v))
		}
		if share {
			row = append(row, f.Number(roundTenth(100*r.Values[0]/e.Total(0)))+"%")
		}
		rows = append(rows, row)
	}

	widths := make([]int, len(header))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	b.WriteString(e.Title + "\n\n")
	b.WriteString(e.Description + "\n\n")
	for ri, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			pad := strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
			if i == 0 {
				cells[i] = cell + pad
			} else {
				cells[i] = pad + cell
			}
		}
		b.WriteString("  " + strings.Join(cells, "   ") + "\n")
		if ri == 0 {
			total := 0
			for _, w := range widths {
				total += w
			}
			b.WriteString("  " + strings.Repeat("─", total+3*(len(widths)-1)) + "\n")
		}
	}
	fmt.Fprintf(&b, "\nSource: %s\n", e.Citation)
	return b.String()
}

func roundTenth(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
