package render

import (
	"math"
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/tinytelemetry/graphfin/internal/registry"
)

// Sector is one pie slice. Angles are radians, counterclockwise from
// three o'clock.
type Sector struct {
	Index int
	Start float64
	End   float64
}

// Sweep is the angular size of the slice.
func (s Sector) Sweep() float64 { return s.End - s.Start }

// PieSectors splits the full circle between the records of series 0 in
// proportion to their values. The last slice ends at exactly 2π.
func PieSectors(e registry.ChartEntry) []Sector {
	total := e.Total(0)
	if total <= 0 {
		return nil
	}
	out := make([]Sector, 0, len(e.Records))
	angle := 0.0
	for i, r := range e.Records {
		end := angle + r.Values[0]/total*2*math.Pi
		if i == len(e.Records)-1 {
			end = 2 * math.Pi
		}
		out = append(out, Sector{Index: i, Start: angle, End: end})
		angle = end
	}
	return out
}

// SectorAt returns the record index of the slice containing angle, or -1.
func SectorAt(sectors []Sector, angle float64) int {
	a := math.Mod(angle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	for _, s := range sectors {
		if a >= s.Start && a < s.End {
			return s.Index
		}
	}
	return -1
}

// SectorAtCell maps a canvas cell to a slice. Terminal cells are about twice
// as tall as wide, so the horizontal distance is halved before testing.
func SectorAtCell(sectors []Sector, x, y, w, h int) (int, bool) {
	cx, cy := float64(w)/2, float64(h)/2
	r := math.Min(float64(h)/2, float64(w)/4) - 0.25
	dx := (float64(x) + 0.5 - cx) / 2
	dy := cy - (float64(y) + 0.5)
	if dx*dx+dy*dy > r*r {
		return 0, false
	}
	idx := SectorAt(sectors, math.Atan2(dy, dx))
	return idx, idx >= 0
}

func pie(e registry.ChartEntry, w, h int, opts Options, st styles) string {
	f := opts.Formatter
	sectors := PieSectors(e)

	labels := make([]string, len(e.Records))
	legendW := 0
	for i := range e.Records {
		labels[i] = f.SliceLabel(e, i)
		legendW = max(legendW, ansi.StringWidth(labels[i])+4)
	}

	ch := max(3, h)
	cw := max(6, min(w-legendW-2, 2*ch))
	c := canvas.New(cw, ch)
	blank := canvas.NewCell(' ')
	for y := 0; y < ch; y++ {
		for x := 0; x < cw; x++ {
			p := canvas.Point{X: x, Y: y}
			idx, ok := SectorAtCell(sectors, x, y, cw, ch)
			if !ok {
				c.SetCell(p, blank)
				continue
			}
			glyph := '█'
			if idx == opts.Cursor {
				glyph = '▓'
			}
			c.SetCell(p, canvas.NewCellWithStyle(glyph, colorStyle(e.RecordColor(idx, 0), st)))
		}
	}

	legend := make([]string, len(labels))
	for i, l := range labels {
		marker := "  "
		ls := st.text
		if i == opts.Cursor {
			marker = "▶ "
			ls = st.highlight
		}
		legend[i] = marker + colorStyle(e.RecordColor(i, 0), st).Render("■") + " " + ls.Render(l)
	}

	chart := lipgloss.JoinHorizontal(lipgloss.Center, c.View(), "  ", strings.Join(legend, "\n"))
	return lipgloss.PlaceHorizontal(w, lipgloss.Center, chart)
}
