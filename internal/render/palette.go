package render

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors a skin can override.
type Palette struct {
	Title  lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Border lipgloss.Color
	CodeFg lipgloss.Color
	CodeBg lipgloss.Color
}

// DefaultPalette is tuned for dark terminals. The code block uses the
// gray-900 / green-400 pair of the web dashboard.
func DefaultPalette() Palette {
	return Palette{
		Title:  lipgloss.Color("#93c5fd"),
		Text:   lipgloss.Color("#d1d5db"),
		Muted:  lipgloss.Color("#6b7280"),
		Accent: lipgloss.Color("#facc15"),
		Border: lipgloss.Color("#374151"),
		CodeFg: lipgloss.Color("#4ade80"),
		CodeBg: lipgloss.Color("#111827"),
	}
}

// Merge fills empty fields of p from base.
func (p Palette) Merge(base Palette) Palette {
	pick := func(v, d lipgloss.Color) lipgloss.Color {
		if v == "" {
			return d
		}
		return v
	}
	return Palette{
		Title:  pick(p.Title, base.Title),
		Text:   pick(p.Text, base.Text),
		Muted:  pick(p.Muted, base.Muted),
		Accent: pick(p.Accent, base.Accent),
		Border: pick(p.Border, base.Border),
		CodeFg: pick(p.CodeFg, base.CodeFg),
		CodeBg: pick(p.CodeBg, base.CodeBg),
	}
}

type styles struct {
	title     lipgloss.Style
	text      lipgloss.Style
	muted     lipgloss.Style
	highlight lipgloss.Style
	tooltip   lipgloss.Style
	button    lipgloss.Style
	code      lipgloss.Style
	codeHead  lipgloss.Style
	accent    lipgloss.Color
}

func newStyles(p Palette) styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(p.Title),
		text:      lipgloss.NewStyle().Foreground(p.Text),
		muted:     lipgloss.NewStyle().Foreground(p.Muted),
		highlight: lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		tooltip:   lipgloss.NewStyle().Foreground(p.Accent),
		button:    lipgloss.NewStyle().Foreground(p.Text).Background(p.Border).Padding(0, 1),
		code: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Foreground(p.CodeFg).
			Background(p.CodeBg).
			Padding(0, 1),
		codeHead: lipgloss.NewStyle().Foreground(p.Muted).Background(p.CodeBg),
		accent:   p.Accent,
	}
}

// colorStyle is the fill style for a data color; empty falls back to accent.
func colorStyle(hex string, st styles) lipgloss.Style {
	c := st.accent
	if hex != "" {
		c = lipgloss.Color(hex)
	}
	return lipgloss.NewStyle().Foreground(c)
}

// barStyle paints both layers so ntcharts bars render as solid blocks.
func barStyle(hex string, st styles) lipgloss.Style {
	c := st.accent
	if hex != "" {
		c = lipgloss.Color(hex)
	}
	return lipgloss.NewStyle().Foreground(c).Background(c)
}
