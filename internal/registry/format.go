package registry

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders chart numbers for one locale.
type Formatter struct {
	tag language.Tag
	p   *message.Printer
}

// English is the formatter used when no locale is configured.
var English = NewFormatter(language.English)

// NewFormatter returns a Formatter for tag.
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{tag: tag, p: message.NewPrinter(tag)}
}

// ParseLocale turns a BCP 47 string ("en", "de-CH") into a tag.
// The empty string means English.
func ParseLocale(s string) (language.Tag, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return language.English, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("parse locale %q: %w", s, err)
	}
	return tag, nil
}

// Locale is the tag this formatter was built for.
func (f *Formatter) Locale() language.Tag { return f.tag }

// Number formats v with locale digit grouping. Whole numbers print without
// a fractional part.
func (f *Formatter) Number(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return f.p.Sprintf("%d", int64(v))
	}
	return f.p.Sprintf("%.1f", v)
}

// Value applies the entry's prefix, suffix and projection note to v.
func (f *Formatter) Value(t TooltipFormat, r Record, v float64) string {
	s := t.Prefix + f.Number(v) + t.Suffix
	if r.Projected && t.ProjectedNote != "" {
		s += " " + t.ProjectedNote
	}
	return s
}

// Line is one "<label>: <value>" tooltip row for a series.
func (f *Formatter) Line(t TooltipFormat, s Series, r Record, v float64) string {
	label := t.Label
	if label == "" {
		label = s.Name
	}
	return label + ": " + f.Value(t, r, v)
}

// Tooltip returns the lines shown for record idx: the category label first,
// then one row per series. Out-of-range indexes yield nil.
func (f *Formatter) Tooltip(e ChartEntry, idx int) []string {
	if idx < 0 || idx >= len(e.Records) {
		return nil
	}
	r := e.Records[idx]
	lines := []string{r.Label}
	for i, s := range e.Series {
		if i >= len(r.Values) {
			break
		}
		lines = append(lines, f.Line(e.Tooltip, s, r, r.Values[i]))
	}
	return lines
}

// SliceLabel is the "<name>: <v>%" label drawn next to pie sectors.
func (f *Formatter) SliceLabel(e ChartEntry, idx int) string {
	r := e.Records[idx]
	return r.Label + ": " + f.Value(e.Tooltip, r, r.Values[0])
}

// Format renders one tooltip row in English.
func (t TooltipFormat) Format(s Series, r Record, v float64) string {
	return English.Line(t, s, r, v)
}
