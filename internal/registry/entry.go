package registry

// Series is one measured quantity in a chart. Bar and pie charts have one
// series; grouped bars have one per bar in a group.
type Series struct {
	Key   string `validate:"required"`
	Name  string `validate:"required"`
	Color string `validate:"omitempty,hexcolor"`
}

// Record is one category (bar, slice or area point). Values holds one
// number per Series, in series order.
type Record struct {
	Label     string    `validate:"required"`
	X         int       // sortable key for area charts (the year)
	Values    []float64 `validate:"required,min=1,dive,gte=0"`
	Fill      string    `validate:"omitempty,hexcolor"`
	Projected bool      // forecast rather than observed; only changes tooltip text
}

// TooltipFormat describes how a highlighted value is labelled.
// An empty Label means each series is listed by name instead.
type TooltipFormat struct {
	Prefix        string
	Suffix        string
	Label         string
	ProjectedNote string
}

// ChartEntry is one static, fully specified chart definition.
type ChartEntry struct {
	ID          ChartID `validate:"gte=0,lte=4"`
	Tab         string  `validate:"required"`
	Icon        string
	Title       string `validate:"required"`
	Description string `validate:"required"`
	Citation    string `validate:"required"`
	Kind        Kind   `validate:"gte=0,lte=3"`
	Layout      Layout `validate:"gte=0,lte=1"`
	XLabel      string
	YLabel      string
	Series      []Series `validate:"required,min=1,dive"`
	Records     []Record `validate:"required,min=1,dive"`
	Tooltip     TooltipFormat
	CodeSample  string `validate:"required"`
}

// Values returns the column of numbers for series idx, one per record.
func (e ChartEntry) Values(idx int) []float64 {
	out := make([]float64, 0, len(e.Records))
	for _, r := range e.Records {
		if idx < len(r.Values) {
			out = append(out, r.Values[idx])
		}
	}
	return out
}

// MaxValue is the largest value across all series.
func (e ChartEntry) MaxValue() float64 {
	maxV := 0.0
	for _, r := range e.Records {
		for _, v := range r.Values {
			if v > maxV {
				maxV = v
			}
		}
	}
	return maxV
}

// Total sums series idx across all records.
func (e ChartEntry) Total(idx int) float64 {
	total := 0.0
	for _, v := range e.Values(idx) {
		total += v
	}
	return total
}

// RecordColor picks the fill for a record: its own Fill, then the
// series color, then the empty string (caller falls back to the palette).
func (e ChartEntry) RecordColor(rec, series int) string {
	if rec >= 0 && rec < len(e.Records) && e.Records[rec].Fill != "" {
		return e.Records[rec].Fill
	}
	if series >= 0 && series < len(e.Series) {
		return e.Series[series].Color
	}
	return ""
}

func (e ChartEntry) clone() ChartEntry {
	out := e
	out.Series = append([]Series(nil), e.Series...)
	out.Records = make([]Record, len(e.Records))
	for i, r := range e.Records {
		r.Values = append([]float64(nil), r.Values...)
		out.Records[i] = r
	}
	return out
}
