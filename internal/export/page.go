// Package export writes the dashboard charts as a standalone HTML page.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/tinytelemetry/graphfin/internal/registry"
)

const (
	defaultWidth      = "900px"
	defaultHeight     = "500px"
	defaultBackground = "#111827"
	textColor         = "#d1d5db"
	areaOpacity       = 0.6
)

// Options controls page layout. Zero fields take defaults.
type Options struct {
	Title      string
	Width      string
	Height     string
	Background string
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = registry.HeaderTitle
	}
	if o.Width == "" {
		o.Width = defaultWidth
	}
	if o.Height == "" {
		o.Height = defaultHeight
	}
	if o.Background == "" {
		o.Background = defaultBackground
	}
	return o
}

// WritePage renders every chart in reg, in tab order, as one HTML page.
func WritePage(w io.Writer, reg *registry.Registry, o Options) error {
	if reg == nil {
		reg = registry.Default()
	}
	o = o.withDefaults()

	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	page.SetPageTitle(o.Title)

	for _, e := range reg.Entries() {
		c, err := buildChart(e, o)
		if err != nil {
			return err
		}
		page.AddCharts(c)
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// WriteFile writes the page to path. The file is replaced atomically so a
// failed export never leaves a truncated page behind.
func WriteFile(path string, reg *registry.Registry, o Options) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := WritePage(tmp, reg, o); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod export: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("move export into place: %w", err)
	}
	return nil
}

func buildChart(e registry.ChartEntry, o Options) (components.Charter, error) {
	switch e.Kind {
	case registry.Bar:
		return barChart(e, o), nil
	case registry.GroupedBar:
		return groupedBarChart(e, o), nil
	case registry.Pie:
		return pieChart(e, o), nil
	case registry.Area:
		return areaChart(e, o), nil
	default:
		return nil, fmt.Errorf("export %s: unsupported chart kind %s", e.ID, e.Kind)
	}
}

func globalOpts(e registry.ChartEntry, o Options) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:       o.Title,
			Width:           o.Width,
			Height:          o.Height,
			BackgroundColor: o.Background,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:         e.Title,
			Subtitle:      "Source: " + e.Citation,
			TitleStyle:    &opts.TextStyle{Color: textColor},
			SubtitleStyle: &opts.TextStyle{Color: textColor},
		}),
		charts.WithLegendOpts(opts.Legend{
			Show:      opts.Bool(true),
			Bottom:    "0",
			TextStyle: &opts.TextStyle{Color: textColor},
		}),
	}
}

func axisOpts(e registry.ChartEntry) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithXAxisOpts(opts.XAxis{
			Name:         e.XLabel,
			NameLocation: "center",
			NameGap:      30,
			AxisLabel:    &opts.AxisLabel{Color: textColor},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:         e.YLabel,
			NameLocation: "center",
			NameGap:      50,
			AxisLabel:    &opts.AxisLabel{Color: textColor},
		}),
		charts.WithGridOpts(opts.Grid{
			Left:   "140",
			Bottom: "80",
		}),
	}
}

// valueFormatter is an echarts template showing a value with the entry's
// prefix and suffix.
func valueFormatter(t registry.TooltipFormat) string {
	return t.Prefix + "{c}" + t.Suffix
}

func itemFormatter(e registry.ChartEntry) types.FuncStr {
	return types.FuncStr("{b}<br/>" + seriesLabel(e) + ": " + valueFormatter(e.Tooltip))
}

// seriesFormatter names the hovered series instead of the entry, for charts
// with more than one series.
func seriesFormatter(e registry.ChartEntry) types.FuncStr {
	return types.FuncStr("{b}<br/>{a}: " + valueFormatter(e.Tooltip))
}

func labels(e registry.ChartEntry) []string {
	out := make([]string, len(e.Records))
	for i, r := range e.Records {
		out[i] = r.Label
	}
	return out
}

func barChart(e registry.ChartEntry, o Options) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(append(append(globalOpts(e, o), axisOpts(e)...),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: itemFormatter(e),
		}),
	)...)

	data := make([]opts.BarData, len(e.Records))
	for i, r := range e.Records {
		data[i] = opts.BarData{Name: r.Label, Value: r.Values[0]}
		if c := e.RecordColor(i, 0); c != "" {
			data[i].ItemStyle = &opts.ItemStyle{Color: c}
		}
	}

	bar.SetXAxis(labels(e)).AddSeries(e.Series[0].Name, data)
	if e.Layout == registry.Horizontal {
		bar.XYReversal()
	}
	return bar
}

func groupedBarChart(e registry.ChartEntry, o Options) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(append(append(globalOpts(e, o), axisOpts(e)...),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: seriesFormatter(e),
		}),
	)...)

	bar.SetXAxis(labels(e))
	for si, s := range e.Series {
		data := make([]opts.BarData, 0, len(e.Records))
		for _, v := range e.Values(si) {
			data = append(data, opts.BarData{Value: v})
		}
		bar.AddSeries(s.Name, data, charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}))
	}
	return bar
}

func pieChart(e registry.ChartEntry, o Options) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(append(globalOpts(e, o),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: itemFormatter(e),
		}),
	)...)

	data := make([]opts.PieData, len(e.Records))
	for i, r := range e.Records {
		data[i] = opts.PieData{Name: r.Label, Value: r.Values[0]}
		if c := e.RecordColor(i, 0); c != "" {
			data[i].ItemStyle = &opts.ItemStyle{Color: c}
		}
	}

	pie.AddSeries(e.Series[0].Name, data).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(true),
				Color:     textColor,
				Formatter: "{b}: " + valueFormatter(e.Tooltip),
			}),
			charts.WithPieChartOpts(opts.PieChart{
				Radius: []string{"0%", "60%"},
				Center: []string{"50%", "55%"},
			}),
		)
	return pie
}

func areaChart(e registry.ChartEntry, o Options) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(append(append(globalOpts(e, o), axisOpts(e)...),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: itemFormatter(e),
		}),
	)...)

	xs := make([]string, len(e.Records))
	data := make([]opts.LineData, len(e.Records))
	for i, r := range e.Records {
		xs[i] = r.Label
		name := r.Label
		if r.Projected && e.Tooltip.ProjectedNote != "" {
			name += " " + e.Tooltip.ProjectedNote
		}
		data[i] = opts.LineData{Name: name, Value: r.Values[0]}
	}

	s := e.Series[0]
	line.SetXAxis(xs).AddSeries(s.Name, data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
	)
	line.SetSeriesOptions(
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
		charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: opts.Float(areaOpacity)}),
	)
	return line
}

func seriesLabel(e registry.ChartEntry) string {
	if e.Tooltip.Label != "" {
		return e.Tooltip.Label
	}
	return e.Series[0].Name
}
