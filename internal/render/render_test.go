package render

import (
	"math"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinytelemetry/graphfin/internal/registry"
)

func plain(s string) string { return ansi.Strip(s) }

func wideOpts() Options {
	return Options{Width: 160, Height: 60, Cursor: -1}
}

func TestRenderEveryEntry(t *testing.T) {
	t.Parallel()

	for _, e := range registry.Default().Entries() {
		out := plain(Render(e, false, wideOpts()))
		assert.Contains(t, out, e.Title, e.ID.String())
		assert.Contains(t, out, "Source: "+e.Citation, e.ID.String())
		assert.Contains(t, out, e.Description, e.ID.String())
		assert.Contains(t, out, registry.ShowCodeLabel, e.ID.String())
		assert.NotContains(t, out, "code  1-", e.ID.String())
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	t.Parallel()

	e := registry.Default().MustLookup(registry.MarketAdoption)
	opts := Options{Width: 90, Height: 30, Cursor: 2}
	assert.Equal(t, Render(e, true, opts), Render(e, true, opts))
}

func TestRenderInitialFraudChart(t *testing.T) {
	t.Parallel()

	e := registry.Default().MustLookup(registry.FraudReduction)
	out := plain(Render(e, false, Options{Width: 120, Height: 40, Cursor: 0}))
	assert.Contains(t, out, "Traditional DB")
	assert.Contains(t, out, "Graph DB")
	assert.Contains(t, out, "$1,720")
	assert.Contains(t, out, "$980")
	assert.Contains(t, out, "Fraud Loss: $1,720")
	assert.Contains(t, out, "USD per 1,000 Transactions")
}

func TestRenderTimeEfficiency(t *testing.T) {
	t.Parallel()

	e := registry.Default().MustLookup(registry.TimeEfficiency)
	out := plain(Render(e, false, Options{Width: 120, Height: 40, Cursor: 1}))
	assert.Contains(t, out, "Traditional Database")
	assert.Contains(t, out, "Graph Database")
	assert.Contains(t, out, "Processing Time (% of Original)")
	assert.Contains(t, out, "Scenario Runtime (JP Morgan) │ Traditional Database: 100 │ Graph Database: 5")
}

func TestRenderPie(t *testing.T) {
	t.Parallel()

	e := registry.Default().MustLookup(registry.FalsePositiveReduction)
	out := plain(Render(e, false, Options{Width: 100, Height: 30, Cursor: -1}))
	assert.Contains(t, out, "Rule Engine: 92%")
	assert.Contains(t, out, "Graph DB: 65%")
	assert.Contains(t, out, "█")
}

func TestRenderMarketAdoption(t *testing.T) {
	t.Parallel()

	e := registry.Default().MustLookup(registry.MarketAdoption)
	out := plain(Render(e, false, Options{Width: 120, Height: 36, Cursor: 5}))
	for _, year := range []string{"2020", "2021", "2022", "2023", "2024", "2025", "2026"} {
		assert.Contains(t, out, year)
	}
	assert.Contains(t, out, "Adoption Rate: 63% (Projected)")
	assert.Contains(t, out, "Adoption Rate (%)")

	out = plain(Render(e, false, Options{Width: 120, Height: 36, Cursor: 4}))
	assert.Contains(t, out, "Adoption Rate: 52%")
	assert.NotContains(t, out, "Projected")
}

func TestCodeToggleShowsExactSample(t *testing.T) {
	t.Parallel()

	e := registry.Default().MustLookup(registry.AdoptionBarriers)
	opts := Options{Width: 140, Height: 200, Cursor: -1}

	hidden := Render(e, false, opts)
	shown := plain(Render(e, true, opts))
	for _, line := range CodeLines(e.CodeSample) {
		assert.Contains(t, shown, line)
	}
	assert.Contains(t, shown, registry.HideCodeLabel)
	assert.Equal(t, hidden, Render(e, false, opts))
	assert.NotContains(t, plain(hidden), "bc.Draw()")
}

func TestCodeBlockClipsLongLines(t *testing.T) {
	t.Parallel()

	e := registry.Default().MustLookup(registry.FraudReduction)
	st := newStyles(DefaultPalette())
	block := codeBlock(e, 30, 5, 0, false, st)
	lines := strings.Split(block, "\n")
	require.Len(t, lines, 5+1+2)
	for _, l := range lines {
		assert.Equal(t, 30, lipgloss.Width(l))
	}

	compact := strings.Split(codeBlock(e, 30, 5, 0, true, st), "\n")
	require.Len(t, compact, 5+1)
	for _, l := range compact {
		assert.Equal(t, 30, lipgloss.Width(l))
	}
}

func TestCodeScrolling(t *testing.T) {
	t.Parallel()

	e := registry.Default().MustLookup(registry.MarketAdoption)
	total := len(CodeLines(e.CodeSample))
	assert.Equal(t, 0, ClampCodeOffset(e, 5, -3))
	assert.Equal(t, 2, ClampCodeOffset(e, 5, 2))
	assert.Equal(t, total-5, ClampCodeOffset(e, 5, 1000))

	st := newStyles(DefaultPalette())
	block := plain(codeBlock(e, 120, 5, 2, false, st))
	assert.Contains(t, block, "3-7 of")
	assert.Contains(t, block, CodeLines(e.CodeSample)[2])
	assert.NotContains(t, block, CodeLines(e.CodeSample)[0])
}

func TestCodeRows(t *testing.T) {
	t.Parallel()

	e := registry.Default().MustLookup(registry.AdoptionBarriers)
	assert.Equal(t, len(CodeLines(e.CodeSample)), CodeRows(e, Options{Width: 140, Height: 200}))
	assert.Equal(t, 1, CodeRows(e, Options{Width: 140, Height: 10}))
}

func TestRenderCodeKeepsChartAtSmallSizes(t *testing.T) {
	t.Parallel()

	lastLabel := map[registry.ChartID]string{
		registry.FraudReduction:         "Graph DB",
		registry.TimeEfficiency:         "SAR Analysis",
		registry.AdoptionBarriers:       "Security",
		registry.FalsePositiveReduction: "Graph DB",
		registry.MarketAdoption:         "2026",
	}
	for _, size := range [][2]int{{56, 15}, {96, 17}} {
		opts := Options{Width: size[0], Height: size[1], Cursor: -1}
		for _, e := range registry.Default().Entries() {
			out := Render(e, true, opts)
			name := e.ID.String()
			assert.LessOrEqual(t, lipgloss.Height(out), opts.Height, name)
			assert.GreaterOrEqual(t, CodeRows(e, opts), 1, name)

			text := plain(out)
			assert.Contains(t, text, "code  1-", name)
			assert.Contains(t, text, "Source:", name)
			assert.Contains(t, text, lastLabel[e.ID], name)
			for _, s := range e.Series {
				if e.Kind != registry.Pie {
					assert.Contains(t, text, s.Name, name)
				}
			}
		}
	}
}

var renderCall = regexp.MustCompile(`render\.(\w+)\(`)

func TestCodeSamplesCallRealRenderFuncs(t *testing.T) {
	t.Parallel()

	exported := map[string]any{
		"NewCurve":      NewCurve,
		"MonotoneCurve": MonotoneCurve,
		"NiceMax":       NiceMax,
		"AreaColumn":    AreaColumn,
		"PieSectors":    PieSectors,
		"SectorAtCell":  SectorAtCell,
		"BarLengths":    BarLengths,
	}
	for _, e := range registry.Default().Entries() {
		for _, m := range renderCall.FindAllStringSubmatch(e.CodeSample, -1) {
			assert.Contains(t, exported, m[1], "%s sample calls render.%s", e.ID, m[1])
		}
	}

	market := registry.Default().MustLookup(registry.MarketAdoption).CodeSample
	assert.Contains(t, market, "curve, err := render.NewCurve(xs, ys)")
	assert.Contains(t, market, "curve.At(")
}

func TestCodeLinesExpandsTabs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a", "    b"}, CodeLines("a\r\n\tb"))
}

func TestBarLengths(t *testing.T) {
	t.Parallel()

	fraud := registry.Default().MustLookup(registry.FraudReduction)
	assert.Equal(t, [][]int{{50}, {28}}, BarLengths(fraud, 50))

	time := registry.Default().MustLookup(registry.TimeEfficiency)
	assert.Equal(t, [][]int{{20, 12}, {20, 1}, {20, 9}}, BarLengths(time, 20))

	assert.Equal(t, [][]int{{0}, {0}}, BarLengths(fraud, 0))
}

func TestPieSectors(t *testing.T) {
	t.Parallel()

	e := registry.Default().MustLookup(registry.FalsePositiveReduction)
	sectors := PieSectors(e)
	require.Len(t, sectors, 2)

	assert.Equal(t, 0.0, sectors[0].Start)
	assert.Equal(t, 2*math.Pi, sectors[1].End)
	assert.Equal(t, sectors[0].End, sectors[1].Start)
	assert.InDelta(t, 92.0/157.0, sectors[0].Sweep()/(2*math.Pi), 1e-9)

	assert.Equal(t, 0, SectorAt(sectors, 0.1))
	assert.Equal(t, 1, SectorAt(sectors, -0.1))
	assert.Equal(t, 0, SectorAt(sectors, 2*math.Pi+0.1))

	idx, ok := SectorAtCell(sectors, 25, 3, 40, 10)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
	_, ok = SectorAtCell(sectors, 0, 0, 40, 10)
	assert.False(t, ok)

	assert.Nil(t, PieSectors(registry.ChartEntry{}))
}

func TestMonotoneCurve(t *testing.T) {
	t.Parallel()

	e := registry.Default().MustLookup(registry.MarketAdoption)
	xs := make([]float64, len(e.Records))
	for i, r := range e.Records {
		xs[i] = float64(r.X)
	}
	ys := e.Values(0)

	c, err := NewCurve(xs, ys)
	require.NoError(t, err)
	for i := range xs {
		assert.InDelta(t, ys[i], c.At(xs[i]), 1e-9)
	}
	assert.Equal(t, 12.0, c.At(1990))
	assert.Equal(t, 72.0, c.At(2100))

	samples, err := MonotoneCurve(xs, ys, 200)
	require.NoError(t, err)
	require.Len(t, samples, 200)
	for i := 1; i < len(samples); i++ {
		assert.GreaterOrEqual(t, samples[i], samples[i-1]-1e-9, "sample %d", i)
	}
	assert.InDelta(t, 12, samples[0], 1e-9)
	assert.InDelta(t, 72, samples[199], 1e-9)
}

func TestMonotoneCurveFlatSegmentsDoNotOvershoot(t *testing.T) {
	t.Parallel()

	samples, err := MonotoneCurve([]float64{0, 1, 2, 3}, []float64{0, 10, 10, 0}, 31)
	require.NoError(t, err)
	for _, v := range samples {
		assert.LessOrEqual(t, v, 10.0+1e-9)
		assert.GreaterOrEqual(t, v, -1e-9)
	}
}

func TestMonotoneCurveErrors(t *testing.T) {
	t.Parallel()

	_, err := NewCurve([]float64{1}, []float64{1})
	assert.Error(t, err)
	_, err = NewCurve([]float64{1, 2}, []float64{1})
	assert.Error(t, err)
	_, err = NewCurve([]float64{2, 1}, []float64{1, 2})
	assert.Error(t, err)
	_, err = MonotoneCurve([]float64{1, 2}, []float64{1, 2}, 1)
	assert.Error(t, err)

	c, err := NewCurve([]float64{0, 4}, []float64{0, 8})
	require.NoError(t, err)
	assert.InDelta(t, 4, c.At(2), 1e-9)
}

func TestNiceMax(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 80.0, NiceMax(72))
	assert.Equal(t, 70.0, NiceMax(68))
	assert.Equal(t, 2000.0, NiceMax(1720))
	assert.Equal(t, 100.0, NiceMax(100))
	assert.Equal(t, 1.0, NiceMax(0))
}

func TestAreaColumn(t *testing.T) {
	t.Parallel()

	e := registry.Default().MustLookup(registry.MarketAdoption)
	assert.Equal(t, 0, AreaColumn(e, 0, 61))
	assert.Equal(t, 30, AreaColumn(e, 3, 61))
	assert.Equal(t, 60, AreaColumn(e, 6, 61))
}

func TestPaletteMerge(t *testing.T) {
	t.Parallel()

	p := Palette{Accent: "#ff0000"}.Merge(DefaultPalette())
	assert.Equal(t, lipgloss.Color("#ff0000"), p.Accent)
	assert.Equal(t, DefaultPalette().CodeBg, p.CodeBg)
}

func TestTooltipOutOfRange(t *testing.T) {
	t.Parallel()

	e := registry.Default().MustLookup(registry.FraudReduction)
	assert.Empty(t, Tooltip(e, -1, nil))
	assert.Empty(t, Tooltip(e, 2, nil))
	assert.Equal(t, "Graph DB │ Fraud Loss: $980", Tooltip(e, 1, nil))
}
