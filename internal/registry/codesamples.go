package registry

// Code samples shown by the "Show Code" toggle. They are display text only.

const fraudReductionCode = `// Fraud Reduction - horizontal bars
records := []registry.Record{
	{Label: "Traditional DB", Values: []float64{1720}, Fill: "#8884d8"},
	{Label: "Graph DB", Values: []float64{980}, Fill: "#82ca9d"},
}

maxV := 1720.0
for _, r := range records {
	n := int(r.Values[0] / maxV * float64(width))
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(r.Fill))
	fmt.Printf("%-16s %s $%v\n", r.Label, style.Render(strings.Repeat("█", n)), r.Values[0])
}`

const timeEfficiencyCode = `// Time Efficiency - grouped bars
records := []registry.Record{
	{Label: "Alert Triage (CBA)", Values: []float64{100, 60}},
	{Label: "Scenario Runtime (JP Morgan)", Values: []float64{100, 5}},
	{Label: "SAR Analysis (US Bank)", Values: []float64{100, 43}},
}
traditional := lipgloss.NewStyle().Foreground(lipgloss.Color("#8884d8"))
graph := lipgloss.NewStyle().Foreground(lipgloss.Color("#82ca9d"))

bc := barchart.New(width, height, barchart.WithBarGap(1), barchart.WithNoAxis())
for _, r := range records {
	bc.Push(barchart.BarData{Values: []barchart.BarValue{
		{Name: "Traditional Database", Value: r.Values[0], Style: traditional},
	}})
	bc.Push(barchart.BarData{Values: []barchart.BarValue{
		{Name: "Graph Database", Value: r.Values[1], Style: graph},
	}})
}
bc.Draw()
fmt.Println(bc.View())`

const adoptionBarriersCode = `// Adoption Barriers - vertical bars
records := []registry.Record{
	{Label: "Skills Shortage", Values: []float64{68}},
	{Label: "Integration Complexity", Values: []float64{52}},
	{Label: "License Cost", Values: []float64{47}},
	{Label: "Data Migration", Values: []float64{41}},
	{Label: "Security Concerns", Values: []float64{35}},
}
orange := lipgloss.NewStyle().Foreground(lipgloss.Color("#ff7300"))

bc := barchart.New(width, height, barchart.WithBarGap(1), barchart.WithNoAxis())
for _, r := range records {
	bc.Push(barchart.BarData{Values: []barchart.BarValue{
		{Name: "% of Organizations", Value: r.Values[0], Style: orange},
	}})
}
bc.Draw()
fmt.Println(bc.View())`

const falsePositivesCode = `// False Positive Reduction - pie
records := []registry.Record{
	{Label: "Rule Engine", Values: []float64{92}, Fill: "#ff4444"},
	{Label: "Graph DB", Values: []float64{65}, Fill: "#44ff44"},
}

sectors := render.PieSectors(entry)
c := canvas.New(width, height)
for y := 0; y < height; y++ {
	for x := 0; x < width; x++ {
		if idx, ok := render.SectorAtCell(sectors, x, y, width, height); ok {
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(records[idx].Fill))
			c.SetCell(canvas.Point{X: x, Y: y}, canvas.NewCellWithStyle('█', style))
		}
	}
}
fmt.Println(c.View())
// Rule Engine: 92%  Graph DB: 65%`

const marketAdoptionCode = `// Market Adoption - monotone area with projections
records := []registry.Record{
	{Label: "2020", X: 2020, Values: []float64{12}},
	{Label: "2021", X: 2021, Values: []float64{18}},
	{Label: "2022", X: 2022, Values: []float64{27}},
	{Label: "2023", X: 2023, Values: []float64{38}},
	{Label: "2024", X: 2024, Values: []float64{52}},
	{Label: "2025", X: 2025, Values: []float64{63}, Projected: true},
	{Label: "2026", X: 2026, Values: []float64{72}, Projected: true},
}

xs := make([]float64, len(records))
ys := make([]float64, len(records))
for i, r := range records {
	xs[i], ys[i] = float64(r.X), r.Values[0]
}
curve, err := render.NewCurve(xs, ys)
if err != nil {
	return err
}

top := render.NiceMax(72)
fill := canvas.NewCellWithStyle('█', lipgloss.NewStyle().Foreground(lipgloss.Color("#8884d8")))
c := canvas.New(width, height)
lo, hi := curve.Domain()
for col := 0; col < width; col++ {
	y := curve.At(lo + (hi-lo)*float64(col)/float64(width-1))
	for row := 0; row < int(y/top*float64(height)); row++ {
		c.SetCell(canvas.Point{X: col, Y: height - 1 - row}, fill)
	}
}
fmt.Println(c.View())

// tooltip: "63% (Projected)" for forecast points, "52%" otherwise`
