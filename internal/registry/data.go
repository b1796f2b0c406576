package registry

// builtinEntries is the compiled-in chart set, in tab order.
func builtinEntries() []ChartEntry {
	return []ChartEntry{
		{
			ID:          FraudReduction,
			Tab:         "Fraud Reduction",
			Icon:        "💰",
			Title:       "Fraud Loss Reduction per 1,000 Transactions (USD)",
			Description: "Graph databases have been shown to reduce fraud losses by 43% compared to traditional database approaches.",
			Citation:    "McKinsey & Company (2024). 2024 in charts: Financial crime and fraud benchmarks.",
			Kind:        Bar,
			Layout:      Horizontal,
			XLabel:      "USD",
			Series: []Series{
				{Key: "value", Name: "USD per 1,000 Transactions", Color: "#8884d8"},
			},
			Records: []Record{
				{Label: "Traditional DB", Values: []float64{1720}, Fill: "#8884d8"},
				{Label: "Graph DB", Values: []float64{980}, Fill: "#82ca9d"},
			},
			Tooltip:    TooltipFormat{Prefix: "$", Label: "Fraud Loss"},
			CodeSample: fraudReductionCode,
		},
		{
			ID:          TimeEfficiency,
			Tab:         "Time Efficiency",
			Icon:        "⚡",
			Title:       "Time Efficiency Comparison (% of Original Time)",
			Description: "Graph databases dramatically reduce processing time across various financial use cases.",
			Citation:    "Compiled from FinTech Global (2024), Gartner (2024), and Neo4j (n.d.) case studies.",
			Kind:        GroupedBar,
			Layout:      Vertical,
			YLabel:      "Processing Time (% of Original)",
			Series: []Series{
				{Key: "traditional", Name: "Traditional Database", Color: "#8884d8"},
				{Key: "graph", Name: "Graph Database", Color: "#82ca9d"},
			},
			Records: []Record{
				{Label: "Alert Triage (CBA)", Values: []float64{100, 60}},
				{Label: "Scenario Runtime (JP Morgan)", Values: []float64{100, 5}},
				{Label: "SAR Analysis (US Bank)", Values: []float64{100, 43}},
			},
			CodeSample: timeEfficiencyCode,
		},
		{
			ID:          AdoptionBarriers,
			Tab:         "Adoption Barriers",
			Icon:        "🚧",
			Title:       "Top Barriers to Graph Database Adoption (%)",
			Description: "Despite their advantages, several factors continue to limit widespread adoption of graph databases in financial contexts.",
			Citation:    "Gartner (2024). Emerging Technology Analysis: Graph Database Market Trends and Barriers.",
			Kind:        Bar,
			Layout:      Vertical,
			YLabel:      "Percentage of Organizations",
			Series: []Series{
				{Key: "value", Name: "% of Organizations", Color: "#ff7300"},
			},
			Records: []Record{
				{Label: "Skills Shortage", Values: []float64{68}},
				{Label: "Integration Complexity", Values: []float64{52}},
				{Label: "License Cost", Values: []float64{47}},
				{Label: "Data Migration", Values: []float64{41}},
				{Label: "Security Concerns", Values: []float64{35}},
			},
			Tooltip:    TooltipFormat{Suffix: "%", Label: "Organizations Citing This Barrier"},
			CodeSample: adoptionBarriersCode,
		},
		{
			ID:          FalsePositiveReduction,
			Tab:         "False Positives",
			Icon:        "🎯",
			Title:       "AML False Positive Rate Comparison (%)",
			Description: "Graph databases significantly reduce false positive rates in Anti-Money Laundering (AML) monitoring.",
			Citation:    "FinTech Global (2024). Graph databases transforming financial crime detection and AML capabilities.",
			Kind:        Pie,
			Series: []Series{
				{Key: "value", Name: "False Positive Rate"},
			},
			Records: []Record{
				{Label: "Rule Engine", Values: []float64{92}, Fill: "#ff4444"},
				{Label: "Graph DB", Values: []float64{65}, Fill: "#44ff44"},
			},
			Tooltip:    TooltipFormat{Suffix: "%", Label: "False Positive Rate"},
			CodeSample: falsePositivesCode,
		},
		{
			ID:          MarketAdoption,
			Tab:         "Market Adoption",
			Icon:        "📈",
			Title:       "Graph Database Adoption in Financial Services (%)",
			Description: "Adoption of graph databases in financial institutions has grown steadily, with projected continued growth.",
			Citation:    "Market analysis based on data from Gartner (2024) and McKinsey & Company (2024).",
			Kind:        Area,
			XLabel:      "Year",
			YLabel:      "Adoption Rate (%)",
			Series: []Series{
				{Key: "adoption", Name: "Financial Services Adoption", Color: "#8884d8"},
			},
			Records: []Record{
				{Label: "2020", X: 2020, Values: []float64{12}},
				{Label: "2021", X: 2021, Values: []float64{18}},
				{Label: "2022", X: 2022, Values: []float64{27}},
				{Label: "2023", X: 2023, Values: []float64{38}},
				{Label: "2024", X: 2024, Values: []float64{52}},
				{Label: "2025", X: 2025, Values: []float64{63}, Projected: true},
				{Label: "2026", X: 2026, Values: []float64{72}, Projected: true},
			},
			Tooltip:    TooltipFormat{Suffix: "%", Label: "Adoption Rate", ProjectedNote: "(Projected)"},
			CodeSample: marketAdoptionCode,
		},
	}
}
