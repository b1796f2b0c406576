package registry

import (
	"errors"
	"fmt"
	"strings"
)

// ChartID identifies one dashboard tab. The set is closed: every value
// between FraudReduction and MarketAdoption has exactly one ChartEntry.
type ChartID int

const (
	FraudReduction ChartID = iota
	TimeEfficiency
	AdoptionBarriers
	FalsePositiveReduction
	MarketAdoption

	chartCount = int(MarketAdoption) + 1
)

// ErrUnknownChart is returned by ParseChartID for names outside the closed set.
var ErrUnknownChart = errors.New("unknown chart id")

var chartSlugs = [chartCount]string{
	"fraud-reduction",
	"time-efficiency",
	"adoption-barriers",
	"false-positives",
	"market-adoption",
}

// camelCase keys used by the web dashboard this one mirrors; accepted as aliases.
var chartKeys = [chartCount]string{
	"fraudReduction",
	"timeEfficiency",
	"adoptionBarriers",
	"falsePositiveReduction",
	"marketAdoption",
}

// Valid reports whether id is one of the five known charts.
func (id ChartID) Valid() bool {
	return id >= FraudReduction && id <= MarketAdoption
}

func (id ChartID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("chart(%d)", int(id))
	}
	return chartSlugs[id]
}

// IDs returns every chart id in tab order.
func IDs() []ChartID {
	ids := make([]ChartID, chartCount)
	for i := range ids {
		ids[i] = ChartID(i)
	}
	return ids
}

// ParseChartID resolves a slug ("market-adoption"), a camelCase key
// ("marketAdoption") or a 1-based tab number ("5").
func ParseChartID(s string) (ChartID, error) {
	name := strings.TrimSpace(s)
	for i := 0; i < chartCount; i++ {
		if strings.EqualFold(name, chartSlugs[i]) || strings.EqualFold(name, chartKeys[i]) {
			return ChartID(i), nil
		}
	}
	if len(name) == 1 && name[0] >= '1' && name[0] < '1'+byte(chartCount) {
		return ChartID(name[0] - '1'), nil
	}
	return 0, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownChart, s, strings.Join(chartSlugs[:], ", "))
}

// Kind selects how a dataset is drawn.
type Kind int

const (
	Bar Kind = iota
	GroupedBar
	Pie
	Area
)

func (k Kind) String() string {
	switch k {
	case Bar:
		return "bar"
	case GroupedBar:
		return "grouped-bar"
	case Pie:
		return "pie"
	case Area:
		return "area"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Layout orients bar charts. Horizontal puts categories on the vertical axis.
type Layout int

const (
	Vertical Layout = iota
	Horizontal
)
