package viewstate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tinytelemetry/graphfin/internal/registry"
)

func TestNewState(t *testing.T) {
	t.Parallel()

	s := New()
	assert.Equal(t, registry.FraudReduction, s.ActiveTab)
	assert.False(t, s.ShowCode)
}

func TestSelectTab(t *testing.T) {
	t.Parallel()

	for _, id := range registry.IDs() {
		s := SelectTab(New(), id)
		assert.Equal(t, id, s.ActiveTab)
	}

	s := SelectTab(New(), registry.MarketAdoption)
	assert.Equal(t, s, SelectTab(s, registry.ChartID(42)))
	assert.Equal(t, s, SelectTab(s, registry.ChartID(-1)))
}

func TestToggleCodeAlternates(t *testing.T) {
	t.Parallel()

	s := New()
	once := ToggleCode(s)
	assert.True(t, once.ShowCode)
	assert.Equal(t, s, ToggleCode(once))
	assert.Equal(t, s.ActiveTab, once.ActiveTab)
}

func TestSwitchingTabsKeepsShowCode(t *testing.T) {
	t.Parallel()

	s := ToggleCode(New())
	for _, id := range registry.IDs() {
		s = SelectTab(s, id)
		assert.True(t, s.ShowCode, id.String())
	}
	s = Next(s)
	assert.True(t, s.ShowCode)
}

func TestNextPrevWrap(t *testing.T) {
	t.Parallel()

	s := New()
	seen := []registry.ChartID{s.ActiveTab}
	for i := 0; i < 5; i++ {
		s = Next(s)
		seen = append(seen, s.ActiveTab)
	}
	assert.Equal(t, []registry.ChartID{
		registry.FraudReduction,
		registry.TimeEfficiency,
		registry.AdoptionBarriers,
		registry.FalsePositiveReduction,
		registry.MarketAdoption,
		registry.FraudReduction,
	}, seen)

	assert.Equal(t, registry.MarketAdoption, Prev(New()).ActiveTab)
	assert.Equal(t, registry.TimeEfficiency, Prev(SelectTab(New(), registry.AdoptionBarriers)).ActiveTab)
}

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		action Action
		want   State
	}{
		{"select", SelectTabAction{ID: registry.FalsePositiveReduction}, State{ActiveTab: registry.FalsePositiveReduction}},
		{"select invalid", SelectTabAction{ID: 99}, New()},
		{"toggle", ToggleCodeAction{}, State{ShowCode: true}},
		{"next", NextTabAction{}, State{ActiveTab: registry.TimeEfficiency}},
		{"prev", PrevTabAction{}, State{ActiveTab: registry.MarketAdoption}},
		{"nil", nil, New()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, New().Apply(tt.action))
		})
	}
}
