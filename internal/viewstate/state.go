// Package viewstate holds the dashboard's two pieces of view state and the
// pure transitions between them.
package viewstate

import "github.com/tinytelemetry/graphfin/internal/registry"

// State is the whole UI state: which chart is shown and whether its code
// panel is open. ShowCode is shared by all charts.
type State struct {
	ActiveTab registry.ChartID
	ShowCode  bool
}

// New returns the initial state: fraud reduction, code hidden.
func New() State {
	return State{ActiveTab: registry.FraudReduction}
}

// SelectTab activates id. Ids outside the closed set leave s unchanged.
func SelectTab(s State, id registry.ChartID) State {
	if !id.Valid() {
		return s
	}
	s.ActiveTab = id
	return s
}

// ToggleCode flips the code panel.
func ToggleCode(s State) State {
	s.ShowCode = !s.ShowCode
	return s
}

// Next moves to the following tab, wrapping after the last.
func Next(s State) State {
	ids := registry.IDs()
	return SelectTab(s, ids[(indexOf(s.ActiveTab)+1)%len(ids)])
}

// Prev moves to the preceding tab, wrapping before the first.
func Prev(s State) State {
	ids := registry.IDs()
	return SelectTab(s, ids[(indexOf(s.ActiveTab)+len(ids)-1)%len(ids)])
}

func indexOf(id registry.ChartID) int {
	for i, v := range registry.IDs() {
		if v == id {
			return i
		}
	}
	return 0
}

// Action is a user intent the dashboard can apply to a State.
type Action interface {
	apply(State) State
}

// SelectTabAction activates ID.
type SelectTabAction struct{ ID registry.ChartID }

// ToggleCodeAction flips ShowCode.
type ToggleCodeAction struct{}

// NextTabAction cycles forward.
type NextTabAction struct{}

// PrevTabAction cycles backward.
type PrevTabAction struct{}

func (a SelectTabAction) apply(s State) State { return SelectTab(s, a.ID) }
func (ToggleCodeAction) apply(s State) State  { return ToggleCode(s) }
func (NextTabAction) apply(s State) State     { return Next(s) }
func (PrevTabAction) apply(s State) State     { return Prev(s) }

// Apply returns the state after a. A nil action is a no-op.
func (s State) Apply(a Action) State {
	if a == nil {
		return s
	}
	return a.apply(s)
}
