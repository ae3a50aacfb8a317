package composition

import "github.com/yacobolo/uikit/internal/selection"

// Group is the Channel a container publishes: its selection controller and
// its expansion set. Parts read through the same controller the container
// mutates, so they never observe a value older than the container's.
type Group struct {
	selection         *selection.Controller[string]
	expansion         *ExpansionSet
	onExpansionChange func(id string, expanded bool)
}

// NewGroup wires a controller and an expansion set. Either may be shared
// with the owning widget.
func NewGroup(sel *selection.Controller[string], exp *ExpansionSet, onExpansionChange func(string, bool)) *Group {
	if exp == nil {
		exp = NewExpansionSet(false)
	}
	return &Group{selection: sel, expansion: exp, onExpansionChange: onExpansionChange}
}

// Current implements Channel.
func (g *Group) Current() string {
	if g.selection == nil {
		return ""
	}
	return g.selection.Current()
}

// SetCurrent implements Channel.
func (g *Group) SetCurrent(id string) error {
	if g.selection == nil {
		return nil
	}
	return g.selection.Set(id)
}

// ExpansionSet implements Channel.
func (g *Group) ExpansionSet() []string {
	return g.expansion.IDs()
}

// IsExpanded implements Channel.
func (g *Group) IsExpanded(id string) bool {
	return g.expansion.Has(id)
}

// ToggleExpansion implements Channel. Groups collapsed by an exclusive
// expansion are reported before the toggled one.
func (g *Group) ToggleExpansion(id string) {
	expanded, collapsed := g.expansion.Toggle(id)
	if g.onExpansionChange == nil {
		return
	}
	for _, other := range collapsed {
		g.onExpansionChange(other, false)
	}
	g.onExpansionChange(id, expanded)
}

// Expansion returns the underlying set.
func (g *Group) Expansion() *ExpansionSet {
	return g.expansion
}
