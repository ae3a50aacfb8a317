package widget

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/yacobolo/uikit/internal/composition"
	"github.com/yacobolo/uikit/internal/selection"
)

// container is the selection and expansion state shared by the compound
// widgets. It publishes itself to parts through the composition channel.
type container struct {
	scope string
	sel   *selection.Controller[string]
	group *composition.Group
}

type containerOptions struct {
	scope             string
	name              string
	value             *string
	defaultValue      string
	candidates        []string
	onChange          func(string)
	exclusive         bool
	expanded          []string
	onExpansionChange func(string, bool)
	logger            *zerolog.Logger
}

func newContainer(o containerOptions) container {
	sel := selection.New(selection.Options[string]{
		Value:      o.value,
		Default:    o.defaultValue,
		Candidates: o.candidates,
		OnChange:   o.onChange,
		Logger:     o.logger,
		Name:       o.name,
	})
	exp := composition.NewExpansionSet(o.exclusive, o.expanded...)
	return container{
		scope: o.scope,
		sel:   sel,
		group: composition.NewGroup(sel, exp, o.onExpansionChange),
	}
}

// Current returns the selected id.
func (c *container) Current() string { return c.sel.Current() }

// Mode reports whether the selection is controlled.
func (c *container) Mode() selection.Mode { return c.sel.Mode() }

// SetValue passes a new controlled value from the host.
func (c *container) SetValue(v *string) { c.sel.SetValue(v) }

// Provide publishes the container to parts rendered under ctx.
func (c *container) Provide(ctx context.Context) context.Context {
	return composition.Provide(ctx, c.scope, c.group)
}

// Channel returns the published channel.
func (c *container) Channel() composition.Channel { return c.group }

func (c *container) isExpanded(id string) bool { return c.group.IsExpanded(id) }

func (c *container) toggleExpansion(id string) { c.group.ToggleExpansion(id) }
