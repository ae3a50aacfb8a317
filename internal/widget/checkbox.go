package widget

import (
	"github.com/rs/zerolog"

	"github.com/yacobolo/uikit/internal/selection"
	"github.com/yacobolo/uikit/internal/style"
)

var checkboxDefinition = definition{
	component: "checkbox",
	variants:  []string{"default", "switch"},
	paint:     []string{"background", "border", "check", "text"},
	shapes:    map[string]string{"radius": "radius-sm", "size": "checkbox-size"},
}

// CheckboxConfig configures a Checkbox. Checked makes it controlled.
type CheckboxConfig struct {
	ID string `validate:"required"`
	Appearance
	Label          string
	Checked        *bool
	DefaultChecked bool
	Indeterminate  bool
	Disabled       bool
	OnChange       func(checked bool)
	Logger         *zerolog.Logger
}

// Checkbox is a two-state control with an optional indeterminate display.
type Checkbox struct {
	cfg           CheckboxConfig
	resolver      *style.Resolver
	checked       *selection.Controller[bool]
	indeterminate bool

	// requested is the value a controlled indeterminate checkbox asked its
	// host for; the mixed display clears once the host supplies it.
	requested *bool
}

// NewCheckbox validates cfg and mounts a checkbox.
func NewCheckbox(cfg CheckboxConfig, r *style.Resolver) (*Checkbox, error) {
	if err := validate(checkboxDefinition, cfg.ID, cfg, cfg.Appearance); err != nil {
		return nil, err
	}
	return &Checkbox{
		cfg:           cfg,
		resolver:      r,
		indeterminate: cfg.Indeterminate,
		checked: selection.New(selection.Options[bool]{
			Value:      cfg.Checked,
			Default:    cfg.DefaultChecked,
			Candidates: []bool{false, true},
			OnChange:   cfg.OnChange,
			Logger:     cfg.Logger,
			Name:       "checkbox#" + cfg.ID,
		}),
	}, nil
}

// Checked reports the checked state.
func (c *Checkbox) Checked() bool { return c.checked.Current() }

// Indeterminate reports whether the mixed state is displayed.
func (c *Checkbox) Indeterminate() bool { return c.indeterminate }

// Toggle flips the checked state. An indeterminate checkbox becomes
// checked. Disabled checkboxes ignore it.
func (c *Checkbox) Toggle() {
	if c.cfg.Disabled {
		return
	}
	next := !c.checked.Current()
	if c.indeterminate {
		next = true
		if c.checked.Mode() == selection.Controlled {
			c.requested = &next
		} else {
			c.indeterminate = false
		}
	}
	// Candidates are always {false, true}, so Set cannot fail.
	_ = c.checked.Set(next)
}

// SetChecked passes a new controlled value from the host. Supplying the
// value an indeterminate toggle requested clears the mixed display.
func (c *Checkbox) SetChecked(v *bool) {
	c.checked.SetValue(v)
	if c.requested != nil && v != nil && *v == *c.requested {
		c.indeterminate = false
	}
	c.requested = nil
}

// SetIndeterminate sets the mixed display state.
func (c *Checkbox) SetIndeterminate(v bool) {
	c.indeterminate = v
	c.requested = nil
}

// Attributes resolves the root attributes against the current theme.
func (c *Checkbox) Attributes() (style.Attributes, error) {
	return checkboxDefinition.attributes(c.resolver, c.cfg.Appearance, nil,
		flag(c.Checked() && !c.indeterminate, "checkbox--checked"),
		flag(c.indeterminate, "checkbox--indeterminate"),
		flag(c.cfg.Disabled, "checkbox--disabled"),
	)
}
