package widget

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yacobolo/uikit/internal/composition"
	"github.com/yacobolo/uikit/internal/style"
)

// ScopeRadioGroup is the composition scope radio groups publish under.
const ScopeRadioGroup = "radio-group"

var radioDefinition = definition{
	component: "radio-group",
	variants:  []string{"default", "cards"},
	paint:     []string{"background", "border", "indicator", "text"},
	shapes:    map[string]string{"radius": "radius-full", "gap": "space-2"},
}

// RadioOption is one choice.
type RadioOption struct {
	ID       string `validate:"item_id"`
	Label    string
	Disabled bool
}

// RadioGroupConfig configures a RadioGroup.
type RadioGroupConfig struct {
	ID string `validate:"required"`
	Appearance
	Options      []RadioOption `validate:"required,unique=ID,dive"`
	Orientation  string        `validate:"omitempty,oneof=horizontal vertical"`
	Gap          string
	Value        *string
	DefaultValue string
	OnChange     func(id string)
	Logger       *zerolog.Logger
}

// RadioGroup is a set of mutually exclusive options.
type RadioGroup struct {
	container
	cfg      RadioGroupConfig
	resolver *style.Resolver
}

// NewRadioGroup validates cfg and mounts a radio group.
func NewRadioGroup(cfg RadioGroupConfig, r *style.Resolver) (*RadioGroup, error) {
	if err := validate(radioDefinition, cfg.ID, cfg, cfg.Appearance); err != nil {
		return nil, err
	}
	if cfg.Orientation == "" {
		cfg.Orientation = "vertical"
	}

	g := &RadioGroup{cfg: cfg, resolver: r}
	g.container = newContainer(containerOptions{
		scope:        ScopeRadioGroup,
		name:         "radio-group#" + cfg.ID,
		value:        cfg.Value,
		defaultValue: cfg.DefaultValue,
		candidates:   enabledOptions(cfg.Options),
		onChange:     cfg.OnChange,
		logger:       cfg.Logger,
	})
	return g, nil
}

func enabledOptions(opts []RadioOption) []string {
	ids := make([]string, 0, len(opts))
	for _, o := range opts {
		if !o.Disabled {
			ids = append(ids, o.ID)
		}
	}
	return ids
}

// Select requests selection of an option.
func (g *RadioGroup) Select(id string) error {
	for _, o := range g.cfg.Options {
		if o.ID == id && o.Disabled {
			return fmt.Errorf("radio-group#%s: select %q: %w", g.cfg.ID, id, ErrDisabledItem)
		}
	}
	return g.sel.Set(id)
}

// SetOptions replaces the options and reconciles the selection.
func (g *RadioGroup) SetOptions(opts []RadioOption) {
	g.cfg.Options = append([]RadioOption(nil), opts...)
	g.sel.SetCandidates(enabledOptions(opts))
}

// Radio resolves the state of one option part rendered under ctx.
func Radio(ctx context.Context, id string, ov composition.Overrides) (composition.PartState, error) {
	return composition.Resolve(ctx, ScopeRadioGroup, id, ov)
}

// Attributes resolves the root attributes against the current theme.
func (g *RadioGroup) Attributes() (style.Attributes, error) {
	return radioDefinition.attributes(g.resolver, g.cfg.Appearance,
		map[string]string{"gap": g.cfg.Gap},
		"radio-group--"+g.cfg.Orientation,
	)
}
