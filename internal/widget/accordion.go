package widget

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yacobolo/uikit/internal/composition"
	"github.com/yacobolo/uikit/internal/style"
)

// ScopeAccordion is the composition scope accordions publish under.
const ScopeAccordion = "accordion"

var accordionDefinition = definition{
	component: "accordion",
	variants:  []string{"default", "bordered", "separated"},
	paint:     []string{"background", "border", "header", "text", "icon"},
	shapes:    map[string]string{"radius": "radius-md"},
}

// AccordionItem is one collapsible panel.
type AccordionItem struct {
	ID       string `validate:"item_id"`
	Title    string
	Disabled bool
}

// AccordionConfig configures an Accordion. Multiple lets several panels be
// open at once; otherwise opening one closes the rest.
type AccordionConfig struct {
	ID string `validate:"required"`
	Appearance
	Items             []AccordionItem `validate:"unique=ID,dive"`
	Multiple          bool
	DefaultExpanded   []string
	Value             *string
	DefaultValue      string
	OnChange          func(id string)
	OnExpansionChange func(id string, expanded bool)
	Logger            *zerolog.Logger
}

// Accordion is a stack of panels with a focused panel and a set of open
// panels.
type Accordion struct {
	container
	cfg      AccordionConfig
	resolver *style.Resolver
}

// NewAccordion validates cfg and mounts an accordion.
func NewAccordion(cfg AccordionConfig, r *style.Resolver) (*Accordion, error) {
	var extra []string
	if !cfg.Multiple && len(cfg.DefaultExpanded) > 1 {
		extra = append(extra, fmt.Sprintf("DefaultExpanded: %d panels open but Multiple is off", len(cfg.DefaultExpanded)))
	}
	if err := validate(accordionDefinition, cfg.ID, cfg, cfg.Appearance, extra...); err != nil {
		return nil, err
	}

	a := &Accordion{cfg: cfg, resolver: r}
	a.container = newContainer(containerOptions{
		scope:             ScopeAccordion,
		name:              "accordion#" + cfg.ID,
		value:             cfg.Value,
		defaultValue:      cfg.DefaultValue,
		candidates:        enabledPanels(cfg.Items),
		onChange:          cfg.OnChange,
		exclusive:         !cfg.Multiple,
		expanded:          cfg.DefaultExpanded,
		onExpansionChange: cfg.OnExpansionChange,
		logger:            cfg.Logger,
	})
	a.group.Expansion().Retain(enabledPanels(cfg.Items))
	return a, nil
}

func enabledPanels(items []AccordionItem) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		if !it.Disabled {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

func (a *Accordion) disabled(id string) bool {
	for _, it := range a.cfg.Items {
		if it.ID == id {
			return it.Disabled
		}
	}
	return false
}

// Toggle opens or closes a panel and focuses it.
func (a *Accordion) Toggle(id string) error {
	if a.disabled(id) {
		return fmt.Errorf("accordion#%s: toggle %q: %w", a.cfg.ID, id, ErrDisabledItem)
	}
	if err := a.sel.Set(id); err != nil {
		return err
	}
	a.toggleExpansion(id)
	return nil
}

// Expanded returns the open panels.
func (a *Accordion) Expanded() []string { return a.group.ExpansionSet() }

// IsExpanded reports whether a panel is open.
func (a *Accordion) IsExpanded(id string) bool { return a.isExpanded(id) }

// SetItems replaces the panels. Open panels that no longer exist are closed.
func (a *Accordion) SetItems(items []AccordionItem) {
	a.cfg.Items = append([]AccordionItem(nil), items...)
	a.sel.SetCandidates(enabledPanels(items))
	a.group.Expansion().Retain(enabledPanels(items))
}

// Panel resolves the state of one panel part rendered under ctx.
func Panel(ctx context.Context, id string, ov composition.Overrides) (composition.PartState, error) {
	return composition.Resolve(ctx, ScopeAccordion, id, ov)
}

// Attributes resolves the root attributes against the current theme.
func (a *Accordion) Attributes() (style.Attributes, error) {
	return accordionDefinition.attributes(a.resolver, a.cfg.Appearance, nil,
		flag(a.cfg.Multiple, "accordion--multiple"),
	)
}
