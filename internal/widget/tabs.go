package widget

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yacobolo/uikit/internal/composition"
	"github.com/yacobolo/uikit/internal/style"
)

// ScopeTabs is the composition scope tabs publish under.
const ScopeTabs = "tabs"

var tabsDefinition = definition{
	component: "tabs",
	variants:  []string{"line", "pills", "enclosed"},
	paint:     []string{"background", "border", "indicator", "text"},
	shapes:    map[string]string{"radius": "radius-md"},
}

// TabItem is one tab.
type TabItem struct {
	ID       string `validate:"item_id"`
	Label    string
	Closable bool
	Disabled bool
}

// TabsConfig configures Tabs. Value makes the selection controlled.
type TabsConfig struct {
	ID string `validate:"required"`
	Appearance
	Orientation  string    `validate:"omitempty,oneof=horizontal vertical"`
	Items        []TabItem `validate:"unique=ID,dive"`
	Value        *string
	DefaultValue string
	OnChange     func(id string)
	OnClose      func(id string)
	Logger       *zerolog.Logger
}

// Tabs is a tab list with one selected tab.
type Tabs struct {
	container
	cfg      TabsConfig
	resolver *style.Resolver
}

// NewTabs validates cfg and mounts a tab list. Disabled tabs are never
// selection candidates.
func NewTabs(cfg TabsConfig, r *style.Resolver) (*Tabs, error) {
	if err := validate(tabsDefinition, cfg.ID, cfg, cfg.Appearance); err != nil {
		return nil, err
	}
	if cfg.Orientation == "" {
		cfg.Orientation = "horizontal"
	}

	t := &Tabs{cfg: cfg, resolver: r}
	t.container = newContainer(containerOptions{
		scope:        ScopeTabs,
		name:         "tabs#" + cfg.ID,
		value:        cfg.Value,
		defaultValue: cfg.DefaultValue,
		candidates:   enabledTabs(cfg.Items),
		onChange:     cfg.OnChange,
		logger:       cfg.Logger,
	})
	return t, nil
}

func enabledTabs(items []TabItem) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		if !it.Disabled {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// Items returns the tabs.
func (t *Tabs) Items() []TabItem {
	return append([]TabItem(nil), t.cfg.Items...)
}

func (t *Tabs) item(id string) (TabItem, bool) {
	for _, it := range t.cfg.Items {
		if it.ID == id {
			return it, true
		}
	}
	return TabItem{}, false
}

// Select requests selection of a tab.
func (t *Tabs) Select(id string) error {
	if it, ok := t.item(id); ok && it.Disabled {
		return fmt.Errorf("tabs#%s: select %q: %w", t.cfg.ID, id, ErrDisabledItem)
	}
	return t.sel.Set(id)
}

// Close requests that a closable tab be removed. The host owns the item
// list and applies the removal through SetItems.
func (t *Tabs) Close(id string) error {
	it, ok := t.item(id)
	if !ok {
		return fmt.Errorf("tabs#%s: close %q: unknown tab", t.cfg.ID, id)
	}
	if !it.Closable {
		return fmt.Errorf("tabs#%s: close %q: %w", t.cfg.ID, id, ErrNotClosable)
	}
	if t.cfg.OnClose != nil {
		t.cfg.OnClose(id)
	}
	return nil
}

// SetItems replaces the tabs and reconciles the selection against them.
func (t *Tabs) SetItems(items []TabItem) {
	t.cfg.Items = append([]TabItem(nil), items...)
	t.sel.SetCandidates(enabledTabs(items))
}

// Tab resolves the state of one tab part rendered under ctx.
func Tab(ctx context.Context, id string, ov composition.Overrides) (composition.PartState, error) {
	return composition.Resolve(ctx, ScopeTabs, id, ov)
}

// Attributes resolves the root attributes against the current theme.
func (t *Tabs) Attributes() (style.Attributes, error) {
	return tabsDefinition.attributes(t.resolver, t.cfg.Appearance, nil,
		"tabs--"+t.cfg.Orientation,
	)
}
