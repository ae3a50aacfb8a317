package widget

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/yacobolo/uikit/internal/composition"
	"github.com/yacobolo/uikit/internal/disclosure"
	"github.com/yacobolo/uikit/internal/style"
)

// ScopeSidebar is the composition scope sidebars publish under.
const ScopeSidebar = "sidebar"

var sidebarDefinition = definition{
	component: "sidebar",
	variants:  []string{"default", "floating", "inset"},
	paint:     []string{"background", "border", "item", "active-item", "icon", "text", "toggle", "backdrop"},
	shapes: map[string]string{
		"radius":          "radius-md",
		"shadow":          "shadow-none",
		"width":           "sidebar-width",
		"collapsed-width": "sidebar-collapsed-width",
	},
}

// NavItem is one navigation entry. Items with children form a group that
// can be expanded.
type NavItem struct {
	ID       string `validate:"item_id"`
	Label    string
	Icon     string
	Href     string
	Children []NavItem `validate:"unique=ID,dive"`
}

// SidebarConfig configures a Sidebar.
type SidebarConfig struct {
	ID string `validate:"required"`
	Appearance
	Items              []NavItem `validate:"unique=ID,dive"`
	Value              *string
	DefaultValue       string
	DefaultExpanded    []string
	Collapsible        bool
	Overlay            bool
	DefaultCollapsed   bool
	Collapsed          *bool
	Edge               string `validate:"omitempty,oneof=start end"`
	KeyboardNavigation bool
	Backdrop           bool
	Width              string
	CollapsedWidth     string
	AnimationDuration  time.Duration
	OnChange           func(id string)
	OnCollapsedChange  func(collapsed bool)
	OnOverlayChange    func(open bool)
	OnExpansionChange  func(id string, expanded bool)
	Logger             *zerolog.Logger
}

// Sidebar is a collapsible navigation panel.
type Sidebar struct {
	container
	cfg        SidebarConfig
	resolver   *style.Resolver
	disclosure *disclosure.Machine
}

// NewSidebar validates cfg and mounts a sidebar.
func NewSidebar(cfg SidebarConfig, r *style.Resolver) (*Sidebar, error) {
	var extra []string
	for _, id := range duplicateNavIDs(cfg.Items) {
		extra = append(extra, fmt.Sprintf("Items: id %q is used more than once", id))
	}
	if err := validate(sidebarDefinition, cfg.ID, cfg, cfg.Appearance, extra...); err != nil {
		return nil, err
	}

	s := &Sidebar{cfg: cfg, resolver: r}
	s.container = newContainer(containerOptions{
		scope:             ScopeSidebar,
		name:              "sidebar#" + cfg.ID,
		value:             cfg.Value,
		defaultValue:      cfg.DefaultValue,
		candidates:        flattenNav(cfg.Items, nil),
		onChange:          cfg.OnChange,
		expanded:          cfg.DefaultExpanded,
		onExpansionChange: cfg.OnExpansionChange,
		logger:            cfg.Logger,
	})
	s.group.Expansion().Retain(navGroups(cfg.Items, nil))

	s.disclosure = disclosure.New(disclosure.Config{
		ID:                 cfg.ID,
		Collapsible:        cfg.Collapsible,
		Overlay:            cfg.Overlay,
		DefaultCollapsed:   cfg.DefaultCollapsed,
		Collapsed:          cfg.Collapsed,
		Edge:               disclosure.Edge(cfg.Edge),
		KeyboardNavigation: cfg.KeyboardNavigation,
		Backdrop:           cfg.Backdrop,
		AnimationDuration:  cfg.AnimationDuration,
		OnCollapsedChange:  cfg.OnCollapsedChange,
		OnOverlayChange:    cfg.OnOverlayChange,
		Logger:             cfg.Logger,
	})
	return s, nil
}

func flattenNav(items []NavItem, into []string) []string {
	for _, it := range items {
		into = append(into, it.ID)
		into = flattenNav(it.Children, into)
	}
	return into
}

func navGroups(items []NavItem, into []string) []string {
	for _, it := range items {
		if len(it.Children) > 0 {
			into = append(into, it.ID)
			into = navGroups(it.Children, into)
		}
	}
	return into
}

func duplicateNavIDs(items []NavItem) []string {
	seen := make(map[string]int)
	for _, id := range flattenNav(items, nil) {
		seen[id]++
	}
	var dups []string
	for _, id := range flattenNav(items, nil) {
		if seen[id] > 1 {
			dups = append(dups, id)
			seen[id] = 0
		}
	}
	return dups
}

// Disclosure returns the collapse and overlay state machine.
func (s *Sidebar) Disclosure() *disclosure.Machine { return s.disclosure }

// Warnings returns configuration fallbacks applied at mount.
func (s *Sidebar) Warnings() []string { return s.disclosure.Warnings() }

// Select requests navigation to an item.
func (s *Sidebar) Select(id string) error { return s.sel.Set(id) }

// ToggleGroup expands or collapses a group item. Ids of leaf or unknown
// items are ignored.
func (s *Sidebar) ToggleGroup(id string) {
	for _, g := range navGroups(s.cfg.Items, nil) {
		if g == id {
			s.toggleExpansion(id)
			return
		}
	}
}

// Groups returns the ids of items that have children.
func (s *Sidebar) Groups() []string { return navGroups(s.cfg.Items, nil) }

// SetItems replaces the navigation tree. The selection is reconciled and
// expansion is kept for groups that still exist.
func (s *Sidebar) SetItems(items []NavItem) {
	s.cfg.Items = append([]NavItem(nil), items...)
	s.sel.SetCandidates(flattenNav(items, nil))
	s.group.Expansion().Retain(navGroups(items, nil))
}

// Toggle activates the toggle control.
func (s *Sidebar) Toggle() tea.Cmd { return s.disclosure.Toggle() }

// Update routes toggle, backdrop, keyboard and animation messages.
func (s *Sidebar) Update(msg tea.Msg) tea.Cmd { return s.disclosure.Update(msg) }

// ItemsVisible reports whether item labels are shown.
func (s *Sidebar) ItemsVisible() bool { return s.disclosure.ItemsVisible() }

// Unmount stops pending transitions from touching the sidebar.
func (s *Sidebar) Unmount() { s.disclosure.Unmount() }

// NavEntry resolves the state of one navigation part rendered under ctx.
func NavEntry(ctx context.Context, id string, ov composition.Overrides) (composition.PartState, error) {
	return composition.Resolve(ctx, ScopeSidebar, id, ov)
}

// Attributes resolves the root attributes against the current theme.
func (s *Sidebar) Attributes() (style.Attributes, error) {
	st := s.disclosure.State()
	overlay := s.disclosure.Config().Overlay
	return sidebarDefinition.attributes(s.resolver, s.cfg.Appearance,
		map[string]string{"width": s.cfg.Width, "collapsed-width": s.cfg.CollapsedWidth},
		flag(st.Collapsed, "sidebar--collapsed"),
		flag(s.disclosure.Config().Collapsible, "sidebar--collapsible"),
		flag(overlay, "sidebar--overlay"),
		flag(st.OverlayOpen, "sidebar--overlay-open"),
		"sidebar--toggle-"+string(st.ToggleMode),
		"sidebar--edge-"+string(st.Edge),
		flag(st.Animating, "sidebar--animating"),
	)
}
