package uikit

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yacobolo/uikit/internal/style"
	"github.com/yacobolo/uikit/internal/widget"
)

// Mounted is a widget built from its spec.
type Mounted struct {
	Spec   WidgetSpec
	Widget widget.Widget

	// Requested and Corrected are set when the declared selection was not
	// an available item and was substituted at mount.
	Requested string
	Corrected string

	// Warnings are configuration fallbacks the widget applied.
	Warnings []string
}

// correction records the first selection change fired while mounting.
type correction struct {
	mounting bool
	value    string
	fired    bool
}

func (c *correction) observe(v string) {
	if c.mounting && !c.fired {
		c.value, c.fired = v, true
	}
}

func (c *correction) observeBool(v bool) { c.observe(fmt.Sprint(v)) }

// Mount validates spec and mounts its widget against r.
func Mount(spec WidgetSpec, r *style.Resolver, log *zerolog.Logger) (*Mounted, error) {
	m := &Mounted{Spec: spec}
	corr := &correction{mounting: true}
	a := spec.appearance()

	requested := spec.Default
	if spec.Value != nil {
		requested = *spec.Value
	}

	var err error
	switch spec.Kind {
	case KindTabs:
		m.Widget, err = widget.NewTabs(widget.TabsConfig{
			ID:           spec.ID,
			Appearance:   a,
			Orientation:  spec.Orientation,
			Items:        tabItems(spec.Items),
			Value:        spec.Value,
			DefaultValue: spec.Default,
			OnChange:     corr.observe,
			Logger:       log,
		}, r)

	case KindSidebar:
		var s *widget.Sidebar
		s, err = widget.NewSidebar(widget.SidebarConfig{
			ID:                 spec.ID,
			Appearance:         a,
			Items:              navItems(spec.Items),
			Value:              spec.Value,
			DefaultValue:       spec.Default,
			DefaultExpanded:    spec.Expanded,
			Collapsible:        spec.Collapsible,
			Overlay:            spec.Overlay,
			DefaultCollapsed:   spec.DefaultCollapsed,
			Collapsed:          spec.Collapsed,
			Edge:               spec.Edge,
			KeyboardNavigation: spec.Keyboard,
			Backdrop:           spec.Backdrop,
			Width:              spec.Width,
			CollapsedWidth:     spec.CollapsedWidth,
			AnimationDuration:  spec.AnimationDuration,
			OnChange:           corr.observe,
			Logger:             log,
		}, r)
		if err == nil {
			m.Widget = s
			m.Warnings = s.Warnings()
		}

	case KindAccordion:
		m.Widget, err = widget.NewAccordion(widget.AccordionConfig{
			ID:              spec.ID,
			Appearance:      a,
			Items:           panels(spec.Items),
			Multiple:        spec.Multiple,
			DefaultExpanded: spec.Expanded,
			Value:           spec.Value,
			DefaultValue:    spec.Default,
			OnChange:        corr.observe,
			Logger:          log,
		}, r)

	case KindRadioGroup:
		m.Widget, err = widget.NewRadioGroup(widget.RadioGroupConfig{
			ID:           spec.ID,
			Appearance:   a,
			Options:      radioOptions(spec.Items),
			Orientation:  spec.Orientation,
			Gap:          spec.Gap,
			Value:        spec.Value,
			DefaultValue: spec.Default,
			OnChange:     corr.observe,
			Logger:       log,
		}, r)

	case KindCheckbox:
		m.Widget, err = widget.NewCheckbox(widget.CheckboxConfig{
			ID:             spec.ID,
			Appearance:     a,
			Label:          spec.Label,
			Checked:        spec.Checked,
			DefaultChecked: spec.DefaultChecked,
			Indeterminate:  spec.Indeterminate,
			Disabled:       spec.Disabled,
			OnChange:       corr.observeBool,
			Logger:         log,
		}, r)

	case KindCard:
		m.Widget, err = widget.NewCard(widget.CardConfig{
			ID:          spec.ID,
			Appearance:  a,
			Elevated:    spec.Elevated,
			Interactive: spec.Interactive,
		}, r)

	case KindPopover:
		m.Widget, err = widget.NewPopover(widget.PopoverConfig{
			ID:           spec.ID,
			Appearance:   a,
			Placement:    spec.Placement,
			Open:         spec.Open,
			DefaultOpen:  spec.DefaultOpen,
			OnOpenChange: corr.observeBool,
			Logger:       log,
		}, r)

	case KindModal:
		m.Widget, err = widget.NewModal(widget.ModalConfig{
			ID:           spec.ID,
			Appearance:   a,
			Title:        spec.Title,
			Width:        spec.Width,
			Open:         spec.Open,
			DefaultOpen:  spec.DefaultOpen,
			Static:       spec.Static,
			OnOpenChange: corr.observeBool,
			Logger:       log,
		}, r)

	default:
		return nil, fmt.Errorf(IssueUnknownKind+" (want one of %v)", spec.Kind, Kinds)
	}
	if err != nil {
		return nil, err
	}

	corr.mounting = false
	if corr.fired && requested != "" && corr.value != requested {
		m.Requested, m.Corrected = requested, corr.value
	}
	return m, nil
}

func (s WidgetSpec) appearance() widget.Appearance {
	return widget.Appearance{
		Variant:   s.Variant,
		Size:      s.Size,
		Radius:    s.Radius,
		Shadow:    s.Shadow,
		Colors:    s.Colors,
		Gradients: s.Gradients,
		Tokens:    s.Tokens,
	}
}

func tabItems(items []ItemSpec) []widget.TabItem {
	out := make([]widget.TabItem, 0, len(items))
	for _, it := range items {
		out = append(out, widget.TabItem{ID: it.ID, Label: it.Label, Closable: it.Closable, Disabled: it.Disabled})
	}
	return out
}

func navItems(items []ItemSpec) []widget.NavItem {
	out := make([]widget.NavItem, 0, len(items))
	for _, it := range items {
		out = append(out, widget.NavItem{ID: it.ID, Label: it.Label, Icon: it.Icon, Href: it.Href, Children: navItems(it.Children)})
	}
	return out
}

func panels(items []ItemSpec) []widget.AccordionItem {
	out := make([]widget.AccordionItem, 0, len(items))
	for _, it := range items {
		out = append(out, widget.AccordionItem{ID: it.ID, Title: it.Label, Disabled: it.Disabled})
	}
	return out
}

func radioOptions(items []ItemSpec) []widget.RadioOption {
	out := make([]widget.RadioOption, 0, len(items))
	for _, it := range items {
		out = append(out, widget.RadioOption{ID: it.ID, Label: it.Label, Disabled: it.Disabled})
	}
	return out
}
