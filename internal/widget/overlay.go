package widget

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/yacobolo/uikit/internal/disclosure"
	"github.com/yacobolo/uikit/internal/selection"
	"github.com/yacobolo/uikit/internal/style"
)

// OutsideClickMsg reports a click outside the popover with the given ID.
// An empty ID targets every popover.
type OutsideClickMsg struct{ ID string }

// openState is the open/closed selection shared by popovers and modals.
type openState struct {
	id      string
	open    *selection.Controller[bool]
	dismiss key.Binding
}

func newOpenState(name, id string, value *bool, def bool, onChange func(bool), log *zerolog.Logger) openState {
	return openState{
		id:      id,
		dismiss: disclosure.DefaultKeyMap().Dismiss,
		open: selection.New(selection.Options[bool]{
			Value:      value,
			Default:    def,
			Candidates: []bool{false, true},
			OnChange:   onChange,
			Logger:     log,
			Name:       name + "#" + id + ".open",
		}),
	}
}

// IsOpen reports whether the overlay is shown.
func (o *openState) IsOpen() bool { return o.open.Current() }

// Open requests the overlay be shown.
func (o *openState) Open() { o.set(true) }

// Close requests the overlay be hidden.
func (o *openState) Close() { o.set(false) }

// SetOpen passes a new controlled value from the host.
func (o *openState) SetOpen(v *bool) { o.open.SetValue(v) }

func (o *openState) set(v bool) {
	if o.open.Current() == v {
		return
	}
	// Candidates are always {false, true}, so Set cannot fail.
	_ = o.open.Set(v)
}

func (o *openState) targets(id string) bool { return id == "" || id == o.id }

func (o *openState) escape(msg tea.KeyMsg, enabled bool) bool {
	if !enabled || !o.IsOpen() || !key.Matches(msg, o.dismiss) {
		return false
	}
	o.Close()
	return true
}

var popoverDefinition = definition{
	component: "popover",
	variants:  []string{"default"},
	paint:     []string{"background", "border", "text"},
	shapes:    map[string]string{"radius": "radius-md", "shadow": "shadow-md"},
}

// PopoverConfig configures a Popover. Open makes it controlled.
type PopoverConfig struct {
	ID string `validate:"required"`
	Appearance
	Placement          string `validate:"omitempty,oneof=top bottom left right"`
	Open               *bool
	DefaultOpen        bool
	KeepOnEscape       bool
	KeepOnOutsideClick bool
	OnOpenChange       func(open bool)
	Logger             *zerolog.Logger
}

// Popover is a floating panel anchored to a trigger.
type Popover struct {
	openState
	cfg      PopoverConfig
	resolver *style.Resolver
}

// NewPopover validates cfg and mounts a popover.
func NewPopover(cfg PopoverConfig, r *style.Resolver) (*Popover, error) {
	if err := validate(popoverDefinition, cfg.ID, cfg, cfg.Appearance); err != nil {
		return nil, err
	}
	if cfg.Placement == "" {
		cfg.Placement = "bottom"
	}
	return &Popover{
		openState: newOpenState("popover", cfg.ID, cfg.Open, cfg.DefaultOpen, cfg.OnOpenChange, cfg.Logger),
		cfg:       cfg,
		resolver:  r,
	}, nil
}

// Toggle flips the open state, as a trigger click does.
func (p *Popover) Toggle() { p.set(!p.IsOpen()) }

// Update handles escape and outside clicks.
func (p *Popover) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		p.escape(msg, !p.cfg.KeepOnEscape)
	case OutsideClickMsg:
		if p.targets(msg.ID) && !p.cfg.KeepOnOutsideClick {
			p.Close()
		}
	}
	return nil
}

// Attributes resolves the root attributes against the current theme.
func (p *Popover) Attributes() (style.Attributes, error) {
	return popoverDefinition.attributes(p.resolver, p.cfg.Appearance, nil,
		"popover--"+p.cfg.Placement,
		flag(p.IsOpen(), "popover--open"),
	)
}

var modalDefinition = definition{
	component: "modal",
	variants:  []string{"default", "drawer", "fullscreen"},
	paint:     []string{"background", "border", "header", "text", "backdrop"},
	shapes:    map[string]string{"radius": "radius-lg", "shadow": "shadow-xl", "width": "modal-width"},
}

// ModalConfig configures a Modal. Static modals ignore backdrop clicks.
type ModalConfig struct {
	ID string `validate:"required"`
	Appearance
	Title        string
	Width        string
	Open         *bool
	DefaultOpen  bool
	Static       bool
	KeepOnEscape bool
	OnOpenChange func(open bool)
	Logger       *zerolog.Logger
}

// Modal is a dialog shown above a backdrop.
type Modal struct {
	openState
	cfg      ModalConfig
	resolver *style.Resolver
}

// NewModal validates cfg and mounts a modal.
func NewModal(cfg ModalConfig, r *style.Resolver) (*Modal, error) {
	if err := validate(modalDefinition, cfg.ID, cfg, cfg.Appearance); err != nil {
		return nil, err
	}
	return &Modal{
		openState: newOpenState("modal", cfg.ID, cfg.Open, cfg.DefaultOpen, cfg.OnOpenChange, cfg.Logger),
		cfg:       cfg,
		resolver:  r,
	}, nil
}

// Update handles escape and backdrop clicks.
func (m *Modal) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.escape(msg, !m.cfg.KeepOnEscape)
	case disclosure.BackdropClickMsg:
		if m.targets(msg.ID) && !m.cfg.Static {
			m.Close()
		}
	}
	return nil
}

// Attributes resolves the root attributes against the current theme.
func (m *Modal) Attributes() (style.Attributes, error) {
	return modalDefinition.attributes(m.resolver, m.cfg.Appearance,
		map[string]string{"width": m.cfg.Width},
		flag(m.IsOpen(), "modal--open"),
		flag(m.cfg.Static, "modal--static"),
	)
}
