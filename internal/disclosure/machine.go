// Package disclosure implements the Sidebar collapse/overlay state machine.
//
// Two orthogonal pieces of state are tracked: collapsed (expanded vs.
// collapsed) and, in overlay mode only, overlayOpen. The toggle rendering
// mode is derived from (overlay, collapsed) and never stored, so a collapsed
// overlaying sidebar always renders a detached toggle the user can reach.
package disclosure

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/yacobolo/uikit/internal/selection"
)

// Edge is the screen edge the sidebar is attached to.
type Edge string

const (
	EdgeStart Edge = "start"
	EdgeEnd   Edge = "end"
)

// ToggleMode describes where the toggle control renders.
type ToggleMode string

const (
	// Anchored toggles render inline, in normal layout flow.
	Anchored ToggleMode = "anchored"
	// Detached toggles render outside layout flow, fixed to the sidebar edge.
	Detached ToggleMode = "detached"
)

// DeriveToggleMode computes the toggle rendering mode.
func DeriveToggleMode(overlay, collapsed bool) ToggleMode {
	if overlay && collapsed {
		return Detached
	}
	return Anchored
}

// DefaultAnimationDuration is the length of the cosmetic transition flag.
const DefaultAnimationDuration = 200 * time.Millisecond

// Warning texts returned by Machine.Warnings.
const (
	WarnOverlayNotCollapsible   = "overlay requires collapsible; collapsible forced on"
	WarnCollapsedNotCollapsible = "defaultCollapsed ignored because the sidebar is not collapsible"
)

// Config configures a Machine.
type Config struct {
	ID                 string
	Collapsible        bool
	Overlay            bool
	DefaultCollapsed   bool
	Collapsed          *bool // Controlled collapsed state when non-nil
	Edge               Edge
	KeyboardNavigation bool
	Backdrop           bool
	AnimationDuration  time.Duration // 0 uses the default, negative disables
	OnCollapsedChange  func(collapsed bool)
	OnOverlayChange    func(open bool)
	Keys               *KeyMap
	Logger             *zerolog.Logger
}

// State is a snapshot of the machine.
type State struct {
	Collapsed   bool
	OverlayOpen bool
	ToggleMode  ToggleMode
	Edge        Edge
	Animating   bool
}

// ToggleMsg activates the toggle control of the sidebar with the given ID.
// An empty ID targets every sidebar.
type ToggleMsg struct{ ID string }

// BackdropClickMsg reports a click on the overlay backdrop.
type BackdropClickMsg struct{ ID string }

// AnimationDoneMsg clears the transition flag of one transition.
type AnimationDoneMsg struct {
	ID         string
	Generation uint64
}

// Machine is the disclosure state machine of one sidebar instance.
type Machine struct {
	cfg         Config
	keys        KeyMap
	log         zerolog.Logger
	collapsed   *selection.Controller[bool]
	overlayOpen bool
	animating   bool
	generation  uint64
	mounted     bool
	warnings    []string
}

// New creates a machine. Invalid combinations are not rejected; they fall
// back to a reachable configuration and are reported by Warnings:
//
//   - overlay without collapsible forces collapsible on
//   - a non-collapsible sidebar is always expanded
func New(cfg Config) *Machine {
	m := &Machine{mounted: true, log: zerolog.Nop(), keys: DefaultKeyMap()}
	if cfg.Logger != nil {
		m.log = cfg.Logger.With().Str("sidebar", cfg.ID).Logger()
	}
	if cfg.Keys != nil {
		m.keys = *cfg.Keys
	}
	if cfg.Edge == "" {
		cfg.Edge = EdgeStart
	}
	if cfg.AnimationDuration == 0 {
		cfg.AnimationDuration = DefaultAnimationDuration
	}

	if cfg.Overlay && !cfg.Collapsible {
		cfg.Collapsible = true
		m.warn(WarnOverlayNotCollapsible)
	}
	if !cfg.Collapsible && (cfg.DefaultCollapsed || (cfg.Collapsed != nil && *cfg.Collapsed)) {
		cfg.DefaultCollapsed = false
		cfg.Collapsed = nil
		m.warn(WarnCollapsedNotCollapsible)
	}
	m.cfg = cfg

	m.collapsed = selection.New(selection.Options[bool]{
		Value:      cfg.Collapsed,
		Default:    cfg.DefaultCollapsed,
		Candidates: []bool{false, true},
		OnChange:   cfg.OnCollapsedChange,
		Logger:     cfg.Logger,
		Name:       cfg.ID + ".collapsed",
	})
	return m
}

func (m *Machine) warn(msg string) {
	m.warnings = append(m.warnings, msg)
	m.log.Warn().Msg(msg)
}

// Warnings returns configuration fallbacks applied by New.
func (m *Machine) Warnings() []string {
	return m.warnings
}

// Config returns the effective configuration.
func (m *Machine) Config() Config {
	return m.cfg
}

// Keys returns the active key bindings.
func (m *Machine) Keys() KeyMap {
	return m.keys
}

// State returns a snapshot.
func (m *Machine) State() State {
	collapsed := m.collapsed.Current()
	return State{
		Collapsed:   collapsed,
		OverlayOpen: m.overlayOpen,
		ToggleMode:  DeriveToggleMode(m.cfg.Overlay, collapsed),
		Edge:        m.cfg.Edge,
		Animating:   m.animating,
	}
}

// ToggleMode returns the derived toggle rendering mode.
func (m *Machine) ToggleMode() ToggleMode {
	return DeriveToggleMode(m.cfg.Overlay, m.collapsed.Current())
}

// ItemsVisible reports whether navigation items are on screen.
func (m *Machine) ItemsVisible() bool {
	return !m.collapsed.Current() || m.overlayOpen
}

// Toggle activates the toggle control. In overlay mode it opens or closes
// the overlay and leaves the resting collapsed state alone; otherwise it
// flips collapsed.
func (m *Machine) Toggle() tea.Cmd {
	if !m.cfg.Collapsible {
		return nil
	}
	if m.cfg.Overlay {
		return m.setOverlay(!m.overlayOpen)
	}

	before := m.collapsed.Current()
	// Candidates are always {false, true}, so Set cannot fail.
	_ = m.collapsed.Set(!before)
	if m.collapsed.Current() == before {
		// Controlled: the host decides through SetCollapsed
		return nil
	}
	return m.startAnimation()
}

// CloseOverlay forces the overlay closed.
func (m *Machine) CloseOverlay() tea.Cmd {
	return m.setOverlay(false)
}

// SetCollapsed applies an externally owned collapsed value. It is ignored
// for uncontrolled machines.
func (m *Machine) SetCollapsed(v bool) tea.Cmd {
	before := m.collapsed.Current()
	m.collapsed.SetValue(&v)
	if m.collapsed.Current() == before {
		return nil
	}
	return m.startAnimation()
}

func (m *Machine) setOverlay(open bool) tea.Cmd {
	if !m.cfg.Overlay || m.overlayOpen == open {
		return nil
	}
	m.overlayOpen = open
	if m.cfg.OnOverlayChange != nil {
		m.cfg.OnOverlayChange(open)
	}
	return m.startAnimation()
}

// startAnimation raises the transition flag and schedules its clear. The
// flag is cosmetic; state has already changed when this runs.
func (m *Machine) startAnimation() tea.Cmd {
	m.generation++
	if m.cfg.AnimationDuration < 0 || !m.mounted {
		m.animating = false
		return nil
	}
	m.animating = true

	id, gen := m.cfg.ID, m.generation
	return tea.Tick(m.cfg.AnimationDuration, func(time.Time) tea.Msg {
		return AnimationDoneMsg{ID: id, Generation: gen}
	})
}

// Unmount discards any pending animation clear.
func (m *Machine) Unmount() {
	m.mounted = false
	m.generation++
	m.animating = false
}

// Update handles pointer, keyboard and timer messages.
func (m *Machine) Update(msg tea.Msg) tea.Cmd {
	if !m.mounted {
		return nil
	}

	switch msg := msg.(type) {
	case ToggleMsg:
		if m.targets(msg.ID) {
			return m.Toggle()
		}

	case BackdropClickMsg:
		if m.targets(msg.ID) && m.cfg.Backdrop {
			return m.CloseOverlay()
		}

	case AnimationDoneMsg:
		if msg.ID == m.cfg.ID && msg.Generation == m.generation {
			m.animating = false
		}

	case tea.KeyMsg:
		if !m.cfg.KeyboardNavigation {
			return nil
		}
		switch {
		case key.Matches(msg, m.keys.Dismiss):
			return m.CloseOverlay()
		case key.Matches(msg, m.keys.Toggle):
			return m.Toggle()
		}
	}
	return nil
}

func (m *Machine) targets(id string) bool {
	return id == "" || id == m.cfg.ID
}
