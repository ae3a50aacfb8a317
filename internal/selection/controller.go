// Package selection reconciles an externally supplied selection with an
// internally tracked one.
//
// A Controller is either controlled (the host owns the value and is told
// about requested changes) or uncontrolled (the controller owns the value).
// The mode is fixed when the controller is created. In both modes the
// current value is kept inside the candidate set: when the candidates change
// and the current value is gone, the first candidate is substituted and the
// change callback fires.
package selection

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// ErrUnknownItem is returned by Set for ids outside the candidate set.
var ErrUnknownItem = errors.New("item is not a selection candidate")

// Mode reports who owns the selection.
type Mode int

const (
	// Uncontrolled selections are owned by the controller.
	Uncontrolled Mode = iota
	// Controlled selections are owned by the host.
	Controlled
)

func (m Mode) String() string {
	if m == Controlled {
		return "controlled"
	}
	return "uncontrolled"
}

// source is the closed set of ownership variants.
type source[T comparable] interface {
	value() T
	mode() Mode
	with(v T) source[T]
}

// controlledValue is the last value supplied by the host (or substituted by
// reconciliation until the host re-supplies one).
type controlledValue[T comparable] struct{ v T }

func (c controlledValue[T]) value() T { return c.v }
func (c controlledValue[T]) mode() Mode { return Controlled }
func (c controlledValue[T]) with(v T) source[T] { return controlledValue[T]{v: v} }

// uncontrolledValue is owned by the controller.
type uncontrolledValue[T comparable] struct{ v T }

func (u uncontrolledValue[T]) value() T { return u.v }
func (u uncontrolledValue[T]) mode() Mode { return Uncontrolled }
func (u uncontrolledValue[T]) with(v T) source[T] { return uncontrolledValue[T]{v: v} }

// Options configure a Controller.
type Options[T comparable] struct {
	// Value makes the controller controlled when non-nil.
	Value *T
	// Default is the initial value of an uncontrolled controller.
	Default T
	// Candidates is the ordered set of selectable ids.
	Candidates []T
	// OnChange is called with every requested or reconciled selection.
	OnChange func(T)
	// Logger receives mode-switch warnings. Nil disables logging.
	Logger *zerolog.Logger
	// Name identifies the controller in log output.
	Name string
}

// Controller holds one selection.
type Controller[T comparable] struct {
	src        source[T]
	candidates []T
	onChange   func(T)
	log        zerolog.Logger
	warned     bool
}

// New creates a controller. The mode is decided here by whether
// opts.Value is set. If the initial value is not a candidate it is
// corrected to the first candidate and OnChange fires.
func New[T comparable](opts Options[T]) *Controller[T] {
	c := &Controller[T]{
		candidates: dedupe(opts.Candidates),
		onChange:   opts.OnChange,
		log:        zerolog.Nop(),
	}
	if opts.Logger != nil {
		c.log = opts.Logger.With().Str("controller", opts.Name).Logger()
	}

	if opts.Value != nil {
		c.src = controlledValue[T]{v: *opts.Value}
	} else {
		c.src = uncontrolledValue[T]{v: opts.Default}
	}

	c.reconcile()
	return c
}

// Current returns the selection.
func (c *Controller[T]) Current() T {
	return c.src.value()
}

// Mode returns the ownership mode fixed at construction.
func (c *Controller[T]) Mode() Mode {
	return c.src.mode()
}

// Candidates returns a copy of the candidate set.
func (c *Controller[T]) Candidates() []T {
	out := make([]T, len(c.candidates))
	copy(out, c.candidates)
	return out
}

// Has reports whether id is a candidate.
func (c *Controller[T]) Has(id T) bool {
	for _, cand := range c.candidates {
		if cand == id {
			return true
		}
	}
	return false
}

// Set requests a new selection. Controlled controllers only notify; the
// host decides whether to re-supply the value through SetValue.
// Uncontrolled controllers store the value and notify.
func (c *Controller[T]) Set(id T) error {
	if len(c.candidates) > 0 && !c.Has(id) {
		return fmt.Errorf("select %v: %w", id, ErrUnknownItem)
	}

	if c.Mode() == Uncontrolled {
		c.src = c.src.with(id)
	}
	c.notify(id)
	return nil
}

// SetValue applies an external value prop. For a controlled controller a
// non-nil v replaces the value. Passing nil to a controlled controller, or a
// non-nil value to an uncontrolled one, is a mode switch: it is ignored and
// a warning is logged once.
func (c *Controller[T]) SetValue(v *T) {
	switch {
	case c.Mode() == Controlled && v != nil:
		c.src = c.src.with(*v)
		c.reconcile()
	case c.Mode() == Controlled && v == nil,
		c.Mode() == Uncontrolled && v != nil:
		c.warnModeSwitch()
	}
}

// SetCandidates replaces the candidate set and reconciles the selection.
// An empty set keeps the last value without notification.
func (c *Controller[T]) SetCandidates(candidates []T) {
	c.candidates = dedupe(candidates)
	c.reconcile()
}

// reconcile substitutes the first candidate when the current value is not a
// candidate. It runs in both modes.
func (c *Controller[T]) reconcile() {
	if len(c.candidates) == 0 || c.Has(c.Current()) {
		return
	}
	first := c.candidates[0]
	c.src = c.src.with(first)
	c.notify(first)
}

func (c *Controller[T]) notify(id T) {
	if c.onChange != nil {
		c.onChange(id)
	}
}

func (c *Controller[T]) warnModeSwitch() {
	if c.warned {
		return
	}
	c.warned = true
	c.log.Warn().
		Str("mode", c.Mode().String()).
		Msg("selection mode cannot change after mount; ignoring value prop change")
}

func dedupe[T comparable](in []T) []T {
	out := make([]T, 0, len(in))
	seen := make(map[T]bool, len(in))
	for _, v := range in {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
