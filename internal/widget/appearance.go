// Package widget builds the selection-bearing and decorative widgets on top
// of the style engine, the selection controller and the composition channel.
//
// Every widget re-resolves its style against the live theme on each
// Attributes call; nothing resolved is cached across calls.
package widget

import (
	"errors"
	"fmt"

	"github.com/yacobolo/uikit/internal/style"
)

var (
	// ErrDisabledItem is returned when selecting a disabled item.
	ErrDisabledItem = errors.New("item is disabled")
	// ErrNotClosable is returned when closing a tab that is not closable.
	ErrNotClosable = errors.New("item is not closable")
)

// Appearance is the styling configuration shared by all widgets.
type Appearance struct {
	Variant   string
	Size      string            `validate:"omitempty,oneof=sm md lg"`
	Radius    string            // Literal or token; defaults per widget
	Shadow    string            // Literal or token; defaults per widget
	Colors    map[string]string // Property -> literal or token
	Gradients map[string]string `validate:"omitempty,dive,gradient"`
	Tokens    map[string]string // Property -> base token, lowest precedence
}

// definition describes one widget kind.
type definition struct {
	component string
	variants  []string          // First entry is the default
	paint     []string          // Paint properties in emission order
	shapes    map[string]string // Shape property -> default input
}

func (d definition) hasPaint(name string) bool {
	for _, p := range d.paint {
		if p == name {
			return true
		}
	}
	return false
}

// check reports appearance problems struct tags cannot express.
func (d definition) check(a Appearance) []string {
	var problems []string

	if a.Variant != "" && len(d.variants) > 0 {
		known := false
		for _, v := range d.variants {
			if v == a.Variant {
				known = true
				break
			}
		}
		if !known {
			problems = append(problems, fmt.Sprintf("Variant must be one of %v, got %q", d.variants, a.Variant))
		}
	}

	for field, m := range map[string]map[string]string{"Colors": a.Colors, "Gradients": a.Gradients, "Tokens": a.Tokens} {
		for _, prop := range sortedKeys(m) {
			if !d.hasPaint(prop) {
				problems = append(problems, fmt.Sprintf("%s[%s]: %s has no %q property (have %v)", field, prop, d.component, prop, d.paint))
			}
		}
	}
	return problems
}

func (d definition) variant(a Appearance) string {
	if a.Variant != "" {
		return a.Variant
	}
	if len(d.variants) > 0 {
		return d.variants[0]
	}
	return ""
}

// Properties resolves every paint and shape property of a widget.
func (d definition) properties(r *style.Resolver, a Appearance, shapes map[string]string) []style.Property {
	props := make([]style.Property, 0, len(d.paint)+len(d.shapes))
	for _, name := range d.paint {
		props = append(props, r.Paint(name, style.Candidates{
			Gradient: style.Parse(a.Gradients[name]),
			Color:    style.Parse(a.Colors[name]),
			Base:     style.Parse(a.Tokens[name]),
		}))
	}

	for _, name := range sortedKeys(d.shapes) {
		raw := shapes[name]
		if name == "radius" && a.Radius != "" {
			raw = a.Radius
		}
		if name == "shadow" && a.Shadow != "" {
			raw = a.Shadow
		}
		def := d.shapes[name]
		if def == "" {
			def = style.DefaultShape(name)
		}
		props = append(props, r.Shape(name, raw, def))
	}
	return props
}

// attributes resolves and emits a widget root. The resolver is pinned so
// one call sees one theme.
func (d definition) attributes(r *style.Resolver, a Appearance, shapes map[string]string, structural ...string) (style.Attributes, error) {
	pinned := r.Pinned()
	attrs, err := style.Emit(d.component, d.properties(pinned, a, shapes))
	if err != nil {
		return style.Attributes{}, err
	}

	attrs.AddClass(d.component)
	if v := d.variant(a); v != "" {
		attrs.AddClass(d.component + "--" + v)
	}
	if a.Size != "" {
		attrs.AddClass(d.component + "--" + a.Size)
	}
	attrs.AddClass(structural...)
	return attrs, nil
}

// flag returns class when on is true.
func flag(on bool, class string) string {
	if on {
		return class
	}
	return ""
}

// Widget is anything that renders root attributes.
type Widget interface {
	Attributes() (style.Attributes, error)
}
