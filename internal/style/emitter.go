package style

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrDuplicateProperty is returned when one property is supplied twice to Emit.
var ErrDuplicateProperty = errors.New("duplicate style property")

// Property is one resolved, categorized widget property.
type Property struct {
	Name     string // "background"
	Category Category
	Value    Resolved
}

// Attributes is what a widget attaches to its rendered root element.
type Attributes struct {
	Component string
	Variables map[string]string // "tabs-custom-background" -> "#fff"
	Classes   []string          // Sorted, unique
}

// VariableName returns the scoped variable name for a property.
func VariableName(component, property string) string {
	return component + "-custom-" + property
}

// GradientClass returns the presentation class marking a gradient property.
func GradientClass(component, property string) string {
	return component + "--" + property + "-gradient"
}

// Emit flattens resolved properties into scoped variables and gradient
// classes. Unset paint properties are skipped; shape properties are emitted
// whenever they carry a value.
func Emit(component string, props []Property) (Attributes, error) {
	attrs := Attributes{
		Component: component,
		Variables: make(map[string]string, len(props)),
	}

	seen := make(map[string]bool, len(props))
	for _, p := range props {
		if seen[p.Name] {
			return Attributes{}, fmt.Errorf("%s %q: %w", component, p.Name, ErrDuplicateProperty)
		}
		seen[p.Name] = true

		if !p.Value.Set {
			continue
		}
		attrs.Variables[VariableName(component, p.Name)] = p.Value.Value

		if p.Category == CategoryPaint && p.Value.IsGradient {
			attrs.AddClass(GradientClass(component, p.Name))
		}
	}

	return attrs, nil
}

// AddClass adds classes, keeping the list sorted and unique.
func (a *Attributes) AddClass(classes ...string) {
	for _, c := range classes {
		if c == "" || a.HasClass(c) {
			continue
		}
		a.Classes = append(a.Classes, c)
	}
	sort.Strings(a.Classes)
}

// HasClass reports whether c is present.
func (a Attributes) HasClass(c string) bool {
	for _, existing := range a.Classes {
		if existing == c {
			return true
		}
	}
	return false
}

// ClassString joins classes for a class attribute.
func (a Attributes) ClassString() string {
	return strings.Join(a.Classes, " ")
}

// VariableNames returns the variable names sorted.
func (a Attributes) VariableNames() []string {
	names := make([]string, 0, len(a.Variables))
	for k := range a.Variables {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Style renders variables as an inline style declaration list.
func (a Attributes) Style() string {
	names := a.VariableNames()
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("--%s: %s", name, a.Variables[name]))
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "; ") + ";"
}
