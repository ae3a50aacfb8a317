package uikit

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Widget kinds accepted in a manifest
const (
	KindTabs       = "tabs"
	KindSidebar    = "sidebar"
	KindAccordion  = "accordion"
	KindRadioGroup = "radio-group"
	KindCheckbox   = "checkbox"
	KindCard       = "card"
	KindPopover    = "popover"
	KindModal      = "modal"
)

// Kinds lists every widget kind in manifest order of documentation.
var Kinds = []string{KindTabs, KindSidebar, KindAccordion, KindRadioGroup, KindCheckbox, KindCard, KindPopover, KindModal}

// Manifest is a decoded widgets file.
type Manifest struct {
	Path    string
	Widgets []WidgetSpec
	lines   []string
}

// WidgetSpec declares one widget. Fields that do not apply to Kind are
// ignored.
type WidgetSpec struct {
	Kind string `yaml:"kind"`
	ID   string `yaml:"id"`

	// Appearance
	Variant   string            `yaml:"variant,omitempty"`
	Size      string            `yaml:"size,omitempty"`
	Radius    string            `yaml:"radius,omitempty"`
	Shadow    string            `yaml:"shadow,omitempty"`
	Colors    map[string]string `yaml:"colors,omitempty"`
	Gradients map[string]string `yaml:"gradients,omitempty"`
	Tokens    map[string]string `yaml:"tokens,omitempty"`

	// Selection containers
	Items       []ItemSpec `yaml:"items,omitempty"`
	Value       *string    `yaml:"value,omitempty"`
	Default     string     `yaml:"default,omitempty"`
	Orientation string     `yaml:"orientation,omitempty"`
	Multiple    bool       `yaml:"multiple,omitempty"`
	Expanded    []string   `yaml:"expanded,omitempty"`
	Gap         string     `yaml:"gap,omitempty"`

	// Sidebar
	Collapsible       bool          `yaml:"collapsible,omitempty"`
	Overlay           bool          `yaml:"overlay,omitempty"`
	Collapsed         *bool         `yaml:"collapsed,omitempty"`
	DefaultCollapsed  bool          `yaml:"default_collapsed,omitempty"`
	Edge              string        `yaml:"edge,omitempty"`
	Keyboard          bool          `yaml:"keyboard,omitempty"`
	Backdrop          bool          `yaml:"backdrop,omitempty"`
	Width             string        `yaml:"width,omitempty"`
	CollapsedWidth    string        `yaml:"collapsed_width,omitempty"`
	AnimationDuration time.Duration `yaml:"animation,omitempty"`

	// Checkbox
	Label          string `yaml:"label,omitempty"`
	Checked        *bool  `yaml:"checked,omitempty"`
	DefaultChecked bool   `yaml:"default_checked,omitempty"`
	Indeterminate  bool   `yaml:"indeterminate,omitempty"`
	Disabled       bool   `yaml:"disabled,omitempty"`

	// Card
	Elevated    bool `yaml:"elevated,omitempty"`
	Interactive bool `yaml:"interactive,omitempty"`

	// Popover and modal
	Title       string `yaml:"title,omitempty"`
	Placement   string `yaml:"placement,omitempty"`
	Open        *bool  `yaml:"open,omitempty"`
	DefaultOpen bool   `yaml:"default_open,omitempty"`
	Static      bool   `yaml:"static,omitempty"`

	Line   int `yaml:"-"` // 1-based position of the widget in the manifest
	Column int `yaml:"-"`
}

// ItemSpec is a tab, nav entry, panel or radio option.
type ItemSpec struct {
	ID       string     `yaml:"id"`
	Label    string     `yaml:"label,omitempty"`
	Icon     string     `yaml:"icon,omitempty"`
	Href     string     `yaml:"href,omitempty"`
	Closable bool       `yaml:"closable,omitempty"`
	Disabled bool       `yaml:"disabled,omitempty"`
	Children []ItemSpec `yaml:"children,omitempty"`
}

// Name identifies the widget in messages: "tabs#main".
func (s WidgetSpec) Name() string {
	return s.Kind + "#" + s.ID
}

// LoadManifest reads and decodes a widgets file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- manifest path is user-provided via CLI
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return ParseManifest(data, path)
}

// ParseManifest decodes a widgets document and records where each widget
// starts.
func ParseManifest(data []byte, filename string) (*Manifest, error) {
	var doc struct {
		Widgets yaml.Node `yaml:"widgets"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	m := &Manifest{
		Path:  filename,
		lines: strings.Split(string(bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))), "\n"),
	}

	switch doc.Widgets.Kind {
	case 0:
		return m, nil
	case yaml.SequenceNode:
	default:
		return nil, fmt.Errorf("%s:%d:%d: widgets must be a list", filename, doc.Widgets.Line, doc.Widgets.Column)
	}

	for _, node := range doc.Widgets.Content {
		var spec WidgetSpec
		if err := node.Decode(&spec); err != nil {
			return nil, fmt.Errorf("%s:%d:%d: %w", filename, node.Line, node.Column, err)
		}
		spec.Line, spec.Column = node.Line, node.Column
		m.Widgets = append(m.Widgets, spec)
	}
	return m, nil
}

// Line returns the 1-based source line, or "" when out of range.
func (m *Manifest) Line(n int) string {
	if n < 1 || n > len(m.lines) {
		return ""
	}
	return m.lines[n-1]
}

// locate finds the first line of the widget block at index i that contains
// needle and returns its 1-based line and column. It falls back to the
// widget's own position.
func (m *Manifest) locate(i int, needle string) (int, int) {
	spec := m.Widgets[i]
	end := len(m.lines)
	if i+1 < len(m.Widgets) {
		end = m.Widgets[i+1].Line - 1
	}

	if needle != "" {
		for n := spec.Line; n <= end; n++ {
			if col := strings.Index(m.Line(n), needle); col >= 0 {
				return n, col + 1
			}
		}
	}
	return spec.Line, spec.Column
}
