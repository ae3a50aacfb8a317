package uikit

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// WriteCSS writes one rule per widget, scoped by id and classes.
func WriteCSS(w io.Writer, result *ResolveResult) error {
	if _, err := fmt.Fprintf(w, "/* theme: %s (%d tokens) */\n", result.Theme, result.Tokens); err != nil {
		return err
	}

	for _, rw := range result.Widgets {
		var b strings.Builder
		b.WriteString("\n#" + rw.ID)
		for _, c := range rw.Attributes.Classes {
			b.WriteString("." + c)
		}
		b.WriteString(" {\n")
		for _, name := range rw.Attributes.VariableNames() {
			fmt.Fprintf(&b, "  --%s: %s;\n", name, rw.Attributes.Variables[name])
		}
		b.WriteString("}\n")

		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

const swatchWidth = 4

// WritePreview lists resolved variables with a color swatch for each hex
// color value.
func WritePreview(w io.Writer, result *ResolveResult, useColors bool) error {
	fmt.Fprintln(w, RenderStyle(StyleCyan, fmt.Sprintf("Theme %s", result.Theme), useColors))

	for _, rw := range result.Widgets {
		fmt.Fprintln(w, "")
		fmt.Fprintf(w, "%s %s\n",
			RenderStyle(StyleCyan, rw.Kind+"#"+rw.ID, useColors),
			RenderStyle(StyleGray, rw.Attributes.ClassString(), useColors))

		for _, name := range rw.Attributes.VariableNames() {
			value := rw.Attributes.Variables[name]
			fmt.Fprintf(w, "  %s --%s: %s\n", swatch(value, useColors), name, value)
		}
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "%s %s\n", RenderStyle(StyleYellow, "warning:", useColors), warning)
	}
	return nil
}

func swatch(value string, useColors bool) string {
	blank := strings.Repeat(" ", swatchWidth)
	if !useColors || !isHexColor(value) {
		return blank
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(value)).Render(blank)
}

func isHexColor(v string) bool {
	if !strings.HasPrefix(v, "#") {
		return false
	}
	hex := v[1:]
	switch len(hex) {
	case 3, 6:
	default:
		return false
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}
