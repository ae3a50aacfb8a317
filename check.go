package uikit

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yacobolo/uikit/internal/style"
	"github.com/yacobolo/uikit/internal/theme"
	"github.com/yacobolo/uikit/internal/widget"
)

// CheckConfig holds check configuration
type CheckConfig struct {
	ResolveConfig

	Strict           bool // Fail on warnings too
	PrintIssuedLines bool // Show manifest lines with issues
	PrintLinterName  bool // Show (linter) suffix
	UseColors        bool // Enable color output (default: auto-detect)
}

// CheckResult contains check results
type CheckResult struct {
	Issues         []Issue
	WidgetsChecked int
	Themes         []string
	ErrorCount     int
	WarningCount   int
	Warnings       []string // Theme loading warnings
}

// Failed reports whether the check should fail a build.
func (r *CheckResult) Failed(strict bool) bool {
	if strict {
		return len(r.Issues) > 0
	}
	return r.ErrorCount > 0
}

// Check validates every widget of a manifest and looks for tokens the
// themes do not define.
func Check(config CheckConfig) (*CheckResult, error) {
	log := loggerOrNop(config.Logger)
	if config.Theme.Logger == nil {
		config.Theme.Logger = log
	}

	themes, err := LoadThemes(config.Theme)
	if err != nil {
		return nil, fmt.Errorf("load themes: %w", err)
	}

	set := themes.Themes
	if config.ThemeName != "" {
		t, err := themes.Select(config.ThemeName)
		if err != nil {
			return nil, err
		}
		set = theme.Set{t.Name: t}
	}

	manifest, err := LoadManifest(config.ManifestPath)
	if err != nil {
		return nil, err
	}

	result := CheckManifest(manifest, set, log)
	result.Warnings = themes.Warnings

	if config.Verbose {
		fmt.Printf("Checked %d widgets against %d themes\n", result.WidgetsChecked, len(result.Themes))
	}
	return result, nil
}

// CheckManifest checks m against every theme in themes. An empty set is
// treated as one empty default theme.
func CheckManifest(m *Manifest, themes theme.Set, log *zerolog.Logger) *CheckResult {
	log = loggerOrNop(log)
	if len(themes) == 0 {
		themes = theme.Set{theme.DefaultName: theme.New(theme.DefaultName, nil)}
	}

	c := &checker{manifest: m, result: &CheckResult{Themes: themes.Names()}}
	first, _ := themes.Get("")
	if first.Name == "" {
		first = themes[c.result.Themes[0]]
	}
	resolver := style.NewResolver(theme.NewProvider(first), log)

	seen := make(map[string]int)
	for i, spec := range m.Widgets {
		c.result.WidgetsChecked++

		if prev, ok := seen[spec.ID]; ok && spec.ID != "" {
			other := m.Widgets[prev]
			c.add(i, "id: "+spec.ID, LinterIDs, SeverityWarning,
				fmt.Sprintf(IssueDuplicateWidgetID, spec.ID, other.Kind, other.Line))
		} else {
			seen[spec.ID] = i
		}

		mounted, err := Mount(spec, resolver, log)
		if err != nil {
			c.mountError(i, err)
			continue
		}

		if mounted.Corrected != "" {
			c.add(i, mounted.Requested, LinterSelection, SeverityWarning,
				fmt.Sprintf(IssueCorrectedValue, mounted.Requested, mounted.Corrected))
		}
		for _, w := range mounted.Warnings {
			c.add(i, "overlay", LinterDisclosure, SeverityWarning, w)
		}

		for _, name := range c.result.Themes {
			c.tokens(i, themes[name])
		}
	}

	sort.SliceStable(c.result.Issues, func(i, j int) bool {
		return c.result.Issues[i].Pos.Line < c.result.Issues[j].Pos.Line
	})
	return c.result
}

type checker struct {
	manifest *Manifest
	result   *CheckResult
}

func (c *checker) add(widgetIndex int, needle, linter, severity, text string) {
	line, col := c.manifest.locate(widgetIndex, needle)
	issue := Issue{
		FromLinter: linter,
		Text:       c.manifest.Widgets[widgetIndex].Name() + ": " + text,
		Severity:   severity,
		Pos:        IssuePos{Filename: c.manifest.Path, Line: line, Column: col},
	}
	if src := c.manifest.Line(line); src != "" {
		issue.SourceLines = []string{src}
	}

	switch severity {
	case SeverityError:
		c.result.ErrorCount++
	case SeverityWarning:
		c.result.WarningCount++
	}
	c.result.Issues = append(c.result.Issues, issue)
}

func (c *checker) mountError(i int, err error) {
	spec := c.manifest.Widgets[i]

	var verr *widget.ValidationError
	if errors.As(err, &verr) {
		for _, p := range verr.Problems {
			c.add(i, problemField(p), LinterValidate, SeverityError, p)
		}
		return
	}

	linter := LinterValidate
	if !isKnownKind(spec.Kind) {
		linter = LinterManifest
	}
	c.add(i, "kind", linter, SeverityError, err.Error())
}

// tokens reports appearance values that look like tokens but are not
// defined by t.
func (c *checker) tokens(i int, t theme.Theme) {
	r := style.NewResolver(style.Static(t), nil)
	for _, raw := range c.manifest.Widgets[i].styleValues() {
		if !looksLikeToken(raw) {
			continue
		}
		res := r.Explain(style.Parse(raw))
		if res.Missing == "" {
			continue
		}
		c.add(i, raw, LinterTokens, SeverityWarning, fmt.Sprintf(IssueUnknownToken, res.Missing, t.Name))
	}
}

// styleValues returns every raw style input of s in a stable order.
func (s WidgetSpec) styleValues() []string {
	var out []string
	for _, m := range []map[string]string{s.Colors, s.Gradients, s.Tokens} {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			out = append(out, m[k])
		}
	}
	for _, v := range []string{s.Radius, s.Shadow, s.Width, s.CollapsedWidth, s.Gap} {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// looksLikeToken skips plain CSS keywords such as "red" or "none"; the
// permissive lookup passes those through unchanged.
func looksLikeToken(raw string) bool {
	in := style.Parse(raw)
	if in.Kind != style.KindToken {
		return false
	}
	v := strings.TrimSpace(in.Value)
	return strings.HasPrefix(v, "--") || strings.HasPrefix(v, "var(") || strings.Contains(v, "-")
}

// problemField extracts the field path a validation problem starts with.
func problemField(p string) string {
	field, _, _ := strings.Cut(p, " ")
	field = strings.TrimPrefix(strings.TrimSuffix(field, ":"), "Appearance.")
	if i := strings.IndexAny(field, "[."); i > 0 {
		field = field[:i]
	}
	return strings.ToLower(field)
}

func isKnownKind(kind string) bool {
	for _, k := range Kinds {
		if k == kind {
			return true
		}
	}
	return false
}
