package uikit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/uikit/internal/theme"
)

const faultyManifest = `widgets:
  - kind: tabs
    id: main
    default: billing
    colors:
      background: color-primay
    items:
      - id: overview
      - id: billing
        disabled: true
  - kind: sidebar
    id: nav
    overlay: true
  - kind: card
    id: main
    variant: wavy
  - kind: slider
    id: volume
`

func testThemes() theme.Set {
	return theme.Set{
		"default": theme.New("default", map[string]string{"color-primary": "#3b82f6", "radius-md": "6px"}),
		"dark":    theme.New("dark", map[string]string{"color-primary": "#1e3a8a"}),
	}
}

func TestCheckManifest(t *testing.T) {
	m, err := ParseManifest([]byte(faultyManifest), "widgets.yaml")
	require.NoError(t, err)

	result := CheckManifest(m, theme.Set{"default": testThemes()["default"]}, nil)

	type found struct {
		linter   string
		severity string
		line     int
	}
	var got []found
	for _, issue := range result.Issues {
		got = append(got, found{issue.FromLinter, issue.Severity, issue.Pos.Line})
	}

	assert.ElementsMatch(t, []found{
		{LinterSelection, SeverityWarning, 4},
		{LinterTokens, SeverityWarning, 6},
		{LinterDisclosure, SeverityWarning, 13},
		{LinterIDs, SeverityWarning, 15},
		{LinterValidate, SeverityError, 16},
		{LinterManifest, SeverityError, 17},
	}, got)

	assert.Equal(t, 4, result.WidgetsChecked)
	assert.Equal(t, 2, result.ErrorCount)
	assert.Equal(t, 4, result.WarningCount)
	assert.True(t, result.Failed(false))
}

func TestCheckIssueDetails(t *testing.T) {
	m, err := ParseManifest([]byte(faultyManifest), "widgets.yaml")
	require.NoError(t, err)

	result := CheckManifest(m, theme.Set{"default": testThemes()["default"]}, nil)

	byLinter := make(map[string]Issue)
	for _, issue := range result.Issues {
		byLinter[issue.FromLinter] = issue
	}

	sel := byLinter[LinterSelection]
	assert.Equal(t, `tabs#main: selection "billing" is not an available item; corrected to "overview"`, sel.Text)
	assert.Equal(t, 14, sel.Pos.Column)
	assert.Equal(t, []string{"    default: billing"}, sel.SourceLines)

	tok := byLinter[LinterTokens]
	assert.Contains(t, tok.Text, `token "color-primay" not found in theme "default"`)
	assert.Equal(t, 19, tok.Pos.Column)

	ids := byLinter[LinterIDs]
	assert.Contains(t, ids.Text, `widget id "main" is already used by the tabs at line 2`)

	assert.Contains(t, byLinter[LinterValidate].Text, `card#main: Variant must be one of [default outline ghost], got "wavy"`)
	assert.Contains(t, byLinter[LinterManifest].Text, `unknown widget kind "slider"`)
}

func TestCheckEveryTheme(t *testing.T) {
	manifest := `widgets:
  - kind: card
    id: hero
    colors:
      background: color-primary
      text: color-muted
      border: red
`
	m, err := ParseManifest([]byte(manifest), "widgets.yaml")
	require.NoError(t, err)

	result := CheckManifest(m, testThemes(), nil)
	assert.Equal(t, []string{"default", "dark"}, result.Themes)

	var texts []string
	for _, issue := range result.Issues {
		texts = append(texts, issue.Text)
	}
	assert.ElementsMatch(t, []string{
		`card#hero: token "color-muted" not found in theme "dark"; the raw value is used`,
		`card#hero: token "color-muted" not found in theme "default"; the raw value is used`,
	}, texts, "css keywords are not reported")

	assert.False(t, result.Failed(false))
	assert.True(t, result.Failed(true))
}

func TestCheckClean(t *testing.T) {
	m, err := ParseManifest([]byte(sampleManifest), "widgets.yaml")
	require.NoError(t, err)

	result := CheckManifest(m, nil, nil)
	assert.Empty(t, result.Issues)
	assert.Equal(t, []string{"default"}, result.Themes)
	assert.False(t, result.Failed(true))
}

func TestLooksLikeToken(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{raw: "color-primary", want: true},
		{raw: "--color-primary", want: true},
		{raw: "var(--color-primary)", want: true},
		{raw: "red", want: false},
		{raw: "#ff0000", want: false},
		{raw: "linear-gradient(90deg, red, blue)", want: false},
		{raw: "12px", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, looksLikeToken(tt.raw))
		})
	}
}

func TestProblemField(t *testing.T) {
	assert.Equal(t, "variant", problemField(`Variant must be one of [a b], got "c"`))
	assert.Equal(t, "gradients", problemField("Appearance.Gradients[background] must be a gradient expression or token"))
	assert.Equal(t, "items", problemField("Items[0].ID must be a non-empty id without whitespace"))
	assert.Equal(t, "colors", problemField(`Colors[glow]: card has no "glow" property`))
}
