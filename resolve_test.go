package uikit

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/uikit/internal/theme"
)

const resolveManifest = `widgets:
  - kind: tabs
    id: main
    colors:
      background: color-primary
    gradients:
      indicator: linear-gradient(90deg, red, blue)
  - kind: sidebar
    id: nav
    overlay: true
    collapsible: true
    default_collapsed: true
    edge: end
`

func TestResolveManifest(t *testing.T) {
	m, err := ParseManifest([]byte(resolveManifest), "widgets.yaml")
	require.NoError(t, err)

	for _, tt := range []struct {
		theme string
		want  string
	}{
		{theme: "default", want: "#3b82f6"},
		{theme: "dark", want: "#1e3a8a"},
	} {
		t.Run(tt.theme, func(t *testing.T) {
			result, err := ResolveManifest(m, testThemes()[tt.theme], nil)
			require.NoError(t, err)
			require.Len(t, result.Widgets, 2)
			assert.Equal(t, tt.theme, result.Theme)

			tabs := result.Widgets[0]
			assert.Equal(t, "main", tabs.ID)
			assert.Equal(t, tt.want, tabs.Attributes.Variables["tabs-custom-background"])
			assert.True(t, tabs.Attributes.HasClass("tabs--indicator-gradient"))

			nav := result.Widgets[1]
			for _, c := range []string{"sidebar--collapsed", "sidebar--toggle-detached", "sidebar--edge-end"} {
				assert.True(t, nav.Attributes.HasClass(c), "missing %s", c)
			}
		})
	}
}

func TestResolveManifestStopsOnInvalidWidget(t *testing.T) {
	m, err := ParseManifest([]byte("widgets:\n  - kind: tabs\n    id: main\n    size: huge\n"), "widgets.yaml")
	require.NoError(t, err)

	_, err = ResolveManifest(m, theme.New("default", nil), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "widgets.yaml:2:5")
	assert.Contains(t, err.Error(), "Size must be one of [sm md lg]")
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "themes/base.css", `:root { --color-primary: #3b82f6; --radius-md: 6px; }
.theme-dark { --color-primary: #1e3a8a; }`)
	manifest := writeFile(t, dir, "widgets.yaml", resolveManifest)

	result, err := Resolve(ResolveConfig{
		Theme:        ThemeConfig{SourceDir: filepath.Join(dir, "themes")},
		ThemeName:    "dark",
		ManifestPath: manifest,
	})
	require.NoError(t, err)

	assert.Equal(t, "dark", result.Theme)
	assert.Equal(t, "#1e3a8a", result.Widgets[0].Attributes.Variables["tabs-custom-background"])
	assert.Equal(t, "6px", result.Widgets[0].Attributes.Variables["tabs-custom-radius"], "dark inherits default tokens")

	_, err = Resolve(ResolveConfig{
		Theme:        ThemeConfig{SourceDir: filepath.Join(dir, "themes")},
		ThemeName:    "sepia",
		ManifestPath: manifest,
	})
	require.Error(t, err)

	_, err = Resolve(ResolveConfig{
		Theme:        ThemeConfig{SourceDir: filepath.Join(dir, "themes")},
		ManifestPath: filepath.Join(dir, "missing.yaml"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read manifest")
}
