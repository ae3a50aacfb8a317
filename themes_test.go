package uikit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadThemes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a_base.css", `:root {
  --color-primary: #3b82f6;
  --radius-md: 6px;
}`)
	writeFile(t, dir, "b_dark.css", `.theme-dark {
  --color-primary: #1e3a8a;
}`)
	writeFile(t, dir, "nested/c_override.css", `:root { --radius-md: 8px; }`)
	writeFile(t, dir, "notes.txt", `:root { --ignored: 1px; }`)

	result, err := LoadThemes(ThemeConfig{SourceDir: dir})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Stats.FilesScanned)
	assert.Equal(t, []string{"default", "dark"}, result.Themes.Names())

	_, err = result.Select("solar")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "available: [default dark]")

	def, err := result.Select("")
	require.NoError(t, err)
	v, ok := def.Lookup("radius-md")
	require.True(t, ok)
	assert.Equal(t, "8px", v, "later file wins")

	dark, err := result.Select("dark")
	require.NoError(t, err)
	v, _ = dark.Lookup("--color-primary")
	assert.Equal(t, "#1e3a8a", v)
	v, ok = dark.Lookup("radius-md")
	require.True(t, ok, "named themes inherit default tokens")
	assert.Equal(t, "8px", v)

	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "Token '--radius-md' in theme 'default' redefined")

	_, err = result.Select("sepia")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `theme "sepia" not found`)
}

func TestLoadThemesIncludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "themes/light.css", `:root { --a: 1; }`)
	writeFile(t, dir, "vendor/other.css", `:root { --b: 2; }`)

	result, err := LoadThemes(ThemeConfig{SourceDir: dir, Includes: []string{"themes/*.css", "themes/**/*.css"}})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.FilesScanned, "overlapping patterns are deduplicated")
	def, err := result.Select("")
	require.NoError(t, err)
	_, ok := def.Lookup("b")
	assert.False(t, ok)
}

func TestLoadThemesBadPattern(t *testing.T) {
	_, err := LoadThemes(ThemeConfig{SourceDir: t.TempDir(), Includes: []string{"[unclosed"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scan failed")
}
