package uikit

import (
	"path/filepath"
	"testing"

	ignore "github.com/sabhiram/go-gitignore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldSkipFile(t *testing.T) {
	gi := ignore.CompileIgnoreLines("dist/", "*.generated.css")

	tests := []struct {
		name     string
		path     string
		gi       *ignore.GitIgnore
		expected bool
	}{
		{name: "ignored directory", path: "dist/theme.css", gi: gi, expected: true},
		{name: "ignored pattern", path: "web/app.generated.css", gi: gi, expected: true},
		{name: "regular theme", path: "web/themes/dark.css", gi: gi, expected: false},
		{name: "absolute paths are not filtered", path: "/tmp/dist/theme.css", gi: gi, expected: false},
		{name: "no gitignore", path: "dist/theme.css", gi: nil, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shouldSkipFile(tt.path, tt.gi)
			require.Equal(t, tt.expected, got, "shouldSkipFile(%q)", tt.path)
		})
	}
}

func TestScanThemeFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.css", ":root { --a: 1; }")
	writeFile(t, dir, "themes/dark.css", `[data-theme="dark"] { --a: 2; }`)
	writeFile(t, dir, "themes/notes.txt", "not a theme")

	// Overlapping patterns must not return a file twice
	files, stats, err := scanThemeFiles(dir, []string{"**/*.css", "themes/*.css"}, false)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "base.css"),
		filepath.Join(dir, "themes", "dark.css"),
	}, files)
	assert.Equal(t, ScanStats{FilesDiscovered: 2, FilesScanned: 2}, stats)
}

func TestScanThemeFilesNoMatches(t *testing.T) {
	files, stats, err := scanThemeFiles(t.TempDir(), []string{"**/*.css"}, false)
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.Zero(t, stats.FilesDiscovered)
}
