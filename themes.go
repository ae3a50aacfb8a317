package uikit

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yacobolo/uikit/internal/theme"
)

// ThemeConfig holds theme loading configuration
type ThemeConfig struct {
	SourceDir        string   // Directory to scan, e.g. "web/themes"
	Includes         []string // Glob patterns relative to SourceDir; default "**/*.css"
	RespectGitignore bool     // Skip theme files matched by .gitignore
	Verbose          bool
	Logger           *zerolog.Logger
}

// ThemeResult contains the loaded themes
type ThemeResult struct {
	Themes   theme.Set
	Files    []string
	Stats    ScanStats
	Warnings []string
}

// LoadThemes scans, parses and merges theme stylesheets. Named themes
// inherit every token of the default theme they do not redefine.
func LoadThemes(config ThemeConfig) (*ThemeResult, error) {
	log := loggerOrNop(config.Logger)
	result := &ThemeResult{}

	includes := config.Includes
	if len(includes) == 0 {
		includes = []string{"**/*.css"}
	}

	// 1. Scan theme files
	files, stats, err := scanThemeFiles(config.SourceDir, includes, config.RespectGitignore)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result.Files = files
	result.Stats = stats

	if config.Verbose {
		fmt.Printf("Found %d theme files (%d gitignored)\n", stats.FilesScanned, stats.FilesSkipped)
	}

	// 2. Parse all files
	var parsed []theme.Theme
	for _, file := range files {
		themes, err := theme.ParseFile(file)
		if err != nil {
			log.Warn().Err(err).Str("file", file).Msg("theme file skipped")
			result.Warnings = append(result.Warnings, fmt.Sprintf("Failed to parse %s: %v", file, err))
			continue
		}
		parsed = append(parsed, themes...)
	}

	// 3. Merge redefinitions
	set, conflicts := theme.Merge(parsed)
	result.Warnings = append(result.Warnings, conflicts...)

	// 4. Layer named themes over the default
	if base, ok := set[theme.DefaultName]; ok {
		for name, t := range set {
			if name != theme.DefaultName {
				set[name] = theme.Extend(base, t)
			}
		}
	}
	result.Themes = set

	if config.Verbose {
		for _, name := range set.Names() {
			fmt.Printf("Theme %s: %d tokens\n", name, set[name].Len())
		}
	}

	return result, nil
}

// Select returns the named theme, or the default theme for an empty name.
func (r *ThemeResult) Select(name string) (theme.Theme, error) {
	t, ok := r.Themes.Get(name)
	if !ok {
		if name == "" {
			name = theme.DefaultName
		}
		return theme.Theme{}, fmt.Errorf("theme %q not found (available: %v)", name, r.Themes.Names())
	}
	return t, nil
}
