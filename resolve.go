package uikit

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yacobolo/uikit/internal/style"
	"github.com/yacobolo/uikit/internal/theme"
)

// ResolveConfig holds resolve configuration
type ResolveConfig struct {
	Theme        ThemeConfig
	ThemeName    string // Empty selects the default theme
	ManifestPath string
	Verbose      bool
	Logger       *zerolog.Logger
}

// ResolvedWidget is one widget's resolved root attributes.
type ResolvedWidget struct {
	Kind       string
	ID         string
	Attributes style.Attributes
}

// ResolveResult contains the resolved widgets
type ResolveResult struct {
	Theme    string
	Tokens   int
	Widgets  []ResolvedWidget
	Warnings []string
}

// Resolve loads themes and a manifest, then resolves every widget against
// the selected theme.
func Resolve(config ResolveConfig) (*ResolveResult, error) {
	log := loggerOrNop(config.Logger)

	// 1. Load themes
	if config.Theme.Logger == nil {
		config.Theme.Logger = log
	}
	themes, err := LoadThemes(config.Theme)
	if err != nil {
		return nil, fmt.Errorf("load themes: %w", err)
	}

	t, err := themes.Select(config.ThemeName)
	if err != nil {
		return nil, err
	}

	// 2. Load manifest
	manifest, err := LoadManifest(config.ManifestPath)
	if err != nil {
		return nil, err
	}

	if config.Verbose {
		fmt.Printf("Resolving %d widgets against theme %s (%d tokens)\n", len(manifest.Widgets), t.Name, t.Len())
	}

	// 3. Mount and resolve
	result, err := ResolveManifest(manifest, t, log)
	if err != nil {
		return nil, err
	}
	result.Warnings = append(themes.Warnings, result.Warnings...)
	return result, nil
}

// ResolveManifest mounts every widget of m and resolves it against t. The
// first widget that fails validation aborts the run; use Check to see every
// problem at once.
func ResolveManifest(m *Manifest, t theme.Theme, log *zerolog.Logger) (*ResolveResult, error) {
	log = loggerOrNop(log)
	resolver := style.NewResolver(theme.NewProvider(t), log)

	result := &ResolveResult{Theme: t.Name, Tokens: t.Len()}
	for _, spec := range m.Widgets {
		mounted, err := Mount(spec, resolver, log)
		if err != nil {
			return nil, fmt.Errorf("%s:%d:%d: %w", m.Path, spec.Line, spec.Column, err)
		}
		result.Warnings = append(result.Warnings, mounted.Warnings...)

		attrs, err := mounted.Widget.Attributes()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", spec.Name(), err)
		}
		result.Widgets = append(result.Widgets, ResolvedWidget{Kind: spec.Kind, ID: spec.ID, Attributes: attrs})
	}
	return result, nil
}
