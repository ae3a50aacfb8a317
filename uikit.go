// Package uikit resolves themed widget styles and checks widget manifests.
//
// A theme is a set of CSS custom properties (`--color-primary: #3b82f6`)
// read from stylesheets. Widgets are declared in a YAML manifest; each one
// is validated, mounted, and resolved against the theme into scoped style
// variables and presentation classes.
//
// # Resolving
//
//	result, err := uikit.Resolve(uikit.ResolveConfig{
//		Theme: uikit.ThemeConfig{
//			SourceDir: "web/themes",
//			Includes:  []string{"**/*.css"},
//		},
//		ThemeName:    "dark",
//		ManifestPath: "widgets.yaml",
//	})
//
// # Checking
//
// Check reports validation failures as errors and likely mistakes
// (unknown tokens, corrected selections, unreachable sidebars) as warnings:
//
//	result, err := uikit.Check(uikit.CheckConfig{ResolveConfig: cfg})
//
// # CLI Tool
//
//	go install github.com/yacobolo/uikit/cmd/uikit@latest
package uikit
