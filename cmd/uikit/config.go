package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/uikit"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".uikit.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set)
	fs := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(fs, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (UIKIT_* prefix)
	if err := k.Load(env.Provider("UIKIT_", ".", func(s string) string {
		// UIKIT_THEME_SOURCE -> theme.source
		// UIKIT_CHECK_STRICT -> check.strict
		// UIKIT_MANIFEST -> manifest
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "UIKIT_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildThemeConfig constructs the library's ThemeConfig from koanf state.
func buildThemeConfig(log *zerolog.Logger) uikit.ThemeConfig {
	config := uikit.ThemeConfig{
		SourceDir:        getStringWithFallback("source", "theme.source", "web/themes"),
		RespectGitignore: getBoolWithFallback("gitignore", "theme.gitignore", true),
		Verbose:          getBoolWithFallback("verbose", "verbose", false),
		Logger:           log,
	}

	// Handle includes: check flag key first, then config key
	if includes := k.Strings("include"); len(includes) > 0 {
		config.Includes = includes
	} else if includes := k.Strings("theme.include"); len(includes) > 0 {
		config.Includes = includes
	} else {
		config.Includes = []string{"**/*.css"}
	}

	return config
}

// buildResolveConfig constructs the library's ResolveConfig from koanf state.
func buildResolveConfig(log *zerolog.Logger) uikit.ResolveConfig {
	return uikit.ResolveConfig{
		Theme:        buildThemeConfig(log),
		ThemeName:    getStringWithFallback("theme-name", "theme.name", ""),
		ManifestPath: getStringWithFallback("manifest", "manifest", "widgets.yaml"),
		Verbose:      getBoolWithFallback("verbose", "verbose", false),
		Logger:       log,
	}
}

// buildCheckConfig constructs the library's CheckConfig from koanf state.
func buildCheckConfig(log *zerolog.Logger) uikit.CheckConfig {
	return uikit.CheckConfig{
		ResolveConfig:    buildResolveConfig(log),
		Strict:           getBoolWithFallback("strict", "check.strict", false),
		PrintIssuedLines: getBoolWithFallback("print-lines", "check.print-lines", true),
		PrintLinterName:  getBoolWithFallback("print-linter-name", "check.print-linter-name", true),
		UseColors:        getBoolWithFallback("color", "color", false),
	}
}

// buildLogger creates the stderr logger. Verbose runs log at debug level.
func buildLogger() (*zerolog.Logger, error) {
	level := getStringWithFallback("log-level", "log-level", "warn")
	if getBoolWithFallback("verbose", "verbose", false) {
		level = "debug"
	}
	if getBoolWithFallback("quiet", "quiet", false) {
		level = "disabled"
	}

	log, err := uikit.NewLogger(uikit.LoggerOptions{Level: level, HumanReadable: true})
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return &log, nil
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
