package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/uikit"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve widget manifests into scoped style variables",
	Long: `Load themes, mount every widget in the manifest, and print the
resolved root attributes.

Output formats:
  css      One rule per widget with its classes and custom properties (default)
  json     Machine-readable resolution result
  preview  Terminal listing with color swatches`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runResolve()
	},
}

func init() {
	resolveCmd.Flags().String("output-format", "css", "Output format: css, json, preview")
}

func runResolve() error {
	log, err := buildLogger()
	if err != nil {
		return err
	}

	config := buildResolveConfig(log)
	result, err := uikit.Resolve(config)
	if err != nil {
		return fmt.Errorf("resolve failed: %w", err)
	}

	if getBoolWithFallback("quiet", "quiet", false) {
		return nil
	}

	format := uikit.DetermineResolveFormat(getStringWithFallback("output-format", "resolve.output-format", "css"))
	if err := uikit.WriteResolveOutput(os.Stdout, result, format, getBoolWithFallback("color", "color", false)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	return nil
}
