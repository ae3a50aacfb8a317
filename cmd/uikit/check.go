package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/uikit"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check widget manifests for configuration and token problems",
	Long: `Validate every widget in the manifest against every theme and report
issues in golangci-lint style.

Linters:
  validate    invalid widget configuration
  tokens      style values naming tokens a theme does not define
  selection   selections corrected to an available item
  disclosure  sidebar options that were adjusted
  ids         duplicate widget ids
  manifest    unknown widget kinds

Exit codes:
  0  No errors (warnings allowed unless --strict)
  1  Errors found, or any issue with --strict`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runCheck()
	},
}

func init() {
	checkCmd.Flags().String("output-format", "issues", "Output format: issues, json")
	checkCmd.Flags().Bool("strict", false, "Fail on warnings as well as errors")
	checkCmd.Flags().Bool("print-lines", true, "Print the manifest lines with issues")
	checkCmd.Flags().Bool("print-linter-name", true, "Print the linter name after each issue")
}

func runCheck() error {
	log, err := buildLogger()
	if err != nil {
		return err
	}

	config := buildCheckConfig(log)
	result, err := uikit.Check(config)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		format := uikit.DetermineOutputFormat(getStringWithFallback("output-format", "check.output-format", "issues"), quiet)
		if err := uikit.WriteCheckOutput(os.Stdout, result, format, config); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	if result.Failed(config.Strict) {
		os.Exit(1)
	}
	return nil
}
