package uikit

import (
	"io"
)

// OutputFormat selects how results are written
type OutputFormat string

const (
	// OutputIssues prints check issues in golangci-lint format with a summary
	OutputIssues OutputFormat = "issues"
	// OutputJSON prints a JSON document
	OutputJSON OutputFormat = "json"
	// OutputCSS prints one CSS rule per resolved widget
	OutputCSS OutputFormat = "css"
	// OutputPreview prints resolved variables with terminal color swatches
	OutputPreview OutputFormat = "preview"
)

// DetermineOutputFormat selects the check output format based on flags
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Explicit --quiet flag wins (exit code only)
	if quiet {
		return OutputIssues
	}

	switch formatFlag {
	case "json":
		return OutputJSON
	case "issues":
		return OutputIssues
	default:
		// Invalid or empty format falls back to the default
		return OutputIssues
	}
}

// DetermineResolveFormat selects the resolve output format based on flags
func DetermineResolveFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "json":
		return OutputJSON
	case "preview":
		return OutputPreview
	default:
		return OutputCSS
	}
}

// WriteCheckOutput writes the check result in the specified format
func WriteCheckOutput(w io.Writer, result *CheckResult, format OutputFormat, config CheckConfig) error {
	switch format {
	case OutputJSON:
		return WriteCheckJSON(w, result)
	default:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
		return nil
	}
}

// WriteResolveOutput writes the resolve result in the specified format
func WriteResolveOutput(w io.Writer, result *ResolveResult, format OutputFormat, useColors bool) error {
	switch format {
	case OutputJSON:
		return WriteResolveJSON(w, result)
	case OutputPreview:
		return WritePreview(w, result, shouldUseColors(useColors))
	default:
		return WriteCSS(w, result)
	}
}
