package uikit

import (
	"encoding/json"
	"io"
	"time"
)

// JSONCheckOutput represents the structured check export schema
type JSONCheckOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Issues    []JSONIssue `json:"issues"`
	Warnings  []string    `json:"warnings,omitempty"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues    int      `json:"total_issues"`
	Errors         int      `json:"errors"`
	Warnings       int      `json:"warnings"`
	WidgetsChecked int      `json:"widgets_checked"`
	Themes         []string `json:"themes"`
}

// JSONIssue represents a single check issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"` // Optional source line
}

// JSONResolveOutput represents the structured resolve export schema
type JSONResolveOutput struct {
	Version   string       `json:"version"`
	Timestamp string       `json:"timestamp"`
	Theme     string       `json:"theme"`
	Tokens    int          `json:"tokens"`
	Widgets   []JSONWidget `json:"widgets"`
	Warnings  []string     `json:"warnings,omitempty"`
}

// JSONWidget is one resolved widget
type JSONWidget struct {
	Kind      string            `json:"kind"`
	ID        string            `json:"id"`
	Classes   []string          `json:"classes"`
	Variables map[string]string `json:"variables"`
	Style     string            `json:"style"`
}

// WriteCheckJSON writes the check result as JSON
func WriteCheckJSON(w io.Writer, result *CheckResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildCheckJSON(result))
}

// WriteResolveJSON writes the resolve result as JSON
func WriteResolveJSON(w io.Writer, result *ResolveResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildResolveJSON(result))
}

func buildCheckJSON(result *CheckResult) JSONCheckOutput {
	issues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		issues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	return JSONCheckOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:    len(result.Issues),
			Errors:         result.ErrorCount,
			Warnings:       result.WarningCount,
			WidgetsChecked: result.WidgetsChecked,
			Themes:         result.Themes,
		},
		Issues:   issues,
		Warnings: result.Warnings,
	}
}

func buildResolveJSON(result *ResolveResult) JSONResolveOutput {
	widgets := make([]JSONWidget, len(result.Widgets))
	for i, w := range result.Widgets {
		widgets[i] = JSONWidget{
			Kind:      w.Kind,
			ID:        w.ID,
			Classes:   w.Attributes.Classes,
			Variables: w.Attributes.Variables,
			Style:     w.Attributes.Style(),
		}
	}

	return JSONResolveOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Theme:     result.Theme,
		Tokens:    result.Tokens,
		Widgets:   widgets,
		Warnings:  result.Warnings,
	}
}
