package uikit

// Issue represents a single check finding in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "tokens"
	Text        string   `json:"Text"`        // "token \"color-primay\" not found in theme \"dark\""
	Severity    string   `json:"Severity"`    // "", "warning", "error"
	SourceLines []string `json:"SourceLines"` // Manifest lines of the widget
	Pos         IssuePos `json:"Pos"`         // Manifest location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "widgets.yaml"
	Line     int    `json:"Line"`     // 12
	Column   int    `json:"Column"`   // 5 (1-based)
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Linter names
const (
	LinterValidate   = "validate"
	LinterTokens     = "tokens"
	LinterSelection  = "selection"
	LinterDisclosure = "disclosure"
	LinterIDs        = "ids"
	LinterManifest   = "manifest"
)

// Issue texts
const (
	IssueUnknownToken      = "token %q not found in theme %q; the raw value is used"
	IssueCorrectedValue    = "selection %q is not an available item; corrected to %q"
	IssueDuplicateWidgetID = "widget id %q is already used by the %s at line %d"
	IssueUnknownKind       = "unknown widget kind %q"
)
