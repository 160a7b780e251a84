package types

import "fmt"

// Severity grades a violation. Only errors fail a run; warnings annotate it.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ValidSeverity reports whether s is a recognized severity name
func ValidSeverity(s string) bool {
	return Severity(s) == SeverityError || Severity(s) == SeverityWarning
}

// Violation is one instance of a file failing a rule at a location
type Violation struct {
	RuleID   string   `json:"rule"`
	Path     string   `json:"path"`
	Line     int      `json:"line"`
	Column   int      `json:"column"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Key returns the identity used for deduplication and baseline matching
func (v Violation) Key() string {
	return fmt.Sprintf("%s:%s:%d:%d:%s", v.RuleID, v.Path, v.Line, v.Column, v.Message)
}

// String renders the conventional path:line:col form
func (v Violation) String() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s [%s]", v.Path, v.Line, v.Column, v.Severity, v.Message, v.RuleID)
}
