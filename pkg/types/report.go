package types

// Report is the terminal artifact of a run: the sorted, deduplicated
// violations across all files plus their counts and the pass verdict.
type Report struct {
	Violations  []Violation      `json:"violations"`
	PerRule     map[string]int   `json:"perRule"`
	PerSeverity map[Severity]int `json:"perSeverity"`
	Files       int              `json:"files"`
	Suppressed  int              `json:"suppressed"`
	Pass        bool             `json:"pass"`
}

// Errors returns the number of error-severity violations
func (r *Report) Errors() int {
	return r.PerSeverity[SeverityError]
}

// Warnings returns the number of warning-severity violations
func (r *Report) Warnings() int {
	return r.PerSeverity[SeverityWarning]
}
