package rules

import "github.com/arthur-debert/sglint/pkg/types"

// Identifiers for violations the engine emits on its own behalf. They
// are registered like ordinary rules so every violation in a report
// resolves against the catalog.
const (
	InternalScanRecovery        = "internal/scan-recovery"
	InternalUnsupportedLanguage = "internal/unsupported-language"
	InternalRuleError           = "internal/rule-error"
)

// MetaRules returns the engine-internal rules. They carry no matcher;
// the evaluator and pipeline emit their violations directly.
func MetaRules() []Rule {
	return []Rule{
		{
			ID:          InternalScanRecovery,
			Description: "Unrecognized byte sequences were tokenized as unknown and skipped by rules",
			Severity:    types.SeverityWarning,
			Doc:         "The scanner never aborts on malformed input; this warning flags that part of the file was opaque to it.",
		},
		{
			ID:          InternalUnsupportedLanguage,
			Description: "File language has no registered rules",
			Severity:    types.SeverityWarning,
			Doc:         "The file was classified to a language the rule catalog does not cover; it was skipped, not failed.",
		},
		{
			ID:          InternalRuleError,
			Description: "A rule's matcher failed internally; other rules were unaffected",
			Severity:    types.SeverityWarning,
			Doc:         "A matcher panic is a linter defect, recovered per rule so one broken rule never blocks the rest of the catalog.",
		},
	}
}
