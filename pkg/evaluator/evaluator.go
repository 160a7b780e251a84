// Package evaluator applies rules to scanned files. Rules run
// independently: no rule sees another rule's output, and a matcher
// failure is contained to its own rule, so adding, removing, or
// breaking one rule never changes another rule's verdicts.
package evaluator

import (
	"fmt"

	"github.com/arthur-debert/sglint/pkg/logging"
	"github.com/arthur-debert/sglint/pkg/rules"
	"github.com/arthur-debert/sglint/pkg/types"
	"github.com/rs/zerolog"
)

// Evaluator runs rule sets over scanned files
type Evaluator struct {
	logger zerolog.Logger
}

// New creates an Evaluator
func New() *Evaluator {
	return &Evaluator{
		logger: logging.GetLogger("evaluator"),
	}
}

// Evaluate runs every automatable rule against the file's token stream
// and returns the resulting violations in rule order.
//
// Engine-emitted violations are included: a scan-recovery warning when
// the stream contains unknown tokens, and a rule-error warning when a
// matcher panics.
func (e *Evaluator) Evaluate(file *types.SourceFile, ruleSet []rules.Rule) []types.Violation {
	var violations []types.Violation

	if tok, found := firstUnknown(file.Tokens); found {
		violations = append(violations, types.Violation{
			RuleID:   rules.InternalScanRecovery,
			Path:     file.Path,
			Line:     tok.Line,
			Column:   tok.Column,
			Message:  fmt.Sprintf("unrecognized byte sequence %q skipped; rules ran on the recognizable portion", tok.Text),
			Severity: types.SeverityWarning,
		})
	}

	for _, rule := range ruleSet {
		if !rule.Automatable || rule.Match == nil {
			continue
		}
		violations = append(violations, e.runRule(file, rule)...)
	}

	e.logger.Debug().
		Str("path", file.Path).
		Int("rules", len(ruleSet)).
		Int("violations", len(violations)).
		Msg("File evaluated")

	return violations
}

// UnsupportedLanguage builds the warning violation for a file whose
// language has no registered rules. The run continues; the file is
// skipped, not failed.
func UnsupportedLanguage(path string, lang types.Language) types.Violation {
	return types.Violation{
		RuleID:   rules.InternalUnsupportedLanguage,
		Path:     path,
		Line:     1,
		Column:   1,
		Message:  fmt.Sprintf("no rules registered for language %q; file skipped", string(lang)),
		Severity: types.SeverityWarning,
	}
}

// runRule executes one matcher inside a recovery boundary. A panicking
// matcher yields a single rule-error violation instead of taking down
// the file's remaining rules.
func (e *Evaluator) runRule(file *types.SourceFile, rule rules.Rule) (violations []types.Violation) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error().
				Str("rule", rule.ID).
				Str("path", file.Path).
				Interface("panic", r).
				Msg("Rule matcher panicked")
			violations = []types.Violation{{
				RuleID:   rules.InternalRuleError,
				Path:     file.Path,
				Line:     1,
				Column:   1,
				Message:  fmt.Sprintf("rule %q failed internally (%v); its results for this file are incomplete", rule.ID, r),
				Severity: types.SeverityWarning,
			}}
		}
	}()

	hits := rule.Match(file)
	for _, hit := range hits {
		violations = append(violations, types.Violation{
			RuleID:   rule.ID,
			Path:     file.Path,
			Line:     hit.Line,
			Column:   hit.Column,
			Message:  hit.Message,
			Severity: rule.Severity,
		})
	}
	return violations
}

func firstUnknown(tokens []types.Token) (types.Token, bool) {
	for _, tok := range tokens {
		if tok.Kind == types.TokenUnknown {
			return tok, true
		}
	}
	return types.Token{}, false
}
