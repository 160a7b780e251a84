package rules

import (
	"strings"

	"github.com/arthur-debert/sglint/pkg/types"
)

// Hit is a single matcher finding: a position plus a message. The
// evaluator turns hits into violations, attaching the rule's identity
// and its effective severity.
type Hit struct {
	Line    int
	Column  int
	Message string
}

// Matcher is the executable predicate implementing a rule against a
// token stream. Matchers must be total: any token sequence, including
// an empty one, yields a (possibly empty) hit list, never an error.
type Matcher func(file *types.SourceFile) []Hit

// Rule is a single checkable convention
type Rule struct {
	// ID uniquely identifies the rule within its language, e.g. "sql/keywords-uppercase"
	ID string

	// Language the rule applies to. Empty for engine-internal meta rules.
	Language types.Language

	// Description is the one-line summary shown in reports
	Description string

	// Severity is the default severity; config may override it per rule
	Severity types.Severity

	// Automatable is false for advisory conventions that cannot be
	// decided from flat tokens. Advisory rules have a nil Match and
	// are never evaluated.
	Automatable bool

	// Doc is a short Markdown elaboration rendered by `sglint rules`
	Doc string

	// Match produces the rule's hits for one file. Nil iff !Automatable.
	Match Matcher
}

// WithSeverity returns a copy of the rule with the given severity
func (r Rule) WithSeverity(sev types.Severity) Rule {
	r.Severity = sev
	return r
}

func hitAt(tok types.Token, message string) Hit {
	return Hit{Line: tok.Line, Column: tok.Column, Message: message}
}

// stripComments returns the token stream without comment tokens.
// Positions are untouched; matchers that inspect adjacency of comments
// (port documentation) work on the full stream instead.
func stripComments(tokens []types.Token) []types.Token {
	out := make([]types.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind != types.TokenComment {
			out = append(out, tok)
		}
	}
	return out
}

// keywordUpper returns the upper-cased text of a keyword token, or ""
// when the token is not a keyword
func keywordUpper(tok types.Token) string {
	if tok.Kind != types.TokenKeyword {
		return ""
	}
	return strings.ToUpper(tok.Text)
}

func isPunct(tok types.Token, text string) bool {
	return tok.Kind == types.TokenPunctuation && tok.Text == text
}
