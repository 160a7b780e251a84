// Package rules defines the checkable convention catalog: one Rule per
// documented style-guide convention, each carrying a matcher that runs
// over a file's flat token stream.
//
// Matchers are pattern-level by design. They use lookahead windows and
// regional heuristics (parenthesis depth, nearest preceding clause
// keyword) instead of a real AST, so individual rules document their
// false-positive/false-negative envelope where one exists. Conventions
// that cannot be decided from flat tokens at all are registered as
// advisory rules with a nil matcher; they show up in the catalog but
// are never evaluated.
package rules
