// Package types holds the core data model shared across the linting
// pipeline: languages, tokens, source files, violations, and reports.
//
// Everything here is plain data. Construction happens in the scanner,
// evaluator, and report packages; once a run's report is aggregated the
// values are never mutated again.
package types
