// Package report aggregates per-file violations into the run's final
// Report. Aggregation is a commutative merge followed by a
// deterministic sort, so the parallel pipeline can deliver per-file
// results in any order and identical input always yields an identical
// report.
package report

import (
	"sort"

	"github.com/arthur-debert/sglint/pkg/types"
)

// Aggregate merges per-file violation lists into a Report: duplicates
// removed, violations sorted by (path, line, column, rule), counts
// grouped by rule and severity. Pass is false iff any error-severity
// violation remains.
func Aggregate(perFile [][]types.Violation, files int, suppressed int) *types.Report {
	var merged []types.Violation
	seen := make(map[string]struct{})
	for _, violations := range perFile {
		for _, v := range violations {
			key := v.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, v)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		a, b := merged[i], merged[j]
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Column != b.Column {
			return a.Column < b.Column
		}
		return a.RuleID < b.RuleID
	})

	rep := &types.Report{
		Violations:  merged,
		PerRule:     make(map[string]int),
		PerSeverity: make(map[types.Severity]int),
		Files:       files,
		Suppressed:  suppressed,
	}
	for _, v := range merged {
		rep.PerRule[v.RuleID]++
		rep.PerSeverity[v.Severity]++
	}
	rep.Pass = rep.PerSeverity[types.SeverityError] == 0
	return rep
}
