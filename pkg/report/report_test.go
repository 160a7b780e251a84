package report_test

import (
	"testing"

	"github.com/arthur-debert/sglint/pkg/report"
	"github.com/arthur-debert/sglint/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func v(rule, path string, line, col int, sev types.Severity) types.Violation {
	return types.Violation{
		RuleID:   rule,
		Path:     path,
		Line:     line,
		Column:   col,
		Message:  "m",
		Severity: sev,
	}
}

func TestAggregateEmptyRun(t *testing.T) {
	rep := report.Aggregate(nil, 0, 0)

	assert.Empty(t, rep.Violations)
	assert.True(t, rep.Pass)
	assert.Equal(t, 0, rep.Files)
	assert.Equal(t, 0, rep.Errors())
	assert.Equal(t, 0, rep.Warnings())
}

func TestAggregateSortsByLocation(t *testing.T) {
	perFile := [][]types.Violation{
		{
			v("rule/b", "b.sql", 3, 1, types.SeverityError),
			v("rule/a", "b.sql", 1, 9, types.SeverityError),
		},
		{
			v("rule/z", "a.sql", 10, 1, types.SeverityWarning),
			v("rule/b", "b.sql", 1, 2, types.SeverityError),
		},
	}

	rep := report.Aggregate(perFile, 2, 0)

	require.Len(t, rep.Violations, 4)
	assert.Equal(t, "a.sql", rep.Violations[0].Path)
	assert.Equal(t, "b.sql", rep.Violations[1].Path)
	assert.Equal(t, 1, rep.Violations[1].Line)
	assert.Equal(t, 2, rep.Violations[1].Column)
	assert.Equal(t, 9, rep.Violations[2].Column)
	assert.Equal(t, 3, rep.Violations[3].Line)
}

func TestAggregateTieBreaksOnRule(t *testing.T) {
	perFile := [][]types.Violation{{
		v("rule/z", "a.sql", 1, 1, types.SeverityWarning),
		v("rule/a", "a.sql", 1, 1, types.SeverityWarning),
	}}

	rep := report.Aggregate(perFile, 1, 0)

	require.Len(t, rep.Violations, 2)
	assert.Equal(t, "rule/a", rep.Violations[0].RuleID)
	assert.Equal(t, "rule/z", rep.Violations[1].RuleID)
}

func TestAggregateIsOrderIndependent(t *testing.T) {
	a := v("rule/a", "a.sql", 1, 1, types.SeverityError)
	b := v("rule/b", "b.sql", 2, 2, types.SeverityWarning)
	c := v("rule/c", "c.sql", 3, 3, types.SeverityError)

	forward := report.Aggregate([][]types.Violation{{a}, {b}, {c}}, 3, 0)
	backward := report.Aggregate([][]types.Violation{{c}, {b}, {a}}, 3, 0)

	assert.Equal(t, forward, backward)
}

func TestAggregateDeduplicates(t *testing.T) {
	dup := v("rule/a", "a.sql", 1, 1, types.SeverityError)

	rep := report.Aggregate([][]types.Violation{{dup, dup}, {dup}}, 1, 0)

	assert.Len(t, rep.Violations, 1)
	assert.Equal(t, 1, rep.PerRule["rule/a"])
}

func TestAggregateIsIdempotent(t *testing.T) {
	perFile := [][]types.Violation{{
		v("rule/a", "a.sql", 1, 1, types.SeverityError),
		v("rule/b", "a.sql", 2, 1, types.SeverityWarning),
	}}

	once := report.Aggregate(perFile, 1, 0)
	again := report.Aggregate([][]types.Violation{once.Violations}, 1, 0)

	assert.Equal(t, once.Violations, again.Violations)
	assert.Equal(t, once.PerRule, again.PerRule)
	assert.Equal(t, once.PerSeverity, again.PerSeverity)
}

func TestAggregatePassVerdict(t *testing.T) {
	t.Run("warnings alone pass", func(t *testing.T) {
		rep := report.Aggregate([][]types.Violation{{
			v("rule/a", "a.sql", 1, 1, types.SeverityWarning),
		}}, 1, 0)
		assert.True(t, rep.Pass)
	})

	t.Run("one error fails", func(t *testing.T) {
		rep := report.Aggregate([][]types.Violation{{
			v("rule/a", "a.sql", 1, 1, types.SeverityWarning),
			v("rule/b", "a.sql", 2, 1, types.SeverityError),
		}}, 1, 0)
		assert.False(t, rep.Pass)
	})
}

func TestAggregateCounts(t *testing.T) {
	perFile := [][]types.Violation{{
		v("rule/a", "a.sql", 1, 1, types.SeverityError),
		v("rule/a", "a.sql", 2, 1, types.SeverityError),
		v("rule/b", "a.sql", 3, 1, types.SeverityWarning),
	}}

	rep := report.Aggregate(perFile, 1, 4)

	assert.Equal(t, 2, rep.PerRule["rule/a"])
	assert.Equal(t, 1, rep.PerRule["rule/b"])
	assert.Equal(t, 2, rep.Errors())
	assert.Equal(t, 1, rep.Warnings())
	assert.Equal(t, 4, rep.Suppressed)
	assert.Equal(t, 1, rep.Files)
}
