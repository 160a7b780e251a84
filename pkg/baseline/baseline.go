// Package baseline suppresses previously accepted violations. A
// baseline file is a YAML list of (rule, path, line) entries; matching
// violations are dropped from the report and counted as suppressed, so
// a legacy codebase can adopt the linter without a flag day.
package baseline

import (
	"fmt"
	"os"

	"github.com/arthur-debert/sglint/pkg/errors"
	"github.com/arthur-debert/sglint/pkg/types"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the baseline filename looked up next to the config
const DefaultFile = ".sglint-baseline.yaml"

// Entry identifies one accepted violation
type Entry struct {
	Rule string `yaml:"rule"`
	Path string `yaml:"path"`
	Line int    `yaml:"line"`
}

// Baseline is the set of accepted violations
type Baseline struct {
	Entries []Entry `yaml:"ignore"`
}

// Load reads a baseline file. A missing file is an empty baseline, not
// an error; a malformed file is fatal, fix-before-run.
func Load(path string) (*Baseline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Baseline{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrBaselineLoad, "cannot read baseline %s", path)
	}

	var b Baseline
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, errors.Wrapf(err, errors.ErrBaselineLoad, "cannot parse baseline %s", path)
	}
	return &b, nil
}

// Filter splits violations into kept and suppressed. Matching is exact
// on (rule, path, line); a column shift within a line does not escape
// the baseline.
func (b *Baseline) Filter(violations []types.Violation) (kept []types.Violation, suppressed int) {
	if len(b.Entries) == 0 {
		return violations, 0
	}
	accepted := make(map[string]struct{}, len(b.Entries))
	for _, e := range b.Entries {
		accepted[entryKey(e.Rule, e.Path, e.Line)] = struct{}{}
	}
	for _, v := range violations {
		if _, ok := accepted[entryKey(v.RuleID, v.Path, v.Line)]; ok {
			suppressed++
			continue
		}
		kept = append(kept, v)
	}
	return kept, suppressed
}

// FromViolations builds a baseline accepting every given violation
func FromViolations(violations []types.Violation) *Baseline {
	b := &Baseline{}
	seen := make(map[string]struct{})
	for _, v := range violations {
		key := entryKey(v.RuleID, v.Path, v.Line)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		b.Entries = append(b.Entries, Entry{Rule: v.RuleID, Path: v.Path, Line: v.Line})
	}
	return b
}

// Write persists the baseline to path
func (b *Baseline) Write(path string) error {
	data, err := yaml.Marshal(b)
	if err != nil {
		return errors.Wrap(err, errors.ErrBaselineWrite, "cannot encode baseline")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrBaselineWrite, "cannot write baseline %s", path)
	}
	return nil
}

func entryKey(rule, path string, line int) string {
	return fmt.Sprintf("%s:%s:%d", rule, path, line)
}
