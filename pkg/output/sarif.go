package output

import (
	"strings"

	"github.com/arthur-debert/sglint/pkg/errors"
	"github.com/arthur-debert/sglint/pkg/registry"
	"github.com/arthur-debert/sglint/pkg/types"
	"github.com/owenrumney/go-sarif/v2/sarif"
)

// SarifRenderer renders SARIF 2.1.0 for code-scanning integrations
type SarifRenderer struct{}

func (r *SarifRenderer) Render(rep *types.Report) (string, error) {
	doc, err := sarif.New(sarif.Version210)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to create SARIF document")
	}

	run := sarif.NewRunWithInformationURI("sglint", "https://github.com/arthur-debert/sglint")
	added := make(map[string]bool)
	for _, v := range rep.Violations {
		if !added[v.RuleID] {
			desc := v.RuleID
			if rule, ok := registry.LookupRule(v.RuleID); ok {
				desc = rule.Description
			}
			run.AddRule(v.RuleID).
				WithDescription(desc).
				WithDefaultConfiguration(&sarif.ReportingConfiguration{
					Level: sarifLevel(v.Severity),
				})
			added[v.RuleID] = true
		}

		location := sarif.NewLocation().WithPhysicalLocation(
			sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewArtifactLocation().WithUri(v.Path)).
				WithRegion(sarif.NewRegion().
					WithStartLine(v.Line).
					WithStartColumn(v.Column)),
		)

		result := sarif.NewRuleResult(v.RuleID).
			WithMessage(sarif.NewTextMessage(v.Message)).
			WithLevel(sarifLevel(v.Severity)).
			WithLocations([]*sarif.Location{location})
		run.AddResult(result)
	}
	doc.AddRun(run)

	var out strings.Builder
	if err := doc.PrettyWrite(&out); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode SARIF report")
	}
	return out.String(), nil
}

func sarifLevel(sev types.Severity) string {
	if sev == types.SeverityError {
		return "error"
	}
	return "warning"
}
