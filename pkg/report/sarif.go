package report

import (
	"fmt"
	"io"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/flowlint/flowlint/pkg/lint"
)

const toolURI = "https://github.com/flowlint/flowlint"

// severityToLevel maps finding severities onto SARIF result levels.
func severityToLevel(s lint.Severity) string {
	switch s {
	case lint.SeverityMust:
		return "error"
	case lint.SeverityShould:
		return "warning"
	default:
		return "note"
	}
}

// WriteSARIF writes the result as a SARIF 2.1.0 report with one run.
func WriteSARIF(w io.Writer, result *lint.ValidationResult) error {
	doc, err := sarif.New(sarif.Version210)
	if err != nil {
		return fmt.Errorf("creating SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI("flowlint", toolURI)
	seenRules := make(map[string]bool)
	for _, f := range result.Findings {
		if !seenRules[f.Rule] {
			seenRules[f.Rule] = true
			rule := run.AddRule(f.Rule).
				WithDefaultConfiguration(&sarif.ReportingConfiguration{
					Level: severityToLevel(f.Severity),
				})
			if f.Detail != "" {
				rule.WithDescription(f.Detail)
			}
		}

		location := sarif.NewLocation().WithPhysicalLocation(
			physicalLocation(f),
		)
		sarifResult := sarif.NewRuleResult(f.Rule).
			WithMessage(sarif.NewTextMessage(f.Message)).
			WithLevel(severityToLevel(f.Severity)).
			WithLocations([]*sarif.Location{location})
		run.AddResult(sarifResult)
	}
	doc.AddRun(run)

	if err := doc.PrettyWrite(w); err != nil {
		return fmt.Errorf("writing SARIF report: %w", err)
	}
	return nil
}

func physicalLocation(f lint.Finding) *sarif.PhysicalLocation {
	loc := sarif.NewPhysicalLocation().
		WithArtifactLocation(sarif.NewArtifactLocation().WithUri(f.Path))
	if f.Line > 0 {
		loc.WithRegion(sarif.NewRegion().WithStartLine(f.Line))
	}
	return loc
}
