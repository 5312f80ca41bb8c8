// Package cli implements the flowlint command-line interface.
package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/flowlint/flowlint/pkg/console"
	"github.com/flowlint/flowlint/pkg/lint"
	"github.com/flowlint/flowlint/pkg/report"
)

// Output format names accepted by the --output flag.
const (
	OutputText  = "text"
	OutputJSON  = "json"
	OutputSARIF = "sarif"
)

// WriteResult renders a validation result in the requested format.
func WriteResult(w io.Writer, result *lint.ValidationResult, format string) error {
	switch format {
	case OutputJSON:
		return report.WriteJSON(w, result)
	case OutputSARIF:
		return report.WriteSARIF(w, result)
	case OutputText, "":
		writeTextResult(w, result)
		return nil
	}
	return fmt.Errorf("unknown output format %q (expected text, json, or sarif)", format)
}

func writeTextResult(w io.Writer, result *lint.ValidationResult) {
	for _, f := range result.Findings {
		fmt.Fprintln(w, formatFinding(f))
	}
	if len(result.Findings) > 0 {
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, console.RenderTable(summaryTable(result.Summary)))
	}

	if result.Valid {
		fmt.Fprintln(w, console.FormatSuccessMessage(validSummaryLine(result)))
	} else {
		fmt.Fprintln(w, console.FormatErrorMessage(fmt.Sprintf("validation failed: %d blocking finding(s)", result.Summary.Must)))
	}
}

func validSummaryLine(result *lint.ValidationResult) string {
	total := result.Summary.Should + result.Summary.Nit
	if total == 0 {
		return fmt.Sprintf("no findings in %d file(s)", len(result.FilesValidated))
	}
	return fmt.Sprintf("valid with %d non-blocking finding(s)", total)
}

func formatFinding(f lint.Finding) string {
	line := fmt.Sprintf("[%s] %s", f.Rule, f.Message)
	if loc := formatLocation(f); loc != "" {
		line += console.FormatDimMessage(" (" + loc + ")")
	}

	switch f.Severity {
	case lint.SeverityMust:
		return console.FormatErrorMessage(line)
	case lint.SeverityShould:
		return console.FormatWarningMessage(line)
	default:
		return console.FormatInfoMessage(line)
	}
}

func formatLocation(f lint.Finding) string {
	if f.Path == "" {
		return ""
	}
	loc := f.Path
	if f.Line > 0 {
		loc += ":" + strconv.Itoa(f.Line)
	}
	return loc
}

func summaryTable(s lint.Summary) console.TableConfig {
	return console.TableConfig{
		Headers: []string{"Severity", "Count"},
		Rows: [][]string{
			{"must", strconv.Itoa(s.Must)},
			{"should", strconv.Itoa(s.Should)},
			{"nit", strconv.Itoa(s.Nit)},
			{"fixable", strconv.Itoa(s.Fixable)},
		},
	}
}
