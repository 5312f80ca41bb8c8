//go:build !integration

package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowlint/flowlint/pkg/lint"
)

func sampleResult() *lint.ValidationResult {
	findings := []lint.Finding{
		{
			Rule:     "dangling-connection",
			Severity: lint.SeverityMust,
			Path:     "/p/workflows/wf.yml",
			Message:  `connection references unknown node "ghost"`,
			NodeID:   "ghost",
		},
		{
			Rule:     "trailing-whitespace",
			Severity: lint.SeverityNit,
			Path:     "/p/workflows/wf.yml",
			Message:  "line has trailing whitespace",
			Line:     4,
			Fixable:  true,
			Fix:      &lint.FixDescriptor{Description: "strip", Apply: func(s string) string { return s }},
		},
	}
	return &lint.ValidationResult{
		Valid:          false,
		Findings:       findings,
		Summary:        lint.Summarize(findings),
		FilesValidated: []string{"/p/workflows/wf.yml"},
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleResult()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, false, decoded["valid"])
	findings := decoded["findings"].([]any)
	require.Len(t, findings, 2)

	first := findings[0].(map[string]any)
	assert.Equal(t, "dangling-connection", first["rule"])
	assert.Equal(t, "must", first["severity"])
	assert.NotContains(t, first, "fix", "fix descriptors must not serialize")
	assert.NotContains(t, first, "line", "zero line must be omitted")

	second := findings[1].(map[string]any)
	assert.Equal(t, true, second["fixable"])
	assert.Equal(t, float64(4), second["line"])

	summary := decoded["summary"].(map[string]any)
	assert.Equal(t, float64(1), summary["must"])
	assert.Equal(t, float64(1), summary["fixable"])
}

func TestWriteSARIF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSARIF(&buf, sampleResult()))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "2.1.0", doc["version"])

	runs := doc["runs"].([]any)
	require.Len(t, runs, 1)
	run := runs[0].(map[string]any)

	driver := run["tool"].(map[string]any)["driver"].(map[string]any)
	assert.Equal(t, "flowlint", driver["name"])
	require.Len(t, driver["rules"].([]any), 2)

	results := run["results"].([]any)
	require.Len(t, results, 2)

	first := results[0].(map[string]any)
	assert.Equal(t, "dangling-connection", first["ruleId"])
	assert.Equal(t, "error", first["level"])

	second := results[1].(map[string]any)
	assert.Equal(t, "note", second["level"])
	region := second["locations"].([]any)[0].(map[string]any)["physicalLocation"].(map[string]any)["region"].(map[string]any)
	assert.Equal(t, float64(4), region["startLine"])
}

func TestWriteSARIFRepeatedRule(t *testing.T) {
	findings := []lint.Finding{
		{Rule: "orphan-node", Severity: lint.SeverityShould, Path: "a.yml", Message: "x", NodeID: "n1"},
		{Rule: "orphan-node", Severity: lint.SeverityShould, Path: "a.yml", Message: "y", NodeID: "n2"},
	}
	result := &lint.ValidationResult{Findings: findings, Summary: lint.Summarize(findings)}

	var buf bytes.Buffer
	require.NoError(t, WriteSARIF(&buf, result))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	run := doc["runs"].([]any)[0].(map[string]any)
	driver := run["tool"].(map[string]any)["driver"].(map[string]any)
	assert.Len(t, driver["rules"].([]any), 1, "rule metadata is deduplicated")
	assert.Len(t, run["results"].([]any), 2)
}
