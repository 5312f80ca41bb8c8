// Package lint implements the validation engine: the finding model, the
// check registry, the single-file and project validators, and the auto-fix
// orchestrator.
//
// # Architecture
//
// The engine is organized into focused files:
//
//   - finding.go: severity, findings, summaries, results, pure transforms
//   - registry.go: the three check kinds and their isolated dispatch
//   - validator.go: single-file validation pipeline
//   - project.go: project-wide validation and result merging
//   - autofix.go: fix application, grouping, and previews
//
// Findings are immutable values: every policy transform (rule filtering,
// strict escalation) maps to a fresh slice and never mutates in place.
// Execution is fully sequential; callers wanting throughput run independent
// validations on their own goroutines and merge results themselves.
package lint

import "strings"

// Severity is the policy tier of a finding: must (blocking), should
// (recommended), nit (suggestion).
type Severity string

const (
	SeverityMust   Severity = "must"
	SeverityShould Severity = "should"
	SeverityNit    Severity = "nit"
)

// Rank orders severities for display grouping: must > should > nit.
// Findings themselves are never re-sorted by rank.
func (s Severity) Rank() int {
	switch s {
	case SeverityMust:
		return 3
	case SeverityShould:
		return 2
	case SeverityNit:
		return 1
	}
	return 0
}

// Rule identifiers for findings synthesized by the engine itself rather than
// by a registered check.
const (
	// RuleFileUnreadable reports a workflow file that is missing or cannot
	// be read. Fatal to that file: no checks run against it.
	RuleFileUnreadable = "file-unreadable"

	// RuleParseFailure reports a workflow document the parser rejected.
	// Fatal to that file: neither the graph nor the text is trustworthy.
	RuleParseFailure = "parse-failure"

	// RuleProjectMissing reports a project folder that does not exist.
	RuleProjectMissing = "project-missing"

	// Sentinel rules for a check that panicked. The run continues; the
	// failure is downgraded to a nit finding naming the check kind.
	RuleGraphCheckFailure   = "graph-check-failure"
	RuleContentCheckFailure = "content-check-failure"
	RuleProjectCheckFailure = "project-check-failure"
)

// FixDescriptor is a pure text-to-text transformation attached to a fixable
// finding. Apply must be total over any text (no panics on unrelated
// content), idempotent, and free of side effects: it never touches storage.
type FixDescriptor struct {
	Description string
	Apply       func(text string) string
}

// Finding is one reported violation. Findings are immutable after creation;
// strict-mode escalation produces a replacement value instead of mutating.
type Finding struct {
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	Path     string   `json:"path"`
	Message  string   `json:"message"`
	Detail   string   `json:"detail,omitempty"`
	Line     int      `json:"line,omitempty"`
	NodeID   string   `json:"nodeId,omitempty"`
	Fixable  bool     `json:"fixable"`

	// Fix is present iff Fixable. It serializes only as behavior, so it is
	// excluded from the wire shape.
	Fix *FixDescriptor `json:"-"`
}

// Summary counts findings per severity plus the fixable count. It is always
// recomputed from a finding list, never maintained incrementally.
type Summary struct {
	Must    int `json:"must"`
	Should  int `json:"should"`
	Nit     int `json:"nit"`
	Fixable int `json:"fixable"`
}

// Summarize derives a Summary from the current finding set.
func Summarize(findings []Finding) Summary {
	var s Summary
	for _, f := range findings {
		switch f.Severity {
		case SeverityMust:
			s.Must++
		case SeverityShould:
			s.Should++
		case SeverityNit:
			s.Nit++
		}
		if f.Fixable {
			s.Fixable++
		}
	}
	return s
}

// ValidationResult is the outcome of validating one file or one project.
// Findings keep check execution order. Valid is true iff no must findings
// remain.
type ValidationResult struct {
	Valid          bool      `json:"valid"`
	Findings       []Finding `json:"findings"`
	Summary        Summary   `json:"summary"`
	FilesValidated []string  `json:"filesValidated"`
}

// finishResult recomputes the summary and validity from the final findings.
func finishResult(findings []Finding, filesValidated []string) *ValidationResult {
	summary := Summarize(findings)
	return &ValidationResult{
		Valid:          summary.Must == 0,
		Findings:       findings,
		Summary:        summary,
		FilesValidated: filesValidated,
	}
}

// MergeResults folds several independent results into one. Findings keep the
// order of the input results; validity and the summary are recomputed from
// the merged finding list.
func MergeResults(results []*ValidationResult) *ValidationResult {
	var findings []Finding
	var filesValidated []string
	for _, r := range results {
		if r == nil {
			continue
		}
		findings = append(findings, r.Findings...)
		filesValidated = append(filesValidated, r.FilesValidated...)
	}
	return finishResult(findings, filesValidated)
}

// FilterByRule applies the rule filter. When include is non-empty, findings
// whose rule is not in it are dropped; findings whose rule is in exclude are
// always dropped. Matching is case-insensitive. The input slice is not
// modified.
func FilterByRule(findings []Finding, include, exclude []string) []Finding {
	if len(include) == 0 && len(exclude) == 0 {
		return findings
	}

	includeSet := toRuleSet(include)
	excludeSet := toRuleSet(exclude)

	filtered := make([]Finding, 0, len(findings))
	for _, f := range findings {
		rule := strings.ToLower(f.Rule)
		if len(includeSet) > 0 && !includeSet[rule] {
			continue
		}
		if excludeSet[rule] {
			continue
		}
		filtered = append(filtered, f)
	}
	return filtered
}

func toRuleSet(rules []string) map[string]bool {
	if len(rules) == 0 {
		return nil
	}
	set := make(map[string]bool, len(rules))
	for _, r := range rules {
		set[strings.ToLower(strings.TrimSpace(r))] = true
	}
	return set
}

// EscalateStrict maps should findings to must. Nit findings are deliberately
// left alone: strict mode promotes recommendations to blocking but not
// suggestions. Returns a fresh slice; severity never decreases.
func EscalateStrict(findings []Finding) []Finding {
	escalated := make([]Finding, len(findings))
	for i, f := range findings {
		if f.Severity == SeverityShould {
			f.Severity = SeverityMust
		}
		escalated[i] = f
	}
	return escalated
}
