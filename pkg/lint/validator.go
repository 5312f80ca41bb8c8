package lint

import (
	"os"
	"slices"

	"github.com/flowlint/flowlint/pkg/fileutil"
	"github.com/flowlint/flowlint/pkg/graph"
	"github.com/flowlint/flowlint/pkg/logger"
)

var validatorLog = logger.New("lint:validator")

// Options selects which findings a validation run keeps and whether fixes
// are applied.
type Options struct {
	// Strict escalates should findings to must. Nit findings are not
	// escalated.
	Strict bool

	// Rules, when non-empty, keeps only findings with these rule ids
	// (case-insensitive).
	Rules []string

	// ExcludeRules drops findings with these rule ids (case-insensitive).
	ExcludeRules []string

	// Fix applies the fixes attached to the remaining findings.
	Fix bool

	// DryRun reports what Fix would change without touching storage.
	DryRun bool

	// SkipWorkflows limits project validation to project-level checks.
	// Meaningless for single-file validation.
	SkipWorkflows bool
}

// Validator runs registered checks against workflow files and projects.
type Validator struct {
	registry *Registry
}

// NewValidator creates a Validator backed by the given check registry.
func NewValidator(registry *Registry) *Validator {
	return &Validator{registry: registry}
}

// ValidateFile validates exactly one workflow file.
//
// An unreadable file or a parse failure short-circuits into a single
// synthetic must finding: no checks run, since they assume a valid graph or
// at least valid text. Otherwise graph checks run against the parsed graph,
// content checks against the raw text, the rule filter and strict escalation
// apply, fixes are optionally applied (with fixed rules dropped from the
// report so it reflects the post-fix state), and the summary is recomputed
// from whatever findings remain.
func (v *Validator) ValidateFile(path string, opts Options) *ValidationResult {
	abs, err := fileutil.AbsolutePath(path)
	if err != nil {
		abs = path
	}
	validatorLog.Printf("Validating file %s", abs)

	content, err := os.ReadFile(abs)
	if err != nil {
		validatorLog.Printf("Cannot read %s: %v", abs, err)
		return syntheticMust(RuleFileUnreadable, abs, "workflow file cannot be read", err)
	}

	g, err := graph.Parse(content)
	if err != nil {
		validatorLog.Printf("Parse failure in %s: %v", abs, err)
		return syntheticMust(RuleParseFailure, abs, "workflow file cannot be parsed", err)
	}

	text := string(content)
	ctx := CheckContext{Path: abs, Content: text}
	findings := v.registry.RunGraphChecks(g, ctx)
	findings = append(findings, v.registry.RunContentChecks(text, abs)...)

	findings = FilterByRule(findings, opts.Rules, opts.ExcludeRules)
	if opts.Strict {
		findings = EscalateStrict(findings)
	}

	if opts.Fix || opts.DryRun {
		findings = v.fixAndPrune(abs, findings, opts)
	}

	return finishResult(findings, []string{abs})
}

// fixAndPrune runs the auto-fix orchestrator and removes findings whose
// rules were actually fixed, so the report reflects the post-fix state.
func (v *Validator) fixAndPrune(path string, findings []Finding, opts Options) []Finding {
	result := ApplyFixes(path, findings, opts.DryRun)
	if opts.DryRun || result.Applied == 0 {
		return findings
	}

	validatorLog.Printf("Pruning findings for %d fixed rules in %s", len(result.FixedRules), path)
	remaining := make([]Finding, 0, len(findings))
	for _, f := range findings {
		if slices.Contains(result.FixedRules, f.Rule) {
			continue
		}
		remaining = append(remaining, f)
	}
	return remaining
}

// syntheticMust builds the single-finding result used for failures that are
// fatal to one scope (file or project).
func syntheticMust(rule, path, message string, err error) *ValidationResult {
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	return finishResult([]Finding{{
		Rule:     rule,
		Severity: SeverityMust,
		Path:     path,
		Message:  message,
		Detail:   detail,
	}}, []string{path})
}
