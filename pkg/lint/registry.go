package lint

import (
	"fmt"

	"github.com/flowlint/flowlint/pkg/graph"
	"github.com/flowlint/flowlint/pkg/logger"
)

var registryLog = logger.New("lint:registry")

// CheckContext carries the inputs a graph check may pinpoint findings
// against: the absolute file path and the raw document text.
type CheckContext struct {
	Path    string
	Content string
}

// GraphCheck inspects a parsed workflow graph. Run must be pure with respect
// to the graph: checks read it, never mutate it.
type GraphCheck struct {
	Rule string
	Run  func(g *graph.Graph, ctx CheckContext) []Finding
}

// ContentCheck inspects the raw, unparsed document text, catching issues a
// structural parser would normalize away.
type ContentCheck struct {
	Rule string
	Run  func(content, path string) []Finding
}

// ProjectCheck inspects an entire project folder and may read any files
// under it, typically for cross-file consistency.
type ProjectCheck struct {
	Rule string
	Run  func(folder string) []Finding
}

// Registry holds the three ordered, append-only check collections. Order is
// significant only in that it determines finding order in the output; checks
// must not depend on each other's findings.
type Registry struct {
	graphChecks   []GraphCheck
	contentChecks []ContentCheck
	projectChecks []ProjectCheck
}

// NewRegistry creates an empty check registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// AddGraphCheck appends a graph check.
func (r *Registry) AddGraphCheck(c GraphCheck) {
	r.graphChecks = append(r.graphChecks, c)
}

// AddContentCheck appends a content check.
func (r *Registry) AddContentCheck(c ContentCheck) {
	r.contentChecks = append(r.contentChecks, c)
}

// AddProjectCheck appends a project check.
func (r *Registry) AddProjectCheck(c ProjectCheck) {
	r.projectChecks = append(r.projectChecks, c)
}

// RunGraphChecks runs every registered graph check in registration order.
// A panicking check contributes a single nit sentinel finding and never
// aborts the run.
func (r *Registry) RunGraphChecks(g *graph.Graph, ctx CheckContext) []Finding {
	var findings []Finding
	for _, check := range r.graphChecks {
		findings = append(findings, runIsolated(check.Rule, RuleGraphCheckFailure, ctx.Path, func() []Finding {
			return check.Run(g, ctx)
		})...)
	}
	registryLog.Printf("Graph checks produced %d findings for %s", len(findings), ctx.Path)
	return findings
}

// RunContentChecks runs every registered content check in registration order
// with the same isolation as RunGraphChecks.
func (r *Registry) RunContentChecks(content, path string) []Finding {
	var findings []Finding
	for _, check := range r.contentChecks {
		findings = append(findings, runIsolated(check.Rule, RuleContentCheckFailure, path, func() []Finding {
			return check.Run(content, path)
		})...)
	}
	registryLog.Printf("Content checks produced %d findings for %s", len(findings), path)
	return findings
}

// RunProjectChecks runs every registered project check in registration order
// with the same isolation as RunGraphChecks.
func (r *Registry) RunProjectChecks(folder string) []Finding {
	var findings []Finding
	for _, check := range r.projectChecks {
		findings = append(findings, runIsolated(check.Rule, RuleProjectCheckFailure, folder, func() []Finding {
			return check.Run(folder)
		})...)
	}
	registryLog.Printf("Project checks produced %d findings for %s", len(findings), folder)
	return findings
}

// runIsolated invokes one check, converting a panic into a sentinel finding
// so one buggy check never suppresses the rest of the report.
func runIsolated(rule, sentinelRule, path string, run func() []Finding) (findings []Finding) {
	defer func() {
		if rec := recover(); rec != nil {
			registryLog.Printf("Check %s panicked: %v", rule, rec)
			findings = []Finding{{
				Rule:     sentinelRule,
				Severity: SeverityNit,
				Path:     path,
				Message:  fmt.Sprintf("check %s failed and was skipped", rule),
				Detail:   fmt.Sprintf("%v", rec),
			}}
		}
	}()
	return run()
}
