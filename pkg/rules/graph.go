package rules

import (
	"fmt"
	"regexp"

	"github.com/flowlint/flowlint/pkg/constants"
	"github.com/flowlint/flowlint/pkg/graph"
	"github.com/flowlint/flowlint/pkg/lint"
)

// nodeTypePattern is the category.kind shape every node type must have,
// for example trigger.webhook or http.request.
var nodeTypePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*\.[a-z][a-z0-9-]*$`)

// missingTrigger requires at least one node that can start the workflow.
func missingTrigger() lint.GraphCheck {
	return lint.GraphCheck{
		Rule: RuleMissingTrigger,
		Run: func(g *graph.Graph, ctx lint.CheckContext) []lint.Finding {
			for _, n := range g.Nodes {
				if n.IsTrigger() {
					return nil
				}
			}
			return []lint.Finding{{
				Rule:     RuleMissingTrigger,
				Severity: lint.SeverityMust,
				Path:     ctx.Path,
				Message:  "workflow has no trigger node",
				Detail:   fmt.Sprintf("add a node whose type starts with %q so the workflow can start", constants.TriggerTypePrefix),
			}}
		},
	}
}

// duplicateNodeName flags display names shared by more than one node.
func duplicateNodeName() lint.GraphCheck {
	return lint.GraphCheck{
		Rule: RuleDuplicateNodeName,
		Run: func(g *graph.Graph, ctx lint.CheckContext) []lint.Finding {
			var findings []lint.Finding
			seen := make(map[string]string, len(g.Nodes))
			for _, n := range g.Nodes {
				name := n.DisplayName()
				if firstID, ok := seen[name]; ok {
					findings = append(findings, lint.Finding{
						Rule:     RuleDuplicateNodeName,
						Severity: lint.SeverityMust,
						Path:     ctx.Path,
						Message:  fmt.Sprintf("node name %q is used by more than one node", name),
						Detail:   fmt.Sprintf("also used by node %q", firstID),
						NodeID:   n.ID,
						Line:     n.Line,
					})
					continue
				}
				seen[name] = n.ID
			}
			return findings
		},
	}
}

// invalidNodeType enforces the category.kind node type shape.
func invalidNodeType() lint.GraphCheck {
	return lint.GraphCheck{
		Rule: RuleInvalidNodeType,
		Run: func(g *graph.Graph, ctx lint.CheckContext) []lint.Finding {
			var findings []lint.Finding
			for _, n := range g.Nodes {
				if nodeTypePattern.MatchString(n.Type) {
					continue
				}
				findings = append(findings, lint.Finding{
					Rule:     RuleInvalidNodeType,
					Severity: lint.SeverityMust,
					Path:     ctx.Path,
					Message:  fmt.Sprintf("node %q has invalid type %q", n.ID, n.Type),
					Detail:   "node types have the form category.kind, for example http.request",
					NodeID:   n.ID,
					Line:     n.Line,
				})
			}
			return findings
		},
	}
}

// danglingConnection flags edges whose endpoints name unknown nodes.
func danglingConnection() lint.GraphCheck {
	return lint.GraphCheck{
		Rule: RuleDanglingConnection,
		Run: func(g *graph.Graph, ctx lint.CheckContext) []lint.Finding {
			var findings []lint.Finding
			for _, e := range g.Edges {
				for _, id := range []string{e.From, e.To} {
					if g.NodeByID(id) != nil {
						continue
					}
					findings = append(findings, lint.Finding{
						Rule:     RuleDanglingConnection,
						Severity: lint.SeverityMust,
						Path:     ctx.Path,
						Message:  fmt.Sprintf("connection references unknown node %q", id),
						NodeID:   id,
					})
				}
			}
			return findings
		},
	}
}

// orphanNode flags nodes with no connections in multi-node workflows.
func orphanNode() lint.GraphCheck {
	return lint.GraphCheck{
		Rule: RuleOrphanNode,
		Run: func(g *graph.Graph, ctx lint.CheckContext) []lint.Finding {
			if len(g.Nodes) < 2 {
				return nil
			}
			var findings []lint.Finding
			for _, n := range g.Nodes {
				if g.Connected(n.ID) {
					continue
				}
				findings = append(findings, lint.Finding{
					Rule:     RuleOrphanNode,
					Severity: lint.SeverityShould,
					Path:     ctx.Path,
					Message:  fmt.Sprintf("node %q is not connected to the rest of the workflow", n.ID),
					NodeID:   n.ID,
					Line:     n.Line,
				})
			}
			return findings
		},
	}
}

// missingErrorBranch suggests error routing on http.request nodes.
func missingErrorBranch() lint.GraphCheck {
	return lint.GraphCheck{
		Rule: RuleMissingErrorBranch,
		Run: func(g *graph.Graph, ctx lint.CheckContext) []lint.Finding {
			var findings []lint.Finding
			for _, n := range g.Nodes {
				if n.Type != "http.request" {
					continue
				}
				hasErrorBranch := false
				for _, e := range g.Outbound(n.ID) {
					if e.Branch == constants.ErrorBranch {
						hasErrorBranch = true
						break
					}
				}
				if hasErrorBranch {
					continue
				}
				findings = append(findings, lint.Finding{
					Rule:     RuleMissingErrorBranch,
					Severity: lint.SeverityNit,
					Path:     ctx.Path,
					Message:  fmt.Sprintf("node %q has no error branch", n.ID),
					Detail:   "http.request nodes should route failures through an error connection",
					NodeID:   n.ID,
					Line:     n.Line,
				})
			}
			return findings
		},
	}
}
