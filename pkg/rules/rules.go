// Package rules registers the built-in checks: graph checks over parsed
// workflows, content checks over raw document text, and project checks over
// whole project folders.
//
// Checks are plain values conforming to the three lint check contracts. They
// are independent of each other: no check reads another check's findings,
// and registration order matters only for finding order in reports.
package rules

import "github.com/flowlint/flowlint/pkg/lint"

// Rule identifiers for the built-in checks.
const (
	RuleMissingTrigger     = "missing-trigger"
	RuleDuplicateNodeName  = "duplicate-node-name"
	RuleInvalidNodeType    = "invalid-node-type"
	RuleOrphanNode         = "orphan-node"
	RuleDanglingConnection = "dangling-connection"
	RuleMissingErrorBranch = "missing-error-branch"

	RuleExpressionSpacing  = "expression-spacing"
	RuleTrailingWhitespace = "trailing-whitespace"
	RuleTabIndentation     = "tab-indentation"
	RuleLegacyExpression   = "legacy-expression"

	RuleConfigMissing        = "config-missing"
	RuleConfigInvalid        = "config-invalid"
	RuleWorkflowNotFound     = "workflow-not-found"
	RuleUnregisteredWorkflow = "unregistered-workflow"
	RuleUndeclaredCredential = "undeclared-credential"
	RuleInvalidEngineVersion = "invalid-engine-version"
)

// Default builds a registry holding every built-in check in its canonical
// order.
func Default() *lint.Registry {
	r := lint.NewRegistry()

	r.AddGraphCheck(missingTrigger())
	r.AddGraphCheck(duplicateNodeName())
	r.AddGraphCheck(invalidNodeType())
	r.AddGraphCheck(danglingConnection())
	r.AddGraphCheck(orphanNode())
	r.AddGraphCheck(missingErrorBranch())

	r.AddContentCheck(expressionSpacing())
	r.AddContentCheck(trailingWhitespace())
	r.AddContentCheck(tabIndentation())
	r.AddContentCheck(legacyExpression())

	r.AddProjectCheck(configPresent())
	r.AddProjectCheck(configValid())
	r.AddProjectCheck(workflowsExist())
	r.AddProjectCheck(unregisteredWorkflows())
	r.AddProjectCheck(undeclaredCredentials())
	r.AddProjectCheck(engineVersion())

	return r
}
