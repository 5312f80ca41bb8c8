package lint

import (
	"fmt"
	"path/filepath"

	"github.com/flowlint/flowlint/pkg/constants"
	"github.com/flowlint/flowlint/pkg/fileutil"
	"github.com/flowlint/flowlint/pkg/logger"
)

var projectLog = logger.New("lint:project")

// ValidateProject validates a whole project folder.
//
// Project checks run first and to completion. Unless opts.SkipWorkflows is
// set, every workflow file under the project's workflows folder is then
// validated with the same options, in directory listing order, and its
// findings are folded into the project result with messages prefixed by the
// originating file name so a flattened report stays attributable. The rule
// filter and strict escalation apply uniformly to the merged list, bubbled-up
// child findings included.
func (v *Validator) ValidateProject(dir string, opts Options) *ValidationResult {
	abs, err := fileutil.AbsolutePath(dir)
	if err != nil {
		abs = dir
	}
	projectLog.Printf("Validating project %s", abs)

	if !fileutil.DirExists(abs) {
		projectLog.Printf("Project folder missing: %s", abs)
		return syntheticMust(RuleProjectMissing, abs, "project folder does not exist", nil)
	}

	findings := v.registry.RunProjectChecks(abs)
	filesValidated := []string{abs}

	if !opts.SkipWorkflows {
		childOpts := opts
		childOpts.SkipWorkflows = false

		workflowDir := filepath.Join(abs, constants.WorkflowDir)
		for _, file := range fileutil.ListWorkflowFiles(workflowDir) {
			child := v.ValidateFile(file, childOpts)
			filesValidated = append(filesValidated, child.FilesValidated...)
			findings = append(findings, prefixWithFile(child.Findings, file)...)
		}
	}

	findings = FilterByRule(findings, opts.Rules, opts.ExcludeRules)
	if opts.Strict {
		findings = EscalateStrict(findings)
	}

	return finishResult(findings, filesValidated)
}

// prefixWithFile re-emits child findings with the originating file's name in
// front of each message. Every other field is preserved unchanged.
func prefixWithFile(findings []Finding, file string) []Finding {
	name := filepath.Base(file)
	prefixed := make([]Finding, len(findings))
	for i, f := range findings {
		f.Message = fmt.Sprintf("%s: %s", name, f.Message)
		prefixed[i] = f
	}
	return prefixed
}
