package rules

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/semver"

	"github.com/flowlint/flowlint/pkg/constants"
	"github.com/flowlint/flowlint/pkg/fileutil"
	"github.com/flowlint/flowlint/pkg/graph"
	"github.com/flowlint/flowlint/pkg/lint"
	"github.com/flowlint/flowlint/pkg/project"
)

// Project checks each load the configuration themselves: checks stay
// independent, and a missing or malformed config is reported exactly once,
// by the check owning that rule.

// configPresent requires a project configuration file.
func configPresent() lint.ProjectCheck {
	return lint.ProjectCheck{
		Rule: RuleConfigMissing,
		Run: func(folder string) []lint.Finding {
			if _, ok := fileutil.FindProjectConfig(folder); ok {
				return nil
			}
			return []lint.Finding{{
				Rule:     RuleConfigMissing,
				Severity: lint.SeverityMust,
				Path:     folder,
				Message:  "project has no flowlint.yml configuration",
			}}
		},
	}
}

// configValid requires the configuration to decode and match the schema.
func configValid() lint.ProjectCheck {
	return lint.ProjectCheck{
		Rule: RuleConfigInvalid,
		Run: func(folder string) []lint.Finding {
			path, ok := fileutil.FindProjectConfig(folder)
			if !ok {
				return nil // configPresent owns the missing-file case
			}
			raw, err := os.ReadFile(path)
			if err != nil {
				return []lint.Finding{{
					Rule:     RuleConfigInvalid,
					Severity: lint.SeverityMust,
					Path:     path,
					Message:  "project configuration cannot be read",
					Detail:   err.Error(),
				}}
			}
			if _, err := project.Decode(raw); err != nil {
				return []lint.Finding{{
					Rule:     RuleConfigInvalid,
					Severity: lint.SeverityMust,
					Path:     path,
					Message:  "project configuration is invalid",
					Detail:   err.Error(),
				}}
			}
			return nil
		},
	}
}

// loadConfig is the shared quiet load used by cross-file checks: when the
// config is absent or invalid they stay silent and leave reporting to the
// config checks.
func loadConfig(folder string) (*project.Config, bool) {
	cfg, _, err := project.Load(folder)
	if err != nil {
		return nil, false
	}
	return cfg, true
}

// workflowsExist requires every workflow referenced by the configuration to
// exist on disk.
func workflowsExist() lint.ProjectCheck {
	return lint.ProjectCheck{
		Rule: RuleWorkflowNotFound,
		Run: func(folder string) []lint.Finding {
			cfg, ok := loadConfig(folder)
			if !ok {
				return nil
			}
			var findings []lint.Finding
			for _, rel := range cfg.Workflows {
				path := filepath.Join(folder, rel)
				if fileutil.FileExists(path) {
					continue
				}
				findings = append(findings, lint.Finding{
					Rule:     RuleWorkflowNotFound,
					Severity: lint.SeverityMust,
					Path:     path,
					Message:  fmt.Sprintf("configured workflow %q does not exist", rel),
				})
			}
			return findings
		},
	}
}

// unregisteredWorkflows flags workflow files on disk that the configuration
// does not list.
func unregisteredWorkflows() lint.ProjectCheck {
	return lint.ProjectCheck{
		Rule: RuleUnregisteredWorkflow,
		Run: func(folder string) []lint.Finding {
			cfg, ok := loadConfig(folder)
			if !ok {
				return nil
			}
			registered := make(map[string]bool, len(cfg.Workflows))
			for _, rel := range cfg.Workflows {
				abs, err := fileutil.AbsolutePath(filepath.Join(folder, rel))
				if err != nil {
					continue
				}
				registered[abs] = true
			}

			var findings []lint.Finding
			for _, file := range fileutil.ListWorkflowFiles(filepath.Join(folder, constants.WorkflowDir)) {
				if registered[file] {
					continue
				}
				findings = append(findings, lint.Finding{
					Rule:     RuleUnregisteredWorkflow,
					Severity: lint.SeverityShould,
					Path:     file,
					Message:  fmt.Sprintf("workflow file %q is not listed in the project configuration", filepath.Base(file)),
				})
			}
			return findings
		},
	}
}

// undeclaredCredentials cross-checks credential references inside workflow
// files against the credentials declared by the configuration.
func undeclaredCredentials() lint.ProjectCheck {
	return lint.ProjectCheck{
		Rule: RuleUndeclaredCredential,
		Run: func(folder string) []lint.Finding {
			cfg, ok := loadConfig(folder)
			if !ok {
				return nil
			}

			var findings []lint.Finding
			for _, file := range fileutil.ListWorkflowFiles(filepath.Join(folder, constants.WorkflowDir)) {
				raw, err := os.ReadFile(file)
				if err != nil {
					continue
				}
				g, err := graph.Parse(raw)
				if err != nil {
					continue // the single-file validator owns parse failures
				}
				for _, n := range g.Nodes {
					if n.Credentials == "" || cfg.HasCredential(n.Credentials) {
						continue
					}
					findings = append(findings, lint.Finding{
						Rule:     RuleUndeclaredCredential,
						Severity: lint.SeverityMust,
						Path:     file,
						Message:  fmt.Sprintf("node %q references undeclared credential %q", n.ID, n.Credentials),
						NodeID:   n.ID,
						Line:     n.Line,
					})
				}
			}
			return findings
		},
	}
}

// engineVersion requires engineVersion, when present, to be valid semver.
func engineVersion() lint.ProjectCheck {
	return lint.ProjectCheck{
		Rule: RuleInvalidEngineVersion,
		Run: func(folder string) []lint.Finding {
			cfg, ok := loadConfig(folder)
			if !ok || cfg.EngineVersion == "" {
				return nil
			}
			if semver.IsValid(cfg.EngineVersion) {
				return nil
			}
			return []lint.Finding{{
				Rule:     RuleInvalidEngineVersion,
				Severity: lint.SeverityShould,
				Path:     folder,
				Message:  fmt.Sprintf("engineVersion %q is not a valid semantic version", cfg.EngineVersion),
				Detail:   "use a v-prefixed version like v1.4.0",
			}}
		},
	}
}
