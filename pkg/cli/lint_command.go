package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/sourcegraph/conc/iter"
	"github.com/spf13/cobra"

	"github.com/flowlint/flowlint/pkg/console"
	"github.com/flowlint/flowlint/pkg/constants"
	"github.com/flowlint/flowlint/pkg/fileutil"
	"github.com/flowlint/flowlint/pkg/lint"
	"github.com/flowlint/flowlint/pkg/logger"
	"github.com/flowlint/flowlint/pkg/rules"
)

var lintLog = logger.New("cli:lint_command")

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint [file]...",
		Short: "Lint workflow files",
		Long: `Lint one or more workflow files. If no files are given, every workflow
in the ` + constants.WorkflowDir + ` folder is linted. Files are validated independently
and the findings are merged into one report.

Examples:
  ` + constants.CLIName + ` lint                             # Lint all workflows
  ` + constants.CLIName + ` lint workflows/orders.yml        # Lint one file
  ` + constants.CLIName + ` lint --strict                    # Treat should findings as blocking
  ` + constants.CLIName + ` lint --rules trailing-whitespace # Keep only one rule
  ` + constants.CLIName + ` lint --fix                       # Apply automatic fixes
  ` + constants.CLIName + ` lint --fix --dry-run             # Show what --fix would change
  ` + constants.CLIName + ` lint -o sarif                    # Emit a SARIF report`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := filterOptions(cmd)
			opts.Fix, _ = cmd.Flags().GetBool("fix")
			opts.DryRun, _ = cmd.Flags().GetBool("dry-run")
			output, _ := cmd.Flags().GetString("output")
			failFast, _ := cmd.Flags().GetBool("fail-fast")

			files := args
			if len(files) == 0 {
				files = fileutil.ListWorkflowFiles(constants.WorkflowDir)
			}
			if len(files) == 0 {
				return fmt.Errorf("no workflow files found in %s", constants.WorkflowDir)
			}
			lintLog.Printf("Linting %d file(s)", len(files))

			result, err := lintFiles(files, opts, failFast)
			if err != nil {
				return err
			}

			if err := WriteResult(cmd.OutOrStdout(), result, output); err != nil {
				return err
			}
			if !result.Valid {
				return errors.New("validation failed")
			}
			return nil
		},
	}

	addFilterFlags(cmd)
	addOutputFlag(cmd)
	cmd.Flags().Bool("fix", false, "Apply automatic fixes to fixable findings")
	cmd.Flags().Bool("dry-run", false, "With --fix, report fixes without writing files")
	cmd.Flags().Bool("fail-fast", false, "Stop at the first file with blocking findings")

	return cmd
}

// lintFiles validates the given files and merges their results. Files are
// processed concurrently unless failFast is set, which needs a stable stop
// point and runs sequentially.
func lintFiles(files []string, opts lint.Options, failFast bool) (*lint.ValidationResult, error) {
	v := lint.NewValidator(rules.Default())

	if failFast {
		var results []*lint.ValidationResult
		for _, file := range files {
			result := v.ValidateFile(file, opts)
			results = append(results, result)
			if !result.Valid {
				fmt.Fprintln(os.Stderr, console.FormatErrorMessage("stopping at first failing file: "+file))
				break
			}
		}
		return lint.MergeResults(results), nil
	}

	results := iter.Map(files, func(file *string) *lint.ValidationResult {
		return v.ValidateFile(*file, opts)
	})
	return lint.MergeResults(results), nil
}
