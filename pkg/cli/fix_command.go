package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/flowlint/flowlint/pkg/console"
	"github.com/flowlint/flowlint/pkg/constants"
	"github.com/flowlint/flowlint/pkg/fileutil"
	"github.com/flowlint/flowlint/pkg/lint"
	"github.com/flowlint/flowlint/pkg/logger"
	"github.com/flowlint/flowlint/pkg/rules"
)

var fixLog = logger.New("cli:fix_command")

// NewFixCommand creates the fix command.
func NewFixCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix [file]...",
		Short: "Apply automatic fixes to workflow files",
		Long: `Apply the automatic fixes attached to fixable findings. If no files are
given, every workflow in the ` + constants.WorkflowDir + ` folder is fixed. Findings without
a fix are left for manual attention; rerun lint to see them.

Examples:
  ` + constants.CLIName + ` fix                          # Fix all workflows
  ` + constants.CLIName + ` fix workflows/orders.yml     # Fix one file
  ` + constants.CLIName + ` fix --dry-run                # Preview without writing`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			files := args
			if len(files) == 0 {
				files = fileutil.ListWorkflowFiles(constants.WorkflowDir)
			}
			if len(files) == 0 {
				return fmt.Errorf("no workflow files found in %s", constants.WorkflowDir)
			}

			return fixFiles(cmd, files, dryRun)
		},
	}

	cmd.Flags().Bool("dry-run", false, "Report what would be fixed without writing files")

	return cmd
}

func fixFiles(cmd *cobra.Command, files []string, dryRun bool) error {
	v := lint.NewValidator(rules.Default())
	out := cmd.OutOrStdout()

	var findings []lint.Finding
	for _, file := range files {
		findings = append(findings, v.ValidateFile(file, lint.Options{}).Findings...)
	}

	grouped := lint.GroupByPath(findings)
	paths := make([]string, 0, len(grouped))
	for path := range grouped {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	totalApplied := 0
	for _, path := range paths {
		if dryRun {
			previews, err := lint.PreviewFixes(path, grouped[path])
			if err != nil {
				return err
			}
			for _, p := range previews {
				if !p.WouldChange {
					continue
				}
				totalApplied++
				fmt.Fprintln(out, console.FormatInfoMessage(
					fmt.Sprintf("would fix [%s] in %s: %s", p.Finding.Rule, path, p.Finding.Fix.Description)))
			}
			continue
		}

		result := lint.ApplyFixes(path, grouped[path], false)
		if result.Applied == 0 {
			continue
		}
		totalApplied += result.Applied
		fixLog.Printf("Fixed %d finding(s) in %s", result.Applied, path)
		fmt.Fprintln(out, console.FormatSuccessMessage(
			fmt.Sprintf("fixed %d finding(s) in %s", result.Applied, path)))
	}

	if totalApplied == 0 {
		fmt.Fprintln(out, console.FormatInfoMessage("nothing to fix"))
	} else if dryRun {
		fmt.Fprintln(out, console.FormatInfoMessage(
			fmt.Sprintf("%d finding(s) would be fixed", totalApplied)))
	}
	return nil
}
