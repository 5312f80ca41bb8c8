package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/flowlint/flowlint/pkg/lint"
	"github.com/flowlint/flowlint/pkg/logger"
	"github.com/flowlint/flowlint/pkg/rules"
)

var validateLog = logger.New("cli:validate_command")

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [folder]",
		Short: "Validate a whole project folder",
		Long: `Validate a project folder: its flowlint configuration plus every workflow
under the workflows subfolder. Defaults to the current directory.

Examples:
  flowlint validate                    # Validate the current directory
  flowlint validate ./shop-sync        # Validate a specific project
  flowlint validate --skip-workflows   # Project-level checks only
  flowlint validate --strict           # Treat should findings as blocking
  flowlint validate -o json            # Emit the report as JSON`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := filterOptions(cmd)
			opts.SkipWorkflows, _ = cmd.Flags().GetBool("skip-workflows")
			output, _ := cmd.Flags().GetString("output")

			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			validateLog.Printf("Validating project folder %s", dir)

			v := lint.NewValidator(rules.Default())
			result := v.ValidateProject(dir, opts)

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
	cmd.Flags().Bool("skip-workflows", false, "Run project-level checks only")

	return cmd
}
