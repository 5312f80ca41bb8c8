package cli

import (
	"github.com/spf13/cobra"

	"github.com/flowlint/flowlint/pkg/constants"
	"github.com/flowlint/flowlint/pkg/lint"
)

// NewRootCommand builds the flowlint command tree.
func NewRootCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   constants.CLIName,
		Short: "Lint and auto-fix flow workflow projects",
		Long: `flowlint validates flow projects: the project configuration and every
workflow document under the workflows folder. Findings are tiered as
must (blocking), should (recommended), and nit (suggestion); many nits
carry an automatic fix.

Set DEBUG=* (or a namespace pattern like DEBUG=lint:*) for debug logging.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewLintCommand())
	cmd.AddCommand(NewValidateCommand())
	cmd.AddCommand(NewFixCommand())
	cmd.AddCommand(NewWatchCommand())
	cmd.AddCommand(NewInitCommand())
	cmd.AddCommand(NewDeployCommand())

	return cmd
}

// addFilterFlags registers the finding-filter flags shared by the commands
// that run validations.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("strict", false, "Escalate should findings to must")
	cmd.Flags().StringSlice("rules", nil, "Keep only findings with these rule ids")
	cmd.Flags().StringSlice("exclude-rules", nil, "Drop findings with these rule ids")
}

// addOutputFlag registers the report format flag.
func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", OutputText, "Output format: text, json, or sarif")
}

// filterOptions reads the shared filter flags into validation options.
func filterOptions(cmd *cobra.Command) lint.Options {
	strict, _ := cmd.Flags().GetBool("strict")
	rules, _ := cmd.Flags().GetStringSlice("rules")
	excludeRules, _ := cmd.Flags().GetStringSlice("exclude-rules")

	return lint.Options{
		Strict:       strict,
		Rules:        rules,
		ExcludeRules: excludeRules,
	}
}
