package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/flowlint/flowlint/pkg/console"
	"github.com/flowlint/flowlint/pkg/constants"
	"github.com/flowlint/flowlint/pkg/deploy"
	"github.com/flowlint/flowlint/pkg/fileutil"
	"github.com/flowlint/flowlint/pkg/lint"
	"github.com/flowlint/flowlint/pkg/logger"
	"github.com/flowlint/flowlint/pkg/project"
	"github.com/flowlint/flowlint/pkg/rules"
)

var deployCmdLog = logger.New("cli:deploy_command")

// NewDeployCommand creates the deploy command.
func NewDeployCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy [folder]",
		Short: "Push a validated project to a flow engine",
		Long: `Validate a project folder and push its workflows to a flow engine
instance. Deployment is refused while the project has blocking findings.

The engine endpoint defaults to the FLOWLINT_ENDPOINT environment
variable, the token to FLOWLINT_TOKEN.

Examples:
  flowlint deploy                              # Deploy the current directory
  flowlint deploy ./shop-sync                  # Deploy a specific project
  flowlint deploy --endpoint https://flow.internal.example.com`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			endpoint, _ := cmd.Flags().GetString("endpoint")
			token, _ := cmd.Flags().GetString("token")

			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			if token == "" {
				return errors.New("no deploy token: pass --token or set FLOWLINT_TOKEN")
			}

			return runDeploy(cmd, dir, endpoint, token)
		},
	}

	cmd.Flags().String("endpoint", envOr("FLOWLINT_ENDPOINT", constants.DefaultDeployEndpoint), "Flow engine base URL")
	cmd.Flags().String("token", os.Getenv("FLOWLINT_TOKEN"), "Flow engine API token")

	return cmd
}

func runDeploy(cmd *cobra.Command, dir, endpoint, token string) error {
	out := cmd.OutOrStdout()

	v := lint.NewValidator(rules.Default())
	result := v.ValidateProject(dir, lint.Options{})
	if !result.Valid {
		writeTextResult(out, result)
		return fmt.Errorf("refusing to deploy: project has %d blocking finding(s)", result.Summary.Must)
	}

	cfg, _, err := project.Load(dir)
	if err != nil {
		return fmt.Errorf("loading project configuration: %w", err)
	}

	deployCmdLog.Printf("Deploying project %s to %s", cfg.Name, endpoint)
	client := deploy.New(endpoint, token)
	if err := client.Ping(); err != nil {
		return fmt.Errorf("engine at %s is not reachable: %w", endpoint, err)
	}

	files := fileutil.ListWorkflowFiles(filepath.Join(dir, constants.WorkflowDir))
	if len(files) == 0 {
		return errors.New("project has no workflows to deploy")
	}

	collector := NewErrorCollector(false)
	for _, file := range files {
		content, readErr := os.ReadFile(file)
		if readErr != nil {
			collector.Add(fmt.Errorf("reading %s: %w", file, readErr))
			continue
		}

		name := filepath.Base(file)
		deployed, pushErr := client.PushWorkflow(cfg.Name, name, content)
		if pushErr != nil {
			collector.Add(fmt.Errorf("pushing %s: %w", name, pushErr))
			continue
		}
		fmt.Fprintln(out, console.FormatSuccessMessage(
			fmt.Sprintf("deployed %s (version %d)", name, deployed.Version)))
	}

	if err := collector.FormattedError("deploy"); err != nil {
		return err
	}
	fmt.Fprintln(out, console.FormatSuccessMessage(
		fmt.Sprintf("deployed %d workflow(s) to %s", len(files), endpoint)))
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
