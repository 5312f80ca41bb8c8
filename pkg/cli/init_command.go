package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/flowlint/flowlint/pkg/console"
	"github.com/flowlint/flowlint/pkg/constants"
	"github.com/flowlint/flowlint/pkg/fileutil"
	"github.com/flowlint/flowlint/pkg/logger"
)

var initLog = logger.New("cli:init_command")

const sampleWorkflow = `name: sample
nodes:
  - id: start
    name: Start
    type: trigger.manual
  - id: log
    name: Log
    type: data.set
    params:
      message: "hello from {{ $workflow.name }}"
connections:
  - from: start
    to: log
`

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [folder]",
		Short: "Scaffold a new flow project",
		Long: `Create a flowlint project in the given folder (default: the current
directory): a flowlint.yml configuration, a workflows folder, and an
optional sample workflow. Prompts for the project details unless --name
is given.

Examples:
  flowlint init                       # Interactive setup in .
  flowlint init ./shop-sync           # Interactive setup in a folder
  flowlint init --name shop-sync      # Non-interactive setup`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			engineVersion, _ := cmd.Flags().GetString("engine-version")

			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			if _, found := fileutil.FindProjectConfig(dir); found {
				return fmt.Errorf("%s already contains a flowlint configuration", dir)
			}

			withSample := true
			if name == "" {
				var err error
				name, engineVersion, withSample, err = promptProjectDetails(dir, engineVersion)
				if err != nil {
					return fmt.Errorf("failed to get project details: %w", err)
				}
			}
			if engineVersion != "" && !semver.IsValid(engineVersion) {
				return fmt.Errorf("engine version %q is not a valid semantic version", engineVersion)
			}

			return scaffoldProject(cmd, dir, name, engineVersion, withSample)
		},
	}

	cmd.Flags().String("name", "", "Project name (skips the interactive prompt)")
	cmd.Flags().String("engine-version", "", "Minimum engine version, e.g. v1.4.0")

	return cmd
}

func promptProjectDetails(dir string, engineVersion string) (string, string, bool, error) {
	name := filepath.Base(absOrSelf(dir))
	withSample := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Value(&name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("project name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Minimum engine version").
				Description("Leave empty to accept any engine version").
				Placeholder("v1.4.0").
				Value(&engineVersion).
				Validate(func(s string) error {
					if s != "" && !semver.IsValid(s) {
						return fmt.Errorf("expected a semantic version like v1.4.0")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Create a sample workflow?").
				Value(&withSample),
		),
	).WithAccessible(console.IsAccessibleMode())

	if err := form.Run(); err != nil {
		return "", "", false, err
	}
	return strings.TrimSpace(name), engineVersion, withSample, nil
}

func scaffoldProject(cmd *cobra.Command, dir, name, engineVersion string, withSample bool) error {
	initLog.Printf("Scaffolding project %s in %s", name, dir)
	out := cmd.OutOrStdout()

	if err := os.MkdirAll(filepath.Join(dir, constants.WorkflowDir), 0o755); err != nil {
		return fmt.Errorf("creating workflows folder: %w", err)
	}

	var config strings.Builder
	fmt.Fprintf(&config, "name: %s\n", name)
	if engineVersion != "" {
		fmt.Fprintf(&config, "engineVersion: %s\n", engineVersion)
	}
	if withSample {
		config.WriteString("workflows:\n  - workflows/sample.yml\n")
	}

	configPath := filepath.Join(dir, constants.ConfigFileNames[0])
	if err := os.WriteFile(configPath, []byte(config.String()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", configPath, err)
	}
	fmt.Fprintln(out, console.FormatSuccessMessage("created "+configPath))

	if withSample {
		samplePath := filepath.Join(dir, constants.WorkflowDir, "sample.yml")
		if err := os.WriteFile(samplePath, []byte(sampleWorkflow), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", samplePath, err)
		}
		fmt.Fprintln(out, console.FormatSuccessMessage("created "+samplePath))
	}

	fmt.Fprintln(out, console.FormatInfoMessage("run '"+constants.CLIName+" validate "+dir+"' to check the project"))
	return nil
}

func absOrSelf(dir string) string {
	abs, err := fileutil.AbsolutePath(dir)
	if err != nil {
		return dir
	}
	return abs
}
