// Package constants defines shared constant values used across flowlint.
package constants

// CLIName is the binary name shown in help text and examples.
const CLIName = "flowlint"

// WorkflowDir is the conventional subfolder holding a project's workflow files.
const WorkflowDir = "workflows"

// ConfigFileNames lists the accepted project configuration file names, in
// lookup order.
var ConfigFileNames = []string{"flowlint.yml", "flowlint.yaml"}

// WorkflowExtensions lists the file extensions recognized as workflow
// documents inside WorkflowDir.
var WorkflowExtensions = []string{".yml", ".yaml"}

// TriggerTypePrefix marks node types that can start a workflow.
const TriggerTypePrefix = "trigger."

// ErrorBranch is the connection branch reserved for error routing.
const ErrorBranch = "error"

// MainBranch is the default connection branch.
const MainBranch = "main"

// DefaultDeployEndpoint is the base URL used by the deploy command when the
// FLOWLINT_ENDPOINT environment variable is not set.
const DefaultDeployEndpoint = "https://api.flowlint.dev"
