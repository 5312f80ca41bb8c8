package console

import "os"

// IsAccessibleMode reports whether interactive prompts should use the
// accessible (non-TUI) rendering mode, following the charm convention of
// honoring the ACCESSIBLE environment variable.
func IsAccessibleMode() bool {
	return os.Getenv("ACCESSIBLE") != ""
}
