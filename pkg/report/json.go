// Package report serializes validation results for machine consumers:
// a stable JSON shape and SARIF 2.1.0.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/flowlint/flowlint/pkg/lint"
)

// WriteJSON writes the stable JSON result shape. Fix descriptors are
// behavior, not data, and are not serialized; the fixable flag is.
func WriteJSON(w io.Writer, result *lint.ValidationResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encoding validation result: %w", err)
	}
	return nil
}
