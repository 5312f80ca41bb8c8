//go:build !integration

package console

import (
	"testing"

	"github.com/charmbracelet/x/exp/golden"
)

// TestGolden_TableRendering locks the table layout used by finding reports.
func TestGolden_TableRendering(t *testing.T) {
	tests := []struct {
		name   string
		config TableConfig
	}{
		{
			name: "simple_table",
			config: TableConfig{
				Headers: []string{"Rule", "Severity", "Message"},
				Rows: [][]string{
					{"missing-trigger", "must", "workflow has no trigger node"},
					{"orphan-node", "should", "node fetch is not connected"},
					{"expression-spacing", "nit", "expression braces need spacing"},
				},
			},
		},
		{
			name: "table_with_title",
			config: TableConfig{
				Title:   "Findings for sync-orders.yml",
				Headers: []string{"Rule", "Severity"},
				Rows: [][]string{
					{"config-missing", "must"},
				},
			},
		},
		{
			name: "empty_table",
			config: TableConfig{
				Headers: []string{},
				Rows:    [][]string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := RenderTable(tt.config)
			golden.RequireEqual(t, []byte(output))
		})
	}
}

func TestMessageFormattingPlain(t *testing.T) {
	origStyled := styled
	styled = false
	defer func() { styled = origStyled }()

	tests := []struct {
		got  string
		want string
	}{
		{FormatErrorMessage("broken"), "✗ broken"},
		{FormatWarningMessage("shaky"), "⚠ shaky"},
		{FormatInfoMessage("fyi"), "ℹ fyi"},
		{FormatSuccessMessage("done"), "✓ done"},
		{FormatDimMessage("detail"), "detail"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}
