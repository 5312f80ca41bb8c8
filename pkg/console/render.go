// Package console provides styled terminal output helpers: message
// formatting with severity symbols and a plain-text table renderer.
//
// Styling is applied only when stdout is a terminal, so that piped and
// captured output stays free of escape sequences.
package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/flowlint/flowlint/pkg/tty"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle     = lipgloss.NewStyle().Faint(true)

	// styled may be overridden in tests for deterministic output.
	styled = tty.IsStdoutTerminal()
)

func apply(style lipgloss.Style, message string) string {
	if !styled {
		return message
	}
	return style.Render(message)
}

// FormatErrorMessage formats an error message for console output.
func FormatErrorMessage(message string) string {
	return apply(errorStyle, "✗ "+message)
}

// FormatWarningMessage formats a warning message for console output.
func FormatWarningMessage(message string) string {
	return apply(warningStyle, "⚠ "+message)
}

// FormatInfoMessage formats an informational message for console output.
func FormatInfoMessage(message string) string {
	return apply(infoStyle, "ℹ "+message)
}

// FormatSuccessMessage formats a success message for console output.
func FormatSuccessMessage(message string) string {
	return apply(successStyle, "✓ "+message)
}

// FormatDimMessage formats secondary detail text for console output.
func FormatDimMessage(message string) string {
	return apply(dimStyle, message)
}

// TableConfig describes a table to render.
type TableConfig struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTable renders a table with aligned columns. Output is plain text so
// it remains stable under golden tests; the caller styles the surrounding
// report.
func RenderTable(config TableConfig) string {
	if len(config.Headers) == 0 {
		return ""
	}

	widths := make([]int, len(config.Headers))
	for i, h := range config.Headers {
		widths[i] = len([]rune(h))
	}
	for _, row := range config.Rows {
		for i, cell := range row {
			if i < len(widths) && len([]rune(cell)) > widths[i] {
				widths[i] = len([]rune(cell))
			}
		}
	}

	var b strings.Builder
	if config.Title != "" {
		b.WriteString(config.Title)
		b.WriteString("\n\n")
	}

	writeRow := func(cells []string) {
		for i := range config.Headers {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			if i == len(config.Headers)-1 {
				b.WriteString(cell)
			} else {
				fmt.Fprintf(&b, "%-*s  ", widths[i], cell)
			}
		}
		b.WriteString("\n")
	}

	writeRow(config.Headers)
	separators := make([]string, len(config.Headers))
	for i, w := range widths {
		separators[i] = strings.Repeat("-", w)
	}
	writeRow(separators)
	for _, row := range config.Rows {
		writeRow(row)
	}

	return b.String()
}
