package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/flowlint/flowlint/pkg/lint"
)

// Content checks scan the raw document text line by line with a fresh pass
// per invocation; no scanner state survives between files.
var (
	expressionPattern = regexp.MustCompile(`\{\{([^{}]*)\}\}`)
	trailingPattern   = regexp.MustCompile(`[ \t]+$`)
	leadingTabPattern = regexp.MustCompile(`^\t+`)
	legacyNodePattern = regexp.MustCompile(`\$node\["([^"]+)"\]`)
)

// scanLines calls visit for every line (1-based) of content.
func scanLines(content string, visit func(lineNo int, line string)) {
	for i, line := range strings.Split(content, "\n") {
		visit(i+1, line)
	}
}

// normalizeExpressions pads placeholder braces to exactly one space on each
// side: {{expr}} becomes {{ expr }}.
func normalizeExpressions(text string) string {
	return expressionPattern.ReplaceAllStringFunc(text, func(match string) string {
		inner := strings.TrimSpace(expressionPattern.FindStringSubmatch(match)[1])
		if inner == "" {
			return match
		}
		return "{{ " + inner + " }}"
	})
}

// expressionSpacing flags placeholder tokens whose braces are not padded
// with exactly one space, a formatting detail the structural parser would
// normalize away.
func expressionSpacing() lint.ContentCheck {
	return lint.ContentCheck{
		Rule: RuleExpressionSpacing,
		Run: func(content, path string) []lint.Finding {
			var findings []lint.Finding
			scanLines(content, func(lineNo int, line string) {
				for _, m := range expressionPattern.FindAllStringSubmatch(line, -1) {
					inner := strings.TrimSpace(m[1])
					if inner == "" || m[1] == " "+inner+" " {
						continue
					}
					findings = append(findings, lint.Finding{
						Rule:     RuleExpressionSpacing,
						Severity: lint.SeverityNit,
						Path:     path,
						Message:  fmt.Sprintf("expression %s should be written {{ %s }}", m[0], inner),
						Line:     lineNo,
						Fixable:  true,
						Fix: &lint.FixDescriptor{
							Description: "pad expression braces with single spaces",
							Apply:       normalizeExpressions,
						},
					})
				}
			})
			return findings
		},
	}
}

// trailingWhitespace flags and strips whitespace at line ends.
func trailingWhitespace() lint.ContentCheck {
	return lint.ContentCheck{
		Rule: RuleTrailingWhitespace,
		Run: func(content, path string) []lint.Finding {
			var findings []lint.Finding
			scanLines(content, func(lineNo int, line string) {
				if !trailingPattern.MatchString(line) {
					return
				}
				findings = append(findings, lint.Finding{
					Rule:     RuleTrailingWhitespace,
					Severity: lint.SeverityNit,
					Path:     path,
					Message:  "line has trailing whitespace",
					Line:     lineNo,
					Fixable:  true,
					Fix: &lint.FixDescriptor{
						Description: "strip trailing whitespace",
						Apply: func(text string) string {
							lines := strings.Split(text, "\n")
							for i, l := range lines {
								lines[i] = trailingPattern.ReplaceAllString(l, "")
							}
							return strings.Join(lines, "\n")
						},
					},
				})
			})
			return findings
		},
	}
}

// tabIndentation flags tab-indented lines and rewrites each leading tab to
// two spaces.
func tabIndentation() lint.ContentCheck {
	return lint.ContentCheck{
		Rule: RuleTabIndentation,
		Run: func(content, path string) []lint.Finding {
			var findings []lint.Finding
			scanLines(content, func(lineNo int, line string) {
				if !leadingTabPattern.MatchString(line) {
					return
				}
				findings = append(findings, lint.Finding{
					Rule:     RuleTabIndentation,
					Severity: lint.SeverityShould,
					Path:     path,
					Message:  "line is indented with tabs",
					Line:     lineNo,
					Fixable:  true,
					Fix: &lint.FixDescriptor{
						Description: "replace leading tabs with two spaces each",
						Apply: func(text string) string {
							lines := strings.Split(text, "\n")
							for i, l := range lines {
								lines[i] = leadingTabPattern.ReplaceAllStringFunc(l, func(tabs string) string {
									return strings.Repeat("  ", len(tabs))
								})
							}
							return strings.Join(lines, "\n")
						},
					},
				})
			})
			return findings
		},
	}
}

// legacyExpression flags the retired $node["name"] accessor and rewrites it
// to the $("name") form.
func legacyExpression() lint.ContentCheck {
	return lint.ContentCheck{
		Rule: RuleLegacyExpression,
		Run: func(content, path string) []lint.Finding {
			var findings []lint.Finding
			scanLines(content, func(lineNo int, line string) {
				for _, m := range legacyNodePattern.FindAllStringSubmatch(line, -1) {
					findings = append(findings, lint.Finding{
						Rule:     RuleLegacyExpression,
						Severity: lint.SeverityShould,
						Path:     path,
						Message:  fmt.Sprintf(`legacy accessor %s should be written $(%q)`, m[0], m[1]),
						Line:     lineNo,
						Fixable:  true,
						Fix: &lint.FixDescriptor{
							Description: `rewrite $node["name"] accessors to $("name")`,
							Apply: func(text string) string {
								return legacyNodePattern.ReplaceAllString(text, `$$("$1")`)
							},
						},
					})
				}
			})
			return findings
		},
	}
}
