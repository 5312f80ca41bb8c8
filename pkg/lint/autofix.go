package lint

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/flowlint/flowlint/pkg/logger"
)

var autofixLog = logger.New("lint:autofix")

// FixResult reports what the auto-fix orchestrator did to one file.
type FixResult struct {
	FilePath string `json:"filePath"`

	// Applied counts the fixes that actually changed the text. Zero in
	// dry-run mode and after a persistence failure.
	Applied int `json:"applied"`

	// Content is the file text after fixing, or empty when nothing was
	// fixable. After a persistence failure it is the original, untouched
	// text.
	Content string `json:"content"`

	// WouldFix lists the fixable findings in dry-run mode.
	WouldFix []Finding `json:"wouldFix,omitempty"`

	// FixedRules names the rules whose fixes changed the text, so the
	// validator can drop findings that no longer apply.
	FixedRules []string `json:"fixedRules,omitempty"`
}

// FixPreview reports, for one fixable finding, whether applying its fix to
// the file's current text would change anything.
type FixPreview struct {
	Finding     Finding `json:"finding"`
	WouldChange bool    `json:"wouldChange"`
}

// ApplyFixes applies the fixes attached to findings to the file at path.
//
// In dry-run mode the file is neither read nor written; the fixable subset
// is returned in WouldFix. In apply mode the file is read once, the fixes
// fold over its text in finding order, and the result is written back only
// when at least one fix changed something. A fix that panics is skipped and
// later fixes still run. A failed write reports Applied=0 and returns the
// original text, never a partial result.
//
// Fixes in one batch are expected to touch disjoint regions; the
// orchestrator does not arbitrate between two fixes rewriting the same text.
func ApplyFixes(path string, findings []Finding, dryRun bool) *FixResult {
	fixable := fixableSubset(findings)
	if len(fixable) == 0 {
		return &FixResult{FilePath: path}
	}

	if dryRun {
		autofixLog.Printf("Dry run for %s: %d fixable findings", path, len(fixable))
		return &FixResult{FilePath: path, WouldFix: fixable}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		autofixLog.Printf("Cannot read %s for fixing: %v", path, err)
		return &FixResult{FilePath: path}
	}
	original := string(raw)

	text := original
	applied := 0
	var fixedRules []string
	for _, f := range fixable {
		next, ok := safeApply(f, text)
		if !ok {
			continue
		}
		// Count a fix only when it changed the text it was given: a fix
		// whose precondition was already resolved earlier in the batch is
		// not double-counted.
		if next != text {
			applied++
			fixedRules = appendUnique(fixedRules, f.Rule)
			text = next
		}
	}

	if applied > 0 && text != original {
		if err := os.WriteFile(path, []byte(text), filePerm(path)); err != nil {
			autofixLog.Printf("Persisting fixes to %s failed: %v", path, err)
			return &FixResult{FilePath: path, Content: original}
		}
	}

	autofixLog.Printf("Applied %d of %d fixes to %s", applied, len(fixable), path)
	return &FixResult{FilePath: path, Applied: applied, Content: text, FixedRules: fixedRules}
}

// GroupByPath buckets a flat finding list by file path, preserving finding
// order within each bucket. Convenience for batch-fixing many files.
func GroupByPath(findings []Finding) map[string][]Finding {
	grouped := make(map[string][]Finding)
	for _, f := range findings {
		grouped[f.Path] = append(grouped[f.Path], f)
	}
	return grouped
}

// PreviewFixes reports, per fixable finding, whether its fix would change
// the file's current text. The file is only read, never written.
func PreviewFixes(path string, findings []Finding) ([]FixPreview, error) {
	fixable := fixableSubset(findings)
	if len(fixable) == 0 {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s for fix preview: %w", path, err)
	}
	text := string(raw)

	previews := make([]FixPreview, 0, len(fixable))
	for _, f := range fixable {
		next, ok := safeApply(f, text)
		previews = append(previews, FixPreview{
			Finding:     f,
			WouldChange: ok && next != text,
		})
	}
	return previews, nil
}

// fixableSubset selects findings that carry a usable fix, in order.
func fixableSubset(findings []Finding) []Finding {
	var fixable []Finding
	for _, f := range findings {
		if f.Fixable && f.Fix != nil && f.Fix.Apply != nil {
			fixable = append(fixable, f)
		}
	}
	return fixable
}

// safeApply runs one fix function, treating a panic as a skipped fix.
func safeApply(f Finding, text string) (result string, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			autofixLog.Printf("Fix for rule %s panicked and was skipped: %v", f.Rule, rec)
			result, ok = "", false
		}
	}()
	return f.Fix.Apply(text), true
}

func appendUnique(rules []string, rule string) []string {
	for _, r := range rules {
		if r == rule {
			return rules
		}
	}
	return append(rules, rule)
}

// filePerm preserves the file's existing mode when rewriting, defaulting to
// 0644 when the mode cannot be read.
func filePerm(path string) fs.FileMode {
	info, err := os.Stat(path)
	if err != nil {
		return 0o644
	}
	return info.Mode().Perm()
}
