// Package fileutil provides utility functions for working with file paths and file operations.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/flowlint/flowlint/pkg/constants"
	"github.com/flowlint/flowlint/pkg/logger"
)

var log = logger.New("fileutil:fileutil")

// FileExists checks if a file exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists checks if a directory exists.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// AbsolutePath resolves a path to a cleaned absolute path.
func AbsolutePath(path string) (string, error) {
	if path == "" {
		return "", errors.New("path cannot be empty")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path for %s: %w", path, err)
	}
	return filepath.Clean(abs), nil
}

// IsWorkflowFile reports whether a path has a recognized workflow extension.
func IsWorkflowFile(path string) bool {
	return slices.Contains(constants.WorkflowExtensions, filepath.Ext(path))
}

// ListWorkflowFiles returns the workflow files directly under dir, in
// directory listing order. The result paths are absolute. A missing or
// unreadable directory yields an empty list, not an error: the caller decides
// whether an absent workflow folder is a violation.
func ListWorkflowFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("Cannot list workflow dir %s: %v", dir, err)
		return nil
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !IsWorkflowFile(entry.Name()) {
			continue
		}
		abs, err := AbsolutePath(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		files = append(files, abs)
	}
	log.Printf("Listed %d workflow files under %s", len(files), dir)
	return files
}

// FindProjectConfig returns the path of the project configuration file inside
// dir, trying the accepted file names in order. The second return value is
// false when no configuration file exists.
func FindProjectConfig(dir string) (string, bool) {
	for _, name := range constants.ConfigFileNames {
		candidate := filepath.Join(dir, name)
		if FileExists(candidate) {
			return candidate, true
		}
	}
	return "", false
}
