//go:build !integration

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCommandNonInteractive(t *testing.T) {
	dir := t.TempDir()

	out, err := runCommand(t, "init", dir, "--name", "shop-sync", "--engine-version", "v1.4.0")
	require.NoError(t, err)
	assert.Contains(t, out, "created")

	config, readErr := os.ReadFile(filepath.Join(dir, "flowlint.yml"))
	require.NoError(t, readErr)
	assert.Contains(t, string(config), "name: shop-sync")
	assert.Contains(t, string(config), "engineVersion: v1.4.0")

	assert.FileExists(t, filepath.Join(dir, "workflows", "sample.yml"))

	// The scaffolded project validates cleanly.
	_, err = runCommand(t, "validate", dir)
	require.NoError(t, err)
}

func TestInitCommandRefusesExistingProject(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flowlint.yml"), []byte("name: existing\n"), 0644))

	_, err := runCommand(t, "init", dir, "--name", "again")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already contains")
}

func TestInitCommandRejectsBadEngineVersion(t *testing.T) {
	_, err := runCommand(t, "init", t.TempDir(), "--name", "p", "--engine-version", "1.4")
	require.Error(t, err)
}
