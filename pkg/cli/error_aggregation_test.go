//go:build !integration

package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCollectorCollects(t *testing.T) {
	c := NewErrorCollector(false)
	assert.False(t, c.HasErrors())
	assert.NoError(t, c.Error())

	require.NoError(t, c.Add(errors.New("first")))
	require.NoError(t, c.Add(nil))
	require.NoError(t, c.Add(errors.New("second")))

	assert.True(t, c.HasErrors())
	assert.Equal(t, 2, c.Count())

	err := c.Error()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first")
	assert.Contains(t, err.Error(), "second")
}

func TestErrorCollectorFailFast(t *testing.T) {
	c := NewErrorCollector(true)
	first := errors.New("boom")
	assert.Equal(t, first, c.Add(first))
	assert.False(t, c.HasErrors())
}

func TestErrorCollectorFormattedError(t *testing.T) {
	c := NewErrorCollector(false)
	require.NoError(t, c.Add(errors.New("only")))
	assert.Equal(t, "only", c.FormattedError("deploy").Error())

	require.NoError(t, c.Add(errors.New("another")))
	err := c.FormattedError("deploy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Found 2 deploy errors:")
	assert.Contains(t, err.Error(), "another")
}
