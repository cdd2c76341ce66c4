package guide_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpl-au/wpblock/guide"
)

func TestGet(t *testing.T) {
	overview, err := guide.Get("")
	require.NoError(t, err)
	assert.Contains(t, overview, "wpblock")

	page, err := guide.Get("Backends.md")
	require.NoError(t, err)
	assert.Contains(t, page, "snapshot")

	_, err = guide.Get("nope")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	topics, err := guide.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"backends", "config", "mcp", "synced-patterns", "templates"}, topics)
}
