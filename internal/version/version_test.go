package version_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jpl-au/wpblock/internal/version"
)

func TestGet(t *testing.T) {
	info := version.Get()
	assert.Equal(t, version.Version, info.BuildTag)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Contains(t, info.String(), "Build Tag:    "+version.Short())
}
