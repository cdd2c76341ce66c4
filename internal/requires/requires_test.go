package requires_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpl-au/wpblock/internal/requires"
)

func TestAtLeast(t *testing.T) {
	tests := []struct {
		have, min string
		ok        bool
	}{
		{"6.5.3", "6.5", true},
		{"6.5", "6.5", true},
		{"6.4.2", "6.5", false},
		{"5.9", "5.3", true},
		{"6.5-RC1", "6.5", true},
		{"4.9.8", "5.0", false},
	}
	for _, tt := range tests {
		t.Run(tt.have+">="+tt.min, func(t *testing.T) {
			err := requires.AtLeast(tt.have, tt.min)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, requires.ErrTooOld))
			assert.Equal(t, "Requires WordPress "+tt.min+" or greater.", err.Error())
		})
	}
}

func TestAtLeast_BadVersion(t *testing.T) {
	err := requires.AtLeast("latest", "5.0")
	require.Error(t, err)
	assert.False(t, errors.Is(err, requires.ErrTooOld))
}

func TestResource(t *testing.T) {
	assert.NoError(t, requires.Resource("binding", "6.5.0"))
	assert.EqualError(t, requires.Resource("binding", "6.4"), "Requires WordPress 6.5 or greater.")
	assert.EqualError(t, requires.Resource("template", "5.8.1"), "Requires WordPress 5.9 or greater.")
	assert.NoError(t, requires.Resource("binding", ""), "unknown version skips the gate")
	assert.NoError(t, requires.Resource("config", "1.0"), "ungated commands pass")
}
