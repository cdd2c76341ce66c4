package blocktype_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jpl-au/wpblock/internal/blocktype"
	"github.com/jpl-au/wpblock/internal/registry"
	"github.com/jpl-au/wpblock/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	ctx := context.Background()
	src := testutil.Site(t)

	tests := []struct {
		name string
		opts blocktype.ListOptions
		want []string
	}{
		{"all in registration order", blocktype.ListOptions{}, []string{"core/paragraph", "core/latest-posts", "core/image", "acme/hero"}},
		{"namespace", blocktype.ListOptions{Namespace: "acme"}, []string{"acme/hero"}},
		{"namespace needs slash boundary", blocktype.ListOptions{Namespace: "acm"}, []string{}},
		{"dynamic", blocktype.ListOptions{Dynamic: true}, []string{"core/latest-posts", "acme/hero"}},
		{"static", blocktype.ListOptions{Static: true}, []string{"core/paragraph", "core/image"}},
		{"namespace and dynamic", blocktype.ListOptions{Namespace: "core", Dynamic: true}, []string{"core/latest-posts"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := blocktype.List(ctx, src, tc.opts)
			require.NoError(t, err)
			assert.Equal(t, tc.want, blocktype.IDs(got))
		})
	}
}

// failingSource fails the test if the registry is read.
type failingSource struct{ t *testing.T }

func (f failingSource) BlockTypes(context.Context) ([]registry.BlockType, error) {
	f.t.Fatal("registry accessed")
	return nil, nil
}

func (f failingSource) BlockType(context.Context, string) (registry.BlockType, error) {
	f.t.Fatal("registry accessed")
	return registry.BlockType{}, nil
}

func TestList_DynamicAndStatic(t *testing.T) {
	_, err := blocktype.List(context.Background(), failingSource{t}, blocktype.ListOptions{Dynamic: true, Static: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, blocktype.ErrDynamicStatic))
	assert.Equal(t, "--dynamic and --static are mutually exclusive.", err.Error())
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	src := testutil.Site(t)

	bt, err := blocktype.Get(ctx, src, "core/paragraph")
	require.NoError(t, err)
	assert.Equal(t, "Paragraph", bt.Title.Or(""))

	_, err = blocktype.Get(ctx, src, "core/nope")
	require.Error(t, err)
	assert.Equal(t, "Block type 'core/nope' is not registered.", err.Error())
	assert.True(t, errors.Is(err, registry.ErrNotRegistered))
}

func TestExists(t *testing.T) {
	ctx := context.Background()
	src := testutil.Site(t)

	ok, err := blocktype.Exists(ctx, src, "core/paragraph")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = blocktype.Exists(ctx, src, "core/doesnotexist")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRecord(t *testing.T) {
	ctx := context.Background()
	bt, err := blocktype.Get(ctx, testutil.Site(t), "acme/hero")
	require.NoError(t, err)

	rec := blocktype.Record(bt)
	names := make([]string, len(rec))
	for i, f := range rec {
		names[i] = f.Name
	}
	assert.Equal(t, blocktype.Fields.All, names)

	desc, ok := rec.Get("description")
	assert.True(t, ok)
	assert.Nil(t, desc, "absent description projects to null")

	parent, _ := rec.Get("parent")
	assert.Equal(t, []string{"core/group"}, parent)

	dyn, _ := rec.Get("is_dynamic")
	assert.Equal(t, true, dyn)
}
