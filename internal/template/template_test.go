package template_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jpl-au/wpblock/internal/registry"
	"github.com/jpl-au/wpblock/internal/template"
	"github.com/jpl-au/wpblock/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	ctx := context.Background()
	src := testutil.Site(t)

	tests := []struct {
		name string
		opts template.ListOptions
		want []string
	}{
		{"default type", template.ListOptions{}, []string{"twentytwentyfour//index", "twentytwentyfour//single", "twentytwentyfour//landing"}},
		{"parts", template.ListOptions{Type: registry.TemplateTypePart}, []string{"twentytwentyfour//header", "twentytwentyfour//footer"}},
		{"slug set", template.ListOptions{Slugs: []string{"index", "landing"}}, []string{"twentytwentyfour//index", "twentytwentyfour//landing"}},
		{"source", template.ListOptions{Source: "custom"}, []string{"twentytwentyfour//landing"}},
		{"post type", template.ListOptions{PostType: "post"}, []string{"twentytwentyfour//single"}},
		{"area on parts", template.ListOptions{Type: registry.TemplateTypePart, Area: "footer"}, []string{"twentytwentyfour//footer"}},
		{"area ignored for templates", template.ListOptions{Area: "footer"}, []string{"twentytwentyfour//index", "twentytwentyfour//single", "twentytwentyfour//landing"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := template.List(ctx, src, tc.opts)
			require.NoError(t, err)
			assert.Equal(t, tc.want, template.IDs(got))
		})
	}
}

func TestList_InvalidType(t *testing.T) {
	_, err := template.List(context.Background(), testutil.Site(t), template.ListOptions{Type: "page"})
	assert.True(t, errors.Is(err, template.ErrInvalidType))
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	src := testutil.Site(t)

	tpl, err := template.Get(ctx, src, "twentytwentyfour//single", "")
	require.NoError(t, err)
	rec := template.Record(tpl)
	title, _ := rec.Get("title")
	assert.Equal(t, "Single Posts", title)
	area, _ := rec.Get("area")
	assert.Equal(t, "", area)
	typ, _ := rec.Get("type")
	assert.Equal(t, registry.TemplateTypePage, typ)

	part, err := template.Get(ctx, src, "twentytwentyfour//header", registry.TemplateTypePart)
	require.NoError(t, err)
	area, _ = template.Record(part).Get("area")
	assert.Equal(t, "header", area)

	_, err = template.Get(ctx, src, "twentytwentyfour//header", "")
	require.Error(t, err)
	assert.Equal(t, "Block template 'twentytwentyfour//header' not found.", err.Error())
	assert.True(t, errors.Is(err, registry.ErrNotRegistered))
}
