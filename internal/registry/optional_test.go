package registry_test

import (
	"encoding/json"
	"testing"

	"github.com/jpl-au/wpblock/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestOptional_JSON(t *testing.T) {
	var p registry.Pattern
	err := json.Unmarshal([]byte(`{"name":"a/b","title":"Hero","inserter":false,"viewportWidth":null}`), &p)
	require.NoError(t, err)

	title, ok := p.Title.Get()
	assert.True(t, ok)
	assert.Equal(t, "Hero", title)

	assert.True(t, p.Inserter.IsSet())
	assert.False(t, p.Inserter.Or(true))

	assert.False(t, p.ViewportWidth.IsSet(), "null decodes as absent")
	assert.False(t, p.Categories.IsSet(), "missing key decodes as absent")
	assert.Nil(t, p.ViewportWidth.Value())
}

func TestOptional_YAML(t *testing.T) {
	src := `
name: core/button
title: Button
keywords: [link, cta]
icon: ~
`
	var bt registry.BlockType
	require.NoError(t, yaml.Unmarshal([]byte(src), &bt))

	assert.Equal(t, "Button", bt.Title.Or(""))
	assert.Equal(t, []string{"link", "cta"}, bt.Keywords.Or(nil))
	assert.False(t, bt.Icon.IsSet())
	assert.False(t, bt.Category.IsSet())
}

func TestOptional_MarshalOmitsAbsent(t *testing.T) {
	c := registry.PatternCategory{Name: "featured", Label: registry.Some("Featured")}

	b, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"featured","label":"Featured"}`, string(b))

	y, err := yaml.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, "name: featured\nlabel: Featured\n", string(y))
}

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want registry.Text
	}{
		{"plain string", `"Single"`, "Single"},
		{"rendered wins", `{"raw":"Raw","rendered":"Rendered"}`, "Rendered"},
		{"raw only", `{"raw":"<!-- wp:group /-->","block_version":1}`, "<!-- wp:group /-->"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got registry.Text
			require.NoError(t, json.Unmarshal([]byte(tc.in), &got))
			assert.Equal(t, tc.want, got)
		})
	}

	var tpl registry.Template
	require.NoError(t, yaml.Unmarshal([]byte("title:\n  raw: a\n  rendered: b\n"), &tpl))
	assert.Equal(t, registry.Text("b"), tpl.Title)
}
