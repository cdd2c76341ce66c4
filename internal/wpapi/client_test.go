package wpapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jpl-au/wpblock/internal/registry"
	"github.com/jpl-au/wpblock/internal/wpapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const blockTypesJSON = `[
  {"name":"core/paragraph","title":"Paragraph","description":"Text.","category":"text","is_dynamic":false,
   "keywords":["text"],"parent":null,"api_version":3,
   "styles":[]},
  {"name":"core/button","title":"Button","category":"design","is_dynamic":false,
   "styles":[{"name":"fill","label":"Fill","isDefault":true},{"name":"outline","label":"Outline","isDefault":false}]}
]`

const patternsJSON = `[
  {"name":"acme/hero","title":"Hero","description":"","viewport_width":1200,"inserter":false,
   "categories":["featured"],"keywords":[],"block_types":["core/cover"],"content":"<!-- wp:cover /-->"}
]`

const templateJSON = `{"id":"tt4//single","slug":"single","theme":"tt4","source":"theme","origin":null,
  "title":{"raw":"Single","rendered":"Single Posts"},"content":{"raw":"<!-- wp:post-content /-->","block_version":1},
  "description":"","status":"publish","has_theme_file":true,"is_custom":false,"author":0}`

// fakeSite serves a handful of registry routes.
func fakeSite(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := strings.TrimPrefix(r.URL.Path, "/wp-json/wp/v2/")
		w.Header().Set("Content-Type", "application/json")
		switch route {
		case "block-types":
			w.Write([]byte(blockTypesJSON))
		case "block-types/core/paragraph":
			w.Write([]byte(`{"name":"core/paragraph","title":"Paragraph","is_dynamic":false}`))
		case "block-types/core/button":
			w.Write([]byte(`{"name":"core/button","styles":[{"name":"fill","label":"Fill","isDefault":true}]}`))
		case "block-patterns/patterns":
			w.Write([]byte(patternsJSON))
		case "block-patterns/categories":
			w.Write([]byte(`[{"name":"featured","label":"Featured","description":"Curated."}]`))
		case "templates":
			w.Write([]byte("[" + templateJSON + "]"))
		case "templates/tt4//single":
			w.Write([]byte(templateJSON))
		case "template-parts":
			w.Write([]byte(`[{"id":"tt4//header","slug":"header","type":"wp_template_part","area":"header","title":{"raw":"Header"},"content":{"raw":""}}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"code":"rest_no_route","message":"No route was found matching the URL and request method.","data":{"status":404}}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T, url string) *wpapi.Client {
	t.Helper()
	c, err := wpapi.New(wpapi.Config{URL: url, Version: "6.5"})
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	_, err := wpapi.New(wpapi.Config{})
	assert.True(t, errors.Is(err, wpapi.ErrNoURL))

	_, err = wpapi.New(wpapi.Config{URL: "ftp://example.test"})
	assert.Error(t, err)
}

func TestClient_BlockTypes(t *testing.T) {
	c := newClient(t, fakeSite(t).URL)
	ctx := context.Background()

	types, err := c.BlockTypes(ctx)
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, "core/paragraph", types[0].Name)
	assert.Equal(t, []string{"text"}, types[0].Keywords.Or(nil))
	assert.False(t, types[0].Parent.IsSet(), "null parent is absent")
	assert.Equal(t, 3, types[0].APIVersion.Or(0))

	bt, err := c.BlockType(ctx, "core/paragraph")
	require.NoError(t, err)
	assert.Equal(t, "Paragraph", bt.Title.Or(""))

	_, err = c.BlockType(ctx, "core/missing")
	assert.True(t, errors.Is(err, registry.ErrNotRegistered))

	v, err := c.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, "6.5", v)
}

func TestClient_Patterns(t *testing.T) {
	c := newClient(t, fakeSite(t).URL)
	ctx := context.Background()

	p, err := c.Pattern(ctx, "acme/hero")
	require.NoError(t, err)
	assert.Equal(t, 1200, p.ViewportWidth.Or(0))
	assert.Equal(t, []string{"core/cover"}, p.BlockTypes.Or(nil))
	assert.False(t, p.Inserter.Or(true))
	assert.False(t, p.PostTypes.IsSet())

	_, err = c.Pattern(ctx, "acme/none")
	assert.True(t, errors.Is(err, registry.ErrNotRegistered))

	cat, err := c.PatternCategory(ctx, "featured")
	require.NoError(t, err)
	assert.Equal(t, "Featured", cat.Label.Or(""))
}

func TestClient_Styles(t *testing.T) {
	c := newClient(t, fakeSite(t).URL)
	ctx := context.Background()

	all, err := c.Styles(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "core/button", all[0].BlockName)
	assert.True(t, all[0].IsDefault.Or(false))

	st, err := c.Style(ctx, "core/button", "fill")
	require.NoError(t, err)
	assert.Equal(t, "Fill", st.Label.Or(""))

	none, err := c.BlockStyles(ctx, "acme/unknown")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = c.Style(ctx, "core/button", "ghost")
	assert.True(t, errors.Is(err, registry.ErrNotRegistered))
}

func TestClient_Templates(t *testing.T) {
	c := newClient(t, fakeSite(t).URL)
	ctx := context.Background()

	list, err := c.Templates(ctx, registry.TemplateTypePage)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, registry.TemplateTypePage, list[0].Type, "type filled from the route")
	assert.Equal(t, registry.Text("Single Posts"), list[0].Title)

	tpl, err := c.Template(ctx, "tt4//single", registry.TemplateTypePage)
	require.NoError(t, err)
	assert.Equal(t, registry.Text("<!-- wp:post-content /-->"), tpl.Content)

	parts, err := c.Templates(ctx, registry.TemplateTypePart)
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, "header", parts[0].Area.Or(""))

	_, err = c.Template(ctx, "tt4//nope", registry.TemplateTypePage)
	assert.True(t, errors.Is(err, registry.ErrNotRegistered))
}

func TestClient_BindingsUnsupported(t *testing.T) {
	c := newClient(t, fakeSite(t).URL)
	_, err := c.Bindings(context.Background())
	assert.True(t, errors.Is(err, registry.ErrUnsupported))
}

func TestClient_AuthAndErrors(t *testing.T) {
	var gotUser, gotPass string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotPass, _ = r.BasicAuth()
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]any{"code": "rest_forbidden", "message": "Sorry, you are not allowed to do that."})
	}))
	t.Cleanup(srv.Close)

	c, err := wpapi.New(wpapi.Config{URL: srv.URL + "/", User: "admin", AppPassword: "abcd efgh"})
	require.NoError(t, err)

	_, err = c.PatternCategories(context.Background())
	require.Error(t, err)
	var apiErr *wpapi.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "rest_forbidden", apiErr.Code)
	assert.Contains(t, err.Error(), "Sorry, you are not allowed to do that.")
	assert.Equal(t, "admin", gotUser)
	assert.Equal(t, "abcd efgh", gotPass)
}
