package block

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpl-au/wpblock/extension"
	"github.com/jpl-au/wpblock/internal/config"
	"github.com/jpl-au/wpblock/internal/posts"
	"github.com/jpl-au/wpblock/internal/site"
	"github.com/jpl-au/wpblock/internal/testutil"
)

// testContext serves the fixture snapshot and a fresh SQLite posts table.
func testContext(t *testing.T) extension.Context {
	t.Helper()
	dir := t.TempDir()
	dsn := filepath.Join(dir, "wp.db")

	st, err := posts.Open(posts.DriverSQLite, dsn, posts.DefaultPrefix)
	require.NoError(t, err)
	require.NoError(t, st.Init(context.Background()))
	require.NoError(t, st.Close())

	cfg := &config.Config{}
	cfg.DB.Driver = posts.DriverSQLite
	s := site.New(cfg, site.Options{Snapshot: testutil.WriteSite(t, dir), DSN: dsn})
	t.Cleanup(func() { _ = s.Close() })
	return extension.NewContext(s, cfg)
}

func call(t *testing.T, ec extension.Context, h extension.MCPHandler, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	res, err := h(context.Background(), ec, req)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "content is %T", res.Content[0])
	return tc.Text
}

func decode[T any](t *testing.T, res *mcp.CallToolResult) T {
	t.Helper()
	require.False(t, res.IsError, text(t, res))
	var v T
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &v))
	return v
}

func names(rows []map[string]any) []string {
	var out []string
	for _, r := range rows {
		out = append(out, r["name"].(string))
	}
	return out
}

func TestTools_Names(t *testing.T) {
	seen := map[string]bool{}
	for _, tool := range tools() {
		assert.False(t, seen[tool.Tool.Name], "duplicate %s", tool.Tool.Name)
		seen[tool.Tool.Name] = true
		assert.NotNil(t, tool.Handler, tool.Tool.Name)
	}
	assert.True(t, seen["wpblock_type_list"])
	assert.True(t, seen["wpblock_synced_pattern_delete"])
}

func TestTypeList(t *testing.T) {
	ec := testContext(t)

	rows := decode[[]map[string]any](t, call(t, ec, typeList, map[string]any{"namespace": "core"}))
	assert.Equal(t, []string{"core/paragraph", "core/latest-posts", "core/image"}, names(rows))

	res := call(t, ec, typeList, map[string]any{"dynamic": true, "static": true})
	assert.True(t, res.IsError)
}

func TestTypeGet_Missing(t *testing.T) {
	res := call(t, testContext(t), typeGet, map[string]any{"name": "core/nope"})
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "core/nope")
}

func TestStyleList(t *testing.T) {
	rows := decode[[]map[string]any](t, call(t, testContext(t), styleList, map[string]any{"block": "core/button"}))
	assert.Equal(t, []string{"fill", "outline"}, names(rows))
}

func TestNoBackend(t *testing.T) {
	ec := extension.NewContext(site.New(nil, site.Options{}), &config.Config{})

	res := call(t, ec, bindingList, nil)
	assert.True(t, res.IsError)
	res = call(t, ec, syncedList, nil)
	assert.True(t, res.IsError)
}

func TestSyncedLifecycle(t *testing.T) {
	ec := testContext(t)

	created := decode[map[string]any](t, call(t, ec, syncedCreate, map[string]any{
		"title":       "Footer",
		"content":     "<!-- wp:paragraph --><p>Hi</p><!-- /wp:paragraph -->",
		"sync_status": "unsynced",
	}))
	id := created["id"].(float64)
	require.NotZero(t, id)

	rows := decode[[]map[string]any](t, call(t, ec, syncedList, map[string]any{"sync_status": "unsynced"}))
	require.Len(t, rows, 1)
	assert.Equal(t, "Footer", rows[0]["post_title"])

	_ = decode[map[string]any](t, call(t, ec, syncedUpdate, map[string]any{
		"id":          jsonID(id),
		"sync_status": "synced",
	}))
	rows = decode[[]map[string]any](t, call(t, ec, syncedList, map[string]any{"sync_status": "unsynced"}))
	assert.Empty(t, rows)

	res := call(t, ec, syncedDelete, map[string]any{"ids": jsonID(id) + ",999", "force": true})
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "Success: Deleted 1 synced pattern(s).")
	assert.Contains(t, text(t, res), "Failed to delete 1 synced pattern(s).")

	res = call(t, ec, syncedDelete, map[string]any{"ids": ""})
	assert.True(t, res.IsError)
}

func TestSyncedCreate_NeedsTitle(t *testing.T) {
	res := call(t, testContext(t), syncedCreate, map[string]any{"content": "x"})
	assert.True(t, res.IsError)
}

func jsonID(id float64) string {
	b, _ := json.Marshal(int64(id))
	return string(b)
}
