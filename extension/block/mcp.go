// mcp.go exposes the block resources as MCP tools. Each tool mirrors its CLI
// command: the same options, version gates and audit entries, with records
// returned as JSON.
//
// Design: failures are returned as tool results with IsError set, not as Go
// errors. A Go error aborts the JSON-RPC call, while a tool error reaches the
// model as text it can read and correct.

package block

import (
	"context"
	"errors"
	"strings"

	"github.com/jpl-au/wpblock/extension"
	"github.com/jpl-au/wpblock/internal/binding"
	"github.com/jpl-au/wpblock/internal/blockstyle"
	"github.com/jpl-au/wpblock/internal/blocktype"
	"github.com/jpl-au/wpblock/internal/filter"
	"github.com/jpl-au/wpblock/internal/log"
	"github.com/jpl-au/wpblock/internal/pattern"
	"github.com/jpl-au/wpblock/internal/patterncategory"
	"github.com/jpl-au/wpblock/internal/posts"
	"github.com/jpl-au/wpblock/internal/synced"
	"github.com/jpl-au/wpblock/internal/template"
	"github.com/mark3labs/mcp-go/mcp"
)

var errNoIDs = errors.New("at least one id is required")

// collector gathers operation messages for the tool reply.
type collector struct {
	lines []string
}

func (c *collector) Success(msg string) { c.lines = append(c.lines, "Success: "+msg) }
func (c *collector) Warning(msg string) { c.lines = append(c.lines, "Warning: "+msg) }

// respond writes the audit entry and converts err into a tool error.
func respond(l *log.Builder, v any, err error) (*mcp.CallToolResult, error) {
	l.Write(err)
	if err != nil {
		return extension.ErrorResult(err)
	}
	return extension.JSONResult(v)
}

func tools() []extension.MCPTool {
	return []extension.MCPTool{
		{
			Tool: mcp.NewTool("wpblock_type_list",
				mcp.WithDescription("List registered block types in registration order"),
				mcp.WithString("namespace", mcp.Description("Only block types in this namespace, e.g. core")),
				mcp.WithBoolean("dynamic", mcp.Description("Only dynamic (server-rendered) block types")),
				mcp.WithBoolean("static", mcp.Description("Only static block types")),
			),
			Handler: typeList,
		},
		{
			Tool: mcp.NewTool("wpblock_type_get",
				mcp.WithDescription("Get a registered block type by name"),
				mcp.WithString("name", mcp.Required(), mcp.Description("Block type name, e.g. core/paragraph")),
			),
			Handler: typeGet,
		},
		{
			Tool: mcp.NewTool("wpblock_pattern_list",
				mcp.WithDescription("List registered block patterns"),
				mcp.WithString("category", mcp.Description("Only patterns in this category")),
				mcp.WithString("search", mcp.Description("Match title, description or keywords")),
				mcp.WithBoolean("inserter", mcp.Description("Only patterns shown in the inserter")),
			),
			Handler: patternList,
		},
		{
			Tool: mcp.NewTool("wpblock_pattern_get",
				mcp.WithDescription("Get a registered block pattern by name, including its content"),
				mcp.WithString("name", mcp.Required(), mcp.Description("Pattern name")),
			),
			Handler: patternGet,
		},
		{
			Tool: mcp.NewTool("wpblock_pattern_category_list",
				mcp.WithDescription("List registered block pattern categories"),
			),
			Handler: patternCategoryList,
		},
		{
			Tool: mcp.NewTool("wpblock_style_list",
				mcp.WithDescription("List registered block styles"),
				mcp.WithString("block", mcp.Description("Only styles for this block type")),
			),
			Handler: styleList,
		},
		{
			Tool: mcp.NewTool("wpblock_binding_list",
				mcp.WithDescription("List registered block binding sources"),
			),
			Handler: bindingList,
		},
		{
			Tool: mcp.NewTool("wpblock_template_list",
				mcp.WithDescription("List block templates or template parts"),
				mcp.WithString("type", mcp.Description("wp_template (default) or wp_template_part")),
				mcp.WithString("slug", mcp.Description("Comma-separated slugs to include")),
				mcp.WithString("area", mcp.Description("Template part area, e.g. header")),
				mcp.WithString("post_type", mcp.Description("Only templates declaring this post type")),
				mcp.WithString("source", mcp.Description("theme, plugin or custom")),
			),
			Handler: templateList,
		},
		{
			Tool: mcp.NewTool("wpblock_template_get",
				mcp.WithDescription("Get a template by id (theme//slug), including its content"),
				mcp.WithString("id", mcp.Required(), mcp.Description("Template id")),
				mcp.WithString("type", mcp.Description("wp_template (default) or wp_template_part")),
			),
			Handler: templateGet,
		},
		{
			Tool: mcp.NewTool("wpblock_synced_pattern_list",
				mcp.WithDescription("List published synced patterns ordered by title"),
				mcp.WithString("search", mcp.Description("Only patterns whose title contains this text")),
				mcp.WithString("sync_status", mcp.Description("synced, unsynced or all (default)")),
			),
			Handler: syncedList,
		},
		{
			Tool: mcp.NewTool("wpblock_synced_pattern_get",
				mcp.WithDescription("Get a synced pattern by id"),
				mcp.WithString("id", mcp.Required(), mcp.Description("Post id")),
			),
			Handler: syncedGet,
		},
		{
			Tool: mcp.NewTool("wpblock_synced_pattern_create",
				mcp.WithDescription("Create a synced pattern and return its id"),
				mcp.WithString("title", mcp.Required(), mcp.Description("Pattern title")),
				mcp.WithString("content", mcp.Required(), mcp.Description("Block markup")),
				mcp.WithString("slug", mcp.Description("Post slug (default derived from the title)")),
				mcp.WithString("status", mcp.Description("Post status (default publish)")),
				mcp.WithString("sync_status", mcp.Description("synced (default) or unsynced")),
			),
			Handler: syncedCreate,
		},
		{
			Tool: mcp.NewTool("wpblock_synced_pattern_update",
				mcp.WithDescription("Update a synced pattern's title, content or sync status"),
				mcp.WithString("id", mcp.Required(), mcp.Description("Post id")),
				mcp.WithString("title", mcp.Description("New title")),
				mcp.WithString("content", mcp.Description("New block markup")),
				mcp.WithString("sync_status", mcp.Description("synced or unsynced")),
			),
			Handler: syncedUpdate,
		},
		{
			Tool: mcp.NewTool("wpblock_synced_pattern_delete",
				mcp.WithDescription("Trash synced patterns, or delete them permanently with force"),
				mcp.WithString("ids", mcp.Required(), mcp.Description("Comma-separated post ids")),
				mcp.WithBoolean("force", mcp.Description("Delete permanently instead of trashing")),
			),
			Handler: syncedDelete,
		},
	}
}

func typeList(ctx context.Context, ec extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	// Option validation comes before the backend, as on the CLI.
	opts := blocktype.ListOptions{
		Namespace: req.GetString("namespace", ""),
		Dynamic:   req.GetBool("dynamic", false),
		Static:    req.GetBool("static", false),
	}
	l := log.Event("mcp:type_list", "list").Detail("namespace", opts.Namespace)
	if err := opts.Validate(); err != nil {
		return respond(l, nil, err)
	}
	src, err := registryFor(ctx, ec, resType)
	if err != nil {
		return respond(l, nil, err)
	}
	types, err := blocktype.List(ctx, src, opts)
	return respond(l, blocktype.Records(types), err)
}

func typeGet(ctx context.Context, ec extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	l := log.Event("mcp:type_get", "get").Target(name)
	src, err := registryFor(ctx, ec, resType)
	if err != nil {
		return respond(l, nil, err)
	}
	bt, err := blocktype.Get(ctx, src, name)
	return respond(l, blocktype.Record(bt), err)
}

func patternList(ctx context.Context, ec extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts := pattern.ListOptions{
		Category: req.GetString("category", ""),
		Search:   req.GetString("search", ""),
		Inserter: req.GetBool("inserter", false),
	}
	l := log.Event("mcp:pattern_list", "list").Detail("category", opts.Category)
	src, err := registryFor(ctx, ec, resPattern)
	if err != nil {
		return respond(l, nil, err)
	}
	ps, err := pattern.List(ctx, src, opts)
	return respond(l, pattern.Records(ps), err)
}

func patternGet(ctx context.Context, ec extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	l := log.Event("mcp:pattern_get", "get").Target(name)
	src, err := registryFor(ctx, ec, resPattern)
	if err != nil {
		return respond(l, nil, err)
	}
	p, err := pattern.Get(ctx, src, name)
	return respond(l, pattern.Record(p), err)
}

func patternCategoryList(ctx context.Context, ec extension.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	l := log.Event("mcp:pattern_category_list", "list")
	src, err := registryFor(ctx, ec, resPatternCategory)
	if err != nil {
		return respond(l, nil, err)
	}
	cats, err := patterncategory.List(ctx, src)
	return respond(l, patterncategory.Records(cats), err)
}

func styleList(ctx context.Context, ec extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts := blockstyle.ListOptions{Block: req.GetString("block", "")}
	l := log.Event("mcp:style_list", "list").Detail("block", opts.Block)
	src, err := registryFor(ctx, ec, resStyle)
	if err != nil {
		return respond(l, nil, err)
	}
	styles, err := blockstyle.List(ctx, src, opts)
	return respond(l, blockstyle.Records(styles), err)
}

func bindingList(ctx context.Context, ec extension.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	l := log.Event("mcp:binding_list", "list")
	src, err := registryFor(ctx, ec, resBinding)
	if err != nil {
		return respond(l, nil, err)
	}
	bs, err := binding.List(ctx, src)
	return respond(l, binding.Records(bs), err)
}

func templateList(ctx context.Context, ec extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts := template.ListOptions{
		Type:     req.GetString("type", ""),
		Slugs:    filter.SplitList(req.GetString("slug", "")),
		Area:     req.GetString("area", ""),
		PostType: req.GetString("post_type", ""),
		Source:   req.GetString("source", ""),
	}
	l := log.Event("mcp:template_list", "list").Detail("type", opts.Type)
	src, err := registryFor(ctx, ec, resTemplate)
	if err != nil {
		return respond(l, nil, err)
	}
	ts, err := template.List(ctx, src, opts)
	return respond(l, template.Records(ts), err)
}

func templateGet(ctx context.Context, ec extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")
	l := log.Event("mcp:template_get", "get").Target(id)
	src, err := registryFor(ctx, ec, resTemplate)
	if err != nil {
		return respond(l, nil, err)
	}
	// An empty type means wp_template, matching the CLI default.
	t, err := template.Get(ctx, src, id, req.GetString("type", ""))
	return respond(l, template.Record(t), err)
}

func syncedList(ctx context.Context, ec extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts := synced.ListOptions{
		Search:     req.GetString("search", ""),
		// The CLI defaults to all; so does the tool.
		SyncStatus: req.GetString("sync_status", synced.All),
	}
	l := log.Event("mcp:synced_pattern_list", "list").Detail("sync_status", opts.SyncStatus)
	store, err := postsFor(ctx, ec)
	if err != nil {
		return respond(l, nil, err)
	}
	ps, err := synced.List(ctx, store, opts)
	return respond(l, synced.Records(ps), err)
}

func syncedGet(ctx context.Context, ec extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")
	l := log.Event("mcp:synced_pattern_get", "get").Target(id)
	store, err := postsFor(ctx, ec)
	if err != nil {
		return respond(l, nil, err)
	}
	p, err := synced.Get(ctx, store, id)
	return respond(l, synced.Record(p), err)
}

func syncedCreate(ctx context.Context, ec extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts := synced.CreateOptions{
		Title:      req.GetString("title", ""),
		Content:    req.GetString("content", ""),
		Slug:       req.GetString("slug", ""),
		Status:     req.GetString("status", posts.StatusPublish),
		SyncStatus: req.GetString("sync_status", synced.Synced),
	}
	l := log.Event("mcp:synced_pattern_create", "create").Detail("sync_status", opts.SyncStatus)
	if err := opts.Validate(); err != nil {
		return respond(l, nil, err)
	}
	store, err := postsFor(ctx, ec)
	if err != nil {
		return respond(l, nil, err)
	}
	var r collector
	id, err := synced.Create(ctx, store, &r, opts)
	// A post can exist even when err is set; record it either way.
	if id != 0 {
		l.Detail("id", id)
	}
	return respond(l, map[string]any{"id": id, "messages": r.lines}, err)
}

func syncedUpdate(ctx context.Context, ec extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")
	opts := synced.UpdateOptions{
		Title:      req.GetString("title", ""),
		Content:    req.GetString("content", ""),
		SyncStatus: req.GetString("sync_status", ""),
	}
	l := log.Event("mcp:synced_pattern_update", "update").Target(id)
	store, err := postsFor(ctx, ec)
	if err != nil {
		return respond(l, nil, err)
	}
	var r collector
	err = synced.Update(ctx, store, &r, id, opts)
	return respond(l, map[string]any{"messages": r.lines}, err)
}

func syncedDelete(ctx context.Context, ec extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ids := filter.SplitList(req.GetString("ids", ""))
	force := req.GetBool("force", false)
	l := log.Event("mcp:synced_pattern_delete", "delete").Target(strings.Join(ids, " ")).Detail("force", force)
	if len(ids) == 0 {
		return respond(l, nil, errNoIDs)
	}
	store, err := postsFor(ctx, ec)
	if err != nil {
		return respond(l, nil, err)
	}
	var r collector
	if err := synced.Delete(ctx, store, &r, ids, force); err != nil {
		l.Write(err)
		// partial failures still report which ids were removed
		return mcp.NewToolResultError(strings.Join(append(r.lines, "Error: "+err.Error()), "\n")), nil
	}
	return respond(l, map[string]any{"messages": r.lines}, nil)
}
