// Package mcp implements the Model Context Protocol server, exposing wpblock
// operations to LLMs over stdio.
//
// Tools come from two places: every registered extension contributes its
// MCPTools (the block resources), and this package adds the guide and config
// tools plus read-only resources for guide pages and synced pattern content.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/wpblock/extension"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// handlers serves the package's own tools and resources.
type handlers struct {
	ext extension.Context
}

// NewServer builds the MCP server with extension tools and the built-in
// guide and config tools.
func NewServer(extCtx extension.Context, tools []extension.MCPTool) *server.MCPServer {
	s := server.NewMCPServer(
		"wpblock",
		Version,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	h := &handlers{ext: extCtx}
	registerResources(s, h)
	registerTools(s, h)

	for _, t := range tools {
		s.AddTool(t.Tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return t.Handler(ctx, extCtx, req)
		})
	}
	return s
}

// Serve runs the server over stdio until the client disconnects. The site
// is not opened up front: tools report a missing backend when called, so a
// client can still read the guides and fix the config.
func Serve(extCtx extension.Context, tools []extension.MCPTool) error {
	// stdout is reserved for JSON-RPC messages
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	s := NewServer(extCtx, tools)
	regBackend, postsBackend := extCtx.Site().Describe()
	slog.Info("wpblock MCP server ready",
		"version", Version,
		"transport", "stdio",
		"tools", len(tools),
		"registries", regBackend,
		"posts", postsBackend,
	)

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// registerResources adds URI-based read access.
func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"wpblock://guide/{topic}",
			"Guide",
			mcp.WithTemplateDescription("Read a wpblock guide page"),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		h.readGuide,
	)
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"wpblock://synced-patterns/{id}",
			"Synced pattern",
			mcp.WithTemplateDescription("Read the block markup of a synced pattern"),
			mcp.WithTemplateMIMEType("text/html"),
		),
		h.readSyncedPattern,
	)
}

// registerTools adds the tools that are not tied to a block resource.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("wpblock_guide",
			mcp.WithDescription("Get wpblock guide content. Call with no topic for the overview."),
			mcp.WithString("topic", mcp.Description("Guide topic (backends, config, synced-patterns, templates, mcp) or empty for the overview")),
		),
		h.getGuide,
	)

	s.AddTool(
		mcp.NewTool("wpblock_config_get",
			mcp.WithDescription("Get a configuration value. Secrets are masked."),
			mcp.WithString("key", mcp.Description("Config key (site.url, site.snapshot, db.driver, ...) or empty for all")),
		),
		h.configGet,
	)

	s.AddTool(
		mcp.NewTool("wpblock_config_set",
			mcp.WithDescription("Set a configuration value. Takes effect when the server restarts."),
			mcp.WithString("key", mcp.Required(), mcp.Description("Config key")),
			mcp.WithString("value", mcp.Required(), mcp.Description("Value to set")),
		),
		h.configSet,
	)
}
