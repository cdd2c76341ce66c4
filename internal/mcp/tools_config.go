// tools_config.go implements MCP tools for configuration management.
//
// The site is resolved once when the server starts, so a changed setting
// applies after a restart. Values are never written to the audit log.

package mcp

import (
	"context"
	"fmt"

	"github.com/jpl-au/wpblock/extension"
	"github.com/jpl-au/wpblock/internal/config"
	"github.com/jpl-au/wpblock/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// configGet handles wpblock_config_get tool calls.
func (h *handlers) configGet(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := config.Load()
	if err != nil {
		log.Event("mcp:config_get", "get").Write(err)
		return extension.ErrorResult(err)
	}

	key := req.GetString("key", "")
	if key == "" {
		log.Event("mcp:config_get", "list").Write(nil)
		return extension.JSONResult(cfg.All())
	}

	v, err := cfg.Get(key)
	log.Event("mcp:config_get", "get").Target(key).Write(err)
	if err != nil {
		return extension.ErrorResult(err)
	}
	return extension.JSONResult(map[string]string{key: v})
}

// configSet handles wpblock_config_set tool calls.
func (h *handlers) configSet(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := req.RequireString("key")
	if err != nil {
		return mcp.NewToolResultError("key is required"), nil //nolint:nilerr
	}
	value, err := req.RequireString("value")
	if err != nil {
		return mcp.NewToolResultError("value is required"), nil //nolint:nilerr
	}

	l := log.Event("mcp:config_set", "set").Target(key)
	cfg, err := config.Load()
	if err == nil {
		err = cfg.Set(key, value)
	}
	if err == nil {
		err = cfg.Save()
	}
	l.Write(err)
	if err != nil {
		return extension.ErrorResult(err)
	}

	shown, _ := cfg.Get(key)
	return mcp.NewToolResultText(fmt.Sprintf("%s = %s (restart the server to apply)", key, shown)), nil
}
