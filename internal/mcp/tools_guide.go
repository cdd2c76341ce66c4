// tools_guide.go implements the MCP tool for accessing help content, so
// clients can learn the commands and backends without external lookups.

package mcp

import (
	"context"
	"fmt"

	"github.com/jpl-au/wpblock/extension"
	"github.com/jpl-au/wpblock/guide"
	"github.com/jpl-au/wpblock/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// getGuide handles wpblock_guide tool calls.
func (h *handlers) getGuide(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := req.GetString("topic", "")

	content, err := guide.Get(topic)
	log.Event("mcp:guide", "read").Target(topic).Write(err)

	if err != nil {
		topics, listErr := guide.List()
		if listErr != nil {
			return nil, fmt.Errorf("listing guides: %w", listErr)
		}
		return extension.JSONResult(map[string]any{
			"error":            fmt.Sprintf("guide %q not found", topic),
			"available_topics": topics,
		})
	}

	return mcp.NewToolResultText(content), nil
}
