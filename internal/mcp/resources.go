// resources.go implements MCP resource handlers.
//
// URIs follow wpblock://guide/{topic} and wpblock://synced-patterns/{id}.
// Resources are read-only and return the raw page or block markup.

package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jpl-au/wpblock/guide"
	"github.com/jpl-au/wpblock/internal/log"
	"github.com/jpl-au/wpblock/internal/synced"
	"github.com/mark3labs/mcp-go/mcp"
)

var (
	// ErrInvalidURI indicates a resource URI outside the expected scheme.
	ErrInvalidURI = errors.New("invalid URI")
	// ErrEmptyKey indicates a resource URI without a topic or id.
	ErrEmptyKey = errors.New("empty resource key")
)

// parseURI returns the key after wpblock://{kind}/.
func parseURI(uri, kind string) (string, error) {
	prefix := "wpblock://" + kind + "/"
	if !strings.HasPrefix(uri, prefix) {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	key := strings.Trim(strings.TrimPrefix(uri, prefix), "/")
	if key == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyKey, uri)
	}
	return key, nil
}

// readGuide handles wpblock://guide/{topic}.
func (h *handlers) readGuide(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	topic, err := parseURI(req.Params.URI, "guide")
	if err != nil {
		return nil, err
	}
	content, err := guide.Get(topic)
	if err != nil {
		return nil, fmt.Errorf("guide %q: %w", topic, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{URI: req.Params.URI, MIMEType: "text/markdown", Text: content},
	}, nil
}

// readSyncedPattern handles wpblock://synced-patterns/{id}.
func (h *handlers) readSyncedPattern(ctx context.Context, req mcp.ReadResourceRequest) (contents []mcp.ResourceContents, err error) {
	id, err := parseURI(req.Params.URI, "synced-patterns")
	if err != nil {
		return nil, err
	}
	defer func() { log.Event("mcp:synced_pattern_resource", "get").Target(id).Write(err) }()

	store, err := h.ext.Site().Posts()
	if err != nil {
		return nil, err
	}
	p, err := synced.Get(ctx, store, id)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{URI: req.Params.URI, MIMEType: "text/html", Text: p.Content},
	}, nil
}
