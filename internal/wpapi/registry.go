// registry.go serves the block-editor registries from the REST API.
//
// Core exposes block types, patterns, categories and templates under wp/v2.
// Single patterns and styles have no route of their own, so those lookups
// filter the full list. Binding sources are not exposed at all; use a
// snapshot for them.

package wpapi

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jpl-au/wpblock/internal/registry"
)

var _ registry.Provider = (*Client)(nil)

// notRegistered maps a 404 to registry.ErrNotRegistered so callers see the
// same error from REST and from a snapshot.
func notRegistered(kind, key string, err error) error {
	if isNotFound(err) {
		return fmt.Errorf("%s %q: %w", kind, key, registry.ErrNotRegistered)
	}
	return err
}

// editContext asks for raw values and the fields only editors can see.
var editContext = url.Values{"context": {"edit"}}

// Version returns the configured WordPress version. The REST index does not
// expose it, so an undeclared version is empty.
func (c *Client) Version(context.Context) (string, error) {
	return c.version, nil
}

func (c *Client) BlockTypes(ctx context.Context) ([]registry.BlockType, error) {
	var out []registry.BlockType
	if err := c.get(ctx, "block-types", editContext, &out); err != nil {
		return nil, fmt.Errorf("block types: %w", err)
	}
	return out, nil
}

// BlockType fetches one block. The namespaced name is also the route suffix.
func (c *Client) BlockType(ctx context.Context, name string) (registry.BlockType, error) {
	var bt registry.BlockType
	err := c.get(ctx, "block-types/"+name, editContext, &bt)
	return bt, notRegistered("block type", name, err)
}

// restPattern is the REST shape of a pattern, with snake_case keys. The
// registry keeps PHP's camelCase, so responses go through pattern().
type restPattern struct {
	Name          string                      `json:"name"`
	Title         registry.Optional[string]   `json:"title"`
	Description   registry.Optional[string]   `json:"description"`
	Categories    registry.Optional[[]string] `json:"categories"`
	Content       registry.Optional[string]   `json:"content"`
	Keywords      registry.Optional[[]string] `json:"keywords"`
	BlockTypes    registry.Optional[[]string] `json:"block_types"`
	PostTypes     registry.Optional[[]string] `json:"post_types"`
	TemplateTypes registry.Optional[[]string] `json:"template_types"`
	Inserter      registry.Optional[bool]     `json:"inserter"`
	ViewportWidth registry.Optional[int]      `json:"viewport_width"`
}

func (p restPattern) pattern() registry.Pattern {
	return registry.Pattern{
		Name:          p.Name,
		Title:         p.Title,
		Description:   p.Description,
		Categories:    p.Categories,
		Content:       p.Content,
		Keywords:      p.Keywords,
		BlockTypes:    p.BlockTypes,
		PostTypes:     p.PostTypes,
		TemplateTypes: p.TemplateTypes,
		Inserter:      p.Inserter,
		ViewportWidth: p.ViewportWidth,
	}
}

func (c *Client) Patterns(ctx context.Context) ([]registry.Pattern, error) {
	var raw []restPattern
	if err := c.get(ctx, "block-patterns/patterns", nil, &raw); err != nil {
		return nil, fmt.Errorf("patterns: %w", err)
	}
	out := make([]registry.Pattern, len(raw))
	for i, p := range raw {
		out[i] = p.pattern()
	}
	return out, nil
}

// Pattern filters the full list; the API has no single-pattern route.
func (c *Client) Pattern(ctx context.Context, name string) (registry.Pattern, error) {
	all, err := c.Patterns(ctx)
	if err != nil {
		return registry.Pattern{}, err
	}
	for _, p := range all {
		if p.Name == name {
			return p, nil
		}
	}
	return registry.Pattern{}, fmt.Errorf("pattern %q: %w", name, registry.ErrNotRegistered)
}

func (c *Client) PatternCategories(ctx context.Context) ([]registry.PatternCategory, error) {
	var out []registry.PatternCategory
	if err := c.get(ctx, "block-patterns/categories", nil, &out); err != nil {
		return nil, fmt.Errorf("pattern categories: %w", err)
	}
	return out, nil
}

func (c *Client) PatternCategory(ctx context.Context, name string) (registry.PatternCategory, error) {
	all, err := c.PatternCategories(ctx)
	if err != nil {
		return registry.PatternCategory{}, err
	}
	for _, cat := range all {
		if cat.Name == name {
			return cat, nil
		}
	}
	return registry.PatternCategory{}, fmt.Errorf("pattern category %q: %w", name, registry.ErrNotRegistered)
}

// restStyle is a style variation as embedded in a block type.
type restStyle struct {
	Name        string                    `json:"name"`
	Label       registry.Optional[string] `json:"label"`
	IsDefault   registry.Optional[bool]   `json:"isDefault"`
	StyleHandle registry.Optional[string] `json:"style_handle"`
	InlineStyle registry.Optional[string] `json:"inline_style"`
}

// restBlockStyles is the subset of a block type carrying its styles.
type restBlockStyles struct {
	Name   string      `json:"name"`
	Styles []restStyle `json:"styles"`
}

func (b restBlockStyles) styles() []registry.Style {
	out := make([]registry.Style, len(b.Styles))
	for i, st := range b.Styles {
		out[i] = registry.Style{
			BlockName:   b.Name,
			Name:        st.Name,
			Label:       st.Label,
			IsDefault:   st.IsDefault,
			StyleHandle: st.StyleHandle,
			InlineStyle: st.InlineStyle,
		}
	}
	return out
}

// Styles flattens the styles of every block type, in block registration
// order.
func (c *Client) Styles(ctx context.Context) ([]registry.Style, error) {
	var blocks []restBlockStyles
	if err := c.get(ctx, "block-types", editContext, &blocks); err != nil {
		return nil, fmt.Errorf("block styles: %w", err)
	}
	out := []registry.Style{}
	for _, b := range blocks {
		out = append(out, b.styles()...)
	}
	return out, nil
}

// BlockStyles returns the styles of one block; an unknown block has none.
func (c *Client) BlockStyles(ctx context.Context, block string) ([]registry.Style, error) {
	var b restBlockStyles
	if err := c.get(ctx, "block-types/"+block, editContext, &b); err != nil {
		if isNotFound(err) {
			return []registry.Style{}, nil
		}
		return nil, fmt.Errorf("block styles: %w", err)
	}
	return b.styles(), nil
}

// Style scans the block's styles; there is no per-style route.
func (c *Client) Style(ctx context.Context, block, name string) (registry.Style, error) {
	styles, err := c.BlockStyles(ctx, block)
	if err != nil {
		return registry.Style{}, err
	}
	for _, st := range styles {
		if st.Name == name {
			return st, nil
		}
	}
	return registry.Style{}, fmt.Errorf("style %q: %w", block+"/"+name, registry.ErrNotRegistered)
}

// Bindings are not exposed over REST.
func (c *Client) Bindings(context.Context) ([]registry.Binding, error) {
	return nil, fmt.Errorf("block binding sources: %w", registry.ErrUnsupported)
}

func (c *Client) Binding(context.Context, string) (registry.Binding, error) {
	return registry.Binding{}, fmt.Errorf("block binding sources: %w", registry.ErrUnsupported)
}

func templateRoute(typ string) string {
	if typ == registry.TemplateTypePart {
		return "template-parts"
	}
	return "templates"
}

func (c *Client) Templates(ctx context.Context, typ string) ([]registry.Template, error) {
	var out []registry.Template
	if err := c.get(ctx, templateRoute(typ), editContext, &out); err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}
	// Fill type from the route when a response omits it.
	for i := range out {
		if out[i].Type == "" {
			out[i].Type = typ
		}
	}
	return out, nil
}

func (c *Client) Template(ctx context.Context, id, typ string) (registry.Template, error) {
	var t registry.Template
	err := c.get(ctx, templateRoute(typ)+"/"+id, editContext, &t)
	if err != nil {
		return t, notRegistered("template", id, err)
	}
	if t.Type == "" {
		t.Type = typ
	}
	return t, nil
}
