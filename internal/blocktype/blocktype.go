// Package blocktype lists, gets and checks for registered block types.
//
// Error strings here are full sentences, capitalised and punctuated, because
// they are printed verbatim after "Error: " and scripts match on them.
//
// A field the site never set is absent and projects as null, while a field
// set to an empty list projects as []. Consumers diffing two sites rely on
// that difference, which is why registry fields are Optional.
package blocktype

import (
	"context"
	"errors"
	"fmt"

	"github.com/jpl-au/wpblock/internal/filter"
	"github.com/jpl-au/wpblock/internal/output"
	"github.com/jpl-au/wpblock/internal/registry"
)

// ErrDynamicStatic is returned when both --dynamic and --static are given.
var ErrDynamicStatic = errors.New("--dynamic and --static are mutually exclusive.")

// Fields is the block type projection.
var Fields = output.Fields{
	All: []string{
		"name", "title", "description", "category", "is_dynamic",
		"icon", "keywords", "parent", "ancestor", "allowed_blocks",
		"supports", "attributes", "provides_context", "uses_context",
		"block_hooks", "selectors", "styles", "example",
		"editor_script_handles", "script_handles", "view_script_handles",
		"view_script_module_ids", "editor_style_handles", "style_handles",
		"view_style_handles", "api_version",
	},
	Default: []string{"name", "title", "description", "category", "is_dynamic"},
	Detail: []string{
		"icon", "keywords", "parent", "ancestor", "supports", "attributes",
		"provides_context", "uses_context", "block_hooks", "api_version",
	},
}

// ListOptions filters the block type registry.
type ListOptions struct {
	Namespace string // keep names starting with Namespace + "/"
	Dynamic   bool   // keep server-rendered blocks
	Static    bool   // keep blocks without a render callback
}

// Validate rejects contradictory flags.
func (o ListOptions) Validate() error {
	if o.Dynamic && o.Static {
		return ErrDynamicStatic
	}
	return nil
}

// List returns the registered block types matching opts, in registration order.
func List(ctx context.Context, src registry.BlockTypeSource, opts ListOptions) ([]registry.BlockType, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	all, err := src.BlockTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("block types: %w", err)
	}
	return filter.Apply(all,
		filter.When(opts.Namespace != "", inNamespace(opts.Namespace)),
		filter.When(opts.Dynamic, dynamic(true)),
		filter.When(opts.Static, dynamic(false)),
	), nil
}

// Get returns one block type.
func Get(ctx context.Context, src registry.BlockTypeSource, name string) (registry.BlockType, error) {
	bt, err := src.BlockType(ctx, name)
	if errors.Is(err, registry.ErrNotRegistered) {
		return bt, fmt.Errorf("Block type '%s' is %w.", name, registry.ErrNotRegistered)
	}
	return bt, err
}

// Exists reports whether name is registered. Only provider failures are
// errors; a miss is a normal answer, not a failure to report.
func Exists(ctx context.Context, src registry.BlockTypeSource, name string) (bool, error) {
	_, err := src.BlockType(ctx, name)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, registry.ErrNotRegistered):
		return false, nil
	default:
		return false, err
	}
}

// IDs returns the registry keys.
func IDs(types []registry.BlockType) []string {
	ids := make([]string, len(types))
	for i, bt := range types {
		ids[i] = bt.Name
	}
	return ids
}

// Record projects a block type. Absent attributes are null.
func Record(bt registry.BlockType) output.Record {
	return output.Record{
		{Name: "name", Value: bt.Name},
		{Name: "title", Value: bt.Title.Value()},
		{Name: "description", Value: bt.Description.Value()},
		{Name: "category", Value: bt.Category.Value()},
		{Name: "is_dynamic", Value: bt.Dynamic},
		{Name: "icon", Value: bt.Icon.Value()},
		{Name: "keywords", Value: bt.Keywords.Value()},
		{Name: "parent", Value: bt.Parent.Value()},
		{Name: "ancestor", Value: bt.Ancestor.Value()},
		{Name: "allowed_blocks", Value: bt.AllowedBlocks.Value()},
		{Name: "supports", Value: bt.Supports.Value()},
		{Name: "attributes", Value: bt.Attributes.Value()},
		{Name: "provides_context", Value: bt.ProvidesContext.Value()},
		{Name: "uses_context", Value: bt.UsesContext.Value()},
		{Name: "block_hooks", Value: bt.BlockHooks.Value()},
		{Name: "selectors", Value: bt.Selectors.Value()},
		{Name: "styles", Value: bt.Styles.Value()},
		{Name: "example", Value: bt.Example.Value()},
		{Name: "editor_script_handles", Value: bt.EditorScriptHandles.Value()},
		{Name: "script_handles", Value: bt.ScriptHandles.Value()},
		{Name: "view_script_handles", Value: bt.ViewScriptHandles.Value()},
		{Name: "view_script_module_ids", Value: bt.ViewScriptModuleIDs.Value()},
		{Name: "editor_style_handles", Value: bt.EditorStyleHandles.Value()},
		{Name: "style_handles", Value: bt.StyleHandles.Value()},
		{Name: "view_style_handles", Value: bt.ViewStyleHandles.Value()},
		{Name: "api_version", Value: bt.APIVersion.Value()},
	}
}

// Records projects a slice of block types.
func Records(types []registry.BlockType) []output.Record {
	out := make([]output.Record, len(types))
	for i, bt := range types {
		out[i] = Record(bt)
	}
	return out
}

func inNamespace(ns string) filter.Predicate[registry.BlockType] {
	return func(bt registry.BlockType) bool { return filter.InNamespace(bt.Name, ns) }
}

func dynamic(want bool) filter.Predicate[registry.BlockType] {
	return func(bt registry.BlockType) bool { return bt.Dynamic == want }
}
