// Package blockstyle lists and gets registered block style variations.
package blockstyle

import (
	"context"
	"errors"
	"fmt"

	"github.com/jpl-au/wpblock/internal/output"
	"github.com/jpl-au/wpblock/internal/registry"
)

// Formats offered by "style list". Styles have a composite key, so there is
// no ids format.
var Formats = []output.Format{output.Table, output.CSV, output.JSON, output.Count, output.YAML}

// Fields is the style projection.
var Fields = output.Fields{
	All:     []string{"block_name", "name", "label", "is_default", "style_handle", "inline_style"},
	Default: []string{"block_name", "name", "label", "is_default"},
	Detail:  []string{"style_handle", "inline_style"},
}

// ListOptions filters the style registry.
type ListOptions struct {
	Block string // only styles registered for this block
}

// List returns registered styles, optionally for one block only.
func List(ctx context.Context, src registry.StyleSource, opts ListOptions) ([]registry.Style, error) {
	var (
		styles []registry.Style
		err    error
	)
	if opts.Block != "" {
		styles, err = src.BlockStyles(ctx, opts.Block)
	} else {
		styles, err = src.Styles(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("block styles: %w", err)
	}
	return styles, nil
}

// Get returns one style of one block.
func Get(ctx context.Context, src registry.StyleSource, block, name string) (registry.Style, error) {
	st, err := src.Style(ctx, block, name)
	if errors.Is(err, registry.ErrNotRegistered) {
		return st, fmt.Errorf("Block style '%s' for block '%s' is %w.", name, block, registry.ErrNotRegistered)
	}
	return st, err
}

// Record projects a style. Missing strings are empty and a missing default
// flag is false.
func Record(st registry.Style) output.Record {
	return output.Record{
		{Name: "block_name", Value: st.BlockName},
		{Name: "name", Value: st.Name},
		{Name: "label", Value: st.Label.Or("")},
		{Name: "is_default", Value: st.IsDefault.Or(false)},
		{Name: "style_handle", Value: st.StyleHandle.Or("")},
		{Name: "inline_style", Value: st.InlineStyle.Or("")},
	}
}

// Records projects a slice of styles.
func Records(styles []registry.Style) []output.Record {
	out := make([]output.Record, len(styles))
	for i, st := range styles {
		out[i] = Record(st)
	}
	return out
}
