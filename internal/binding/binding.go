// Package binding lists and gets registered block bindings sources.
package binding

import (
	"context"
	"errors"
	"fmt"

	"github.com/jpl-au/wpblock/internal/output"
	"github.com/jpl-au/wpblock/internal/registry"
)

// Fields is the binding source projection.
var Fields = output.Fields{
	All:     []string{"name", "label", "uses_context"},
	Default: []string{"name", "label"},
	Detail:  []string{"uses_context"},
}

// List returns every registered binding source.
func List(ctx context.Context, src registry.BindingSource) ([]registry.Binding, error) {
	all, err := src.Bindings(ctx)
	if err != nil {
		return nil, fmt.Errorf("binding sources: %w", err)
	}
	return all, nil
}

// Get returns one binding source.
func Get(ctx context.Context, src registry.BindingSource, name string) (registry.Binding, error) {
	b, err := src.Binding(ctx, name)
	if errors.Is(err, registry.ErrNotRegistered) {
		return b, fmt.Errorf("Block binding source '%s' is %w.", name, registry.ErrNotRegistered)
	}
	return b, err
}

// IDs returns source names.
func IDs(bindings []registry.Binding) []string {
	ids := make([]string, len(bindings))
	for i, b := range bindings {
		ids[i] = b.Name
	}
	return ids
}

// Record projects a binding source.
func Record(b registry.Binding) output.Record {
	return output.Record{
		{Name: "name", Value: b.Name},
		{Name: "label", Value: b.Label},
		{Name: "uses_context", Value: b.UsesContext.Value()},
	}
}

// Records projects a slice of binding sources.
func Records(bindings []registry.Binding) []output.Record {
	out := make([]output.Record, len(bindings))
	for i, b := range bindings {
		out[i] = Record(b)
	}
	return out
}
