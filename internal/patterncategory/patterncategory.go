// Package patterncategory lists and gets registered block pattern categories.
package patterncategory

import (
	"context"
	"errors"
	"fmt"

	"github.com/jpl-au/wpblock/internal/output"
	"github.com/jpl-au/wpblock/internal/registry"
)

// Fields is the category projection. Get adds nothing to the list defaults.
var Fields = output.Fields{
	All:     []string{"name", "label", "description"},
	Default: []string{"name", "label", "description"},
}

// List returns every registered category.
func List(ctx context.Context, src registry.PatternCategorySource) ([]registry.PatternCategory, error) {
	all, err := src.PatternCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("pattern categories: %w", err)
	}
	return all, nil
}

// Get returns one category.
func Get(ctx context.Context, src registry.PatternCategorySource, name string) (registry.PatternCategory, error) {
	c, err := src.PatternCategory(ctx, name)
	if errors.Is(err, registry.ErrNotRegistered) {
		return c, fmt.Errorf("Block pattern category '%s' is %w.", name, registry.ErrNotRegistered)
	}
	return c, err
}

// IDs returns category names.
func IDs(cats []registry.PatternCategory) []string {
	ids := make([]string, len(cats))
	for i, c := range cats {
		ids[i] = c.Name
	}
	return ids
}

// Record projects a category; missing strings are empty.
func Record(c registry.PatternCategory) output.Record {
	return output.Record{
		{Name: "name", Value: c.Name},
		{Name: "label", Value: c.Label.Or("")},
		{Name: "description", Value: c.Description.Or("")},
	}
}

// Records projects a slice of categories.
func Records(cats []registry.PatternCategory) []output.Record {
	out := make([]output.Record, len(cats))
	for i, c := range cats {
		out[i] = Record(c)
	}
	return out
}
