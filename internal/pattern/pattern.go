// Package pattern lists and gets registered block patterns.
package pattern

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/jpl-au/wpblock/internal/filter"
	"github.com/jpl-au/wpblock/internal/output"
	"github.com/jpl-au/wpblock/internal/registry"
)

// Fields is the pattern projection. Keys keep the registry's camelCase
// (blockTypes, viewportWidth) so --field accepts the names found in PHP and
// block.json.
var Fields = output.Fields{
	All: []string{
		"name", "title", "description", "categories", "content", "keywords",
		"blockTypes", "postTypes", "templateTypes", "inserter", "viewportWidth",
	},
	Default: []string{"name", "title", "description", "categories"},
	Detail:  []string{"content", "keywords", "blockTypes", "postTypes", "templateTypes", "inserter", "viewportWidth"},
}

// ListOptions filters the pattern registry.
type ListOptions struct {
	Category string // exact category membership
	Search   string // case-insensitive match on title or any keyword
	Inserter bool   // drop patterns hidden from the inserter
}

// Filters run in flag order but are independent, so order does not change
// the result; registration order of the patterns is always kept.

// List returns the registered patterns matching opts.
func List(ctx context.Context, src registry.PatternSource, opts ListOptions) ([]registry.Pattern, error) {
	all, err := src.Patterns(ctx)
	if err != nil {
		return nil, fmt.Errorf("patterns: %w", err)
	}
	return filter.Apply(all,
		filter.When(opts.Category != "", inCategory(opts.Category)),
		filter.When(opts.Search != "", matches(opts.Search)),
		filter.When(opts.Inserter, visible),
	), nil
}

// Get returns one pattern.
func Get(ctx context.Context, src registry.PatternSource, name string) (registry.Pattern, error) {
	p, err := src.Pattern(ctx, name)
	if errors.Is(err, registry.ErrNotRegistered) {
		return p, fmt.Errorf("Block pattern '%s' is %w.", name, registry.ErrNotRegistered)
	}
	return p, err
}

// IDs returns pattern names.
func IDs(patterns []registry.Pattern) []string {
	ids := make([]string, len(patterns))
	for i, p := range patterns {
		ids[i] = p.Name
	}
	return ids
}

// Record projects a pattern. Missing strings are empty, missing lists are
// empty, a missing inserter flag is true and a missing viewport width is null.
func Record(p registry.Pattern) output.Record {
	return output.Record{
		{Name: "name", Value: p.Name},
		{Name: "title", Value: p.Title.Or("")},
		{Name: "description", Value: p.Description.Or("")},
		{Name: "categories", Value: list(p.Categories)},
		{Name: "content", Value: p.Content.Or("")},
		{Name: "keywords", Value: list(p.Keywords)},
		{Name: "blockTypes", Value: list(p.BlockTypes)},
		{Name: "postTypes", Value: list(p.PostTypes)},
		{Name: "templateTypes", Value: list(p.TemplateTypes)},
		{Name: "inserter", Value: p.Inserter.Or(true)},
		{Name: "viewportWidth", Value: p.ViewportWidth.Value()},
	}
}

// Records projects a slice of patterns.
func Records(patterns []registry.Pattern) []output.Record {
	out := make([]output.Record, len(patterns))
	for i, p := range patterns {
		out[i] = Record(p)
	}
	return out
}

func list(o registry.Optional[[]string]) []string {
	if v := o.Or(nil); v != nil {
		return v
	}
	return []string{}
}

func inCategory(c string) filter.Predicate[registry.Pattern] {
	return func(p registry.Pattern) bool { return slices.Contains(p.Categories.Or(nil), c) }
}

func matches(term string) filter.Predicate[registry.Pattern] {
	return func(p registry.Pattern) bool {
		if title, ok := p.Title.Get(); ok && filter.ContainsFold(title, term) {
			return true
		}
		return filter.AnyContainsFold(p.Keywords.Or(nil), term)
	}
}

func visible(p registry.Pattern) bool {
	return p.Inserter.Or(true)
}
