// Package template lists and gets block templates and template parts, and
// exports their content to files.
//
// Templates and template parts share one record shape and one set of
// commands; --type picks the registry. Ids take the "theme//slug" form
// WordPress uses, so the same id works in the site editor URL.
package template

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/jpl-au/wpblock/internal/filter"
	"github.com/jpl-au/wpblock/internal/output"
	"github.com/jpl-au/wpblock/internal/registry"
)

// ErrInvalidType is returned for a --type other than wp_template or
// wp_template_part.
var ErrInvalidType = errors.New("invalid template type")

// Fields is the template projection.
var Fields = output.Fields{
	All: []string{
		"id", "slug", "theme", "type", "source", "origin", "title", "description",
		"status", "author", "is_custom", "has_theme_file", "area", "content",
	},
	Default: []string{"id", "slug", "title", "source", "type"},
	Detail: []string{
		"theme", "description", "status", "origin", "is_custom",
		"has_theme_file", "author", "area", "content",
	},
}

// ListOptions filters templates.
type ListOptions struct {
	Type     string   // wp_template (default) or wp_template_part
	Slugs    []string // exact slug membership
	Area     string   // template parts only
	PostType string   // templates declaring this post type
	Source   string   // theme, plugin or custom
}

// NormaliseType returns typ, defaulting to wp_template, or ErrInvalidType.
func NormaliseType(typ string) (string, error) {
	switch typ {
	case "":
		return registry.TemplateTypePage, nil
	case registry.TemplateTypePage, registry.TemplateTypePart:
		return typ, nil
	}
	return "", fmt.Errorf("%w: %q (expected %s or %s)", ErrInvalidType, typ, registry.TemplateTypePage, registry.TemplateTypePart)
}

// List returns templates of opts.Type matching opts. The area filter only
// constrains template parts.
func List(ctx context.Context, src registry.TemplateSource, opts ListOptions) ([]registry.Template, error) {
	typ, err := NormaliseType(opts.Type)
	if err != nil {
		return nil, err
	}
	all, err := src.Templates(ctx, typ)
	if err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}
	return filter.Apply(all,
		filter.When(len(opts.Slugs) > 0, inSlugs(opts.Slugs)),
		// Only parts have an area; --area on page templates is a no-op
		// rather than an empty result.
		filter.When(opts.Area != "" && typ == registry.TemplateTypePart, inArea(opts.Area)),
		filter.When(opts.PostType != "", forPostType(opts.PostType)),
		filter.When(opts.Source != "", fromSource(opts.Source)),
	), nil
}

// Get returns one template by id ("theme//slug").
func Get(ctx context.Context, src registry.TemplateSource, id, typ string) (registry.Template, error) {
	typ, err := NormaliseType(typ)
	if err != nil {
		return registry.Template{}, err
	}
	t, err := src.Template(ctx, id, typ)
	if errors.Is(err, registry.ErrNotRegistered) {
		return t, &NotFoundError{ID: id}
	}
	return t, err
}

// NotFoundError reports a template id absent from the registry. It matches
// registry.ErrNotRegistered.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Block template '%s' not found.", e.ID)
}

func (e *NotFoundError) Unwrap() error { return registry.ErrNotRegistered }

// IDs returns template ids.
func IDs(ts []registry.Template) []string {
	ids := make([]string, len(ts))
	for i, t := range ts {
		ids[i] = t.ID
	}
	return ids
}

// Record projects a template. A missing area is empty.
func Record(t registry.Template) output.Record {
	return output.Record{
		{Name: "id", Value: t.ID},
		{Name: "slug", Value: t.Slug},
		{Name: "theme", Value: t.Theme},
		{Name: "type", Value: t.Type},
		{Name: "source", Value: t.Source},
		{Name: "origin", Value: t.Origin.Value()},
		{Name: "title", Value: string(t.Title)},
		{Name: "description", Value: t.Description},
		{Name: "status", Value: t.Status},
		{Name: "author", Value: t.Author.Value()},
		{Name: "is_custom", Value: t.IsCustom},
		{Name: "has_theme_file", Value: t.HasThemeFile},
		{Name: "area", Value: t.Area.Or("")},
		{Name: "content", Value: string(t.Content)},
	}
}

// Records projects a slice of templates.
func Records(ts []registry.Template) []output.Record {
	out := make([]output.Record, len(ts))
	for i, t := range ts {
		out[i] = Record(t)
	}
	return out
}

func inSlugs(slugs []string) filter.Predicate[registry.Template] {
	return func(t registry.Template) bool { return slices.Contains(slugs, t.Slug) }
}

func inArea(area string) filter.Predicate[registry.Template] {
	return func(t registry.Template) bool { return t.Area.Or("") == area }
}

func forPostType(pt string) filter.Predicate[registry.Template] {
	return func(t registry.Template) bool { return slices.Contains(t.PostTypes.Or(nil), pt) }
}

func fromSource(s string) filter.Predicate[registry.Template] {
	return func(t registry.Template) bool { return t.Source == s }
}
