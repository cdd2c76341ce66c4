// provider.go serves a loaded snapshot through registry.Provider.
//
// Lookups scan the slices in place rather than building maps: snapshots hold
// a few hundred records and list order must stay the registration order the
// site reported.

package snapshot

import (
	"context"
	"fmt"
	"slices"

	"github.com/jpl-au/wpblock/internal/registry"
)

// Source serves a snapshot as a registry.Provider.
type Source struct {
	snap *Snapshot
}

var _ registry.Provider = (*Source)(nil)

// NewSource wraps s. The snapshot must not be modified afterwards.
func NewSource(s *Snapshot) *Source {
	return &Source{snap: s}
}

// Open loads a snapshot file and wraps it.
func Open(path string) (*Source, error) {
	s, err := Load(path)
	if err != nil {
		return nil, err
	}
	return NewSource(s), nil
}

func find[T any](items []T, match func(T) bool) (T, bool) {
	if i := slices.IndexFunc(items, match); i >= 0 {
		return items[i], true
	}
	var zero T
	return zero, false
}

func notRegistered(kind, key string) error {
	return fmt.Errorf("%s %q: %w", kind, key, registry.ErrNotRegistered)
}

// Version returns the WordPress version recorded at capture time.
func (src *Source) Version(context.Context) (string, error) {
	return src.snap.WordPress, nil
}

// BlockTypes returns a copy. filter.Apply hands back its input when no
// filter is set, and the snapshot is shared across MCP calls, so callers
// must never hold the backing slice.
func (src *Source) BlockTypes(context.Context) ([]registry.BlockType, error) {
	return slices.Clone(src.snap.BlockTypes), nil
}

func (src *Source) BlockType(_ context.Context, name string) (registry.BlockType, error) {
	bt, ok := find(src.snap.BlockTypes, func(bt registry.BlockType) bool { return bt.Name == name })
	if !ok {
		return bt, notRegistered("block type", name)
	}
	return bt, nil
}

func (src *Source) Patterns(context.Context) ([]registry.Pattern, error) {
	return slices.Clone(src.snap.Patterns), nil
}

func (src *Source) Pattern(_ context.Context, name string) (registry.Pattern, error) {
	p, ok := find(src.snap.Patterns, func(p registry.Pattern) bool { return p.Name == name })
	if !ok {
		return p, notRegistered("pattern", name)
	}
	return p, nil
}

func (src *Source) PatternCategories(context.Context) ([]registry.PatternCategory, error) {
	return slices.Clone(src.snap.PatternCategories), nil
}

func (src *Source) PatternCategory(_ context.Context, name string) (registry.PatternCategory, error) {
	c, ok := find(src.snap.PatternCategories, func(c registry.PatternCategory) bool { return c.Name == name })
	if !ok {
		return c, notRegistered("pattern category", name)
	}
	return c, nil
}

func (src *Source) Styles(context.Context) ([]registry.Style, error) {
	return slices.Clone(src.snap.Styles), nil
}

// BlockStyles returns nil, not an error, for a block with no styles or one
// that is not registered; the REST backend behaves the same.
func (src *Source) BlockStyles(_ context.Context, block string) ([]registry.Style, error) {
	var out []registry.Style
	for _, st := range src.snap.Styles {
		if st.BlockName == block {
			out = append(out, st)
		}
	}
	return out, nil
}

func (src *Source) Style(_ context.Context, block, name string) (registry.Style, error) {
	st, ok := find(src.snap.Styles, func(st registry.Style) bool { return st.BlockName == block && st.Name == name })
	if !ok {
		return st, notRegistered("style", block+"/"+name)
	}
	return st, nil
}

func (src *Source) Bindings(context.Context) ([]registry.Binding, error) {
	return slices.Clone(src.snap.Bindings), nil
}

func (src *Source) Binding(_ context.Context, name string) (registry.Binding, error) {
	b, ok := find(src.snap.Bindings, func(b registry.Binding) bool { return b.Name == name })
	if !ok {
		return b, notRegistered("binding source", name)
	}
	return b, nil
}

func (src *Source) templates(typ string) []registry.Template {
	if typ == registry.TemplateTypePart {
		return src.snap.TemplateParts
	}
	return src.snap.Templates
}

func (src *Source) Templates(_ context.Context, typ string) ([]registry.Template, error) {
	return slices.Clone(src.templates(typ)), nil
}

func (src *Source) Template(_ context.Context, id, typ string) (registry.Template, error) {
	t, ok := find(src.templates(typ), func(t registry.Template) bool { return t.ID == id })
	if !ok {
		return t, notRegistered("template", id)
	}
	return t, nil
}
