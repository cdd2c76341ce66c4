// Package registry defines the block-editor registry records and the
// read-only provider interfaces that serve them. Providers are injected into
// the list/get operations, so every operation can be exercised with fixtures.
package registry

import (
	"context"
	"errors"
)

var (
	// ErrNotRegistered is returned when a named item is absent from a registry.
	ErrNotRegistered = errors.New("not registered")
	// ErrUnsupported is returned when a backend cannot serve a registry kind.
	ErrUnsupported = errors.New("not supported by this backend")
)

// BlockTypeSource serves the block type registry in registration order.
type BlockTypeSource interface {
	BlockTypes(ctx context.Context) ([]BlockType, error)
	BlockType(ctx context.Context, name string) (BlockType, error)
}

// PatternSource serves the block pattern registry.
type PatternSource interface {
	Patterns(ctx context.Context) ([]Pattern, error)
	Pattern(ctx context.Context, name string) (Pattern, error)
}

// PatternCategorySource serves the pattern category registry.
type PatternCategorySource interface {
	PatternCategories(ctx context.Context) ([]PatternCategory, error)
	PatternCategory(ctx context.Context, name string) (PatternCategory, error)
}

// StyleSource serves the block style registry.
type StyleSource interface {
	Styles(ctx context.Context) ([]Style, error)
	BlockStyles(ctx context.Context, block string) ([]Style, error)
	Style(ctx context.Context, block, name string) (Style, error)
}

// BindingSource serves the block bindings source registry.
type BindingSource interface {
	Bindings(ctx context.Context) ([]Binding, error)
	Binding(ctx context.Context, name string) (Binding, error)
}

// TemplateSource serves block templates and template parts. The typ argument
// is TemplateTypePage or TemplateTypePart.
type TemplateSource interface {
	Templates(ctx context.Context, typ string) ([]Template, error)
	Template(ctx context.Context, id, typ string) (Template, error)
}

// Provider serves every registry kind plus the site's WordPress version.
// An empty version means the backend cannot tell.
type Provider interface {
	BlockTypeSource
	PatternSource
	PatternCategorySource
	StyleSource
	BindingSource
	TemplateSource
	Version(ctx context.Context) (string, error)
}
