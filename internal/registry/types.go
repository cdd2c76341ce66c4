// types.go defines one record type per registry kind. Adapters for each
// backend (REST, snapshot) decode into these shapes so the filter, projection
// and output code is written once.

package registry

// Template types accepted by TemplateSource.
const (
	TemplateTypePage = "wp_template"
	TemplateTypePart = "wp_template_part"
)

// BlockType is a registered editor block definition.
type BlockType struct {
	Name        string           `json:"name" yaml:"name"`
	Title       Optional[string] `json:"title,omitzero" yaml:"title,omitempty"`
	Description Optional[string] `json:"description,omitzero" yaml:"description,omitempty"`
	Category    Optional[string] `json:"category,omitzero" yaml:"category,omitempty"`
	Dynamic     bool             `json:"is_dynamic" yaml:"is_dynamic"`

	Icon            Optional[any]            `json:"icon,omitzero" yaml:"icon,omitempty"`
	Keywords        Optional[[]string]       `json:"keywords,omitzero" yaml:"keywords,omitempty"`
	Parent          Optional[[]string]       `json:"parent,omitzero" yaml:"parent,omitempty"`
	Ancestor        Optional[[]string]       `json:"ancestor,omitzero" yaml:"ancestor,omitempty"`
	AllowedBlocks   Optional[[]string]       `json:"allowed_blocks,omitzero" yaml:"allowed_blocks,omitempty"`
	Supports        Optional[map[string]any] `json:"supports,omitzero" yaml:"supports,omitempty"`
	Attributes      Optional[map[string]any] `json:"attributes,omitzero" yaml:"attributes,omitempty"`
	ProvidesContext Optional[map[string]any] `json:"provides_context,omitzero" yaml:"provides_context,omitempty"`
	UsesContext     Optional[[]string]       `json:"uses_context,omitzero" yaml:"uses_context,omitempty"`
	BlockHooks      Optional[map[string]any] `json:"block_hooks,omitzero" yaml:"block_hooks,omitempty"`
	Selectors       Optional[map[string]any] `json:"selectors,omitzero" yaml:"selectors,omitempty"`
	Styles          Optional[[]any]          `json:"styles,omitzero" yaml:"styles,omitempty"`
	Example         Optional[any]            `json:"example,omitzero" yaml:"example,omitempty"`

	EditorScriptHandles Optional[[]string] `json:"editor_script_handles,omitzero" yaml:"editor_script_handles,omitempty"`
	ScriptHandles       Optional[[]string] `json:"script_handles,omitzero" yaml:"script_handles,omitempty"`
	ViewScriptHandles   Optional[[]string] `json:"view_script_handles,omitzero" yaml:"view_script_handles,omitempty"`
	ViewScriptModuleIDs Optional[[]string] `json:"view_script_module_ids,omitzero" yaml:"view_script_module_ids,omitempty"`
	EditorStyleHandles  Optional[[]string] `json:"editor_style_handles,omitzero" yaml:"editor_style_handles,omitempty"`
	StyleHandles        Optional[[]string] `json:"style_handles,omitzero" yaml:"style_handles,omitempty"`
	ViewStyleHandles    Optional[[]string] `json:"view_style_handles,omitzero" yaml:"view_style_handles,omitempty"`

	APIVersion Optional[int] `json:"api_version,omitzero" yaml:"api_version,omitempty"`
}

// Pattern is a registered block pattern. Keys follow the pattern registry's
// camelCase naming.
type Pattern struct {
	Name          string             `json:"name" yaml:"name"`
	Title         Optional[string]   `json:"title,omitzero" yaml:"title,omitempty"`
	Description   Optional[string]   `json:"description,omitzero" yaml:"description,omitempty"`
	Categories    Optional[[]string] `json:"categories,omitzero" yaml:"categories,omitempty"`
	Content       Optional[string]   `json:"content,omitzero" yaml:"content,omitempty"`
	Keywords      Optional[[]string] `json:"keywords,omitzero" yaml:"keywords,omitempty"`
	BlockTypes    Optional[[]string] `json:"blockTypes,omitzero" yaml:"blockTypes,omitempty"`
	PostTypes     Optional[[]string] `json:"postTypes,omitzero" yaml:"postTypes,omitempty"`
	TemplateTypes Optional[[]string] `json:"templateTypes,omitzero" yaml:"templateTypes,omitempty"`
	Inserter      Optional[bool]     `json:"inserter,omitzero" yaml:"inserter,omitempty"`
	ViewportWidth Optional[int]      `json:"viewportWidth,omitzero" yaml:"viewportWidth,omitempty"`
}

// PatternCategory groups patterns in the inserter.
type PatternCategory struct {
	Name        string           `json:"name" yaml:"name"`
	Label       Optional[string] `json:"label,omitzero" yaml:"label,omitempty"`
	Description Optional[string] `json:"description,omitzero" yaml:"description,omitempty"`
}

// Style is a named visual variation of a block, keyed by (BlockName, Name).
type Style struct {
	BlockName   string           `json:"block_name" yaml:"block_name"`
	Name        string           `json:"name" yaml:"name"`
	Label       Optional[string] `json:"label,omitzero" yaml:"label,omitempty"`
	IsDefault   Optional[bool]   `json:"is_default,omitzero" yaml:"is_default,omitempty"`
	StyleHandle Optional[string] `json:"style_handle,omitzero" yaml:"style_handle,omitempty"`
	InlineStyle Optional[string] `json:"inline_style,omitzero" yaml:"inline_style,omitempty"`
}

// Binding is a registered block bindings source.
type Binding struct {
	Name        string             `json:"name" yaml:"name"`
	Label       string             `json:"label" yaml:"label"`
	UsesContext Optional[[]string] `json:"uses_context,omitzero" yaml:"uses_context,omitempty"`
}

// Template is a block template or template part.
type Template struct {
	ID           string             `json:"id" yaml:"id"`
	Slug         string             `json:"slug" yaml:"slug"`
	Theme        string             `json:"theme" yaml:"theme"`
	Type         string             `json:"type" yaml:"type"`
	Source       string             `json:"source" yaml:"source"`
	Origin       Optional[string]   `json:"origin,omitzero" yaml:"origin,omitempty"`
	Title        Text               `json:"title" yaml:"title"`
	Description  string             `json:"description" yaml:"description"`
	Status       string             `json:"status" yaml:"status"`
	Author       Optional[int64]    `json:"author,omitzero" yaml:"author,omitempty"`
	IsCustom     bool               `json:"is_custom" yaml:"is_custom"`
	HasThemeFile bool               `json:"has_theme_file" yaml:"has_theme_file"`
	Area         Optional[string]   `json:"area,omitzero" yaml:"area,omitempty"`
	PostTypes    Optional[[]string] `json:"post_types,omitzero" yaml:"post_types,omitempty"`
	Content      Text               `json:"content" yaml:"content"`
}
