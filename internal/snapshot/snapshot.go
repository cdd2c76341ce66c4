// Package snapshot stores a site's block registries in a single YAML or JSON
// document and serves them as a registry.Provider.
//
// Snapshots make the registries available without a live site: capture one
// with "wpblock snapshot save", commit it, and point site.snapshot at it.
// JSON snapshots may carry comments and trailing commas (JWCC).
package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jpl-au/wpblock/internal/registry"
	"github.com/natefinch/atomic"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

// Snapshot is a point-in-time copy of every block registry on a site.
type Snapshot struct {
	WordPress         string                     `json:"wordpress" yaml:"wordpress"`
	Site              string                     `json:"site,omitempty" yaml:"site,omitempty"`
	Captured          string                     `json:"captured,omitempty" yaml:"captured,omitempty"`
	BlockTypes        []registry.BlockType       `json:"block_types,omitempty" yaml:"block_types,omitempty"`
	Patterns          []registry.Pattern         `json:"patterns,omitempty" yaml:"patterns,omitempty"`
	PatternCategories []registry.PatternCategory `json:"pattern_categories,omitempty" yaml:"pattern_categories,omitempty"`
	Styles            []registry.Style           `json:"styles,omitempty" yaml:"styles,omitempty"`
	Bindings          []registry.Binding         `json:"bindings,omitempty" yaml:"bindings,omitempty"`
	Templates         []registry.Template        `json:"templates,omitempty" yaml:"templates,omitempty"`
	TemplateParts     []registry.Template        `json:"template_parts,omitempty" yaml:"template_parts,omitempty"`
}

// isJSON reports whether path should be read and written as JSON.
func isJSON(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return true
	}
	return false
}

// Load reads a snapshot file. The extension selects the decoder: .json and
// .jsonc are JSON with comments allowed, anything else is YAML.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	s, err := Parse(data, isJSON(path))
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes snapshot data.
func Parse(data []byte, jsonc bool) (*Snapshot, error) {
	var s Snapshot
	if jsonc {
		std, err := hujson.Standardize(data)
		if err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
		if err := json.Unmarshal(std, &s); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	s.normalise()
	return &s, nil
}

// normalise fills template types left implicit by the list they sit in.
func (s *Snapshot) normalise() {
	for i := range s.Templates {
		if s.Templates[i].Type == "" {
			s.Templates[i].Type = registry.TemplateTypePage
		}
	}
	for i := range s.TemplateParts {
		if s.TemplateParts[i].Type == "" {
			s.TemplateParts[i].Type = registry.TemplateTypePart
		}
	}
}

// Save writes the snapshot atomically, as JSON or YAML by file extension.
// Refreshing the snapshot the site is currently reading from is common, and
// a half-written file would leave every registry command broken.
func (s *Snapshot) Save(path string) error {
	var data []byte
	var err error
	if isJSON(path) {
		data, err = json.MarshalIndent(s, "", "  ")
		data = append(data, '\n')
	} else {
		var b bytes.Buffer
		enc := yaml.NewEncoder(&b)
		enc.SetIndent(2)
		err = enc.Encode(s)
		data = b.Bytes()
	}
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create snapshot directory: %w", err)
		}
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Capture reads every registry from p. Kinds the provider cannot serve are
// left empty: REST has no binding sources, and a partial snapshot is more
// useful than none.
func Capture(ctx context.Context, p registry.Provider, site string) (*Snapshot, error) {
	s := &Snapshot{Site: site, Captured: time.Now().UTC().Format(time.RFC3339)}

	var err error
	if s.WordPress, err = p.Version(ctx); err != nil {
		return nil, fmt.Errorf("version: %w", err)
	}
	if s.BlockTypes, err = tolerate(p.BlockTypes(ctx)); err != nil {
		return nil, fmt.Errorf("block types: %w", err)
	}
	if s.Patterns, err = tolerate(p.Patterns(ctx)); err != nil {
		return nil, fmt.Errorf("patterns: %w", err)
	}
	if s.PatternCategories, err = tolerate(p.PatternCategories(ctx)); err != nil {
		return nil, fmt.Errorf("pattern categories: %w", err)
	}
	if s.Styles, err = tolerate(p.Styles(ctx)); err != nil {
		return nil, fmt.Errorf("styles: %w", err)
	}
	if s.Bindings, err = tolerate(p.Bindings(ctx)); err != nil {
		return nil, fmt.Errorf("bindings: %w", err)
	}
	if s.Templates, err = tolerate(p.Templates(ctx, registry.TemplateTypePage)); err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}
	if s.TemplateParts, err = tolerate(p.Templates(ctx, registry.TemplateTypePart)); err != nil {
		return nil, fmt.Errorf("template parts: %w", err)
	}
	return s, nil
}

func tolerate[T any](items []T, err error) ([]T, error) {
	if errors.Is(err, registry.ErrUnsupported) {
		return nil, nil
	}
	return items, err
}
