// optional.go defines Optional, the present/absent wrapper used for every
// registry attribute a source may omit.
//
// Separated from types.go so the decoding rules live in one place: a key that
// is missing or explicitly null decodes as absent, anything else as present.

package registry

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Optional holds a value that a registry source may or may not provide.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Get returns the value and whether it was present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether the source provided a value.
func (o Optional[T]) IsSet() bool { return o.set }

// IsZero reports absence. Used by json omitzero and yaml omitempty.
func (o Optional[T]) IsZero() bool { return !o.set }

// Or returns the value when present, otherwise def.
func (o Optional[T]) Or(def T) T {
	if o.set {
		return o.value
	}
	return def
}

// Value returns the value when present, otherwise nil.
func (o Optional[T]) Value() any {
	if o.set {
		return o.value
	}
	return nil
}

// UnmarshalJSON decodes a present value; JSON null decodes as absent.
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*o = Optional[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// MarshalJSON encodes an absent value as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalYAML decodes a present value; YAML null decodes as absent.
func (o *Optional[T]) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode && n.Tag == "!!null" {
		*o = Optional[T]{}
		return nil
	}
	var v T
	if err := n.Decode(&v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// MarshalYAML encodes an absent value as null.
func (o Optional[T]) MarshalYAML() (any, error) {
	if !o.set {
		return nil, nil
	}
	return o.value, nil
}
