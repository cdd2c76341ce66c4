// Package output renders projected resource records as table, CSV, JSON,
// YAML, a count or a list of identifiers.
//
// Records keep their field order so every format prints columns in the order
// the resource defines them.
package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidField is returned when --field or --fields names an unknown field.
	ErrInvalidField = errors.New("invalid field")
	// ErrInvalidFormat is returned for a format the command does not offer.
	ErrInvalidFormat = errors.New("invalid format")
)

// FieldError reports an unknown field name. It matches ErrInvalidField.
type FieldError struct {
	Name string
}

func (e *FieldError) Error() string { return fmt.Sprintf("Invalid field: %s.", e.Name) }

// Is reports whether target is ErrInvalidField.
func (e *FieldError) Is(target error) bool { return target == ErrInvalidField }

// Field is one named value of a record.
type Field struct {
	Name  string
	Value any
}

// Record is a projected resource with a stable field order.
type Record []Field

// Get returns the value of the named field.
func (r Record) Get(name string) (any, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Select returns a record holding only the named fields, in the given order.
func (r Record) Select(names []string) (Record, error) {
	out := make(Record, 0, len(names))
	for _, n := range names {
		v, ok := r.Get(n)
		if !ok {
			return nil, &FieldError{Name: n}
		}
		out = append(out, Field{Name: n, Value: v})
	}
	return out, nil
}

// MarshalJSON writes the record as an object with keys in field order.
func (r Record) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := encodeJSON(f.Name)
		if err != nil {
			return nil, err
		}
		v, err := encodeJSON(f.Value)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		b.Write(k)
		b.WriteByte(':')
		b.Write(v)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// MarshalYAML writes the record as a mapping with keys in field order.
func (r Record) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range r {
		var v yaml.Node
		if err := v.Encode(f.Value); err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Name},
			&v,
		)
	}
	return n, nil
}

// encodeJSON marshals v without HTML escaping; block markup stays readable.
func encodeJSON(v any) ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(b.Bytes(), []byte("\n")), nil
}
