// formatter.go renders record sets (list commands) and single records (get
// commands) according to the --format, --field and --fields options.
//
// Design: --field wins over --format's layout and prints bare values, one per
// line, so it composes with xargs. JSON and YAML still wrap those values in a
// list so machine readers get a parseable document.

package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Fields describes a resource's projection.
type Fields struct {
	All     []string // every projected field, in record order
	Default []string // shown by list when --fields is not given
	Detail  []string // added to Default by get when --fields is not given
}

// Options holds the user's output choices.
type Options struct {
	Format Format
	Field  string   // single field to print
	Fields []string // explicit field subset
}

// Formatter renders records for one resource kind.
type Formatter struct {
	opts   Options
	fields Fields
}

// New returns a formatter for the given projection.
func New(opts Options, fields Fields) *Formatter {
	if opts.Format == "" {
		opts.Format = Table
	}
	return &Formatter{opts: opts, fields: fields}
}

// Validate checks --field and --fields against the projection. Commands call
// it before any provider access.
func (f *Formatter) Validate() error {
	if f.opts.Field != "" && !slices.Contains(f.fields.All, f.opts.Field) {
		return &FieldError{Name: f.opts.Field}
	}
	for _, n := range f.opts.Fields {
		if !slices.Contains(f.fields.All, n) {
			return &FieldError{Name: n}
		}
	}
	return nil
}

// Format returns the selected format.
func (f *Formatter) Format() Format { return f.opts.Format }

// Items renders a list of records.
func (f *Formatter) Items(w io.Writer, items []Record) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if f.opts.Format == Count {
		_, err := fmt.Fprintln(w, len(items))
		return err
	}
	if f.opts.Field != "" {
		values := make([]any, 0, len(items))
		for _, it := range items {
			// Validate has checked the name; a record lacking it prints empty.
			v, _ := it.Get(f.opts.Field)
			values = append(values, v)
		}
		return f.values(w, values)
	}

	names := f.opts.Fields
	if len(names) == 0 {
		names = f.fields.Default
	}
	rows := make([]Record, 0, len(items))
	for _, it := range items {
		r, err := it.Select(names)
		if err != nil {
			return err
		}
		rows = append(rows, r)
	}

	switch f.opts.Format {
	case Table:
		return writeTable(w, names, cells(rows))
	case CSV:
		return writeCSV(w, names, cells(rows))
	case JSON:
		return writeJSON(w, rows)
	case YAML:
		return writeYAML(w, rows)
	default:
		return fmt.Errorf("%w: %s", ErrInvalidFormat, f.opts.Format)
	}
}

// Item renders a single record. Without --fields the projection's default
// fields are extended with its detail fields.
func (f *Formatter) Item(w io.Writer, item Record) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if f.opts.Field != "" {
		v, _ := item.Get(f.opts.Field)
		return f.value(w, v)
	}

	names := f.opts.Fields
	if len(names) == 0 {
		names = append(slices.Clone(f.fields.Default), f.fields.Detail...)
	}
	rec, err := item.Select(names)
	if err != nil {
		return err
	}

	// A single record turns sideways: one row per field.
	switch f.opts.Format {
	case Table:
		return writeTable(w, []string{"Field", "Value"}, pairs(rec))
	case CSV:
		return writeCSV(w, []string{"Field", "Value"}, pairs(rec))
	case JSON:
		return writeJSON(w, rec)
	case YAML:
		return writeYAML(w, rec)
	default:
		return fmt.Errorf("%w: %s", ErrInvalidFormat, f.opts.Format)
	}
}

// WriteIDs writes identifiers space-joined on one line.
func WriteIDs(w io.Writer, ids []string) error {
	_, err := fmt.Fprintln(w, strings.Join(ids, " "))
	return err
}

func (f *Formatter) values(w io.Writer, values []any) error {
	switch f.opts.Format {
	case JSON:
		return writeJSON(w, values)
	case YAML:
		return writeYAML(w, values)
	}
	for _, v := range values {
		if _, err := fmt.Fprintln(w, Scalar(v)); err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) value(w io.Writer, v any) error {
	switch f.opts.Format {
	case JSON:
		return writeJSON(w, v)
	case YAML:
		return writeYAML(w, v)
	}
	_, err := fmt.Fprintln(w, Scalar(v))
	return err
}

// Scalar renders a value for a table cell, CSV cell or --field line.
// Lists and maps become compact JSON; null becomes empty.
func Scalar(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	b, err := encodeJSON(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

func cells(rows []Record) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		row := make([]string, len(r))
		for j, f := range r {
			row[j] = Scalar(f.Value)
		}
		out[i] = row
	}
	return out
}

func pairs(r Record) [][]string {
	out := make([][]string, len(r))
	for i, f := range r {
		out[i] = []string{f.Name, Scalar(f.Value)}
	}
	return out
}

func writeCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	b, err := encodeJSON(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	return enc.Close()
}
