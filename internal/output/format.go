// format.go defines the output formats and the pflag value that restricts a
// command's --format flag to the formats it offers.

package output

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

// Format names an output mode.
type Format string

// Output formats.
const (
	Table Format = "table"
	CSV   Format = "csv"
	JSON  Format = "json"
	YAML  Format = "yaml"
	Count Format = "count"
	IDs   Format = "ids"
)

// Format sets offered by list and get commands.
var (
	ListFormats = []Format{Table, CSV, JSON, Count, YAML, IDs}
	GetFormats  = []Format{Table, CSV, JSON, YAML}
)

// FormatValue is a pflag.Value accepting one of a fixed set of formats.
type FormatValue struct {
	value   Format
	allowed []Format
}

var _ pflag.Value = (*FormatValue)(nil)

// NewFormatValue returns a value defaulting to table.
func NewFormatValue(allowed []Format) *FormatValue {
	return &FormatValue{value: Table, allowed: allowed}
}

// String returns the current format.
func (v *FormatValue) String() string { return string(v.value) }

// Set validates and stores a format.
func (v *FormatValue) Set(s string) error {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(v.allowed, f) {
		return fmt.Errorf("%w %q (valid: %s)", ErrInvalidFormat, s, v.Names())
	}
	v.value = f
	return nil
}

// Type is shown in usage output.
func (v *FormatValue) Type() string { return "format" }

// Format returns the selected format.
func (v *FormatValue) Format() Format { return v.value }

// Names lists the allowed formats, comma-separated.
func (v *FormatValue) Names() string {
	names := make([]string, len(v.allowed))
	for i, f := range v.allowed {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// ParseFields splits a --fields value into trimmed, non-empty names.
func ParseFields(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
