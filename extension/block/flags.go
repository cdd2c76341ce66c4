// flags.go holds the output flags shared by every list and get command and
// the enum flag type used for --sync-status and --type.

package block

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/jpl-au/wpblock/extension"
	"github.com/jpl-au/wpblock/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type outputFlags struct {
	format *output.FormatValue
	field  string
	fields string
}

func addOutputFlags(c *cobra.Command, formats []output.Format) *outputFlags {
	o := &outputFlags{format: output.NewFormatValue(formats)}
	c.Flags().Var(o.format, extension.FlagFormat, "Output format: "+o.format.Names())
	c.Flags().StringVar(&o.field, extension.FlagField, "", "Print the value of a single field")
	c.Flags().StringVar(&o.fields, extension.FlagFields, "", "Comma-separated fields to show, in order")
	// Only fails for an undefined or already-completed flag; the flag is
	// defined just above on a fresh command.
	_ = c.RegisterFlagCompletionFunc(extension.FlagFormat, func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return strings.Split(o.format.Names(), ", "), cobra.ShellCompDirectiveNoFileComp
	})
	return o
}

// formatter builds and validates a formatter. Unknown field names fail here,
// before any backend is touched.
func (o *outputFlags) formatter(fields output.Fields) (*output.Formatter, error) {
	f := output.New(output.Options{
		Format: o.format.Format(),
		Field:  o.field,
		Fields: output.ParseFields(o.fields),
	}, fields)
	return f, f.Validate()
}

// printList writes items in the chosen format. ids may be nil for resources
// without an ids format.
func printList[T any](w io.Writer, f *output.Formatter, items []T, ids func([]T) []string, records func([]T) []output.Record) error {
	if f.Format() == output.IDs && ids != nil {
		return output.WriteIDs(w, ids(items))
	}
	return f.Items(w, records(items))
}

// enumValue is a pflag.Value restricted to a fixed set of strings.
type enumValue struct {
	value   string
	allowed []string
}

var _ pflag.Value = (*enumValue)(nil)

func newEnum(def string, allowed ...string) *enumValue {
	return &enumValue{value: def, allowed: allowed}
}

func (v *enumValue) String() string { return v.value }

func (v *enumValue) Set(s string) error {
	if !slices.Contains(v.allowed, s) {
		return fmt.Errorf("invalid value %q (valid: %s)", s, strings.Join(v.allowed, ", "))
	}
	v.value = s
	return nil
}

func (v *enumValue) Type() string { return "string" }
