// type.go implements "wpblock block type list|get|exists".
//
// Design: exists prints nothing on a miss and exits 1 through cmd.ErrSilent,
// so shell scripts can branch on it without parsing output. A missing name is
// not an error worth an "Error:" line.

package block

import (
	"fmt"

	"github.com/jpl-au/wpblock/cmd"
	"github.com/jpl-au/wpblock/extension"
	"github.com/jpl-au/wpblock/internal/blocktype"
	"github.com/jpl-au/wpblock/internal/log"
	"github.com/jpl-au/wpblock/internal/output"
	"github.com/spf13/cobra"
)

func (e *Extension) newTypeCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "type",
		Short: "List and inspect registered block types",
		Long:  `List and inspect registered block types. Requires WordPress 5.0 or greater.`,
	}
	c.AddCommand(e.newTypeListCmd(), e.newTypeGetCmd(), e.newTypeExistsCmd())
	return c
}

func (e *Extension) newTypeListCmd() *cobra.Command {
	var o *outputFlags
	c := &cobra.Command{
		Use:   "list",
		Short: "List registered block types",
		Long: `List registered block types in registration order.

  wpblock block type list --namespace=core
  wpblock block type list --dynamic --format=ids`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return e.runTypeList(c, o)
		},
	}
	c.Flags().String(extension.FlagNamespace, "", "Only block types in this namespace")
	c.Flags().Bool(extension.FlagDynamic, false, "Only dynamic (server-rendered) block types")
	c.Flags().Bool(extension.FlagStatic, false, "Only static block types")
	o = addOutputFlags(c, output.ListFormats)
	return c
}

func (e *Extension) runTypeList(c *cobra.Command, o *outputFlags) (err error) {
	ns, _ := c.Flags().GetString(extension.FlagNamespace)
	dyn, _ := c.Flags().GetBool(extension.FlagDynamic)
	static, _ := c.Flags().GetBool(extension.FlagStatic)
	opts := blocktype.ListOptions{Namespace: ns, Dynamic: dyn, Static: static}

	l := log.Event("block:type:list", "list").Detail("namespace", ns)
	defer func() { l.Write(err) }()

	if err = opts.Validate(); err != nil {
		return err
	}
	f, err := o.formatter(blocktype.Fields)
	if err != nil {
		return err
	}
	src, err := registryFor(c.Context(), e.ctx, resType)
	if err != nil {
		return err
	}
	types, err := blocktype.List(c.Context(), src, opts)
	if err != nil {
		return err
	}
	l.Detail("count", len(types))
	return printList(cmd.Out(), f, types, blocktype.IDs, blocktype.Records)
}

func (e *Extension) newTypeGetCmd() *cobra.Command {
	var o *outputFlags
	c := &cobra.Command{
		Use:   "get <name>",
		Short: "Show a registered block type",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) (err error) {
			defer func() { log.Event("block:type:get", "get").Target(args[0]).Write(err) }()

			f, err := o.formatter(blocktype.Fields)
			if err != nil {
				return err
			}
			src, err := registryFor(c.Context(), e.ctx, resType)
			if err != nil {
				return err
			}
			bt, err := blocktype.Get(c.Context(), src, args[0])
			if err != nil {
				return err
			}
			return f.Item(cmd.Out(), blocktype.Record(bt))
		},
	}
	o = addOutputFlags(c, output.GetFormats)
	return c
}

func (e *Extension) newTypeExistsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exists <name>",
		Short: "Check whether a block type is registered",
		Long: `Exit 0 and print a success line when the block type is registered;
exit 1 without output when it is not.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) (err error) {
			name := args[0]
			found := false
			defer func() {
				log.Event("block:type:exists", "exists").Target(name).Detail("found", found).Write(err)
			}()

			src, err := registryFor(c.Context(), e.ctx, resType)
			if err != nil {
				return err
			}
			if found, err = blocktype.Exists(c.Context(), src, name); err != nil {
				return err
			}
			if !found {
				return cmd.ErrSilent
			}
			cmd.Success(fmt.Sprintf("Block type '%s' is registered.", name))
			return nil
		},
	}
}
