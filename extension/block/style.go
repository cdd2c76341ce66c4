// style.go implements "wpblock block style" and "wpblock block binding".
//
// Both registries are small and keyed under a block or a source name, so they
// share a file. Styles are keyed by block and style name together; there is
// no single id to print, so style list omits the ids format.

package block

import (
	"github.com/jpl-au/wpblock/cmd"
	"github.com/jpl-au/wpblock/extension"
	"github.com/jpl-au/wpblock/internal/binding"
	"github.com/jpl-au/wpblock/internal/blockstyle"
	"github.com/jpl-au/wpblock/internal/log"
	"github.com/jpl-au/wpblock/internal/output"
	"github.com/jpl-au/wpblock/internal/registry"
	"github.com/spf13/cobra"
)

func (e *Extension) newStyleCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "style",
		Short: "List and inspect registered block styles",
		Long:  `List and inspect block style variations. Requires WordPress 5.3 or greater.`,
	}

	var lf *outputFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List registered block styles",
		Long: `List registered block style variations.

  wpblock block style list --block=core/button`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) (err error) {
			block, _ := c.Flags().GetString(extension.FlagBlock)
			l := log.Event("block:style:list", "list").Detail("block", block)
			defer func() { l.Write(err) }()

			f, err := lf.formatter(blockstyle.Fields)
			if err != nil {
				return err
			}
			src, err := registryFor(c.Context(), e.ctx, resStyle)
			if err != nil {
				return err
			}
			styles, err := blockstyle.List(c.Context(), src, blockstyle.ListOptions{Block: block})
			if err != nil {
				return err
			}
			l.Detail("count", len(styles))
			// nil ids: the format flag never offers ids here.
			return printList[registry.Style](cmd.Out(), f, styles, nil, blockstyle.Records)
		},
	}
	list.Flags().String(extension.FlagBlock, "", "Only styles registered for this block")
	lf = addOutputFlags(list, blockstyle.Formats)

	var gf *outputFlags
	get := &cobra.Command{
		Use:   "get <block> <style>",
		Short: "Show a registered block style",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) (err error) {
			// Styles have no single key; the audit target is "block style".
			defer func() { log.Event("block:style:get", "get").Target(args[0] + " " + args[1]).Write(err) }()

			f, err := gf.formatter(blockstyle.Fields)
			if err != nil {
				return err
			}
			src, err := registryFor(c.Context(), e.ctx, resStyle)
			if err != nil {
				return err
			}
			st, err := blockstyle.Get(c.Context(), src, args[0], args[1])
			if err != nil {
				return err
			}
			return f.Item(cmd.Out(), blockstyle.Record(st))
		},
	}
	gf = addOutputFlags(get, output.GetFormats)

	c.AddCommand(list, get)
	return c
}

func (e *Extension) newBindingCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "binding",
		Short: "List and inspect registered block binding sources",
		Long:  `List and inspect block binding sources. Requires WordPress 6.5 or greater.`,
	}

	var lf *outputFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List registered block binding sources",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) (err error) {
			l := log.Event("block:binding:list", "list")
			defer func() { l.Write(err) }()

			f, err := lf.formatter(binding.Fields)
			if err != nil {
				return err
			}
			src, err := registryFor(c.Context(), e.ctx, resBinding)
			if err != nil {
				return err
			}
			bindings, err := binding.List(c.Context(), src)
			if err != nil {
				return err
			}
			l.Detail("count", len(bindings))
			return printList(cmd.Out(), f, bindings, binding.IDs, binding.Records)
		},
	}
	lf = addOutputFlags(list, output.ListFormats)

	var gf *outputFlags
	get := &cobra.Command{
		Use:   "get <name>",
		Short: "Show a registered block binding source",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) (err error) {
			defer func() { log.Event("block:binding:get", "get").Target(args[0]).Write(err) }()

			f, err := gf.formatter(binding.Fields)
			if err != nil {
				return err
			}
			src, err := registryFor(c.Context(), e.ctx, resBinding)
			if err != nil {
				return err
			}
			b, err := binding.Get(c.Context(), src, args[0])
			if err != nil {
				return err
			}
			return f.Item(cmd.Out(), binding.Record(b))
		},
	}
	gf = addOutputFlags(get, output.GetFormats)

	c.AddCommand(list, get)
	return c
}
