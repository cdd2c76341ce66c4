// pattern.go implements "wpblock block pattern" and
// "wpblock block pattern-category".
//
// Patterns and their categories come from the same registry and are usually
// browsed together, so both command groups live here and share the pattern
// version gate.

package block

import (
	"github.com/jpl-au/wpblock/cmd"
	"github.com/jpl-au/wpblock/extension"
	"github.com/jpl-au/wpblock/internal/log"
	"github.com/jpl-au/wpblock/internal/output"
	"github.com/jpl-au/wpblock/internal/pattern"
	"github.com/jpl-au/wpblock/internal/patterncategory"
	"github.com/spf13/cobra"
)

func (e *Extension) newPatternCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "pattern",
		Short: "List and inspect registered block patterns",
		Long:  `List and inspect registered block patterns. Requires WordPress 5.5 or greater.`,
	}
	c.AddCommand(e.newPatternListCmd(), e.newPatternGetCmd())
	return c
}

func (e *Extension) newPatternListCmd() *cobra.Command {
	var o *outputFlags
	c := &cobra.Command{
		Use:   "list",
		Short: "List registered block patterns",
		Long: `List registered block patterns.

  wpblock block pattern list --category=featured
  wpblock block pattern list --search=hero --inserter`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) (err error) {
			category, _ := c.Flags().GetString(extension.FlagCategory)
			search, _ := c.Flags().GetString(extension.FlagSearch)
			inserter, _ := c.Flags().GetBool(extension.FlagInserter)

			l := log.Event("block:pattern:list", "list").Detail("category", category).Detail("search", search)
			defer func() { l.Write(err) }()

			f, err := o.formatter(pattern.Fields)
			if err != nil {
				return err
			}
			src, err := registryFor(c.Context(), e.ctx, resPattern)
			if err != nil {
				return err
			}
			patterns, err := pattern.List(c.Context(), src, pattern.ListOptions{
				Category: category,
				Search:   search,
				Inserter: inserter,
			})
			if err != nil {
				return err
			}
			l.Detail("count", len(patterns))
			return printList(cmd.Out(), f, patterns, pattern.IDs, pattern.Records)
		},
	}
	c.Flags().String(extension.FlagCategory, "", "Only patterns in this category")
	c.Flags().String(extension.FlagSearch, "", "Only patterns whose title or keywords contain this text")
	c.Flags().Bool(extension.FlagInserter, false, "Only patterns shown in the inserter")
	o = addOutputFlags(c, output.ListFormats)
	return c
}

func (e *Extension) newPatternGetCmd() *cobra.Command {
	var o *outputFlags
	c := &cobra.Command{
		Use:   "get <name>",
		Short: "Show a registered block pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) (err error) {
			defer func() { log.Event("block:pattern:get", "get").Target(args[0]).Write(err) }()

			f, err := o.formatter(pattern.Fields)
			if err != nil {
				return err
			}
			src, err := registryFor(c.Context(), e.ctx, resPattern)
			if err != nil {
				return err
			}
			p, err := pattern.Get(c.Context(), src, args[0])
			if err != nil {
				return err
			}
			return f.Item(cmd.Out(), pattern.Record(p))
		},
	}
	o = addOutputFlags(c, output.GetFormats)
	return c
}

func (e *Extension) newPatternCategoryCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "pattern-category",
		Short: "List and inspect registered block pattern categories",
		Long:  `List and inspect registered block pattern categories. Requires WordPress 5.5 or greater.`,
	}

	var lf *outputFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List registered pattern categories",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) (err error) {
			l := log.Event("block:pattern-category:list", "list")
			defer func() { l.Write(err) }()

			f, err := lf.formatter(patterncategory.Fields)
			if err != nil {
				return err
			}
			src, err := registryFor(c.Context(), e.ctx, resPatternCategory)
			if err != nil {
				return err
			}
			cats, err := patterncategory.List(c.Context(), src)
			if err != nil {
				return err
			}
			l.Detail("count", len(cats))
			return printList(cmd.Out(), f, cats, patterncategory.IDs, patterncategory.Records)
		},
	}
	lf = addOutputFlags(list, output.ListFormats)

	var gf *outputFlags
	get := &cobra.Command{
		Use:   "get <name>",
		Short: "Show a registered pattern category",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) (err error) {
			defer func() { log.Event("block:pattern-category:get", "get").Target(args[0]).Write(err) }()

			f, err := gf.formatter(patterncategory.Fields)
			if err != nil {
				return err
			}
			// Categories arrived with patterns but carry their own gate.
			src, err := registryFor(c.Context(), e.ctx, resPatternCategory)
			if err != nil {
				return err
			}
			cat, err := patterncategory.Get(c.Context(), src, args[0])
			if err != nil {
				return err
			}
			return f.Item(cmd.Out(), patterncategory.Record(cat))
		},
	}
	gf = addOutputFlags(get, output.GetFormats)

	c.AddCommand(list, get)
	return c
}
