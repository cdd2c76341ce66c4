// template.go implements "wpblock block template list|get|export".
//
// Design: export only writes template content, never metadata, so the file
// can be dropped into a theme's templates/ or parts/ directory as is. The
// --diff preview reads the same target path export would write, which keeps
// the preview and the write from disagreeing about where the file goes.

package block

import (
	"fmt"
	"os"

	"github.com/jpl-au/wpblock/cmd"
	"github.com/jpl-au/wpblock/extension"
	"github.com/jpl-au/wpblock/internal/filter"
	"github.com/jpl-au/wpblock/internal/log"
	"github.com/jpl-au/wpblock/internal/output"
	"github.com/jpl-au/wpblock/internal/registry"
	"github.com/jpl-au/wpblock/internal/template"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func addTypeFlag(c *cobra.Command) *enumValue {
	v := newEnum(registry.TemplateTypePage, registry.TemplateTypePage, registry.TemplateTypePart)
	c.Flags().Var(v, extension.FlagType, "Template type: wp_template or wp_template_part")
	return v
}

func (e *Extension) newTemplateCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "template",
		Short: "List, inspect and export block templates",
		Long:  `List, inspect and export block templates and template parts. Requires WordPress 5.9 or greater.`,
	}
	c.AddCommand(e.newTemplateListCmd(), e.newTemplateGetCmd(), e.newTemplateExportCmd())
	return c
}

func (e *Extension) newTemplateListCmd() *cobra.Command {
	var (
		o   *outputFlags
		typ *enumValue
	)
	c := &cobra.Command{
		Use:   "list",
		Short: "List block templates or template parts",
		Long: `List block templates (--type=wp_template, default) or template parts
(--type=wp_template_part).

  wpblock block template list --slug=index,single
  wpblock block template list --type=wp_template_part --area=header`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) (err error) {
			slugs, _ := c.Flags().GetString(extension.FlagSlug)
			area, _ := c.Flags().GetString(extension.FlagArea)
			postType, _ := c.Flags().GetString(extension.FlagPostType)
			source, _ := c.Flags().GetString(extension.FlagSource)

			l := log.Event("block:template:list", "list").Detail("type", typ.String())
			defer func() { l.Write(err) }()

			f, err := o.formatter(template.Fields)
			if err != nil {
				return err
			}
			src, err := registryFor(c.Context(), e.ctx, resTemplate)
			if err != nil {
				return err
			}
			ts, err := template.List(c.Context(), src, template.ListOptions{
				Type:     typ.String(),
				Slugs:    filter.SplitList(slugs),
				Area:     area,
				PostType: postType,
				Source:   source,
			})
			if err != nil {
				return err
			}
			l.Detail("count", len(ts))
			return printList(cmd.Out(), f, ts, template.IDs, template.Records)
		},
	}
	typ = addTypeFlag(c)
	c.Flags().String(extension.FlagSlug, "", "Comma-separated template slugs")
	c.Flags().String(extension.FlagArea, "", "Template part area (header, footer, ...)")
	c.Flags().String(extension.FlagPostType, "", "Only templates for this post type")
	c.Flags().String(extension.FlagSource, "", "Only templates from this source (theme, plugin, custom)")
	o = addOutputFlags(c, output.ListFormats)
	return c
}

func (e *Extension) newTemplateGetCmd() *cobra.Command {
	var (
		o   *outputFlags
		typ *enumValue
	)
	c := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a block template",
		Long: `Show a block template by id (theme//slug).

  wpblock block template get twentytwentyfour//index --field=content`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) (err error) {
			defer func() {
				log.Event("block:template:get", "get").Target(args[0]).Detail("type", typ.String()).Write(err)
			}()

			f, err := o.formatter(template.Fields)
			if err != nil {
				return err
			}
			src, err := registryFor(c.Context(), e.ctx, resTemplate)
			if err != nil {
				return err
			}
			t, err := template.Get(c.Context(), src, args[0], typ.String())
			if err != nil {
				return err
			}
			return f.Item(cmd.Out(), template.Record(t))
		},
	}
	typ = addTypeFlag(c)
	o = addOutputFlags(c, output.GetFormats)
	return c
}

func (e *Extension) newTemplateExportCmd() *cobra.Command {
	var typ *enumValue
	c := &cobra.Command{
		Use:   "export <id>",
		Short: "Export a block template's content to a file",
		Long: `Write a template's content to <dir>/<slug>.html (dir defaults to the
current directory), to --file, or to stdout with --stdout. --diff previews
the change against the existing file without writing.

  wpblock block template export twentytwentyfour//index --dir=templates
  wpblock block template export twentytwentyfour//index --file=out/home.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) (err error) {
			file, _ := c.Flags().GetString(extension.FlagFile)
			dir, _ := c.Flags().GetString(extension.FlagDir)
			stdout, _ := c.Flags().GetBool(extension.FlagStdout)
			preview, _ := c.Flags().GetBool(extension.FlagDiff)

			opts := template.ExportOptions{
				Type:   typ.String(),
				File:   file,
				Dir:    dir,
				Stdout: stdout,
				Diff:   preview,
				// Colour only when a person is reading; tests swap cmd.Out.
				Colour: cmd.Out() == os.Stdout && term.IsTerminal(int(os.Stdout.Fd())),
			}

			var res template.ExportResult
			defer func() {
				log.Event("block:template:export", "export").
					Target(args[0]).
					Detail("path", res.Path).
					Detail("written", res.Written).
					Write(err)
			}()

			if err = opts.Validate(); err != nil {
				return err
			}
			src, err := registryFor(c.Context(), e.ctx, resTemplate)
			if err != nil {
				return err
			}
			res, err = template.Export(c.Context(), cmd.Out(), src, args[0], opts)
			if err != nil {
				return err
			}
			if res.Written {
				cmd.Success(fmt.Sprintf("Exported template to '%s'.", res.Path))
			}
			return nil
		},
	}
	typ = addTypeFlag(c)
	c.Flags().String(extension.FlagFile, "", "Write to this file (parent directories are created)")
	c.Flags().String(extension.FlagDir, "", "Write <slug>.html into this directory")
	c.Flags().Bool(extension.FlagStdout, false, "Write the content to stdout")
	c.Flags().Bool(extension.FlagDiff, false, "Show a diff against the existing file instead of writing")
	return c
}
