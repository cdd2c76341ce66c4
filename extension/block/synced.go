// synced.go implements "wpblock block synced-pattern": list, get, create,
// update and delete of wp_block posts.
//
// Design: unlike the registry commands, these write to the site. Content is
// resolved before the backend is opened so a bad file path fails without a
// database connection. Delete keeps going past bad ids and reports each one;
// one typo in a batch should not leave the rest untouched.

package block

import (
	"fmt"
	"os"
	"strings"

	"github.com/jpl-au/wpblock/cmd"
	"github.com/jpl-au/wpblock/extension"
	"github.com/jpl-au/wpblock/internal/input"
	"github.com/jpl-au/wpblock/internal/log"
	"github.com/jpl-au/wpblock/internal/output"
	"github.com/jpl-au/wpblock/internal/posts"
	"github.com/jpl-au/wpblock/internal/synced"
	"github.com/spf13/cobra"
)

func (e *Extension) newSyncedPatternCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "synced-pattern",
		Short: "Manage synced patterns (reusable blocks)",
		Long: `List, inspect, create, update and delete synced patterns, stored as
wp_block posts. Requires WordPress 5.0 or greater.`,
	}
	c.AddCommand(
		e.newSyncedListCmd(),
		e.newSyncedGetCmd(),
		e.newSyncedCreateCmd(),
		e.newSyncedUpdateCmd(),
		e.newSyncedDeleteCmd(),
	)
	return c
}

func (e *Extension) newSyncedListCmd() *cobra.Command {
	var o *outputFlags
	status := newEnum(synced.All, synced.Synced, synced.Unsynced, synced.All)
	c := &cobra.Command{
		Use:   "list",
		Short: "List published synced patterns",
		Long: `List published synced patterns ordered by title.

  wpblock block synced-pattern list --sync-status=unsynced
  wpblock block synced-pattern list --search=footer --format=ids`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) (err error) {
			search, _ := c.Flags().GetString(extension.FlagSearch)
			l := log.Event("block:synced-pattern:list", "list").
				Detail("search", search).
				Detail("sync_status", status.String())
			defer func() { l.Write(err) }()

			f, err := o.formatter(synced.Fields)
			if err != nil {
				return err
			}
			store, err := postsFor(c.Context(), e.ctx)
			if err != nil {
				return err
			}
			ps, err := synced.List(c.Context(), store, synced.ListOptions{Search: search, SyncStatus: status.String()})
			if err != nil {
				return err
			}
			l.Detail("count", len(ps))
			return printList(cmd.Out(), f, ps, synced.IDs, synced.Records)
		},
	}
	c.Flags().String(extension.FlagSearch, "", "Only patterns whose title contains this text")
	c.Flags().Var(status, extension.FlagSyncStatus, "synced, unsynced or all")
	o = addOutputFlags(c, output.ListFormats)
	return c
}

func (e *Extension) newSyncedGetCmd() *cobra.Command {
	var o *outputFlags
	c := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a synced pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) (err error) {
			defer func() { log.Event("block:synced-pattern:get", "get").Target(args[0]).Write(err) }()

			f, err := o.formatter(synced.Fields)
			if err != nil {
				return err
			}
			store, err := postsFor(c.Context(), e.ctx)
			if err != nil {
				return err
			}
			p, err := synced.Get(c.Context(), store, args[0])
			if err != nil {
				return err
			}
			return f.Item(cmd.Out(), synced.Record(p))
		},
	}
	o = addOutputFlags(c, output.GetFormats)
	return c
}

// fileArg returns the optional content file argument at index i.
func fileArg(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}
	return ""
}

func (e *Extension) newSyncedCreateCmd() *cobra.Command {
	status := newEnum(synced.Synced, synced.Synced, synced.Unsynced)
	c := &cobra.Command{
		Use:   "create [<file>]",
		Short: "Create a synced pattern",
		Long: `Create a synced pattern from --content, a file, or stdin ("-").
The file argument takes precedence over --content.

  wpblock block synced-pattern create --title="Footer" footer.html
  cat hero.html | wpblock block synced-pattern create --title="Hero" - --porcelain`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) (err error) {
			title, _ := c.Flags().GetString(extension.FlagTitle)
			inline, _ := c.Flags().GetString(extension.FlagContent)
			slug, _ := c.Flags().GetString(extension.FlagSlug)
			postStatus, _ := c.Flags().GetString(extension.FlagStatus)
			porcelain, _ := c.Flags().GetBool(extension.FlagPorcelain)

			var id int64
			defer func() {
				log.Event("block:synced-pattern:create", "create").
					Target(fmt.Sprint(id)).
					Detail("sync_status", status.String()).
					Write(err)
			}()

			content, err := input.Resolve(fileArg(args, 0), inline, os.Stdin)
			if err != nil {
				return err
			}
			opts := synced.CreateOptions{
				Title:      title,
				Content:    content,
				Slug:       slug,
				Status:     postStatus,
				SyncStatus: status.String(),
				Porcelain:  porcelain,
			}
			if err = opts.Validate(); err != nil {
				return err
			}
			store, err := postsFor(c.Context(), e.ctx)
			if err != nil {
				return err
			}
			if id, err = synced.Create(c.Context(), store, cmd.Reporter{}, opts); err != nil {
				return err
			}
			// Porcelain output is the id alone, for $(...) capture.
			if porcelain {
				fmt.Fprintln(cmd.Out(), id)
			}
			return nil
		},
	}
	c.Flags().String(extension.FlagTitle, "", "Pattern title (required)")
	c.Flags().String(extension.FlagContent, "", "Pattern content (block markup)")
	c.Flags().String(extension.FlagSlug, "", "Post slug (default derived from the title)")
	c.Flags().String(extension.FlagStatus, posts.StatusPublish, "Post status")
	c.Flags().Var(status, extension.FlagSyncStatus, "synced or unsynced")
	c.Flags().Bool(extension.FlagPorcelain, false, "Print only the new pattern id")
	return c
}

func (e *Extension) newSyncedUpdateCmd() *cobra.Command {
	status := newEnum("", synced.Synced, synced.Unsynced)
	c := &cobra.Command{
		Use:   "update <id> [<file>]",
		Short: "Update a synced pattern",
		Long: `Update a synced pattern's title, content or sync status. Content comes
from a file, stdin ("-") or --content; the file argument takes precedence.

  wpblock block synced-pattern update 42 --title="New footer"
  wpblock block synced-pattern update 42 footer.html --sync-status=unsynced`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(c *cobra.Command, args []string) (err error) {
			title, _ := c.Flags().GetString(extension.FlagTitle)
			inline, _ := c.Flags().GetString(extension.FlagContent)

			defer func() {
				log.Event("block:synced-pattern:update", "update").
					Target(args[0]).
					Detail("sync_status", status.String()).
					Write(err)
			}()

			// Empty content leaves the stored content alone.
			content, err := input.Resolve(fileArg(args, 1), inline, os.Stdin)
			if err != nil {
				return err
			}
			store, err := postsFor(c.Context(), e.ctx)
			if err != nil {
				return err
			}
			return synced.Update(c.Context(), store, cmd.Reporter{}, args[0], synced.UpdateOptions{
				Title:      title,
				Content:    content,
				SyncStatus: status.String(),
			})
		},
	}
	c.Flags().String(extension.FlagTitle, "", "New title")
	c.Flags().String(extension.FlagContent, "", "New content (block markup)")
	c.Flags().Var(status, extension.FlagSyncStatus, "synced or unsynced")
	return c
}

func (e *Extension) newSyncedDeleteCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete synced patterns",
		Long: `Move synced patterns to the trash, or delete them permanently with
--force. Ids that cannot be deleted are reported and skipped; the command
then exits non-zero.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) (err error) {
			force, _ := c.Flags().GetBool(extension.FlagForce)
			defer func() {
				log.Event("block:synced-pattern:delete", "delete").
					Target(strings.Join(args, " ")).
					Detail("force", force).
					Write(err)
			}()

			store, err := postsFor(c.Context(), e.ctx)
			if err != nil {
				return err
			}
			return synced.Delete(c.Context(), store, cmd.Reporter{}, args, force)
		},
	}
	c.Flags().Bool(extension.FlagForce, false, "Delete permanently instead of trashing")
	return c
}
