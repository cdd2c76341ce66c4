// snapshot.go implements "wpblock snapshot save": capture every registry the
// site serves into a snapshot file for offline use.

package core

import (
	"fmt"

	"github.com/jpl-au/wpblock/cmd"
	"github.com/jpl-au/wpblock/internal/log"
	"github.com/jpl-au/wpblock/internal/site"
	"github.com/jpl-au/wpblock/internal/snapshot"
	"github.com/spf13/cobra"
)

func (e *Extension) newSnapshotCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "snapshot",
		Short: "Capture block registries to a file",
	}
	c.AddCommand(&cobra.Command{
		Use:   "save <file>",
		Short: "Save every registry and the WordPress version to a snapshot",
		Long: `Reads block types, patterns, pattern categories, styles, binding
sources, templates and template parts from the site and writes them to
<file>: JSON for .json and .jsonc, YAML otherwise. Registries the backend
cannot serve are left empty.

--url reads from the REST API even when a snapshot is configured, so an
existing snapshot can be refreshed in place:

  wpblock snapshot save .wpblock/site.yaml --url=https://example.com`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) (err error) {
			path := args[0]
			l := log.Event("core:snapshot", "save").Target(path)
			defer func() { l.Write(err) }()

			// The shared site prefers a configured snapshot, which would
			// copy the snapshot onto itself. --url gets a REST-only site.
			s := e.ctx.Site()
			if url := cmd.URL(); url != "" {
				rest := *e.ctx.Config()
				rest.Site.Snapshot = ""
				s = site.New(&rest, site.Options{URL: url})
				defer s.Close()
			}
			reg, err := s.Registry()
			if err != nil {
				return err
			}

			snap, err := snapshot.Capture(c.Context(), reg, s.ID())
			if err != nil {
				return err
			}
			if err = snap.Save(path); err != nil {
				return err
			}
			l.Detail("block_types", len(snap.BlockTypes)).Detail("wordpress", snap.WordPress)
			cmd.Success(fmt.Sprintf("Saved snapshot of WordPress %s to '%s'.", snap.WordPress, path))
			return nil
		},
	})
	return c
}
