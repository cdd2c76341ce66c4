// serve.go implements "wpblock serve". Unlike other commands, serve blocks
// handling MCP requests over stdio until the client disconnects.

package core

import (
	"github.com/jpl-au/wpblock/extension"
	"github.com/jpl-au/wpblock/internal/log"
	"github.com/jpl-au/wpblock/internal/mcp"
	"github.com/spf13/cobra"
)

func (e *Extension) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio.

The server uses the same backends as the CLI:
  wpblock serve --snapshot=site.yaml --db=.wpblock/wordpress.db

See 'wpblock guide mcp' for the tool list.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			err := mcp.Serve(e.ctx, extension.Tools())
			log.Event("core:serve", "serve").Write(err)
			return err
		},
	}
}
