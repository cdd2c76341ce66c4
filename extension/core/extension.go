// Package core provides the core extension for wpblock.
// It registers commands: init, config, guide, serve, snapshot, version.
package core

import (
	"github.com/jpl-au/wpblock/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct {
	ctx extension.Context
}

// Compile-time interface compliance.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
	_ extension.Siteless      = (*Extension)(nil)
)

// Name returns "core".
func (e *Extension) Name() string { return "core" }

// Init stores the shared context for serve and snapshot.
func (e *Extension) Init(ctx extension.Context) error {
	e.ctx = ctx
	return nil
}

// Commands returns the core CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newInitCmd(),
		newConfigCmd(),
		newGuideCmd(),
		e.newServeCmd(),
		e.newSnapshotCmd(),
		newVersionCmd(),
	}
}

// MCPTools returns nil. The server adds guide and config tools itself.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

// NoSiteCommands returns commands that never read the site.
// version: displays build info only.
func (e *Extension) NoSiteCommands() []string {
	return []string{"version"}
}
