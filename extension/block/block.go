// Package block provides the "wpblock block" command family: one command
// group per registry resource plus synced patterns, and the matching MCP
// tools.
//
// Each resource command is a thin cobra wrapper around its internal package
// (internal/blocktype, internal/pattern, ...). The wrapper parses flags,
// validates them, obtains the version-gated backend, and hands records to
// the output formatter.
package block

import (
	"github.com/jpl-au/wpblock/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the block extension.
type Extension struct {
	ctx extension.Context
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "block".
func (e *Extension) Name() string { return "block" }

// Init stores the shared context for command handlers.
func (e *Extension) Init(ctx extension.Context) error {
	e.ctx = ctx
	return nil
}

// Commands returns the "block" parent command.
func (e *Extension) Commands() []*cobra.Command {
	c := &cobra.Command{
		Use:   "block",
		Short: "Inspect block registries and manage synced patterns",
		Long: `Inspect the block editor registries of a WordPress site and manage
synced patterns.

Each resource requires a minimum WordPress version, checked before the
site is read.`,
	}
	c.AddCommand(
		e.newTypeCmd(),
		e.newPatternCmd(),
		e.newPatternCategoryCmd(),
		e.newStyleCmd(),
		e.newBindingCmd(),
		e.newTemplateCmd(),
		e.newSyncedPatternCmd(),
	)
	return []*cobra.Command{c}
}

// MCPTools exposes list and get for every resource plus synced pattern
// mutations.
func (e *Extension) MCPTools() []extension.MCPTool {
	return tools()
}
