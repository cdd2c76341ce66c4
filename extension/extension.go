// Package extension provides the plugin architecture for wpblock. Extensions
// encapsulate related functionality (commands, MCP tools) and register at
// init time, so features are added without touching the command core.
package extension

import (
	"github.com/spf13/cobra"
)

// Extension defines the contract for wpblock extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// MCPTools returns MCP tools to register with the server.
	MCPTools() []MCPTool
}

// Initializable extensions receive the shared Context before their commands
// run.
type Initializable interface {
	Extension
	Init(ctx Context) error
}

// Siteless is an optional interface for extensions with top-level commands
// that work without a configured site. Commands returned by NoSiteCommands()
// skip extension initialisation in PersistentPreRunE.
//
// Use cases:
// 1. Bootstrap commands (like init) that create the site configuration
// 2. Utility commands (version) that never read a registry
type Siteless interface {
	NoSiteCommands() []string
}

// Tools collects the MCP tools of every registered extension in
// registration order.
func Tools() []MCPTool {
	var tools []MCPTool
	for _, ext := range All() {
		tools = append(tools, ext.MCPTools()...)
	}
	return tools
}
