/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Separated from init_extensions.go to isolate cobra setup from extension
// initialisation logic.
//
// PersistentPreRunE sets up diagnostics and initialises extensions lazily:
// bootstrap commands (init, guide, config, version) run without a site.
// Backends themselves open on first use, so a command that fails flag
// validation never touches the site.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/jpl-au/wpblock/internal/log"
	"github.com/spf13/cobra"
)

// ErrSilent makes a command exit 1 without printing anything.
var ErrSilent = errors.New("silent failure")

var rootCmd = &cobra.Command{
	Use:   "wpblock",
	Short: "Inspect WordPress block registries and manage synced patterns",
	Long: `wpblock lists and inspects a WordPress site's block types, patterns,
pattern categories, block styles, binding sources and templates, and creates,
updates and deletes synced patterns.

Registries are read from a snapshot file or the REST API; synced patterns
from the WordPress database or the REST API. See 'wpblock guide backends'.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		setupLogging()

		if noSiteCommands[topLevelCmdName(cmd)] {
			return nil
		}
		if err := initExtensions(); err != nil {
			return fmt.Errorf("initialise extensions: %w", err)
		}
		return nil
	},
}

// setupLogging routes diagnostics to stderr; --debug lowers the level.
func setupLogging() {
	level := slog.LevelWarn
	if Debug() {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level})))
}

// topLevelCmdName returns the name of the top-level command (direct child of root).
// For "wpblock block type list", returns "block".
func topLevelCmdName(cmd *cobra.Command) string {
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, registers extensions, executes the command, closes the
// site and prints any error as "Error: ...". Exit code 1 indicates error.
func Execute() {
	if err := log.Open(); err != nil {
		Warning(fmt.Sprintf("audit log unavailable: %v", err))
	}
	defer log.Close()

	cobra.EnableTraverseRunHooks = true
	registerExtensions()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if extSite != nil {
		if closeErr := extSite.Close(); closeErr != nil {
			Warning(fmt.Sprintf("closing site: %v", closeErr))
		}
	}

	if err != nil {
		if !errors.Is(err, ErrSilent) {
			fmt.Fprintf(errOut, "Error: %s\n", err)
		}
		log.Close()
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing and extension access.
func RootCmd() *cobra.Command {
	return rootCmd
}
