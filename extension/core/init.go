// init.go implements "wpblock init": a project-local config and a SQLite
// WordPress database for synced patterns.
//
// Init runs before any site exists. The global --snapshot and --url flags,
// when given, are recorded in the new config so later commands need no
// flags.

package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jpl-au/wpblock/cmd"
	"github.com/jpl-au/wpblock/extension"
	"github.com/jpl-au/wpblock/internal/config"
	"github.com/jpl-au/wpblock/internal/log"
	"github.com/jpl-au/wpblock/internal/posts"
	"github.com/spf13/cobra"
)

// ErrInitialised is returned when a local config already exists.
var ErrInitialised = errors.New("wpblock is already initialised here (use --force to overwrite the config)")

// defaultDB is the SQLite database created when --db is not given.
var defaultDB = filepath.Join(config.Dir, "wordpress.db")

func newInitCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "init",
		Short: "Initialise a local wpblock project",
		Long: `Creates .wpblock/config.yaml and a SQLite WordPress database at
.wpblock/wordpress.db holding the wp_posts and wp_postmeta tables.

  wpblock init
  wpblock init --snapshot=site.yaml          # also record a registry snapshot
  wpblock init --db=/tmp/wp.db --url=https://example.com

Capture a snapshot from a live site with 'wpblock snapshot save'.`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}
	c.Flags().Bool(extension.FlagForce, false, "Overwrite an existing local config")
	return c
}

func runInit(c *cobra.Command, _ []string) (err error) {
	force, _ := c.Flags().GetBool(extension.FlagForce)
	dsn := cmd.DB()
	if dsn == "" {
		dsn = defaultDB
	}

	defer func() {
		log.Event("core:init", "init").Detail("force", force).Write(err)
	}()

	if _, statErr := os.Stat(config.LocalPath()); statErr == nil && !force {
		return ErrInitialised
	}

	// The database comes first so a failed init never leaves a config that
	// points at a missing database.
	if err = createDB(c.Context(), dsn); err != nil {
		return err
	}

	cfg, err := config.LoadScope(config.ScopeLocal)
	if err != nil {
		return err
	}
	for key, v := range map[string]string{
		"db.driver":     posts.DriverSQLite,
		"db.dsn":        dsn,
		"site.snapshot": cmd.Snapshot(),
		"site.url":      cmd.URL(),
	} {
		// Unset flags are skipped; init never records a snapshot path that
		// does not exist yet.
		if v == "" {
			continue
		}
		if err = cfg.Set(key, v); err != nil {
			return err
		}
	}
	if err = cfg.SaveScope(config.ScopeLocal); err != nil {
		return err
	}

	cmd.Success(fmt.Sprintf("Initialised wpblock in %s.", config.Dir))
	return nil
}

// createDB creates the SQLite file and its tables. Existing tables are kept.
func createDB(ctx context.Context, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating database directory: %w", err)
		}
	}
	st, err := posts.Open(posts.DriverSQLite, path, posts.DefaultPrefix)
	if err != nil {
		return err
	}
	defer st.Close()
	return st.Init(ctx)
}
