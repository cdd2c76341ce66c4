/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// flags.go defines global CLI flags and accessors for shared state.
//
// Separated from root.go to isolate flag definitions from command logic.
// Extensions read flag values and write user-facing messages through the
// exported helpers rather than touching the variables.

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jpl-au/wpblock/internal/site"
)

var (
	siteURL      string
	snapshotPath string
	dsn          string
	debug        bool
)

// out and errOut are the output writers for commands. Tests can replace them.
var (
	out    io.Writer = os.Stdout
	errOut io.Writer = os.Stderr
)

// Out returns the output writer.
func Out() io.Writer { return out }

// Err returns the diagnostics writer.
func Err() io.Writer { return errOut }

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// SetErr sets the diagnostics writer (for testing).
func SetErr(w io.Writer) { errOut = w }

// flagOrEnv returns the flag value, falling back to the environment.
func flagOrEnv(v, env string) string {
	if v != "" {
		return v
	}
	return os.Getenv(env)
}

// URL returns the site URL override.
// Priority: --url flag > WPBLOCK_URL env var > empty (use config).
func URL() string { return flagOrEnv(siteURL, "WPBLOCK_URL") }

// Snapshot returns the snapshot path override.
// Priority: --snapshot flag > WPBLOCK_SNAPSHOT env var > empty (use config).
func Snapshot() string { return flagOrEnv(snapshotPath, "WPBLOCK_SNAPSHOT") }

// DB returns the database DSN override.
// Priority: --db flag > WPBLOCK_DB env var > empty (use config).
func DB() string { return flagOrEnv(dsn, "WPBLOCK_DB") }

// Debug reports whether --debug was given.
func Debug() bool { return debug }

// SiteOptions collects the backend overrides for site.New.
func SiteOptions() site.Options {
	return site.Options{URL: URL(), Snapshot: Snapshot(), DSN: DB()}
}

// Success prints "Success: msg" to the output writer.
func Success(msg string) { fmt.Fprintf(out, "Success: %s\n", msg) }

// Warning prints "Warning: msg" to the diagnostics writer.
func Warning(msg string) { fmt.Fprintf(errOut, "Warning: %s\n", msg) }

// Reporter sends operation messages to Success and Warning.
type Reporter struct{}

// Success prints a success line.
func (Reporter) Success(msg string) { Success(msg) }

// Warning prints a warning line.
func (Reporter) Warning(msg string) { Warning(msg) }

func init() {
	rootCmd.PersistentFlags().StringVar(&siteURL, "url", "", "WordPress site URL (overrides site.url)")
	rootCmd.PersistentFlags().StringVar(&snapshotPath, "snapshot", "", "Registry snapshot file (overrides site.snapshot)")
	rootCmd.PersistentFlags().StringVar(&dsn, "db", "", "WordPress database DSN or SQLite path (overrides db.dsn)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log backend selection and requests to stderr")
}
