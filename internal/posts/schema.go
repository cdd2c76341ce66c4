// schema.go creates the WordPress posts and postmeta tables for the SQLite
// dialect. MySQL sites already have the WordPress schema, so nothing is
// created there.
//
// Schema files are embedded from sql/ and executed in name order. The
// {prefix} placeholder is replaced with the configured table prefix.

package posts

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strings"
)

//go:embed sql/*.sql
var schemas embed.FS

var prefixRe = regexp.MustCompile(`^[A-Za-z0-9_]*$`)

// ValidPrefix reports whether prefix is safe to splice into table names.
func ValidPrefix(prefix string) error {
	if !prefixRe.MatchString(prefix) {
		return fmt.Errorf("%w: %q", ErrInvalidPrefix, prefix)
	}
	return nil
}

// ExecEmbedded executes every .sql file in dir of fsys, in name order, with
// {prefix} replaced.
func ExecEmbedded(ctx context.Context, db *sql.DB, fsys embed.FS, dir, prefix string) error {
	if err := ValidPrefix(prefix); err != nil {
		return err
	}
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("read schema directory: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := dir + "/" + entry.Name()
		data, err := fsys.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		stmt := strings.ReplaceAll(string(data), "{prefix}", prefix)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("exec %s: %w", entry.Name(), err)
		}
	}
	return nil
}
