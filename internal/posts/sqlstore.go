// sqlstore.go opens the WordPress database and provides the transaction
// helper shared by read.go and write.go.
//
// Two dialects are supported: mysql for live WordPress sites and sqlite for
// local sites created by "wpblock init" and for tests. Both drivers accept "?"
// placeholders, so queries are written once.

package posts

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-sql-driver/mysql"

	// Register sqlite driver
	_ "modernc.org/sqlite"
)

// Dialects accepted by Open.
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"

	// DefaultPrefix is the WordPress default table prefix.
	DefaultPrefix = "wp_"
)

// SQLStore implements Store directly against wp_posts and wp_postmeta.
type SQLStore struct {
	db     *sql.DB
	driver string
	prefix string
	posts  string // prefixed posts table
	meta   string // prefixed postmeta table
	now    func() time.Time
}

var _ Store = (*SQLStore)(nil)

// Open connects to the WordPress database. For mysql, dsn is a
// go-sql-driver DSN ("user:pass@tcp(host:3306)/wordpress"); for sqlite it is
// a file path.
func Open(driver, dsn, prefix string) (*SQLStore, error) {
	if err := ValidPrefix(prefix); err != nil {
		return nil, err
	}

	var (
		db  *sql.DB
		err error
	)
	switch driver {
	case DriverMySQL:
		db, err = openMySQL(dsn)
	case DriverSQLite:
		db, err = openSQLite(dsn)
	default:
		return nil, fmt.Errorf("%w: %q (expected mysql or sqlite)", ErrUnknownDriver, driver)
	}
	if err != nil {
		return nil, err
	}
	slog.Debug("posts store opened", "driver", driver, "prefix", prefix)

	return &SQLStore{
		db:     db,
		driver: driver,
		prefix: prefix,
		posts:  prefix + "posts",
		meta:   prefix + "postmeta",
		now:    time.Now,
	}, nil
}

// openMySQL normalises the DSN so DATETIME columns scan as strings and text
// round-trips as utf8mb4.
func openMySQL(dsn string) (*sql.DB, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ParseTime = false
	if cfg.Params == nil {
		cfg.Params = map[string]string{}
	}
	if _, ok := cfg.Params["charset"]; !ok {
		cfg.Params["charset"] = "utf8mb4"
	}
	db, err := sql.Open(DriverMySQL, cfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	return db, nil
}

// openSQLite opens a local WordPress database with WAL and a busy timeout so
// the MCP server and the CLI can share the file.
func openSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open(DriverSQLite, path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	for _, pragma := range []string{
		`PRAGMA journal_mode=WAL`,
		`PRAGMA busy_timeout=5000`,
		`PRAGMA synchronous=NORMAL`,
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}
	return db, nil
}

// Init creates the posts tables for the sqlite dialect. It is a no-op for
// mysql.
func (s *SQLStore) Init(ctx context.Context) error {
	if s.driver != DriverSQLite {
		return nil
	}
	return ExecEmbedded(ctx, s.db, schemas, "sql", s.prefix)
}

// Close releases the database connection.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// SetClock replaces the clock used for post dates and trash timestamps.
func (s *SQLStore) SetClock(now func() time.Time) {
	s.now = now
}

// Tx executes fn within a transaction, rolling back when fn fails.
func (s *SQLStore) Tx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }() // no-op after commit

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// stamp returns local and GMT timestamps in WordPress' DATETIME layout.
func (s *SQLStore) stamp() (local, gmt string) {
	const layout = "2006-01-02 15:04:05"
	t := s.now()
	return t.Format(layout), t.UTC().Format(layout)
}
