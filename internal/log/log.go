// Package log provides the wpblock audit log. Every CLI command and MCP tool
// records one entry in ~/.wpblock/log/wpblock-log.db, so activity against
// each site can be reviewed later.
//
// # Fluent API
//
//	log.Event("block:pattern:get", "get").
//		Target(name).
//		Write(err)
//
//	log.Event("block:synced-pattern:delete", "delete").
//		Target(strings.Join(ids, " ")).
//		Detail("force", force).
//		Write(err)
//
// The source is "{command path}" for CLI commands (parent commands joined
// with ":") or "mcp:{tool}" for MCP tools.
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source string // e.g. "block:type:list", "mcp:wpblock_type_list"
	Action string // verb: list, get, create, update, delete, export, ...
	Target string // resource key(s) acted on, if any

	Start int64 // unix timestamp when Event() was called
	End   int64 // unix timestamp when Write() was called

	Success bool
	Error   string
	Detail  map[string]any // operation-specific data
}

// Builder constructs a log entry. Create with [Event], chain setters, then
// call [Builder.Write].
type Builder struct {
	entry Entry
}

// Event starts an entry for an operation.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Target sets the resource key the operation addressed: a block name,
// template id, post id or space-separated ids.
func (b *Builder) Target(target string) *Builder {
	b.entry.Target = target
	return b
}

// Detail adds a key-value pair to the entry. Never pass credentials.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write records the entry, deriving success from err.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}
	if _, err := db.Exec(`PRAGMA busy_timeout=5000`); err != nil {
		db.Close()
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetSite sets the site identifier for subsequent entries. The value (URL,
// snapshot path or database DSN) is hashed before storage.
func SetSite(id string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.site = hash(id)
	}
}

// Log writes an entry. Safe to call if the logger is not initialised (no-op).
// Only Execute opens the log, so package tests that call handlers directly
// write nothing.
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
