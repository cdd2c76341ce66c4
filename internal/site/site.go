// Package site selects and opens the backends that serve a WordPress site:
// the registry provider (snapshot file or REST API) and the post store
// (database or REST API).
//
// Backends open lazily, so commands that only read registries never touch
// the database and vice versa.
package site

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sync"

	"github.com/jpl-au/wpblock/internal/config"
	"github.com/jpl-au/wpblock/internal/posts"
	"github.com/jpl-au/wpblock/internal/registry"
	"github.com/jpl-au/wpblock/internal/snapshot"
	"github.com/jpl-au/wpblock/internal/wpapi"
)

var (
	// ErrNoRegistry is returned when neither a snapshot nor a URL is configured.
	ErrNoRegistry = errors.New("no registry backend configured: set site.snapshot or site.url, or pass --snapshot or --url")
	// ErrNoPosts is returned when neither a database nor a URL is configured.
	ErrNoPosts = errors.New("no post backend configured: set db.dsn or site.url, or pass --db or --url")
)

// Backend names, reported by Describe.
const (
	BackendSnapshot = "snapshot"
	BackendREST     = "rest"
	BackendDB       = "db"
	BackendNone     = "none"
)

// Options override configuration for one invocation. Empty fields fall back
// to the config file.
type Options struct {
	URL      string
	Snapshot string
	DSN      string
}

// Site resolves backends from configuration. The MCP server shares one Site
// between concurrent tool calls, so backend resolution is guarded by mu.
type Site struct {
	cfg  *config.Config
	opts Options

	mu     sync.Mutex
	client *wpapi.Client
	reg    registry.Provider
	store  posts.Store
}

// New returns a site for cfg with per-invocation overrides.
func New(cfg *config.Config, opts Options) *Site {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &Site{cfg: cfg, opts: opts}
}

func (s *Site) url() string      { return first(s.opts.URL, s.cfg.Site.URL) }
func (s *Site) snapshot() string { return first(s.opts.Snapshot, s.cfg.Site.Snapshot) }
func (s *Site) dsn() string      { return first(s.opts.DSN, s.cfg.DB.DSN) }

func first(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// ID identifies the site for the audit log. It is hashed before storage.
func (s *Site) ID() string {
	return first(s.url(), s.snapshot(), s.dsn())
}

// Describe names the backends that would serve registries and posts.
func (s *Site) Describe() (registries, posts string) {
	switch {
	case s.snapshot() != "":
		registries = BackendSnapshot
	case s.url() != "":
		registries = BackendREST
	default:
		registries = BackendNone
	}
	switch {
	case s.dsn() != "":
		posts = BackendDB
	case s.url() != "":
		posts = BackendREST
	default:
		posts = BackendNone
	}
	return registries, posts
}

// rest returns the shared REST client. Callers hold s.mu.
func (s *Site) rest() (*wpapi.Client, error) {
	if s.client != nil {
		return s.client, nil
	}
	c, err := wpapi.New(wpapi.Config{
		URL:         s.url(),
		User:        s.cfg.Site.User,
		AppPassword: s.cfg.AppPassword(),
		Version:     s.cfg.Site.Version,
		Timeout:     s.cfg.Timeout(),
	})
	if err != nil {
		return nil, err
	}
	s.client = c
	return c, nil
}

// Registry returns the registry provider: the snapshot when one is
// configured, otherwise the REST API. The snapshot wins even when a URL is
// set, so offline runs stay offline; snapshot save builds its own REST-only Site
// to refresh one.
func (s *Site) Registry() (registry.Provider, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.reg != nil {
		return s.reg, nil
	}

	switch {
	case s.snapshot() != "":
		src, err := snapshot.Open(s.snapshot())
		if err != nil {
			return nil, err
		}
		slog.Debug("registry backend", "backend", BackendSnapshot, "path", s.snapshot())
		s.reg = src
	case s.url() != "":
		c, err := s.rest()
		if err != nil {
			return nil, err
		}
		slog.Debug("registry backend", "backend", BackendREST, "url", s.url())
		s.reg = c
	default:
		return nil, ErrNoRegistry
	}
	return s.reg, nil
}

// Posts returns the post store: the database when a DSN is configured,
// otherwise the REST API.
func (s *Site) Posts() (posts.Store, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store != nil {
		return s.store, nil
	}

	switch {
	case s.dsn() != "":
		driver := s.cfg.Driver()
		if driver == posts.DriverSQLite {
			if _, err := os.Stat(s.dsn()); errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("database %s does not exist (run 'wpblock init' to create a local one)", s.dsn())
			}
		}
		st, err := posts.Open(driver, s.dsn(), s.cfg.Prefix())
		if err != nil {
			return nil, err
		}
		slog.Debug("posts backend", "backend", BackendDB, "driver", driver)
		s.store = st
	case s.url() != "":
		c, err := s.rest()
		if err != nil {
			return nil, err
		}
		slog.Debug("posts backend", "backend", BackendREST, "url", s.url())
		s.store = c.Blocks()
	default:
		return nil, ErrNoPosts
	}
	return s.store, nil
}

// Version returns the site's WordPress version as reported by the registry
// backend. It is empty when no registry backend is configured or the REST
// backend has no declared version.
func (s *Site) Version(ctx context.Context) (string, error) {
	if r, _ := s.Describe(); r == BackendNone {
		return "", nil
	}
	reg, err := s.Registry()
	if err != nil {
		return "", err
	}
	return reg.Version(ctx)
}

// Close releases any open backend.
func (s *Site) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store == nil {
		return nil
	}
	err := s.store.Close()
	s.store = nil
	return err
}
