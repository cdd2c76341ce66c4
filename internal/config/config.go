// Package config provides reading and writing of wpblock configuration.
// Supports both global (~/.wpblock/config.yaml) and local (.wpblock/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Dir is the name of the configuration directory.
const Dir = ".wpblock"

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.wpblock/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is project config in .wpblock/config.yaml
	ScopeLocal
)

// Site describes how to reach the WordPress registries.
type Site struct {
	URL         string `yaml:"url,omitempty"`
	User        string `yaml:"user,omitempty"`
	AppPassword string `yaml:"app_password,omitempty"`
	Version     string `yaml:"version,omitempty"`
	Snapshot    string `yaml:"snapshot,omitempty"`
	Timeout     *int   `yaml:"timeout,omitempty"` // seconds
}

// DB describes direct access to the WordPress database.
type DB struct {
	Driver string  `yaml:"driver,omitempty"`
	DSN    string  `yaml:"dsn,omitempty"`
	Prefix *string `yaml:"prefix,omitempty"`
}

// Defaults applied when not configured.
const (
	DefaultTimeout = 30
	DefaultDriver  = "mysql"
	DefaultPrefix  = "wp_"
)

// Validation bounds for configuration values.
const (
	MinTimeout = 1
	MaxTimeout = 600
)

// Config contains configuration for wpblock.
type Config struct {
	Site Site `yaml:"site,omitempty"`
	DB   DB   `yaml:"db,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Site.Timeout != nil {
		v := *c.Site.Timeout
		if v < MinTimeout || v > MaxTimeout {
			return fmt.Errorf("%w: site.timeout must be between %d and %d, got %d",
				ErrInvalidValue, MinTimeout, MaxTimeout, v)
		}
	}
	if c.Site.Version != "" {
		if _, err := semver.NewVersion(c.Site.Version); err != nil {
			return fmt.Errorf("%w: site.version %q is not a version number", ErrInvalidValue, c.Site.Version)
		}
	}
	switch c.DB.Driver {
	case "", "mysql", "sqlite":
	default:
		return fmt.Errorf("%w: db.driver must be mysql or sqlite, got %q", ErrInvalidValue, c.DB.Driver)
	}
	if c.DB.Prefix != nil && !validPrefix(*c.DB.Prefix) {
		return fmt.Errorf("%w: db.prefix may only contain letters, digits and underscores", ErrInvalidValue)
	}
	return nil
}

func validPrefix(s string) bool {
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_') {
			return false
		}
	}
	return true
}

// Timeout returns the REST request timeout (defaults to 30 seconds).
func (c *Config) Timeout() time.Duration {
	if c.Site.Timeout == nil {
		return DefaultTimeout * time.Second
	}
	return time.Duration(*c.Site.Timeout) * time.Second
}

// Driver returns the database driver (defaults to mysql).
func (c *Config) Driver() string {
	if c.DB.Driver == "" {
		return DefaultDriver
	}
	return c.DB.Driver
}

// Prefix returns the table prefix (defaults to wp_).
func (c *Config) Prefix() string {
	if c.DB.Prefix == nil {
		return DefaultPrefix
	}
	return *c.DB.Prefix
}

// AppPassword returns the application password, preferring
// WPBLOCK_APP_PASSWORD over the config file.
func (c *Config) AppPassword() string {
	if v := os.Getenv("WPBLOCK_APP_PASSWORD"); v != "" {
		return v
	}
	return c.Site.AppPassword
}

// LocalPath returns the path to the local (project) config file.
func LocalPath() string {
	return filepath.Join(Dir, "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.wpblock/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, Dir, "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}
	return LoadFile(path, scope)
}

// LoadFile reads configuration from path. A missing file yields an empty
// config that saves back to path.
func LoadFile(path string, scope Scope) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Path returns the file this config was loaded from or will save to.
func (c *Config) Path() string {
	if c.path == "" {
		return pathForScope(c.scope)
	}
	return c.path
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	path := c.Path()
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration atomically. The file may hold an
// application password, so it is readable by the owner only.
func (c *Config) saveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	if err := os.Chmod(path, 0600); err != nil {
		return fmt.Errorf("securing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
