// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic used by "wpblock config" and the MCP config tool, where
// settings are addressed by dotted keys (e.g. "site.url").

package config

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/Masterminds/semver/v3"
)

// Masked replaces secrets in Get and All output.
const Masked = "********"

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"site.url", "site.user", "site.app_password", "site.version",
		"site.snapshot", "site.timeout",
		"db.driver", "db.dsn", "db.prefix",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// IsSecret reports whether a key holds a credential. The DSN counts: MySQL
// DSNs embed the password.
func IsSecret(key string) bool {
	return key == "site.app_password" || key == "db.dsn"
}

func mask(v string) string {
	if v == "" {
		return ""
	}
	return Masked
}

// Get returns the value of a configuration key as a string. Secrets are
// masked.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "site.url":
		return c.Site.URL, nil
	case "site.user":
		return c.Site.User, nil
	case "site.app_password":
		return mask(c.Site.AppPassword), nil
	case "site.version":
		return c.Site.Version, nil
	case "site.snapshot":
		return c.Site.Snapshot, nil
	case "site.timeout":
		return strconv.Itoa(int(c.Timeout().Seconds())), nil
	case "db.driver":
		return c.Driver(), nil
	case "db.dsn":
		return mask(c.DB.DSN), nil
	case "db.prefix":
		return c.Prefix(), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "site.url":
		c.Site.URL = value
	case "site.user":
		c.Site.User = value
	case "site.app_password":
		c.Site.AppPassword = value
	case "site.version":
		if value != "" {
			if _, err := semver.NewVersion(value); err != nil {
				return fmt.Errorf("%w: site.version must be a version number like 6.5", ErrInvalidValue)
			}
		}
		c.Site.Version = value
	case "site.snapshot":
		c.Site.Snapshot = value
	case "site.timeout":
		n, err := strconv.Atoi(value)
		if err != nil || n < MinTimeout || n > MaxTimeout {
			return fmt.Errorf("%w: site.timeout must be between %d and %d seconds", ErrInvalidValue, MinTimeout, MaxTimeout)
		}
		c.Site.Timeout = &n
	case "db.driver":
		if value != "mysql" && value != "sqlite" {
			return fmt.Errorf("%w: db.driver must be mysql or sqlite", ErrInvalidValue)
		}
		c.DB.Driver = value
	case "db.dsn":
		c.DB.DSN = value
	case "db.prefix":
		if !validPrefix(value) {
			return fmt.Errorf("%w: db.prefix may only contain letters, digits and underscores", ErrInvalidValue)
		}
		c.DB.Prefix = &value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map, secrets masked.
func (c *Config) All() map[string]string {
	out := make(map[string]string, len(ValidKeys()))
	for _, k := range ValidKeys() {
		out[k], _ = c.Get(k)
	}
	return out
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "site.url":
		return c.Site.URL != ""
	case "site.user":
		return c.Site.User != ""
	case "site.app_password":
		return c.Site.AppPassword != ""
	case "site.version":
		return c.Site.Version != ""
	case "site.snapshot":
		return c.Site.Snapshot != ""
	case "site.timeout":
		return c.Site.Timeout != nil
	case "db.driver":
		return c.DB.Driver != ""
	case "db.dsn":
		return c.DB.DSN != ""
	case "db.prefix":
		return c.DB.Prefix != nil
	default:
		return false
	}
}
