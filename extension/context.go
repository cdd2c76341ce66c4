// context.go defines the Context interface for extension access to the
// resolved site and configuration.
//
// Extensions receive Context during Init(), not at construction, because
// they register before flags are parsed and the site is known.

package extension

import (
	"github.com/jpl-au/wpblock/internal/config"
	"github.com/jpl-au/wpblock/internal/site"
)

// Context provides extensions controlled access to shared resources.
type Context interface {
	// Site returns the backends serving registries and synced patterns.
	Site() *site.Site

	// Config returns the loaded configuration.
	Config() *config.Config
}

// extContext implements Context.
type extContext struct {
	site *site.Site
	cfg  *config.Config
}

// NewContext creates a new extension context.
func NewContext(s *site.Site, cfg *config.Config) Context {
	return &extContext{site: s, cfg: cfg}
}

func (c *extContext) Site() *site.Site { return c.site }

func (c *extContext) Config() *config.Config { return c.cfg }
