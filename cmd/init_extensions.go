/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Separated from root.go to isolate the initialisation logic that loads
// config, resolves the site and wires up extensions.
//
// Extensions register during init() but aren't initialised until first
// command execution, so they can declare commands before any site is
// known. The site is created once and shared via the Context.

package cmd

import (
	"fmt"
	"sync"

	"github.com/jpl-au/wpblock/extension"
	"github.com/jpl-au/wpblock/internal/config"
	"github.com/jpl-au/wpblock/internal/log"
	"github.com/jpl-au/wpblock/internal/site"
)

// noSiteCommands lists top-level commands that skip extension initialisation.
// Built from bootstrap commands plus extension-declared siteless commands.
var noSiteCommands map[string]bool

// buildNoSiteCommands creates the set of commands that run without a site.
// Core bootstrap commands are listed here; other extensions implement
// extension.Siteless.
func buildNoSiteCommands() map[string]bool {
	cmds := map[string]bool{
		"init":       true,
		"guide":      true,
		"config":     true,
		"help":       true,
		"completion": true,
	}

	for _, ext := range extension.All() {
		if s, ok := ext.(extension.Siteless); ok {
			for _, name := range s.NoSiteCommands() {
				cmds[name] = true
			}
		}
	}

	return cmds
}

// Global extension context, created during initialisation.
var (
	extContext extension.Context
	extSite    *site.Site
	initOnce   sync.Once
	initErr    error
)

// initExtensions loads config, resolves the site and injects both into every
// Initializable extension. Runs once per process.
func initExtensions() error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}

		extSite = site.New(cfg, SiteOptions())
		log.SetSite(extSite.ID())

		extContext = extension.NewContext(extSite, cfg)
		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}
		noSiteCommands = buildNoSiteCommands()
	})
}
