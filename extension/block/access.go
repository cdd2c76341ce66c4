// access.go resolves backends for a resource and enforces the resource's
// minimum WordPress version before any registry or post is read.
//
// The gate runs here, at first backend access, not when commands are built.
// Flag and --field errors are reported first and need no site at all, and
// the version is only known once a snapshot is opened or a REST client is
// configured. Commands still register on older sites so --help works.

package block

import (
	"context"
	"log/slog"

	"github.com/jpl-au/wpblock/extension"
	"github.com/jpl-au/wpblock/internal/posts"
	"github.com/jpl-au/wpblock/internal/registry"
	"github.com/jpl-au/wpblock/internal/requires"
)

// Resource names, as used on the command line and for version gates.
const (
	resType            = "type"
	resPattern         = "pattern"
	resPatternCategory = "pattern-category"
	resStyle           = "style"
	resBinding         = "binding"
	resTemplate        = "template"
	resSyncedPattern   = "synced-pattern"
)

// gate checks version against the resource minimum. An unknown version
// passes: REST sites only declare one through site.version.
func gate(resource, version string) error {
	if version == "" {
		slog.Debug("wordpress version unknown, skipping version check", "resource", resource)
		return nil
	}
	return requires.Resource(resource, version)
}

// registryFor returns the registry provider once the site passes the
// resource's version gate.
func registryFor(ctx context.Context, ec extension.Context, resource string) (registry.Provider, error) {
	reg, err := ec.Site().Registry()
	if err != nil {
		return nil, err
	}
	v, err := reg.Version(ctx)
	if err != nil {
		return nil, err
	}
	if err := gate(resource, v); err != nil {
		return nil, err
	}
	return reg, nil
}

// postsFor returns the post store once the site passes the synced pattern
// version gate. The version comes from the registry backend when one is
// configured.
func postsFor(ctx context.Context, ec extension.Context) (posts.Store, error) {
	v, err := ec.Site().Version(ctx)
	if err != nil {
		return nil, err
	}
	if err := gate(resSyncedPattern, v); err != nil {
		return nil, err
	}
	return ec.Site().Posts()
}
