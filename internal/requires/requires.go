// Package requires enforces the minimum WordPress version of each block
// resource.
package requires

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// ErrTooOld is wrapped by *VersionError.
var ErrTooOld = errors.New("wordpress version too old")

// Minimum WordPress versions per resource command.
var Minimums = map[string]string{
	"type":             "5.0",
	"pattern":          "5.5",
	"pattern-category": "5.5",
	"style":            "5.3",
	"binding":          "6.5",
	"template":         "5.9",
	"synced-pattern":   "5.0",
}

// VersionError reports a site older than a resource requires.
type VersionError struct {
	Min string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("Requires WordPress %s or greater.", e.Min)
}

func (e *VersionError) Unwrap() error { return ErrTooOld }

// AtLeast returns a *VersionError when have is older than min. Pre-release
// suffixes such as "6.5-RC1" count as the release they precede.
func AtLeast(have, min string) error {
	h, err := semver.NewVersion(have)
	if err != nil {
		return fmt.Errorf("parse wordpress version %q: %w", have, err)
	}
	m, err := semver.NewVersion(min)
	if err != nil {
		return fmt.Errorf("parse minimum version %q: %w", min, err)
	}
	if h.Prerelease() != "" {
		rel, _ := h.SetPrerelease("")
		h = &rel
	}
	if h.LessThan(m) {
		return &VersionError{Min: min}
	}
	return nil
}

// Resource checks have against the minimum for the named resource. Unknown
// resources and an empty version pass.
func Resource(resource, have string) error {
	min, ok := Minimums[resource]
	if !ok || have == "" {
		return nil
	}
	return AtLeast(have, min)
}
