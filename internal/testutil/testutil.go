// Package testutil provides shared fixtures for package tests.
package testutil

import (
	_ "embed"
	"os"
	"path/filepath"
	"testing"

	"github.com/jpl-au/wpblock/internal/snapshot"
)

// SiteYAML is a small but complete registry snapshot of a WordPress 6.5 site.
//
//go:embed site.yaml
var SiteYAML []byte

// Site returns a provider serving SiteYAML.
func Site(t testing.TB) *snapshot.Source {
	t.Helper()
	s, err := snapshot.Parse(SiteYAML, false)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return snapshot.NewSource(s)
}

// WriteSite writes SiteYAML into dir and returns the file path.
func WriteSite(t testing.TB, dir string) string {
	t.Helper()
	p := filepath.Join(dir, "site.yaml")
	if err := os.WriteFile(p, SiteYAML, 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return p
}
