// registry.go holds the process-wide extension list. Extensions append
// themselves from init(), before main runs; the list keeps that order so
// commands and MCP tools come out the same way on every run.

package extension

import (
	"slices"
	"sync"
)

var (
	mu         sync.RWMutex
	extensions []Extension
)

// Register adds an extension. A duplicate name is a programming error and
// panics, as database/sql.Register does.
func Register(e Extension) {
	mu.Lock()
	defer mu.Unlock()

	if slices.ContainsFunc(extensions, func(x Extension) bool { return x.Name() == e.Name() }) {
		panic("extension already registered: " + e.Name())
	}
	extensions = append(extensions, e)
}

// All returns the registered extensions in registration order.
func All() []Extension {
	mu.RLock()
	defer mu.RUnlock()
	return slices.Clone(extensions)
}

// Names returns the extension names in registration order.
func Names() []string {
	exts := All()
	names := make([]string, len(exts))
	for i, e := range exts {
		names[i] = e.Name()
	}
	return names
}
