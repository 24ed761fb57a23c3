package recording

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownBackend is returned by NewBackend for a name that no imported
// backend package registered.
var ErrUnknownBackend = errors.New("recording: unknown backend")

// BackendFactory is a function that creates a new backend instance.
// Factories are registered via Register() and called by NewBackend().
type BackendFactory func() Backend

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

// Register registers a backend factory with the given name.
// This function is typically called from init() in backend packages,
// following the database/sql driver pattern. The raster backend registers
// itself this way:
//
//	func init() {
//		recording.Register("raster", func() recording.Backend {
//			return NewBackend()
//		})
//	}
//
// Register panics if factory is nil or if a backend with the same name is
// already registered.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("recording: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	backends[name] = factory
}

// Unregister removes a backend from the registry.
// This is primarily useful for testing to clean up between tests.
// If the backend is not registered, this is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// NewBackend creates a new backend instance by name, as the squircle
// command does for the backend named in its config file:
//
//	import _ "github.com/gogpu/squircle/recording/backends/raster"
//
//	b, err := recording.NewBackend("raster")
//	if err != nil {
//		return err
//	}
//	err = src.Render(b)
//
// An unregistered name yields ErrUnknownBackend; the message lists the
// registered names and hints at a forgotten import.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (registered: %s; forgotten import?)",
			ErrUnknownBackend, name, strings.Join(orNone(Backends()), ", "))
	}
	return factory(), nil
}

func orNone(names []string) []string {
	if len(names) == 0 {
		return []string{"none"}
	}
	return names
}

// MustBackend creates a new backend instance by name, panicking on error.
func MustBackend(name string) Backend {
	b, err := NewBackend(name)
	if err != nil {
		panic(err)
	}
	return b
}

// Backends returns a sorted list of registered backend names.
// The list is sorted alphabetically for consistent output.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}
