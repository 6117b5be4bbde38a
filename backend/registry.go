package backend

import (
	"fmt"
	"sort"
	"sync"
)

// Registered backend names.
const (
	// NameSoftware is the CPU rasterizer.
	NameSoftware = "software"

	// NameRecording records backend calls for later playback.
	NameRecording = "recording"
)

// Factory creates a backend drawing into a width x height pixel target.
type Factory func(width, height int) Backend

// registry holds registered backends.
var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
	// Priority order for backend selection (first available wins).
	backendPriority = []string{NameSoftware, NameRecording}
)

// Register registers a backend factory with the given name.
// This is typically called from init() functions in backend packages.
// If a backend with the same name is already registered, it will be replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[name] = factory
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Available returns the registered backend names in sorted order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}

// Get creates a backend by name.
func Get(name string, width, height int) (Backend, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotRegistered, name)
	}
	return factory(width, height), nil
}

// Default creates the best available backend based on priority.
// Returns nil if no backends are registered.
func Default(width, height int) Backend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range backendPriority {
		if factory, ok := factories[name]; ok {
			if b := factory(width, height); b != nil {
				return b
			}
		}
	}

	// Fallback: return first available
	for _, factory := range factories {
		if b := factory(width, height); b != nil {
			return b
		}
	}

	return nil
}
