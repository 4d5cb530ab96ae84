package sensor

import (
	"context"
	"fmt"
	"sync"
)

type entry struct {
	types  Type
	driver Driver
}

// Registry keeps named drivers and dispatches read requests to them. Access
// is safe for concurrent use; the drivers themselves follow the single-owner
// bus model and are not expected to be called concurrently.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

func (r *Registry) Register(name string, t Type, drv Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[name]; ok {
		return fmt.Errorf("sensor %q already registered", name)
	}
	r.entries[name] = entry{types: t, driver: drv}
	return nil
}

func (r *Registry) Lookup(name string) (Driver, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return e.driver, ok
}

// Find returns the names of all registered drivers advertising the given
// capability.
func (r *Registry) Find(t Type) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var names []string
	for name, e := range r.entries {
		if e.types.Has(t) {
			names = append(names, name)
		}
	}
	return names
}

// Read dispatches a read request for capability t to the named driver.
func (r *Registry) Read(ctx context.Context, name string, t Type, fn ReadingFunc) error {
	drv, ok := r.Lookup(name)
	if !ok {
		return fmt.Errorf("no sensor registered under %q", name)
	}
	return drv.Read(ctx, t, fn)
}
