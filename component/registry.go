package component

import (
	"fmt"
	"sort"
	"sync"
)

// NotFoundError reports a component name unknown to the registry.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Component '%s' not found.", e.Name)
}

// Resolver resolves a component name to its descriptor.
// The registry implements it; tests substitute counting stubs.
type Resolver interface {
	Resolve(name string) (Descriptor, bool)
}

// Registry is a thread-safe name-to-descriptor registry.
type Registry struct {
	mu          sync.RWMutex
	descriptors map[string]Descriptor
}

// NewRegistry creates an empty component registry.
func NewRegistry() *Registry {
	return &Registry{
		descriptors: make(map[string]Descriptor),
	}
}

// Register adds a descriptor to the registry, replacing any existing
// descriptor with the same name.
func (r *Registry) Register(d Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.descriptors[d.Name()] = d
}

// Resolve retrieves a descriptor by name.
func (r *Registry) Resolve(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.descriptors[name]
	return d, ok
}

// Names returns all registered component names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.descriptors))
	for name := range r.descriptors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
