package component

import (
	"sort"
	"sync"

	"github.com/Frebklin/haystack/errors"
)

// Factory builds a component instance from definition parameters.
type Factory func(params map[string]any) (Component, error)

// Registry provides named component factories for building pipelines from
// definitions instead of code.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under a kind name.
// Fails if the kind is already registered.
func (r *Registry) Register(kind string, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[kind]; ok {
		return errors.AlreadyExists(kind)
	}
	r.factories[kind] = factory
	return nil
}

// Build instantiates a component of the given kind.
func (r *Registry) Build(kind string, params map[string]any) (Component, error) {
	r.mu.RLock()
	factory, ok := r.factories[kind]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.NotFound("component kind", kind)
	}
	return factory(params)
}

// List returns sorted names of all registered kinds.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]string, 0, len(r.factories))
	for kind := range r.factories {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
