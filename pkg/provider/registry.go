package provider

import (
	"fmt"
	"sort"
	"sync"
)

// Generator produces one synthetic value per invocation. Implementations are
// expected to return independently generated values on every call.
type Generator func() any

// Module maps function names to their generators.
type Module map[string]Generator

// Graph is the capability graph for a single locale: module name to module.
type Graph map[string]Module

// Registry stores capability graphs by locale. Callers populate it once at
// startup and treat it as read-only for the duration of a run.
type Registry struct {
	mu      sync.RWMutex
	locales map[string]Graph
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		locales: make(map[string]Graph),
	}
}

// Register adds a capability graph under a locale. Duplicate locales return
// an error.
func (r *Registry) Register(locale string, graph Graph) error {
	if locale == "" {
		return fmt.Errorf("provider: locale is required")
	}
	if graph == nil {
		return fmt.Errorf("provider: capability graph is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.locales[locale]; exists {
		return fmt.Errorf("provider: locale %q already registered", locale)
	}

	r.locales[locale] = graph
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(locale string, graph Graph) {
	if err := r.Register(locale, graph); err != nil {
		panic(err)
	}
}

// Graph retrieves the capability graph for a locale.
func (r *Registry) Graph(locale string) (Graph, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	graph, ok := r.locales[locale]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLocale, locale)
	}
	return graph, nil
}

// Has reports whether a locale is registered.
func (r *Registry) Has(locale string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.locales[locale]
	return ok
}

// Locales returns a sorted list of registered locale names.
func (r *Registry) Locales() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.locales))
	for name := range r.locales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
