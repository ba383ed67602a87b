package provider

import (
	"fmt"
	"strings"
)

// Tag is a parsed module.function placeholder path.
type Tag struct {
	Module   string
	Function string
}

// ParseTag splits a raw dotted path into its module and function segments.
// Both segments must be non-empty; failures wrap ErrMissingField with the
// absent segment named.
func ParseTag(raw string) (Tag, error) {
	module, function, found := strings.Cut(raw, ".")
	if !found || module == "" {
		return Tag{}, fmt.Errorf("%w: tag %q names no generator module", ErrMissingField, raw)
	}
	if function == "" {
		return Tag{}, fmt.Errorf("%w: tag %q names no generator function", ErrMissingField, raw)
	}
	return Tag{Module: module, Function: function}, nil
}

// Resolved holds bound generators keyed by module then function. Generators
// are not yet invoked; invocation is deferred to per-record generation.
type Resolved map[string]map[string]Generator

// Resolve validates every tag against the locale's capability graph and
// returns the bound generators. The first unresolvable tag aborts the whole
// resolution; classification is independent of tag iteration order because
// each tag is validated in isolation against the immutable graph.
func (r *Registry) Resolve(locale string, tags map[string]struct{}) (Resolved, error) {
	graph, err := r.Graph(locale)
	if err != nil {
		return nil, err
	}

	resolved := make(Resolved)
	for raw := range tags {
		tag, err := ParseTag(raw)
		if err != nil {
			return nil, err
		}

		module, ok := graph[tag.Module]
		if !ok {
			return nil, fmt.Errorf("%w: locale %q has no module %q", ErrInvalidModule, locale, tag.Module)
		}
		generator, ok := module[tag.Function]
		if !ok || generator == nil {
			return nil, fmt.Errorf("%w: module %q has no function %q in locale %q", ErrInvalidFunction, tag.Module, tag.Function, locale)
		}

		functions := resolved[tag.Module]
		if functions == nil {
			functions = make(map[string]Generator)
			resolved[tag.Module] = functions
		}
		functions[tag.Function] = generator
	}
	return resolved, nil
}

// Generate invokes every bound generator once and returns a fresh
// module.function value context. Each call produces independently generated
// values; nothing is reused across records.
func (r Resolved) Generate() map[string]any {
	record := make(map[string]any, len(r))
	for moduleName, functions := range r {
		values := make(map[string]any, len(functions))
		for name, generator := range functions {
			values[name] = generator()
		}
		record[moduleName] = values
	}
	return record
}
