package stack

import (
	"stackctl/internal/config"
)

// Registry is the ordered, read-only set of managed services. It is built
// once from configuration; the order of definitions is the display order.
type Registry struct {
	defs        []config.ServiceDefinition
	byKey       map[string]config.ServiceDefinition
	byContainer map[string]string
}

// NewRegistry builds a Registry from service definitions, preserving order.
func NewRegistry(defs []config.ServiceDefinition) *Registry {
	r := &Registry{
		defs:        make([]config.ServiceDefinition, len(defs)),
		byKey:       make(map[string]config.ServiceDefinition, len(defs)),
		byContainer: make(map[string]string, len(defs)),
	}
	copy(r.defs, defs)
	for _, def := range defs {
		r.byKey[def.Key] = def
		if def.Container != "" {
			r.byContainer[def.Container] = def.Key
		}
	}
	return r
}

// Len returns the number of registered services.
func (r *Registry) Len() int {
	return len(r.defs)
}

// Keys returns the service keys in registry order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.defs))
	for _, def := range r.defs {
		keys = append(keys, def.Key)
	}
	return keys
}

// Definitions returns the service definitions in registry order.
func (r *Registry) Definitions() []config.ServiceDefinition {
	defs := make([]config.ServiceDefinition, len(r.defs))
	copy(defs, r.defs)
	return defs
}

// Has reports whether key names a registered service.
func (r *Registry) Has(key string) bool {
	_, ok := r.byKey[key]
	return ok
}

// Definition returns the definition for key.
func (r *Registry) Definition(key string) (config.ServiceDefinition, bool) {
	def, ok := r.byKey[key]
	return def, ok
}

// ResolveContainer translates a compose-generated container name to its
// service key. Unknown container names pass through verbatim: the status
// parser keeps best-effort entries for containers outside the registry.
func (r *Registry) ResolveContainer(name string) string {
	if key, ok := r.byContainer[name]; ok {
		return key
	}
	return name
}
