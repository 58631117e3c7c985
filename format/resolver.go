package format

import (
	"fmt"
	"reflect"
	"sync"
)

// Resolver resolves a fully-qualified type name to a runtime type. Resolution
// is an in-process lookup against already-registered types, not I/O.
type Resolver interface {
	ResolveType(name string) (reflect.Type, error)
}

// TypeRegistry maps type names to reflect.Type. Safe for concurrent use.
// It is the standard Resolver implementation: register every type a pipeline
// definition may name before building.
type TypeRegistry struct {
	mu    sync.RWMutex
	types map[string]reflect.Type
}

// NewTypeRegistry returns an empty type registry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{types: make(map[string]reflect.Type)}
}

// Register adds the dynamic type of v under the given name. Overwrites any
// existing registration. Register a value, not a pointer, unless you want
// unmarshalling to produce pointers.
func (r *TypeRegistry) Register(name string, v interface{}) {
	r.RegisterType(name, reflect.TypeOf(v))
}

// RegisterType adds t under the given name. Overwrites any existing registration.
func (r *TypeRegistry) RegisterType(name string, t reflect.Type) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.types == nil {
		r.types = make(map[string]reflect.Type)
	}
	r.types[name] = t
}

// ResolveType implements Resolver. Unknown names return an error wrapping
// ErrTypeNotFound.
func (r *TypeRegistry) ResolveType(name string) (reflect.Type, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrTypeNotFound)
	}
	return t, nil
}

// Names returns all registered type names (unordered).
func (r *TypeRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.types))
	for n := range r.types {
		names = append(names, n)
	}
	return names
}
