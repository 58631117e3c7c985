package format

import (
	"context"
	"fmt"
	"sync"
)

// Format marshals and unmarshals payloads for a pipeline. Built instances are
// owned by the pipeline that built them; a Format must be safe for concurrent
// use once configured.
type Format interface {
	Marshal(ctx context.Context, v interface{}) ([]byte, error)
	Unmarshal(ctx context.Context, data []byte) (interface{}, error)
}

// Properties is the generic configuration surface a backend exposes: named
// property setters applied once, between construction and first use. Setting
// a name the backend does not use is a silent no-op; which names a backend
// honors is documented on the backend.
type Properties interface {
	SetProperty(name string, value interface{})
}

// Factory creates an unconfigured backend instance. The resolver is the one
// the enclosing build uses; backends keep it for type-header overrides.
type Factory func(types Resolver) Format

// Registry maps data-format keys to factories. Safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty format registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under the given key. Overwrites any existing registration.
func (r *Registry) Register(key string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.factories == nil {
		r.factories = make(map[string]Factory)
	}
	r.factories[key] = f
}

// Create instantiates an unconfigured backend by key.
func (r *Registry) Create(key string, types Resolver) (Format, error) {
	r.mu.RLock()
	f, ok := r.factories[key]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("format: %q not in registry", key)
	}
	return f(types), nil
}

// Names returns all registered keys (unordered).
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for n := range r.factories {
		names = append(names, n)
	}
	return names
}

// DefaultRegistry is the registry used when a BuildContext does not set its
// own. Backend packages register their keys here from init().
var DefaultRegistry = NewRegistry()

// Register adds a factory to DefaultRegistry.
func Register(key string, f Factory) { DefaultRegistry.Register(key, f) }
