package format

import (
	"context"
	"sync"
)

// BuildContext carries the collaborators a descriptor needs at build time and
// a property bag for build diagnostics. The zero value is usable: Types may be
// nil when the descriptor uses no type names, and a nil Formats means
// DefaultRegistry.
type BuildContext struct {
	// Types resolves type names (unmarshalTypeName, collectionTypeName).
	Types Resolver

	// Formats is the backend registry; nil means DefaultRegistry.
	Formats *Registry

	mu    sync.Mutex
	props map[string]string
}

// SetProperty records a named diagnostic on the build context.
func (bc *BuildContext) SetProperty(name, value string) {
	bc.mu.Lock()
	defer bc.mu.Unlock()
	if bc.props == nil {
		bc.props = make(map[string]string)
	}
	bc.props[name] = value
}

// Property returns a recorded diagnostic, or "" and false when not set.
func (bc *BuildContext) Property(name string) (string, bool) {
	bc.mu.Lock()
	defer bc.mu.Unlock()
	v, ok := bc.props[name]
	return v, ok
}

func (bc *BuildContext) registry() *Registry {
	if bc.Formats != nil {
		return bc.Formats
	}
	return DefaultRegistry
}

// context key for the out-of-band type header
type typeHeaderKey struct{}

// WithTypeHeader attaches a type name to the context. A backend built with
// allowTypeHeaderOverride=true resolves it and unmarshals into that type
// instead of the configured one; other backends ignore it.
func WithTypeHeader(ctx context.Context, typeName string) context.Context {
	return context.WithValue(ctx, typeHeaderKey{}, typeName)
}

// TypeHeaderFromContext returns the type name attached with WithTypeHeader.
func TypeHeaderFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(typeHeaderKey{}).(string)
	return name, ok
}
