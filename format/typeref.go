package format

import (
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"
)

// TypeRef refers to a type either by a resolved handle or by a name that is
// resolved lazily at build time. The zero value is unset (no type). A handle,
// once set, wins over any name. Resolution happens at most once per TypeRef:
// both the handle and a resolution failure are cached, so repeated builds of
// the same descriptor hit the Resolver at most once.
type TypeRef struct {
	name string
	typ  reflect.Type
	err  error
}

// NamedType returns a TypeRef that resolves name at build time.
func NamedType(name string) TypeRef { return TypeRef{name: name} }

// ResolvedType returns a TypeRef already holding the given handle.
func ResolvedType(t reflect.Type) TypeRef { return TypeRef{typ: t} }

// TypeOf returns a TypeRef holding the dynamic type of v.
func TypeOf(v interface{}) TypeRef { return ResolvedType(reflect.TypeOf(v)) }

// IsZero reports whether the ref is unset: no handle, no name.
func (r TypeRef) IsZero() bool { return r.typ == nil && r.name == "" }

// Name returns the type name, or "" when the ref was built from a handle.
func (r TypeRef) Name() string { return r.name }

// Type returns the resolved handle, or nil when not (yet) resolved.
func (r TypeRef) Type() reflect.Type { return r.typ }

// Resolve returns the type handle, consulting res for a named ref that has not
// been resolved yet. Unset refs return (nil, nil). The outcome is cached:
// a second call returns the same handle or the same failure without touching
// the resolver again.
func (r *TypeRef) Resolve(res Resolver) (reflect.Type, error) {
	if r.typ != nil {
		return r.typ, nil
	}
	if r.err != nil {
		return nil, r.err
	}
	if r.name == "" {
		return nil, nil
	}
	if res == nil {
		r.err = fmt.Errorf("no resolver for %q: %w", r.name, ErrTypeNotFound)
		return nil, r.err
	}
	t, err := res.ResolveType(r.name)
	if err != nil {
		r.err = err
		return nil, err
	}
	r.typ = t
	return t, nil
}

// UnmarshalYAML reads a plain string as the type name, so a YAML config can
// write unmarshalTypeName: com.example.Order.
func (r *TypeRef) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	*r = TypeRef{name: name}
	return nil
}

// MarshalYAML writes the type name; refs built from a handle have no
// persisted form and marshal as empty.
func (r TypeRef) MarshalYAML() (interface{}, error) { return r.name, nil }
