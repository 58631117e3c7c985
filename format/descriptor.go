package format

import (
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"
)

// Library identifies which JSON library backs a JSONFormat. The zero value
// LibraryStd (encoding/json) is the default.
type Library int

const (
	LibraryStd      Library = iota // encoding/json
	LibraryJSONIter                // github.com/json-iterator/go
	LibraryGoccy                   // github.com/goccy/go-json
)

// Key returns the registry key for the library. Total over the enum: values
// outside the declared set fall back to the default library's key.
func (l Library) Key() string {
	switch l {
	case LibraryJSONIter:
		return "json-jsoniter"
	case LibraryGoccy:
		return "json-goccy"
	default:
		return "json-std"
	}
}

// String returns the short name used in YAML configs.
func (l Library) String() string {
	switch l {
	case LibraryJSONIter:
		return "jsoniter"
	case LibraryGoccy:
		return "goccy"
	default:
		return "std"
	}
}

// UnmarshalYAML reads the short name. Empty or omitted means LibraryStd.
func (l *Library) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch s {
	case "", "std":
		*l = LibraryStd
	case "jsoniter":
		*l = LibraryJSONIter
	case "goccy":
		*l = LibraryGoccy
	default:
		return fmt.Errorf("format: library %q not supported (use \"std\", \"jsoniter\" or \"goccy\")", s)
	}
	return nil
}

// MarshalYAML writes the short name.
func (l Library) MarshalYAML() (interface{}, error) { return l.String(), nil }

// JSONFormat declares which JSON backend a pipeline uses and how to configure
// it. Every attribute except Library is optional; only attributes that were
// set are pushed onto the backend, so the backend's own default stays in
// effect for the rest. Set a *bool with Bool and a *string with String to keep
// "unset" distinct from "set to the zero value".
//
// Populate the descriptor freely (single writer), then Build it once per
// pipeline build; from then on treat it as read-only. Attributes a chosen
// library does not support are silently ignored by that backend.
type JSONFormat struct {
	// Library selects the backend. Zero value is LibraryStd.
	Library Library `yaml:"library"`

	// PrettyPrint enables indented output.
	PrettyPrint *bool `yaml:"prettyPrint"`

	// UnmarshalType is the type to unmarshal into, by name or handle.
	UnmarshalType TypeRef `yaml:"unmarshalTypeName"`

	// ViewType restricts which fields are marshalled, on backends with views.
	// Handles only; views have no persisted form.
	ViewType reflect.Type `yaml:"-"`

	// Include controls null-field inclusion at marshal, e.g. "NON_NULL".
	Include *string `yaml:"include"`

	// AllowTypeHeaderOverride lets a type header on the context (see
	// WithTypeHeader) override UnmarshalType.
	AllowTypeHeaderOverride *bool `yaml:"allowTypeHeaderOverride"`

	// CollectionType is the container type used with UseList, by name or handle.
	CollectionType TypeRef `yaml:"collectionTypeName"`

	// UseList unmarshals into a list instead of a single value.
	UseList *bool `yaml:"useList"`

	// EnableAnnotationInterop honors the backend's secondary field-matching
	// model, on backends that have one.
	EnableAnnotationInterop *bool `yaml:"enableAnnotationInterop"`
}

// DataFormatNameProperty is the build-context property recording which backend
// key a build selected, for diagnostics.
const DataFormatNameProperty = "dataFormatName"

// Build resolves the descriptor into a configured backend instance: compute
// the registry key, record it on the build context, resolve any type names,
// create the backend, and apply the set attributes. A type name that does not
// resolve fails the build with a ResolutionError before the backend is
// created. Building the same descriptor again reuses the cached type handles.
func (d *JSONFormat) Build(bc *BuildContext) (Format, error) {
	key := d.Library.Key()
	bc.SetProperty(DataFormatNameProperty, key)

	unmarshalType, err := resolveRef(&d.UnmarshalType, "unmarshalTypeName", bc.Types)
	if err != nil {
		return nil, err
	}
	collectionType, err := resolveRef(&d.CollectionType, "collectionTypeName", bc.Types)
	if err != nil {
		return nil, err
	}

	f, err := bc.registry().Create(key, bc.Types)
	if err != nil {
		return nil, err
	}
	d.apply(f, unmarshalType, collectionType)
	return f, nil
}

func resolveRef(ref *TypeRef, attr string, types Resolver) (reflect.Type, error) {
	t, err := ref.Resolve(types)
	if err != nil {
		return nil, &ResolutionError{Attribute: attr, TypeName: ref.Name(), Err: err}
	}
	return t, nil
}

// Bool returns a pointer to v, for setting optional bool attributes.
func Bool(v bool) *bool { return &v }

// String returns a pointer to v, for setting optional string attributes.
func String(v string) *string { return &v }
