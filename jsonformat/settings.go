package jsonformat

import (
	"context"
	"fmt"
	"reflect"

	"github.com/tkovara/flowline/format"
)

// settings is the property surface shared by the JSON backends. Each backend
// embeds it and reads the fields it understands; values pushed for a property
// the backend does not read are stored and ignored. Values of the wrong
// dynamic type and names nothing declares fall through silently.
type settings struct {
	types format.Resolver

	unmarshalType           reflect.Type
	collectionType          reflect.Type
	viewType                reflect.Type
	include                 string
	prettyPrint             bool
	allowTypeHeaderOverride bool
	useList                 bool
	annotationInterop       bool
}

// SetProperty implements format.Properties.
func (s *settings) SetProperty(name string, value interface{}) {
	switch name {
	case "unmarshalType":
		if t, ok := value.(reflect.Type); ok {
			s.unmarshalType = t
		}
	case "prettyPrint":
		if b, ok := value.(bool); ok {
			s.prettyPrint = b
		}
	case "viewType":
		if t, ok := value.(reflect.Type); ok {
			s.viewType = t
		}
	case "include":
		if v, ok := value.(string); ok {
			s.include = v
		}
	case "allowTypeHeaderOverride":
		if b, ok := value.(bool); ok {
			s.allowTypeHeaderOverride = b
		}
	case "collectionType":
		if t, ok := value.(reflect.Type); ok {
			s.collectionType = t
		}
	case "useList":
		if b, ok := value.(bool); ok {
			s.useList = b
		}
	case "enableAnnotationInterop":
		if b, ok := value.(bool); ok {
			s.annotationInterop = b
		}
	}
}

// target returns a pointer to a fresh value to decode into, or nil when the
// backend should decode into a plain interface{}. The context type header,
// when allowed, overrides the configured unmarshal type; with useList the
// container is collectionType if set, else a slice of the element type.
func (s *settings) target(ctx context.Context) (interface{}, error) {
	elem := s.unmarshalType
	if s.allowTypeHeaderOverride {
		if name, ok := format.TypeHeaderFromContext(ctx); ok {
			if s.types == nil {
				return nil, fmt.Errorf("type header %q: %w", name, format.ErrTypeNotFound)
			}
			t, err := s.types.ResolveType(name)
			if err != nil {
				return nil, fmt.Errorf("type header: %w", err)
			}
			elem = t
		}
	}
	if s.useList {
		ct := s.collectionType
		if ct == nil {
			if elem == nil {
				return new([]interface{}), nil
			}
			ct = reflect.SliceOf(elem)
		}
		return reflect.New(ct).Interface(), nil
	}
	if elem == nil {
		return nil, nil
	}
	return reflect.New(elem).Interface(), nil
}

// decode unmarshals data with the backend's unmarshal func into the planned
// target and returns the decoded value.
func (s *settings) decode(ctx context.Context, data []byte, unmarshal func([]byte, interface{}) error) (interface{}, error) {
	dst, err := s.target(ctx)
	if err != nil {
		return nil, err
	}
	if dst == nil {
		var out interface{}
		if err := unmarshal(data, &out); err != nil {
			return nil, err
		}
		return out, nil
	}
	if err := unmarshal(data, dst); err != nil {
		return nil, err
	}
	return reflect.ValueOf(dst).Elem().Interface(), nil
}
