package jsonformat

import (
	"reflect"
	"strings"
)

// IncludeNonNull is the include policy that drops null-valued fields at marshal.
const IncludeNonNull = "NON_NULL"

// project builds a field map of v restricted to the field names view declares
// and, with nonNull, to fields whose value would not encode as JSON null.
// Values that are not structs (or pointers to structs) are returned unchanged.
func project(v interface{}, view reflect.Type, nonNull bool) interface{} {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return v
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return v
	}
	allowed := viewFields(view)
	t := rv.Type()
	out := make(map[string]interface{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue // unexported
		}
		name := jsonFieldName(f)
		if name == "-" {
			continue
		}
		if allowed != nil && !allowed[name] {
			continue
		}
		fv := rv.Field(i)
		if nonNull && isNull(fv) {
			continue
		}
		out[name] = fv.Interface()
	}
	return out
}

// viewFields returns the JSON field names a view type declares, or nil when
// there is no view (all fields pass).
func viewFields(view reflect.Type) map[string]bool {
	if view == nil {
		return nil
	}
	for view.Kind() == reflect.Ptr {
		view = view.Elem()
	}
	if view.Kind() != reflect.Struct {
		return nil
	}
	fields := make(map[string]bool, view.NumField())
	for i := 0; i < view.NumField(); i++ {
		fields[jsonFieldName(view.Field(i))] = true
	}
	return fields
}

func jsonFieldName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if i := strings.Index(tag, ","); i >= 0 {
		tag = tag[:i]
	}
	if tag == "" {
		return f.Name
	}
	return tag
}

func isNull(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
