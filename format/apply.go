package format

import "reflect"

// apply pushes every set attribute onto the backend through its Properties
// surface, in a fixed order: unmarshal type, pretty-print, view, include,
// header-override flag, collection type, use-list flag, annotation interop.
// Unset attributes are never pushed. The order is fixed only so behavior is
// reproducible; no property may depend on another having been set first.
func (d *JSONFormat) apply(f Format, unmarshalType, collectionType reflect.Type) {
	p, ok := f.(Properties)
	if !ok {
		return
	}
	if unmarshalType != nil {
		p.SetProperty("unmarshalType", unmarshalType)
	}
	if d.PrettyPrint != nil {
		p.SetProperty("prettyPrint", *d.PrettyPrint)
	}
	if d.ViewType != nil {
		p.SetProperty("viewType", d.ViewType)
	}
	if d.Include != nil {
		p.SetProperty("include", *d.Include)
	}
	if d.AllowTypeHeaderOverride != nil {
		p.SetProperty("allowTypeHeaderOverride", *d.AllowTypeHeaderOverride)
	}
	if collectionType != nil {
		p.SetProperty("collectionType", collectionType)
	}
	if d.UseList != nil {
		p.SetProperty("useList", *d.UseList)
	}
	if d.EnableAnnotationInterop != nil {
		p.SetProperty("enableAnnotationInterop", *d.EnableAnnotationInterop)
	}
}
