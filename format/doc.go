// Package format provides declarative data-format configuration for pipelines.
// A JSONFormat describes which JSON backend to use (std, jsoniter, goccy) and
// which options to apply; Build resolves it into a ready marshaller/unmarshaller
// when the pipeline is built, not when the descriptor is populated.
//
// Populate a descriptor (directly or from YAML), then build it:
//
//	d := &format.JSONFormat{
//	    Library:       format.LibraryJSONIter,
//	    PrettyPrint:   format.Bool(true),
//	    UnmarshalType: format.NamedType("com.example.Order"),
//	}
//	f, err := d.Build(&format.BuildContext{Types: types})
//
// Only options that were set are pushed onto the backend, so "unset" and "set
// to false" stay distinct: an unset PrettyPrint leaves the backend default,
// Bool(false) forces compact output. Type names are resolved through the build
// context's Resolver exactly once per descriptor; an unknown name fails the
// build with a ResolutionError and no backend instance is returned.
//
// Backends register themselves by key in DefaultRegistry (import the
// jsonformat package for the JSON ones). Use MarshalStage and UnmarshalStage
// to run a built format inside a pipeline.
package format
