// Package jsonformat provides the JSON backends for the format package:
// json-std (encoding/json), json-jsoniter (github.com/json-iterator/go) and
// json-goccy (github.com/goccy/go-json). Importing the package registers all
// three in format.DefaultRegistry, so a blank import is enough:
//
//	import _ "github.com/tkovara/flowline/jsonformat"
//
// All three honor unmarshalType, collectionType, useList, prettyPrint and
// allowTypeHeaderOverride. Views (viewType) and the NON_NULL include policy
// are honored by json-std only; enableAnnotationInterop by json-jsoniter only.
// A backend silently ignores properties it does not use.
package jsonformat
