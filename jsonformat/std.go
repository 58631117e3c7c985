package jsonformat

import (
	"context"
	"encoding/json"

	"github.com/tkovara/flowline/format"
)

// stdFormat is the json-std backend on encoding/json. It honors prettyPrint,
// unmarshalType, collectionType, useList, allowTypeHeaderOverride, viewType
// (field projection by the view type's field set) and include=NON_NULL.
type stdFormat struct {
	settings
}

func newStd(types format.Resolver) format.Format {
	return &stdFormat{settings{types: types}}
}

func (f *stdFormat) Marshal(ctx context.Context, v interface{}) ([]byte, error) {
	if f.viewType != nil || f.include == IncludeNonNull {
		v = project(v, f.viewType, f.include == IncludeNonNull)
	}
	if f.prettyPrint {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

func (f *stdFormat) Unmarshal(ctx context.Context, data []byte) (interface{}, error) {
	return f.decode(ctx, data, json.Unmarshal)
}
