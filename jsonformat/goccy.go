package jsonformat

import (
	"context"

	gojson "github.com/goccy/go-json"

	"github.com/tkovara/flowline/format"
)

// goccyFormat is the json-goccy backend on github.com/goccy/go-json. It honors
// prettyPrint, unmarshalType, collectionType, useList and
// allowTypeHeaderOverride; viewType, include and enableAnnotationInterop are
// ignored.
type goccyFormat struct {
	settings
}

func newGoccy(types format.Resolver) format.Format {
	return &goccyFormat{settings{types: types}}
}

func (f *goccyFormat) Marshal(ctx context.Context, v interface{}) ([]byte, error) {
	if f.prettyPrint {
		return gojson.MarshalIndent(v, "", "  ")
	}
	return gojson.Marshal(v)
}

func (f *goccyFormat) Unmarshal(ctx context.Context, data []byte) (interface{}, error) {
	return f.decode(ctx, data, gojson.Unmarshal)
}
