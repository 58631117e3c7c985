package jsonformat

import (
	"context"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/tkovara/flowline/format"
)

// iterFormat is the json-jsoniter backend. It honors prettyPrint
// (IndentionStep), unmarshalType, collectionType, useList,
// allowTypeHeaderOverride and enableAnnotationInterop (relaxes field matching
// to case-insensitive); viewType and include are ignored.
type iterFormat struct {
	settings

	once sync.Once
	api  jsoniter.API
}

func newJSONIter(types format.Resolver) format.Format {
	return &iterFormat{settings: settings{types: types}}
}

// frozen builds the jsoniter API from the applied settings on first use.
// Properties are applied before first use, so freezing once is safe.
func (f *iterFormat) frozen() jsoniter.API {
	f.once.Do(func() {
		cfg := jsoniter.Config{
			EscapeHTML:             true,
			SortMapKeys:            true,
			ValidateJsonRawMessage: true,
			CaseSensitive:          !f.annotationInterop,
		}
		if f.prettyPrint {
			cfg.IndentionStep = 2
		}
		f.api = cfg.Froze()
	})
	return f.api
}

func (f *iterFormat) Marshal(ctx context.Context, v interface{}) ([]byte, error) {
	return f.frozen().Marshal(v)
}

func (f *iterFormat) Unmarshal(ctx context.Context, data []byte) (interface{}, error) {
	return f.decode(ctx, data, f.frozen().Unmarshal)
}
