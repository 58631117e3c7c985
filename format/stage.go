package format

import (
	"context"
	"fmt"

	"github.com/tkovara/flowline/pipeline"
)

// MarshalStage returns a stage that marshals its input with f. Output is []byte.
func MarshalStage(f Format) pipeline.Stage {
	return func(ctx context.Context, input interface{}) (interface{}, error) {
		out, err := f.Marshal(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("marshal: %w", err)
		}
		return out, nil
	}
}

// UnmarshalStage returns a stage that unmarshals its input with f.
// Input must be []byte or string; output is the decoded value (the format's
// configured unmarshal type, or e.g. map[string]interface{} for objects).
func UnmarshalStage(f Format) pipeline.Stage {
	return func(ctx context.Context, input interface{}) (interface{}, error) {
		var raw []byte
		switch v := input.(type) {
		case []byte:
			raw = v
		case string:
			raw = []byte(v)
		default:
			return nil, fmt.Errorf("unmarshal: input must be []byte or string, got %T", input)
		}
		out, err := f.Unmarshal(ctx, raw)
		if err != nil {
			return nil, fmt.Errorf("unmarshal: %w", err)
		}
		return out, nil
	}
}
