// Package pipeline: standard stages (stdlib-style) for common pipeline patterns.

package pipeline

import (
	"context"
	"fmt"
	"time"
)

// Identity returns a stage that passes the input through unchanged.
// Useful as a no-op, for observer boundaries, or as a placeholder.
func Identity() Stage {
	return func(ctx context.Context, input interface{}) (interface{}, error) {
		return input, nil
	}
}

// Tap returns a stage that calls fn(ctx, input) then passes input through unchanged.
// Use for logging, metrics, or side effects without changing the value.
func Tap(fn func(context.Context, interface{})) Stage {
	return func(ctx context.Context, input interface{}) (interface{}, error) {
		fn(ctx, input)
		return input, nil
	}
}

// Validate returns a stage that passes input through only if predicate(v) is true.
// Otherwise it returns an error (errMsg if predicate returns false).
// Input must be of type T; type assertion failure returns an error.
func Validate[T any](predicate func(T) bool, errMsg string) Stage {
	return func(ctx context.Context, input interface{}) (interface{}, error) {
		v, ok := input.(T)
		if !ok {
			var zero T
			return nil, fmt.Errorf("validate: expected %T, got %T", zero, input)
		}
		if !predicate(v) {
			if errMsg == "" {
				errMsg = "validation failed"
			}
			return nil, fmt.Errorf("%s", errMsg)
		}
		return input, nil
	}
}

// Constant returns a stage that ignores input and always outputs value.
// Useful to inject a fixed value (e.g. as a test source).
func Constant(value interface{}) Stage {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		return value, nil
	}
}

// WithTimeout wraps inner so it runs with a context deadline of now+timeout.
// If inner does not return before the deadline, context.DeadlineExceeded is returned.
func WithTimeout(inner Stage, timeout time.Duration) Stage {
	return func(ctx context.Context, input interface{}) (interface{}, error) {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return inner(ctx, input)
	}
}
