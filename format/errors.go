package format

import (
	"errors"
	"fmt"
)

// ErrTypeNotFound is reported by a Resolver when a type name is not known.
// Resolution failures during Build wrap it in a ResolutionError.
var ErrTypeNotFound = errors.New("format: type not found")

// ResolutionError is returned by Build when a type name set on the descriptor
// (unmarshalTypeName or collectionTypeName) cannot be resolved. It is fatal
// for that build: no backend instance is returned and the build is not retried.
type ResolutionError struct {
	Attribute string // descriptor attribute being resolved
	TypeName  string // the name that failed to resolve
	Err       error  // the resolver's failure
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("format: %s: cannot resolve type %q: %v", e.Attribute, e.TypeName, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }
