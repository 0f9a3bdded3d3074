package catalog

import "fmt"

// ErrorKind tags the reason a catalog operation failed.
type ErrorKind string

const (
	// ErrVersionMismatch means a decoded document's version field did
	// not match the version this package understands.
	ErrVersionMismatch ErrorKind = "incorrectCommandSpecificationVersion"
	// ErrMalformed means the document could not be decoded at all.
	ErrMalformed ErrorKind = "malformedCommandSpecification"
)

// Error is the catalog package's error type.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is reports whether target shares this error's Kind, so callers can
// use errors.Is(err, &catalog.Error{Kind: catalog.ErrVersionMismatch}).
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}
