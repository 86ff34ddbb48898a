// Package hospital defines the closed error taxonomy shared by the staff
// entities, the document store and the personnel controller. Business
// failures are values of *Error tagged with a Kind; callers branch with
// errors.As / the Is* helpers instead of matching on message text.
package hospital

import (
	"errors"
	"fmt"
)

// Kind classifies a business error.
type Kind int

const (
	// KindValidation marks malformed or out-of-domain input, detected
	// before any mutation takes place.
	KindValidation Kind = iota + 1

	// KindInvalidState marks an operation that is not permitted given the
	// current state of an entity (double deactivation, removing the sole
	// department, and so on).
	KindInvalidState

	// KindNotFound marks a referenced ID that is absent from a collection.
	KindNotFound

	// KindStorage marks an I/O or serialization failure in the document
	// store.
	KindStorage
)

// String returns the kind label used in logs.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindInvalidState:
		return "invalid-state"
	case KindNotFound:
		return "not-found"
	case KindStorage:
		return "storage"
	default:
		return "unknown"
	}
}

// Error is the single error type for hospital business failures. Context
// carries optional structured detail (requested vs. current values, IDs).
type Error struct {
	Kind    Kind
	Message string
	Context map[string]any
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, when one exists.
func (e *Error) Unwrap() error {
	return e.cause
}

// With attaches a context value and returns the same error for chaining.
func (e *Error) With(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any, 1)
	}
	e.Context[key] = value
	return e
}

// Wrap records the underlying cause and returns the same error.
func (e *Error) Wrap(cause error) *Error {
	e.cause = cause
	return e
}

// NewValidation builds a validation error.
func NewValidation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NewInvalidState builds an invalid-state error.
func NewInvalidState(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

// NewNotFound builds a not-found error.
func NewNotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewStorage builds a storage error.
func NewStorage(format string, args ...any) *Error {
	return &Error{Kind: KindStorage, Message: fmt.Sprintf(format, args...)}
}

func isKind(err error, kind Kind) bool {
	var herr *Error
	if errors.As(err, &herr) {
		return herr.Kind == kind
	}
	return false
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool { return isKind(err, KindValidation) }

// IsInvalidState reports whether err is an invalid-state error.
func IsInvalidState(err error) bool { return isKind(err, KindInvalidState) }

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return isKind(err, KindNotFound) }

// IsStorage reports whether err is a storage error.
func IsStorage(err error) bool { return isKind(err, KindStorage) }
