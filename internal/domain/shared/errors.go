package shared

import "errors"

// ErrorKind classifies a domain error so the transport layer can map it to a
// client-facing status without inspecting codes or messages.
type ErrorKind string

const (
	KindNotFound     ErrorKind = "not_found"
	KindConflict     ErrorKind = "conflict"
	KindValidation   ErrorKind = "validation"
	KindUnauthorized ErrorKind = "unauthorized"
	KindInternal     ErrorKind = "internal"
)

// DomainError represents a domain-level error
type DomainError struct {
	Kind    ErrorKind `json:"kind"`
	Code    string    `json:"code"`
	Message string    `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error of the given kind
func NewDomainError(kind ErrorKind, code, message string) *DomainError {
	return &DomainError{
		Kind:    kind,
		Code:    code,
		Message: message,
	}
}

// NewNotFound creates a not-found error. Records outside the caller's
// account are reported through this kind as well; absence and lack of
// access are deliberately indistinguishable to callers.
func NewNotFound(code, message string) *DomainError {
	return NewDomainError(KindNotFound, code, message)
}

// NewConflict creates a conflict error for operations that would violate an
// invariant if they proceeded.
func NewConflict(code, message string) *DomainError {
	return NewDomainError(KindConflict, code, message)
}

// NewValidation creates a validation error for malformed input detectable
// without a storage round-trip.
func NewValidation(code, message string) *DomainError {
	return NewDomainError(KindValidation, code, message)
}

// NewUnauthorized creates an unauthorized error.
func NewUnauthorized(code, message string) *DomainError {
	return NewDomainError(KindUnauthorized, code, message)
}

// NewInternal creates an internal error for failures the caller cannot act on.
func NewInternal(code, message string) *DomainError {
	return NewDomainError(KindInternal, code, message)
}

// Common domain errors
var (
	ErrNotFound            = NewNotFound("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewConflict("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewValidation("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewConflict("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrUnauthorized        = NewUnauthorized("UNAUTHORIZED", "Not authorized to perform this action")
	ErrInvalidState        = NewConflict("INVALID_STATE", "Operation not allowed in current state")
)

// KindOf returns the kind of err when it is or wraps a DomainError,
// KindInternal otherwise.
func KindOf(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
