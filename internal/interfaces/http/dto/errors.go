package dto

import (
	"net/http"

	"github.com/rentdesk/backend/internal/domain/shared"
)

// Transport-level error codes. Domain error codes (RECEIPT_NOT_FOUND,
// RECEIPT_ALREADY_PROCESSED, ...) are passed through from the domain layer
// unchanged; these codes cover failures that never reach it.
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeValidation is used when request binding or validation fails
	ErrCodeValidation = "VALIDATION_ERROR"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "INVALID_JSON"
	// ErrCodeUnauthorized is used when the account header is missing or invalid
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeNotFound is used when a route or resource is not found
	ErrCodeNotFound = "NOT_FOUND"
)

// kindHTTPStatus maps domain error kinds to HTTP status codes. The kind is
// the only part of a domain error the transport layer interprets.
var kindHTTPStatus = map[shared.ErrorKind]int{
	shared.KindNotFound:     http.StatusNotFound,
	shared.KindConflict:     http.StatusConflict,
	shared.KindValidation:   http.StatusBadRequest,
	shared.KindUnauthorized: http.StatusUnauthorized,
	shared.KindInternal:     http.StatusInternalServerError,
}

// HTTPStatusForKind returns the HTTP status code for a domain error kind.
// Unknown kinds map to 500.
func HTTPStatusForKind(kind shared.ErrorKind) int {
	if status, ok := kindHTTPStatus[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// HTTPStatusForError returns the HTTP status for any error, using the domain
// kind when present and 500 otherwise.
func HTTPStatusForError(err error) int {
	return HTTPStatusForKind(shared.KindOf(err))
}
