package csvimport

import (
	"errors"
	"fmt"
)

// Row-level error codes surfaced in import reports
const (
	ErrCodeRequiredField     = "IMPORT_REQUIRED_FIELD"
	ErrCodeInvalidValue      = "IMPORT_INVALID_VALUE"
	ErrCodeReferenceNotFound = "IMPORT_REFERENCE_NOT_FOUND"
)

var (
	// ErrEmptyFile is returned when the CSV file is empty
	ErrEmptyFile = errors.New("CSV file is empty")

	// ErrInvalidEncoding is returned when the file is not valid UTF-8
	ErrInvalidEncoding = errors.New("invalid file encoding")

	// ErrMissingHeader is returned when the CSV file has no header row
	ErrMissingHeader = errors.New("CSV file missing header row")
)

// RowError describes a problem in a specific row
type RowError struct {
	Row     int    `json:"row"`
	Column  string `json:"column"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

// Error implements the error interface
func (e RowError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("row %d, column '%s': %s", e.Row, e.Column, e.Message)
	}
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}

// ErrorCollection accumulates row errors up to a cap so a huge broken file
// cannot blow up the response payload.
type ErrorCollection struct {
	errors     []RowError
	maxErrors  int
	totalCount int
}

// NewErrorCollection creates an ErrorCollection with a maximum error limit
func NewErrorCollection(maxErrors int) *ErrorCollection {
	if maxErrors <= 0 {
		maxErrors = 100
	}
	return &ErrorCollection{
		errors:    make([]RowError, 0, maxErrors),
		maxErrors: maxErrors,
	}
}

// Add records an error. Past the cap only the total count grows.
func (ec *ErrorCollection) Add(err RowError) {
	ec.totalCount++
	if len(ec.errors) < ec.maxErrors {
		ec.errors = append(ec.errors, err)
	}
}

// AddRequired records a missing required field
func (ec *ErrorCollection) AddRequired(row int, column string) {
	ec.Add(RowError{
		Row:     row,
		Column:  column,
		Code:    ErrCodeRequiredField,
		Message: fmt.Sprintf("field '%s' is required", column),
	})
}

// AddInvalid records a value that failed parsing or validation
func (ec *ErrorCollection) AddInvalid(row int, column, message, value string) {
	ec.Add(RowError{
		Row:     row,
		Column:  column,
		Code:    ErrCodeInvalidValue,
		Message: message,
		Value:   value,
	})
}

// AddReference records a lookup value that matched nothing
func (ec *ErrorCollection) AddReference(row int, column, refType, value string) {
	ec.Add(RowError{
		Row:     row,
		Column:  column,
		Code:    ErrCodeReferenceNotFound,
		Message: fmt.Sprintf("%s '%s' not found", refType, value),
		Value:   value,
	})
}

// Errors returns the collected errors
func (ec *ErrorCollection) Errors() []RowError {
	return ec.errors
}

// TotalCount returns all errors seen, including those over the cap
func (ec *ErrorCollection) TotalCount() int {
	return ec.totalCount
}

// HasErrors returns true if any error was recorded
func (ec *ErrorCollection) HasErrors() bool {
	return ec.totalCount > 0
}

// IsTruncated returns true if some errors were dropped due to the cap
func (ec *ErrorCollection) IsTruncated() bool {
	return ec.totalCount > ec.maxErrors
}
