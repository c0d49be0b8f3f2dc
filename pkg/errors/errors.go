// Package errors provides structured error types for the vizlens application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI, API, and library consumers
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Classes
//
// Codes fall into two classes that drive resolution policy:
//
//   - Recoverable: malformed metadata documents, missing record fields,
//     graph entities not found. Resolvers log these and degrade to an empty
//     or partial result.
//   - Fatal: transport failures against a target the caller expects to
//     exist, and structurally invalid inputs (e.g. a malformed pod name).
//     These are wrapped with stage context and propagated.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMissingField, "confusion matrix requires labels")
//	if errors.Is(err, errors.ErrCodeMissingField) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeNetwork, origErr, "get artifact types")
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Metadata validation errors
	ErrCodeInvalidMetadata   Code = "INVALID_METADATA"
	ErrCodeMissingField      Code = "MISSING_FIELD"
	ErrCodeMissingColumn     Code = "MISSING_COLUMN"
	ErrCodeInvalidFormat     Code = "INVALID_FORMAT"
	ErrCodeInvalidSource     Code = "INVALID_SOURCE"
	ErrCodeDimensionMismatch Code = "DIMENSION_MISMATCH"
	ErrCodeUnknownLabel      Code = "UNKNOWN_LABEL"

	// Input contract errors
	ErrCodeInvalidPodName Code = "INVALID_POD_NAME"

	// Resource not found errors
	ErrCodeNotFound Code = "NOT_FOUND"

	// Network errors
	ErrCodeNetwork Code = "NETWORK_ERROR"
	ErrCodeTimeout Code = "TIMEOUT"

	// Rendering errors
	ErrCodeRenderFailed Code = "RENDER_FAILED"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Recoverable reports whether err belongs to the expected/recoverable class:
// conditions a resolver absorbs by degrading to an empty or partial result
// rather than failing the whole call.
func Recoverable(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidMetadata, ErrCodeMissingField, ErrCodeMissingColumn,
		ErrCodeInvalidFormat, ErrCodeDimensionMismatch, ErrCodeUnknownLabel,
		ErrCodeNotFound, ErrCodeUnsupported:
		return true
	}
	return false
}
