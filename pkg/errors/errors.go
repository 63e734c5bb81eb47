// Package errors provides structured invalid-argument errors for tiny-pretty.
//
// Every failure in this library is a construction-time validation failure:
// a document node or print option was built with a structurally invalid
// value. This package defines error codes and types that enable:
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages naming the violated constraint
//   - Error wrapping with context preservation
//
// # Error Codes
//
// All codes share the INVALID_* prefix because the library's error taxonomy
// has exactly one kind, invalid argument, subdivided for diagnostics:
//   - INVALID_TEXT: a text payload contains a raw line break
//   - INVALID_INDENT: a negative indentation amount
//   - INVALID_LINE: an unrecognized line kind
//   - INVALID_OPTIONS: an out-of-range or unrecognized print option
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidIndent, "indent amount %d is negative", n)
//	if errors.Is(err, errors.ErrCodeInvalidIndent) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidOptions, decodeErr, "malformed options")
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes. Each names one structurally invalid argument.
const (
	ErrCodeInvalidText    Code = "INVALID_TEXT"
	ErrCodeInvalidIndent  Code = "INVALID_INDENT"
	ErrCodeInvalidLine    Code = "INVALID_LINE"
	ErrCodeInvalidOptions Code = "INVALID_OPTIONS"
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
