// Package errors provides structured error types for dropgrid.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the drag core, the host board and the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - UNKNOWN_*: Identifiers that do not resolve to a registered entry
//   - INVALID_*: Input validation failures
//   - INDEX_OUT_OF_RANGE: Reordering indices outside the valid bounds
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownItem, "item %q is not registered", id)
//	if errors.Is(err, errors.ErrCodeUnknownItem) {
//	    // Drop the event
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidFormat, origErr, "decode board %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Drag core errors
	ErrCodeUnknownItem      Code = "UNKNOWN_ITEM"
	ErrCodeUnknownContainer Code = "UNKNOWN_CONTAINER"
	ErrCodeIndexOutOfRange  Code = "INDEX_OUT_OF_RANGE"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidID     Code = "INVALID_ID"
	ErrCodeInvalidGrid   Code = "INVALID_GRID"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"
	ErrCodeDuplicateID   Code = "DUPLICATE_ID"

	// Resource errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeStorage      Code = "STORAGE_ERROR"

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

// IndexError carries the offending index and the valid bound for
// INDEX_OUT_OF_RANGE failures so callers can report precise diagnostics.
type IndexError struct {
	Index  int // The rejected index
	Length int // Length of the sequence the index was checked against
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	if e.Length == 0 {
		return fmt.Sprintf("index %d out of range for empty sequence", e.Index)
	}
	return fmt.Sprintf("index %d out of range [0, %d]", e.Index, e.Length-1)
}

// Code returns the error code for this error type.
func (e *IndexError) Code() Code {
	return ErrCodeIndexOutOfRange
}

// OutOfRange builds an INDEX_OUT_OF_RANGE error for index against a sequence
// of the given length. The returned error unwraps to an *IndexError.
func OutOfRange(what string, index, length int) *Error {
	cause := &IndexError{Index: index, Length: length}
	return Wrap(ErrCodeIndexOutOfRange, cause, "%s", what)
}
