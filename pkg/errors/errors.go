// Package errors provides structured error types for termplot.
//
// Every failure the rendering core can surface carries a machine-readable
// [Code], so callers can decide whether to abort a render or substitute a
// fallback canvas without matching on message text.
//
// # Error Codes
//
//   - OUT_OF_BOUNDS: a dot coordinate lies outside the declared canvas size
//   - INVALID_TARGET: a requested render size is smaller than the intrinsic size
//   - INVALID_ALIGNMENT, INVALID_STYLE, INVALID_COLOR: bad construction tokens
//   - UNKNOWN_GLYPH: a character has no bitmap in the glyph table
//   - INVALID_SCENE: a scene description could not be turned into a canvas tree
//
// # Usage
//
//	err := errors.New(errors.ErrCodeOutOfBounds, "dot (%d, %d) outside %dx%d", x, y, w, h)
//	if errors.Is(err, errors.ErrCodeOutOfBounds) {
//	    // Handle bad coordinate
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidScene, origErr, "node %q", name)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Geometry errors
	ErrCodeOutOfBounds   Code = "OUT_OF_BOUNDS"
	ErrCodeInvalidTarget Code = "INVALID_TARGET"

	// Construction-time validation errors
	ErrCodeInvalidAlignment Code = "INVALID_ALIGNMENT"
	ErrCodeInvalidStyle     Code = "INVALID_STYLE"
	ErrCodeInvalidColor     Code = "INVALID_COLOR"
	ErrCodeUnknownGlyph     Code = "UNKNOWN_GLYPH"

	// Input errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidScene  Code = "INVALID_SCENE"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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

// Is reports whether any *Error in err's chain has the given code.
// A wrapper with a different code does not hide an inner match, so a
// scene error caused by a bad color still reports INVALID_COLOR.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode extracts the outermost error code from an error, if available.
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
