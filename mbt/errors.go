package mbt

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

const (
	// CodeNotImplemented marks an operation the model deliberately declines.
	// It is not a failure inside an action sequence.
	CodeNotImplemented Code = "NOT_IMPLEMENTED"
	// CodeOther covers model failures, I/O errors and internal inconsistencies.
	CodeOther Code = "OTHER"
	// CodeTaskFailed marks work that did not run to completion for reasons
	// outside the model, such as a panicking sequence goroutine.
	CodeTaskFailed Code = "TASK_FAILED"

	// Run-level codes reported by the orchestrator.
	CodeInterrupted  Code = "INTERRUPTED"
	CodeTerminated   Code = "TERMINATED"
	CodeServerExited Code = "SERVER_EXITED"
	CodeChildFailed  Code = "CHILD_FAILED"
)

// Error is the bridge error type.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Wrapped underlying error
}

// ErrNotImplemented matches every error with CodeNotImplemented under errors.Is.
var ErrNotImplemented = &Error{Code: CodeNotImplemented, Message: "not implemented"}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// NotImplemented creates an error the sequence engine treats as non-critical.
func NotImplemented(format string, args ...any) *Error {
	return &Error{Code: CodeNotImplemented, Message: fmt.Sprintf(format, args...)}
}

// Other creates a generic failure.
func Other(format string, args ...any) *Error {
	return &Error{Code: CodeOther, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an error with the given code that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// IsNotImplemented reports whether err, or any error it wraps, is NotImplemented.
func IsNotImplemented(err error) bool {
	return errors.Is(err, ErrNotImplemented)
}

// CodeOf returns the code carried by err. Errors outside this package map to CodeOther.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeOther
}
