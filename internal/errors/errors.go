// Package errors provides standardized domain errors with codes for the Curator API.
//
// Usage:
//
//	// In services and catalog clients - return typed errors
//	if cfg.Token == "" {
//	    return errors.Config("DISCOGS_TOKEN is not set")
//	}
//
//	// In handlers - check with errors.Is
//	if errors.Is(err, errors.ErrDuplicate) {
//	    // 409, reported verbatim to the user
//	}
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Re-export standard library functions for convenience.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	Join   = errors.Join
)

// Code represents a machine-readable error code.
type Code string

// Error codes used throughout the application.
const (
	// CodeValidation marks caller-supplied input as invalid (empty query,
	// unknown category, malformed favorites payload). Reported verbatim.
	CodeValidation Code = "VALIDATION"

	// CodeConfig marks a missing or unusable provider credential, detected
	// before any network call is made.
	CodeConfig Code = "CONFIG"

	// CodeUpstream marks a non-success status or unparseable payload from an
	// external catalog. Carries the upstream status and diagnostic body.
	CodeUpstream Code = "UPSTREAM"

	// CodeDuplicate marks a favorites add for an already saved (type, id).
	CodeDuplicate Code = "DUPLICATE"

	// CodeCapacity marks a favorites add against a full category.
	CodeCapacity Code = "CAPACITY"

	CodeNotFound Code = "NOT_FOUND"
	CodeInternal Code = "INTERNAL"
)

// HTTPStatus returns the appropriate HTTP status code for an error code.
// Config and upstream failures deliberately surface as 500: they are server
// problems from the caller's point of view, distinguishable only in logs.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeDuplicate, CodeCapacity:
		return http.StatusConflict
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is a domain error with a code, message, and optional details.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	cause   error  // unexported, for wrapping
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target matches this error.
// Matches if target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// HTTPStatus returns the HTTP status code for this error.
func (e *Error) HTTPStatus() int {
	return e.Code.HTTPStatus()
}

// WithCause wraps an underlying error.
func (e *Error) WithCause(err error) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		cause:   err,
	}
}

// Sentinel errors for use with errors.Is().
var (
	ErrValidation = &Error{Code: CodeValidation, Message: "validation error"}
	ErrConfig     = &Error{Code: CodeConfig, Message: "configuration error"}
	ErrUpstream   = &Error{Code: CodeUpstream, Message: "upstream error"}
	ErrDuplicate  = &Error{Code: CodeDuplicate, Message: "duplicate"}
	ErrCapacity   = &Error{Code: CodeCapacity, Message: "capacity exceeded"}
	ErrNotFound   = &Error{Code: CodeNotFound, Message: "not found"}
	ErrInternal   = &Error{Code: CodeInternal, Message: "internal error"}
)

// Constructor functions for creating errors with custom messages.

// Validation creates a validation error.
func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Message: msg}
}

// Validationf creates a validation error with formatted message.
func Validationf(format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

// ValidationWithDetails creates a validation error with per-field details.
func ValidationWithDetails(msg string, details any) *Error {
	return &Error{Code: CodeValidation, Message: msg, Details: details}
}

// Config creates a configuration error.
func Config(msg string) *Error {
	return &Error{Code: CodeConfig, Message: msg}
}

// Configf creates a configuration error with formatted message.
func Configf(format string, args ...any) *Error {
	return &Error{Code: CodeConfig, Message: fmt.Sprintf(format, args...)}
}

// Upstream creates an upstream error carrying the provider status code and
// whatever diagnostic body was obtainable.
func Upstream(status int, body string) *Error {
	return &Error{
		Code:    CodeUpstream,
		Message: fmt.Sprintf("upstream request failed with status %d", status),
		Details: &UpstreamDetails{Status: status, Body: body},
	}
}

// UpstreamParse creates an upstream error for an unparseable payload,
// retaining the raw text as the diagnostic payload.
func UpstreamParse(status int, raw string) *Error {
	return &Error{
		Code:    CodeUpstream,
		Message: "upstream returned an unparseable response",
		Details: &UpstreamDetails{Status: status, Body: raw},
	}
}

// UpstreamDetails carries provider diagnostics for logs; it is never exposed
// to the end user.
type UpstreamDetails struct {
	Status int    `json:"status"`
	Body   string `json:"body,omitempty"`
}

// Duplicate creates a duplicate error.
func Duplicate(msg string) *Error {
	return &Error{Code: CodeDuplicate, Message: msg}
}

// Duplicatef creates a duplicate error with formatted message.
func Duplicatef(format string, args ...any) *Error {
	return &Error{Code: CodeDuplicate, Message: fmt.Sprintf(format, args...)}
}

// Capacity creates a capacity error.
func Capacity(msg string) *Error {
	return &Error{Code: CodeCapacity, Message: msg}
}

// Capacityf creates a capacity error with formatted message.
func Capacityf(format string, args ...any) *Error {
	return &Error{Code: CodeCapacity, Message: fmt.Sprintf(format, args...)}
}

// NotFound creates a not found error.
func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg}
}

// Internal creates an internal error.
func Internal(msg string) *Error {
	return &Error{Code: CodeInternal, Message: msg}
}

// Wrap wraps an error with a code and message.
func Wrap(err error, code Code, msg string) *Error {
	return &Error{Code: code, Message: msg, cause: err}
}

// Wrapf wraps an error with a code and formatted message.
func Wrapf(err error, code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), cause: err}
}
