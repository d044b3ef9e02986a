// File: error.go
// Title: Core Error Implementation
// Description: Implements the structured Error type used throughout fcall.
//              Errors carry a code, a severity, key-value details and the
//              operation that produced them, while staying compatible with
//              Go's standard error interface and errors.Is/As unwrapping.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-14
// Modified: 2026-08-03

package error

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Error represents a structured error with code, severity and metadata
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	timestamp time.Time

	details   map[string]interface{}
	operation string
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:   message,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// Preserve code and severity of an already-structured error
	if fcErr, ok := err.(*Error); ok {
		wrapped := &Error{
			message:   message,
			cause:     fcErr,
			code:      fcErr.code,
			severity:  fcErr.severity,
			timestamp: time.Now(),
			details:   make(map[string]interface{}),
			operation: fcErr.operation,
		}
		for k, v := range fcErr.details {
			wrapped.details[k] = v
		}
		return wrapped
	}

	return &Error{
		message:   message,
		cause:     err,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if e.severity == SeverityMedium { // Only auto-set if not explicitly set
		e.severity = GetSeverityFromCode(code)
	}
	return e
}

// WithSeverity sets the error severity
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithDetail adds a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithDetails adds multiple key-value details to the error
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

// WithOperation sets the operation that produced the error
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Timestamp returns when the error occurred
func (e *Error) Timestamp() time.Time {
	return e.timestamp
}

// Details returns a copy of the error details
func (e *Error) Details() map[string]interface{} {
	result := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		result[k] = v
	}
	return result
}

// Operation returns the operation that produced the error
func (e *Error) Operation() string {
	return e.operation
}

// RootCause returns the deepest error in the chain
func (e *Error) RootCause() error {
	cause := e.cause
	for cause != nil {
		fcErr, ok := cause.(*Error)
		if !ok || fcErr.cause == nil {
			return cause
		}
		cause = fcErr.cause
	}
	return e
}

// String returns a detailed multi-line representation of the error
func (e *Error) String() string {
	parts := []string{
		fmt.Sprintf("Error: %s", e.message),
		fmt.Sprintf("Code: %s", e.code),
		fmt.Sprintf("Severity: %s", e.severity),
	}

	if e.operation != "" {
		parts = append(parts, fmt.Sprintf("Operation: %s", e.operation))
	}

	if len(e.details) > 0 {
		detailStrs := make([]string, 0, len(e.details))
		for k, v := range e.details {
			detailStrs = append(detailStrs, fmt.Sprintf("%s=%v", k, v))
		}
		parts = append(parts, fmt.Sprintf("Details: {%s}", strings.Join(detailStrs, ", ")))
	}

	if e.cause != nil {
		parts = append(parts, fmt.Sprintf("Cause: %s", e.cause.Error()))
	}

	return strings.Join(parts, "\n")
}

// MarshalJSON implements json.Marshaler for structured logging
func (e *Error) MarshalJSON() ([]byte, error) {
	data := map[string]interface{}{
		"message":   e.message,
		"code":      e.code,
		"severity":  e.severity.String(),
		"timestamp": e.timestamp.Format(time.RFC3339),
	}

	if len(e.details) > 0 {
		data["details"] = e.details
	}

	if e.operation != "" {
		data["operation"] = e.operation
	}

	if e.cause != nil {
		data["cause"] = e.cause.Error()
	}

	return json.Marshal(data)
}

// HasCode checks if an error has a specific code
func HasCode(err error, code Code) bool {
	if fcErr, ok := err.(*Error); ok {
		return fcErr.code == code
	}
	return false
}

// GetCode returns the error code from an error, or CodeUnknown if not an fcall error
func GetCode(err error) Code {
	if fcErr, ok := err.(*Error); ok {
		return fcErr.code
	}
	return CodeUnknown
}

// GetSeverity returns the error severity from an error, or SeverityMedium if not an fcall error
func GetSeverity(err error) Severity {
	if fcErr, ok := err.(*Error); ok {
		return fcErr.severity
	}
	return SeverityMedium
}
