// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for classifying failures in
//              the fcall command parsing pipeline. Codes separate fatal
//              configuration mistakes (bad signatures, kind mismatches) from
//              recoverable runtime parse failures (unknown commands, bad
//              argument syntax).
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-14
// Modified: 2026-08-03

package error

// Code represents a structured error code for categorizing errors
type Code string

// Error codes for the fcall library
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Configuration codes (developer mistakes, fatal at startup)
	CodeSignatureSyntax  Code = "SIGNATURE_SYNTAX"
	CodeKindMismatch     Code = "KIND_MISMATCH"
	CodeUnknownKind      Code = "UNKNOWN_KIND"
	CodeDuplicateCommand Code = "DUPLICATE_COMMAND"
	CodeConfigError      Code = "CONFIG_ERROR"

	// Runtime parse codes (user input problems, recoverable)
	CodeNoFunctionName Code = "NO_FUNCTION_NAME"
	CodeUnknownCommand Code = "UNKNOWN_COMMAND"
	CodeArgumentSyntax Code = "ARGUMENT_SYNTAX"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeSignatureSyntax, CodeKindMismatch, CodeUnknownKind,
		CodeDuplicateCommand, CodeConfigError,
		CodeNoFunctionName, CodeUnknownCommand, CodeArgumentSyntax:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeSignatureSyntax, CodeKindMismatch, CodeUnknownKind,
		CodeDuplicateCommand, CodeConfigError:
		return "configuration"
	case CodeNoFunctionName, CodeUnknownCommand, CodeArgumentSyntax:
		return "parse"
	default:
		return "generic"
	}
}

// IsConfiguration returns true for codes that indicate a programming bug in
// the command table rather than bad user input. Such errors abort startup
// and are never returned from a dispatch call.
func (c Code) IsConfiguration() bool {
	return c.Category() == "configuration"
}

// IsRecoverable returns true for codes that a caller of Parse may handle
// (re-prompt, log, escalate)
func (c Code) IsRecoverable() bool {
	return c.Category() == "parse"
}
