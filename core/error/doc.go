// File: doc.go
// Title: Package Documentation for core/error
// Description: Package-level documentation for the fcall error system.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-14
// Modified: 2026-07-14

// Package error provides structured error handling for the fcall library.
//
// Errors carry a Code classifying the failure, a Severity, arbitrary
// key-value details and the operation that produced them. The package
// distinguishes two families of codes:
//
//   - configuration codes (SIGNATURE_SYNTAX, KIND_MISMATCH,
//     DUPLICATE_COMMAND, ...) signal developer mistakes in the command
//     table. They are raised during table construction and are meant to
//     abort startup, never to be handled at runtime.
//
//   - parse codes (UNKNOWN_COMMAND, ARGUMENT_SYNTAX, NO_FUNCTION_NAME)
//     signal bad user input. They are returned from a dispatch call and
//     the caller decides how to recover.
//
// Basic usage:
//
//	err := fcerror.New("unknown kind token").
//		WithCode(fcerror.CodeUnknownKind).
//		WithOperation("signature.Compile").
//		WithDetail("kind", "Flt")
//
// The type remains compatible with the standard library: it implements
// error, supports errors.Is/As via Unwrap, and marshals to JSON for
// structured logging.
package error
