// File: doc.go
// Title: Package Documentation for signature
// Description: Package-level documentation for the signature compiler.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18

// Package signature compiles textual command signatures such as
//
//	"measureDistance(to: Bound, using: Unit, percentAccuracy: Int)"
//
// into Descriptors: the command name plus the ordered list of named,
// kinded parameters. Descriptors drive the factories in the registry
// package, which replay the declared parameter names and kinds against
// runtime input.
//
// Signature strings are authored by the integrating developer, never by
// end users. Compilation failures therefore indicate a programming bug
// and carry the SIGNATURE_SYNTAX configuration code.
package signature
