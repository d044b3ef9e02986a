// File: doc.go
// Title: Package Documentation for scan
// Description: Package-level documentation for the scanning primitives.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-16
// Modified: 2026-07-16

// Package scan provides the cursor and the generic parsing primitives the
// fcall compilers and parsers are composed from: predicate-prefix, literal
// match, whitespace skip, sequencing, separated repetition, enumeration
// tokens and signed integers. Any equivalent combinator set would do; this
// one is deliberately minimal.
package scan
