// File: doc.go
// Title: Package Documentation for registry
// Description: Package-level documentation for kinds, factories and the
//              command table.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-21
// Modified: 2026-07-21

// Package registry turns compiled signature Descriptors into runnable
// command parsers and assembles them into the immutable command table.
//
// Three pieces cooperate:
//
//   - KindSet binds each Kind token to the Go type a constructor expects
//     at that position and to the parsing rule for its literal values.
//     IntKind and EnumKind cover the built-in shapes; new kinds register
//     the same way.
//
//   - Factories (Nullary, Unary, Binary, Ternary) pair a typed
//     constructor with its parameter-tuple shape. The generic type
//     parameters act as an explicit shape tag, so binding a constructor
//     to a signature never relies on overload resolution or reflection
//     over function values.
//
//   - Build compiles every signature, verifies arity and kind/type
//     agreement per position, and keys the resulting parsers by command
//     name. Duplicate names and any mismatch are configuration errors
//     that abort construction.
//
// A built Table is immutable and safe for concurrent lookups.
package registry
