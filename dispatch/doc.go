// File: doc.go
// Title: Package Documentation for dispatch
// Description: Package-level documentation for the dispatch parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-24
// Modified: 2026-07-24

// Package dispatch resolves the leading function-name token of an
// invocation against the command table and delegates to the matched
// parser. Resolution is a single hash lookup, independent of the number
// of registered commands; unknown names fail with the attempted name and
// the sorted known names attached.
package dispatch
