// File: doc.go
// Title: Package Documentation for fcall
// Description: Package-level documentation for the fcall engine facade.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-26
// Modified: 2026-08-14

/*
Package fcall turns function-call-style text into strongly-typed command
values.

An invocation like

	measureDistance(to: start, using: inches, percentAccuracy: 98)

is resolved against an immutable command table and parsed into the typed
command bound to that name. The table is declared once, at startup, as a
mapping from textual signatures to constructor functions:

	engine, err := fcall.New(fcall.Options[Command]{
		Kinds: []registry.KindSpec{
			registry.EnumKind("Bound", boundTokens),
			registry.EnumKind("Unit", unitTokens),
			registry.IntKind("Int"),
		},
		Commands: map[string]registry.Factory[Command]{
			"measureDistance(to: Bound, using: Unit, percentAccuracy: Int)": registry.Ternary(NewMeasureDistance),
			"clearMeasurement(to: Bound)":                                   registry.Unary(NewClearMeasurement),
		},
	})

Errors from New are configuration errors: a malformed signature, a
duplicate command name or a kind that does not agree with the bound
constructor's argument types all signal a programming bug and should
abort startup (or use MustNew). Errors from Parse are recoverable and
describe the user's input: dispatch.UnknownCommandError carries the
attempted name and the sorted known names, registry.ArgumentError the
failure position inside the argument list.

Engines are immutable after New and safe for concurrent use; parsing is
pure computation over an in-memory cursor.

The subpackages are usable on their own: scan holds the parsing
primitives, signature the signature compiler, registry the factories and
the command table, dispatch the name-resolving entry point. The measure
package is a complete example vocabulary, and cmd/fcall a CLI over it.
*/
package fcall
