// File: dispatch.go
// Title: Command Dispatch Parser
// Description: Implements the externally consumed entry point: extracts
//              the leading function-name token from input, resolves it in
//              the command table with a single hash lookup and delegates
//              to the matched parser. Unknown names fail with enough
//              context for future closest-match suggestions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-24
// Modified: 2026-08-11
//
// Change History:
// - 2026-07-24 v0.1.0: Initial dispatcher implementation

package dispatch

import (
	"fmt"
	"strings"

	"github.com/msto63/fcall/core/log"
	"github.com/msto63/fcall/registry"
	"github.com/msto63/fcall/scan"
	"github.com/msto63/fcall/utils/stringx"
)

// Parser resolves command names against an immutable table and runs the
// matched command parser. It holds no mutable state, so one Parser may
// serve concurrent Parse calls over independent cursors.
type Parser[T any] struct {
	table  *registry.Table[T]
	names  []string
	logger *log.Logger
}

// Options configures a dispatch Parser
type Options struct {
	Logger *log.Logger
}

// New creates a dispatcher over a built command table
func New[T any](table *registry.Table[T], opts Options) *Parser[T] {
	logger := opts.Logger
	if logger == nil {
		logger = log.GetDefault()
	}

	return &Parser[T]{
		table: table,
		// Sorted once here; reused by every UnknownCommandError and
		// reserved for future suggestion diagnostics
		names:  table.Names(),
		logger: logger.WithField("component", "dispatch"),
	}
}

// NoNameError reports that no function-name token could be extracted from
// the input. Extraction accepts any run of characters before "(" or a
// line break, so this is a defensive path.
type NoNameError struct {
	Pos int
}

// Error implements the error interface
func (e *NoNameError) Error() string {
	return fmt.Sprintf("no function name at position %d", e.Pos)
}

// UnknownCommandError reports a name that is not in the command table. It
// carries the attempted name and the sorted known names so a caller (or a
// future suggestion pass) can offer the closest match.
type UnknownCommandError struct {
	Attempted string
	Known     []string
}

// Error implements the error interface
func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q (known: %s)", e.Attempted, strings.Join(e.Known, ", "))
}

// Parse consumes one command invocation from the cursor and returns the
// typed command. On success a prefix of the input has been consumed and
// the cursor advanced past it; on failure the cursor position is
// unspecified and the cursor must not be reused for resumption.
//
// Inner failures from the matched command parser propagate unchanged.
func (p *Parser[T]) Parse(cur *scan.Cursor) (T, error) {
	var zero T

	namePos := cur.Pos()
	token := cur.TakeWhile(func(b byte) bool {
		return b != '(' && b != '\n' && b != '\r'
	})

	// Whitespace around the opening bracket is insignificant
	name := strings.TrimSpace(token)
	if stringx.IsEmpty(name) {
		return zero, &NoNameError{Pos: namePos}
	}

	parser, ok := p.table.Lookup(name)
	if !ok {
		p.logger.Debug("command not found", log.String("attempted", name))
		return zero, &UnknownCommandError{Attempted: name, Known: p.names}
	}

	return parser(cur)
}

// ParseString parses a command invocation from the start of input,
// ignoring anything after the consumed prefix
func (p *Parser[T]) ParseString(input string) (T, error) {
	return p.Parse(scan.New(input))
}

// Names returns the sorted registered command names
func (p *Parser[T]) Names() []string {
	names := make([]string, len(p.names))
	copy(names, p.names)
	return names
}
