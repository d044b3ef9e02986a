// File: scan.go
// Title: Cursor-Based Scanning Primitives
// Description: Implements the small combinator capability set the fcall
//              parsers are built from: a cursor over in-memory input plus
//              sequencing, predicate-prefix, literal, skip, separated
//              repetition, enumeration-token and integer primitives.
//              All primitives are pure computation over the cursor; a
//              failed primitive reports the position it failed at.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-16
// Modified: 2026-08-03

package scan

import (
	"fmt"
	"strconv"
)

// Cursor is a view over the remaining unconsumed input. Primitives advance
// it on success; Mark/Reset implement backtracking. A Cursor is not safe
// for concurrent use, but independent cursors over the same string are.
type Cursor struct {
	input string
	pos   int
}

// New creates a cursor positioned at the start of input
func New(input string) *Cursor {
	return &Cursor{input: input}
}

// Pos returns the current byte position in the input
func (c *Cursor) Pos() int {
	return c.pos
}

// Rest returns the remaining unconsumed input
func (c *Cursor) Rest() string {
	return c.input[c.pos:]
}

// More returns true while unconsumed input remains
func (c *Cursor) More() bool {
	return c.pos < len(c.input)
}

// Peek returns the next byte without consuming it
func (c *Cursor) Peek() (byte, bool) {
	if !c.More() {
		return 0, false
	}
	return c.input[c.pos], true
}

// Mark returns a position token for later Reset
func (c *Cursor) Mark() int {
	return c.pos
}

// Reset rewinds the cursor to a previously obtained mark
func (c *Cursor) Reset(mark int) {
	c.pos = mark
}

// Error reports a primitive failure with the position it occurred at
type Error struct {
	Pos  int
	Want string
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("expected %s at position %d", e.Want, e.Pos)
}

// errorAt builds a positioned scan error
func errorAt(pos int, format string, args ...interface{}) *Error {
	return &Error{Pos: pos, Want: fmt.Sprintf(format, args...)}
}

// TakeWhile consumes the longest prefix whose bytes satisfy pred and
// returns it. The empty prefix is a valid result.
func (c *Cursor) TakeWhile(pred func(byte) bool) string {
	start := c.pos
	for c.pos < len(c.input) && pred(c.input[c.pos]) {
		c.pos++
	}
	return c.input[start:c.pos]
}

// Literal consumes the exact text lit or fails without consuming anything
func (c *Cursor) Literal(lit string) error {
	if len(c.input)-c.pos < len(lit) || c.input[c.pos:c.pos+len(lit)] != lit {
		return errorAt(c.pos, "%q", lit)
	}
	c.pos += len(lit)
	return nil
}

// SkipSpace consumes any run of spaces, tabs and line breaks
func (c *Cursor) SkipSpace() {
	for c.pos < len(c.input) {
		switch c.input[c.pos] {
		case ' ', '\t', '\r', '\n':
			c.pos++
		default:
			return
		}
	}
}

// Int consumes an optionally-signed base-10 integer literal
func (c *Cursor) Int() (int, error) {
	start := c.pos
	pos := c.pos

	if pos < len(c.input) && (c.input[pos] == '-' || c.input[pos] == '+') {
		pos++
	}

	digits := pos
	for pos < len(c.input) && c.input[pos] >= '0' && c.input[pos] <= '9' {
		pos++
	}
	if pos == digits {
		return 0, errorAt(start, "base-10 integer")
	}

	n, err := strconv.Atoi(c.input[start:pos])
	if err != nil {
		return 0, errorAt(start, "integer in range")
	}

	c.pos = pos
	return n, nil
}

// Token consumes the longest matching token from the given set and returns
// it. Tokens are matched literally against the remaining input.
func (c *Cursor) Token(tokens []string) (string, error) {
	best := -1
	for i, tok := range tokens {
		if tok == "" {
			continue
		}
		if len(c.input)-c.pos < len(tok) || c.input[c.pos:c.pos+len(tok)] != tok {
			continue
		}
		if best < 0 || len(tok) > len(tokens[best]) {
			best = i
		}
	}

	if best < 0 {
		return "", errorAt(c.pos, "one of %v", tokens)
	}

	c.pos += len(tokens[best])
	return tokens[best], nil
}

// Step is a single parsing action over a cursor
type Step func(*Cursor) error

// Seq runs the steps in order. On the first failure the cursor is rewound
// to where the sequence began and the failure is returned.
func Seq(c *Cursor, steps ...Step) error {
	mark := c.Mark()
	for _, step := range steps {
		if err := step(c); err != nil {
			c.Reset(mark)
			return err
		}
	}
	return nil
}

// SepBy parses zero or more items separated by sep. A separator that is
// not followed by an item is not consumed. A *scan.Error from item means
// "no item here" and backtracks; any other error type is a hard failure
// and propagates to the caller.
func SepBy[T any](c *Cursor, item func(*Cursor) (T, error), sep Step) ([]T, error) {
	var items []T

	mark := c.Mark()
	first, err := item(c)
	if err != nil {
		if !isSoft(err) {
			return nil, err
		}
		c.Reset(mark)
		return items, nil
	}
	items = append(items, first)

	for {
		mark = c.Mark()
		if err := sep(c); err != nil {
			c.Reset(mark)
			return items, nil
		}

		next, err := item(c)
		if err != nil {
			if !isSoft(err) {
				return nil, err
			}
			c.Reset(mark)
			return items, nil
		}
		items = append(items, next)
	}
}

// isSoft reports whether an item failure may be backtracked
func isSoft(err error) bool {
	_, ok := err.(*Error)
	return ok
}
