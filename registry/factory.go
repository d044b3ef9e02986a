// File: factory.go
// Title: Parser Factories
// Description: Implements the arity-specific parser factories. A factory
//              pairs a typed constructor function with the parameter-type
//              tuple it expects; building it against a compiled Descriptor
//              yields a runnable command parser that replays the
//              descriptor's keyword names and kind rules against input and
//              applies the constructor positionally.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-21
// Modified: 2026-08-11
//
// Change History:
// - 2026-07-21 v0.1.0: Initial unary/binary/ternary factories

package registry

import (
	"fmt"
	"reflect"

	fcerror "github.com/msto63/fcall/core/error"
	"github.com/msto63/fcall/scan"
	"github.com/msto63/fcall/signature"
)

// CommandParser parses the argument list of one command, starting at the
// opening bracket, and produces the typed command value
type CommandParser[T any] func(*scan.Cursor) (T, error)

// Factory produces a CommandParser for one constructor once a Descriptor
// is supplied. Each supported parameter-tuple shape has its own factory
// constructor (Nullary, Unary, Binary, Ternary); the generic type
// parameters are the explicit shape tag that replaces overload resolution.
type Factory[T any] interface {
	// arity returns the number of parameters the constructor takes
	arity() int

	// argTypes returns the constructor's parameter types in order
	argTypes() []reflect.Type

	// apply invokes the constructor on parsed values, in position order
	apply(args []interface{}) (T, error)
}

// ArgumentError reports a syntactic mismatch inside a command's argument
// list: wrong keyword text, wrong enum token, malformed integer, missing
// bracket or separator. It is recoverable and returned to the caller.
type ArgumentError struct {
	Command string
	Pos     int
	Err     error
}

// Error implements the error interface
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid arguments for %q at position %d: %s", e.Command, e.Pos, e.Err)
}

// Unwrap returns the underlying scan failure
func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// Nullary creates the factory for constructors without parameters
func Nullary[T any](ctor func() T) Factory[T] {
	return nullary[T]{ctor: ctor}
}

// Unary creates the factory for single-parameter constructors
func Unary[T, A any](ctor func(A) T) Factory[T] {
	return unary[T, A]{ctor: ctor}
}

// Binary creates the factory for two-parameter constructors
func Binary[T, A, B any](ctor func(A, B) T) Factory[T] {
	return binary[T, A, B]{ctor: ctor}
}

// Ternary creates the factory for three-parameter constructors
func Ternary[T, A, B, C any](ctor func(A, B, C) T) Factory[T] {
	return ternary[T, A, B, C]{ctor: ctor}
}

type nullary[T any] struct {
	ctor func() T
}

func (f nullary[T]) arity() int               { return 0 }
func (f nullary[T]) argTypes() []reflect.Type { return nil }

func (f nullary[T]) apply(args []interface{}) (T, error) {
	return f.ctor(), nil
}

type unary[T, A any] struct {
	ctor func(A) T
}

func (f unary[T, A]) arity() int { return 1 }

func (f unary[T, A]) argTypes() []reflect.Type {
	return []reflect.Type{reflect.TypeOf((*A)(nil)).Elem()}
}

func (f unary[T, A]) apply(args []interface{}) (T, error) {
	a, ok := args[0].(A)
	if !ok {
		var zero T
		return zero, applyMismatch[A](0, args[0])
	}
	return f.ctor(a), nil
}

type binary[T, A, B any] struct {
	ctor func(A, B) T
}

func (f binary[T, A, B]) arity() int { return 2 }

func (f binary[T, A, B]) argTypes() []reflect.Type {
	return []reflect.Type{reflect.TypeOf((*A)(nil)).Elem(), reflect.TypeOf((*B)(nil)).Elem()}
}

func (f binary[T, A, B]) apply(args []interface{}) (T, error) {
	var zero T
	a, ok := args[0].(A)
	if !ok {
		return zero, applyMismatch[A](0, args[0])
	}
	b, ok := args[1].(B)
	if !ok {
		return zero, applyMismatch[B](1, args[1])
	}
	return f.ctor(a, b), nil
}

type ternary[T, A, B, C any] struct {
	ctor func(A, B, C) T
}

func (f ternary[T, A, B, C]) arity() int { return 3 }

func (f ternary[T, A, B, C]) argTypes() []reflect.Type {
	return []reflect.Type{reflect.TypeOf((*A)(nil)).Elem(), reflect.TypeOf((*B)(nil)).Elem(), reflect.TypeOf((*C)(nil)).Elem()}
}

func (f ternary[T, A, B, C]) apply(args []interface{}) (T, error) {
	var zero T
	a, ok := args[0].(A)
	if !ok {
		return zero, applyMismatch[A](0, args[0])
	}
	b, ok := args[1].(B)
	if !ok {
		return zero, applyMismatch[B](1, args[1])
	}
	c, ok := args[2].(C)
	if !ok {
		return zero, applyMismatch[C](2, args[2])
	}
	return f.ctor(a, b, c), nil
}

// applyMismatch reports the internal precondition violation of a parsed
// value not matching the constructor's parameter type. Kind/type agreement
// is verified when the table is built, so this path is never reachable
// from user input.
func applyMismatch[Want any](position int, got interface{}) error {
	return fcerror.Newf("parsed value at position %d is %T, constructor expects %v",
		position, got, reflect.TypeOf((*Want)(nil)).Elem()).
		WithCode(fcerror.CodeKindMismatch).
		WithSeverity(fcerror.SeverityCritical).
		WithOperation("registry.apply")
}

// newCommandParser builds the runnable parser for one descriptor. Arity
// and per-position kind/type agreement are checked here, at table
// construction time, so that configuration mistakes surface as fatal
// build errors instead of runtime surprises.
func newCommandParser[T any](f Factory[T], desc *signature.Descriptor, kinds *KindSet) (CommandParser[T], error) {
	if len(desc.Params) != f.arity() {
		return nil, fcerror.Newf("constructor for %q takes %d arguments, signature declares %d",
			desc.Name, f.arity(), len(desc.Params)).
			WithCode(fcerror.CodeKindMismatch).
			WithOperation("registry.Build").
			WithDetail("command", desc.Name)
	}

	argTypes := f.argTypes()
	parsers := make([]ValueParser, len(desc.Params))
	for i, param := range desc.Params {
		spec, ok := kinds.Lookup(param.Kind)
		if !ok {
			return nil, fcerror.Newf("signature for %q uses unregistered kind %q",
				desc.Name, param.Kind).
				WithCode(fcerror.CodeUnknownKind).
				WithOperation("registry.Build").
				WithDetail("command", desc.Name).
				WithDetail("kind", string(param.Kind))
		}
		if spec.GoType != argTypes[i] {
			return nil, fcerror.Newf("parameter %q of %q is kind %q (%v), constructor expects %v",
				param.Name, desc.Name, param.Kind, spec.GoType, argTypes[i]).
				WithCode(fcerror.CodeKindMismatch).
				WithOperation("registry.Build").
				WithDetail("command", desc.Name).
				WithDetail("parameter", param.Name)
		}
		parsers[i] = spec.Parse
	}

	// Copy out of the descriptor so the closure cannot observe later
	// mutation of the caller's slice
	params := make([]signature.Parameter, len(desc.Params))
	copy(params, desc.Params)
	name := desc.Name

	return func(cur *scan.Cursor) (T, error) {
		var zero T

		if err := cur.Literal("("); err != nil {
			return zero, &ArgumentError{Command: name, Pos: cur.Pos(), Err: err}
		}
		cur.SkipSpace()

		args := make([]interface{}, 0, len(params))
		for i, param := range params {
			// The keyword text comes from the descriptor, not a
			// fixed string: call sites choose their own names
			if err := cur.Literal(param.Name); err != nil {
				return zero, &ArgumentError{Command: name, Pos: cur.Pos(), Err: err}
			}
			cur.SkipSpace()
			if err := cur.Literal(":"); err != nil {
				return zero, &ArgumentError{Command: name, Pos: cur.Pos(), Err: err}
			}
			cur.SkipSpace()

			value, err := parsers[i](cur)
			if err != nil {
				return zero, &ArgumentError{Command: name, Pos: cur.Pos(), Err: err}
			}
			args = append(args, value)

			if i < len(params)-1 {
				cur.SkipSpace()
				if err := cur.Literal(","); err != nil {
					return zero, &ArgumentError{Command: name, Pos: cur.Pos(), Err: err}
				}
				cur.SkipSpace()
			}
		}

		cur.SkipSpace()
		if err := cur.Literal(")"); err != nil {
			return zero, &ArgumentError{Command: name, Pos: cur.Pos(), Err: err}
		}

		return f.apply(args)
	}, nil
}
