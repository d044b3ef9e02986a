// File: signature.go
// Title: Command Signature Compiler
// Description: Compiles developer-authored textual command signatures of
//              the form "name(param: Kind, ...)" into structured
//              Descriptors. Signatures are configuration, not user input:
//              a malformed signature is a programming bug and compilation
//              failures are meant to abort startup.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-08-09
//
// Change History:
// - 2026-07-18 v0.1.0: Initial recursive-descent compiler

package signature

import (
	"fmt"
	"strings"

	fcerror "github.com/msto63/fcall/core/error"
	"github.com/msto63/fcall/core/log"
	"github.com/msto63/fcall/scan"
	"github.com/msto63/fcall/utils/stringx"
)

// Kind identifies the value type of a parameter position. The set of valid
// kinds is open: each registered kind carries its own value-parsing rule.
type Kind string

// Parameter describes one named, kinded parameter position
type Parameter struct {
	Name string
	Kind Kind
}

// Descriptor is the structured form of a compiled signature. It is
// read-only after compilation; parameter order is semantically significant
// because later stages bind positions to constructor arguments.
type Descriptor struct {
	Name   string
	Params []Parameter
}

// String re-renders the descriptor in signature syntax
func (d *Descriptor) String() string {
	var b strings.Builder
	b.WriteString(d.Name)
	b.WriteString("(")
	for i, p := range d.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		b.WriteString(": ")
		b.WriteString(string(p.Kind))
	}
	b.WriteString(")")
	return b.String()
}

// Compiler compiles signature strings against a set of registered kinds
type Compiler struct {
	kinds  map[Kind]bool
	logger *log.Logger
}

// Options configures a Compiler
type Options struct {
	Logger *log.Logger

	// Kinds lists the kind tokens the compiler accepts
	Kinds []Kind
}

// NewCompiler creates a signature compiler for the given kind set
func NewCompiler(opts Options) *Compiler {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}

	kinds := make(map[Kind]bool, len(opts.Kinds))
	for _, k := range opts.Kinds {
		kinds[k] = true
	}

	return &Compiler{
		kinds:  kinds,
		logger: opts.Logger.WithField("component", "signature-compiler"),
	}
}

// Compile parses a signature string into a Descriptor.
//
// Grammar:
//
//	signature := name "(" [param ("," param)*] ")"
//	param     := name ":" kind
//
// The function name is any run of characters excluding "(" and line
// breaks; a parameter name excludes ":" and whitespace. Whitespace around
// "(", ")", ":" and "," is skipped. Failures carry the SIGNATURE_SYNTAX
// code and are fatal by contract.
func (c *Compiler) Compile(sig string) (*Descriptor, error) {
	cur := scan.New(sig)

	cur.SkipSpace()
	rawName := cur.TakeWhile(func(b byte) bool { return b != '(' && b != '\n' && b != '\r' })
	name := strings.TrimSpace(rawName)
	if stringx.IsBlank(name) {
		return nil, c.syntaxError(sig, cur.Pos(), "missing function name")
	}

	if err := cur.Literal("("); err != nil {
		return nil, c.syntaxError(sig, cur.Pos(), "missing '(' after function name")
	}
	cur.SkipSpace()

	params, err := scan.SepBy(cur, c.parseParam, paramSeparator)
	if err != nil {
		return nil, c.syntaxError(sig, cur.Pos(), err.Error())
	}

	cur.SkipSpace()
	if err := cur.Literal(")"); err != nil {
		return nil, c.syntaxError(sig, cur.Pos(), "missing ')' after parameter list")
	}

	cur.SkipSpace()
	if cur.More() {
		return nil, c.syntaxError(sig, cur.Pos(), "unexpected text after signature")
	}

	desc := &Descriptor{Name: name, Params: params}

	c.logger.Debug("signature compiled", log.Fields{
		"name":   desc.Name,
		"params": len(desc.Params),
	})

	return desc, nil
}

// MustCompile is Compile for table-construction call sites: it panics on
// failure instead of returning the error.
func (c *Compiler) MustCompile(sig string) *Descriptor {
	desc, err := c.Compile(sig)
	if err != nil {
		panic(err)
	}
	return desc
}

// parseParam parses one "name: Kind" pair
func (c *Compiler) parseParam(cur *scan.Cursor) (Parameter, error) {
	mark := cur.Mark()

	name := cur.TakeWhile(func(b byte) bool {
		return b != ':' && b != ' ' && b != '\t' && b != '\r' && b != '\n'
	})
	if name == "" {
		cur.Reset(mark)
		return Parameter{}, &scan.Error{Pos: cur.Pos(), Want: "parameter name"}
	}

	cur.SkipSpace()
	if err := cur.Literal(":"); err != nil {
		cur.Reset(mark)
		return Parameter{}, err
	}
	cur.SkipSpace()

	kindTok := cur.TakeWhile(isKindByte)
	if kindTok == "" {
		cur.Reset(mark)
		return Parameter{}, &scan.Error{Pos: cur.Pos(), Want: "kind token"}
	}

	kind := Kind(kindTok)
	if !c.kinds[kind] {
		// Hard failure: a syntactically valid parameter with an
		// unregistered kind must not be backtracked by SepBy
		return Parameter{}, &unknownKindError{kind: kind, pos: cur.Pos()}
	}

	return Parameter{Name: name, Kind: kind}, nil
}

// paramSeparator consumes "," with surrounding whitespace
func paramSeparator(cur *scan.Cursor) error {
	cur.SkipSpace()
	if err := cur.Literal(","); err != nil {
		return err
	}
	cur.SkipSpace()
	return nil
}

// isKindByte reports bytes allowed in a kind token
func isKindByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

// unknownKindError distinguishes an unregistered kind token from plain
// syntax noise while parameters are parsed
type unknownKindError struct {
	kind Kind
	pos  int
}

func (e *unknownKindError) Error() string {
	return fmt.Sprintf("unknown kind token %q at position %d", e.kind, e.pos)
}

// syntaxError builds the coded compilation error
func (c *Compiler) syntaxError(sig string, pos int, reason string) error {
	err := fcerror.Newf("malformed signature %q: %s", sig, reason).
		WithCode(fcerror.CodeSignatureSyntax).
		WithOperation("signature.Compile").
		WithDetail("signature", sig).
		WithDetail("position", pos)

	c.logger.LogError(err)
	return err
}
