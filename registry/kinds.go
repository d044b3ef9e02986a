// File: kinds.go
// Title: Parameter Kind Registry
// Description: Binds each signature Kind token to its Go type and its
//              value-parsing rule. The same canonical tokens serve both
//              the signature mini-language and runtime value parsing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-21
// Modified: 2026-08-09

package registry

import (
	"reflect"
	"sort"

	fcerror "github.com/msto63/fcall/core/error"
	"github.com/msto63/fcall/scan"
	"github.com/msto63/fcall/signature"
)

// ValueParser parses one argument value from the cursor
type ValueParser func(*scan.Cursor) (interface{}, error)

// KindSpec binds a Kind token to the Go type a constructor expects at that
// position and to the parsing rule for its literal values
type KindSpec struct {
	Kind   signature.Kind
	GoType reflect.Type
	Parse  ValueParser
}

// KindSet is the immutable collection of registered kinds shared by the
// signature compiler and the parser factories
type KindSet struct {
	specs map[signature.Kind]KindSpec
}

// NewKindSet builds a kind set from the given specs. Duplicate kind tokens
// are rejected: each token must map to exactly one parsing rule.
func NewKindSet(specs ...KindSpec) (*KindSet, error) {
	set := &KindSet{specs: make(map[signature.Kind]KindSpec, len(specs))}

	for _, spec := range specs {
		if spec.Kind == "" {
			return nil, fcerror.New("kind token must not be empty").
				WithCode(fcerror.CodeConfigError).
				WithOperation("registry.NewKindSet")
		}
		if spec.Parse == nil || spec.GoType == nil {
			return nil, fcerror.Newf("kind %q needs both a Go type and a parser", spec.Kind).
				WithCode(fcerror.CodeConfigError).
				WithOperation("registry.NewKindSet").
				WithDetail("kind", string(spec.Kind))
		}
		if _, exists := set.specs[spec.Kind]; exists {
			return nil, fcerror.Newf("kind %q registered twice", spec.Kind).
				WithCode(fcerror.CodeConfigError).
				WithOperation("registry.NewKindSet").
				WithDetail("kind", string(spec.Kind))
		}
		set.specs[spec.Kind] = spec
	}

	return set, nil
}

// Lookup returns the spec for a kind token
func (s *KindSet) Lookup(kind signature.Kind) (KindSpec, bool) {
	spec, ok := s.specs[kind]
	return spec, ok
}

// Kinds returns the registered kind tokens in sorted order
func (s *KindSet) Kinds() []signature.Kind {
	kinds := make([]signature.Kind, 0, len(s.specs))
	for k := range s.specs {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// IntKind builds the spec for optionally-signed base-10 integer values
func IntKind(kind signature.Kind) KindSpec {
	return KindSpec{
		Kind:   kind,
		GoType: reflect.TypeOf((*int)(nil)).Elem(),
		Parse: func(cur *scan.Cursor) (interface{}, error) {
			return cur.Int()
		},
	}
}

// EnumKind builds the spec for a closed enumeration: values parse by
// matching the input against the enumeration's canonical tokens.
func EnumKind[T any](kind signature.Kind, tokens map[string]T) KindSpec {
	canonical := make([]string, 0, len(tokens))
	for tok := range tokens {
		canonical = append(canonical, tok)
	}
	sort.Strings(canonical)

	return KindSpec{
		Kind:   kind,
		GoType: reflect.TypeOf((*T)(nil)).Elem(),
		Parse: func(cur *scan.Cursor) (interface{}, error) {
			tok, err := cur.Token(canonical)
			if err != nil {
				return nil, err
			}
			return tokens[tok], nil
		},
	}
}
