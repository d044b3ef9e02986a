// File: signature_test.go
// Title: Signature Compiler Tests
// Description: Unit tests for compiling signature strings into Descriptors
//              including whitespace handling, parameter ordering and
//              syntax error classification.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-08-09

package signature

import (
	"bytes"
	"testing"

	fcerror "github.com/msto63/fcall/core/error"
	"github.com/msto63/fcall/core/log"
)

func testCompiler() *Compiler {
	logger := log.NewWithConfig(log.Config{
		Level:  log.LevelFatal,
		Output: &bytes.Buffer{},
	})
	return NewCompiler(Options{
		Logger: logger,
		Kinds:  []Kind{"Bound", "Unit", "Int"},
	})
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name       string
		signature  string
		wantName   string
		wantParams []Parameter
	}{
		{
			name:       "three parameters",
			signature:  "measureDistance(to: Bound, using: Unit, percentAccuracy: Int)",
			wantName:   "measureDistance",
			wantParams: []Parameter{{"to", "Bound"}, {"using", "Unit"}, {"percentAccuracy", "Int"}},
		},
		{
			name:       "single parameter",
			signature:  "clearMeasurement(to: Bound)",
			wantName:   "clearMeasurement",
			wantParams: []Parameter{{"to", "Bound"}},
		},
		{
			name:       "no parameters",
			signature:  "reset()",
			wantName:   "reset",
			wantParams: nil,
		},
		{
			name:       "generous whitespace",
			signature:  "  setScale (  using :  Unit  ,  factor :  Int  )  ",
			wantName:   "setScale",
			wantParams: []Parameter{{"using", "Unit"}, {"factor", "Int"}},
		},
		{
			name:       "compact",
			signature:  "setScale(using:Unit,factor:Int)",
			wantName:   "setScale",
			wantParams: []Parameter{{"using", "Unit"}, {"factor", "Int"}},
		},
	}

	c := testCompiler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := c.Compile(tt.signature)
			if err != nil {
				t.Fatalf("Compile(%q) failed: %v", tt.signature, err)
			}
			if desc.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", desc.Name, tt.wantName)
			}
			if len(desc.Params) != len(tt.wantParams) {
				t.Fatalf("Params = %v, want %v", desc.Params, tt.wantParams)
			}
			for i, p := range desc.Params {
				if p != tt.wantParams[i] {
					t.Errorf("Params[%d] = %v, want %v", i, p, tt.wantParams[i])
				}
			}
		})
	}
}

func TestCompilePreservesOrderAndCount(t *testing.T) {
	c := testCompiler()
	desc, err := c.Compile("cmd(a: Int, b: Bound, c: Unit, d: Int)")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	wantOrder := []string{"a", "b", "c", "d"}
	if len(desc.Params) != len(wantOrder) {
		t.Fatalf("param count = %d, want %d", len(desc.Params), len(wantOrder))
	}
	for i, name := range wantOrder {
		if desc.Params[i].Name != name {
			t.Errorf("Params[%d].Name = %q, want %q (textual order must be preserved)",
				i, desc.Params[i].Name, name)
		}
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name      string
		signature string
	}{
		{"empty string", ""},
		{"missing name", "(to: Bound)"},
		{"blank name", "   (to: Bound)"},
		{"missing open bracket", "clearMeasurement to: Bound)"},
		{"missing close bracket", "clearMeasurement(to: Bound"},
		{"missing kind", "clearMeasurement(to:)"},
		{"missing colon", "clearMeasurement(to Bound)"},
		{"unknown kind", "clearMeasurement(to: Flt)"},
		{"unknown kind in later position", "measureDistance(to: Bound, using: Furlong)"},
		{"trailing comma", "clearMeasurement(to: Bound,)"},
		{"trailing garbage", "clearMeasurement(to: Bound) extra"},
		{"name with line break", "clear\nMeasurement(to: Bound)"},
	}

	c := testCompiler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Compile(tt.signature)
			if err == nil {
				t.Fatalf("Compile(%q) should fail", tt.signature)
			}
			if !fcerror.HasCode(err, fcerror.CodeSignatureSyntax) {
				t.Errorf("error code = %v, want SIGNATURE_SYNTAX", fcerror.GetCode(err))
			}
		})
	}
}

func TestMustCompile(t *testing.T) {
	c := testCompiler()

	desc := c.MustCompile("markPosition(at: Bound)")
	if desc.Name != "markPosition" {
		t.Errorf("Name = %q", desc.Name)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustCompile of a malformed signature should panic")
		}
	}()
	c.MustCompile("broken(")
}

func TestDescriptorString(t *testing.T) {
	c := testCompiler()

	for _, sig := range []string{
		"measureDistance(to: Bound, using: Unit, percentAccuracy: Int)",
		"reset()",
	} {
		desc, err := c.Compile(sig)
		if err != nil {
			t.Fatalf("Compile(%q) failed: %v", sig, err)
		}
		if desc.String() != sig {
			t.Errorf("String() = %q, want %q", desc.String(), sig)
		}
	}
}
