// File: dispatch_test.go
// Title: Command Dispatch Tests
// Description: Unit tests for name extraction, table lookup, error
//              propagation and the constant-time dispatch contract.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-24
// Modified: 2026-08-11

package dispatch

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/msto63/fcall/core/log"
	"github.com/msto63/fcall/registry"
	"github.com/msto63/fcall/scan"
)

type testCommand interface{ isTestCommand() }

type ping struct{ Count int }

func (ping) isTestCommand() {}

type reset struct{}

func (reset) isTestCommand() {}

func newPing(count int) testCommand { return ping{count} }
func newReset() testCommand         { return reset{} }

func quietLogger() *log.Logger {
	return log.NewWithConfig(log.Config{
		Level:  log.LevelFatal,
		Output: &bytes.Buffer{},
	})
}

func testParser(t *testing.T) *Parser[testCommand] {
	t.Helper()

	kinds, err := registry.NewKindSet(registry.IntKind("Int"))
	if err != nil {
		t.Fatalf("NewKindSet failed: %v", err)
	}

	table, err := registry.Build(kinds, map[string]registry.Factory[testCommand]{
		"ping(count: Int)": registry.Unary(newPing),
		"reset()":          registry.Nullary(newReset),
	}, registry.BuildOptions{Logger: quietLogger()})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	return New(table, Options{Logger: quietLogger()})
}

func TestParse(t *testing.T) {
	p := testParser(t)

	tests := []struct {
		name  string
		input string
		want  testCommand
	}{
		{"simple", "ping(count: 3)", ping{3}},
		{"nullary", "reset()", reset{}},
		{"space before bracket", "ping (count: 3)", ping{3}},
		{"whitespace in arguments", "ping( count : 3 )", ping{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ParseString(tt.input)
			if err != nil {
				t.Fatalf("ParseString(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseString(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseConsumesPrefix(t *testing.T) {
	p := testParser(t)

	cur := scan.New("ping(count: 3) and more")
	got, err := p.Parse(cur)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got != (ping{3}) {
		t.Errorf("Parse = %v", got)
	}
	if cur.Rest() != " and more" {
		t.Errorf("Rest = %q, want %q", cur.Rest(), " and more")
	}
}

func TestUnknownCommand(t *testing.T) {
	p := testParser(t)

	_, err := p.ParseString("frobnicate(x: 1)")
	if err == nil {
		t.Fatal("unknown command should fail")
	}

	var unknownErr *UnknownCommandError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("error type = %T, want *UnknownCommandError", err)
	}
	if unknownErr.Attempted != "frobnicate" {
		t.Errorf("Attempted = %q, want frobnicate", unknownErr.Attempted)
	}
	if want := []string{"ping", "reset"}; !reflect.DeepEqual(unknownErr.Known, want) {
		t.Errorf("Known = %v, want %v (sorted)", unknownErr.Known, want)
	}
}

func TestNoFunctionName(t *testing.T) {
	p := testParser(t)

	for _, input := range []string{"", "(count: 3)", "   ("} {
		_, err := p.ParseString(input)
		if err == nil {
			t.Fatalf("ParseString(%q) should fail", input)
		}

		var noNameErr *NoNameError
		if !errors.As(err, &noNameErr) {
			t.Errorf("ParseString(%q) error type = %T, want *NoNameError", input, err)
		}
	}
}

func TestInnerErrorPropagatesUnchanged(t *testing.T) {
	p := testParser(t)

	_, err := p.ParseString("ping(count: abc)")
	if err == nil {
		t.Fatal("malformed argument should fail")
	}

	var argErr *registry.ArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("error type = %T, want *registry.ArgumentError", err)
	}
	if argErr.Command != "ping" {
		t.Errorf("Command = %q, want ping", argErr.Command)
	}
}

// TestDispatchDoesNotScanParsers verifies the complexity contract by
// behavior: dispatch must resolve names by lookup alone. The table is
// padded with parsers that record every invocation; a dispatcher that
// tried registered parsers in sequence would trip them.
func TestDispatchDoesNotScanParsers(t *testing.T) {
	invoked := map[string]int{}
	failing := func(name string) registry.CommandParser[testCommand] {
		return func(cur *scan.Cursor) (testCommand, error) {
			invoked[name]++
			return nil, &scan.Error{Pos: cur.Pos(), Want: "never"}
		}
	}

	table, err := registry.NewTable(map[string]registry.CommandParser[testCommand]{
		"aardvark": failing("aardvark"),
		"target": func(cur *scan.Cursor) (testCommand, error) {
			if err := cur.Literal("()"); err != nil {
				return nil, err
			}
			return reset{}, nil
		},
		"zebra": failing("zebra"),
	})
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}

	p := New(table, Options{Logger: quietLogger()})

	if _, err := p.ParseString("target()"); err != nil {
		t.Fatalf("ParseString(target()) failed: %v", err)
	}
	if _, err := p.ParseString("missing()"); err == nil {
		t.Fatal("ParseString(missing()) should fail")
	}

	if len(invoked) != 0 {
		t.Errorf("dispatch executed unrelated parsers: %v", invoked)
	}
}

func TestNamesIsACopy(t *testing.T) {
	p := testParser(t)

	names := p.Names()
	if len(names) == 0 {
		t.Fatal("Names should not be empty")
	}
	names[0] = "mutated"

	if p.Names()[0] == "mutated" {
		t.Error("Names must return a copy")
	}
}
