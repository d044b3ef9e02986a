// File: scan_test.go
// Title: Scanning Primitive Tests
// Description: Unit tests for the cursor and the combinator primitives.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-16
// Modified: 2026-08-03

package scan

import (
	"errors"
	"strconv"
	"testing"
)

func TestTakeWhile(t *testing.T) {
	c := New("measureDistance(to: start)")

	name := c.TakeWhile(func(b byte) bool { return b != '(' && b != '\n' })
	if name != "measureDistance" {
		t.Errorf("TakeWhile = %q", name)
	}
	if c.Rest() != "(to: start)" {
		t.Errorf("Rest = %q", c.Rest())
	}

	empty := c.TakeWhile(func(b byte) bool { return b == 'x' })
	if empty != "" {
		t.Errorf("empty prefix = %q", empty)
	}
}

func TestLiteral(t *testing.T) {
	c := New("to: start")

	if err := c.Literal("to"); err != nil {
		t.Fatalf("Literal(to) failed: %v", err)
	}
	if err := c.Literal("XX"); err == nil {
		t.Fatal("Literal(XX) should fail")
	}
	// Failed literal must not consume input
	if c.Rest() != ": start" {
		t.Errorf("Rest after failed literal = %q", c.Rest())
	}

	var scanErr *Error
	if err := c.Literal("XX"); !errors.As(err, &scanErr) {
		t.Fatal("Literal error should be *scan.Error")
	} else if scanErr.Pos != 2 {
		t.Errorf("error position = %d, want 2", scanErr.Pos)
	}
}

func TestSkipSpace(t *testing.T) {
	c := New("  \t\r\n  x")
	c.SkipSpace()
	if c.Rest() != "x" {
		t.Errorf("Rest = %q", c.Rest())
	}

	// Idempotent on non-space input
	c.SkipSpace()
	if c.Rest() != "x" {
		t.Errorf("Rest = %q", c.Rest())
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		rest    string
		wantErr bool
	}{
		{"98", 98, "", false},
		{"98)", 98, ")", false},
		{"-42, next", -42, ", next", false},
		{"+7", 7, "", false},
		{"0", 0, "", false},
		{"abc", 0, "abc", true},
		{"-", 0, "-", true},
		{"", 0, "", true},
		{strconv.Itoa(1<<62) + "0000", 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c := New(tt.input)
			got, err := c.Int()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Int() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Errorf("Int() = %d, want %d", got, tt.want)
			}
			if c.Rest() != tt.rest {
				t.Errorf("Rest = %q, want %q", c.Rest(), tt.rest)
			}
		})
	}
}

func TestToken(t *testing.T) {
	units := []string{"inches", "centimeters"}

	c := New("centimeters)")
	tok, err := c.Token(units)
	if err != nil {
		t.Fatalf("Token failed: %v", err)
	}
	if tok != "centimeters" {
		t.Errorf("Token = %q", tok)
	}
	if c.Rest() != ")" {
		t.Errorf("Rest = %q", c.Rest())
	}

	c = New("furlongs")
	if _, err := c.Token(units); err == nil {
		t.Error("Token should fail for unknown token")
	}
	if c.Pos() != 0 {
		t.Error("failed Token must not consume input")
	}
}

func TestTokenLongestMatch(t *testing.T) {
	// "start" must win over "s" regardless of registration order
	c := New("startled")
	tok, err := c.Token([]string{"s", "start"})
	if err != nil {
		t.Fatalf("Token failed: %v", err)
	}
	if tok != "start" {
		t.Errorf("Token = %q, want start", tok)
	}
}

func TestSeq(t *testing.T) {
	c := New("( to")

	err := Seq(c,
		func(c *Cursor) error { return c.Literal("(") },
		func(c *Cursor) error { c.SkipSpace(); return nil },
		func(c *Cursor) error { return c.Literal("to") },
	)
	if err != nil {
		t.Fatalf("Seq failed: %v", err)
	}
	if c.Rest() != "" {
		t.Errorf("Rest = %q", c.Rest())
	}

	// A failing sequence rewinds to its start
	c = New("(x")
	err = Seq(c,
		func(c *Cursor) error { return c.Literal("(") },
		func(c *Cursor) error { return c.Literal("y") },
	)
	if err == nil {
		t.Fatal("Seq should fail")
	}
	if c.Pos() != 0 {
		t.Errorf("failed Seq left cursor at %d, want 0", c.Pos())
	}
}

func TestSepBy(t *testing.T) {
	item := func(c *Cursor) (int, error) { return c.Int() }
	sep := func(c *Cursor) error {
		c.SkipSpace()
		if err := c.Literal(","); err != nil {
			return err
		}
		c.SkipSpace()
		return nil
	}

	c := New("1, 2 , 3)")
	got, err := SepBy(c, item, sep)
	if err != nil {
		t.Fatalf("SepBy failed: %v", err)
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("SepBy = %v", got)
	}
	if c.Rest() != ")" {
		t.Errorf("Rest = %q", c.Rest())
	}

	// Zero items is a valid parse
	c = New(")")
	got, err = SepBy(c, item, sep)
	if err != nil || len(got) != 0 {
		t.Errorf("SepBy on empty list = %v, %v", got, err)
	}

	// A trailing separator is left unconsumed
	c = New("1, )")
	got, _ = SepBy(c, item, sep)
	if len(got) != 1 {
		t.Fatalf("SepBy = %v", got)
	}
	if c.Rest() != ", )" {
		t.Errorf("Rest = %q, trailing separator must not be consumed", c.Rest())
	}
}

func TestSepByHardFailure(t *testing.T) {
	hard := errors.New("hard failure")
	item := func(c *Cursor) (int, error) {
		if r, ok := c.Peek(); ok && r == 'x' {
			return 0, hard
		}
		return c.Int()
	}
	sep := func(c *Cursor) error { return c.Literal(",") }

	// Soft scan errors backtrack, anything else propagates
	c := New("1,x,3")
	if _, err := SepBy(c, item, sep); !errors.Is(err, hard) {
		t.Errorf("SepBy error = %v, want the hard failure", err)
	}
}

func TestMarkReset(t *testing.T) {
	c := New("abcdef")
	_ = c.Literal("abc")
	mark := c.Mark()
	_ = c.Literal("de")
	c.Reset(mark)
	if c.Rest() != "def" {
		t.Errorf("Rest after Reset = %q", c.Rest())
	}
}
