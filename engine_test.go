// File: engine_test.go
// Title: Tests for the High-Level fcall Engine
// Description: End-to-end tests over the measurement vocabulary: parse
//              round trips, whitespace tolerance, unknown commands,
//              argument errors, batch parsing and input limits.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-26
// Modified: 2026-08-14

package fcall_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/msto63/fcall"
	fcerror "github.com/msto63/fcall/core/error"
	"github.com/msto63/fcall/dispatch"
	"github.com/msto63/fcall/measure"
	"github.com/msto63/fcall/registry"
)

func newTestEngine(t *testing.T) *fcall.Engine[measure.Command] {
	t.Helper()
	engine, err := measure.NewEngine(nil)
	if err != nil {
		t.Fatalf("building engine failed: %v", err)
	}
	return engine
}

func TestParseRoundTrip(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		input string
		want  measure.Command
	}{
		{
			input: "measureDistance(to: start, using: inches, percentAccuracy: 98)",
			want:  measure.MeasureDistance{To: measure.BoundStart, Using: measure.UnitInches, PercentAccuracy: 98},
		},
		{
			input: "clearMeasurement(to: end)",
			want:  measure.ClearMeasurement{To: measure.BoundEnd},
		},
		{
			input: "setScale(using: inches, factor: 10)",
			want:  measure.SetScale{Using: measure.UnitInches, Factor: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := engine.Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseWhitespaceTolerance(t *testing.T) {
	engine := newTestEngine(t)

	want := measure.MeasureDistance{
		To:              measure.BoundStart,
		Using:           measure.UnitInches,
		PercentAccuracy: 98,
	}

	variants := []string{
		"measureDistance(to: start, using: inches, percentAccuracy: 98)",
		"measureDistance(to:start,using:inches,percentAccuracy:98)",
		"measureDistance( to : start , using : inches , percentAccuracy : 98 )",
		"  measureDistance(to: start, using: inches, percentAccuracy: 98)  ",
		"measureDistance(\n\tto: start,\n\tusing: inches,\n\tpercentAccuracy: 98\n)",
	}

	for _, input := range variants {
		got, err := engine.Parse(input)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("Parse(%q) = %#v, want %#v", input, got, want)
		}
	}
}

func TestParseUnknownCommand(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Parse("frobnicate(to: start)")
	if err == nil {
		t.Fatal("expected unknown command error, got nil")
	}

	var unknown *dispatch.UnknownCommandError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownCommandError, got %T: %v", err, err)
	}
	if unknown.Attempted != "frobnicate" {
		t.Errorf("Attempted = %q, want %q", unknown.Attempted, "frobnicate")
	}

	want := []string{"clearMeasurement", "markPosition", "measureDistance", "setScale"}
	if len(unknown.Known) != len(want) {
		t.Fatalf("Known = %v, want %v", unknown.Known, want)
	}
	for i, name := range want {
		if unknown.Known[i] != name {
			t.Errorf("Known[%d] = %q, want %q", i, unknown.Known[i], name)
		}
	}
}

func TestParseArgumentError(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name  string
		input string
	}{
		{"non-numeric int", "measureDistance(to: start, using: inches, percentAccuracy: abc)"},
		{"wrong keyword", "clearMeasurement(from: end)"},
		{"bad enum token", "clearMeasurement(to: middle)"},
		{"missing argument", "setScale(using: inches)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, expected argument error", tt.input)
			}

			var argErr *registry.ArgumentError
			if !errors.As(err, &argErr) {
				t.Fatalf("expected ArgumentError, got %T: %v", err, err)
			}
		})
	}
}

func TestParseNoName(t *testing.T) {
	engine := newTestEngine(t)

	for _, input := range []string{"", "   ", "(to: start)"} {
		_, err := engine.Parse(input)
		if err == nil {
			t.Errorf("Parse(%q) succeeded, expected missing name error", input)
			continue
		}

		var noName *dispatch.NoNameError
		if !errors.As(err, &noName) {
			t.Errorf("Parse(%q): expected NoNameError, got %T: %v", input, err, err)
		}
	}
}

func TestParseTrailingText(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Parse("clearMeasurement(to: end) trailing")
	if err == nil {
		t.Fatal("expected error for trailing text, got nil")
	}
	if code := fcerror.GetCode(err); code != fcerror.CodeInvalidInput {
		t.Errorf("code = %v, want %v", code, fcerror.CodeInvalidInput)
	}
}

func TestParseMaxInputLength(t *testing.T) {
	engine, err := fcall.New(fcall.Options[measure.Command]{
		Kinds:          measure.Kinds(),
		Commands:       measure.Commands(),
		MaxInputLength: 32,
	})
	if err != nil {
		t.Fatalf("building engine failed: %v", err)
	}

	_, err = engine.Parse("measureDistance(to: start, using: inches, percentAccuracy: 98)")
	if err == nil {
		t.Fatal("expected max length error, got nil")
	}
	if code := fcerror.GetCode(err); code != fcerror.CodeInvalidInput {
		t.Errorf("code = %v, want %v", code, fcerror.CodeInvalidInput)
	}

	if _, err := engine.Parse("markPosition(at: end)"); err != nil {
		t.Errorf("short input failed under length limit: %v", err)
	}
}

func TestParseDeterminism(t *testing.T) {
	input := "measureDistance(to: end, using: centimeters, percentAccuracy: 50)"
	want := measure.MeasureDistance{
		To:              measure.BoundEnd,
		Using:           measure.UnitCentimeters,
		PercentAccuracy: 50,
	}

	for i := 0; i < 5; i++ {
		engine := newTestEngine(t)
		got, err := engine.Parse(input)
		if err != nil {
			t.Fatalf("rebuild %d: Parse failed: %v", i, err)
		}
		if got != want {
			t.Fatalf("rebuild %d: Parse = %#v, want %#v", i, got, want)
		}
	}
}

func TestParseAll(t *testing.T) {
	engine := newTestEngine(t)

	input := strings.Join([]string{
		"markPosition(at: start)",
		"",
		"  measureDistance(to: end, using: inches, percentAccuracy: 75)",
		"clearMeasurement(to: start)",
	}, "\n")

	commands, err := engine.ParseAll(input)
	if err != nil {
		t.Fatalf("ParseAll failed: %v", err)
	}
	if len(commands) != 3 {
		t.Fatalf("ParseAll returned %d commands, want 3", len(commands))
	}

	want := []measure.Command{
		measure.MarkPosition{At: measure.BoundStart},
		measure.MeasureDistance{To: measure.BoundEnd, Using: measure.UnitInches, PercentAccuracy: 75},
		measure.ClearMeasurement{To: measure.BoundStart},
	}
	for i := range want {
		if commands[i] != want[i] {
			t.Errorf("commands[%d] = %#v, want %#v", i, commands[i], want[i])
		}
	}
}

func TestParseAllReportsLine(t *testing.T) {
	engine := newTestEngine(t)

	input := "markPosition(at: start)\nbogus(at: start)\nclearMeasurement(to: end)"

	_, err := engine.ParseAll(input)
	if err == nil {
		t.Fatal("expected batch error, got nil")
	}

	var unknown *dispatch.UnknownCommandError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownCommandError in chain, got %T: %v", err, err)
	}

	var fcErr *fcerror.Error
	if !errors.As(err, &fcErr) {
		t.Fatalf("expected wrapped *Error, got %T", err)
	}
	if line, ok := fcErr.Details()["line"]; !ok || line != 2 {
		t.Errorf("line detail = %v, want 2", line)
	}
}
