// File: engine.go
// Title: Measurement Engine Bindings
// Description: Binds the measurement vocabulary to the fcall engine:
//              parameter kinds, signature-to-constructor bindings and a
//              ready-made engine constructor used by the CLI and tests.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-26
// Modified: 2026-08-14

package measure

import (
	"github.com/msto63/fcall"
	"github.com/msto63/fcall/core/log"
	"github.com/msto63/fcall/registry"
	"github.com/msto63/fcall/signature"
)

// Parameter kinds of the measurement vocabulary
const (
	KindBound signature.Kind = "Bound"
	KindUnit  signature.Kind = "Unit"
	KindInt   signature.Kind = "Int"
)

// Kinds returns the parameter kind specifications of the vocabulary
func Kinds() []registry.KindSpec {
	return []registry.KindSpec{
		registry.EnumKind(KindBound, BoundTokens()),
		registry.EnumKind(KindUnit, UnitTokens()),
		registry.IntKind(KindInt),
	}
}

// Commands returns the signature-to-constructor bindings of the
// vocabulary. Each key is a complete signature; the bound factory names
// the Go types the table verifies against the signature kinds.
func Commands() map[string]registry.Factory[Command] {
	return map[string]registry.Factory[Command]{
		"measureDistance(to: Bound, using: Unit, percentAccuracy: Int)": registry.Ternary(NewMeasureDistance),
		"clearMeasurement(to: Bound)":                                   registry.Unary(NewClearMeasurement),
		"markPosition(at: Bound)":                                       registry.Unary(NewMarkPosition),
		"setScale(using: Unit, factor: Int)":                            registry.Binary(NewSetScale),
	}
}

// NewEngine builds an engine over the measurement vocabulary
func NewEngine(logger *log.Logger) (*fcall.Engine[Command], error) {
	return fcall.New(fcall.Options[Command]{
		Logger:   logger,
		Kinds:    Kinds(),
		Commands: Commands(),
	})
}
