// File: measure.go
// Title: Measurement Command Vocabulary
// Description: The example command set shipped with fcall: a small
//              measurement domain with a Bound and a Unit enumeration and
//              a closed union of typed commands. Demonstrates how an
//              application binds its own vocabulary to the engine.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-26
// Modified: 2026-08-14

package measure

import "fmt"

// Bound selects an end of the current measurement range
type Bound int

const (
	// BoundStart selects the beginning of the range
	BoundStart Bound = iota

	// BoundEnd selects the end of the range
	BoundEnd
)

// String returns the canonical token of the bound. The same tokens are
// matched when parsing invocation arguments.
func (b Bound) String() string {
	switch b {
	case BoundStart:
		return "start"
	case BoundEnd:
		return "end"
	default:
		return fmt.Sprintf("Bound(%d)", int(b))
	}
}

// BoundTokens returns the canonical token mapping for the enumeration
func BoundTokens() map[string]Bound {
	return map[string]Bound{
		"start": BoundStart,
		"end":   BoundEnd,
	}
}

// Unit selects the measurement unit
type Unit int

const (
	// UnitInches measures in inches
	UnitInches Unit = iota

	// UnitCentimeters measures in centimeters
	UnitCentimeters
)

// String returns the canonical token of the unit
func (u Unit) String() string {
	switch u {
	case UnitInches:
		return "inches"
	case UnitCentimeters:
		return "centimeters"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// UnitTokens returns the canonical token mapping for the enumeration
func UnitTokens() map[string]Unit {
	return map[string]Unit{
		"inches":      UnitInches,
		"centimeters": UnitCentimeters,
	}
}

// Command is the closed union of measurement commands. Values are
// immutable and produced only by successful parsing or the New*
// constructors.
type Command interface {
	isCommand()
}

// MeasureDistance measures from the cursor to a bound in a unit with the
// requested accuracy
type MeasureDistance struct {
	To              Bound
	Using           Unit
	PercentAccuracy int
}

func (MeasureDistance) isCommand() {}

// String renders the command in invocation syntax
func (c MeasureDistance) String() string {
	return fmt.Sprintf("measureDistance(to: %s, using: %s, percentAccuracy: %d)",
		c.To, c.Using, c.PercentAccuracy)
}

// ClearMeasurement clears the measurement at a bound
type ClearMeasurement struct {
	To Bound
}

func (ClearMeasurement) isCommand() {}

// String renders the command in invocation syntax
func (c ClearMeasurement) String() string {
	return fmt.Sprintf("clearMeasurement(to: %s)", c.To)
}

// MarkPosition drops a marker at a bound
type MarkPosition struct {
	At Bound
}

func (MarkPosition) isCommand() {}

// String renders the command in invocation syntax
func (c MarkPosition) String() string {
	return fmt.Sprintf("markPosition(at: %s)", c.At)
}

// SetScale sets the display scale for a unit
type SetScale struct {
	Using  Unit
	Factor int
}

func (SetScale) isCommand() {}

// String renders the command in invocation syntax
func (c SetScale) String() string {
	return fmt.Sprintf("setScale(using: %s, factor: %d)", c.Using, c.Factor)
}

// NewMeasureDistance constructs a MeasureDistance command
func NewMeasureDistance(to Bound, using Unit, percentAccuracy int) Command {
	return MeasureDistance{To: to, Using: using, PercentAccuracy: percentAccuracy}
}

// NewClearMeasurement constructs a ClearMeasurement command
func NewClearMeasurement(to Bound) Command {
	return ClearMeasurement{To: to}
}

// NewMarkPosition constructs a MarkPosition command
func NewMarkPosition(at Bound) Command {
	return MarkPosition{At: at}
}

// NewSetScale constructs a SetScale command
func NewSetScale(using Unit, factor int) Command {
	return SetScale{Using: using, Factor: factor}
}
