// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for fcall errors and the mapping
//              from error codes to default severities.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-14
// Modified: 2026-07-14

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: malformed user input, unknown command names
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: malformed signatures, kind/constructor disagreement
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the system unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the appropriate severity level for a code.
// Configuration mistakes rank high because they mean the command table
// itself is broken; bad user input ranks low.
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeSignatureSyntax, CodeKindMismatch, CodeUnknownKind,
		CodeDuplicateCommand, CodeConfigError:
		return SeverityHigh

	case CodeInternal:
		return SeverityCritical

	case CodeNoFunctionName, CodeUnknownCommand, CodeArgumentSyntax,
		CodeInvalidInput:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
