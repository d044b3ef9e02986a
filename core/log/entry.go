// File: entry.go
// Title: Log Entry and Fields
// Description: Defines the Entry type carried through formatters and the
//              Fields map used for structured key-value logging.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-12
// Modified: 2026-07-12

package log

import (
	"time"
)

// Entry represents a single log entry with all its metadata
type Entry struct {
	// Core log information
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string

	// Context information
	RequestID string

	// Custom fields
	Fields Fields

	// Error information
	Error error
}

// NewEntry creates a new log entry with the current timestamp
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}

// Fields represents custom key-value pairs for structured logging
type Fields map[string]interface{}

// Field creates a single field for logging
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err creates an error field for logging
func Err(err error) Fields {
	return Fields{"error": err}
}

// String creates a string field for logging
func String(key string, value string) Fields {
	return Fields{key: value}
}

// Int creates an integer field for logging
func Int(key string, value int) Fields {
	return Fields{key: value}
}

// Merge combines multiple Fields into one
func (f Fields) Merge(other Fields) Fields {
	result := make(Fields, len(f)+len(other))
	for k, v := range f {
		result[k] = v
	}
	for k, v := range other {
		result[k] = v
	}
	return result
}

// With adds a field to the existing Fields
func (f Fields) With(key string, value interface{}) Fields {
	if f == nil {
		return Fields{key: value}
	}
	f[key] = value
	return f
}
