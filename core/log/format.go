// File: format.go
// Title: Log Output Formatters
// Description: Implements the JSON and text formatters for log entries.
//              JSON is the default and intended for machine consumption;
//              text is the human-readable form used by the CLI.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-12
// Modified: 2026-08-03

package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatJSON outputs structured JSON logs (recommended for production)
	FormatJSON Format = iota

	// FormatText outputs human-readable text logs
	FormatText
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a log format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	default:
		return FormatJSON, &ParseError{Input: format, Type: "format"}
	}
}

// Formatter defines the interface for log formatters
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// GetFormatter returns the formatter for the given format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatText:
		return NewTextFormatter()
	default:
		return NewJSONFormatter()
	}
}

// JSONFormatter formats log entries as JSON
type JSONFormatter struct {
	// TimestampFormat specifies the timestamp format
	TimestampFormat string
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{
		TimestampFormat: time.RFC3339,
	}
}

// Format formats a log entry as JSON
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{})

	data["timestamp"] = entry.Timestamp.Format(f.TimestampFormat)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message

	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}

	if entry.RequestID != "" {
		data["request_id"] = entry.RequestID
	}

	for k, v := range entry.Fields {
		data[k] = v
	}

	if entry.Error != nil {
		data["error"] = entry.Error.Error()
		// Structured errors contribute their full context
		if marshaler, ok := entry.Error.(json.Marshaler); ok {
			if errData, err := marshaler.MarshalJSON(); err == nil {
				var errObj map[string]interface{}
				if json.Unmarshal(errData, &errObj) == nil {
					data["error_details"] = errObj
				}
			}
		}
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(encoded, '\n'), nil
}

// TextFormatter formats log entries as human-readable text
type TextFormatter struct {
	// TimestampFormat specifies the timestamp format
	TimestampFormat string
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05.000",
	}
}

// Format formats a log entry as text
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder

	b.WriteString(entry.Timestamp.Format(f.TimestampFormat))
	b.WriteString(" [")
	b.WriteString(entry.Level.ShortString())
	b.WriteString("]")

	if entry.Logger != "" {
		b.WriteString(" ")
		b.WriteString(entry.Logger)
		b.WriteString(":")
	}

	b.WriteString(" ")
	b.WriteString(entry.Message)

	if entry.RequestID != "" {
		b.WriteString(" request_id=")
		b.WriteString(entry.RequestID)
	}

	// Sorted field order keeps text output stable for tests and diffing
	if len(entry.Fields) > 0 {
		keys := make([]string, 0, len(entry.Fields))
		for k := range entry.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, entry.Fields[k])
		}
	}

	if entry.Error != nil {
		fmt.Fprintf(&b, " error=%q", entry.Error.Error())
	}

	b.WriteString("\n")
	return []byte(b.String()), nil
}
