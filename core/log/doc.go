// File: doc.go
// Title: Package Documentation for core/log
// Description: Package-level documentation for the fcall logging system.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-12
// Modified: 2026-07-12

// Package log provides structured, leveled logging for the fcall library.
//
// Loggers are immutable: WithField, WithName, WithLevel and friends derive
// configured copies, so a logger handed into a component can be freely
// specialized without affecting the caller's instance:
//
//	logger := log.GetDefault().WithField("component", "dispatch")
//	logger.Debug("command resolved", log.Fields{"name": name})
//
// Entries are rendered by a Formatter; JSON is the default, a plain text
// formatter is available for CLI use. LogError understands the structured
// errors from core/error and picks the log level from the error severity.
package log
