// File: engine.go
// Title: High-Level fcall Engine
// Description: Provides the high-level interface of the fcall system: one
//              constructor that wires kinds, signatures and constructor
//              factories into the immutable command table and dispatcher,
//              and a Parse entry point with structured logging and
//              per-call trace IDs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-26
// Modified: 2026-08-14
//
// Change History:
// - 2026-07-26 v0.1.0: Initial high-level engine implementation

package fcall

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	fcerror "github.com/msto63/fcall/core/error"
	"github.com/msto63/fcall/core/log"
	"github.com/msto63/fcall/dispatch"
	"github.com/msto63/fcall/registry"
	"github.com/msto63/fcall/scan"
	"github.com/msto63/fcall/utils/stringx"
)

// DefaultMaxInputLength bounds a single invocation string
const DefaultMaxInputLength = 4096

// Options configures an Engine
type Options[T any] struct {
	Logger *log.Logger

	// Kinds lists the parameter kinds available to signatures
	Kinds []registry.KindSpec

	// Commands maps signature strings to constructor factories
	Commands map[string]registry.Factory[T]

	// MaxInputLength bounds Parse input; 0 means DefaultMaxInputLength
	MaxInputLength int
}

// Engine is the assembled fcall pipeline: kind set, command table and
// dispatcher. It is immutable after New and safe for concurrent use.
type Engine[T any] struct {
	table          *registry.Table[T]
	dispatcher     *dispatch.Parser[T]
	logger         *log.Logger
	maxInputLength int
}

// New builds an engine from the developer-authored command bindings. The
// bindings are configuration: any error from New means the command table
// itself is broken and should abort startup.
func New[T any](opts Options[T]) (*Engine[T], error) {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}

	logger := opts.Logger.WithField("component", "fcall-engine")

	kinds, err := registry.NewKindSet(opts.Kinds...)
	if err != nil {
		return nil, err
	}

	table, err := registry.Build(kinds, opts.Commands, registry.BuildOptions{
		Logger: logger,
	})
	if err != nil {
		logger.LogError(err)
		return nil, err
	}

	return &Engine[T]{
		table:          table,
		dispatcher:     dispatch.New(table, dispatch.Options{Logger: logger}),
		logger:         logger,
		maxInputLength: opts.MaxInputLength,
	}, nil
}

// MustNew is New for startup call sites: configuration errors panic
func MustNew[T any](opts Options[T]) *Engine[T] {
	engine, err := New(opts)
	if err != nil {
		panic(err)
	}
	return engine
}

// Parse parses one complete invocation. The whole input must be consumed
// apart from surrounding whitespace; recoverable parse errors are
// returned to the caller unchanged, with no internal retry.
func (e *Engine[T]) Parse(input string) (T, error) {
	var zero T

	if len(input) > e.maxInputLength {
		return zero, fcerror.Newf("input exceeds maximum length: %d > %d",
			len(input), e.maxInputLength).
			WithCode(fcerror.CodeInvalidInput).
			WithOperation("fcall.Parse")
	}

	parseID := uuid.NewString()
	logger := e.logger.WithRequestID(parseID)

	logger.Debug("parsing invocation",
		log.String("input", stringx.Truncate(input, 120, "...")))

	cur := scan.New(input)
	cmd, err := e.dispatcher.Parse(cur)
	if err != nil {
		logger.LogError(classifyParseError(err))
		return zero, err
	}

	cur.SkipSpace()
	if cur.More() {
		err := fcerror.Newf("unexpected text after invocation: %q",
			stringx.Truncate(cur.Rest(), 40, "...")).
			WithCode(fcerror.CodeInvalidInput).
			WithOperation("fcall.Parse").
			WithDetail("position", cur.Pos())
		logger.LogError(err)
		return zero, err
	}

	logger.Debug("invocation parsed",
		log.String("command", commandName(input)))

	return cmd, nil
}

// classifyParseError attaches the runtime parse code matching a typed
// parse error, for the severity-aware log path. Callers of Parse still
// receive the typed error itself; already-coded errors pass through.
func classifyParseError(err error) error {
	var fcErr *fcerror.Error
	if errors.As(err, &fcErr) {
		return err
	}

	code := fcerror.CodeUnknown
	var noName *dispatch.NoNameError
	var unknown *dispatch.UnknownCommandError
	var argErr *registry.ArgumentError
	switch {
	case errors.As(err, &noName):
		code = fcerror.CodeNoFunctionName
	case errors.As(err, &unknown):
		code = fcerror.CodeUnknownCommand
	case errors.As(err, &argErr):
		code = fcerror.CodeArgumentSyntax
	}

	return fcerror.Wrap(err, "invocation rejected").WithCode(code)
}

// ParseAll parses a batch of invocations, one per line. Blank lines are
// skipped; the first failure aborts the batch.
func (e *Engine[T]) ParseAll(input string) ([]T, error) {
	var commands []T

	for i, line := range strings.Split(input, "\n") {
		if stringx.IsBlank(line) {
			continue
		}

		cmd, err := e.Parse(strings.TrimSpace(line))
		if err != nil {
			return nil, fcerror.Wrap(err, "batch parse failed").
				WithDetail("line", i+1)
		}
		commands = append(commands, cmd)
	}

	e.logger.Debug("batch parsed", log.Int("commands", len(commands)))
	return commands, nil
}

// Names returns the sorted registered command names
func (e *Engine[T]) Names() []string {
	return e.table.Names()
}

// commandName extracts the name portion of an invocation for logging
func commandName(input string) string {
	name := input
	if idx := strings.IndexByte(input, '('); idx >= 0 {
		name = input[:idx]
	}
	return strings.TrimSpace(name)
}
