// File: table.go
// Title: Command Table Construction
// Description: Builds the immutable command table from the developer's
//              signature-to-factory mapping. Every signature is compiled
//              and bound to its factory once; the resulting table maps
//              command names to runnable parsers and is shared read-only
//              across all parses.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-21
// Modified: 2026-08-11

package registry

import (
	"sort"

	fcerror "github.com/msto63/fcall/core/error"
	"github.com/msto63/fcall/core/log"
	"github.com/msto63/fcall/signature"
	"github.com/msto63/fcall/utils/stringx"
)

// Table associates command names with their compiled parsers. It is built
// once at startup and immutable afterwards; lookups are O(1) hash access
// independent of the number of registered commands.
type Table[T any] struct {
	parsers map[string]CommandParser[T]
	names   []string
}

// BuildOptions configures table construction
type BuildOptions struct {
	Logger *log.Logger
}

// Build compiles every signature and binds it to its factory, keyed by the
// descriptor's command name. The mapping is authored by the integrating
// developer, so every failure here signals a programming bug: callers are
// expected to treat the error as fatal (or use MustBuild).
//
// Duplicate command names across signatures are rejected rather than
// silently overwritten.
func Build[T any](kinds *KindSet, commands map[string]Factory[T], opts BuildOptions) (*Table[T], error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.GetDefault()
	}
	logger = logger.WithField("component", "command-table")

	compiler := signature.NewCompiler(signature.Options{
		Logger: logger,
		Kinds:  kinds.Kinds(),
	})

	table := &Table[T]{
		parsers: make(map[string]CommandParser[T], len(commands)),
	}

	for sig, factory := range commands {
		desc, err := compiler.Compile(sig)
		if err != nil {
			return nil, err
		}

		if _, exists := table.parsers[desc.Name]; exists {
			return nil, fcerror.Newf("command %q registered twice", desc.Name).
				WithCode(fcerror.CodeDuplicateCommand).
				WithOperation("registry.Build").
				WithDetail("command", desc.Name).
				WithDetail("signature", sig)
		}

		parser, err := newCommandParser(factory, desc, kinds)
		if err != nil {
			return nil, err
		}

		table.parsers[desc.Name] = parser
	}

	table.names = sortedNames(table.parsers)

	logger.Info("command table built", log.Int("commands", len(table.parsers)))

	return table, nil
}

// MustBuild is Build for startup call sites: any configuration error
// aborts the process by panicking.
func MustBuild[T any](kinds *KindSet, commands map[string]Factory[T], opts BuildOptions) *Table[T] {
	table, err := Build(kinds, commands, opts)
	if err != nil {
		panic(err)
	}
	return table
}

// NewTable wraps pre-built parsers into a table, bypassing signature
// compilation. Intended for callers that hand-craft parsers for commands
// the signature mini-language cannot express.
func NewTable[T any](parsers map[string]CommandParser[T]) (*Table[T], error) {
	table := &Table[T]{
		parsers: make(map[string]CommandParser[T], len(parsers)),
	}

	for name, parser := range parsers {
		if stringx.IsEmpty(name) || parser == nil {
			return nil, fcerror.New("table entries need a name and a parser").
				WithCode(fcerror.CodeConfigError).
				WithOperation("registry.NewTable")
		}
		table.parsers[name] = parser
	}

	table.names = sortedNames(table.parsers)
	return table, nil
}

// Lookup resolves a command name to its parser
func (t *Table[T]) Lookup(name string) (CommandParser[T], bool) {
	parser, ok := t.parsers[name]
	return parser, ok
}

// Names returns the registered command names in sorted order. The result
// is a copy; the table's own list backs unknown-command diagnostics and
// must stay immutable.
func (t *Table[T]) Names() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

// Len returns the number of registered commands
func (t *Table[T]) Len() int {
	return len(t.parsers)
}

// sortedNames extracts the sorted key set of a parser map
func sortedNames[T any](parsers map[string]CommandParser[T]) []string {
	names := make([]string, 0, len(parsers))
	for name := range parsers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
