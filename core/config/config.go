// File: config.go
// Title: Configuration Loading
// Description: Implements configuration loading from TOML and YAML files
//              with format auto-detection, dotted-key access and
//              environment variable overrides. Used by the fcall CLI;
//              the library core itself is configuration-free.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-28
// Modified: 2026-08-05

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	fcerror "github.com/msto63/fcall/core/error"
	"github.com/msto63/fcall/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatAuto auto-detects format from the file extension (default)
	FormatAuto Format = iota

	// FormatTOML represents TOML format
	FormatTOML

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a loaded configuration with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	envPrefix string
}

// Options configures loading behavior
type Options struct {
	// Format forces a file format; FormatAuto detects from the extension
	Format Format

	// EnvPrefix enables environment overrides: a key "log.level" is
	// overridden by <prefix>_LOG_LEVEL when set
	EnvPrefix string
}

// New creates an empty configuration
func New() *Config {
	return &Config{
		data: make(map[string]interface{}),
	}
}

// Load reads and parses a configuration file
func Load(path string, opts Options) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fcerror.Wrap(err, "failed to read configuration file").
			WithCode(fcerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	format := opts.Format
	if format == FormatAuto {
		format = detectFormat(path)
	}

	data := make(map[string]interface{})
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(raw, &data)
	case FormatYAML:
		err = yaml.Unmarshal(raw, &data)
	default:
		return nil, fcerror.Newf("unsupported configuration format for %s", path).
			WithCode(fcerror.CodeConfigError).
			WithOperation("config.Load")
	}
	if err != nil {
		return nil, fcerror.Wrap(err, "failed to parse configuration file").
			WithCode(fcerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path).
			WithDetail("format", format.String())
	}

	return &Config{
		data:      data,
		filePath:  path,
		envPrefix: opts.EnvPrefix,
	}, nil
}

// detectFormat guesses the format from the file extension
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// FilePath returns the path the configuration was loaded from
func (c *Config) FilePath() string {
	return c.filePath
}

// Has returns true if the dotted key exists in the configuration or is
// overridden by the environment
func (c *Config) Has(key string) bool {
	if _, ok := c.envOverride(key); ok {
		return true
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.lookup(key)
	return ok
}

// GetString returns the string value at the dotted key, or def when absent
func (c *Config) GetString(key, def string) string {
	if v, ok := c.envOverride(key); ok {
		return v
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.lookup(key)
	if !ok {
		return def
	}
	if s, ok := v.(string); ok {
		return s
	}
	return def
}

// GetInt returns the integer value at the dotted key, or def when absent
func (c *Config) GetInt(key string, def int) int {
	if v, ok := c.envOverride(key); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
		return def
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.lookup(key)
	if !ok {
		return def
	}

	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return def
	}
}

// GetBool returns the boolean value at the dotted key, or def when absent
func (c *Config) GetBool(key string, def bool) bool {
	if v, ok := c.envOverride(key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
		return def
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.lookup(key)
	if !ok {
		return def
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return def
}

// lookup traverses nested maps following the dotted key.
// Caller must hold the read lock.
func (c *Config) lookup(key string) (interface{}, bool) {
	if stringx.IsBlank(key) {
		return nil, false
	}

	parts := strings.Split(key, ".")
	var current interface{} = c.data

	for _, part := range parts {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// envOverride checks for an environment variable override of the key
func (c *Config) envOverride(key string) (string, bool) {
	if c.envPrefix == "" {
		return "", false
	}

	name := c.envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return os.LookupEnv(name)
}
