package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/fcall"
	"github.com/msto63/fcall/core/config"
	"github.com/msto63/fcall/core/log"
	"github.com/msto63/fcall/measure"
	"github.com/msto63/fcall/utils/stringx"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "fcall",
	Short: "fcall - function-call command parser",
	Long: `fcall turns function-call-style invocations like

  measureDistance(to: start, using: inches, percentAccuracy: 98)

into strongly-typed command values. The bundled vocabulary is the
measurement command set; use it to explore the parser interactively
or from scripts.

Commands:
  repl      - interactive invocation shell
  parse     - parse invocations from arguments or stdin
  commands  - list the registered command names
  version   - print version information`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./configs/fcall.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// newLogger builds the logger from the config file and flags. Flag beats
// file: --verbose always enables debug logging.
func newLogger() *log.Logger {
	levelName := "warn"
	formatName := "text"

	path := stringx.FirstNonBlank(cfgFile, "./configs/fcall.toml")

	if cfg, err := config.Load(path, config.Options{EnvPrefix: "FCALL"}); err == nil {
		levelName = cfg.GetString("log.level", levelName)
		formatName = cfg.GetString("log.format", formatName)
	} else if cfgFile != "" {
		// An explicitly named config file must load
		printError("loading config failed", err)
		os.Exit(1)
	}

	level, err := log.ParseLevel(levelName)
	if err != nil {
		level = log.LevelWarn
	}
	format, err := log.ParseFormat(formatName)
	if err != nil {
		format = log.FormatText
	}
	if verbose {
		level = log.LevelDebug
	}

	return log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
		Name:   "fcall",
	})
}

// newEngine builds the measurement engine shared by the subcommands
func newEngine() (*fcall.Engine[measure.Command], error) {
	return measure.NewEngine(newLogger())
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
