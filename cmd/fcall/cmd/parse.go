package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var parseTypes bool

var parseCmd = &cobra.Command{
	Use:   "parse [invocation...]",
	Short: "Parse invocations from arguments or stdin",
	Long: `Parses one or more invocations and prints the resulting commands.

Without arguments, invocations are read from stdin, one per line;
blank lines are skipped and the first failure aborts the batch.

Examples:
  fcall parse "measureDistance(to: start, using: inches, percentAccuracy: 98)"
  cat invocations.txt | fcall parse`,
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&parseTypes, "types", false, "print the Go type of each command")
}

func runParse(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		printError("building command table failed", err)
		return err
	}

	input := strings.Join(args, "\n")
	if len(args) == 0 {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			printError("reading stdin failed", err)
			return err
		}
		input = string(raw)
	}

	commands, err := engine.ParseAll(input)
	if err != nil {
		printError("parse failed", err)
		return err
	}

	for _, c := range commands {
		if parseTypes {
			fmt.Printf("%T: %v\n", c, c)
		} else {
			fmt.Println(c)
		}
	}

	return nil
}
