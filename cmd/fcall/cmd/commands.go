package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/fcall/measure"
	"github.com/msto63/fcall/registry"
	"github.com/msto63/fcall/signature"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the registered commands",
	Long:  `Prints the registered command signatures in sorted name order.`,
	RunE:  runCommands,
}

func init() {
	rootCmd.AddCommand(commandsCmd)
}

func runCommands(cmd *cobra.Command, args []string) error {
	kinds, err := registry.NewKindSet(measure.Kinds()...)
	if err != nil {
		printError("building kind set failed", err)
		return err
	}

	compiler := signature.NewCompiler(signature.Options{Kinds: kinds.Kinds()})

	// Re-render through the compiler so the listing shows canonical
	// signatures, sorted by command name
	byName := make(map[string]string)
	for sig := range measure.Commands() {
		desc, err := compiler.Compile(sig)
		if err != nil {
			printError("compiling signature failed", err)
			return err
		}
		byName[desc.Name] = desc.String()
	}

	engine, err := newEngine()
	if err != nil {
		printError("building command table failed", err)
		return err
	}

	for _, name := range engine.Names() {
		fmt.Println(byName[name])
	}

	return nil
}
