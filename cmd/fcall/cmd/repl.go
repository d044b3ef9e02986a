package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/fcall/dispatch"
)

var (
	replPromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8B5CF6")).
			Bold(true)

	replResultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))

	replErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444"))

	replHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive invocation shell",
	Long: `Starts an interactive shell that parses one invocation per line.

Shell commands:
  :commands  - list the registered command names
  :quit      - leave the shell`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		printError("building command table failed", err)
		return err
	}

	sessionID := uuid.NewString()
	fmt.Println(replHintStyle.Render(
		fmt.Sprintf("fcall repl (session %s) - :quit to leave", sessionID[:8])))

	scanner := bufio.NewScanner(os.Stdin)
	prompt := replPromptStyle.Render("fcall> ")

	for {
		fmt.Print(prompt)
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == ":quit", line == ":q", line == "exit":
			return nil
		case line == ":commands":
			for _, name := range engine.Names() {
				fmt.Println("  " + name)
			}
			continue
		}

		command, err := engine.Parse(line)
		if err != nil {
			fmt.Println(replErrorStyle.Render("error: " + err.Error()))

			var unknown *dispatch.UnknownCommandError
			if errors.As(err, &unknown) {
				fmt.Println(replHintStyle.Render(
					"known commands: " + strings.Join(unknown.Known, ", ")))
			}
			continue
		}

		fmt.Println(replResultStyle.Render(fmt.Sprintf("%T", command)))
		fmt.Println("  " + fmt.Sprint(command))
	}
}
