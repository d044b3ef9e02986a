package main

import (
	"os"

	"github.com/msto63/fcall/cmd/fcall/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
