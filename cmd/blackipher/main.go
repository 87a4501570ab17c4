package main

import (
	"os"

	"blackipher/cmd/blackipher/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
