package main

import (
	"os"

	"playfair/cmd/playfair/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
