package main

import (
	"os"

	"github.com/rfalmeida/b3rank/cmd/b3rank/commands"
)

// main is the entry point for the b3rank CLI
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
