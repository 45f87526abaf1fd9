package main

import (
	"os"

	"github.com/bakeledger-dev/bakeledger/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
