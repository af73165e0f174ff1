package main

import (
	"os"

	"github.com/lapirenov/backend/cmd/cli/commands"
)

func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
