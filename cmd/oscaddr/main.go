package main

import (
	"os"

	"github.com/osckit/oscaddr/cmd/oscaddr/commands"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
