// Package main provides the entry point for the mrsh CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/mrshlab/mrsh/cmd/mrsh/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
