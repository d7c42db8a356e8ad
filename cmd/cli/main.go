// Package main is the entry point for the abroad-cost CLI.
package main

import (
	"os"

	"abroad-cost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
