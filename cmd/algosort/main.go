// Package main is the entry point for the algosort CLI.
package main

import (
	"os"

	"github.com/watchfire-io/algosort/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
