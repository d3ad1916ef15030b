// Package main is the entry point for the dtk CLI tool.
package main

import (
	"os"

	"github.com/dtkit/dtk/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
